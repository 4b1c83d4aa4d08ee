package mathx_test

import (
	"math"
	"testing"

	"github.com/on-the-ground/memo_ive_go/mathx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngleConversions(t *testing.T) {
	assert.InDelta(t, math.Pi, mathx.DegreesToRadians(180), 1e-12)
	assert.InDelta(t, 90.0, mathx.RadiansToDegrees(math.Pi/2), 1e-12)
}

func TestTriangles(t *testing.T) {
	assert.Equal(t, 5.0, mathx.Hypotenuse(3, 4))

	c, err := mathx.LawOfCosines(3, 4, 90)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, c, 1e-9)

	_, err = mathx.LawOfCosines(0, 4, 90)
	assert.ErrorIs(t, err, mathx.ErrInvalidTriangle)

	angle, err := mathx.AngleBetween(3, 4, 5)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, angle, 1e-9)

	_, err = mathx.AngleBetween(1, 1, 3)
	assert.ErrorIs(t, err, mathx.ErrInvalidTriangle)
}

func TestRoundTo(t *testing.T) {
	assert.Equal(t, 2.68, mathx.RoundTo(2.675, 2))
	assert.Equal(t, -1.5, mathx.RoundTo(-1.45, 1))
	assert.Equal(t, 3.0, mathx.RoundTo(2.5, 0))
	assert.True(t, math.IsNaN(mathx.RoundTo(math.NaN(), 2)))
}
