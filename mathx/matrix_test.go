package mathx_test

import (
	"testing"

	"github.com/on-the-ground/memo_ive_go/mathx"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := mathx.NewMatrix(rows)
	require.NoError(t, err)

	rows[0][0] = 99
	assert.Equal(t, 1.0, m[0][0], "NewMatrix copies its input")

	_, err = mathx.NewMatrix([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, mathx.ErrDimensionMismatch)
}

func TestMultiply(t *testing.T) {
	a := mathx.Matrix{{1, 2, 3}, {4, 5, 6}}
	b := mathx.Matrix{{7, 8}, {9, 10}, {11, 12}}

	got, err := a.Multiply(b)
	require.NoError(t, err)

	want := mathx.Matrix{{58, 64}, {139, 154}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Multiply mismatch (-want +got):\n%s", diff)
	}

	id, err := a.Multiply(mathx.Identity(3))
	require.NoError(t, err)
	if diff := cmp.Diff(a, id); diff != "" {
		t.Errorf("A×I mismatch (-want +got):\n%s", diff)
	}

	_, err = a.Multiply(a)
	assert.ErrorIs(t, err, mathx.ErrDimensionMismatch)
}

func TestMultiplyVector(t *testing.T) {
	m := mathx.Matrix{{1, 0}, {0, 2}}
	v, err := m.MultiplyVector(mathx.Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, mathx.Vector{3, 8}, v)

	_, err = m.MultiplyVector(mathx.Vector{1})
	assert.ErrorIs(t, err, mathx.ErrDimensionMismatch)
}

func TestTranspose(t *testing.T) {
	m := mathx.Matrix{{1, 2, 3}, {4, 5, 6}}
	want := mathx.Matrix{{1, 4}, {2, 5}, {3, 6}}
	if diff := cmp.Diff(want, m.Transpose()); diff != "" {
		t.Errorf("Transpose mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 3, m.Transpose().Rows())
	assert.Equal(t, 2, m.Transpose().Cols())
}

func TestDeterminant(t *testing.T) {
	cases := []struct {
		name string
		m    mathx.Matrix
		want float64
	}{
		{"2x2", mathx.Matrix{{4, 6}, {3, 8}}, 14},
		{"3x3", mathx.Matrix{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, -306},
		{"singular", mathx.Matrix{{1, 2}, {2, 4}}, 0},
		{"identity", mathx.Identity(4), 1},
		{"needs pivot", mathx.Matrix{{0, 1}, {1, 0}}, -1},
	}
	approx := cmpopts.EquateApprox(0, 1e-9)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.m.Determinant()
			require.NoError(t, err)
			if !cmp.Equal(tc.want, got, approx) {
				t.Errorf("Determinant() = %v, want %v", got, tc.want)
			}
		})
	}

	_, err := mathx.Matrix{{1, 2, 3}}.Determinant()
	assert.ErrorIs(t, err, mathx.ErrNotSquare)
}

func TestRaggedMatrixIsRejected(t *testing.T) {
	ragged := mathx.Matrix{{1, 2}, {3}}

	_, err := ragged.Multiply(mathx.Identity(2))
	assert.ErrorIs(t, err, mathx.ErrDimensionMismatch)

	_, err = mathx.Identity(2).Multiply(ragged)
	assert.ErrorIs(t, err, mathx.ErrDimensionMismatch)

	_, err = ragged.MultiplyVector(mathx.Vector{1, 1})
	assert.ErrorIs(t, err, mathx.ErrDimensionMismatch)

	_, err = ragged.Determinant()
	assert.ErrorIs(t, err, mathx.ErrDimensionMismatch)
}
