package memo_test

import (
	"math"
	"testing"
	"time"

	"github.com/on-the-ground/memo_ive_go/memo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y float64
}

type labeled struct {
	Label string
}

func (l labeled) String() string { return "labeled:" + l.Label }

func TestDeriveKey_Primitives(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"string", "abc", "abc"},
		{"int", 42, "42"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"nil", nil, "<nil>"},
		{"stringer", labeled{Label: "x"}, "labeled:x"},
		{"time", time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), "2024-01-02 03:04:05 +0000 UTC"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := memo.DeriveKey(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDeriveKey_Structured(t *testing.T) {
	got, err := memo.DeriveKey(point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, `{"X":1,"Y":2}`, got)

	got, err = memo.DeriveKey([]int{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, `[3,1,2]`, got)

	got, err = memo.DeriveKey(&point{X: 1, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, `{"X":1,"Y":2}`, got)

	got, err = memo.DeriveKey([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, `[[1,0],[0,1]]`, got)
}

func TestDeriveKey_DeepEqualValuesShareKey(t *testing.T) {
	a := map[string]any{"b": 2, "a": []int{1}}
	b := map[string]any{"a": []int{1}, "b": 2}

	ka, err := memo.DeriveKey(a)
	require.NoError(t, err)
	kb, err := memo.DeriveKey(b)
	require.NoError(t, err)

	assert.Equal(t, ka, kb)
	assert.Equal(t, `{"a":[1],"b":2}`, ka)
}

func TestDeriveKey_StringAndNumberCollide(t *testing.T) {
	ks := memo.MustDeriveKey("1")
	ki := memo.MustDeriveKey(1)
	assert.Equal(t, ks, ki)
}

func TestDeriveKey_Unserializable(t *testing.T) {
	_, err := memo.DeriveKey(struct{ F func() }{F: func() {}})
	assert.ErrorIs(t, err, memo.ErrUnserializableKey)
}

func TestDeriveKey_NonFiniteFloats(t *testing.T) {
	nan, err := memo.DeriveKey([]any{math.NaN()})
	require.NoError(t, err)
	posInf, err := memo.DeriveKey([]any{math.Inf(1)})
	require.NoError(t, err)
	negInf, err := memo.DeriveKey(point{X: math.Inf(-1), Y: 1})
	require.NoError(t, err)

	assert.Equal(t, `["NaN"]`, nan)
	assert.Equal(t, `["+Inf"]`, posInf)
	assert.Equal(t, `{"X":"-Inf","Y":1}`, negInf)
	assert.Equal(t, nan, memo.MustDeriveKey([]any{math.NaN()}))
	assert.NotEqual(t, memo.MustDeriveKey([]float64{math.Inf(1)}), memo.MustDeriveKey([]float64{math.Inf(-1)}))
}

type secret struct {
	a, b int
}

type envelope struct {
	ID    string `json:"id"`
	inner secret
}

func TestDeriveKey_UnexportedFields(t *testing.T) {
	k1 := memo.MustDeriveKey(secret{a: 1, b: 2})
	k2 := memo.MustDeriveKey(secret{a: 10, b: 20})

	assert.Equal(t, `{"a":1,"b":2}`, k1)
	assert.NotEqual(t, k1, k2)

	nested1 := memo.MustDeriveKey(envelope{ID: "x", inner: secret{a: 1}})
	nested2 := memo.MustDeriveKey(envelope{ID: "x", inner: secret{a: 2}})
	assert.Equal(t, `{"id":"x","inner":{"a":1,"b":0}}`, nested1)
	assert.NotEqual(t, nested1, nested2)
}

func TestCache_UnexportedFieldKeysDoNotCollide(t *testing.T) {
	c := memo.New[int](memo.Config{})
	c.Set(secret{a: 1, b: 2}, 3)

	_, ok := c.Get(secret{a: 10, b: 20})
	assert.False(t, ok)
	v, ok := c.Get(secret{a: 1, b: 2})
	require.True(t, ok)
	assert.Equal(t, 3, v)
}
