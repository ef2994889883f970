package heatmap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStyleEndpoints(t *testing.T) {
	for _, tc := range []struct {
		value float64
		bg    string
		fg    string
	}{
		{value: 0, bg: "#ffffff", fg: "#000000"},
		{value: 1, bg: "#0000ff", fg: "#ffffff"},
		{value: 5, bg: "#0000ff", fg: "#ffffff"},
		{value: -1, bg: "#ff0000", fg: "#ffffff"},
		{value: -42, bg: "#ff0000", fg: "#ffffff"},
		{value: math.Inf(-1), bg: "#ff0000", fg: "#ffffff"},
	} {
		s, err := StyleFor(tc.value)
		require.NoError(t, err)
		require.Equal(t, tc.bg, s.Background, "value %v", tc.value)
		require.Equal(t, tc.fg, s.Foreground, "value %v", tc.value)
	}
}

func TestColorDarkensWithMagnitude(t *testing.T) {
	for _, sign := range []float64{-1, 1} {
		prev := math.Inf(1)
		for _, v := range []float64{0, 0.25, 0.5, 0.75, 1} {
			c, err := Color(sign * v)
			require.NoError(t, err)
			l, _, _ := c.Lab()
			require.Less(t, l, prev, "value %v", sign*v)
			prev = l
		}
	}
}

func TestParse(t *testing.T) {
	v, err := Parse(" -0.25 ")
	require.NoError(t, err)
	require.Equal(t, -0.25, v)

	for _, raw := range []string{"", "abc", "NaN"} {
		_, err := Parse(raw)
		require.ErrorIs(t, err, ErrBadValue, "raw %q", raw)
	}
	_, err = Color(math.NaN())
	require.ErrorIs(t, err, ErrBadValue)
}
