// Package heatmap computes cell colors for signed ratios: red for drops, blue for growth. The
// color intensity follows the magnitude of the ratio, saturating at 1.
package heatmap

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrBadValue = errors.New("bad heat-map value")

var (
	base     = colorful.Color{R: 1, G: 1, B: 1}
	negative = colorful.Color{R: 1, G: 0, B: 0}
	positive = colorful.Color{R: 0, G: 0, B: 1}

	darkText  = colorful.Color{R: 0, G: 0, B: 0}
	lightText = colorful.Color{R: 1, G: 1, B: 1}
)

// Lightness below which the cell text switches to white.
const darkThreshold = 0.55

func Color(value float64) (colorful.Color, error) {
	if math.IsNaN(value) {
		return colorful.Color{}, fmt.Errorf("%w: NaN", ErrBadValue)
	}
	target := positive
	if value < 0 {
		target = negative
	}
	t := min(math.Abs(value), 1)
	return base.BlendLab(target, t).Clamped(), nil
}

func Parse(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadValue, raw)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: NaN", ErrBadValue)
	}
	return v, nil
}

type Style struct {
	Background string
	Foreground string
}

func StyleFor(value float64) (Style, error) {
	bg, err := Color(value)
	if err != nil {
		return Style{}, err
	}
	fg := darkText
	if l, _, _ := bg.Lab(); l < darkThreshold {
		fg = lightText
	}
	return Style{
		Background: bg.Hex(),
		Foreground: fg.Hex(),
	}, nil
}
