// Package pixel renders the 3D scene at a fixed low resolution and scales the
// result onto the window in whole-pixel steps.
package pixel

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultWidth  = 854
	DefaultHeight = 480

	// displayZoom is applied to the display camera's orthographic scale.
	displayZoom = 0.8
)

var ErrInvalidResolution = errors.New("pixel: invalid resolution")

// Resolution is the virtual pixel grid the scene renders at.
type Resolution struct {
	Width  int
	Height int
}

func NewResolution(width, height int) (Resolution, error) {
	if width <= 0 || height <= 0 {
		return Resolution{}, fmt.Errorf("%w: %dx%d", ErrInvalidResolution, width, height)
	}
	return Resolution{Width: width, Height: height}, nil
}

// ComputeScale returns the display camera's orthographic scale for a window
// of the given physical size. The limiting axis magnification is rounded to a
// whole number, floored at 1, so the result is always positive and finite.
// An invalid fixed resolution is treated as a magnification of 1.
func ComputeScale(fixed Resolution, windowWidth, windowHeight int) float64 {
	if fixed.Width <= 0 || fixed.Height <= 0 {
		return displayZoom
	}
	hScale := float64(windowWidth) / float64(fixed.Width)
	vScale := float64(windowHeight) / float64(fixed.Height)

	n := math.Round(math.Min(hScale, vScale))
	if n < 1 || math.IsNaN(n) || math.IsInf(n, 0) {
		n = 1
	}
	return displayZoom / n
}
