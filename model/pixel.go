package model

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"golang.org/x/exp/constraints"
)

// Size is a width/height pair in diagram pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%sx%s", ftoa(s.Width), ftoa(s.Height))
}

// PixelBounds is an axis-aligned rectangle in pixel space.  Min is the
// top-left corner and Max the bottom-right, matching screen coordinates.
type PixelBounds struct {
	Min r2.Point
	Max r2.Point
}

// InitialPixelBounds creates a PixelBounds that is meant to be expanded.
func InitialPixelBounds() PixelBounds {
	return PixelBounds{
		Min: r2.Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: r2.Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// Empty reports whether the bounds contain no points.
func (b PixelBounds) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// ExpandWithPoint grows the bounds to include the point.
func (b PixelBounds) ExpandWithPoint(p r2.Point) PixelBounds {
	return PixelBounds{
		Min: r2.Point{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y)},
		Max: r2.Point{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest bounds containing both operands.
func (b PixelBounds) Union(o PixelBounds) PixelBounds {
	if o.Empty() {
		return b
	}

	if b.Empty() {
		return o
	}

	return b.ExpandWithPoint(o.Min).ExpandWithPoint(o.Max)
}

// Center returns the midpoint of the bounds.
func (b PixelBounds) Center() r2.Point {
	return r2.Point{X: (b.Min.X + b.Max.X) / 2, Y: (b.Min.Y + b.Max.Y) / 2}
}

// Width returns the horizontal extent of the bounds.
func (b PixelBounds) Width() float64 { return b.Max.X - b.Min.X }

// Height returns the vertical extent of the bounds.
func (b PixelBounds) Height() float64 { return b.Max.Y - b.Min.Y }

func (b PixelBounds) String() string {
	return fmt.Sprintf("[(%s, %s) (%s, %s)]",
		ftoa(b.Min.X), ftoa(b.Min.Y), ftoa(b.Max.X), ftoa(b.Max.Y))
}

// Clamp limits v to the interval [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
