package model

import (
	"fmt"

	"github.com/golang/geo/s2"
)

const (
	MaxLat Degrees = 90.0
	MaxLon Degrees = 180.0
	MinLat Degrees = -90.0
	MinLon Degrees = -180.0
)

// GeoBounds is a geographic bounding box.
type GeoBounds struct {
	Top    Degrees
	Left   Degrees
	Bottom Degrees
	Right  Degrees
}

// InitialGeoBounds creates a GeoBounds that is meant to be expanded.
func InitialGeoBounds() *GeoBounds {
	return &GeoBounds{
		Top:    MinLat,
		Left:   MaxLon,
		Bottom: MaxLat,
		Right:  MinLon,
	}
}

// EqualWithin checks if two bounding boxes are within a specific epsilon.
func (b *GeoBounds) EqualWithin(o *GeoBounds, eps Epsilon) bool {
	return b.Left.EqualWithin(o.Left, eps) &&
		b.Right.EqualWithin(o.Right, eps) &&
		b.Top.EqualWithin(o.Top, eps) &&
		b.Bottom.EqualWithin(o.Bottom, eps)
}

// Contains checks if the bounding box contains the lat lng point.
func (b *GeoBounds) Contains(lat Degrees, lng Degrees) bool {
	return b.Left <= lng && lng <= b.Right && b.Bottom <= lat && lat <= b.Top
}

// ExpandWithLatLng grows the bounding box to include the point.
func (b *GeoBounds) ExpandWithLatLng(ll s2.LatLng) {
	lat := Degrees(ll.Lat.Degrees())
	lng := Degrees(ll.Lng.Degrees())

	if b.Top < lat {
		b.Top = lat
	}

	if b.Bottom > lat {
		b.Bottom = lat
	}

	if b.Left > lng {
		b.Left = lng
	}

	if b.Right < lng {
		b.Right = lng
	}
}

// Center returns the midpoint of the bounding box.
func (b *GeoBounds) Center() s2.LatLng {
	return s2.LatLngFromDegrees(
		float64(b.Top+b.Bottom)/2,
		float64(b.Left+b.Right)/2,
	)
}

func (b *GeoBounds) String() string {
	return fmt.Sprintf("[(%s, %s) (%s, %s)]",
		ftoa(float64(b.Top)), ftoa(float64(b.Left)),
		ftoa(float64(b.Bottom)), ftoa(float64(b.Right)))
}
