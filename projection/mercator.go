// Copyright 2025 the original author or authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package projection implements the spherical (web) mercator projection used
// by slippy maps: a 256-pixel world square at zero zoom, doubling per level.
package projection

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"

	"github.com/transitmap/metro/host"
)

// WorldSize is the side of the zero-zoom world square in pixels.
const WorldSize = 256

// MaxLatitude is the largest latitude the projection maps without clipping.
const MaxLatitude = 85.05112877980659

// SphericalMercator projects geographic coordinates onto the slippy-map
// pixel grid.  The zero value is ready to use.
type SphericalMercator struct{}

var _ host.Projection = SphericalMercator{}

// ToGlobalPixels converts a geographic point to global pixel coordinates at
// the given zoom.  Latitudes beyond MaxLatitude are clamped.
func (SphericalMercator) ToGlobalPixels(ll s2.LatLng, zoom float64) r2.Point {
	world := WorldSize * math.Exp2(zoom)

	lat := math.Max(-MaxLatitude, math.Min(MaxLatitude, ll.Lat.Degrees()))
	phi := lat * math.Pi / 180

	x := world * (ll.Lng.Degrees()/360 + 0.5)
	y := world * (0.5 - math.Log(math.Tan(math.Pi/4+phi/2))/(2*math.Pi))

	return r2.Point{X: x, Y: y}
}

// FromGlobalPixels converts global pixel coordinates at the given zoom back
// to a geographic point.  It is the inverse of ToGlobalPixels.
func (SphericalMercator) FromGlobalPixels(p r2.Point, zoom float64) s2.LatLng {
	world := WorldSize * math.Exp2(zoom)

	lng := 360 * (p.X/world - 0.5)
	phi := 2*math.Atan(math.Exp((0.5-p.Y/world)*2*math.Pi)) - math.Pi/2
	lat := phi * 180 / math.Pi

	return s2.LatLngFromDegrees(lat, lng)
}
