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

// Package host declares the boundary to the map widget this library overlays.
// The widget itself (pan/zoom, tile rendering, input dispatch) is an external
// collaborator; the overlay consumes only these interfaces and never wraps
// host primitives by inheritance.
package host

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"

	"github.com/transitmap/metro/model"
	"github.com/transitmap/metro/svgdom"
)

// Viewport event types delivered by a Pane.
const (
	ViewportChange     = "viewportchange"
	ZoomChange         = "zoomchange"
	ClientPixelsChange = "clientpixelschange"
)

// ViewportEvent describes one change of the pane's view state.  PixelOrigin
// and Zoom always carry the pane's current values, regardless of Type.
type ViewportEvent struct {
	Type        string
	PixelOrigin r2.Point
	Zoom        float64
}

// Pane is a rendering surface of the host map.
type Pane interface {
	// Element returns the pane's container node; overlay roots are
	// appended to it.
	Element() *svgdom.Node

	// ToClientPixels converts a point in the pane's global pixel space to
	// the pane's client (screen) pixel space at the current view state.
	ToClientPixels(origin r2.Point) r2.Point

	// Zoom returns the host map's current zoom level.
	Zoom() float64

	// Subscribe registers fn for viewport notifications and returns an
	// unsubscribe function.  Delivery is synchronous: fn is run to
	// completion before the next notification is dispatched.
	Subscribe(fn func(ViewportEvent)) (off func())
}

// Panes looks up the host map's rendering panes by name.
type Panes interface {
	Get(name string) (Pane, bool)
}

// Layer is an overlay the host map renders above its tiles.
type Layer interface {
	Attach(m Map) error
}

// Layers registers overlay layers with the host map.
type Layers interface {
	Add(l Layer) error
}

// GeoObject is anything placed on the map by geographic position.
type GeoObject interface {
	AttachToMap(m Map) error
}

// GeoObjects registers geo objects with the host map.
type GeoObjects interface {
	Add(o GeoObject) error
	Remove(o GeoObject)
}

// Placemark is the host's floating marker primitive.  Annotations wrap one
// by composition.
type Placemark interface {
	Position() s2.LatLng
	SetPosition(ll s2.LatLng)
	Properties() map[string]any
}

// Projection converts between geographic coordinates and the host's global
// pixel space at a given zoom.
type Projection interface {
	ToGlobalPixels(ll s2.LatLng, zoom float64) r2.Point
	FromGlobalPixels(p r2.Point, zoom float64) s2.LatLng
}

// Map is the host map widget.
type Map interface {
	Layers() Layers
	GeoObjects() GeoObjects
	Panes() Panes
	Projection() Projection

	Center() s2.LatLng
	SetCenter(ll s2.LatLng)
	Zoom() float64
	SetZoom(zoom float64)

	// ContainerSize returns the map container's size in screen pixels.
	ContainerSize() model.Size

	// NewPlacemark creates a detached marker; callers insert it via
	// GeoObjects when it should appear on the map.
	NewPlacemark(pos s2.LatLng, properties map[string]any) (Placemark, error)
}
