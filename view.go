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

package metro

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"

	"github.com/transitmap/metro/svgdom"
)

// RefSquare is the side of the host's zero-zoom tile square in pixels.  The
// scheme is scaled to fit inside it regardless of native aspect ratio.
const RefSquare = 256.0

// shadedOpacity dims the scheme layer while leaving highlighted stations at
// full strength.
const shadedOpacity = "0.5"

// SchemeView is the live on-screen instance of a scheme.  It owns the fixed
// base scale/offset fitting the diagram into the reference square and the
// transform keeping the diagram aligned with the host's pixel space.
type SchemeView struct {
	doc        *SchemeDocument
	baseScale  float64
	baseOffset r2.Point
	zoom       float64
}

// NewSchemeView creates a view for a loaded scheme.  It fails with a
// LoadError when the document lacks size metadata.
func NewSchemeView(doc *SchemeDocument) (*SchemeView, error) {
	size := doc.Metadata().Size
	if size.Empty() {
		return nil, &LoadError{Err: fmt.Errorf("document lacks size metadata")}
	}

	scale := math.Min(RefSquare/size.Width, RefSquare/size.Height)

	return &SchemeView{
		doc:       doc,
		baseScale: scale,
		baseOffset: r2.Point{
			X: math.Floor((RefSquare - size.Width*scale) / 2),
			Y: math.Floor((RefSquare - size.Height*scale) / 2),
		},
	}, nil
}

// Document returns the scheme this view renders.
func (v *SchemeView) Document() *SchemeDocument { return v.doc }

// Root returns the view's root visual node.
func (v *SchemeView) Root() *svgdom.Node { return v.doc.DOM().Root() }

// BaseScale returns the fixed scale fitting the diagram into the reference
// square at zero zoom.
func (v *SchemeView) BaseScale() float64 { return v.baseScale }

// BaseOffset returns the fixed offset centering the diagram within the
// reference square at zero zoom.
func (v *SchemeView) BaseOffset() r2.Point { return v.baseOffset }

// Zoom returns the host zoom last applied through UpdatePosition.
func (v *SchemeView) Zoom() float64 { return v.zoom }

// UpdatePosition recomputes the live transform for the given host pixel
// origin and scale and applies it to the root visual node.  Each call fully
// replaces the prior transform; repeated calls with the same arguments are
// idempotent and nothing accumulates.
func (v *SchemeView) UpdatePosition(pixelOrigin r2.Point, hostScale float64) {
	scale := v.baseScale * hostScale
	tx := v.baseOffset.X*hostScale + pixelOrigin.X
	ty := v.baseOffset.Y*hostScale + pixelOrigin.Y

	v.zoom = ZoomFromScale(hostScale)

	v.Root().SetAttr("transform", fmt.Sprintf("translate(%g,%g) scale(%g)", tx, ty, scale))
}

// ToClientPixels converts a point in the host's global pixel space at the
// given zoom into the diagram's own pixel space.
func (v *SchemeView) ToClientPixels(global r2.Point, zoom float64) r2.Point {
	mapScale := ScaleFromZoom(zoom)

	return r2.Point{
		X: (global.X/mapScale - v.baseOffset.X) / v.baseScale,
		Y: (global.Y/mapScale - v.baseOffset.Y) / v.baseScale,
	}
}

// FromClientPixels converts a point in the diagram's own pixel space into
// the host's global pixel space at the given zoom.  It is the exact inverse
// of ToClientPixels.
func (v *SchemeView) FromClientPixels(client r2.Point, zoom float64) r2.Point {
	mapScale := ScaleFromZoom(zoom)

	return r2.Point{
		X: (client.X*v.baseScale + v.baseOffset.X) * mapScale,
		Y: (client.Y*v.baseScale + v.baseOffset.Y) * mapScale,
	}
}

// FadeIn restores the scheme layer to full opacity.
func (v *SchemeView) FadeIn() error {
	return v.setSchemeOpacity("1")
}

// FadeOut dims the scheme layer so highlighted stations stand out.
func (v *SchemeView) FadeOut() error {
	return v.setSchemeOpacity(shadedOpacity)
}

func (v *SchemeView) setSchemeOpacity(value string) error {
	layer := v.doc.DOM().ByID(SchemeLayerID)
	if layer == nil {
		return &StructuralError{ID: SchemeLayerID}
	}

	layer.SetAttr("opacity", value)

	return nil
}
