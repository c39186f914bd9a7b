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
	"math"

	"github.com/golang/geo/r2"

	"github.com/transitmap/metro/host"
	"github.com/transitmap/metro/model"
)

// SchemePane is the host pane the scheme layer renders into.
const SchemePane = "overlay"

// SchemeLayer bridges the host map's layer lifecycle to a SchemeView.  It
// starts detached; attaching inserts the view's root node into the host's
// overlay pane and keeps the view's transform in sync with viewport changes.
// There is no explicit detach: the layer's subscriptions live exactly as
// long as the layer, so the host may simply discard it.
type SchemeLayer struct {
	view     *SchemeView
	attached bool
	off      func()
}

var _ host.Layer = (*SchemeLayer)(nil)

// NewSchemeLayer creates a detached layer for the view.
func NewSchemeLayer(view *SchemeView) *SchemeLayer {
	return &SchemeLayer{view: view}
}

// View returns the layer's scheme view.
func (l *SchemeLayer) View() *SchemeView { return l.view }

// Attached reports whether the layer has been inserted into a host map.
func (l *SchemeLayer) Attached() bool { return l.attached }

// Attach inserts the layer into the host map: it locates the overlay pane,
// positions the view once, subscribes to viewport notifications and appends
// the view's root node to the pane.  Every notification triggers exactly one
// reposition; none are dropped or batched.  A missing pane is a
// ConfigurationError.  Attaching twice is a no-op.
func (l *SchemeLayer) Attach(m host.Map) error {
	if l.attached {
		return nil
	}

	pane, ok := m.Panes().Get(SchemePane)
	if !ok {
		return &ConfigurationError{Reason: "host map has no " + SchemePane + " pane"}
	}

	l.view.UpdatePosition(pane.ToClientPixels(r2.Point{}), ScaleFromZoom(pane.Zoom()))

	l.off = pane.Subscribe(func(ev host.ViewportEvent) {
		l.view.UpdatePosition(ev.PixelOrigin, ScaleFromZoom(ev.Zoom))
	})

	pane.Element().AppendChild(l.view.Root())
	l.attached = true

	return nil
}

// ScaleFromZoom converts a zoom level to the host's map scale.
func ScaleFromZoom(zoom float64) float64 { return math.Exp2(zoom) }

// ZoomFromScale converts a map scale back to its zoom level.  It is the
// exact inverse of ScaleFromZoom.
func ZoomFromScale(scale float64) float64 { return math.Log2(scale) }

// FitZoom computes the zoom level at which the reference square exactly
// fills the given container.
func FitZoom(container model.Size) float64 {
	return math.Log2(math.Min(container.Width, container.Height) / RefSquare)
}
