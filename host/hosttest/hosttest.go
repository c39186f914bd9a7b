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

// Package hosttest provides an in-memory reference implementation of the
// host map boundary: fake panes over svgdom containers, a spherical
// mercator projection and synchronous event delivery.  It exists to test
// the overlay contract, not to be a map.
package hosttest

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"

	"github.com/transitmap/metro/host"
	"github.com/transitmap/metro/model"
	"github.com/transitmap/metro/projection"
	"github.com/transitmap/metro/svgdom"
)

// Map is a fake host map.  All notification delivery is synchronous and
// runs on the caller's goroutine.
type Map struct {
	layers     []host.Layer
	geoObjects []host.GeoObject
	panes      map[string]*Pane
	proj       host.Projection
	center     s2.LatLng
	zoom       float64
	size       model.Size
}

var _ host.Map = (*Map)(nil)

// NewMap creates a fake host with a 512x512 container and one overlay pane.
func NewMap() *Map {
	m := &Map{
		proj: projection.SphericalMercator{},
		size: model.Size{Width: 512, Height: 512},
	}

	m.panes = map[string]*Pane{
		"overlay": newPane(m),
	}

	return m
}

// NewMapWithoutPanes creates a fake host with no rendering panes, for
// exercising missing-container failures.
func NewMapWithoutPanes() *Map {
	m := NewMap()
	m.panes = map[string]*Pane{}

	return m
}

func (m *Map) Layers() host.Layers         { return layers{m} }
func (m *Map) GeoObjects() host.GeoObjects { return geoObjects{m} }
func (m *Map) Projection() host.Projection { return m.proj }

func (m *Map) Panes() host.Panes { return panes{m} }

func (m *Map) Center() s2.LatLng { return m.center }

// SetCenter recenters the viewport and notifies pane subscribers.
func (m *Map) SetCenter(ll s2.LatLng) {
	m.center = ll
	m.broadcast(host.ClientPixelsChange)
}

func (m *Map) Zoom() float64 { return m.zoom }

// SetZoom changes the zoom and notifies pane subscribers.
func (m *Map) SetZoom(zoom float64) {
	m.zoom = zoom
	m.broadcast(host.ZoomChange)
}

func (m *Map) ContainerSize() model.Size { return m.size }

// SetContainerSize resizes the viewport and notifies pane subscribers.
func (m *Map) SetContainerSize(size model.Size) {
	m.size = size
	m.broadcast(host.ViewportChange)
}

func (m *Map) NewPlacemark(pos s2.LatLng, properties map[string]any) (host.Placemark, error) {
	return &Placemark{pos: pos, props: properties}, nil
}

// AddedLayers returns the layers registered so far.
func (m *Map) AddedLayers() []host.Layer { return m.layers }

// AddedGeoObjects returns the geo objects currently registered.
func (m *Map) AddedGeoObjects() []host.GeoObject { return m.geoObjects }

// viewOrigin is the global pixel coordinate of the viewport's top-left
// corner at the current view state.
func (m *Map) viewOrigin() r2.Point {
	c := m.proj.ToGlobalPixels(m.center, m.zoom)

	return r2.Point{X: c.X - m.size.Width/2, Y: c.Y - m.size.Height/2}
}

func (m *Map) broadcast(eventType string) {
	for _, p := range m.panes {
		p.notify(eventType)
	}
}

type layers struct{ m *Map }

func (l layers) Add(layer host.Layer) error {
	l.m.layers = append(l.m.layers, layer)

	return layer.Attach(l.m)
}

type geoObjects struct{ m *Map }

func (g geoObjects) Add(o host.GeoObject) error {
	g.m.geoObjects = append(g.m.geoObjects, o)

	return o.AttachToMap(g.m)
}

func (g geoObjects) Remove(o host.GeoObject) {
	for i, existing := range g.m.geoObjects {
		if existing == o {
			g.m.geoObjects = append(g.m.geoObjects[:i], g.m.geoObjects[i+1:]...)

			return
		}
	}
}

type panes struct{ m *Map }

func (p panes) Get(name string) (host.Pane, bool) {
	pane, ok := p.m.panes[name]

	return pane, ok
}

// Pane is a fake rendering surface.
type Pane struct {
	m      *Map
	elem   *svgdom.Node
	subs   map[int]func(host.ViewportEvent)
	nextID int
}

var _ host.Pane = (*Pane)(nil)

func newPane(m *Map) *Pane {
	return &Pane{
		m:    m,
		elem: svgdom.NewElement("pane"),
		subs: make(map[int]func(host.ViewportEvent)),
	}
}

func (p *Pane) Element() *svgdom.Node { return p.elem }

func (p *Pane) Zoom() float64 { return p.m.zoom }

func (p *Pane) ToClientPixels(origin r2.Point) r2.Point {
	vo := p.m.viewOrigin()

	return r2.Point{X: origin.X - vo.X, Y: origin.Y - vo.Y}
}

func (p *Pane) Subscribe(fn func(host.ViewportEvent)) (off func()) {
	id := p.nextID
	p.nextID++
	p.subs[id] = fn

	return func() {
		delete(p.subs, id)
	}
}

func (p *Pane) notify(eventType string) {
	ev := host.ViewportEvent{
		Type:        eventType,
		PixelOrigin: p.ToClientPixels(r2.Point{}),
		Zoom:        p.m.zoom,
	}

	for _, fn := range p.subs {
		fn(ev)
	}
}

// Placemark is a fake floating marker.
type Placemark struct {
	pos   s2.LatLng
	props map[string]any
}

var _ host.Placemark = (*Placemark)(nil)

func (p *Placemark) Position() s2.LatLng { return p.pos }

func (p *Placemark) SetPosition(ll s2.LatLng) { p.pos = ll }

func (p *Placemark) Properties() map[string]any { return p.props }
