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

// Package metro renders an interactive transit scheme as an overlay on a
// slippy map.  It loads a city's SVG diagram with embedded station
// metadata, keeps the diagram scaled and positioned against the host map's
// pan/zoom, and exposes station selection, prefix search and floating
// annotations.  The host map widget itself is an external collaborator
// consumed through the host package's interfaces.
package metro

import (
	"context"

	"github.com/golang/geo/r2"

	"github.com/transitmap/metro/host"
	"github.com/transitmap/metro/model"
)

// TransportMap is the composition root tying a loaded scheme, its view and
// layer, the station collection and the annotation collection to one host
// map.
type TransportMap struct {
	city     string
	doc      *SchemeDocument
	view     *SchemeView
	layer    *SchemeLayer
	stations *StationCollection

	annotations *AnnotationCollection
	m           host.Map
	events      *Emitter
}

// Open loads the named city's scheme and assembles a fully wired transport
// map on the host.  It blocks until the scheme is loaded; on any failure it
// returns the error and no transport map, so a partially initialized map is
// never handed to the caller.
func Open(ctx context.Context, m host.Map, city string, opts ...Option) (*TransportMap, error) {
	o := buildOptions(opts)

	client, err := o.client()
	if err != nil {
		return nil, err
	}

	doc, err := loadScheme(ctx, client, o.cities, city)
	if err != nil {
		return nil, err
	}

	view, err := NewSchemeView(doc)
	if err != nil {
		return nil, err
	}

	tm := &TransportMap{
		city:        city,
		doc:         doc,
		view:        view,
		layer:       NewSchemeLayer(view),
		annotations: &AnnotationCollection{},
		m:           m,
		events:      NewEmitter(),
	}

	if err := m.Layers().Add(tm.layer); err != nil {
		return nil, err
	}

	tm.stations = NewStationCollection(view, m.Projection())
	tm.stations.Events().SetParent(tm.events)

	tm.events.On(AnnotationAdd, func(ev Event) {
		if a, ok := ev.Target.(*Annotation); ok {
			tm.annotations.add(a)
		}
	})

	for _, s := range tm.stations.Stations() {
		if err := m.GeoObjects().Add(s); err != nil {
			return nil, err
		}
	}

	if err := tm.applyState(&o); err != nil {
		return nil, err
	}

	return tm, nil
}

// applyState applies the optional initial state, defaulting each part
// independently: zoom defaults to the container's fit zoom, center to the
// scheme's midpoint, shading to off.
func (tm *TransportMap) applyState(o *options) error {
	zoom := FitZoom(tm.m.ContainerSize())
	if o.zoom != nil {
		zoom = *o.zoom
	}

	zoom = model.Clamp(zoom, o.minZoom, o.maxZoom)
	tm.m.SetZoom(zoom)

	if o.center != nil {
		tm.m.SetCenter(*o.center)
	} else {
		size := tm.doc.Metadata().Size
		local := r2.Point{X: size.Width / 2, Y: size.Height / 2}
		mid := tm.view.FromClientPixels(local, zoom)
		tm.m.SetCenter(tm.m.Projection().FromGlobalPixels(mid, zoom))
	}

	var err error
	if o.shaded {
		err = tm.view.FadeOut()
	} else {
		err = tm.view.FadeIn()
	}

	if err != nil {
		return err
	}

	if len(o.selection) > 0 {
		return tm.stations.Select(o.selection...)
	}

	return nil
}

// City returns the city the map was opened for.
func (tm *TransportMap) City() string { return tm.city }

// Document returns the loaded scheme document.
func (tm *TransportMap) Document() *SchemeDocument { return tm.doc }

// View returns the scheme view.
func (tm *TransportMap) View() *SchemeView { return tm.view }

// Layer returns the scheme layer.
func (tm *TransportMap) Layer() *SchemeLayer { return tm.layer }

// Stations returns the station collection.
func (tm *TransportMap) Stations() *StationCollection { return tm.stations }

// Annotations returns the annotation collection.
func (tm *TransportMap) Annotations() *AnnotationCollection { return tm.annotations }

// Events returns the map-level emitter; station and collection events
// bubble up here.
func (tm *TransportMap) Events() *Emitter { return tm.events }

// Destroy removes the map's annotations and geo objects from the host.  The
// host map itself is left to its owner.
func (tm *TransportMap) Destroy() {
	for _, a := range tm.annotations.Items() {
		tm.annotations.Remove(a)
	}

	for _, s := range tm.stations.Stations() {
		tm.m.GeoObjects().Remove(s)
	}
}
