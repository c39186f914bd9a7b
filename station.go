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
	"strings"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s2"
	"github.com/google/uuid"

	"github.com/transitmap/metro/host"
	"github.com/transitmap/metro/model"
	"github.com/transitmap/metro/svgdom"
)

const selectedClass = "selected"

// Station is one selectable transit stop.  It starts unselected; Select and
// Deselect are idempotent and always paired with a move of the station's
// glyphs between the normal and highlight layers.  A click toggles
// selection; the handler is wired once at construction.
type Station struct {
	code    StationCode
	title   string
	labelID LabelID

	view *SchemeView
	proj host.Projection

	events   *Emitter
	selected bool

	hostMap     host.Map
	annotations []*Annotation

	// original parent per moved glyph, captured on select
	restore map[*svgdom.Node]*svgdom.Node
}

var _ host.GeoObject = (*Station)(nil)

func newStation(code StationCode, info StationInfo, view *SchemeView, proj host.Projection) *Station {
	s := &Station{
		code:    code,
		title:   info.Name,
		labelID: info.LabelID,
		view:    view,
		proj:    proj,
		events:  NewEmitter(),
	}

	s.events.On(Click, func(Event) {
		_ = s.Toggle()
	})

	return s
}

// Code returns the station's unique code.
func (s *Station) Code() StationCode { return s.code }

// Title returns the station's display title.
func (s *Station) Title() string { return s.title }

// Selected reports whether the station is currently selected.
func (s *Station) Selected() bool { return s.selected }

// Events returns the station's event emitter.
func (s *Station) Events() *Emitter { return s.events }

// Annotations returns the annotations this station owns.
func (s *Station) Annotations() []*Annotation { return s.annotations }

// AttachToMap records the host map the station is placed on.
func (s *Station) AttachToMap(m host.Map) error {
	s.hostMap = m

	return nil
}

// glyphSet is the resolved visual material of one station.
type glyphSet struct {
	label     *svgdom.Node
	indicator *svgdom.Node
	glyphs    []*svgdom.Node
	highlight *svgdom.Node
}

func (s *Station) resolve() (*glyphSet, error) {
	dom := s.view.Document().DOM()

	g := &glyphSet{}

	if g.label = dom.ByID(labelNodeID(s.labelID)); g.label == nil {
		return nil, &StructuralError{ID: labelNodeID(s.labelID)}
	}

	if g.indicator = dom.ByID(indicatorNodeID(s.labelID)); g.indicator == nil {
		return nil, &StructuralError{ID: indicatorNodeID(s.labelID)}
	}

	if g.highlight = dom.ByID(HighlightLayerID); g.highlight == nil {
		return nil, &StructuralError{ID: HighlightLayerID}
	}

	// Validated against Labels at load time.
	info := s.view.Document().Metadata().Labels[s.labelID]

	for _, id := range info.StationIDs {
		n := dom.ByID(id)
		if n == nil {
			return nil, &StructuralError{ID: id}
		}

		g.glyphs = append(g.glyphs, n)
	}

	return g, nil
}

// Select highlights the station: its indicator glyph gains the selected
// style and the full glyph set moves to the highlight layer.  Selecting an
// already-selected station is a no-op and emits nothing.
func (s *Station) Select() error {
	if s.selected {
		return nil
	}

	g, err := s.resolve()
	if err != nil {
		return err
	}

	addClass(g.indicator, selectedClass)

	s.restore = make(map[*svgdom.Node]*svgdom.Node, len(g.glyphs)+1)

	for _, n := range append([]*svgdom.Node{g.label}, g.glyphs...) {
		s.restore[n] = n.Parent()
		g.highlight.AppendChild(n)
	}

	s.selected = true
	s.events.Emit(Event{Type: SelectionChange, Action: ActionSelect, Target: s})

	return nil
}

// Deselect is the exact mirror of Select: it reverts the indicator style,
// returns the glyphs to their original layer and emits a deselect event.
// Deselecting an unselected station is a no-op and emits nothing.
func (s *Station) Deselect() error {
	if !s.selected {
		return nil
	}

	g, err := s.resolve()
	if err != nil {
		return err
	}

	removeClass(g.indicator, selectedClass)

	for n, parent := range s.restore {
		if parent != nil {
			parent.AppendChild(n)
		} else {
			n.Remove()
		}
	}

	s.restore = nil
	s.selected = false
	s.events.Emit(Event{Type: SelectionChange, Action: ActionDeselect, Target: s})

	return nil
}

// Toggle selects an unselected station and deselects a selected one.
func (s *Station) Toggle() error {
	if s.selected {
		return s.Deselect()
	}

	return s.Select()
}

func (s *Station) localBounds() (model.PixelBounds, error) {
	g, err := s.resolve()
	if err != nil {
		return model.PixelBounds{}, err
	}

	bounds := model.InitialPixelBounds()

	for _, n := range g.glyphs {
		bounds = bounds.Union(svgdom.LocalBounds(n))
	}

	if bounds.Empty() {
		bounds = svgdom.LocalBounds(g.label)
	}

	if bounds.Empty() {
		return model.PixelBounds{}, &StructuralError{ID: labelNodeID(s.labelID)}
	}

	return bounds, nil
}

// Bounds computes the station's geographic bounding box at the host's
// current zoom.  It is recomputed on every call; glyph boxes are cheap
// relative to the cost of caching thousands of them.
func (s *Station) Bounds() (*model.GeoBounds, error) {
	local, err := s.localBounds()
	if err != nil {
		return nil, err
	}

	zoom := s.view.Zoom()
	bounds := model.InitialGeoBounds()

	corners := []r2.Point{
		local.Min,
		local.Max,
		{X: local.Min.X, Y: local.Max.Y},
		{X: local.Max.X, Y: local.Min.Y},
	}

	for _, c := range corners {
		global := s.view.FromClientPixels(c, zoom)
		bounds.ExpandWithLatLng(s.proj.FromGlobalPixels(global, zoom))
	}

	return bounds, nil
}

// Position computes the station's geographic anchor: the midpoint of its
// glyph bounding box mapped through the view transform and the host
// projection at the current zoom.
func (s *Station) Position() (s2.LatLng, error) {
	local, err := s.localBounds()
	if err != nil {
		return s2.LatLng{}, err
	}

	global := s.view.FromClientPixels(local.Center(), s.view.Zoom())

	return s.proj.FromGlobalPixels(global, s.view.Zoom()), nil
}

// Annotate creates an annotation anchored at the station's current position
// and, unless skipMapInsertion is set, inserts it into the host map.  The
// station must be attached to a host map first.
func (s *Station) Annotate(properties map[string]any, skipMapInsertion bool) (*Annotation, error) {
	if s.hostMap == nil {
		return nil, &ConfigurationError{Reason: "station is not attached to a host map"}
	}

	pos, err := s.Position()
	if err != nil {
		return nil, err
	}

	mark, err := s.hostMap.NewPlacemark(pos, properties)
	if err != nil {
		return nil, fmt.Errorf("could not create placemark: %w", err)
	}

	a := &Annotation{
		id:         uuid.New(),
		position:   pos,
		properties: properties,
		mark:       mark,
		owner:      s,
	}

	if !skipMapInsertion {
		if err := s.hostMap.GeoObjects().Add(a); err != nil {
			return nil, fmt.Errorf("could not insert annotation: %w", err)
		}
	}

	s.annotations = append(s.annotations, a)
	s.events.Emit(Event{Type: AnnotationAdd, Target: a})

	return a, nil
}

func addClass(n *svgdom.Node, class string) {
	for _, c := range strings.Fields(n.Attr("class")) {
		if c == class {
			return
		}
	}

	cur := n.Attr("class")
	if cur == "" {
		n.SetAttr("class", class)

		return
	}

	n.SetAttr("class", cur+" "+class)
}

func removeClass(n *svgdom.Node, class string) {
	fields := strings.Fields(n.Attr("class"))
	kept := fields[:0]

	for _, c := range fields {
		if c != class {
			kept = append(kept, c)
		}
	}

	if len(kept) == 0 {
		n.RemoveAttr("class")

		return
	}

	n.SetAttr("class", strings.Join(kept, " "))
}
