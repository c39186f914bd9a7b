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

package metro_test

import (
	"context"
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitmap/metro"
	"github.com/transitmap/metro/host/hosttest"
)

func openFixtureMap(t *testing.T, opts ...metro.Option) (*hosttest.Map, *metro.TransportMap) {
	t.Helper()

	dir := t.TempDir()
	writeScheme(t, dir, "1.ru.svg", schemeMarkup)

	m := hosttest.NewMap()

	tm, err := metro.Open(context.Background(), m, "moscow",
		append([]metro.Option{metro.WithPath(dir)}, opts...)...)
	require.NoError(t, err)

	return m, tm
}

func TestOpen(t *testing.T) {
	m, tm := openFixtureMap(t)

	assert.Equal(t, "moscow", tm.City())
	assert.True(t, tm.Layer().Attached())
	assert.Equal(t, 4, tm.Stations().Len())
	assert.Empty(t, tm.Stations().Selection())

	require.Len(t, m.AddedLayers(), 1)
	assert.Len(t, m.AddedGeoObjects(), 4)

	// the 512px container fits the reference square at zoom 1, centered on
	// the scheme's midpoint
	assert.Equal(t, 1.0, m.Zoom())
	assert.InDelta(t, 0, m.Center().Lat.Degrees(), 1e-9)
	assert.InDelta(t, 0, m.Center().Lng.Degrees(), 1e-9)

	// scheme layer starts at full strength
	layer := tm.Document().DOM().ByID(metro.SchemeLayerID)
	require.NotNil(t, layer)
	assert.Equal(t, "1", layer.Attr("opacity"))
}

func TestOpenUnknownCity(t *testing.T) {
	m := hosttest.NewMap()

	var ce *metro.ConfigurationError

	tm, err := metro.Open(context.Background(), m, "atlantis",
		metro.WithPath(t.TempDir()))
	require.ErrorAs(t, err, &ce)
	assert.Nil(t, tm)

	// nothing was wired into the host
	assert.Empty(t, m.AddedLayers())
	assert.Empty(t, m.AddedGeoObjects())
}

func TestOpenInitialState(t *testing.T) {
	m, tm := openFixtureMap(t,
		metro.WithZoom(5),
		metro.WithShaded(true),
		metro.WithSelection(2, 5))

	// requested zoom exceeds the range and clamps to the maximum
	assert.Equal(t, 3.0, m.Zoom())

	layer := tm.Document().DOM().ByID(metro.SchemeLayerID)
	require.NotNil(t, layer)
	assert.Equal(t, "0.5", layer.Attr("opacity"))

	assert.Equal(t, []metro.StationCode{2, 5}, tm.Stations().Selection())
}

func TestOpenWithCenter(t *testing.T) {
	center := s2.LatLngFromDegrees(10, 20)

	m, _ := openFixtureMap(t, metro.WithCenter(center))

	assert.InDelta(t, 10, m.Center().Lat.Degrees(), 1e-9)
	assert.InDelta(t, 20, m.Center().Lng.Degrees(), 1e-9)
}

func TestOpenZoomRange(t *testing.T) {
	m, _ := openFixtureMap(t, metro.WithZoom(5), metro.WithZoomRange(0, 2))

	assert.Equal(t, 2.0, m.Zoom())
}

func TestOpenInitialSelectionUnknownCode(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "1.ru.svg", schemeMarkup)

	var le *metro.LookupError

	_, err := metro.Open(context.Background(), hosttest.NewMap(), "moscow",
		metro.WithPath(dir), metro.WithSelection(42))
	require.ErrorAs(t, err, &le)
}

func TestOpenEventsBubble(t *testing.T) {
	_, tm := openFixtureMap(t)

	var events []metro.Event

	tm.Events().On(metro.SelectionChange, func(ev metro.Event) {
		events = append(events, ev)
	})

	require.NoError(t, tm.Stations().Select(2))

	require.Len(t, events, 1)
	assert.Equal(t, metro.ActionSelect, events[0].Action)
}

func TestOpenAnnotationFlow(t *testing.T) {
	m, tm := openFixtureMap(t)

	s, ok := tm.Stations().ByCode(2)
	require.True(t, ok)

	a, err := s.Annotate(map[string]any{"balloonContent": "Central Park"}, false)
	require.NoError(t, err)

	// bubbled into the map-level annotation collection
	assert.Equal(t, []*metro.Annotation{a}, tm.Annotations().Items())
	assert.Len(t, m.AddedGeoObjects(), 5)

	tm.Annotations().Remove(a)
	assert.Empty(t, tm.Annotations().Items())
	assert.Empty(t, s.Annotations())
	assert.Len(t, m.AddedGeoObjects(), 4)
}

func TestDestroy(t *testing.T) {
	m, tm := openFixtureMap(t)

	s, ok := tm.Stations().ByCode(2)
	require.True(t, ok)

	_, err := s.Annotate(nil, false)
	require.NoError(t, err)

	tm.Destroy()

	assert.Empty(t, m.AddedGeoObjects())
	assert.Empty(t, tm.Annotations().Items())
}
