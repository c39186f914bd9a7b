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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/transitmap/metro"
	"github.com/transitmap/metro/projection"
)

// schemeMarkup is a small but structurally complete scheme: a 512x256
// diagram with three regular stations, plus station 9 whose metadata
// references a glyph the markup lacks.
const schemeMarkup = `<svg xmlns="http://www.w3.org/2000/svg">
  <metadata>{
    "size": {"width": 512, "height": 256},
    "stations": {
      "2": {"labelId": 2, "name": "Central Park"},
      "5": {"labelId": 5, "name": "Centennial Square"},
      "7": {"labelId": 7, "name": "Park Row"},
      "9": {"labelId": 9, "name": "Ghost Street"}
    },
    "labels": {
      "2": {"stationIds": ["st-2-a"]},
      "5": {"stationIds": ["st-5-a"]},
      "7": {"stationIds": ["st-7-a", "st-7-b"]},
      "9": {"stationIds": ["st-9-missing"]}
    }
  }</metadata>
  <g id="scheme">
    <g id="label-2">
      <circle id="indicator-2" cx="100" cy="80" r="6"/>
      <text x="110" y="80">Central Park</text>
    </g>
    <rect id="st-2-a" x="100" y="80" width="20" height="20"/>
    <g id="label-5">
      <circle id="indicator-5" cx="300" cy="120" r="6"/>
      <text x="310" y="120">Centennial Square</text>
    </g>
    <rect id="st-5-a" x="300" y="120" width="10" height="10"/>
    <g id="label-7">
      <circle id="indicator-7" cx="200" cy="40" r="6"/>
      <text x="210" y="40">Park Row</text>
    </g>
    <rect id="st-7-a" x="200" y="40" width="8" height="8"/>
    <rect id="st-7-b" x="216" y="40" width="8" height="8"/>
    <g id="label-9">
      <circle id="indicator-9" cx="400" cy="200" r="6"/>
    </g>
  </g>
  <g id="highlight"/>
</svg>`

func parseFixture(t *testing.T) *metro.SchemeDocument {
	t.Helper()

	doc, err := metro.ParseSchemeDocument([]byte(schemeMarkup))
	require.NoError(t, err)

	return doc
}

func newFixtureView(t *testing.T) *metro.SchemeView {
	t.Helper()

	view, err := metro.NewSchemeView(parseFixture(t))
	require.NoError(t, err)

	return view
}

func newFixtureCollection(t *testing.T) (*metro.SchemeView, *metro.StationCollection) {
	t.Helper()

	view := newFixtureView(t)

	return view, metro.NewStationCollection(view, projection.SphericalMercator{})
}
