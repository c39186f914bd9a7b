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

package model_test

import (
	"testing"

	"github.com/golang/geo/s2"
	"github.com/stretchr/testify/assert"

	"github.com/transitmap/metro/model"
)

func TestInitialGeoBounds(t *testing.T) {
	initial := model.InitialGeoBounds()
	assert.Equal(t, initial.Top, model.MinLat)
	assert.Equal(t, initial.Bottom, model.MaxLat)
	assert.Equal(t, initial.Right, model.MinLon)
	assert.Equal(t, initial.Left, model.MaxLon)
}

func TestGeoBounds_EqualWithin(t *testing.T) {
	bounds_1 := &model.GeoBounds{Top: 55.8578, Left: 37.3786, Bottom: 55.5847, Right: 37.8422}
	bounds_2 := &model.GeoBounds{
		Top:    bounds_1.Top + model.Degrees(model.E6),
		Left:   bounds_1.Left + model.Degrees(model.E6),
		Bottom: bounds_1.Bottom + model.Degrees(model.E6),
		Right:  bounds_1.Right + model.Degrees(model.E6),
	}

	assert.True(t, bounds_1.EqualWithin(bounds_2, model.E5))
	assert.False(t, bounds_1.EqualWithin(bounds_2, model.E7))
}

func TestGeoBounds_Contains(t *testing.T) {
	bounds := &model.GeoBounds{Top: 55.8578, Left: 37.3786, Bottom: 55.5847, Right: 37.8422}

	test_cases := []struct {
		name     string
		lat      model.Degrees
		lng      model.Degrees
		expected bool
	}{
		{"bottom/left", bounds.Bottom, bounds.Left, true},
		{"top/left", bounds.Top, bounds.Left, true},
		{"top/right", bounds.Top, bounds.Right, true},
		{"bottom/right", bounds.Bottom, bounds.Right, true},

		{"bottom/left-E5", bounds.Bottom, bounds.Left - model.Degrees(model.E5), false},
		{"bottom-E5/left", bounds.Bottom - model.Degrees(model.E5), bounds.Left, false},
		{"top/right+E5", bounds.Top, bounds.Right + model.Degrees(model.E5), false},
		{"top+E5/right", bounds.Top + model.Degrees(model.E5), bounds.Right, false},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, bounds.Contains(tc.lat, tc.lng))
		})
	}
}

func TestGeoBounds_ExpandWithLatLng(t *testing.T) {
	bounds := model.InitialGeoBounds()
	bounds.ExpandWithLatLng(s2.LatLngFromDegrees(-45, 90))
	bounds.ExpandWithLatLng(s2.LatLngFromDegrees(45, -90))

	assert.True(t, bounds.Contains(-45, 90))
	assert.True(t, bounds.Contains(45, -90))
	assert.True(t, bounds.Contains(-45, -90))
	assert.True(t, bounds.Contains(45, 90))
}

func TestGeoBounds_Center(t *testing.T) {
	bounds := &model.GeoBounds{Top: 60, Left: 20, Bottom: 50, Right: 40}
	center := bounds.Center()

	assert.InDelta(t, 55.0, center.Lat.Degrees(), 1e-9)
	assert.InDelta(t, 30.0, center.Lng.Degrees(), 1e-9)
}

func TestGeoBoundsString(t *testing.T) {
	bounds := &model.GeoBounds{Top: 55.8578, Left: 37.3786, Bottom: 55.5847, Right: 37.8422}
	assert.Equal(t, "[(55.8578, 37.3786) (55.5847, 37.8422)]", bounds.String())
}
