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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitmap/metro"
)

func TestCollectionOrder(t *testing.T) {
	_, stations := newFixtureCollection(t)

	require.Equal(t, 4, stations.Len())

	var codes []metro.StationCode
	for _, s := range stations.Stations() {
		codes = append(codes, s.Code())
	}

	assert.Equal(t, []metro.StationCode{2, 5, 7, 9}, codes)
}

func TestByCode(t *testing.T) {
	_, stations := newFixtureCollection(t)

	s, ok := stations.ByCode(5)
	require.True(t, ok)
	assert.Equal(t, "Centennial Square", s.Title())

	_, ok = stations.ByCode(42)
	assert.False(t, ok)
}

func TestSelectUnknownCode(t *testing.T) {
	_, stations := newFixtureCollection(t)

	var le *metro.LookupError

	err := stations.Select(2, 42)
	require.ErrorAs(t, err, &le)
	assert.Equal(t, metro.StationCode(42), le.Code)

	// validated before any transition ran
	s, _ := stations.ByCode(2)
	assert.False(t, s.Selected())
	assert.Empty(t, stations.Selection())
}

func TestSelectionOrder(t *testing.T) {
	_, stations := newFixtureCollection(t)

	require.NoError(t, stations.Select(5, 2))
	assert.Equal(t, []metro.StationCode{2, 5}, stations.Selection())

	require.NoError(t, stations.Deselect(2))
	assert.Equal(t, []metro.StationCode{5}, stations.Selection())

	require.NoError(t, stations.Deselect(5))
	assert.Empty(t, stations.Selection())
}

func TestSelectIsolatesStructuralFailures(t *testing.T) {
	_, stations := newFixtureCollection(t)

	var se *metro.StructuralError

	err := stations.Select(9, 5)
	require.ErrorAs(t, err, &se)

	// station 5 still transitioned
	assert.Equal(t, []metro.StationCode{5}, stations.Selection())
}

func TestSearch(t *testing.T) {
	_, stations := newFixtureCollection(t)

	test_cases := []struct {
		name    string
		request string
		codes   []metro.StationCode
	}{
		{"prefix of first token", "Cen", []metro.StationCode{2, 5}},
		{"prefix of any token", "Park", []metro.StationCode{2, 7}},
		{"full title", "Ghost Street", nil},
		{"full token", "Ghost", []metro.StationCode{9}},
		{"case sensitive", "cen", nil},
		{"no match", "Quay", nil},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			matches, err := stations.Search(context.Background(), tc.request)
			require.NoError(t, err)

			var codes []metro.StationCode
			for _, s := range matches {
				codes = append(codes, s.Code())
			}

			assert.Equal(t, tc.codes, codes)
		})
	}
}

func TestSearchCancelled(t *testing.T) {
	_, stations := newFixtureCollection(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := stations.Search(ctx, "Cen")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCollectionEventsBubble(t *testing.T) {
	_, stations := newFixtureCollection(t)

	var events []metro.Event

	stations.Events().On(metro.SelectionChange, func(ev metro.Event) {
		events = append(events, ev)
	})

	require.NoError(t, stations.Select(2))
	require.NoError(t, stations.Deselect(2))

	require.Len(t, events, 2)
	assert.Equal(t, metro.ActionSelect, events[0].Action)
	assert.Equal(t, metro.ActionDeselect, events[1].Action)

	s, _ := stations.ByCode(2)
	assert.Same(t, s, events[0].Target)
}
