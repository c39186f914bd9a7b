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
	"context"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/transitmap/metro/host"
)

// StationCollection owns the full set of stations for a loaded scheme,
// indexed by code.  Stations are created once, when the collection is
// constructed, and never recreated; iteration order is ascending code order
// and stays stable for the collection's lifetime.
type StationCollection struct {
	byCode map[StationCode]*Station
	codes  []StationCode
	events *Emitter
}

// NewStationCollection builds one station per entry in the scheme's station
// metadata, all sharing the given view so geometry queries stay consistent
// with the current pan/zoom.  Station events bubble up to the collection's
// emitter.
func NewStationCollection(view *SchemeView, proj host.Projection) *StationCollection {
	meta := view.Document().Metadata()

	codes := maps.Keys(meta.Stations)
	slices.Sort(codes)

	c := &StationCollection{
		byCode: make(map[StationCode]*Station, len(meta.Stations)),
		codes:  codes,
		events: NewEmitter(),
	}

	for _, code := range c.codes {
		s := newStation(code, meta.Stations[code], view, proj)
		s.Events().SetParent(c.events)
		c.byCode[code] = s
	}

	return c
}

// Events returns the collection's event emitter; station events surface
// here as well.
func (c *StationCollection) Events() *Emitter { return c.events }

// Len returns the number of stations in the collection.
func (c *StationCollection) Len() int { return len(c.codes) }

// Stations returns the stations in collection order.
func (c *StationCollection) Stations() []*Station {
	out := make([]*Station, 0, len(c.codes))

	for _, code := range c.codes {
		out = append(out, c.byCode[code])
	}

	return out
}

// ByCode returns the station with the given code, reporting false when the
// collection has none.
func (c *StationCollection) ByCode(code StationCode) (*Station, bool) {
	s, ok := c.byCode[code]

	return s, ok
}

// Select transitions every named station to the selected state.  An unknown
// code fails the whole call with a LookupError before any station changes
// state; callers rely on the error to catch stale selection lists.
func (c *StationCollection) Select(codes ...StationCode) error {
	return c.apply(codes, (*Station).Select)
}

// Deselect transitions every named station to the unselected state, with the
// same unknown-code contract as Select.
func (c *StationCollection) Deselect(codes ...StationCode) error {
	return c.apply(codes, (*Station).Deselect)
}

func (c *StationCollection) apply(codes []StationCode, op func(*Station) error) error {
	stations := make([]*Station, 0, len(codes))

	for _, code := range codes {
		s, ok := c.byCode[code]
		if !ok {
			return &LookupError{Code: code}
		}

		stations = append(stations, s)
	}

	// Structural failures are isolated per station: the remaining
	// transitions still run, and the first failure is reported.
	var firstErr error

	for _, s := range stations {
		if err := op(s); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Selection returns the codes currently selected, in collection order.
func (c *StationCollection) Selection() []StationCode {
	var out []StationCode

	for _, code := range c.codes {
		if c.byCode[code].Selected() {
			out = append(out, code)
		}
	}

	return out
}

// Search returns the stations whose title has a whitespace-delimited token
// starting with request, in collection order.  Matching is case-sensitive
// on the raw tokens.  The result is a single-shot snapshot, not a live
// query; the signature stays uniform with calls that would involve I/O in a
// remote-data variant.
func (c *StationCollection) Search(ctx context.Context, request string) ([]*Station, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []*Station

	for _, code := range c.codes {
		s := c.byCode[code]

		for _, token := range strings.Fields(s.Title()) {
			if strings.HasPrefix(token, request) {
				out = append(out, s)

				break
			}
		}
	}

	return out, nil
}
