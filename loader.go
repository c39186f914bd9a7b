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
	"errors"
	"fmt"
	"log/slog"

	"github.com/destel/rill"

	"github.com/transitmap/metro/internal/schemeio"
)

// LoadScheme fetches and parses one city's scheme document.  The result is
// single-shot: it succeeds once or fails once with a ConfigurationError or
// LoadError, with no retries.
func LoadScheme(ctx context.Context, city string, opts ...Option) (*SchemeDocument, error) {
	o := buildOptions(opts)

	client, err := o.client()
	if err != nil {
		return nil, err
	}

	return loadScheme(ctx, client, o.cities, city)
}

// LoadSchemes fetches and parses several cities' schemes concurrently.  All
// cities are validated against the city table before any fetch starts; the
// first load failure fails the whole call.
func LoadSchemes(ctx context.Context, cities []string, opts ...Option) (map[string]*SchemeDocument, error) {
	o := buildOptions(opts)

	client, err := o.client()
	if err != nil {
		return nil, err
	}

	for _, city := range cities {
		if _, ok := o.cities[city]; !ok {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown city %q", city)}
		}
	}

	type cityDoc struct {
		city string
		doc  *SchemeDocument
	}

	in := rill.FromSlice(cities, nil)

	docs := rill.Map(in, o.concurrency, func(city string) (cityDoc, error) {
		doc, err := loadScheme(ctx, client, o.cities, city)

		return cityDoc{city: city, doc: doc}, err
	})

	out := make(map[string]*SchemeDocument, len(cities))

	err = rill.ForEach(docs, 1, func(cd cityDoc) error {
		out[cd.city] = cd.doc

		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func loadScheme(ctx context.Context, client *schemeio.Client, cities CityTable, city string) (*SchemeDocument, error) {
	id, ok := cities[city]
	if !ok {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("unknown city %q", city)}
	}

	data, err := client.Fetch(ctx, id)
	if err != nil {
		slog.Error("scheme fetch failed", "city", city, "error", err)

		return nil, &LoadError{City: city, Err: err}
	}

	doc, err := ParseSchemeDocument(data)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.City = city

			return nil, le
		}

		return nil, &LoadError{City: city, Err: err}
	}

	slog.Debug("loaded scheme",
		"city", city,
		"size", doc.Metadata().Size,
		"stations", len(doc.Metadata().Stations))

	return doc, nil
}
