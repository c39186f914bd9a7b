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
	"net/http"
	"runtime"

	"github.com/golang/geo/s2"

	"github.com/transitmap/metro/internal/cache"
	"github.com/transitmap/metro/internal/schemeio"
)

// Configuration defaults.
const (
	DefaultPath    = "node_modules/metro-data/"
	DefaultLang    = "ru"
	DefaultMinZoom = 0.0
	DefaultMaxZoom = 3.0
)

// CityTable maps city names to scheme identifiers.
type CityTable map[string]int

// DefaultCities returns the built-in city table.  The table is a fixed
// closed mapping; requesting a city outside it fails with a
// ConfigurationError.
func DefaultCities() CityTable {
	return CityTable{
		"moscow":  1,
		"spb":     2,
		"kiev":    8,
		"kharkov": 9,
		"minsk":   13,
	}
}

// DefaultConcurrency provides the default parallelism for multi-scheme
// loads.
func DefaultConcurrency() int {
	return max(runtime.GOMAXPROCS(-1)-1, 1)
}

// options provides optional configuration parameters for loading and
// opening transport maps.
type options struct {
	path        string
	lang        string
	minZoom     float64
	maxZoom     float64
	cities      CityTable
	httpClient  *http.Client
	cacheDir    string
	cacheCodec  string
	concurrency int

	// initial map state
	center    *s2.LatLng
	zoom      *float64
	shaded    bool
	selection []StationCode
}

// Option configures how a transport map is loaded and opened.
type Option func(*options)

// WithPath sets the scheme location: an http(s) URL prefix or a filesystem
// directory.
func WithPath(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithLang sets the scheme language.
func WithLang(lang string) Option {
	return func(o *options) {
		o.lang = lang
	}
}

// WithZoomRange sets the zoom bounds applied to the host map.
func WithZoomRange(minZoom, maxZoom float64) Option {
	return func(o *options) {
		o.minZoom = minZoom
		o.maxZoom = maxZoom
	}
}

// WithCities replaces the city table.  The table is copied; later mutation
// of the argument has no effect.
func WithCities(cities CityTable) Option {
	return func(o *options) {
		copied := make(CityTable, len(cities))
		for city, id := range cities {
			copied[city] = id
		}

		o.cities = copied
	}
}

// WithHTTPClient sets the client used for remote scheme fetches.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *options) {
		o.httpClient = hc
	}
}

// WithCache enables the on-disk scheme cache rooted at dir.
func WithCache(dir string) Option {
	return func(o *options) {
		o.cacheDir = dir
	}
}

// WithCacheCodec selects the cache compression codec: "raw", "zstd" or
// "lz4".  The default is zstd.
func WithCacheCodec(name string) Option {
	return func(o *options) {
		o.cacheCodec = name
	}
}

// WithConcurrency sets the parallelism for multi-scheme loads.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithCenter sets the initial map center.
func WithCenter(ll s2.LatLng) Option {
	return func(o *options) {
		o.center = &ll
	}
}

// WithZoom sets the initial map zoom.
func WithZoom(zoom float64) Option {
	return func(o *options) {
		o.zoom = &zoom
	}
}

// WithShaded opens the map with the scheme layer dimmed.
func WithShaded(shaded bool) Option {
	return func(o *options) {
		o.shaded = shaded
	}
}

// WithSelection opens the map with the given stations selected.
func WithSelection(codes ...StationCode) Option {
	return func(o *options) {
		o.selection = append([]StationCode(nil), codes...)
	}
}

func buildOptions(opts []Option) options {
	o := options{
		path:        DefaultPath,
		lang:        DefaultLang,
		minZoom:     DefaultMinZoom,
		maxZoom:     DefaultMaxZoom,
		cities:      DefaultCities(),
		cacheCodec:  "zstd",
		concurrency: DefaultConcurrency(),
	}

	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o *options) client() (*schemeio.Client, error) {
	var store *cache.Cache

	if o.cacheDir != "" {
		var codec cache.Codec

		switch o.cacheCodec {
		case "raw":
			codec = cache.RawCodec{}
		case "zstd", "":
			codec = cache.NewZstdCodec()
		case "lz4":
			codec = cache.Lz4Codec{}
		default:
			return nil, &ConfigurationError{Reason: "unknown cache codec " + o.cacheCodec}
		}

		store = cache.New(o.cacheDir, codec)
	}

	return schemeio.NewClient(o.path, o.lang, o.httpClient, store), nil
}
