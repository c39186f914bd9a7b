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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitmap/metro"
)

func writeScheme(t *testing.T, dir, name, content string) {
	t.Helper()

	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadScheme(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "1.ru.svg", schemeMarkup)

	doc, err := metro.LoadScheme(context.Background(), "moscow", metro.WithPath(dir))
	require.NoError(t, err)

	assert.Len(t, doc.Metadata().Stations, 4)
}

func TestLoadSchemeLang(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "1.en.svg", schemeMarkup)

	_, err := metro.LoadScheme(context.Background(), "moscow",
		metro.WithPath(dir), metro.WithLang("en"))
	require.NoError(t, err)
}

func TestLoadSchemeUnknownCity(t *testing.T) {
	var ce *metro.ConfigurationError

	_, err := metro.LoadScheme(context.Background(), "atlantis", metro.WithPath(t.TempDir()))
	require.ErrorAs(t, err, &ce)
}

func TestLoadSchemeMissingFile(t *testing.T) {
	var le *metro.LoadError

	_, err := metro.LoadScheme(context.Background(), "moscow", metro.WithPath(t.TempDir()))
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "moscow", le.City)
}

func TestLoadSchemeBadMarkup(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "1.ru.svg", "this is not markup")

	var le *metro.LoadError

	_, err := metro.LoadScheme(context.Background(), "moscow", metro.WithPath(dir))
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "moscow", le.City)
}

func TestLoadSchemeCustomCities(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "7.ru.svg", schemeMarkup)

	_, err := metro.LoadScheme(context.Background(), "testopolis",
		metro.WithPath(dir), metro.WithCities(metro.CityTable{"testopolis": 7}))
	require.NoError(t, err)
}

func TestLoadSchemeCache(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "1.ru.svg", schemeMarkup)

	cacheDir := t.TempDir()

	opts := []metro.Option{metro.WithPath(dir), metro.WithCache(cacheDir)}

	_, err := metro.LoadScheme(context.Background(), "moscow", opts...)
	require.NoError(t, err)

	// the cached copy satisfies the next load even without the source
	require.NoError(t, os.Remove(filepath.Join(dir, "1.ru.svg")))

	doc, err := metro.LoadScheme(context.Background(), "moscow", opts...)
	require.NoError(t, err)
	assert.Len(t, doc.Metadata().Stations, 4)
}

func TestLoadSchemeUnknownCacheCodec(t *testing.T) {
	var ce *metro.ConfigurationError

	_, err := metro.LoadScheme(context.Background(), "moscow",
		metro.WithPath(t.TempDir()), metro.WithCache(t.TempDir()),
		metro.WithCacheCodec("brotli"))
	require.ErrorAs(t, err, &ce)
}

func TestLoadSchemes(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "1.ru.svg", schemeMarkup)
	writeScheme(t, dir, "2.ru.svg", schemeMarkup)

	docs, err := metro.LoadSchemes(context.Background(), []string{"moscow", "spb"},
		metro.WithPath(dir), metro.WithConcurrency(2))
	require.NoError(t, err)

	require.Len(t, docs, 2)
	assert.NotNil(t, docs["moscow"])
	assert.NotNil(t, docs["spb"])
}

func TestLoadSchemesUnknownCity(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "1.ru.svg", schemeMarkup)

	var ce *metro.ConfigurationError

	_, err := metro.LoadSchemes(context.Background(), []string{"moscow", "atlantis"},
		metro.WithPath(dir))
	require.ErrorAs(t, err, &ce)
}

func TestLoadSchemesFailureFailsAll(t *testing.T) {
	dir := t.TempDir()
	writeScheme(t, dir, "1.ru.svg", schemeMarkup)

	var le *metro.LoadError

	_, err := metro.LoadSchemes(context.Background(), []string{"moscow", "spb"},
		metro.WithPath(dir))
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "spb", le.City)
}
