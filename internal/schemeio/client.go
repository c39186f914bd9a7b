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

// Package schemeio fetches scheme documents from an HTTP endpoint or a local
// directory, transparently decompressing gzip (.svgz) and xz payloads.
package schemeio

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/transitmap/metro/internal/cache"
)

// suffixes tried, in order, when resolving a scheme file locally.
var suffixes = []string{"", "z", ".xz"}

// Client resolves scheme documents addressed as {path}{schemeID}.{lang}.svg.
type Client struct {
	base  string
	lang  string
	http  *http.Client
	store *cache.Cache
}

// NewClient creates a Client.  base is either an http(s) URL prefix or a
// filesystem directory; hc and store may be nil.
func NewClient(base, lang string, hc *http.Client, store *cache.Cache) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}

	return &Client{base: base, lang: lang, http: hc, store: store}
}

// Key returns the canonical file name of a scheme.
func (c *Client) Key(schemeID int) string {
	return fmt.Sprintf("%d.%s.svg", schemeID, c.lang)
}

// Fetch retrieves a scheme document's decompressed bytes.  The result is a
// single-shot value: it either succeeds once or fails once, with no retries.
func (c *Client) Fetch(ctx context.Context, schemeID int) ([]byte, error) {
	key := c.Key(schemeID)

	if c.store != nil {
		if data, ok := c.store.Get(key); ok {
			slog.Debug("scheme cache hit", "key", key)

			return data, nil
		}
	}

	var (
		raw []byte
		err error
	)

	if isRemote(c.base) {
		raw, err = c.fetchRemote(ctx, key)
	} else {
		raw, err = c.fetchLocal(key)
	}

	if err != nil {
		return nil, err
	}

	data, err := Decompress(raw)
	if err != nil {
		return nil, fmt.Errorf("could not decompress scheme %s: %w", key, err)
	}

	if c.store != nil {
		if err := c.store.Put(key, data); err != nil {
			slog.Warn("could not cache scheme", "key", key, "error", err)
		}
	}

	return data, nil
}

func (c *Client) fetchRemote(ctx context.Context, key string) ([]byte, error) {
	url := c.base + key

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not build request for %s: %w", url, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", url, err)
	}

	return data, nil
}

func (c *Client) fetchLocal(key string) ([]byte, error) {
	var firstErr error

	for _, suffix := range suffixes {
		data, err := os.ReadFile(filepath.Join(c.base, key+suffix))
		if err == nil {
			return data, nil
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	return nil, fmt.Errorf("could not read scheme %s: %w", key, firstErr)
}

func isRemote(base string) bool {
	return strings.HasPrefix(base, "http://") || strings.HasPrefix(base, "https://")
}
