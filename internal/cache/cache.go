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

// Package cache provides an on-disk store for fetched scheme documents with
// pluggable compression codecs.
package cache

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Cache stores scheme payloads under a directory, one file per key,
// compressed with the configured codec.  Reads that fail for any reason are
// reported as misses; the cache is strictly an accelerator.
type Cache struct {
	dir   string
	codec Codec
}

// New creates a cache rooted at dir.  A nil codec means raw storage.
func New(dir string, codec Codec) *Cache {
	if codec == nil {
		codec = RawCodec{}
	}

	return &Cache{dir: dir, codec: codec}
}

// Get returns the payload stored under key, reporting false on a miss.
func (c *Cache) Get(key string) ([]byte, bool) {
	packed, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}

	data, err := c.codec.Unpack(packed)
	if err != nil {
		slog.Warn("discarding unreadable cache entry", "key", key, "error", err)

		return nil, false
	}

	return data, true
}

// Put stores the payload under key.
func (c *Cache) Put(key string, data []byte) error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("could not create cache dir: %w", err)
	}

	packed, err := c.codec.Pack(data)
	if err != nil {
		return fmt.Errorf("could not pack cache entry: %w", err)
	}

	if err := os.WriteFile(c.path(key), packed, 0o644); err != nil {
		return fmt.Errorf("could not write cache entry: %w", err)
	}

	return nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+"."+c.codec.Name())
}
