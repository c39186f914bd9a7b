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

package cache

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
)

// Codec packs and unpacks cache entries.
type Codec interface {
	Name() string
	Pack(data []byte) ([]byte, error)
	Unpack(data []byte) ([]byte, error)
}

// RawCodec stores entries uncompressed.
type RawCodec struct{}

func (RawCodec) Name() string { return "raw" }

func (RawCodec) Pack(data []byte) ([]byte, error) { return data, nil }

func (RawCodec) Unpack(data []byte) ([]byte, error) { return data, nil }

// ZstdCodec compresses entries with zstandard.
type ZstdCodec struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

// NewZstdCodec creates a zstandard codec.
func NewZstdCodec() *ZstdCodec {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		panic(err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}

	return &ZstdCodec{enc: enc, dec: dec}
}

func (c *ZstdCodec) Name() string { return "zst" }

func (c *ZstdCodec) Pack(data []byte) ([]byte, error) {
	return c.enc.EncodeAll(data, nil), nil
}

func (c *ZstdCodec) Unpack(data []byte) ([]byte, error) {
	return c.dec.DecodeAll(data, nil)
}

// Lz4Codec compresses entries with lz4.
type Lz4Codec struct{}

func (Lz4Codec) Name() string { return "lz4" }

func (Lz4Codec) Pack(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	w := lz4.NewWriter(&buf)

	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("lz4 pack error: %w", err)
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("lz4 pack error: %w", err)
	}

	return buf.Bytes(), nil
}

func (Lz4Codec) Unpack(data []byte) ([]byte, error) {
	var buf bytes.Buffer

	if _, err := buf.ReadFrom(lz4.NewReader(bytes.NewReader(data))); err != nil {
		return nil, fmt.Errorf("lz4 unpack error: %w", err)
	}

	return buf.Bytes(), nil
}
