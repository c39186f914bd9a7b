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

package schemeio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	xzMagic   = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Decompress sniffs the payload's magic bytes and inflates gzip and xz
// framing; anything else passes through unchanged.
func Decompress(data []byte) ([]byte, error) {
	var factory func(r io.Reader) (io.Reader, error)

	switch {
	case bytes.HasPrefix(data, gzipMagic):
		factory = func(r io.Reader) (io.Reader, error) {
			return gzip.NewReader(r)
		}
	case bytes.HasPrefix(data, xzMagic):
		factory = func(r io.Reader) (io.Reader, error) {
			return xz.NewReader(r)
		}
	default:
		return data, nil
	}

	rdr, err := factory(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decompressor error: %w", err)
	}

	out, err := io.ReadAll(rdr)
	if err != nil {
		return nil, fmt.Errorf("decompressor read error: %w", err)
	}

	return out, nil
}
