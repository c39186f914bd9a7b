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

import "fmt"

// ConfigurationError reports an unusable configuration: an unknown city or a
// missing required container on the host map.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}

// LoadError reports a failed scheme load: a transport failure, malformed
// markup, or missing/malformed metadata.  Loads are never retried
// automatically; the error always reaches the caller.
type LoadError struct {
	City string
	Err  error
}

func (e *LoadError) Error() string {
	if e.City == "" {
		return fmt.Sprintf("could not load scheme: %v", e.Err)
	}

	return fmt.Sprintf("could not load scheme for %s: %v", e.City, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// LookupError reports an operation referencing a station code absent from
// the collection.
type LookupError struct {
	Code StationCode
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown station code %d", e.Code)
}

// StructuralError reports a glyph or layer ID that the metadata promises but
// the parsed document lacks.  It is fatal for the element that needs the
// glyph; the rest of the scheme stays usable.
type StructuralError struct {
	ID string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("document is missing expected element %q", e.ID)
}
