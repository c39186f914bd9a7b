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
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/transitmap/metro/model"
	"github.com/transitmap/metro/svgdom"
)

// StationCode identifies a station within a scheme.
type StationCode int

// LabelID identifies a label record within a scheme's metadata.
type LabelID int

// StationInfo is one station's metadata record.
type StationInfo struct {
	LabelID LabelID `json:"labelId"`
	Name    string  `json:"name"`
}

// LabelInfo links a label to the glyph IDs it governs.
type LabelInfo struct {
	StationIDs []string `json:"stationIds"`
}

// SchemeMetadata is the structured record embedded in a scheme document.
// It is parsed once per load and immutable thereafter.
type SchemeMetadata struct {
	Size     model.Size                  `json:"size"`
	Stations map[StationCode]StationInfo `json:"stations"`
	Labels   map[LabelID]LabelInfo       `json:"labels"`
}

// Well-known element IDs of a scheme document.
const (
	// SchemeLayerID is the layer holding the scheme's normal rendering.
	SchemeLayerID = "scheme"

	// HighlightLayerID is the layer selected stations are moved to so
	// they render above the rest of the scheme.
	HighlightLayerID = "highlight"
)

func labelNodeID(id LabelID) string { return fmt.Sprintf("label-%d", id) }

func indicatorNodeID(id LabelID) string { return fmt.Sprintf("indicator-%d", id) }

// SchemeDocument is a parsed scheme: the vector diagram plus its embedded
// metadata.
type SchemeDocument struct {
	meta SchemeMetadata
	dom  *svgdom.Document
}

// ParseSchemeDocument parses scheme markup.  Malformed markup, a missing
// metadata element, malformed metadata content, or an inconsistent station/
// label mapping all surface as a LoadError.
func ParseSchemeDocument(data []byte) (*SchemeDocument, error) {
	dom, err := svgdom.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	text, ok := dom.Metadata()
	if !ok {
		return nil, &LoadError{Err: fmt.Errorf("document has no metadata element")}
	}

	var meta SchemeMetadata
	if err := json.Unmarshal([]byte(text), &meta); err != nil {
		return nil, &LoadError{Err: fmt.Errorf("malformed metadata: %w", err)}
	}

	if meta.Size.Empty() {
		return nil, &LoadError{Err: fmt.Errorf("metadata lacks a valid size")}
	}

	for code, st := range meta.Stations {
		if _, ok := meta.Labels[st.LabelID]; !ok {
			return nil, &LoadError{
				Err: fmt.Errorf("station %d references unknown label %d", code, st.LabelID),
			}
		}
	}

	return &SchemeDocument{meta: meta, dom: dom}, nil
}

// Metadata returns the scheme's parsed metadata.
func (d *SchemeDocument) Metadata() SchemeMetadata { return d.meta }

// DOM returns the scheme's markup tree.
func (d *SchemeDocument) DOM() *svgdom.Document { return d.dom }
