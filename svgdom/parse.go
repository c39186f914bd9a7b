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

package svgdom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// ErrEmptyDocument is returned when the input contains no root element.
var ErrEmptyDocument = errors.New("document has no root element")

// Parse reads an XML document into a Document.  Namespace prefixes are
// dropped; elements are indexed by their id attribute as they are read.
func Parse(r io.Reader) (*Document, error) {
	doc := &Document{byID: make(map[string]*Node)}

	dec := xml.NewDecoder(r)

	var cur *Node

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("malformed markup: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{name: t.Name.Local, parent: cur, doc: doc}

			if len(t.Attr) > 0 {
				n.attrs = make(map[string]string, len(t.Attr))
				for _, a := range t.Attr {
					n.attrs[a.Name.Local] = a.Value
				}
			}

			if id := n.attrs["id"]; id != "" {
				doc.byID[id] = n
			}

			if cur == nil {
				if doc.root != nil {
					return nil, errors.New("multiple root elements")
				}

				doc.root = n
			} else {
				cur.children = append(cur.children, n)
			}

			cur = n

		case xml.EndElement:
			if cur == nil {
				return nil, errors.New("unbalanced end element")
			}

			cur = cur.parent

		case xml.CharData:
			if cur != nil {
				cur.text += string(t)
			}
		}
	}

	if cur != nil {
		return nil, errors.New("truncated document")
	}

	if doc.root == nil {
		return nil, ErrEmptyDocument
	}

	return doc, nil
}
