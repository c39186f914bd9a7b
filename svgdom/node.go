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

// Package svgdom provides a minimal mutable document model for SVG markup:
// a traversable node tree with ID-based lookup, attribute access and
// reparenting.  It implements only what a scheme overlay needs and is not a
// general SVG engine.
package svgdom

import "strings"

// NewElement creates a standalone element outside any document, typically a
// container other nodes are appended to.
func NewElement(name string) *Node {
	return &Node{name: name}
}

// Node is a single element of the parsed document.
type Node struct {
	name     string
	attrs    map[string]string
	text     string
	parent   *Node
	children []*Node
	doc      *Document
}

// Name returns the element's local name.
func (n *Node) Name() string { return n.name }

// ID returns the element's id attribute, empty when absent.
func (n *Node) ID() string { return n.attrs["id"] }

// Attr returns the named attribute, empty when absent.
func (n *Node) Attr(name string) string { return n.attrs[name] }

// SetAttr sets the named attribute, fully replacing any prior value.
func (n *Node) SetAttr(name, value string) {
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}

	n.attrs[name] = value
}

// RemoveAttr deletes the named attribute.
func (n *Node) RemoveAttr(name string) {
	delete(n.attrs, name)
}

// Text returns the element's own character data, trimmed.
func (n *Node) Text() string { return strings.TrimSpace(n.text) }

// Parent returns the element's parent, nil for the document root and for
// detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the element's direct children.  The returned slice is the
// node's own; callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// AppendChild moves c to the end of n's child list, detaching it from its
// current parent first.  This is the primitive used to move glyphs between
// rendering layers.
func (n *Node) AppendChild(c *Node) {
	c.Remove()
	c.parent = n
	n.children = append(n.children, c)
}

// Remove detaches n from its parent.  The node stays registered in the
// document's ID index so it can be re-attached later.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}

	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)

			break
		}
	}

	n.parent = nil
}

// walk visits n and all descendants depth-first until visit returns false.
func (n *Node) walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}

	for _, c := range n.children {
		if !c.walk(visit) {
			return false
		}
	}

	return true
}

// Document is a parsed SVG document with an ID index over its nodes.
type Document struct {
	root *Node
	byID map[string]*Node
}

// Root returns the document's root element.
func (d *Document) Root() *Node { return d.root }

// ByID returns the element carrying the given id attribute, or nil when the
// document has no such element.
func (d *Document) ByID(id string) *Node { return d.byID[id] }

// Metadata returns the character data of the document's first metadata
// element, reporting false when the document has none.
func (d *Document) Metadata() (string, bool) {
	var meta *Node

	d.root.walk(func(n *Node) bool {
		if n.name == "metadata" {
			meta = n

			return false
		}

		return true
	})

	if meta == nil {
		return "", false
	}

	return meta.Text(), true
}
