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
	"strconv"
	"strings"

	"github.com/golang/geo/r2"

	"github.com/transitmap/metro/model"
)

// LocalBounds computes the node's bounding box in the document's own pixel
// space, unioned over the node and all of its descendants.  Path data is
// approximated by its coordinate pairs; curve control points may widen the
// box slightly, which is acceptable for anchoring markers.  The result is
// empty when the subtree contains no positioned shapes.
func LocalBounds(n *Node) model.PixelBounds {
	bounds := model.InitialPixelBounds()

	n.walk(func(c *Node) bool {
		b := shapeBounds(c)
		if !b.Empty() {
			b = translate(b, c)
			bounds = bounds.Union(b)
		}

		return true
	})

	// Group translate applies to every descendant shape.
	if !bounds.Empty() && len(n.children) > 0 {
		bounds = translate(bounds, n)
	}

	return bounds
}

func shapeBounds(n *Node) model.PixelBounds {
	bounds := model.InitialPixelBounds()

	switch n.name {
	case "rect":
		x, y := attrFloat(n, "x"), attrFloat(n, "y")
		w, h := attrFloat(n, "width"), attrFloat(n, "height")
		bounds = bounds.ExpandWithPoint(r2.Point{X: x, Y: y})
		bounds = bounds.ExpandWithPoint(r2.Point{X: x + w, Y: y + h})

	case "circle":
		cx, cy, r := attrFloat(n, "cx"), attrFloat(n, "cy"), attrFloat(n, "r")
		bounds = bounds.ExpandWithPoint(r2.Point{X: cx - r, Y: cy - r})
		bounds = bounds.ExpandWithPoint(r2.Point{X: cx + r, Y: cy + r})

	case "ellipse":
		cx, cy := attrFloat(n, "cx"), attrFloat(n, "cy")
		rx, ry := attrFloat(n, "rx"), attrFloat(n, "ry")
		bounds = bounds.ExpandWithPoint(r2.Point{X: cx - rx, Y: cy - ry})
		bounds = bounds.ExpandWithPoint(r2.Point{X: cx + rx, Y: cy + ry})

	case "line":
		bounds = bounds.ExpandWithPoint(r2.Point{X: attrFloat(n, "x1"), Y: attrFloat(n, "y1")})
		bounds = bounds.ExpandWithPoint(r2.Point{X: attrFloat(n, "x2"), Y: attrFloat(n, "y2")})

	case "polyline", "polygon":
		for _, p := range coordPairs(n.Attr("points")) {
			bounds = bounds.ExpandWithPoint(p)
		}

	case "path":
		for _, p := range coordPairs(n.Attr("d")) {
			bounds = bounds.ExpandWithPoint(p)
		}

	case "text", "use":
		if n.Attr("x") != "" || n.Attr("y") != "" {
			bounds = bounds.ExpandWithPoint(r2.Point{X: attrFloat(n, "x"), Y: attrFloat(n, "y")})
		}
	}

	return bounds
}

// translate applies the node's transform attribute to the bounds.  Only the
// translate(tx[,ty]) form occurs in scheme documents; other transform
// functions are ignored.
func translate(b model.PixelBounds, n *Node) model.PixelBounds {
	tr := n.Attr("transform")

	i := strings.Index(tr, "translate(")
	if i < 0 {
		return b
	}

	args := tr[i+len("translate("):]

	j := strings.IndexByte(args, ')')
	if j < 0 {
		return b
	}

	pairs := coordPairs(args[:j])
	if len(pairs) == 0 {
		fields := splitNumbers(args[:j])
		if len(fields) == 1 {
			pairs = []r2.Point{{X: fields[0]}}
		}
	}

	if len(pairs) == 0 {
		return b
	}

	d := pairs[0]

	return model.PixelBounds{
		Min: r2.Point{X: b.Min.X + d.X, Y: b.Min.Y + d.Y},
		Max: r2.Point{X: b.Max.X + d.X, Y: b.Max.Y + d.Y},
	}
}

func attrFloat(n *Node, name string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(n.Attr(name)), 64)
	if err != nil {
		return 0
	}

	return v
}

// coordPairs extracts consecutive number pairs from an attribute value,
// skipping path command letters and separators.
func coordPairs(s string) []r2.Point {
	nums := splitNumbers(s)

	pairs := make([]r2.Point, 0, len(nums)/2)
	for i := 0; i+1 < len(nums); i += 2 {
		pairs = append(pairs, r2.Point{X: nums[i], Y: nums[i+1]})
	}

	return pairs
}

func splitNumbers(s string) []float64 {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-', r == '+', r == 'e', r == 'E':
			return false
		default:
			return true
		}
	})

	nums := make([]float64, 0, len(fields))

	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}

		nums = append(nums, v)
	}

	return nums
}
