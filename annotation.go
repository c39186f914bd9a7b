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
	"github.com/golang/geo/s2"
	"github.com/google/uuid"

	"github.com/transitmap/metro/host"
)

// Annotation is a floating marker anchored to a station's computed
// position.  It wraps the host's placemark primitive by composition.
type Annotation struct {
	id         uuid.UUID
	position   s2.LatLng
	properties map[string]any
	mark       host.Placemark
	owner      *Station
	m          host.Map
}

var _ host.GeoObject = (*Annotation)(nil)

// ID returns the annotation's identity.
func (a *Annotation) ID() uuid.UUID { return a.id }

// Position returns the geographic anchor the annotation was created at.
func (a *Annotation) Position() s2.LatLng { return a.position }

// Properties returns the caller-supplied display payload.
func (a *Annotation) Properties() map[string]any { return a.properties }

// Owner returns the station that created the annotation.
func (a *Annotation) Owner() *Station { return a.owner }

// Placemark returns the wrapped host marker.
func (a *Annotation) Placemark() host.Placemark { return a.mark }

// AttachToMap records the host map the annotation is placed on.
func (a *Annotation) AttachToMap(m host.Map) error {
	a.m = m

	return nil
}

// AnnotationCollection enumerates the annotations created on a map.
type AnnotationCollection struct {
	items []*Annotation
}

// Items returns a snapshot of the collection.
func (c *AnnotationCollection) Items() []*Annotation {
	out := make([]*Annotation, len(c.items))
	copy(out, c.items)

	return out
}

// Remove drops the annotation from the collection, its owning station and,
// when attached, the host map.
func (c *AnnotationCollection) Remove(a *Annotation) {
	for i, item := range c.items {
		if item == a {
			c.items = append(c.items[:i], c.items[i+1:]...)

			break
		}
	}

	if a.owner != nil {
		owned := a.owner.annotations
		for i, item := range owned {
			if item == a {
				a.owner.annotations = append(owned[:i], owned[i+1:]...)

				break
			}
		}
	}

	if a.m != nil {
		a.m.GeoObjects().Remove(a)
		a.m = nil
	}
}

func (c *AnnotationCollection) add(a *Annotation) {
	c.items = append(c.items, a)
}
