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

import "sync"

// Event types emitted by overlay entities.
const (
	// SelectionChange fires when a station enters or leaves the selected
	// state; Action distinguishes the direction.
	SelectionChange = "selectionchange"

	// Click is a pointer interaction on a station; the default handler
	// toggles selection.
	Click = "click"

	// AnnotationAdd fires when a station creates an annotation.
	AnnotationAdd = "annotationadd"
)

// Selection actions carried by SelectionChange events.
const (
	ActionSelect   = "select"
	ActionDeselect = "deselect"
)

// Event is a notification emitted by an overlay entity.
type Event struct {
	Type   string
	Action string
	Target any
}

// Handler consumes events.
type Handler func(Event)

// Emitter is an explicit publish/subscribe point.  Entities forward events
// upward by parenting their emitter to the owner's emitter; there is no
// implicit global event tree.
type Emitter struct {
	mu       sync.Mutex
	handlers map[string]map[int]Handler
	nextID   int
	parent   *Emitter
}

// NewEmitter creates an Emitter.
func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[string]map[int]Handler)}
}

// On registers h for events of the given type and returns an unsubscribe
// function.  Unsubscribing twice is harmless.
func (e *Emitter) On(eventType string, h Handler) (off func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	hs := e.handlers[eventType]
	if hs == nil {
		hs = make(map[int]Handler)
		e.handlers[eventType] = hs
	}

	id := e.nextID
	e.nextID++
	hs[id] = h

	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()

		delete(e.handlers[eventType], id)
	}
}

// SetParent links this emitter to a parent; every emitted event is also
// delivered to the parent's subscribers after the local ones.
func (e *Emitter) SetParent(p *Emitter) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.parent = p
}

// Emit delivers ev to local subscribers of its type, then forwards it to the
// parent emitter, if any.  Delivery is synchronous and runs to completion
// before Emit returns.
func (e *Emitter) Emit(ev Event) {
	e.mu.Lock()

	hs := e.handlers[ev.Type]
	snapshot := make([]Handler, 0, len(hs))

	for _, h := range hs {
		snapshot = append(snapshot, h)
	}

	parent := e.parent

	e.mu.Unlock()

	for _, h := range snapshot {
		h(ev)
	}

	if parent != nil {
		parent.Emit(ev)
	}
}
