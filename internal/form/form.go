package form

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Change describes a single value update on a field.
type Change struct {
	FieldID string // ID of the field that changed
	Value   string // New value after the change
}

// Listener observes value changes on a field.
type Listener func(Change)

// Field is a named form value with change subscribers. It is the analog of
// a plain input element: it holds text and notifies observers when the text
// is set, but knows nothing about the editor widget that feeds it.
type Field struct {
	id string

	mu        sync.RWMutex
	value     string
	listeners map[string]Listener
	nextSub   atomic.Uint64
}

// NewField creates a field with the given ID and an empty value.
func NewField(id string) *Field {
	return &Field{
		id:        id,
		listeners: make(map[string]Listener),
	}
}

// ID returns the field's identifier.
func (f *Field) ID() string { return f.id }

// Value returns the field's current value.
func (f *Field) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Set stores a new value and notifies every subscriber exactly once.
// Subscribers run synchronously, outside the field's lock.
func (f *Field) Set(value string) {
	f.mu.Lock()
	f.value = value
	notify := make([]Listener, 0, len(f.listeners))
	for _, l := range f.listeners {
		notify = append(notify, l)
	}
	f.mu.Unlock()

	change := Change{FieldID: f.id, Value: value}
	for _, l := range notify {
		l(change)
	}
}

// Subscribe registers a change listener. Returns an ID for Unsubscribe.
func (f *Field) Subscribe(l Listener) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := fmt.Sprintf("%s-sub-%d", f.id, f.nextSub.Add(1))
	f.listeners[id] = l
	return id
}

// Unsubscribe removes a listener by subscription ID.
// Returns true if the subscription existed.
func (f *Field) Unsubscribe(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.listeners[id]; !ok {
		return false
	}
	delete(f.listeners, id)
	return true
}

// ListenerCount returns the number of active subscriptions.
func (f *Field) ListenerCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.listeners)
}

// Document is a registry of fields keyed by ID, the analog of the page the
// host application renders. Lookups by unknown ID simply report absence.
type Document struct {
	mu     sync.RWMutex
	fields map[string]*Field
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{fields: make(map[string]*Field)}
}

// Register creates a field under the given ID and adds it to the document.
// Registering an ID twice replaces the previous field.
func (d *Document) Register(id string) *Field {
	f := NewField(id)
	d.mu.Lock()
	d.fields[id] = f
	d.mu.Unlock()
	return f
}

// Lookup returns the field with the given ID, if present.
func (d *Document) Lookup(id string) (*Field, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	f, ok := d.fields[id]
	return f, ok
}

// Remove deletes a field from the document.
// Returns true if the field existed.
func (d *Document) Remove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.fields[id]; !ok {
		return false
	}
	delete(d.fields, id)
	return true
}
