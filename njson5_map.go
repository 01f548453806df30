// Package njson5 ordered container types.
// Created by dhawalhost (2025-09-14 10:22:41)
package njson5

import "bytes"

// ObjectContainer is the capability the parser needs from an object container:
// insert a value under a key. Custom containers returned by a
// CollectionFactory only have to satisfy this.
type ObjectContainer interface {
	SetKey(key string, value any)
}

// ListContainer is the capability the parser needs from an array container:
// append one element.
type ListContainer interface {
	Append(value any)
}

//------------------------------------------------------------------------------
// ORDERED MAP
//------------------------------------------------------------------------------

// Map is a string-keyed map that preserves insertion order. It is the default
// object container. The zero value is ready to use.
//
// A duplicate key overwrites the stored value but keeps the key's original
// position (last write wins).
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap returns an empty ordered map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// SetKey stores value under key, appending the key on first insertion.
func (m *Map) SetKey(key string, value any) {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key, or nil when absent. Use Has to
// distinguish a stored nil from a missing key.
func (m *Map) Get(key string) any {
	if m.values == nil {
		return nil
	}
	return m.values[key]
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	if m.values == nil {
		return false
	}
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys.
func (m *Map) Len() int { return len(m.keys) }

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Range calls fn for each key/value pair in insertion order until fn returns
// false.
func (m *Map) Range(fn func(key string, value any) bool) {
	for _, k := range m.keys {
		if !fn(k, m.values[k]) {
			return
		}
	}
}

// MarshalJSON renders the map as a strict JSON object in insertion order, so
// encoding/json users get ordered output too.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, m, modeStrict); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//------------------------------------------------------------------------------
// ORDERED LIST
//------------------------------------------------------------------------------

// List is an ordered sequence of values, the default array container. The zero
// value is ready to use.
type List struct {
	items []any
}

// NewList returns an empty list.
func NewList() *List { return &List{} }

// Append adds value to the end of the list.
func (l *List) Append(value any) {
	l.items = append(l.items, value)
}

// At returns the element at index i, or nil when out of range.
func (l *List) At(i int) any {
	if i < 0 || i >= len(l.items) {
		return nil
	}
	return l.items[i]
}

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// Values returns the elements in order. The slice is a copy.
func (l *List) Values() []any {
	items := make([]any, len(l.items))
	copy(items, l.items)
	return items
}

// MarshalJSON renders the list as a strict JSON array.
func (l *List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, l, modeStrict); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
