package vpack

import "iter"

// documentNode is one entry in a documentMap's insertion-ordered chain.
type documentNode struct {
	key   string
	value any
	prev  *documentNode
	next  *documentNode
}

// documentMap is a string-keyed map that remembers insertion order, used by
// AddAnyOrdered so a caller can feed vpack.Builder a Go value tree whose
// object member order is significant (matching spec §4.3's promise that
// members are written in the order Add calls occur) instead of the random
// order map[string]any iteration gives.
//
// Grounded on the teacher's types.OrderedMap, trimmed to the operations
// AddAnyOrdered actually needs (no JSON codec, no MoveToEnd/Delete/Equal —
// this repo never reads a document tree back out, it only ever drains one
// into a Builder once) and reworked to hold `any` values directly rather
// than being generic, since every Builder-feeding site already worked with
// `any`.
type documentMap struct {
	data map[string]*documentNode
	head *documentNode
	tail *documentNode
}

// newDocumentMap creates an empty ordered map.
func newDocumentMap() *documentMap {
	return &documentMap{data: make(map[string]*documentNode)}
}

// Set inserts a new key at the end of the order, or updates an existing
// key's value in place without moving it.
func (m *documentMap) Set(key string, value any) {
	if n, ok := m.data[key]; ok {
		n.value = value
		return
	}
	n := &documentNode{key: key, value: value}
	m.data[key] = n
	if m.tail == nil {
		m.head, m.tail = n, n
	} else {
		n.prev = m.tail
		m.tail.next = n
		m.tail = n
	}
}

func (m *documentMap) Len() int { return len(m.data) }

// Items walks the map in insertion order.
func (m *documentMap) Items() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for n := m.head; n != nil; n = n.next {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Document wraps a documentMap so callers can build one with plain Go calls
// (NewDocument().Set("a", 1).Set("b", 2)) and hand it to AddAnyOrdered
// without exposing the node-chain internals.
type Document struct {
	m *documentMap
}

// NewDocument returns an empty ordered document.
func NewDocument() *Document {
	return &Document{m: newDocumentMap()}
}

// Set appends or updates a key and returns the receiver for chaining.
func (d *Document) Set(key string, value any) *Document {
	d.m.Set(key, value)
	return d
}

func (d *Document) Len() int { return d.m.Len() }
