// Package tree provides the nested key-value model used for localized strings.
//
// A Tree is an explicit tagged variant rather than an untyped map:
//
//   - a Leaf holds one translatable string,
//   - a Node holds named children in their original order,
//   - a Raw value carries any other JSON value (numbers, booleans, arrays,
//     null) through reads and writes untouched.
//
// Callers discriminate by Kind, never by inspecting Go types. A nil *Tree
// means "absent" and is accepted by every read-only method.
//
// Example usage:
//
//	root, err := tree.Parse([]byte(`{"profile":{"title":"Profile"}}`))
//	title := root.Get(tree.ParsePath("profile.title"))
//	fmt.Println(title.Value()) // Profile
//
//	root.Set(tree.ParsePath("profile.subtitle"), tree.Leaf("About you"))
package tree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Kind discriminates the variants of a Tree.
type Kind uint8

const (
	// KindNode is a grouping level with named children.
	KindNode Kind = iota
	// KindLeaf is a translatable string.
	KindLeaf
	// KindRaw is a non-string JSON value that is preserved but never translated.
	KindRaw
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "node"
	case KindLeaf:
		return "leaf"
	case KindRaw:
		return "raw"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// Tree is a Leaf, a Node or a Raw value.
type Tree struct {
	kind     Kind
	value    string
	raw      json.RawMessage
	keys     []string
	children map[string]*Tree
}

// Leaf creates a leaf holding s.
func Leaf(s string) *Tree {
	return &Tree{kind: KindLeaf, value: s}
}

// NewNode creates an empty node.
func NewNode() *Tree {
	return &Tree{kind: KindNode, children: make(map[string]*Tree)}
}

// Raw creates a raw value from JSON text. The bytes are copied.
func Raw(msg []byte) *Tree {
	return &Tree{kind: KindRaw, raw: bytes.Clone(msg)}
}

// Kind returns the variant of t.
func (t *Tree) Kind() Kind {
	return t.kind
}

// IsNode reports whether t is a non-nil node.
func (t *Tree) IsNode() bool {
	return t != nil && t.kind == KindNode
}

// IsLeaf reports whether t is a non-nil leaf.
func (t *Tree) IsLeaf() bool {
	return t != nil && t.kind == KindLeaf
}

// IsRaw reports whether t is a non-nil raw value.
func (t *Tree) IsRaw() bool {
	return t != nil && t.kind == KindRaw
}

// Value returns the text of a leaf, or "" for any other variant.
func (t *Tree) Value() string {
	if !t.IsLeaf() {
		return ""
	}
	return t.value
}

// RawValue returns the JSON text of a raw value, or nil for any other variant.
func (t *Tree) RawValue() json.RawMessage {
	if !t.IsRaw() {
		return nil
	}
	return t.raw
}

// Text returns a display form of a non-node value: the string of a leaf or
// the JSON text of a raw value.
func (t *Tree) Text() string {
	switch {
	case t.IsLeaf():
		return t.value
	case t.IsRaw():
		return string(t.raw)
	default:
		return ""
	}
}

// Keys returns the child names of a node in insertion order.
func (t *Tree) Keys() []string {
	if !t.IsNode() {
		return nil
	}
	return slices.Clone(t.keys)
}

// Len returns the number of children of a node.
func (t *Tree) Len() int {
	if !t.IsNode() {
		return 0
	}
	return len(t.keys)
}

// Empty reports whether t is absent or a node without children.
func (t *Tree) Empty() bool {
	return t == nil || (t.kind == KindNode && len(t.keys) == 0)
}

// Child returns the named child of a node.
func (t *Tree) Child(key string) (*Tree, bool) {
	if !t.IsNode() {
		return nil, false
	}
	c, ok := t.children[key]
	return c, ok
}

// Put sets the named child of a node, keeping the position of an existing key.
// Put panics when t is not a node.
func (t *Tree) Put(key string, child *Tree) {
	if !t.IsNode() {
		panic("tree: Put on non-node value")
	}
	if _, exists := t.children[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.children[key] = child
}

// Remove deletes the named child of a node and reports whether it existed.
func (t *Tree) Remove(key string) bool {
	if !t.IsNode() {
		return false
	}
	if _, ok := t.children[key]; !ok {
		return false
	}
	delete(t.children, key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })
	return true
}

// Clone returns a deep copy of t.
func (t *Tree) Clone() *Tree {
	if t == nil {
		return nil
	}
	switch t.kind {
	case KindLeaf:
		return Leaf(t.value)
	case KindRaw:
		return Raw(t.raw)
	}
	out := NewNode()
	for _, k := range t.keys {
		out.Put(k, t.children[k].Clone())
	}
	return out
}

// Equal reports whether two trees hold the same values. Key order is ignored.
func (t *Tree) Equal(o *Tree) bool {
	if t == nil || o == nil {
		return t == nil && o == nil
	}
	if t.kind != o.kind {
		return false
	}
	switch t.kind {
	case KindLeaf:
		return t.value == o.value
	case KindRaw:
		return bytes.Equal(t.raw, o.raw)
	}
	if len(t.keys) != len(o.keys) {
		return false
	}
	for _, k := range t.keys {
		oc, ok := o.children[k]
		if !ok || !t.children[k].Equal(oc) {
			return false
		}
	}
	return true
}

// String renders t as compact JSON.
func (t *Tree) String() string {
	var buf bytes.Buffer
	writeJSON(&buf, t, "", "")
	return buf.String()
}

// WalkFunc is called for every non-node value reached by Walk.
type WalkFunc func(path Path, value *Tree) error

// Walk visits every leaf and raw value below t depth first, in key order.
// Returning an error from fn stops the walk and returns that error.
func (t *Tree) Walk(fn WalkFunc) error {
	return walk(t, nil, fn)
}

func walk(t *Tree, prefix Path, fn WalkFunc) error {
	if t == nil {
		return nil
	}
	if t.kind != KindNode {
		return fn(prefix, t)
	}
	for _, k := range t.keys {
		if err := walk(t.children[k], prefix.Append(k), fn); err != nil {
			return err
		}
	}
	return nil
}

// CountLeaves returns the number of non-node values below t.
func (t *Tree) CountLeaves() int {
	if t == nil {
		return 0
	}
	if t.kind != KindNode {
		return 1
	}
	n := 0
	for _, k := range t.keys {
		n += t.children[k].CountLeaves()
	}
	return n
}

// FindValue returns the path of the first leaf whose text equals text,
// ignoring case. The search is depth first in key order.
func (t *Tree) FindValue(text string) (Path, bool) {
	var found Path
	err := t.Walk(func(p Path, v *Tree) error {
		if v.IsLeaf() && strings.EqualFold(v.value, text) {
			found = p
			return errStop
		}
		return nil
	})
	return found, err == errStop
}

var errStop = errors.New("stop")
