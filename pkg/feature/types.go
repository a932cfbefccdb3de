package feature

import (
	"iter"

	"github.com/goliatone/go-featuregrid/pkg/icon"
)

// Descriptor describes one card in the grid.
type Descriptor struct {
	Title       string   `json:"title" yaml:"title"`
	Icon        icon.Ref `json:"icon" yaml:"icon"`
	Description string   `json:"description" yaml:"description"`
}

// List is an ordered, read-only set of descriptors. The zero value is an empty
// list.
type List struct {
	items []Descriptor
}

// NewList copies descriptors into a new List, preserving order.
func NewList(descriptors ...Descriptor) List {
	if len(descriptors) == 0 {
		return List{}
	}
	items := make([]Descriptor, len(descriptors))
	copy(items, descriptors)
	return List{items: items}
}

// Len returns the number of descriptors.
func (l List) Len() int {
	return len(l.items)
}

// At returns the descriptor at index i and whether it exists.
func (l List) At(i int) (Descriptor, bool) {
	if i < 0 || i >= len(l.items) {
		return Descriptor{}, false
	}
	return l.items[i], true
}

// All returns a copy of the descriptors in order.
func (l List) All() []Descriptor {
	out := make([]Descriptor, len(l.items))
	copy(out, l.items)
	return out
}

// Each yields index/descriptor pairs in order.
func (l List) Each() iter.Seq2[int, Descriptor] {
	return func(yield func(int, Descriptor) bool) {
		for i, d := range l.items {
			if !yield(i, d) {
				return
			}
		}
	}
}

// Titles returns the descriptor titles in order.
func (l List) Titles() []string {
	out := make([]string, 0, len(l.items))
	for _, d := range l.items {
		out = append(out, d.Title)
	}
	return out
}
