package domain

import "slices"

// PublishedSet is the accumulator of package names published in earlier groups.
//
// It is a value: With returns a grown copy and never mutates the receiver, so a
// group step can only observe what earlier steps handed to it.
type PublishedSet struct {
	names []string
}

// NewPublishedSet returns a set seeded with names.
func NewPublishedSet(names ...string) PublishedSet {
	return PublishedSet{}.With(names...)
}

// With returns a new set containing the receiver's names plus names.
func (s PublishedSet) With(names ...string) PublishedSet {
	grown := slices.Clone(s.names)
	for _, name := range names {
		if !slices.Contains(grown, name) {
			grown = append(grown, name)
		}
	}
	return PublishedSet{names: grown}
}

// Contains reports whether name has been published.
func (s PublishedSet) Contains(name string) bool {
	return slices.Contains(s.names, name)
}

// Names returns the names in insertion order.
func (s PublishedSet) Names() []string {
	return slices.Clone(s.names)
}

// Len returns the number of names in the set.
func (s PublishedSet) Len() int {
	return len(s.names)
}
