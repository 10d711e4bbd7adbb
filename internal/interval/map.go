// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package interval provides a map keyed by disjoint half-open ranges.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Map maps pairwise-disjoint, half-open intervals [Start, End) to values.
//
// A zero value is ready to use.
type Map[K Endpoint, V any] struct {
	// Keyed by the last point in each interval, End - 1. Seeking to a point
	// then lands on the only interval that could contain it.
	tree btree.Map[K, Interval[K, V]]
}

// Interval is an entry in a [Map].
type Interval[K Endpoint, V any] struct {
	Start, End K
	Value      V
}

// Contains returns whether this interval contains point.
func (i Interval[K, V]) Contains(point K) bool {
	return i.Start <= point && point < i.End
}

// Len returns the number of intervals in this map.
func (m *Map[K, V]) Len() int {
	return m.tree.Len()
}

// Get returns the interval that contains point, if there is one.
func (m *Map[K, V]) Get(point K) (Interval[K, V], bool) {
	it := m.tree.Iter()
	if !it.Seek(point) || !it.Value().Contains(point) {
		return Interval[K, V]{}, false
	}
	return it.Value(), true
}

// Insert adds [start, end) to this map, unless it overlaps an interval
// already present, in which case the first such interval is returned
// instead.
//
// Empty intervals contain no points, and are never inserted.
func (m *Map[K, V]) Insert(start, end K, value V) (overlap Interval[K, V], ok bool) {
	if start > end {
		panic(fmt.Sprintf("syntree/interval: start (%#v) > end (%#v)", start, end))
	}
	if start == end {
		return Interval[K, V]{}, true
	}

	// The first interval whose last point is at or after start is the only
	// candidate for overlapping from the left; if it starts at or after end,
	// nothing overlaps.
	it := m.tree.Iter()
	if it.Seek(start) && it.Value().Start < end {
		return it.Value(), false
	}

	m.tree.Set(end-1, Interval[K, V]{Start: start, End: end, Value: value})
	return Interval[K, V]{}, true
}

// All returns an iterator over the intervals in this map, in order.
func (m *Map[K, V]) All() iter.Seq[Interval[K, V]] {
	return func(yield func(Interval[K, V]) bool) {
		it := m.tree.Iter()
		for more := it.First(); more; more = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Format implements [fmt.Formatter].
func (m *Map[K, V]) Format(s fmt.State, v rune) {
	fmt.Fprint(s, "{")
	first := true
	for i := range m.All() {
		if !first {
			fmt.Fprint(s, ", ")
		}
		first = false
		fmt.Fprintf(s, "[%#v, %#v): ", i.Start, i.End)
		fmt.Fprintf(s, fmt.FormatString(s, v), i.Value)
	}
	fmt.Fprint(s, "}")
}
