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

// Package flat computes the positioned form of a syntax tree: a single array
// of entries in pre-order, each carrying its absolute source range and the
// indices of its parent and descendants.
//
// Parent and child relationships in the positioned form are plain integers,
// so it can be copied, shared between goroutines, and serialized without any
// pointer chasing.
package flat

import (
	"fmt"

	"github.com/bufbuild/syntree/green"
	"github.com/bufbuild/syntree/syntax"
)

// Entry is a single positioned element.
type Entry struct {
	Kind syntax.Raw

	// The absolute source range of this element, [Start, End).
	Start, End int32

	// Index of this element's parent; -1 for the root.
	Parent int32

	// This element's descendants are the entries in [ChildStart, ChildEnd).
	// ChildStart is always one past this entry's own index; for tokens and
	// childless nodes, ChildStart == ChildEnd.
	//
	// The first child, if any, is at ChildStart, and each child's next
	// sibling is at that child's ChildEnd.
	ChildStart, ChildEnd int32
}

// IsNode returns whether this entry is a node.
func (e Entry) IsNode() bool {
	return e.Kind.IsNode()
}

// IsToken returns whether this entry is a token.
func (e Entry) IsToken() bool {
	return e.Kind.IsToken()
}

// Len returns the length of this entry's range.
func (e Entry) Len() int {
	return int(e.End - e.Start)
}

// String implements [fmt.Stringer].
func (e Entry) String() string {
	return fmt.Sprintf("%v@%d..%d^%d[%d:%d]", e.Kind, e.Start, e.End, e.Parent, e.ChildStart, e.ChildEnd)
}

// Flatten computes the positioned form of a structural tree. count is the
// number of elements in the tree, as returned by [green.Builder.Finish]; it is
// only used to size the result.
//
// The root is at index 0 and starts at offset 0.
func Flatten(root green.Element, count int) []Entry {
	if root.IsZero() {
		return nil
	}

	type frame struct {
		elem   green.Element
		parent int32
		start  int32
	}

	entries := make([]Entry, 0, max(count, 1))
	stack := []frame{{elem: root, parent: -1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		idx := int32(len(entries))
		entries = append(entries, Entry{
			Kind:       top.elem.Kind(),
			Start:      top.start,
			End:        top.start + int32(top.elem.Len()),
			Parent:     top.parent,
			ChildStart: idx + 1,
			ChildEnd:   idx + 1,
		})

		// Push children in reverse so that they pop in order.
		n := top.elem.NumChildren()
		if n == 0 {
			continue
		}
		offset := top.start + int32(top.elem.Len())
		for i := n - 1; i >= 0; i-- {
			child := top.elem.Child(i)
			offset -= int32(child.Len())
			stack = append(stack, frame{elem: child, parent: idx, start: offset})
		}
	}

	// Every descendant of an entry comes after it, so walking backwards
	// finalizes each ChildEnd before it is folded into the parent's.
	for i := len(entries) - 1; i > 0; i-- {
		p := entries[i].Parent
		entries[p].ChildEnd = max(entries[p].ChildEnd, entries[i].ChildEnd)
	}
	return entries
}

// Validate checks that entries is a well-formed positioned tree, as produced
// by [Flatten].
func Validate(entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	if entries[0].Parent != -1 || entries[0].Start != 0 {
		return fmt.Errorf("root entry %v must have no parent and start at 0", entries[0])
	}

	n := int32(len(entries))
	for i, e := range entries {
		i := int32(i)
		switch {
		case e.Start > e.End:
			return fmt.Errorf("entry %d: backwards range %d..%d", i, e.Start, e.End)
		case e.ChildStart != i+1 || e.ChildEnd < e.ChildStart || e.ChildEnd > n:
			return fmt.Errorf("entry %d: bad descendant range [%d:%d]", i, e.ChildStart, e.ChildEnd)
		case e.IsToken() && e.ChildEnd != e.ChildStart:
			return fmt.Errorf("entry %d: token with descendants", i)
		case i == 0:
			if e.ChildEnd != n {
				return fmt.Errorf("root entry does not cover all %d entries", n)
			}
			continue
		case e.Parent < 0 || e.Parent >= i:
			return fmt.Errorf("entry %d: parent %d must come before it", i, e.Parent)
		}

		p := entries[e.Parent]
		if e.ChildEnd > p.ChildEnd || i >= p.ChildEnd {
			return fmt.Errorf("entry %d: escapes its parent %d", i, e.Parent)
		}
		if e.Start < p.Start || e.End > p.End {
			return fmt.Errorf("entry %d: range %d..%d escapes its parent's %d..%d", i, e.Start, e.End, p.Start, p.End)
		}
	}
	return nil
}
