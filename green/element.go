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

package green

import (
	"fmt"
	"iter"
	"strings"

	"github.com/bufbuild/syntree/internal/arena"
	"github.com/bufbuild/syntree/syntax"
)

// Store holds the structural elements built by one [Builder].
type Store struct {
	elems arena.Arena[raw]
	// Children of every node, contiguous per node.
	kids []arena.Pointer[raw]
}

// raw is the arena representation of an element.
type raw struct {
	kind syntax.Raw
	len  uint32

	// Range of this node's children in Store.kids. Always empty for tokens.
	first, count uint32
}

// Element is a node or token in a structural tree.
//
// The zero Element is not part of any tree; [Element.IsZero] reports whether
// an Element is zero.
type Element struct {
	store *Store
	ptr   arena.Pointer[raw]
}

// IsZero returns whether this is the zero Element.
func (e Element) IsZero() bool {
	return e.store == nil || e.ptr.Nil()
}

// Kind returns this element's raw kind.
func (e Element) Kind() syntax.Raw {
	if e.IsZero() {
		return 0
	}
	return e.raw().kind
}

// IsNode returns whether this element is a node.
func (e Element) IsNode() bool {
	return e.Kind().IsNode()
}

// IsToken returns whether this element is a token.
func (e Element) IsToken() bool {
	return e.Kind().IsToken()
}

// Len returns this element's length in bytes.
func (e Element) Len() int {
	if e.IsZero() {
		return 0
	}
	return int(e.raw().len)
}

// NumChildren returns the number of children this element has. Tokens have
// none.
func (e Element) NumChildren() int {
	if e.IsZero() {
		return 0
	}
	return int(e.raw().count)
}

// Child returns the nth child of this element.
func (e Element) Child(n int) Element {
	r := e.raw()
	if n < 0 || n >= int(r.count) {
		panic(fmt.Sprintf("syntree/green: child index out of range: %d of %d", n, r.count))
	}
	return Element{e.store, e.store.kids[int(r.first)+n]}
}

// Children returns an iterator over this element's children.
func (e Element) Children() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		for i := range e.NumChildren() {
			if !yield(e.Child(i)) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer]. The result is an S-expression of kinds
// and lengths, e.g. (Source Whitespace:1 (VarDecl Ident:1)).
func (e Element) String() string {
	var b strings.Builder
	e.format(&b)
	return b.String()
}

func (e Element) format(b *strings.Builder) {
	if e.IsZero() {
		b.WriteString("<nil>")
		return
	}
	if e.IsToken() {
		fmt.Fprintf(b, "%v:%d", e.Kind().Token(), e.Len())
		return
	}

	b.WriteByte('(')
	b.WriteString(e.Kind().Node().String())
	for child := range e.Children() {
		b.WriteByte(' ')
		child.format(b)
	}
	b.WriteByte(')')
}

func (e Element) raw() *raw {
	return e.store.elems.Deref(e.ptr)
}
