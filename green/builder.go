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
	"math"
	"slices"

	"github.com/bufbuild/syntree/internal/arena"
	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

// Builder is a stack machine that assembles a structural tree bottom-up.
//
// Elements that are not yet part of a finished node sit in a single pending
// list. Starting a node records the current length of that list; finishing it
// moves everything recorded since into a new node, minus any trivia at
// either end unless the node is transparent.
//
// A zero Builder is ready to use.
type Builder struct {
	store   *Store
	pending []arena.Pointer[raw]
	stack   []open
	count   int
}

// open is a node that has been started but not finished.
type open struct {
	kind syntax.Kind
	pos  int
}

// StartNode opens a new node of the given kind.
func (b *Builder) StartNode(kind syntax.Kind) {
	b.stack = append(b.stack, open{kind: kind, pos: len(b.pending)})
}

// Token appends a token of the given kind and length to the innermost open
// node.
func (b *Builder) Token(kind token.Kind, length int) {
	if length < 0 || uint64(length) > math.MaxUint32 {
		panic(fmt.Sprintf("syntree/green: invalid token length %d", length))
	}
	b.pending = append(b.pending, b.new(raw{
		kind: syntax.TokenRaw(kind),
		len:  uint32(length),
	}))
}

// Remap reclassifies the most recently appended element. If it is a token of
// kind from, it becomes a token of kind to; if it is a node, every token of
// kind from within it is reclassified.
//
// Returns whether any token was reclassified.
func (b *Builder) Remap(from, to token.Kind) bool {
	if len(b.pending) == 0 {
		return false
	}
	return b.remap(b.pending[len(b.pending)-1], syntax.TokenRaw(from), syntax.TokenRaw(to))
}

func (b *Builder) remap(ptr arena.Pointer[raw], from, to syntax.Raw) bool {
	r := b.store.elems.Deref(ptr)
	if r.kind.IsToken() {
		if r.kind != from {
			return false
		}
		r.kind = to
		return true
	}

	var changed bool
	for _, kid := range b.store.kids[r.first : r.first+r.count] {
		changed = b.remap(kid, from, to) || changed
	}
	return changed
}

// FinishNode closes the innermost open node.
//
// Does nothing if no node is open.
func (b *Builder) FinishNode() {
	if len(b.stack) == 0 {
		return
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	kids := b.pending[top.pos:]
	lo, hi := 0, len(kids)
	if !top.kind.IsTransparent() {
		for lo < hi && b.isTrivia(kids[lo]) {
			lo++
		}
		for hi > lo && b.isTrivia(kids[hi-1]) {
			hi--
		}
		if lo == hi {
			// Only trivia; the empty node goes after all of it.
			lo, hi = len(kids), len(kids)
		}
	}

	var length uint64
	for _, kid := range kids[lo:hi] {
		length += uint64(b.store.elems.Deref(kid).len)
	}
	if length > math.MaxUint32 {
		panic(fmt.Sprintf("syntree/green: node too long: %d bytes", length))
	}

	node := b.new(raw{
		kind:  syntax.NodeRaw(top.kind),
		len:   uint32(length),
		first: uint32(len(b.store.kids)),
		count: uint32(hi - lo),
	})
	b.store.kids = append(b.store.kids, kids[lo:hi]...)
	b.pending = slices.Replace(b.pending, top.pos+lo, top.pos+hi, node)
}

// Finish completes the tree, returning its root and the total number of
// elements created, nodes and tokens alike.
//
// Panics if any node is still open, or if there is not exactly one
// top-level element.
func (b *Builder) Finish() (root Element, count int) {
	if len(b.stack) != 0 {
		panic(fmt.Sprintf("syntree/green: finished with %d unclosed nodes", len(b.stack)))
	}
	if len(b.pending) != 1 {
		panic(fmt.Sprintf("syntree/green: finished with %d top-level elements, want 1", len(b.pending)))
	}
	return Element{b.store, b.pending[0]}, b.count
}

// Depth returns the number of open nodes.
func (b *Builder) Depth() int {
	return len(b.stack)
}

func (b *Builder) isTrivia(ptr arena.Pointer[raw]) bool {
	return b.store.elems.Deref(ptr).kind.IsTrivia()
}

func (b *Builder) new(r raw) arena.Pointer[raw] {
	if b.store == nil {
		b.store = new(Store)
	}
	b.count++
	return b.store.elems.NewCompressed(r)
}
