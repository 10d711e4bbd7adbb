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

package ast

import (
	"fmt"
	"iter"

	"github.com/bufbuild/syntree/id"
	"github.com/bufbuild/syntree/source"
	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

// Element is a node or token in a [Tree].
//
// Elements are created by [Tree.Element], which returns the same pointer for
// the same index every time. All methods of Element may be called on a nil
// *Element, and return neutral values.
type Element struct {
	tree    *Tree
	idx     int32
	variant Variant
}

// Tree returns the tree this element belongs to.
func (e *Element) Tree() *Tree {
	if e == nil {
		return nil
	}
	return e.tree
}

// Index returns this element's index in its tree, or -1 for nil.
func (e *Element) Index() int {
	if e == nil {
		return -1
	}
	return int(e.idx)
}

// Handle returns a handle that refers to this element.
func (e *Element) Handle() id.Handle {
	if e == nil {
		return id.Empty
	}
	return e.tree.Handle(int(e.idx))
}

// Variant returns this element's shape.
func (e *Element) Variant() Variant {
	if e == nil {
		return VariantNone
	}
	return e.variant
}

// Kind returns this element's raw kind.
func (e *Element) Kind() syntax.Raw {
	return e.Tree().Kind(e.Index())
}

// NodeKind returns this element's node kind, or [syntax.None] if it is a
// token.
func (e *Element) NodeKind() syntax.Kind {
	return e.Tree().NodeKind(e.Index())
}

// TokenKind returns this element's token kind, or [token.None] if it is a
// node.
func (e *Element) TokenKind() token.Kind {
	return e.Tree().TokenKind(e.Index())
}

// IsNode returns whether this element is a node.
func (e *Element) IsNode() bool {
	return e.Tree().IsNode(e.Index())
}

// IsToken returns whether this element is a token.
func (e *Element) IsToken() bool {
	return e.Tree().IsToken(e.Index())
}

// Span implements [source.Spanner].
func (e *Element) Span() source.Span {
	return e.Tree().Span(e.Index())
}

// Text returns the source text of this element.
func (e *Element) Text() string {
	return e.Span().Text()
}

// Parent returns this element's parent, or nil if it is the root.
func (e *Element) Parent() *Element {
	return e.Tree().Element(e.Tree().Parent(e.Index()))
}

// Children returns an iterator over this element's direct children.
func (e *Element) Children() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		t := e.Tree()
		end := t.ChildEnd(e.Index())
		for i := t.ChildStart(e.Index()); i >= 0 && i < end; i = t.ChildEnd(i) {
			if !yield(t.Element(i)) {
				return
			}
		}
	}
}

// Child returns this element's nth direct child, or nil if there is no such
// child.
func (e *Element) Child(n int) *Element {
	if n < 0 {
		return nil
	}
	for child := range e.Children() {
		if n == 0 {
			return child
		}
		n--
	}
	return nil
}

// NumChildren returns the number of direct children this element has.
func (e *Element) NumChildren() int {
	var n int
	for range e.Children() {
		n++
	}
	return n
}

// NextSibling returns the child of this element's parent that follows it, or
// nil if it is the last one.
func (e *Element) NextSibling() *Element {
	t := e.Tree()
	next := t.ChildEnd(e.Index())
	if next < 0 || next >= t.ChildEnd(t.Parent(e.Index())) {
		return nil
	}
	return t.Element(next)
}

// Descendants returns an iterator over every element below this one, in
// pre-order.
func (e *Element) Descendants() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		t := e.Tree()
		end := t.ChildEnd(e.Index())
		for i := t.ChildStart(e.Index()); i >= 0 && i < end; i++ {
			if !yield(t.Element(i)) {
				return
			}
		}
	}
}

// Ancestors returns an iterator over this element's parent, its parent's
// parent, and so on up to the root.
func (e *Element) Ancestors() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for p := e.Parent(); p != nil; p = p.Parent() {
			if !yield(p) {
				return
			}
		}
	}
}

// FirstToken returns the first token in this element that is not trivia.
// A token is its own first token, unless it is trivia.
func (e *Element) FirstToken() *Element {
	if e.IsToken() {
		if e.TokenKind().IsTrivia() {
			return nil
		}
		return e
	}
	for d := range e.Descendants() {
		if d.IsToken() && !d.TokenKind().IsTrivia() {
			return d
		}
	}
	return nil
}

// Tokens returns an iterator over the tokens in this element, trivia
// included.
func (e *Element) Tokens() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		if e.IsToken() {
			yield(e)
			return
		}
		for d := range e.Descendants() {
			if d.IsToken() && !yield(d) {
				return
			}
		}
	}
}

// String implements [fmt.Stringer].
func (e *Element) String() string {
	if e == nil {
		return "<nil>"
	}
	start, end := e.tree.Range(int(e.idx))
	return fmt.Sprintf("%v@%d..%d", e.Kind(), start, end)
}
