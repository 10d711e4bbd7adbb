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
	"iter"
	"strconv"
	"strings"
)

// Descendants returns the descendants of root, in pre-order, for which as
// returns a non-zero view.
//
// For example, to find every variable declaration in a file:
//
//	for decl := range ast.Descendants(tree.Root(), (*ast.Element).AsVarDecl) {
//		...
//	}
func Descendants[V interface{ IsZero() bool }](root *Element, as func(*Element) V) iter.Seq[V] {
	return filterSeq(root.Descendants(), as)
}

// Dump returns a textual outline of a tree: one line per element, indented by
// depth, giving its kind and range. Tokens also show their text.
func Dump(t *Tree) string {
	var b strings.Builder
	if root := t.Root(); root != nil {
		dump(&b, root, 0)
	}
	return b.String()
}

func dump(b *strings.Builder, e *Element, depth int) {
	for range depth {
		b.WriteString("  ")
	}
	b.WriteString(e.String())
	if e.IsToken() {
		b.WriteByte(' ')
		b.WriteString(strconv.Quote(e.Text()))
	}
	b.WriteByte('\n')

	for child := range e.Children() {
		dump(b, child, depth+1)
	}
}
