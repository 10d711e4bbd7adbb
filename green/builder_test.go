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

package green_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntree/green"
	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

func TestTrim(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(b *green.Builder)
		want  string
	}{
		{
			name: "leading",
			build: func(b *green.Builder) {
				b.StartNode(syntax.Source)
				b.Token(token.Whitespace, 1)
				b.StartNode(syntax.VarDecl)
				b.Token(token.Ident, 1)
				b.Token(token.Eq, 1)
				b.Token(token.Int, 1)
				b.FinishNode()
				b.FinishNode()
			},
			want: "(Source Whitespace:1 (VarDecl Ident:1 Eq:1 Int:1))",
		},
		{
			name: "both-ends",
			build: func(b *green.Builder) {
				b.StartNode(syntax.Source)
				b.StartNode(syntax.NameExpr)
				b.Token(token.LineComment, 4)
				b.Token(token.Ident, 1)
				b.Token(token.Newline, 1)
				b.FinishNode()
				b.FinishNode()
			},
			want: "(Source LineComment:4 (NameExpr Ident:1) Newline:1)",
		},
		{
			name: "interior",
			build: func(b *green.Builder) {
				b.StartNode(syntax.Source)
				b.StartNode(syntax.BinaryExpr)
				b.Token(token.Ident, 1)
				b.Token(token.Whitespace, 1)
				b.Token(token.Plus, 1)
				b.FinishNode()
				b.FinishNode()
			},
			want: "(Source (BinaryExpr Ident:1 Whitespace:1 Plus:1))",
		},
		{
			name: "only-trivia",
			build: func(b *green.Builder) {
				b.StartNode(syntax.Source)
				b.Token(token.Whitespace, 1)
				b.StartNode(syntax.ExprStmt)
				b.Token(token.Whitespace, 2)
				b.FinishNode()
				b.FinishNode()
			},
			want: "(Source Whitespace:1 Whitespace:2 (ExprStmt))",
		},
		{
			name: "skipped",
			build: func(b *green.Builder) {
				b.StartNode(syntax.Source)
				b.StartNode(syntax.ExprStmt)
				b.StartNode(syntax.Skipped)
				b.Token(token.Unknown, 1)
				b.FinishNode()
				b.Token(token.Ident, 1)
				b.FinishNode()
				b.FinishNode()
			},
			want: "(Source (Skipped Unknown:1) (ExprStmt Ident:1))",
		},
		{
			name: "block",
			build: func(b *green.Builder) {
				b.StartNode(syntax.Source)
				b.StartNode(syntax.Block)
				b.Token(token.Whitespace, 1)
				b.Token(token.LBrace, 1)
				b.Token(token.RBrace, 1)
				b.Token(token.Newline, 1)
				b.FinishNode()
				b.FinishNode()
			},
			want: "(Source (Block Whitespace:1 LBrace:1 RBrace:1 Newline:1))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var b green.Builder
			tt.build(&b)
			root, _ := b.Finish()
			assert.Equal(t, tt.want, root.String())
			checkLengths(t, root)
		})
	}
}

func TestLengths(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var b green.Builder
	b.StartNode(syntax.Source)
	b.Token(token.Whitespace, 1)
	b.StartNode(syntax.VarDecl)
	b.Token(token.Ident, 1)
	b.Token(token.Eq, 1)
	b.Token(token.Int, 1)
	b.FinishNode()
	b.FinishNode()
	root, count := b.Finish()

	assert.Equal(6, count)
	assert.Equal(4, root.Len())
	assert.Equal(2, root.NumChildren())
	decl := root.Child(1)
	assert.True(decl.IsNode())
	assert.Equal(syntax.VarDecl, decl.Kind().Node())
	assert.Equal(3, decl.Len())
	assert.True(decl.Child(0).IsToken())
	assert.Panics(func() { decl.Child(3) })
}

func TestRemap(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var b green.Builder
	assert.False(b.Remap(token.Ident, token.KwAsync))

	b.StartNode(syntax.Source)
	b.Token(token.Ident, 5)
	assert.True(b.Remap(token.Ident, token.KwAsync))
	assert.False(b.Remap(token.Ident, token.KwAwait))

	b.StartNode(syntax.AwaitExpr)
	b.Token(token.Ident, 5)
	b.Token(token.Whitespace, 1)
	b.StartNode(syntax.NameExpr)
	b.Token(token.Ident, 1)
	b.FinishNode()
	b.FinishNode()
	assert.True(b.Remap(token.Ident, token.KwAwait))

	b.FinishNode()
	root, _ := b.Finish()
	assert.Equal("(Source KwAsync:5 (AwaitExpr KwAwait:5 Whitespace:1 (NameExpr KwAwait:1)))", root.String())
	assert.Equal(12, root.Len())
}

func TestFinish(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var b green.Builder
	b.FinishNode() // No-op.
	b.StartNode(syntax.Source)
	assert.Equal(1, b.Depth())
	assert.Panics(func() { b.Finish() })

	b = green.Builder{}
	b.Token(token.Ident, 1)
	b.Token(token.Ident, 1)
	assert.Panics(func() { b.Finish() })

	assert.Panics(func() { b.Token(token.Ident, -1) })
}

func TestRandom(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2))
	kinds := []syntax.Kind{syntax.VarDecl, syntax.Block, syntax.Skipped, syntax.CallExpr, syntax.ArgList}
	tokens := []token.Kind{token.Ident, token.Whitespace, token.Newline, token.BlockComment, token.Int, token.Comma}

	for range 50 {
		var b green.Builder
		var nodes, toks, total int
		var gen func(depth int)
		gen = func(depth int) {
			for range rng.IntN(5) {
				if depth < 4 && rng.IntN(3) == 0 {
					nodes++
					b.StartNode(kinds[rng.IntN(len(kinds))])
					gen(depth + 1)
					b.FinishNode()
					continue
				}
				n := rng.IntN(4)
				toks++
				total += n
				b.Token(tokens[rng.IntN(len(tokens))], n)
			}
		}

		b.StartNode(syntax.Source)
		gen(0)
		b.FinishNode()
		root, count := b.Finish()

		assert.Equal(t, nodes+toks+1, count)
		assert.Equal(t, total, root.Len())
		assert.Equal(t, count, size(root))
		checkLengths(t, root)
	}
}

func size(e green.Element) int {
	n := 1
	for child := range e.Children() {
		n += size(child)
	}
	return n
}

// checkLengths checks that every node's length is the sum of its children's,
// and that non-transparent nodes do not begin or end with trivia.
func checkLengths(t *testing.T, e green.Element) {
	t.Helper()
	if e.IsToken() {
		return
	}

	var sum int
	for child := range e.Children() {
		sum += child.Len()
		checkLengths(t, child)
	}
	assert.Equal(t, sum, e.Len(), "%v", e)

	if n := e.NumChildren(); n > 0 && !e.Kind().Node().IsTransparent() {
		assert.False(t, e.Child(0).Kind().IsTrivia(), "%v", e)
		assert.False(t, e.Child(n-1).Kind().IsTrivia(), "%v", e)
	}
}
