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

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

func TestRaw(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	n := syntax.NodeRaw(syntax.VarDecl)
	assert.True(n.IsNode())
	assert.False(n.IsToken())
	assert.Equal(syntax.VarDecl, n.Node())
	assert.Equal(token.None, n.Token())
	assert.Equal("VarDecl", n.String())

	tok := syntax.TokenRaw(token.Ident)
	assert.True(tok.IsToken())
	assert.Equal(token.Ident, tok.Token())
	assert.Equal(syntax.None, tok.Node())
	assert.Equal("Ident", tok.String())

	unmapped := syntax.NodeRaw(syntax.Kind(999))
	assert.True(unmapped.IsNode())
	assert.Equal(syntax.Kind(999), unmapped.Node())
	assert.False(unmapped.Node().IsKnown())
	assert.Equal("syntax.Kind(999)", unmapped.String())
}

func TestTrivia(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(syntax.NodeRaw(syntax.Skipped).IsTrivia())
	assert.False(syntax.NodeRaw(syntax.Error).IsTrivia())
	assert.True(syntax.TokenRaw(token.Whitespace).IsTrivia())
	assert.True(syntax.TokenRaw(token.BlockComment).IsTrivia())
	assert.False(syntax.TokenRaw(token.Semi).IsTrivia())

	assert.True(syntax.Source.IsTransparent())
	assert.True(syntax.Block.IsTransparent())
	assert.False(syntax.VarDecl.IsTransparent())
	assert.False(syntax.Skipped.IsTransparent())
}

func TestLookup(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for k := syntax.Source; k <= syntax.AwaitExpr; k++ {
		got, ok := syntax.Lookup(k.String())
		assert.True(ok, "%v", k)
		assert.Equal(k, got)
		assert.True(k.IsKnown())
	}
	assert.False(syntax.None.IsKnown())
}
