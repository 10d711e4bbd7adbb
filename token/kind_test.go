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

package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntree/token"
)

func TestFlags(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.True(token.Whitespace.IsTrivia())
	assert.True(token.Newline.IsTrivia())
	assert.True(token.LineComment.IsTrivia())
	assert.True(token.BlockComment.IsTrivia())
	assert.False(token.Ident.IsTrivia())
	assert.False(token.Unknown.IsTrivia())

	assert.True(token.KwAsync.Is(token.FlagIdent))
	assert.True(token.KwAsync.IsKeyword())
	assert.False(token.Ident.IsKeyword())
	assert.True(token.KwTrue.Is(token.FlagBoolean))
	assert.True(token.Long.Is(token.FlagLiteral))
	assert.False(token.Plus.Is(token.FlagLiteral))

	assert.Equal(token.Flags(0), token.Kind(200).Flags())
	assert.Equal(token.Flags(0), token.None.Flags())
}

func TestNames(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	for k := token.None; k <= token.RBracket; k++ {
		got, ok := token.Lookup(k.String())
		assert.True(ok, "%v", k)
		assert.Equal(k, got)
	}

	_, ok := token.Lookup("Nonsense")
	assert.False(ok)
	assert.Equal("token.Kind(200)", token.Kind(200).String())
	assert.Equal("=>", token.Arrow.Text())
	assert.Empty(token.Ident.Text())
}
