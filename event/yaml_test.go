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

package event_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntree/event"
	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

func TestDecodeYAML(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	doc, err := event.DecodeYAML("test.yaml", []byte(`
text: "let async = x"
events:
  - start: Source
  - start: VarDecl
  - token: KwLet
  - token: Whitespace
    len: 1
  - token: Ident
    text: async
  - remap: Ident -> KwAsync
  - token: Whitespace
    len: 1
  - token: Eq
  - token: Whitespace
    len: 1
  - start: NameExpr
    parent: 12
  - token: Ident
    len: 1
  - finish
  - start: ParenExpr
  - error: expected an expression
  - finish
`))
	require.NoError(t, err)

	assert.Equal("test", doc.Path)
	assert.Equal("let async = x", doc.File().Text())

	events := doc.Log.Events()
	assert.Len(events, 15)
	assert.Equal(event.Event{Kind: event.Token, Token: token.Ident, Start: 4, End: 9}, events[4])
	assert.Equal(event.Event{Kind: event.Remap, Token: token.Ident, To: token.KwAsync}, events[5])
	assert.Equal(event.Event{Kind: event.Start, Node: syntax.NameExpr, Parent: 12}, events[9])
	assert.Equal(event.Event{Kind: event.Token, Token: token.Ident, Start: 12, End: 13}, events[10])
	assert.Equal("expected an expression", events[13].Message)
	assert.Equal("test.yaml", events[13].Provenance.File)
	assert.Equal(23, events[13].Provenance.Line)
}

func TestDecodeYAMLErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, yaml, err string
	}{
		{"unknown-event", "events: [fnish]", `unknown event "fnish"`},
		{"two-keys", "events: [{start: Source, error: x}]", "exactly one of"},
		{"bad-kind", "events: [{start: Nope}]", `unknown node kind "Nope"`},
		{"bad-token", "events: [{token: Nope, len: 1}]", `unknown token kind "Nope"`},
		{"no-len", "text: x\nevents: [{token: Ident}]", "needs a len or text"},
		{"past-end", "text: x\nevents: [{token: Ident, len: 2}]", "past the end"},
		{"mismatch", "text: x\nevents: [{token: Ident, text: y}]", "does not match"},
		{"fixed", "text: var\nevents: [{token: KwLet}]", `expected "let"`},
		{"remap", "events: [{remap: Ident}]", "From -> To"},
		{"parent", "events: [{start: Source, parent: 0}]", "later start event"},
		{"field", "nope: 1", "not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := event.DecodeYAML(tt.name, []byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}
