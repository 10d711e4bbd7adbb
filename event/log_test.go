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

	"github.com/bufbuild/syntree/event"
	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

func TestMarkers(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// a + b, where the parser learns that a is an operand after the fact.
	var log event.Log
	file := log.Open()
	name := log.Open()
	log.Token(token.Ident, 0, 1)
	lhs := name.Complete(syntax.NameExpr)
	bin := lhs.Precede()
	log.Token(token.Plus, 1, 2)
	rhs := log.Open()
	log.Token(token.Ident, 2, 3)
	rhs.Complete(syntax.NameExpr)
	bin.Complete(syntax.BinaryExpr)
	file.Complete(syntax.Source)

	events := log.Events()
	assert.Equal(syntax.NameExpr, events[lhs.Pos()].Node)
	assert.Equal(bin.Pos(), events[lhs.Pos()].Parent)
	assert.Equal(event.NoParent, events[bin.Pos()].Parent)
	assert.Equal(syntax.BinaryExpr, events[bin.Pos()].Node)
	assert.Equal(syntax.Source, events[file.Pos()].Node)
	assert.Equal(event.Finish, events[len(events)-1].Kind)

	var starts, finishes int
	for _, ev := range events {
		switch ev.Kind {
		case event.Start:
			starts++
		case event.Finish:
			finishes++
		}
	}
	assert.Equal(4, starts)
	assert.Equal(starts, finishes)
}

func TestAbandon(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var log event.Log
	log.Open().Abandon()
	assert.Zero(log.Len())

	m := log.Open()
	log.Token(token.Ident, 0, 1)
	m.Abandon()
	assert.Equal(2, log.Len())
	assert.Equal(syntax.None, log.At(0).Node)
}

func TestAbandonPreceding(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	// a, where the parser looks for an operator after it and finds none.
	var log event.Log
	name := log.Open()
	log.Token(token.Ident, 0, 1)
	lhs := name.Complete(syntax.NameExpr)
	lhs.Precede().Abandon()
	assert.Equal(3, log.Len())
	assert.Equal(event.NoParent, log.At(lhs.Pos()).Parent)

	// The next node reuses the abandoned index, but is not lhs's parent.
	stmt := log.Open()
	assert.Equal(3, stmt.Pos())
	assert.Equal(event.NoParent, log.At(lhs.Pos()).Parent)

	// lhs can still be preceded.
	bin := lhs.Precede()
	assert.Equal(bin.Pos(), log.At(lhs.Pos()).Parent)

	// Abandoning a precede marker in place also drops the link.
	log.Token(token.Plus, 1, 2)
	bin.Abandon()
	assert.Equal(event.NoParent, log.At(lhs.Pos()).Parent)
	assert.Equal(syntax.None, log.At(bin.Pos()).Node)
}

func TestMisuse(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var log event.Log
	m := log.Open()
	c := m.Complete(syntax.ExprStmt)
	assert.Panics(func() { m.Complete(syntax.ExprStmt) })
	assert.Panics(func() { m.Abandon() })
	c.Precede()
	assert.Panics(func() { c.Precede() })
	assert.Panics(func() { log.Token(token.Ident, 2, 1) })
}

func TestErrorProvenance(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var log event.Log
	log.Errorf("expected %s", "expression")
	log.Error("oops")

	ev := log.At(0)
	assert.Equal(event.Error, ev.Kind)
	assert.Equal("expected expression", ev.Message)
	assert.Contains(ev.Provenance.Function, "TestErrorProvenance")
	assert.Contains(ev.Provenance.File, "log_test.go")
	assert.Equal("oops", log.At(1).Message)
}

func TestString(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("start(Source)", event.Event{Kind: event.Start, Node: syntax.Source, Parent: event.NoParent}.String())
	assert.Equal("start(NameExpr, parent=4)", event.Event{Kind: event.Start, Node: syntax.NameExpr, Parent: 4}.String())
	assert.Equal("token(Ident, 1..3)", event.Event{Kind: event.Token, Token: token.Ident, Start: 1, End: 3}.String())
	assert.Equal("remap(Ident -> KwAsync)", event.Event{Kind: event.Remap, Token: token.Ident, To: token.KwAsync}.String())
	assert.Equal("finish", event.Event{Kind: event.Finish}.String())
}
