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

package event

import (
	"fmt"
	"slices"

	"github.com/bufbuild/syntree/report"
	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

// Log is an ordered sequence of [Event]s.
//
// A zero Log is empty and ready to use.
type Log struct {
	events []Event
}

// Len returns the number of events in this log.
func (l *Log) Len() int {
	return len(l.events)
}

// At returns the event at the given index.
func (l *Log) At(idx int) Event {
	return l.events[idx]
}

// Events returns a copy of the events in this log.
func (l *Log) Events() []Event {
	return slices.Clone(l.events)
}

// Push appends raw events to this log.
//
// Most callers should use the typed helpers ([Log.Open], [Log.Token], and so
// on) instead, which maintain the log's invariants.
func (l *Log) Push(events ...Event) {
	l.events = append(l.events, events...)
}

// Start appends a start event for a node whose kind is already known.
func (l *Log) Start(kind syntax.Kind) {
	l.events = append(l.events, Event{Kind: Start, Node: kind, Parent: NoParent})
}

// Finish appends a finish event, closing the most recently started node.
func (l *Log) Finish() {
	l.events = append(l.events, Event{Kind: Finish})
}

// Token appends a consume-token event for the source range [start, end).
func (l *Log) Token(kind token.Kind, start, end int) {
	if end < start {
		panic(fmt.Sprintf("syntree/event: token range is backwards: %d > %d", start, end))
	}
	l.events = append(l.events, Event{Kind: Token, Token: kind, Start: start, End: end})
}

// Remap appends an event that reclassifies the most recently consumed token,
// if it has kind from, as kind to.
func (l *Log) Remap(from, to token.Kind) {
	l.events = append(l.events, Event{Kind: Remap, Token: from, To: to})
}

// Error appends a syntax error event. Its provenance is the caller of Error.
func (l *Log) Error(message string) {
	l.events = append(l.events, Event{
		Kind:       Error,
		Message:    message,
		Provenance: report.Here(1),
	})
}

// Errorf is like [Log.Error], but formats its message.
func (l *Log) Errorf(format string, args ...any) {
	l.events = append(l.events, Event{
		Kind:       Error,
		Message:    fmt.Sprintf(format, args...),
		Provenance: report.Here(1),
	})
}

// Open appends a start event for a node whose kind is not yet known, and
// returns a marker for it. The marker must be either completed or
// abandoned.
func (l *Log) Open() Marker {
	l.events = append(l.events, Event{Kind: Start, Parent: NoParent})
	return Marker{log: l, pos: len(l.events) - 1, child: NoParent}
}

// Marker is an open start event in a [Log], returned by [Log.Open].
type Marker struct {
	log *Log
	pos int

	// The start event of the node this marker was opened to precede, or
	// NoParent.
	child int
}

// Pos returns the index of this marker's start event.
func (m Marker) Pos() int {
	return m.pos
}

// Complete sets the kind of this marker's node, and appends a finish event
// for it.
func (m Marker) Complete(kind syntax.Kind) Completed {
	ev := m.event()
	if ev.Node != syntax.None {
		panic(fmt.Sprintf("syntree/event: completed marker at %d twice", m.pos))
	}
	if kind == syntax.None {
		panic("syntree/event: completed marker with syntax.None")
	}
	ev.Node = kind
	m.log.Finish()
	return Completed{log: m.log, pos: m.pos, kind: kind}
}

// Abandon discards this marker's start event. If it is the last event in the
// log, it is removed outright; otherwise it is left in place as a start event
// with no kind, which replay skips.
//
// If the marker came from [Completed.Precede], the preceded node goes back to
// having no deferred parent, and may be preceded again.
//
// Panics if the marker was already completed.
func (m Marker) Abandon() {
	if m.event().Node != syntax.None {
		panic(fmt.Sprintf("syntree/event: abandoned completed marker at %d", m.pos))
	}
	if m.child != NoParent && m.log.events[m.child].Parent == m.pos {
		m.log.events[m.child].Parent = NoParent
	}
	if m.pos == len(m.log.events)-1 {
		m.log.events = m.log.events[:m.pos]
	}
}

func (m Marker) event() *Event {
	if m.log == nil || m.pos >= len(m.log.events) || m.log.events[m.pos].Kind != Start {
		panic(fmt.Sprintf("syntree/event: invalid marker at %d", m.pos))
	}
	return &m.log.events[m.pos]
}

// Completed is a node in a [Log] whose start and finish events have both been
// appended.
type Completed struct {
	log  *Log
	pos  int
	kind syntax.Kind
}

// Kind returns the kind this node was completed with.
func (c Completed) Kind() syntax.Kind {
	return c.kind
}

// Pos returns the index of this node's start event.
func (c Completed) Pos() int {
	return c.pos
}

// Precede opens a new node that will become the parent of this one, even
// though its start event comes after this node's in the log.
//
// This is the operation that makes deferred parents possible: see the
// package documentation.
func (c Completed) Precede() Marker {
	parent := c.log.Open()
	ev := &c.log.events[c.pos]
	if ev.Parent != NoParent {
		panic(fmt.Sprintf("syntree/event: node at %d preceded twice", c.pos))
	}
	ev.Parent = parent.pos
	parent.child = c.pos
	return parent
}
