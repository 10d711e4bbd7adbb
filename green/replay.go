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
	"slices"

	"github.com/bufbuild/syntree/event"
	"github.com/bufbuild/syntree/report"
	"github.com/bufbuild/syntree/source"
	"github.com/bufbuild/syntree/syntax"
)

// Result is the output of [Replay].
type Result struct {
	// The root of the structural tree.
	Root Element
	// The number of elements in the tree, including the root.
	Count int
	// Syntax errors recorded in the log.
	Report report.Report
}

// Replay builds a structural tree from an event log.
//
// file is the source the log's token ranges refer to; it is used to anchor
// error events. Each error is anchored at the closest token event before it,
// or at the end of file if no token precedes it.
//
// The log is not modified.
func Replay(log *event.Log, file *source.File) Result {
	r := replayer{
		events: log.Events(),
		file:   file,
		last:   -1,
	}
	r.run()

	root, count := r.builder.Finish()
	return Result{Root: root, Count: count, Report: r.report}
}

type replayer struct {
	events  []event.Event
	file    *source.File
	builder Builder
	report  report.Report

	// Index of the most recent token event, or -1.
	last int
	// Kinds of the nodes to open for the current start event, leaf first.
	opening []syntax.Kind
}

func (r *replayer) run() {
	for i := range r.events {
		ev := &r.events[i]
		switch ev.Kind {
		case event.Start:
			r.start(i)
		case event.Finish:
			r.builder.FinishNode()
		case event.Token:
			r.last = i
			r.builder.Token(ev.Token, ev.End-ev.Start)
		case event.Remap:
			r.builder.Remap(ev.Token, ev.To)
		case event.Error:
			r.error(ev)
		}
	}

	// Close the whole-file node, if the log left it open.
	r.builder.FinishNode()
}

// start opens the node for the start event at idx, after first opening any
// of its deferred ancestors that are not open yet.
func (r *replayer) start(idx int) {
	ev := &r.events[idx]
	if ev.Node == syntax.None {
		// Abandoned, or already opened as someone's ancestor.
		return
	}

	r.opening = append(r.opening[:0], ev.Node)
	ev.Node = syntax.None
	for parent := ev.Parent; parent != event.NoParent; {
		ancestor := &r.events[parent]
		if ancestor.Node == syntax.None {
			break
		}
		r.opening = append(r.opening, ancestor.Node)
		ancestor.Node = syntax.None
		parent = ancestor.Parent
	}

	for _, kind := range slices.Backward(r.opening) {
		r.builder.StartNode(kind)
	}
}

func (r *replayer) error(ev *event.Event) {
	span := r.file.EOF()
	if r.last >= 0 {
		tok := r.events[r.last]
		span = r.file.Span(tok.Start, tok.End)
	}

	r.report.Errorf("%s", ev.Message).Apply(
		report.Snippet(span),
		report.From(ev.Provenance),
	)
}
