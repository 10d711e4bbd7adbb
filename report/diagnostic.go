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

package report

import (
	"fmt"
	"runtime"
	"slices"

	"github.com/bufbuild/syntree/id"
	"github.com/bufbuild/syntree/source"
)

// Level represents the severity of a diagnostic message.
type Level int8

const (
	// Internal error. Indicates a bug in the tool, not the input.
	ICE Level = 1 + iota
	// Red. Indicates the input is not well-formed.
	Error
	// Yellow. Indicates something that probably should not be ignored.
	Warning
	// Cyan. This is the diagnostics version of "info".
	Remark
)

// String implements [fmt.Stringer].
func (l Level) String() string {
	switch l {
	case ICE:
		return "internal error"
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Remark:
		return "remark"
	default:
		return fmt.Sprintf("report.Level(%d)", int(l))
	}
}

// Tag is a machine-readable identification for a diagnostic.
//
// Tags should be lowercase identifiers separated by dashes, e.g. my-error-tag.
type Tag string

// Apply implements [DiagnosticOption].
func (t Tag) Apply(d *Diagnostic) {
	if d.tag != "" {
		panic("syntree/report: set diagnostic tag more than once")
	}
	d.tag = t
}

// Diagnostic is a single message about the input, with enough metadata to
// render it for a user or hand it to a tool.
//
// To construct a diagnostic, use a function like [Report.Errorf] and then
// call [Diagnostic.Apply] to add spans, notes, and so on.
type Diagnostic struct {
	tag     Tag
	message string
	level   Level

	// The file this diagnostic occurs in, if it has no annotations.
	inFile string

	annotations        []annotation
	notes, help, debug []string

	provenance Provenance
	trace      []runtime.Frame
}

// clone returns a copy of d that shares no slice storage with it.
func (d *Diagnostic) clone() Diagnostic {
	c := *d
	c.annotations = slices.Clone(d.annotations)
	c.notes = slices.Clone(d.notes)
	c.help = slices.Clone(d.help)
	c.debug = slices.Clone(d.debug)
	c.trace = slices.Clone(d.trace)
	return c
}

// DiagnosticOption is an option that can be applied to a [Diagnostic].
//
// Nil values passed to [Diagnostic.Apply] are ignored.
type DiagnosticOption interface {
	Apply(*Diagnostic)
}

// New constructs a free-standing diagnostic, which can later be added to a
// [Report] with [Report.Push]. Its provenance is the caller of New.
func New(level Level, message string, options ...DiagnosticOption) Diagnostic {
	d := Diagnostic{
		level:      level,
		message:    message,
		provenance: Here(1),
	}
	d.Apply(options...)
	return d
}

// Apply applies the given options to this diagnostic.
func (d *Diagnostic) Apply(options ...DiagnosticOption) *Diagnostic {
	for _, option := range options {
		if option != nil {
			option.Apply(d)
		}
	}
	return d
}

// Level returns this diagnostic's level.
func (d *Diagnostic) Level() Level {
	return d.level
}

// Message returns this diagnostic's main message.
func (d *Diagnostic) Message() string {
	return d.message
}

// Tag returns this diagnostic's tag, if it has one.
func (d *Diagnostic) Tag() Tag {
	return d.tag
}

// Is checks whether this diagnostic has a particular tag.
func (d *Diagnostic) Is(tag Tag) bool {
	return d.tag == tag
}

// InFile returns the path this diagnostic is reported against, either from
// its primary span or from [InFile].
func (d *Diagnostic) InFile() string {
	if span := d.Primary(); !span.IsZero() {
		return span.Path()
	}
	return d.inFile
}

// Primary returns this diagnostic's primary span, if it has one.
//
// If it doesn't have one, it returns the zero span.
func (d *Diagnostic) Primary() source.Span {
	for _, a := range d.annotations {
		if a.primary {
			return a.Span
		}
	}
	return source.Span{}
}

// Anchor returns the handle of the tree element this diagnostic's primary
// span is anchored to, or [id.Empty] if it is not anchored to an element.
func (d *Diagnostic) Anchor() id.Handle {
	for _, a := range d.annotations {
		if a.primary {
			return a.anchor
		}
	}
	return id.Empty
}

// Notes returns this diagnostic's notes.
func (d *Diagnostic) Notes() []string { return d.notes }

// Help returns this diagnostic's help messages.
func (d *Diagnostic) Help() []string { return d.help }

// Debug returns this diagnostic's debugging messages.
func (d *Diagnostic) Debug() []string { return d.debug }

// Provenance returns the call site that reported this diagnostic.
func (d *Diagnostic) Provenance() Provenance {
	return d.provenance
}

// Trace returns the stack trace captured when this diagnostic was created.
// Empty unless tracing was enabled on the [Report].
func (d *Diagnostic) Trace() []runtime.Frame {
	return d.trace
}

// Error implements [error].
func (d *Diagnostic) Error() string {
	return d.level.String() + ": " + d.message
}

// Message returns a DiagnosticOption that sets the main diagnostic message.
func Message(format string, args ...any) DiagnosticOption {
	return message(fmt.Sprintf(format, args...))
}

// InFile is a DiagnosticOption that causes a diagnostic without a primary
// span to mention the given file.
type InFile string

// Apply implements [DiagnosticOption].
func (f InFile) Apply(d *Diagnostic) {
	d.inFile = string(f)
}

// Snippet returns a DiagnosticOption that adds a new annotated span to a
// diagnostic.
//
// Any additional arguments are passed to [fmt.Sprintf] to produce a message
// to show under the span; the first must be a string.
//
// The first snippet added is the primary one. If at also has a Handle method
// (as tree elements do), the snippet is anchored to that element.
//
// If at is nil, or has a zero span, this function returns nil.
func Snippet(at source.Spanner, args ...any) DiagnosticOption {
	if at == nil {
		return nil
	}

	span := at.Span()
	if span.IsZero() {
		return nil
	}

	a := annotation{Span: span, anchor: id.Empty}
	if h, ok := at.(interface{ Handle() id.Handle }); ok {
		a.anchor = h.Handle()
	}
	if len(args) > 0 {
		format, ok := args[0].(string)
		if !ok {
			panic("syntree/report: expected string as first Snippet argument")
		}
		a.message = fmt.Sprintf(format, args[1:]...)
	}
	return a
}

// Note returns a DiagnosticOption that provides the user with context about
// the diagnostic, after the annotations.
func Note(format string, args ...any) DiagnosticOption {
	return note(fmt.Sprintf(format, args...))
}

// Help returns a DiagnosticOption that provides the user with a helpful prose
// suggestion for resolving the diagnostic.
func Help(format string, args ...any) DiagnosticOption {
	return help(fmt.Sprintf(format, args...))
}

// Debug returns a DiagnosticOption that appends debugging information to a
// diagnostic that is not intended to be shown to normal users.
func Debug(format string, args ...any) DiagnosticOption {
	return debug(fmt.Sprintf(format, args...))
}

// From returns a DiagnosticOption that overrides the provenance of a
// diagnostic, for diagnostics that are reported on behalf of someone else
// (e.g. errors recorded in an event log and replayed later).
func From(p Provenance) DiagnosticOption {
	if p.IsZero() {
		return nil
	}
	return provenance(p)
}

// annotation is an annotated source code snippet within a [Diagnostic].
type annotation struct {
	source.Span

	// The element this annotation points at, or id.Empty.
	anchor id.Handle

	// A message to show under this snippet. May be empty.
	message string

	// Whether this is the primary snippet.
	primary bool
}

func (a annotation) Apply(d *Diagnostic) {
	a.primary = len(d.annotations) == 0
	d.annotations = append(d.annotations, a)
}

type (
	message    string
	note       string
	help       string
	debug      string
	provenance Provenance
)

func (m message) Apply(d *Diagnostic) {
	if d.message != "" {
		panic("syntree/report: set diagnostic message more than once")
	}
	d.message = string(m)
}

func (n note) Apply(d *Diagnostic)       { d.notes = append(d.notes, string(n)) }
func (n help) Apply(d *Diagnostic)       { d.help = append(d.help, string(n)) }
func (n debug) Apply(d *Diagnostic)      { d.debug = append(d.debug, string(n)) }
func (p provenance) Apply(d *Diagnostic) { d.provenance = Provenance(p) }
