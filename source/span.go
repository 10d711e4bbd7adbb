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

package source

import "fmt"

// Spanner is any type with a [Span].
type Spanner interface {
	// Span returns the zero Span to indicate that it does not contribute
	// span information.
	Span() Span
}

// Span is a range of bytes within a [File].
type Span struct {
	*File

	// The start and end byte offsets for this span; End is exclusive.
	Start, End int
}

// Location is a user-displayable location within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed. Because these are
	// 1-indexed, a zero Line can be used as a sentinel.
	Line, Column int
}

// IsZero returns whether this is the zero span.
func (s Span) IsZero() bool {
	return s.File == nil
}

// Text returns the text this span covers.
func (s Span) Text() string {
	if s.IsZero() {
		return ""
	}
	return s.File.Text()[s.Start:s.End]
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains returns whether offset falls within this span. A zero-width span
// contains its own start.
func (s Span) Contains(offset int) bool {
	if s.Start == s.End {
		return offset == s.Start
	}
	return s.Start <= offset && offset < s.End
}

// StartLoc returns the location of the start of this span.
func (s Span) StartLoc(units Unit) Location {
	return s.File.Location(s.Start, units)
}

// EndLoc returns the location of the end of this span.
func (s Span) EndLoc(units Unit) Location {
	return s.File.Location(s.End, units)
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	if s.IsZero() {
		return "<nil>"
	}
	start := s.StartLoc(Runes)
	return fmt.Sprintf("%s:%d:%d[%d:%d]", s.Path(), start.Line, start.Column, s.Start, s.End)
}

// Join returns the smallest span containing every non-zero span in spans,
// all of which must be in the same file. Returns the zero span if there are
// none.
func Join(spans ...Spanner) Span {
	var out Span
	for _, s := range spans {
		if s == nil {
			continue
		}
		span := s.Span()
		if span.IsZero() {
			continue
		}
		if out.IsZero() {
			out = span
			continue
		}
		if out.File != span.File {
			panic(fmt.Sprintf("syntree/source: joined spans from different files: %q vs %q", out.Path(), span.Path()))
		}
		out.Start = min(out.Start, span.Start)
		out.End = max(out.End, span.End)
	}
	return out
}
