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
	"cmp"
	"fmt"
	"os"
	"runtime"
	"slices"
)

// defaultTracing is the number of frames captured per diagnostic when
// SYNTREE_DEBUG is set.
const defaultTracing = 16

var debugMode = os.Getenv("SYNTREE_DEBUG") != ""

// Diagnose is an error that can be rendered as a diagnostic.
type Diagnose interface {
	error

	// Diagnose writes out this error to the given diagnostic.
	//
	// This function should not set the level; that is set by the diagnostics
	// framework.
	Diagnose(*Diagnostic)
}

// Report is a collection of diagnostics.
//
// A zero Report is empty and ready to use.
type Report struct {
	Diagnostics []Diagnostic

	// Tracing, if positive, captures up to this many stack frames for every
	// diagnostic pushed onto this report.
	Tracing int
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	d := r.push(1, Error, "")
	err.Diagnose(d)
	return d
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	d := r.push(1, Warning, "")
	err.Diagnose(d)
	return d
}

// Errorf creates a new error diagnostic with the given message.
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.push(1, Error, fmt.Sprintf(format, args...))
}

// Warnf creates a new warning diagnostic with the given message.
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.push(1, Warning, fmt.Sprintf(format, args...))
}

// Remarkf creates a new remark diagnostic with the given message.
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.push(1, Remark, fmt.Sprintf(format, args...))
}

// Push appends already-constructed diagnostics to this report.
func (r *Report) Push(diagnostics ...Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, diagnostics...)
}

// Len returns the number of diagnostics in this report.
func (r *Report) Len() int {
	return len(r.Diagnostics)
}

// Count returns the number of diagnostics at the given level.
func (r *Report) Count(level Level) int {
	var n int
	for i := range r.Diagnostics {
		if r.Diagnostics[i].level == level {
			n++
		}
	}
	return n
}

// HasErrors returns whether this report contains any errors or internal
// errors.
func (r *Report) HasErrors() bool {
	return r.Count(Error)+r.Count(ICE) > 0
}

// Sort sorts this report's diagnostics by file, then primary span, then
// level. Diagnostics without a span sort first within their file. The sort is
// stable, so diagnostics that compare equal keep their reporting order.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		pa, pb := a.Primary(), b.Primary()
		return cmp.Or(
			cmp.Compare(a.InFile(), b.InFile()),
			cmp.Compare(pa.Start, pb.Start),
			cmp.Compare(pa.End, pb.End),
			cmp.Compare(a.level, b.level),
		)
	})
}

// Clone returns a copy of this report that shares no slice storage with it,
// including the slices inside each diagnostic.
func (r *Report) Clone() Report {
	diagnostics := make([]Diagnostic, len(r.Diagnostics))
	for i := range r.Diagnostics {
		diagnostics[i] = r.Diagnostics[i].clone()
	}
	if r.Diagnostics == nil {
		diagnostics = nil
	}
	return Report{
		Diagnostics: diagnostics,
		Tracing:     r.Tracing,
	}
}

// push is the core "make me a diagnostic" function.
func (r *Report) push(skip int, level Level, msg string) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{
		level:      level,
		message:    msg,
		provenance: Here(skip + 1),
	})
	d := &r.Diagnostics[len(r.Diagnostics)-1]

	tracing := r.Tracing
	if tracing <= 0 && debugMode {
		tracing = defaultTracing
	}
	if tracing > 0 {
		pc := make([]uintptr, tracing)
		pc = pc[:runtime.Callers(skip+2, pc)]

		frames := runtime.CallersFrames(pc)
		for {
			next, more := frames.Next()
			if next != (runtime.Frame{}) {
				d.trace = append(d.trace, next)
			}
			if !more {
				break
			}
		}
	}
	return d
}
