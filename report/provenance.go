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
	"path/filepath"
	"runtime"

	"github.com/petermattis/goid"
)

// Provenance records which code reported a diagnostic: the reporting
// function's call site and the goroutine it ran on.
//
// Provenance is for debugging the tools that produce diagnostics, not the
// input they are about.
type Provenance struct {
	Function string
	File     string
	Line     int

	// The ID of the goroutine that reported the diagnostic. Zero if unknown.
	Goroutine int64
}

// Here returns the provenance of the function that called it, skipping skip
// additional frames: Here(0) names the function that called Here, and
// Here(1) names that function's caller.
func Here(skip int) Provenance {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Provenance{Goroutine: goid.Get()}
	}

	p := Provenance{
		File:      file,
		Line:      line,
		Goroutine: goid.Get(),
	}
	if fn := runtime.FuncForPC(pc); fn != nil {
		p.Function = fn.Name()
	}
	return p
}

// IsZero returns whether this provenance is empty.
func (p Provenance) IsZero() bool {
	return p == Provenance{}
}

// String implements [fmt.Stringer].
func (p Provenance) String() string {
	if p.IsZero() {
		return "<unknown>"
	}

	loc := fmt.Sprintf("%s:%d", filepath.Base(p.File), p.Line)
	if p.Function != "" {
		loc += " (" + p.Function + ")"
	}
	if p.Goroutine != 0 {
		loc += fmt.Sprintf(" [goroutine %d]", p.Goroutine)
	}
	return loc
}
