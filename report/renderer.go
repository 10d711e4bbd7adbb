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
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/bufbuild/syntree/source"
)

// Renderer configures a diagnostic rendering operation.
type Renderer struct {
	// If set, remark diagnostics will be printed. Ordinarily, these are
	// dropped.
	ShowRemarks bool

	// If set, debugging messages and provenance will be printed.
	ShowDebug bool
}

// Render renders a diagnostic report.
//
// Returns the number of errors and warnings that were rendered, along with
// any error encountered while writing to out.
func (r Renderer) Render(report *Report, out io.Writer) (errorCount, warningCount int, err error) {
	var buf bytes.Buffer
	for i := range report.Diagnostics {
		d := &report.Diagnostics[i]
		switch d.level {
		case Error, ICE:
			errorCount++
		case Warning:
			warningCount++
		case Remark:
			if !r.ShowRemarks {
				continue
			}
		}

		r.diagnostic(&buf, d)
		buf.WriteByte('\n')
	}

	if errorCount > 0 || warningCount > 0 {
		buf.WriteString("encountered ")
		writeCount(&buf, errorCount, "error")
		if errorCount > 0 && warningCount > 0 {
			buf.WriteString(" and ")
		}
		writeCount(&buf, warningCount, "warning")
		buf.WriteByte('\n')
	}

	_, err = buf.WriteTo(out)
	return errorCount, warningCount, err
}

// RenderString is a helper for calling [Renderer.Render] with a
// [strings.Builder].
func (r Renderer) RenderString(report *Report) (text string, errorCount, warningCount int) {
	var buf strings.Builder
	errorCount, warningCount, _ = r.Render(report, &buf)
	return buf.String(), errorCount, warningCount
}

func writeCount(buf *bytes.Buffer, n int, what string) {
	switch n {
	case 0:
	case 1:
		fmt.Fprintf(buf, "1 %s", what)
	default:
		fmt.Fprintf(buf, "%d %ss", n, what)
	}
}

// diagnostic renders a single diagnostic:
//
//	error: message
//	 --> path:line:col
//	  |
//	1 | source line
//	  |     ^^^ annotation
//	  = note: ...
func (r Renderer) diagnostic(buf *bytes.Buffer, d *Diagnostic) {
	fmt.Fprintf(buf, "%s: %s\n", d.level, d.message)

	// The gutter is as wide as the largest line number we will print.
	width := 1
	for _, a := range d.annotations {
		width = max(width, len(strconv.Itoa(a.StartLoc(source.Runes).Line)))
	}
	pad := strings.Repeat(" ", width)

	if len(d.annotations) == 0 {
		if d.inFile != "" {
			fmt.Fprintf(buf, "%s--> %s\n", pad, d.inFile)
		}
	} else {
		primary := d.annotations[0]
		start := primary.StartLoc(source.Runes)
		fmt.Fprintf(buf, "%s--> %s:%d:%d\n", pad, primary.Path(), start.Line, start.Column)
		fmt.Fprintf(buf, "%s |\n", pad)
		for _, a := range d.annotations {
			r.snippet(buf, a, width)
		}
	}

	for _, note := range d.notes {
		fmt.Fprintf(buf, "%s = note: %s\n", pad, note)
	}
	for _, help := range d.help {
		fmt.Fprintf(buf, "%s = help: %s\n", pad, help)
	}
	if r.ShowDebug {
		for _, debug := range d.debug {
			fmt.Fprintf(buf, "%s = debug: %s\n", pad, debug)
		}
		if !d.provenance.IsZero() {
			fmt.Fprintf(buf, "%s = reported at: %s\n", pad, d.provenance)
		}
	}
}

// snippet renders the first line of an annotation's span, underlined.
func (r Renderer) snippet(buf *bytes.Buffer, a annotation, width int) {
	start := a.StartLoc(source.Runes)
	lineStart, _ := a.LineOffsets(start.Line)
	text := a.Line(start.Line)

	// Clip the span to the first line, and measure it in terminal cells so
	// the underline lines up with what the user sees.
	end := min(a.End, lineStart+len(text))
	indent := uniseg.StringWidth(text[:a.Start-lineStart])
	length := max(1, uniseg.StringWidth(text[a.Start-lineStart:max(end, a.Start)-lineStart]))

	mark := "-"
	if a.primary {
		mark = "^"
	}

	fmt.Fprintf(buf, "%*d | %s\n", width, start.Line, text)
	fmt.Fprintf(buf, "%s | %s%s", strings.Repeat(" ", width), strings.Repeat(" ", indent), strings.Repeat(mark, length))
	if a.message != "" {
		fmt.Fprintf(buf, " %s", a.message)
	}
	buf.WriteByte('\n')
}
