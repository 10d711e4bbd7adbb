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

import (
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Unit is a unit of measurement for column numbers.
type Unit int

const (
	Bytes     Unit = iota // Columns count bytes.
	Runes                 // Columns count Unicode code points.
	UTF16                 // Columns count UTF-16 code units, as LSP expects.
	TermWidth             // Columns count terminal cells.
)

// File is a source code file that a syntax tree was built from.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path name "".
type File struct {
	path, text string

	once sync.Once
	// Byte offset of the start of each line. lines[0] is always zero; the
	// line containing offset n is the greatest i with lines[i] <= n.
	lines []int
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path.
//
// It doesn't need to be a real filesystem path; it is only used for display.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Len returns the length of this file, in bytes.
func (f *File) Len() int {
	return len(f.Text())
}

// Span is a shorthand for creating a new [Span].
//
// The offsets are clamped to the bounds of the file.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	n := len(f.text)
	start = min(max(start, 0), n)
	end = min(max(end, start), n)
	return Span{File: f, Start: start, End: end}
}

// EOF returns a zero-width span at the end of the file's meaningful content:
// immediately after the last non-whitespace character.
func (f *File) EOF() Span {
	if f == nil {
		return Span{}
	}

	eof := strings.LastIndexFunc(f.text, func(r rune) bool {
		return !unicode.In(r, unicode.Pattern_White_Space)
	})
	if eof == -1 {
		return f.Span(0, 0) // The whole file is whitespace.
	}

	// Step over the last rune, which may be more than one byte long.
	_, size := utf8.DecodeRuneInString(f.text[eof:])
	eof += size
	return f.Span(eof, eof)
}

// LineCount returns the number of lines in this file. A file always has at
// least one line, even if it is empty.
func (f *File) LineCount() int {
	return len(f.lineIndex())
}

// Line returns the given 1-indexed line, without its trailing newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return strings.TrimSuffix(f.Text()[start:end], "\n")
}

// LineOffsets returns the byte offsets of the given 1-indexed line, including
// its trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lineIndex()
	if line < 1 || line > len(lines) {
		return 0, 0
	}
	if line == len(lines) {
		return lines[line-1], len(f.Text())
	}
	return lines[line-1], lines[line]
}

// Location converts a byte offset into a user-displayable location, measuring
// the column in the given units.
//
// This operation is O(log n) in the number of lines.
func (f *File) Location(offset int, units Unit) Location {
	if f == nil || offset <= 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}
	offset = min(offset, len(f.text))

	lines := f.lineIndex()
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	chunk := f.text[lines[line]:offset]
	var column int
	switch units {
	case Bytes:
		column = len(chunk)
	case Runes:
		for range chunk {
			column++
		}
	case UTF16:
		for _, r := range chunk {
			column += utf16.RuneLen(r)
		}
	case TermWidth:
		column = uniseg.StringWidth(chunk)
	}

	return Location{Offset: offset, Line: line + 1, Column: column + 1}
}

func (f *File) lineIndex() []int {
	if f == nil {
		return []int{0}
	}

	f.once.Do(func() {
		f.lines = append(f.lines, 0)
		for i := 0; i < len(f.text); i++ {
			if f.text[i] == '\n' {
				f.lines = append(f.lines, i+1)
			}
		}
	})
	return f.lines
}
