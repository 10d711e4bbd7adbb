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

// Package arena defines an append-only Arena type with compressed pointers.
//
// The structural syntax tree is allocated out of an Arena: every node and
// token lives in one arena owned by a single build, and refers to its
// children through 32-bit [Pointer]s rather than Go pointers.
package arena

import (
	"fmt"
	"math/bits"
	"strings"
)

// minChunkShift is the log2 of the length of the first chunk in an Arena.
const (
	minChunkShift = 4
	minChunkLen   = 1 << minChunkShift
)

// Pointer is a compressed pointer into an [Arena][T].
//
// The value of a pointer is one plus the number of values allocated before
// it; the zero value is nil.
type Pointer[T any] uint32

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// In dereferences this pointer in the given arena, as if by [Arena.Deref].
func (p Pointer[T]) In(a *Arena[T]) *T {
	return a.Deref(p)
}

// Arena is a growable slice of T whose elements never move once allocated.
//
// Storage is a table of chunks whose lengths double: chunk n holds
// minChunkLen << n values. This keeps lookup O(1) without ever copying
// values, so a *T returned by [Arena.Deref] stays valid for the lifetime of
// the arena.
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(chunks[n]) == minChunkLen << n.
	// 2. Every chunk but the last is full.
	chunks [][]T
}

// New allocates a value on the arena and returns a pointer to it.
func (a *Arena[T]) New(value T) *T {
	return a.Deref(a.NewCompressed(value))
}

// NewCompressed allocates a value on the arena and returns a compressed
// pointer to it.
func (a *Arena[T]) NewCompressed(value T) Pointer[T] {
	if a.chunks == nil {
		a.chunks = [][]T{make([]T, 0, minChunkLen)}
	}

	last := &a.chunks[len(a.chunks)-1]
	if len(*last) == cap(*last) {
		a.chunks = append(a.chunks, make([]T, 0, 2*cap(*last)))
		last = &a.chunks[len(a.chunks)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// Deref dereferences a compressed pointer.
//
// p must have been allocated by this arena. Panics if p is nil or out of
// range.
func (a *Arena[T]) Deref(p Pointer[T]) *T {
	if p.Nil() {
		panic("syntree/arena: dereferenced nil pointer")
	}
	chunk, idx := a.locate(int(p) - 1)
	return &a.chunks[chunk][idx]
}

// Compress converts a *T obtained from this arena back into a compressed
// pointer. Returns nil if ptr was not allocated by this arena.
func (a *Arena[T]) Compress(ptr *T) Pointer[T] {
	if ptr == nil {
		return 0
	}
	base := 0
	for _, chunk := range a.chunks {
		for i := range chunk {
			if &chunk[i] == ptr {
				return Pointer[T](base + i + 1)
			}
		}
		base += len(chunk)
	}
	return 0
}

// Len returns the number of values allocated in this arena.
func (a *Arena[T]) Len() int {
	if len(a.chunks) == 0 {
		return 0
	}
	n := len(a.chunks) - 1
	return a.prefixLen(n) + len(a.chunks[n])
}

// String implements [fmt.Stringer]. Chunk boundaries are shown with a |.
func (a *Arena[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, chunk := range a.chunks {
		if i != 0 {
			b.WriteByte('|')
		}
		for j, v := range chunk {
			if j != 0 {
				b.WriteByte(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteByte(']')
	return b.String()
}

// prefixLen returns the total capacity of the first n chunks.
func (*Arena[T]) prefixLen(n int) int {
	// minChunkLen * (1 + 2 + ... + 2^(n-1)) == minChunkLen * (2^n - 1).
	return (minChunkLen << n) - minChunkLen
}

// locate converts a zero-based index into (chunk, offset) coordinates,
// bounds-checking it along the way.
func (a *Arena[T]) locate(idx int) (int, int) {
	if idx < 0 || idx >= a.Len() {
		panic(fmt.Sprintf("syntree/arena: pointer out of range: %#x", idx+1))
	}

	// Chunk n starts at minChunkLen * (2^n - 1). Adding minChunkLen turns
	// that into minChunkLen * 2^n, whose high bit identifies n.
	chunk := bits.Len(uint(idx+minChunkLen)) - (minChunkShift + 1)
	return chunk, idx - a.prefixLen(chunk)
}
