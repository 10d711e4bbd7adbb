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

package arena_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntree/internal/arena"
)

type record struct {
	kind  uint16
	width uint32
}

func TestStable(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[record]
	first := a.NewCompressed(record{kind: 1, width: 10})
	addr := first.In(&a)

	// Growing across several chunks never moves a value.
	ptrs := []arena.Pointer[record]{first}
	for i := range 100 {
		ptrs = append(ptrs, a.NewCompressed(record{kind: uint16(i + 2), width: uint32(i)}))
	}
	assert.Equal(101, a.Len())
	assert.Same(addr, a.Deref(first))

	for i, p := range ptrs {
		assert.Equal(arena.Pointer[record](i+1), p)
		assert.Equal(uint16(i+1), a.Deref(p).kind)
	}

	// Writes through a dereferenced pointer are visible later.
	a.Deref(ptrs[50]).width = 999
	assert.Equal(uint32(999), ptrs[50].In(&a).width)
}

func TestCompressRoundTrip(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[record]
	for i := range 40 {
		v := a.New(record{width: uint32(i)})
		assert.Equal(arena.Pointer[record](i+1), a.Compress(v))
	}

	assert.True(a.Compress(nil).Nil())
	assert.True(a.Compress(&record{}).Nil())

	var other arena.Arena[record]
	assert.True(other.Compress(a.Deref(1)).Nil())
}

func TestChunks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n      int
		chunks int
	}{
		{0, 0},
		{1, 1},
		{16, 1},
		{17, 2},
		{48, 2},
		{49, 3},
		{112, 3},
		{113, 4},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			t.Parallel()
			var a arena.Arena[int]
			for i := range tt.n {
				a.New(i)
			}
			assert.Equal(t, tt.n, a.Len())
			assert.Equal(t, max(0, tt.chunks-1), strings.Count(a.String(), "|"))
		})
	}
}

func TestInvalid(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var a arena.Arena[string]
	assert.Equal("[]", a.String())
	assert.Panics(func() { a.Deref(1) })

	a.New("a")
	a.New("b")
	assert.Equal("[a b]", a.String())
	assert.PanicsWithValue("syntree/arena: dereferenced nil pointer", func() { a.Deref(0) })
	assert.PanicsWithValue("syntree/arena: pointer out of range: 0x3", func() { a.Deref(3) })
}
