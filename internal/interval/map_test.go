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

package interval_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntree/internal/interval"
)

func TestInsert(t *testing.T) {
	t.Parallel()

	type r struct {
		start, end int
		value      string
	}

	tests := []struct {
		name   string
		ranges []r
		want   string // If not "", the value of the overlap for the last range.
	}{
		{name: "empty-map", ranges: []r{{0, 10, "foo"}}},
		{name: "new-max", ranges: []r{{0, 10, "foo"}, {30, 40, "bar"}}},
		{name: "new-min", ranges: []r{{30, 40, "bar"}, {0, 10, "foo"}}},
		{name: "between", ranges: []r{{0, 10, "foo"}, {30, 40, "bar"}, {10, 30, "baz"}}},
		{name: "empty", ranges: []r{{0, 10, "foo"}, {5, 5, "baz"}}},
		{name: "subset", ranges: []r{{0, 10, "foo"}, {1, 3, "baz"}}, want: "foo"},
		{name: "superset", ranges: []r{{5, 10, "foo"}, {0, 20, "baz"}}, want: "foo"},
		{name: "left", ranges: []r{{5, 10, "foo"}, {0, 6, "baz"}}, want: "foo"},
		{name: "right", ranges: []r{{5, 10, "foo"}, {9, 12, "baz"}}, want: "foo"},
		{name: "least", ranges: []r{{5, 10, "foo"}, {20, 30, "bar"}, {0, 25, "baz"}}, want: "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var m interval.Map[int, string]
			for i, r := range tt.ranges {
				overlap, ok := m.Insert(r.start, r.end, r.value)
				if i < len(tt.ranges)-1 || tt.want == "" {
					assert.True(t, ok, "%v", overlap)
					continue
				}
				assert.False(t, ok)
				assert.Equal(t, tt.want, overlap.Value)
			}
		})
	}
}

func TestGet(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var m interval.Map[int32, int]
	m.Insert(0, 3, 1)
	m.Insert(3, 4, 2)
	m.Insert(6, 8, 3)
	assert.Equal(3, m.Len())

	for point, want := range map[int32]int{0: 1, 2: 1, 3: 2, 6: 3, 7: 3} {
		got, ok := m.Get(point)
		if assert.True(ok, "%d", point) {
			assert.Equal(want, got.Value, "%d", point)
			assert.True(got.Contains(point))
		}
	}
	for _, point := range []int32{-1, 4, 5, 8, 100} {
		_, ok := m.Get(point)
		assert.False(ok, "%d", point)
	}

	assert.Equal("{[0, 3): 1, [3, 4): 2, [6, 8): 3}", fmt.Sprintf("%v", &m))
	assert.Panics(func() { m.Insert(5, 4, 0) })
}
