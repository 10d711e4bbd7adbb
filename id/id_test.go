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

package id_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/syntree/id"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []id.Handle{
		id.Empty,
		id.New(0, 0),
		id.New(0, 1),
		id.New(1, 0),
		id.New(7, 42),
		id.New(-1, -1),
		id.New(-5, 3),
		id.New(3, -5),
		id.New(math.MaxInt32, math.MaxInt32),
		id.New(math.MinInt32, math.MinInt32),
	}

	for _, h := range tests {
		t.Run(h.GoString(), func(t *testing.T) {
			t.Parallel()

			got, err := id.Parse(h.String())
			require.NoError(t, err)
			assert.Equal(t, h, got)
			assert.Equal(t, h, id.FromInt64(h.Int64()))
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Equal("-4294967296", id.Empty.String())
	assert.Equal("4294967301", id.New(1, 5).String())
	assert.Equal("5", id.New(0, 5).String())
	assert.True(id.Empty.IsEmpty())
	assert.False(id.New(0, 0).IsEmpty())
	assert.Equal("id.Empty", id.Empty.GoString())
}

func TestParseError(t *testing.T) {
	t.Parallel()

	_, err := id.Parse("not a handle")
	require.Error(t, err)
	_, err = id.Parse("99999999999999999999")
	require.Error(t, err)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Node id.Handle `json:"node"`
	}

	data, err := json.Marshal(payload{Node: id.New(2, 9)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"node":"8589934601"}`, string(data))

	var back payload
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, id.New(2, 9), back.Node)
}
