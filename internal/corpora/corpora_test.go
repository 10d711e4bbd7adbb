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

package corpora_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntree/internal/corpora"
)

func TestDiff(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	assert.Empty(corpora.Diff("a\nb\n", "a\nb\n"))

	diff := corpora.Diff("a\nc\n", "a\nb\n")
	assert.Contains(diff, "--- want")
	assert.Contains(diff, "+++ got")
	assert.Contains(diff, "-b")
	assert.Contains(diff, "+c")
}
