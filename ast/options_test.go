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

package ast_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntree/ast"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, yaml string
		want       ast.Config
		err        string
	}{
		{
			name: "full",
			yaml: "permissive: true\nlog-level: debug\nparallelism: 4\n",
			want: ast.Config{Permissive: true, LogLevel: "debug", Parallelism: 4},
		},
		{
			name: "partial",
			yaml: "log-level: WARNING\n",
			want: ast.Config{LogLevel: "WARNING"},
		},
		{name: "empty", err: "empty config"},
		{name: "unknown", yaml: "strict: true\n", err: "field strict not found"},
		{name: "level", yaml: "log-level: loud\n", err: `unknown log level "loud"`},
		{name: "type", yaml: "parallelism: many\n", err: "invalid config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, err := ast.LoadConfig(strings.NewReader(tt.yaml))
			if tt.err != "" {
				assert.ErrorContains(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, c)
		})
	}
}

func TestConfigOptions(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	c, err := ast.ParseConfig([]byte("permissive: true\nlog-level: error\n"))
	assert.NoError(err)

	opts := c.Options(5)
	assert.Equal(int32(5), opts.ID)
	assert.True(opts.Permissive)
	if assert.NotNil(opts.Logger) {
		assert.Equal(log.ErrorLevel, opts.Logger.GetLevel())
	}
}
