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

package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/bufbuild/syntree/internal/logging"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"DEBUG", log.DebugLevel},
		{"", log.InfoLevel},
		{"nonsense", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logging.New(tt.level).GetLevel())
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	_, err := logging.ParseLevel("loud")
	assert.ErrorContains(t, err, `unknown log level "loud"`)

	lvl, err := logging.ParseLevel("Warning")
	assert.NoError(t, err)
	assert.Equal(t, log.WarnLevel, lvl)
}

func TestContext(t *testing.T) {
	t.Parallel()
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := logging.NewWriter(&buf, "debug")

	//nolint:staticcheck // Testing nil handling.
	assert.Same(logging.Default(), logging.FromContext(nil))
	assert.Same(logging.Default(), logging.FromContext(context.Background()))

	ctx := logging.WithLogger(context.Background(), logger)
	assert.Same(logger, logging.FromContext(ctx))

	logging.FromContext(ctx).Debug("built", logging.FieldEntries, 3)
	assert.Contains(buf.String(), "built")
	assert.Contains(buf.String(), "entries=3")
}
