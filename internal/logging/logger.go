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

// Package logging wraps charmbracelet/log with the defaults and field names
// used throughout this module.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// Field names for structured log entries.
const (
	FieldPath        = "path"
	FieldTree        = "tree"
	FieldKind        = "kind"
	FieldHandle      = "handle"
	FieldEntries     = "entries"
	FieldDiagnostics = "diagnostics"
	FieldElapsed     = "elapsed"
	FieldEvent       = "event"
	FieldOffset      = "offset"
	FieldLength      = "length"
	FieldError       = "error"
)

var defaultLogger atomic.Pointer[log.Logger]

// New creates a logger that writes to stderr at the given level.
// Unrecognized levels mean "info".
func New(level string) *log.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter is like [New], but writes to w.
func NewWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	lvl, err := ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}

// ParseLevel parses one of "debug", "info", "warn" (or "warning"), or
// "error", case-insensitively. The empty string means "info".
func ParseLevel(level string) (log.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel, nil
	case "", "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("unknown log level %q", level)
	}
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	if logger := defaultLogger.Load(); logger != nil {
		return logger
	}
	defaultLogger.CompareAndSwap(nil, New("info"))
	return defaultLogger.Load()
}

// SetDefault replaces the package-level default logger. A nil logger
// restores the initial one.
func SetDefault(logger *log.Logger) {
	defaultLogger.Store(logger)
}
