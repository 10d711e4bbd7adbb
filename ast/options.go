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

package ast

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/syntree/internal/logging"
)

// Options configures how a [Tree] is built.
type Options struct {
	// The ID of the tree being built, which appears in the handles of its
	// elements.
	ID int32

	// If set, node kinds with no corresponding [Variant] become
	// [VariantPlaceholder] elements and are logged, instead of failing the
	// build.
	Permissive bool

	// The logger to log through. If nil, uses the logging package's default.
	Logger *log.Logger
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logging.Default()
}

// Config is the file form of [Options], plus settings for a [Registry].
type Config struct {
	Permissive bool `yaml:"permissive"`
	// One of debug, info, warn, or error.
	LogLevel string `yaml:"log-level"`
	// The maximum number of trees [Registry.BuildAll] builds at once. Zero
	// or negative means GOMAXPROCS.
	Parallelism int `yaml:"parallelism"`
}

// LoadConfig reads a [Config] from YAML. Unknown fields are an error, as is
// an empty document.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return c, errors.New("ast: empty config")
		}
		return c, fmt.Errorf("ast: invalid config: %w", err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return c, fmt.Errorf("ast: invalid config: %w", err)
	}
	return c, nil
}

// ParseConfig is like [LoadConfig], but reads from a byte slice.
func ParseConfig(data []byte) (Config, error) {
	return LoadConfig(bytes.NewReader(data))
}

// Options returns the [Options] described by this config, for a tree with the
// given ID. The logger writes to stderr.
func (c Config) Options(id int32) Options {
	return Options{
		ID:         id,
		Permissive: c.Permissive,
		Logger:     logging.New(c.LogLevel),
	}
}
