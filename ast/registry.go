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
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/syntree/event"
	"github.com/bufbuild/syntree/id"
	"github.com/bufbuild/syntree/source"
)

// Input is a file to build a tree for, and the event log for it.
type Input struct {
	File *source.File
	Log  *event.Log
}

// Registry owns a set of trees, assigns them IDs, and resolves handles to
// their elements.
//
// A Registry is safe to use from multiple goroutines.
type Registry struct {
	opts Options
	sema *semaphore.Weighted

	mu    sync.RWMutex
	trees []*Tree // Indexed by tree ID. Nil for builds that failed.
}

// NewRegistry returns a new registry. Every tree it builds uses opts, except
// for the ID, which the registry assigns.
//
// parallelism bounds how many trees [Registry.BuildAll] builds at once;
// zero or negative means GOMAXPROCS.
func NewRegistry(opts Options, parallelism int) *Registry {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	return &Registry{
		opts: opts,
		sema: semaphore.NewWeighted(int64(parallelism)),
	}
}

// NewRegistryFromConfig is like [NewRegistry], but takes its settings from
// a [Config].
func NewRegistryFromConfig(c Config) *Registry {
	return NewRegistry(c.Options(0), c.Parallelism)
}

// Build builds a single tree and registers it.
func (r *Registry) Build(file *source.File, log *event.Log) (*Tree, error) {
	trees, err := r.BuildAll(context.Background(), Input{File: file, Log: log})
	return trees[0], err
}

// BuildAll builds a tree for each input, in parallel, and registers them.
// Trees get consecutive IDs in the order of inputs.
//
// The returned slice has one entry per input; builds that fail leave a nil
// entry, and their errors are joined into the returned error. If ctx is
// cancelled, inputs that have not started building are skipped, and the
// error includes ctx's.
func (r *Registry) BuildAll(ctx context.Context, inputs ...Input) ([]*Tree, error) {
	base, err := r.reserve(len(inputs))
	if err != nil {
		return make([]*Tree, len(inputs)), err
	}

	trees := make([]*Tree, len(inputs))
	errs := make([]error, len(inputs))

	var wg sync.WaitGroup
	for i, in := range inputs {
		if err := r.sema.Acquire(ctx, 1); err != nil {
			errs[i] = fmt.Errorf("ast: building %q: %w", in.File.Path(), err)
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer r.sema.Release(1)

			opts := r.opts
			opts.ID = base + int32(i)
			trees[i], errs[i] = Build(in.File, in.Log, opts)
		}()
	}
	wg.Wait()

	r.mu.Lock()
	copy(r.trees[base:], trees)
	r.mu.Unlock()

	return trees, errors.Join(errs...)
}

// reserve allocates n consecutive tree IDs.
func (r *Registry) reserve(n int) (int32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	base := len(r.trees)
	if base+n > math.MaxInt32 {
		return 0, errors.New("ast: out of tree IDs")
	}
	r.trees = append(r.trees, make([]*Tree, n)...)
	return int32(base), nil
}

// Len returns the number of tree IDs this registry has assigned.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.trees)
}

// Tree returns the tree with the given ID, or nil if there is none.
func (r *Registry) Tree(tree int32) *Tree {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if tree < 0 || int(tree) >= len(r.trees) {
		return nil
	}
	return r.trees[tree]
}

// Resolve returns the element a handle refers to, or nil if it does not
// refer to an element of any tree in this registry.
func (r *Registry) Resolve(h id.Handle) *Element {
	if h.IsEmpty() {
		return nil
	}
	return r.Tree(h.Tree).Element(int(h.Index))
}
