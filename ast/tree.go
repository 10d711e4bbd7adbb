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
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/bufbuild/syntree/event"
	"github.com/bufbuild/syntree/flat"
	"github.com/bufbuild/syntree/green"
	"github.com/bufbuild/syntree/id"
	"github.com/bufbuild/syntree/internal/interval"
	"github.com/bufbuild/syntree/internal/logging"
	"github.com/bufbuild/syntree/report"
	"github.com/bufbuild/syntree/source"
	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

// Tree is a built syntax tree.
//
// Elements are addressed by their index in a pre-order walk of the tree; the
// root is at index 0. Index-based accessors accept any int, and return a
// neutral value (nil, -1, or a None kind) for indices outside of [0, Len()).
type Tree struct {
	id      int32
	file    *source.File
	entries []flat.Entry
	opts    Options

	cache []atomic.Pointer[Element]

	mu     sync.Mutex
	report report.Report

	tokensOnce sync.Once
	tokens     interval.Map[int32, int32] // Token ranges to token indices.
}

// Build builds a tree by replaying log, whose token ranges refer to file.
//
// Syntax errors in the log become diagnostics on the returned tree. An error
// is returned only if the tree is not permissive and contains a node kind
// with no [Variant]; it is an [*UnhandledKindError].
//
// log must be balanced: every start event other than abandoned ones must be
// matched by a finish event, and there must be exactly one top-level node.
// Build panics otherwise.
func Build(file *source.File, log *event.Log, opts Options) (*Tree, error) {
	start := time.Now()

	result := green.Replay(log, file)
	entries := flat.Flatten(result.Root, result.Count)

	tree, err := newTree(file, entries, result.Report, opts)
	if err != nil {
		return nil, err
	}
	tree.checkCoverage(log)

	tree.logger().Debug("built tree",
		logging.FieldPath, file.Path(),
		logging.FieldTree, tree.id,
		logging.FieldEntries, len(entries),
		logging.FieldDiagnostics, len(result.Report.Diagnostics),
		logging.FieldElapsed, time.Since(start),
	)
	return tree, nil
}

// Load reconstructs a tree from a snapshot produced by [Tree.Marshal].
//
// Diagnostics are not part of a snapshot; the loaded tree has none.
func Load(file *source.File, snapshot []byte, opts Options) (*Tree, error) {
	entries, err := flat.Unmarshal(snapshot)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("ast: empty snapshot")
	}
	if end := int(entries[0].End); end > file.Len() {
		return nil, fmt.Errorf("ast: snapshot covers %d bytes, but %q is %d bytes", end, file.Path(), file.Len())
	}
	return newTree(file, entries, report.Report{}, opts)
}

// postBuild are the checks run over every tree before it is returned.
var postBuild = []func(*Tree) error{
	(*Tree).checkVariants,
}

func newTree(file *source.File, entries []flat.Entry, r report.Report, opts Options) (*Tree, error) {
	t := &Tree{
		id:      opts.ID,
		file:    file,
		entries: entries,
		opts:    opts,
		cache:   make([]atomic.Pointer[Element], len(entries)),
		report:  r,
	}
	for _, hook := range postBuild {
		if err := hook(t); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// checkVariants finds node kinds with no variant, and either fails or logs
// them, depending on whether the tree is permissive.
func (t *Tree) checkVariants() error {
	for i, e := range t.entries {
		if !e.IsNode() {
			continue
		}
		v, err := Classify(e.Kind, t.opts.Permissive)
		if err != nil {
			err.(*UnhandledKindError).Handle = t.Handle(i) //nolint:errcheck // Always this type.
			return fmt.Errorf("ast: building %q: %w", t.file.Path(), err)
		}
		if v == VariantPlaceholder {
			t.logger().Warn("placeholder element",
				logging.FieldPath, t.file.Path(),
				logging.FieldKind, e.Kind.Node(),
				logging.FieldHandle, t.Handle(i),
			)
		}
	}
	return nil
}

// checkCoverage warns if the log's tokens do not tile the file from its
// start, or if the tree is longer than the file. Either way, tree ranges
// disagree with the ranges in the log.
func (t *Tree) checkCoverage(log *event.Log) {
	var next int
	for i := range log.Len() {
		ev := log.At(i)
		if ev.Kind != event.Token {
			continue
		}
		if ev.Start != next {
			t.logger().Warn("token events are not contiguous",
				logging.FieldPath, t.file.Path(),
				logging.FieldEvent, i,
				logging.FieldOffset, next,
			)
			break
		}
		next = ev.End
	}

	if end := int(t.entries[0].End); end > t.file.Len() {
		t.logger().Warn("tree is longer than its file",
			logging.FieldPath, t.file.Path(),
			logging.FieldLength, end,
			logging.FieldOffset, t.file.Len(),
		)
	}
}

// ID returns the ID of this tree, as given by [Options].
func (t *Tree) ID() int32 {
	return t.id
}

// File returns the source file this tree was built from.
func (t *Tree) File() *source.File {
	return t.file
}

// Permissive returns whether this tree was built in permissive mode.
func (t *Tree) Permissive() bool {
	return t.opts.Permissive
}

// Len returns the number of elements in this tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Root returns the root of this tree.
func (t *Tree) Root() *Element {
	return t.Element(0)
}

// Element returns the element at the given index, or nil if it is out of
// range.
//
// Every call with the same index returns the same pointer.
func (t *Tree) Element(idx int) *Element {
	if !t.inRange(idx) {
		return nil
	}

	slot := &t.cache[idx]
	if e := slot.Load(); e != nil {
		return e
	}

	v, err := Classify(t.entries[idx].Kind, t.opts.Permissive)
	if err != nil {
		// checkVariants rejects such trees, so this is unreachable.
		err.(*UnhandledKindError).Handle = t.Handle(idx) //nolint:errcheck // Always this type.
		panic(err)
	}

	e := &Element{tree: t, idx: int32(idx), variant: v}
	if slot.CompareAndSwap(nil, e) {
		return e
	}
	return slot.Load()
}

// Handle returns the handle for the element at the given index, or
// [id.Empty] if it is out of range.
func (t *Tree) Handle(idx int) id.Handle {
	if !t.inRange(idx) {
		return id.Empty
	}
	return id.New(t.id, int32(idx))
}

// Kind returns the raw kind of the element at the given index, or zero if
// it is out of range.
func (t *Tree) Kind(idx int) syntax.Raw {
	if !t.inRange(idx) {
		return 0
	}
	return t.entries[idx].Kind
}

// IsNode returns whether the element at the given index is a node. Returns
// false if it is out of range.
func (t *Tree) IsNode(idx int) bool {
	return t.inRange(idx) && t.entries[idx].IsNode()
}

// IsToken returns whether the element at the given index is a token. Returns
// false if it is out of range.
func (t *Tree) IsToken(idx int) bool {
	return t.inRange(idx) && t.entries[idx].IsToken()
}

// NodeKind returns the node kind of the element at the given index, or
// [syntax.None] if it is a token or out of range.
func (t *Tree) NodeKind(idx int) syntax.Kind {
	return t.Kind(idx).Node()
}

// TokenKind returns the token kind of the element at the given index, or
// [token.None] if it is a node or out of range.
func (t *Tree) TokenKind(idx int) token.Kind {
	return t.Kind(idx).Token()
}

// Parent returns the index of the parent of the element at the given index,
// or -1 if it is the root or out of range.
func (t *Tree) Parent(idx int) int {
	if !t.inRange(idx) {
		return -1
	}
	return int(t.entries[idx].Parent)
}

// Range returns the source range [start, end) of the element at the given
// index, or (-1, -1) if it is out of range.
func (t *Tree) Range(idx int) (start, end int) {
	if !t.inRange(idx) {
		return -1, -1
	}
	e := t.entries[idx]
	return int(e.Start), int(e.End)
}

// Span returns the span of the element at the given index, or the zero span
// if it is out of range.
func (t *Tree) Span(idx int) source.Span {
	if !t.inRange(idx) {
		return source.Span{}
	}
	start, end := t.Range(idx)
	return t.file.Span(start, end)
}

// ChildStart returns the index at which the descendants of the element at
// the given index begin, or -1 if it is out of range.
//
// The descendants of an element are the indices in [ChildStart, ChildEnd).
// The first child, if any, is at ChildStart; each child's next sibling is at
// that child's ChildEnd.
func (t *Tree) ChildStart(idx int) int {
	if !t.inRange(idx) {
		return -1
	}
	return int(t.entries[idx].ChildStart)
}

// ChildEnd returns the index one past the last descendant of the element at
// the given index, or -1 if it is out of range.
func (t *Tree) ChildEnd(idx int) int {
	if !t.inRange(idx) {
		return -1
	}
	return int(t.entries[idx].ChildEnd)
}

// TokenAt returns the token containing the given byte offset, or nil if
// there is none (for example, at the end of the file).
func (t *Tree) TokenAt(offset int) *Element {
	if t == nil || offset < 0 || offset > math.MaxInt32 {
		return nil
	}
	t.tokensOnce.Do(func() {
		for i, e := range t.entries {
			if e.IsToken() {
				t.tokens.Insert(e.Start, e.End, int32(i))
			}
		}
	})

	tok, ok := t.tokens.Get(int32(offset))
	if !ok {
		return nil
	}
	return t.Element(int(tok.Value))
}

// ElementAt returns the innermost node whose range contains the given byte
// offset, or nil if there is none.
func (t *Tree) ElementAt(offset int) *Element {
	return t.TokenAt(offset).Parent()
}

// Marshal returns a snapshot of this tree's structure, which [Load] can turn
// back into a tree, possibly in another process.
func (t *Tree) Marshal() []byte {
	return flat.Marshal(t.entries)
}

// Entries returns a copy of this tree's positioned entries.
func (t *Tree) Entries() []flat.Entry {
	return slices.Clone(t.entries)
}

// Diagnostics returns a copy of the diagnostics recorded for this tree.
func (t *Tree) Diagnostics() []report.Diagnostic {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.report.Clone().Diagnostics
}

// Report returns a copy of this tree's diagnostics, as a report.
func (t *Tree) Report() report.Report {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.report.Clone()
}

// HasErrors returns whether any of this tree's diagnostics is an error.
func (t *Tree) HasErrors() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.report.HasErrors()
}

// PushDiagnostic records diagnostics about this tree. This is intended for
// passes that run after the tree is built.
func (t *Tree) PushDiagnostic(diagnostics ...report.Diagnostic) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.report.Push(diagnostics...)
}

// ClearDiagnostics discards every diagnostic recorded for this tree,
// including syntax errors from the build.
func (t *Tree) ClearDiagnostics() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.report.Diagnostics = nil
}

func (t *Tree) inRange(idx int) bool {
	return t != nil && idx >= 0 && idx < len(t.entries)
}

func (t *Tree) logger() *log.Logger {
	return t.opts.logger()
}
