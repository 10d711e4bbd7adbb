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

// Package id provides global element handles: stable, serializable names for
// a single node or token of a particular syntax tree.
//
// A [Handle] is a (tree, index) pair. It does not keep the tree alive; to get
// back to an element, hand the handle to whatever owns the trees (e.g. a
// registry of open files) and let it look the tree up by ID.
//
// # Serialization
//
// A handle packs into a single int64 as (tree << 32) | index, where both
// halves are signed 32-bit integers, and its text form is the base-10
// rendering of that int64. This is the only format in which handles are
// persisted or sent to other processes, so it must never change.
package id

import (
	"fmt"
	"strconv"
)

// Handle identifies a single element of a particular tree.
//
// The zero Handle refers to the root of tree 0; use [Empty] for "no element".
type Handle struct {
	Tree, Index int32
}

// Empty is the handle that refers to no element.
var Empty = Handle{Tree: -1, Index: 0}

// New returns a handle for the given tree and index.
func New(tree, index int32) Handle {
	return Handle{Tree: tree, Index: index}
}

// FromInt64 unpacks a handle from its int64 representation.
func FromInt64(v int64) Handle {
	return Handle{
		Tree:  int32(v >> 32),
		Index: int32(uint32(v)),
	}
}

// Parse parses the text form of a handle, as produced by [Handle.String].
func Parse(s string) (Handle, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Empty, fmt.Errorf("syntree/id: invalid handle %q: %w", s, err)
	}
	return FromInt64(v), nil
}

// IsEmpty returns whether this is the [Empty] handle.
func (h Handle) IsEmpty() bool {
	return h == Empty
}

// Int64 packs this handle into an int64.
//
// The index is masked to 32 bits before packing, so a negative index does not
// smear into the tree half.
func (h Handle) Int64() int64 {
	return int64(h.Tree)<<32 | int64(uint32(h.Index))
}

// String implements [fmt.Stringer].
func (h Handle) String() string {
	return strconv.FormatInt(h.Int64(), 10)
}

// GoString implements [fmt.GoStringer].
func (h Handle) GoString() string {
	if h.IsEmpty() {
		return "id.Empty"
	}
	return fmt.Sprintf("id.New(%d, %d)", h.Tree, h.Index)
}

// MarshalText implements [encoding.TextMarshaler].
func (h Handle) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, h.Int64(), 10), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (h *Handle) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
