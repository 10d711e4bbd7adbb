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

package flat

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bufbuild/syntree/syntax"
)

// Field numbers of the snapshot encoding. A snapshot is a sequence of entry
// fields, each a length-prefixed message:
//
//	message Snapshot { repeated Entry entries = 1; }
//	message Entry {
//	  uint32 kind = 1;
//	  uint32 start = 2;
//	  uint32 len = 3;
//	  sint32 parent = 4;
//	  uint32 descendants = 5;
//	}
//
// ChildStart is implied by an entry's position.
const (
	snapshotEntries protowire.Number = 1

	entryKind        protowire.Number = 1
	entryStart       protowire.Number = 2
	entryLen         protowire.Number = 3
	entryParent      protowire.Number = 4
	entryDescendants protowire.Number = 5
)

// Marshal encodes entries as a compact binary snapshot, which can be decoded
// by [Unmarshal], possibly in another process.
func Marshal(entries []Entry) []byte {
	var buf, msg []byte
	for _, e := range entries {
		msg = msg[:0]
		msg = appendVarint(msg, entryKind, uint64(e.Kind))
		msg = appendVarint(msg, entryStart, uint64(e.Start))
		msg = appendVarint(msg, entryLen, uint64(e.End-e.Start))
		msg = appendVarint(msg, entryParent, protowire.EncodeZigZag(int64(e.Parent)))
		msg = appendVarint(msg, entryDescendants, uint64(e.ChildEnd-e.ChildStart))

		buf = protowire.AppendTag(buf, snapshotEntries, protowire.BytesType)
		buf = protowire.AppendBytes(buf, msg)
	}
	return buf
}

func appendVarint(b []byte, n protowire.Number, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, n, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// Unmarshal decodes a snapshot produced by [Marshal], and validates the
// result with [Validate].
func Unmarshal(data []byte) ([]Entry, error) {
	var entries []Entry
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return nil, fmt.Errorf("flat: bad snapshot tag: %w", protowire.ParseError(n))
		}
		data = data[n:]

		if num != snapshotEntries || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return nil, fmt.Errorf("flat: bad snapshot field %d: %w", num, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		msg, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return nil, fmt.Errorf("flat: bad snapshot entry %d: %w", len(entries), protowire.ParseError(n))
		}
		data = data[n:]

		e, err := unmarshalEntry(int32(len(entries)), msg)
		if err != nil {
			return nil, fmt.Errorf("flat: bad snapshot entry %d: %w", len(entries), err)
		}
		entries = append(entries, e)
	}

	if err := Validate(entries); err != nil {
		return nil, fmt.Errorf("flat: invalid snapshot: %w", err)
	}
	return entries, nil
}

var errOverflow = errors.New("value out of range")

func unmarshalEntry(idx int32, msg []byte) (Entry, error) {
	var e Entry
	var length, descendants uint64
	for len(msg) > 0 {
		num, typ, n := protowire.ConsumeTag(msg)
		if n < 0 {
			return e, protowire.ParseError(n)
		}
		msg = msg[n:]

		if typ != protowire.VarintType {
			n = protowire.ConsumeFieldValue(num, typ, msg)
			if n < 0 {
				return e, protowire.ParseError(n)
			}
			msg = msg[n:]
			continue
		}

		v, n := protowire.ConsumeVarint(msg)
		if n < 0 {
			return e, protowire.ParseError(n)
		}
		msg = msg[n:]

		switch num {
		case entryKind:
			if v > 0xffff {
				return e, fmt.Errorf("kind: %w", errOverflow)
			}
			e.Kind = syntax.Raw(v)
		case entryStart:
			if v > 1<<31-1 {
				return e, fmt.Errorf("start: %w", errOverflow)
			}
			e.Start = int32(v)
		case entryLen:
			length = v
		case entryParent:
			p := protowire.DecodeZigZag(v)
			if p < -1 || p > 1<<31-1 {
				return e, fmt.Errorf("parent: %w", errOverflow)
			}
			e.Parent = int32(p)
		case entryDescendants:
			descendants = v
		}
	}

	if uint64(e.Start)+length > 1<<31-1 {
		return e, fmt.Errorf("len: %w", errOverflow)
	}
	if uint64(idx)+1+descendants > 1<<31-1 {
		return e, fmt.Errorf("descendants: %w", errOverflow)
	}
	e.End = e.Start + int32(length)
	e.ChildStart = idx + 1
	e.ChildEnd = e.ChildStart + int32(descendants)
	return e, nil
}
