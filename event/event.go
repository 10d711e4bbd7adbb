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

package event

import (
	"fmt"

	"github.com/bufbuild/syntree/report"
	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

// Kind is the kind of an [Event].
type Kind uint8

const (
	Start  Kind = iota + 1 // Open a node.
	Finish                 // Close the most recently opened node.
	Token                  // Consume a token.
	Remap                  // Reclassify the most recently consumed token.
	Error                  // Report a syntax error.
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case Finish:
		return "finish"
	case Token:
		return "token"
	case Remap:
		return "remap"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("event.Kind(%d)", int(k))
	}
}

// NoParent is the value of [Event.Parent] for a start event with no deferred
// parent.
const NoParent = -1

// Event is a single entry in a [Log].
//
// Which fields are meaningful depends on Kind:
//
//   - Start: Node, Parent. A Node of [syntax.None] marks a start event that
//     was abandoned, or (during replay) already opened.
//   - Token: Token, and the source range [Start, End).
//   - Remap: Token is the kind to replace, To its replacement.
//   - Error: Message, Provenance.
type Event struct {
	Kind Kind

	Node syntax.Kind
	// Index of the start event for this node's parent, if the parent was
	// opened after this node; otherwise NoParent.
	Parent int

	Token, To  token.Kind
	Start, End int

	Message    string
	Provenance report.Provenance
}

// String implements [fmt.Stringer].
func (e Event) String() string {
	switch e.Kind {
	case Start:
		if e.Parent != NoParent {
			return fmt.Sprintf("start(%v, parent=%d)", e.Node, e.Parent)
		}
		return fmt.Sprintf("start(%v)", e.Node)
	case Token:
		return fmt.Sprintf("token(%v, %d..%d)", e.Token, e.Start, e.End)
	case Remap:
		return fmt.Sprintf("remap(%v -> %v)", e.Token, e.To)
	case Error:
		return fmt.Sprintf("error(%q)", e.Message)
	default:
		return e.Kind.String()
	}
}
