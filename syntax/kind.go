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

// Package syntax defines the kinds of interior nodes in a syntax tree, and
// [Raw], the tagged kind stored for every node and token in the tree.
package syntax

import (
	"fmt"

	"github.com/bufbuild/syntree/token"
)

// Kind identifies what kind of production a node represents.
//
// The zero value, [None], is a sentinel: it marks start events that have
// already been opened or abandoned, and is the neutral value returned by
// lookups that do not refer to a node.
type Kind uint16

const (
	None Kind = iota

	Source  // The whole file.
	Block   // A brace-delimited block.
	Skipped // Input skipped over by the parser.
	Error   // A production the parser could not make sense of.

	VarDecl
	FuncDecl
	ParamList
	Param
	ClassDecl
	ImportDecl
	TypeAnnotation

	ExprStmt
	ReturnStmt
	IfStmt
	WhileStmt
	ForStmt
	BreakStmt
	ContinueStmt

	BinaryExpr
	UnaryExpr
	AssignExpr
	CallExpr
	ArgList
	MemberExpr
	IndexExpr
	ParenExpr
	LiteralExpr
	NameExpr
	ArrayExpr
	ObjectExpr
	Property
	LambdaExpr
	AwaitExpr

	kindCount
)

var names = [kindCount]string{
	None:    "None",
	Source:  "Source",
	Block:   "Block",
	Skipped: "Skipped",
	Error:   "Error",

	VarDecl:        "VarDecl",
	FuncDecl:       "FuncDecl",
	ParamList:      "ParamList",
	Param:          "Param",
	ClassDecl:      "ClassDecl",
	ImportDecl:     "ImportDecl",
	TypeAnnotation: "TypeAnnotation",

	ExprStmt:     "ExprStmt",
	ReturnStmt:   "ReturnStmt",
	IfStmt:       "IfStmt",
	WhileStmt:    "WhileStmt",
	ForStmt:      "ForStmt",
	BreakStmt:    "BreakStmt",
	ContinueStmt: "ContinueStmt",

	BinaryExpr:  "BinaryExpr",
	UnaryExpr:   "UnaryExpr",
	AssignExpr:  "AssignExpr",
	CallExpr:    "CallExpr",
	ArgList:     "ArgList",
	MemberExpr:  "MemberExpr",
	IndexExpr:   "IndexExpr",
	ParenExpr:   "ParenExpr",
	LiteralExpr: "LiteralExpr",
	NameExpr:    "NameExpr",
	ArrayExpr:   "ArrayExpr",
	ObjectExpr:  "ObjectExpr",
	Property:    "Property",
	LambdaExpr:  "LambdaExpr",
	AwaitExpr:   "AwaitExpr",
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, name := range names {
		m[name] = Kind(k)
	}
	return m
}()

// Lookup finds a node kind by its name, as returned by [Kind.String].
func Lookup(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// IsTransparent returns whether a node of this kind spans all of its
// children, including leading and trailing trivia.
//
// Only the whole-file node and brace-delimited blocks are transparent; every
// other node has its span trimmed to its first and last non-trivia children.
func (k Kind) IsTransparent() bool {
	return k == Source || k == Block
}

// IsTrivia returns whether a node of this kind is non-semantic.
func (k Kind) IsTrivia() bool {
	return k == Skipped
}

// IsKnown returns whether this is one of the kinds declared in this package,
// other than None.
func (k Kind) IsKnown() bool {
	return k > None && k < kindCount
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("syntax.Kind(%d)", int(k))
	}
	return names[k]
}

// nodeBit is the bit of a [Raw] that distinguishes nodes from tokens.
const nodeBit = 1 << 15

// Raw is the kind stored for a single element of a syntax tree: either a
// node [Kind] or a [token.Kind], tagged with which of the two it is.
//
// The zero Raw is the token kind [token.None].
type Raw uint16

// NodeRaw tags a node kind.
func NodeRaw(k Kind) Raw {
	return Raw(k&^nodeBit) | nodeBit
}

// TokenRaw tags a token kind.
func TokenRaw(k token.Kind) Raw {
	return Raw(k)
}

// IsNode returns whether this is a node kind.
func (r Raw) IsNode() bool {
	return r&nodeBit != 0
}

// IsToken returns whether this is a token kind.
func (r Raw) IsToken() bool {
	return !r.IsNode()
}

// Node returns the node kind, or [None] if this is a token kind.
func (r Raw) Node() Kind {
	if !r.IsNode() {
		return None
	}
	return Kind(r &^ nodeBit)
}

// Token returns the token kind, or [token.None] if this is a node kind.
func (r Raw) Token() token.Kind {
	if r.IsNode() || r > 0xff {
		return token.None
	}
	return token.Kind(r)
}

// IsTrivia returns whether an element of this kind is non-semantic, and thus
// excluded from the span of a non-transparent parent.
func (r Raw) IsTrivia() bool {
	if r.IsNode() {
		return r.Node().IsTrivia()
	}
	return r.Token().IsTrivia()
}

// String implements [fmt.Stringer].
func (r Raw) String() string {
	if r.IsNode() {
		return r.Node().String()
	}
	return r.Token().String()
}
