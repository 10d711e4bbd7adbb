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

package token

import "fmt"

// Kind identifies what kind of token a particular leaf is.
//
// The zero value, [None], is never produced by a lexer; it is the neutral
// value returned by lookups that do not refer to a token.
type Kind uint8

const (
	None    Kind = iota // Not a token.
	Unknown             // Unrecognized garbage in the input.

	Whitespace   // Non-newline contiguous whitespace.
	Newline      // A single line break.
	LineComment  // A // comment, not including its newline.
	BlockComment // A /* */ comment.

	Ident  // An identifier.
	String // A quoted string literal.
	Int    // An integer literal that fits in 32 bits.
	Long   // An integer literal with an L suffix.
	Float  // A floating-point literal with an f suffix.
	Double // Any other floating-point literal.

	KwVar
	KwLet
	KwConst
	KwFunc
	KwReturn
	KwIf
	KwElse
	KwWhile
	KwFor
	KwBreak
	KwContinue
	KwClass
	KwImport
	KwFrom
	KwTrue
	KwFalse
	KwNull
	KwAsync // Contextual; lexed as Ident.
	KwAwait // Contextual; lexed as Ident.

	Plus
	Minus
	Star
	Slash
	Percent
	Eq
	EqEq
	NotEq
	Lt
	Gt
	LtEq
	GtEq
	AndAnd
	OrOr
	Bang
	Arrow

	Dot
	Comma
	Colon
	Semi
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket

	kindCount
)

// Flags is a set of classification bits attached to a [Kind].
type Flags uint16

const (
	FlagString Flags = 1 << iota
	FlagBoolean
	FlagNull
	FlagInt32
	FlagInt64
	FlagFloat
	FlagDouble
	FlagIdent
	FlagKeyword
	FlagWhitespace
	FlagOperator
	FlagNewline
	FlagComment
	FlagPunct

	// FlagTrivia is the set of flags that mark a token as non-semantic.
	FlagTrivia = FlagWhitespace | FlagNewline | FlagComment
	// FlagLiteral is the set of flags that mark a token as a literal value.
	FlagLiteral = FlagString | FlagBoolean | FlagNull | FlagInt32 | FlagInt64 | FlagFloat | FlagDouble
)

type kindInfo struct {
	name  string
	text  string // Fixed spelling, if this kind has one.
	flags Flags
}

var kinds = [kindCount]kindInfo{
	None:    {name: "None"},
	Unknown: {name: "Unknown"},

	Whitespace:   {name: "Whitespace", flags: FlagWhitespace},
	Newline:      {name: "Newline", flags: FlagNewline},
	LineComment:  {name: "LineComment", flags: FlagComment},
	BlockComment: {name: "BlockComment", flags: FlagComment},

	Ident:  {name: "Ident", flags: FlagIdent},
	String: {name: "String", flags: FlagString},
	Int:    {name: "Int", flags: FlagInt32},
	Long:   {name: "Long", flags: FlagInt64},
	Float:  {name: "Float", flags: FlagFloat},
	Double: {name: "Double", flags: FlagDouble},

	KwVar:      {name: "KwVar", text: "var", flags: FlagKeyword},
	KwLet:      {name: "KwLet", text: "let", flags: FlagKeyword},
	KwConst:    {name: "KwConst", text: "const", flags: FlagKeyword},
	KwFunc:     {name: "KwFunc", text: "func", flags: FlagKeyword},
	KwReturn:   {name: "KwReturn", text: "return", flags: FlagKeyword},
	KwIf:       {name: "KwIf", text: "if", flags: FlagKeyword},
	KwElse:     {name: "KwElse", text: "else", flags: FlagKeyword},
	KwWhile:    {name: "KwWhile", text: "while", flags: FlagKeyword},
	KwFor:      {name: "KwFor", text: "for", flags: FlagKeyword},
	KwBreak:    {name: "KwBreak", text: "break", flags: FlagKeyword},
	KwContinue: {name: "KwContinue", text: "continue", flags: FlagKeyword},
	KwClass:    {name: "KwClass", text: "class", flags: FlagKeyword},
	KwImport:   {name: "KwImport", text: "import", flags: FlagKeyword},
	KwFrom:     {name: "KwFrom", text: "from", flags: FlagKeyword},
	KwTrue:     {name: "KwTrue", text: "true", flags: FlagKeyword | FlagBoolean},
	KwFalse:    {name: "KwFalse", text: "false", flags: FlagKeyword | FlagBoolean},
	KwNull:     {name: "KwNull", text: "null", flags: FlagKeyword | FlagNull},
	KwAsync:    {name: "KwAsync", text: "async", flags: FlagKeyword | FlagIdent},
	KwAwait:    {name: "KwAwait", text: "await", flags: FlagKeyword | FlagIdent},

	Plus:    {name: "Plus", text: "+", flags: FlagOperator},
	Minus:   {name: "Minus", text: "-", flags: FlagOperator},
	Star:    {name: "Star", text: "*", flags: FlagOperator},
	Slash:   {name: "Slash", text: "/", flags: FlagOperator},
	Percent: {name: "Percent", text: "%", flags: FlagOperator},
	Eq:      {name: "Eq", text: "=", flags: FlagOperator},
	EqEq:    {name: "EqEq", text: "==", flags: FlagOperator},
	NotEq:   {name: "NotEq", text: "!=", flags: FlagOperator},
	Lt:      {name: "Lt", text: "<", flags: FlagOperator},
	Gt:      {name: "Gt", text: ">", flags: FlagOperator},
	LtEq:    {name: "LtEq", text: "<=", flags: FlagOperator},
	GtEq:    {name: "GtEq", text: ">=", flags: FlagOperator},
	AndAnd:  {name: "AndAnd", text: "&&", flags: FlagOperator},
	OrOr:    {name: "OrOr", text: "||", flags: FlagOperator},
	Bang:    {name: "Bang", text: "!", flags: FlagOperator},
	Arrow:   {name: "Arrow", text: "=>", flags: FlagOperator},

	Dot:      {name: "Dot", text: ".", flags: FlagPunct},
	Comma:    {name: "Comma", text: ",", flags: FlagPunct},
	Colon:    {name: "Colon", text: ":", flags: FlagPunct},
	Semi:     {name: "Semi", text: ";", flags: FlagPunct},
	LParen:   {name: "LParen", text: "(", flags: FlagPunct},
	RParen:   {name: "RParen", text: ")", flags: FlagPunct},
	LBrace:   {name: "LBrace", text: "{", flags: FlagPunct},
	RBrace:   {name: "RBrace", text: "}", flags: FlagPunct},
	LBracket: {name: "LBracket", text: "[", flags: FlagPunct},
	RBracket: {name: "RBracket", text: "]", flags: FlagPunct},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k, info := range kinds {
		m[info.name] = Kind(k)
	}
	return m
}()

// Lookup finds a token kind by its name, as returned by [Kind.String].
func Lookup(name string) (Kind, bool) {
	k, ok := byName[name]
	return k, ok
}

// Flags returns the classification flags for this kind.
//
// Kinds outside of the known range have no flags.
func (k Kind) Flags() Flags {
	if k >= kindCount {
		return 0
	}
	return kinds[k].flags
}

// Is returns whether this kind carries any of the given flags.
func (k Kind) Is(flags Flags) bool {
	return k.Flags()&flags != 0
}

// IsTrivia returns whether this kind is non-semantic: whitespace, newlines,
// and comments.
func (k Kind) IsTrivia() bool {
	return k.Is(FlagTrivia)
}

// IsKeyword returns whether this kind is a keyword, contextual or otherwise.
func (k Kind) IsKeyword() bool {
	return k.Is(FlagKeyword)
}

// Text returns the fixed spelling for this kind, if it has one. Returns ""
// for kinds whose text varies, such as identifiers and literals.
func (k Kind) Text() string {
	if k >= kindCount {
		return ""
	}
	return kinds[k].text
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if k >= kindCount {
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
	return kinds[k].name
}
