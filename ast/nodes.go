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
	"iter"

	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

type (
	// Source is the root of a file.
	Source struct{ view }
	// Block is a brace-delimited list of statements.
	Block struct{ view }

	// VarDecl is a var, let, or const declaration.
	VarDecl struct{ view }
	// FuncDecl is a function declaration.
	FuncDecl struct{ view }
	// ParamList is the parenthesized parameters of a function or lambda.
	ParamList struct{ view }
	// Param is a single parameter.
	Param struct{ view }
	// ClassDecl is a class declaration.
	ClassDecl struct{ view }
	// ImportDecl is an import declaration.
	ImportDecl struct{ view }
	// TypeAnnotation is a `: Type` suffix.
	TypeAnnotation struct{ view }

	// ExprStmt is an expression used as a statement.
	ExprStmt     struct{ view }
	ReturnStmt   struct{ view }
	IfStmt       struct{ view }
	WhileStmt    struct{ view }
	ForStmt      struct{ view }
	BreakStmt    struct{ view }
	ContinueStmt struct{ view }

	BinaryExpr  struct{ view }
	UnaryExpr   struct{ view }
	AssignExpr  struct{ view }
	CallExpr    struct{ view }
	ArgList     struct{ view }
	MemberExpr  struct{ view }
	IndexExpr   struct{ view }
	ParenExpr   struct{ view }
	LiteralExpr struct{ view }
	NameExpr    struct{ view }
	ArrayExpr   struct{ view }
	ObjectExpr  struct{ view }
	// Property is a `key: value` pair in an [ObjectExpr].
	Property   struct{ view }
	LambdaExpr struct{ view }
	AwaitExpr  struct{ view }

	// Placeholder is a node whose kind has no variant of its own.
	Placeholder struct{ view }
)

// Items returns the top-level declarations and statements in this file.
func (v Source) Items() iter.Seq[*Element] { return v.items() }

// Decls returns the top-level declarations in this file.
func (v Source) Decls() iter.Seq[Decl] { return decls(v.items()) }

// Stmts returns the top-level statements in this file.
func (v Source) Stmts() iter.Seq[Stmt] { return stmts(v.items()) }

// Items returns the declarations and statements in this block.
func (v Block) Items() iter.Seq[*Element] { return v.items() }

// Decls returns the declarations in this block.
func (v Block) Decls() iter.Seq[Decl] { return decls(v.items()) }

// Stmts returns the statements in this block.
func (v Block) Stmts() iter.Seq[Stmt] { return stmts(v.items()) }

// Keyword returns the var, let, or const keyword.
func (v VarDecl) Keyword() *Element { return v.token(token.FlagKeyword) }

// Name returns the name being declared.
func (v VarDecl) Name() *Element { return v.token(token.FlagIdent) }

// Type returns the type annotation, if there is one.
func (v VarDecl) Type() TypeAnnotation { return v.node(VariantTypeAnnotation, 0).AsTypeAnnotation() }

// Value returns the initializer, if there is one.
func (v VarDecl) Value() Expr { return v.expr(0) }

// IsAsync returns whether this function is marked async.
func (v FuncDecl) IsAsync() bool { return v.has(token.KwAsync) }

// Name returns the function's name.
func (v FuncDecl) Name() *Element { return v.tokenAfter(token.KwFunc, token.FlagIdent) }

// Params returns the function's parameters.
func (v FuncDecl) Params() ParamList { return v.node(VariantParamList, 0).AsParamList() }

// Return returns the function's return type annotation, if there is one.
func (v FuncDecl) Return() TypeAnnotation { return v.node(VariantTypeAnnotation, 0).AsTypeAnnotation() }

// Body returns the function's body.
func (v FuncDecl) Body() Block { return v.node(VariantBlock, 0).AsBlock() }

// Params returns the parameters in this list.
func (v ParamList) Params() iter.Seq[Param] {
	return mapSeq(v.nodes(VariantParam), (*Element).AsParam)
}

// Name returns the parameter's name.
func (v Param) Name() *Element { return v.token(token.FlagIdent) }

// Type returns the parameter's type annotation, if there is one.
func (v Param) Type() TypeAnnotation { return v.node(VariantTypeAnnotation, 0).AsTypeAnnotation() }

// Default returns the parameter's default value, if there is one.
func (v Param) Default() Expr { return v.expr(0) }

// Name returns the class's name.
func (v ClassDecl) Name() *Element { return v.token(token.FlagIdent) }

// Body returns the class's body.
func (v ClassDecl) Body() Block { return v.node(VariantBlock, 0).AsBlock() }

// Names returns the names being imported.
func (v ImportDecl) Names() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for c := range v.elem.Children() {
			if c.TokenKind() == token.KwFrom {
				return
			}
			if c.TokenKind().Is(token.FlagIdent) && !yield(c) {
				return
			}
		}
	}
}

// Path returns the string literal naming the module being imported from.
func (v ImportDecl) Path() Literal { return v.token(token.FlagString).AsLiteral() }

// Type returns the name of the type.
func (v TypeAnnotation) Type() *Element { return v.token(token.FlagIdent) }

// Expr returns the expression.
func (v ExprStmt) Expr() Expr { return v.expr(0) }

// Value returns the value being returned, if there is one.
func (v ReturnStmt) Value() Expr { return v.expr(0) }

// Cond returns the condition.
func (v IfStmt) Cond() Expr { return v.expr(0) }

// Then returns the block run when the condition holds.
func (v IfStmt) Then() Block { return v.node(VariantBlock, 0).AsBlock() }

// Else returns the else branch, if there is one: either a [Block] or another
// [IfStmt].
func (v IfStmt) Else() Stmt {
	for c := range v.elem.Children() {
		if c.TokenKind() == token.KwElse {
			for next := c.NextSibling(); next != nil; next = next.NextSibling() {
				if s := next.AsStmt(); !s.IsZero() {
					return s
				}
			}
		}
	}
	return Stmt{}
}

// Cond returns the condition.
func (v WhileStmt) Cond() Expr { return v.expr(0) }

// Body returns the loop body.
func (v WhileStmt) Body() Block { return v.node(VariantBlock, 0).AsBlock() }

// Body returns the loop body.
func (v ForStmt) Body() Block { return v.node(VariantBlock, 0).AsBlock() }

// Clauses returns the initializer, condition, and step expressions, in order.
// Missing clauses are skipped.
func (v ForStmt) Clauses() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for c := range v.elem.Children() {
			if (c.Variant().IsExpr() || c.Variant() == VariantVarDecl) && !yield(c) {
				return
			}
		}
	}
}

// Keyword returns the break keyword.
func (v BreakStmt) Keyword() *Element { return v.token(token.FlagKeyword) }

// Keyword returns the continue keyword.
func (v ContinueStmt) Keyword() *Element { return v.token(token.FlagKeyword) }

// Left returns the left operand.
func (v BinaryExpr) Left() Expr { return v.expr(0) }

// Op returns the operator.
func (v BinaryExpr) Op() *Element { return v.token(token.FlagOperator) }

// Right returns the right operand.
func (v BinaryExpr) Right() Expr { return v.expr(1) }

// Op returns the operator.
func (v UnaryExpr) Op() *Element { return v.token(token.FlagOperator) }

// Operand returns the operand.
func (v UnaryExpr) Operand() Expr { return v.expr(0) }

// Target returns the expression being assigned to.
func (v AssignExpr) Target() Expr { return v.expr(0) }

// Op returns the assignment operator.
func (v AssignExpr) Op() *Element { return v.token(token.FlagOperator) }

// Value returns the value being assigned.
func (v AssignExpr) Value() Expr { return v.expr(1) }

// Callee returns the function being called.
func (v CallExpr) Callee() Expr { return v.expr(0) }

// Args returns the argument list.
func (v CallExpr) Args() ArgList { return v.node(VariantArgList, 0).AsArgList() }

// Args returns the arguments.
func (v ArgList) Args() iter.Seq[Expr] { return exprs(v.elem.Children()) }

// Object returns the expression whose member is selected.
func (v MemberExpr) Object() Expr { return v.expr(0) }

// Member returns the name of the selected member.
func (v MemberExpr) Member() *Element { return v.tokenAfter(token.Dot, token.FlagIdent) }

// Object returns the expression being indexed.
func (v IndexExpr) Object() Expr { return v.expr(0) }

// Index returns the index.
func (v IndexExpr) Index() Expr { return v.expr(1) }

// Inner returns the parenthesized expression.
func (v ParenExpr) Inner() Expr { return v.expr(0) }

// Value returns the literal token.
func (v LiteralExpr) Value() Literal {
	for c := range v.elem.Children() {
		if lit := c.AsLiteral(); !lit.IsZero() {
			return lit
		}
	}
	return Literal{}
}

// Name returns the name being referenced.
func (v NameExpr) Name() *Element { return v.token(token.FlagIdent) }

// Elements returns the array's elements.
func (v ArrayExpr) Elements() iter.Seq[Expr] { return exprs(v.elem.Children()) }

// Properties returns the object's properties.
func (v ObjectExpr) Properties() iter.Seq[Property] {
	return mapSeq(v.nodes(VariantProperty), (*Element).AsProperty)
}

// Key returns the property's key: a name or a string literal.
func (v Property) Key() *Element { return v.token(token.FlagIdent | token.FlagString) }

// Value returns the property's value.
func (v Property) Value() Expr { return v.expr(0) }

// Params returns the lambda's parameters.
func (v LambdaExpr) Params() ParamList { return v.node(VariantParamList, 0).AsParamList() }

// Body returns the lambda's body: either a [Block] or an expression.
func (v LambdaExpr) Body() *Element {
	var body *Element
	for c := range v.elem.Children() {
		if c.Variant() == VariantBlock || c.Variant().IsExpr() {
			body = c
		}
	}
	return body
}

// Operand returns the expression being awaited.
func (v AwaitExpr) Operand() Expr { return v.expr(0) }

// Kind returns the node kind that has no variant.
func (v Placeholder) Kind() syntax.Kind { return v.elem.NodeKind() }

// token returns the first child token with any of the given flags.
func (v view) token(flags token.Flags) *Element {
	for c := range v.elem.Children() {
		if c.TokenKind().Is(flags) {
			return c
		}
	}
	return nil
}

// tokenAfter returns the first child token with any of the given flags that
// follows a token of the given kind.
func (v view) tokenAfter(after token.Kind, flags token.Flags) *Element {
	var seen bool
	for c := range v.elem.Children() {
		switch {
		case c.TokenKind() == after:
			seen = true
		case seen && c.TokenKind().Is(flags):
			return c
		}
	}
	return nil
}

// has returns whether there is a child token of the given kind.
func (v view) has(kind token.Kind) bool {
	for c := range v.elem.Children() {
		if c.TokenKind() == kind {
			return true
		}
	}
	return false
}

// node returns the nth child with the given variant.
func (v view) node(variant Variant, n int) *Element {
	for c := range v.nodes(variant) {
		if n == 0 {
			return c
		}
		n--
	}
	return nil
}

// nodes returns the children with the given variant.
func (v view) nodes(variant Variant) iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for c := range v.elem.Children() {
			if c.Variant() == variant && !yield(c) {
				return
			}
		}
	}
}

// expr returns the nth child that is an expression.
func (v view) expr(n int) Expr {
	for e := range exprs(v.elem.Children()) {
		if n == 0 {
			return e
		}
		n--
	}
	return Expr{}
}

// items returns the children that are declarations or statements.
func (v view) items() iter.Seq[*Element] {
	return func(yield func(*Element) bool) {
		for c := range v.elem.Children() {
			if (c.Variant().IsDecl() || c.Variant().IsStmt()) && !yield(c) {
				return
			}
		}
	}
}

func exprs(seq iter.Seq[*Element]) iter.Seq[Expr] {
	return filterSeq(seq, (*Element).AsExpr)
}

func stmts(seq iter.Seq[*Element]) iter.Seq[Stmt] {
	return filterSeq(seq, (*Element).AsStmt)
}

func decls(seq iter.Seq[*Element]) iter.Seq[Decl] {
	return filterSeq(seq, (*Element).AsDecl)
}

// filterSeq converts each element of seq with as, dropping zero results.
func filterSeq[V interface{ IsZero() bool }](seq iter.Seq[*Element], as func(*Element) V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range seq {
			if v := as(e); !v.IsZero() && !yield(v) {
				return
			}
		}
	}
}

// mapSeq converts each element of seq with as.
func mapSeq[V any](seq iter.Seq[*Element], as func(*Element) V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := range seq {
			if !yield(as(e)) {
				return
			}
		}
	}
}
