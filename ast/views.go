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
	"fmt"

	"github.com/bufbuild/syntree/id"
	"github.com/bufbuild/syntree/source"
)

// view is the common part of every typed view of an [Element].
//
// A zero view wraps no element; the As* methods return zero views when the
// element they are called on has a different shape.
type view struct {
	elem *Element
}

// Element returns the element this view wraps.
func (v view) Element() *Element {
	return v.elem
}

// IsZero returns whether this view wraps no element.
func (v view) IsZero() bool {
	return v.elem == nil
}

// Span implements [source.Spanner].
func (v view) Span() source.Span {
	return v.elem.Span()
}

// Handle returns the handle of the wrapped element.
func (v view) Handle() id.Handle {
	return v.elem.Handle()
}

// Text returns the source text of the wrapped element.
func (v view) Text() string {
	return v.elem.Text()
}

// String implements [fmt.Stringer].
func (v view) String() string {
	return fmt.Sprint(v.elem)
}

// as wraps e in a view if it has the given variant.
func (e *Element) as(variant Variant) view {
	if e.Variant() != variant {
		return view{}
	}
	return view{e}
}

// AsSource returns this element as a [Source], or a zero view if it is not one.
func (e *Element) AsSource() Source {
	return Source{e.as(VariantSource)}
}

// AsBlock returns this element as a [Block], or a zero view if it is not one.
func (e *Element) AsBlock() Block {
	return Block{e.as(VariantBlock)}
}

// AsVarDecl returns this element as a [VarDecl], or a zero view if it is not one.
func (e *Element) AsVarDecl() VarDecl {
	return VarDecl{e.as(VariantVarDecl)}
}

// AsFuncDecl returns this element as a [FuncDecl], or a zero view if it is not one.
func (e *Element) AsFuncDecl() FuncDecl {
	return FuncDecl{e.as(VariantFuncDecl)}
}

// AsParamList returns this element as a [ParamList], or a zero view if it is not one.
func (e *Element) AsParamList() ParamList {
	return ParamList{e.as(VariantParamList)}
}

// AsParam returns this element as a [Param], or a zero view if it is not one.
func (e *Element) AsParam() Param {
	return Param{e.as(VariantParam)}
}

// AsClassDecl returns this element as a [ClassDecl], or a zero view if it is not one.
func (e *Element) AsClassDecl() ClassDecl {
	return ClassDecl{e.as(VariantClassDecl)}
}

// AsImportDecl returns this element as an [ImportDecl], or a zero view if it is not one.
func (e *Element) AsImportDecl() ImportDecl {
	return ImportDecl{e.as(VariantImportDecl)}
}

// AsTypeAnnotation returns this element as a [TypeAnnotation], or a zero view if it is not one.
func (e *Element) AsTypeAnnotation() TypeAnnotation {
	return TypeAnnotation{e.as(VariantTypeAnnotation)}
}

// AsExprStmt returns this element as an [ExprStmt], or a zero view if it is not one.
func (e *Element) AsExprStmt() ExprStmt {
	return ExprStmt{e.as(VariantExprStmt)}
}

// AsReturnStmt returns this element as a [ReturnStmt], or a zero view if it is not one.
func (e *Element) AsReturnStmt() ReturnStmt {
	return ReturnStmt{e.as(VariantReturnStmt)}
}

// AsIfStmt returns this element as an [IfStmt], or a zero view if it is not one.
func (e *Element) AsIfStmt() IfStmt {
	return IfStmt{e.as(VariantIfStmt)}
}

// AsWhileStmt returns this element as a [WhileStmt], or a zero view if it is not one.
func (e *Element) AsWhileStmt() WhileStmt {
	return WhileStmt{e.as(VariantWhileStmt)}
}

// AsForStmt returns this element as a [ForStmt], or a zero view if it is not one.
func (e *Element) AsForStmt() ForStmt {
	return ForStmt{e.as(VariantForStmt)}
}

// AsBreakStmt returns this element as a [BreakStmt], or a zero view if it is not one.
func (e *Element) AsBreakStmt() BreakStmt {
	return BreakStmt{e.as(VariantBreakStmt)}
}

// AsContinueStmt returns this element as a [ContinueStmt], or a zero view if it is not one.
func (e *Element) AsContinueStmt() ContinueStmt {
	return ContinueStmt{e.as(VariantContinueStmt)}
}

// AsBinaryExpr returns this element as a [BinaryExpr], or a zero view if it is not one.
func (e *Element) AsBinaryExpr() BinaryExpr {
	return BinaryExpr{e.as(VariantBinaryExpr)}
}

// AsUnaryExpr returns this element as an [UnaryExpr], or a zero view if it is not one.
func (e *Element) AsUnaryExpr() UnaryExpr {
	return UnaryExpr{e.as(VariantUnaryExpr)}
}

// AsAssignExpr returns this element as an [AssignExpr], or a zero view if it is not one.
func (e *Element) AsAssignExpr() AssignExpr {
	return AssignExpr{e.as(VariantAssignExpr)}
}

// AsCallExpr returns this element as a [CallExpr], or a zero view if it is not one.
func (e *Element) AsCallExpr() CallExpr {
	return CallExpr{e.as(VariantCallExpr)}
}

// AsArgList returns this element as an [ArgList], or a zero view if it is not one.
func (e *Element) AsArgList() ArgList {
	return ArgList{e.as(VariantArgList)}
}

// AsMemberExpr returns this element as a [MemberExpr], or a zero view if it is not one.
func (e *Element) AsMemberExpr() MemberExpr {
	return MemberExpr{e.as(VariantMemberExpr)}
}

// AsIndexExpr returns this element as an [IndexExpr], or a zero view if it is not one.
func (e *Element) AsIndexExpr() IndexExpr {
	return IndexExpr{e.as(VariantIndexExpr)}
}

// AsParenExpr returns this element as a [ParenExpr], or a zero view if it is not one.
func (e *Element) AsParenExpr() ParenExpr {
	return ParenExpr{e.as(VariantParenExpr)}
}

// AsLiteralExpr returns this element as a [LiteralExpr], or a zero view if it is not one.
func (e *Element) AsLiteralExpr() LiteralExpr {
	return LiteralExpr{e.as(VariantLiteralExpr)}
}

// AsNameExpr returns this element as a [NameExpr], or a zero view if it is not one.
func (e *Element) AsNameExpr() NameExpr {
	return NameExpr{e.as(VariantNameExpr)}
}

// AsArrayExpr returns this element as an [ArrayExpr], or a zero view if it is not one.
func (e *Element) AsArrayExpr() ArrayExpr {
	return ArrayExpr{e.as(VariantArrayExpr)}
}

// AsObjectExpr returns this element as an [ObjectExpr], or a zero view if it is not one.
func (e *Element) AsObjectExpr() ObjectExpr {
	return ObjectExpr{e.as(VariantObjectExpr)}
}

// AsProperty returns this element as a [Property], or a zero view if it is not one.
func (e *Element) AsProperty() Property {
	return Property{e.as(VariantProperty)}
}

// AsLambdaExpr returns this element as a [LambdaExpr], or a zero view if it is not one.
func (e *Element) AsLambdaExpr() LambdaExpr {
	return LambdaExpr{e.as(VariantLambdaExpr)}
}

// AsAwaitExpr returns this element as an [AwaitExpr], or a zero view if it is not one.
func (e *Element) AsAwaitExpr() AwaitExpr {
	return AwaitExpr{e.as(VariantAwaitExpr)}
}

// AsPlaceholder returns this element as a [Placeholder], or a zero view if it is not one.
func (e *Element) AsPlaceholder() Placeholder {
	return Placeholder{e.as(VariantPlaceholder)}
}

// Expr is any expression.
type Expr struct{ view }

// AsExpr returns this element as an [Expr], or a zero view if it is not one.
func (e *Element) AsExpr() Expr {
	if !e.Variant().IsExpr() {
		return Expr{}
	}
	return Expr{view{e}}
}

// Variant returns the variant of the wrapped element.
func (v Expr) Variant() Variant {
	return v.elem.Variant()
}

// AsBinaryExpr converts to a [BinaryExpr], if that is what this is.
func (v Expr) AsBinaryExpr() BinaryExpr { return v.elem.AsBinaryExpr() }

// AsUnaryExpr converts to an [UnaryExpr], if that is what this is.
func (v Expr) AsUnaryExpr() UnaryExpr { return v.elem.AsUnaryExpr() }

// AsAssignExpr converts to an [AssignExpr], if that is what this is.
func (v Expr) AsAssignExpr() AssignExpr { return v.elem.AsAssignExpr() }

// AsCallExpr converts to a [CallExpr], if that is what this is.
func (v Expr) AsCallExpr() CallExpr { return v.elem.AsCallExpr() }

// AsMemberExpr converts to a [MemberExpr], if that is what this is.
func (v Expr) AsMemberExpr() MemberExpr { return v.elem.AsMemberExpr() }

// AsIndexExpr converts to an [IndexExpr], if that is what this is.
func (v Expr) AsIndexExpr() IndexExpr { return v.elem.AsIndexExpr() }

// AsParenExpr converts to a [ParenExpr], if that is what this is.
func (v Expr) AsParenExpr() ParenExpr { return v.elem.AsParenExpr() }

// AsLiteralExpr converts to a [LiteralExpr], if that is what this is.
func (v Expr) AsLiteralExpr() LiteralExpr { return v.elem.AsLiteralExpr() }

// AsNameExpr converts to a [NameExpr], if that is what this is.
func (v Expr) AsNameExpr() NameExpr { return v.elem.AsNameExpr() }

// AsArrayExpr converts to an [ArrayExpr], if that is what this is.
func (v Expr) AsArrayExpr() ArrayExpr { return v.elem.AsArrayExpr() }

// AsObjectExpr converts to an [ObjectExpr], if that is what this is.
func (v Expr) AsObjectExpr() ObjectExpr { return v.elem.AsObjectExpr() }

// AsLambdaExpr converts to a [LambdaExpr], if that is what this is.
func (v Expr) AsLambdaExpr() LambdaExpr { return v.elem.AsLambdaExpr() }

// AsAwaitExpr converts to an [AwaitExpr], if that is what this is.
func (v Expr) AsAwaitExpr() AwaitExpr { return v.elem.AsAwaitExpr() }

// Stmt is any statement. Blocks are statements.
type Stmt struct{ view }

// AsStmt returns this element as a [Stmt], or a zero view if it is not one.
func (e *Element) AsStmt() Stmt {
	if !e.Variant().IsStmt() {
		return Stmt{}
	}
	return Stmt{view{e}}
}

// Variant returns the variant of the wrapped element.
func (v Stmt) Variant() Variant {
	return v.elem.Variant()
}

// AsBlock converts to a [Block], if that is what this is.
func (v Stmt) AsBlock() Block { return v.elem.AsBlock() }

// AsExprStmt converts to an [ExprStmt], if that is what this is.
func (v Stmt) AsExprStmt() ExprStmt { return v.elem.AsExprStmt() }

// AsReturnStmt converts to a [ReturnStmt], if that is what this is.
func (v Stmt) AsReturnStmt() ReturnStmt { return v.elem.AsReturnStmt() }

// AsIfStmt converts to an [IfStmt], if that is what this is.
func (v Stmt) AsIfStmt() IfStmt { return v.elem.AsIfStmt() }

// AsWhileStmt converts to a [WhileStmt], if that is what this is.
func (v Stmt) AsWhileStmt() WhileStmt { return v.elem.AsWhileStmt() }

// AsForStmt converts to a [ForStmt], if that is what this is.
func (v Stmt) AsForStmt() ForStmt { return v.elem.AsForStmt() }

// AsBreakStmt converts to a [BreakStmt], if that is what this is.
func (v Stmt) AsBreakStmt() BreakStmt { return v.elem.AsBreakStmt() }

// AsContinueStmt converts to a [ContinueStmt], if that is what this is.
func (v Stmt) AsContinueStmt() ContinueStmt { return v.elem.AsContinueStmt() }

// Decl is any declaration.
type Decl struct{ view }

// AsDecl returns this element as a [Decl], or a zero view if it is not one.
func (e *Element) AsDecl() Decl {
	if !e.Variant().IsDecl() {
		return Decl{}
	}
	return Decl{view{e}}
}

// Variant returns the variant of the wrapped element.
func (v Decl) Variant() Variant {
	return v.elem.Variant()
}

// AsVarDecl converts to a [VarDecl], if that is what this is.
func (v Decl) AsVarDecl() VarDecl { return v.elem.AsVarDecl() }

// AsFuncDecl converts to a [FuncDecl], if that is what this is.
func (v Decl) AsFuncDecl() FuncDecl { return v.elem.AsFuncDecl() }

// AsClassDecl converts to a [ClassDecl], if that is what this is.
func (v Decl) AsClassDecl() ClassDecl { return v.elem.AsClassDecl() }

// AsImportDecl converts to an [ImportDecl], if that is what this is.
func (v Decl) AsImportDecl() ImportDecl { return v.elem.AsImportDecl() }

// Literal is a literal token: a string, number, boolean, or null.
//
// Its contents are not interpreted; Text returns them verbatim.
type Literal struct{ view }

// AsLiteral returns this element as a [Literal], or a zero view if it is not
// one.
func (e *Element) AsLiteral() Literal {
	if !e.Variant().IsLiteral() {
		return Literal{}
	}
	return Literal{view{e}}
}

// Variant returns the variant of the wrapped token.
func (v Literal) Variant() Variant {
	return v.elem.Variant()
}
