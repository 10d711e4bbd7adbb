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
	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

// Variant is the concrete shape of an [Element].
//
// Every node kind has its own variant. Tokens are grouped into categories by
// their [token.Flags].
type Variant uint8

const (
	VariantNone Variant = iota // Not an element.

	VariantSource
	VariantBlock
	VariantSkipped
	VariantError

	VariantVarDecl
	VariantFuncDecl
	VariantParamList
	VariantParam
	VariantClassDecl
	VariantImportDecl
	VariantTypeAnnotation

	VariantExprStmt
	VariantReturnStmt
	VariantIfStmt
	VariantWhileStmt
	VariantForStmt
	VariantBreakStmt
	VariantContinueStmt

	VariantBinaryExpr
	VariantUnaryExpr
	VariantAssignExpr
	VariantCallExpr
	VariantArgList
	VariantMemberExpr
	VariantIndexExpr
	VariantParenExpr
	VariantLiteralExpr
	VariantNameExpr
	VariantArrayExpr
	VariantObjectExpr
	VariantProperty
	VariantLambdaExpr
	VariantAwaitExpr

	// A node whose kind has no variant of its own. Only produced by
	// permissive trees.
	VariantPlaceholder

	VariantString
	VariantBool
	VariantNull
	VariantInt32
	VariantInt64
	VariantFloat
	VariantDouble
	VariantIdent
	VariantWhitespace
	VariantOperator
	VariantNewline
	VariantToken // Any other token.

	variantCount
)

var variantNames = [variantCount]string{
	VariantNone:           "None",
	VariantSource:         "Source",
	VariantBlock:          "Block",
	VariantSkipped:        "Skipped",
	VariantError:          "Error",
	VariantVarDecl:        "VarDecl",
	VariantFuncDecl:       "FuncDecl",
	VariantParamList:      "ParamList",
	VariantParam:          "Param",
	VariantClassDecl:      "ClassDecl",
	VariantImportDecl:     "ImportDecl",
	VariantTypeAnnotation: "TypeAnnotation",
	VariantExprStmt:       "ExprStmt",
	VariantReturnStmt:     "ReturnStmt",
	VariantIfStmt:         "IfStmt",
	VariantWhileStmt:      "WhileStmt",
	VariantForStmt:        "ForStmt",
	VariantBreakStmt:      "BreakStmt",
	VariantContinueStmt:   "ContinueStmt",
	VariantBinaryExpr:     "BinaryExpr",
	VariantUnaryExpr:      "UnaryExpr",
	VariantAssignExpr:     "AssignExpr",
	VariantCallExpr:       "CallExpr",
	VariantArgList:        "ArgList",
	VariantMemberExpr:     "MemberExpr",
	VariantIndexExpr:      "IndexExpr",
	VariantParenExpr:      "ParenExpr",
	VariantLiteralExpr:    "LiteralExpr",
	VariantNameExpr:       "NameExpr",
	VariantArrayExpr:      "ArrayExpr",
	VariantObjectExpr:     "ObjectExpr",
	VariantProperty:       "Property",
	VariantLambdaExpr:     "LambdaExpr",
	VariantAwaitExpr:      "AwaitExpr",
	VariantPlaceholder:    "Placeholder",
	VariantString:         "String",
	VariantBool:           "Bool",
	VariantNull:           "Null",
	VariantInt32:          "Int32",
	VariantInt64:          "Int64",
	VariantFloat:          "Float",
	VariantDouble:         "Double",
	VariantIdent:          "Ident",
	VariantWhitespace:     "Whitespace",
	VariantOperator:       "Operator",
	VariantNewline:        "Newline",
	VariantToken:          "Token",
}

// String implements [fmt.Stringer].
func (v Variant) String() string {
	if v >= variantCount {
		return fmt.Sprintf("ast.Variant(%d)", int(v))
	}
	return variantNames[v]
}

// IsNode returns whether this is the variant of a node.
func (v Variant) IsNode() bool {
	return v >= VariantSource && v <= VariantPlaceholder
}

// IsToken returns whether this is the variant of a token.
func (v Variant) IsToken() bool {
	return v >= VariantString && v < variantCount
}

// IsDecl returns whether elements of this variant are [Decl]s.
func (v Variant) IsDecl() bool {
	switch v {
	case VariantVarDecl, VariantFuncDecl, VariantClassDecl, VariantImportDecl:
		return true
	default:
		return false
	}
}

// IsStmt returns whether elements of this variant are [Stmt]s.
func (v Variant) IsStmt() bool {
	switch v {
	case VariantBlock, VariantExprStmt, VariantReturnStmt, VariantIfStmt,
		VariantWhileStmt, VariantForStmt, VariantBreakStmt, VariantContinueStmt:
		return true
	default:
		return false
	}
}

// IsExpr returns whether elements of this variant are [Expr]s.
func (v Variant) IsExpr() bool {
	switch v {
	case VariantBinaryExpr, VariantUnaryExpr, VariantAssignExpr, VariantCallExpr,
		VariantMemberExpr, VariantIndexExpr, VariantParenExpr, VariantLiteralExpr,
		VariantNameExpr, VariantArrayExpr, VariantObjectExpr, VariantLambdaExpr,
		VariantAwaitExpr:
		return true
	default:
		return false
	}
}

// IsLiteral returns whether elements of this variant are [Literal]s.
func (v Variant) IsLiteral() bool {
	return v >= VariantString && v <= VariantDouble
}

// nodeVariants maps each node kind to its variant. Kinds that map to
// VariantNone are unhandled.
var nodeVariants = [...]Variant{
	syntax.Source:         VariantSource,
	syntax.Block:          VariantBlock,
	syntax.Skipped:        VariantSkipped,
	syntax.Error:          VariantError,
	syntax.VarDecl:        VariantVarDecl,
	syntax.FuncDecl:       VariantFuncDecl,
	syntax.ParamList:      VariantParamList,
	syntax.Param:          VariantParam,
	syntax.ClassDecl:      VariantClassDecl,
	syntax.ImportDecl:     VariantImportDecl,
	syntax.TypeAnnotation: VariantTypeAnnotation,
	syntax.ExprStmt:       VariantExprStmt,
	syntax.ReturnStmt:     VariantReturnStmt,
	syntax.IfStmt:         VariantIfStmt,
	syntax.WhileStmt:      VariantWhileStmt,
	syntax.ForStmt:        VariantForStmt,
	syntax.BreakStmt:      VariantBreakStmt,
	syntax.ContinueStmt:   VariantContinueStmt,
	syntax.BinaryExpr:     VariantBinaryExpr,
	syntax.UnaryExpr:      VariantUnaryExpr,
	syntax.AssignExpr:     VariantAssignExpr,
	syntax.CallExpr:       VariantCallExpr,
	syntax.ArgList:        VariantArgList,
	syntax.MemberExpr:     VariantMemberExpr,
	syntax.IndexExpr:      VariantIndexExpr,
	syntax.ParenExpr:      VariantParenExpr,
	syntax.LiteralExpr:    VariantLiteralExpr,
	syntax.NameExpr:       VariantNameExpr,
	syntax.ArrayExpr:      VariantArrayExpr,
	syntax.ObjectExpr:     VariantObjectExpr,
	syntax.Property:       VariantProperty,
	syntax.LambdaExpr:     VariantLambdaExpr,
	syntax.AwaitExpr:      VariantAwaitExpr,
}

// tokenVariants is the order in which token flags are tested; the first
// match wins.
var tokenVariants = [...]struct {
	flags   token.Flags
	without token.Flags
	variant Variant
}{
	{flags: token.FlagString, variant: VariantString},
	{flags: token.FlagBoolean, variant: VariantBool},
	{flags: token.FlagNull, variant: VariantNull},
	{flags: token.FlagInt32, variant: VariantInt32},
	{flags: token.FlagInt64, variant: VariantInt64},
	{flags: token.FlagFloat, variant: VariantFloat},
	{flags: token.FlagDouble, variant: VariantDouble},
	{flags: token.FlagIdent, without: token.FlagKeyword, variant: VariantIdent},
	{flags: token.FlagWhitespace, variant: VariantWhitespace},
	{flags: token.FlagOperator, variant: VariantOperator},
	{flags: token.FlagNewline, variant: VariantNewline},
}

// Classify returns the variant of an element with the given raw kind.
//
// If kind is a node kind with no variant of its own, Classify returns
// [VariantPlaceholder] if permissive is set, and an [*UnhandledKindError]
// otherwise. The error's Handle is [id.Empty].
func Classify(kind syntax.Raw, permissive bool) (Variant, error) {
	if kind.IsToken() {
		flags := kind.Token().Flags()
		for _, tv := range tokenVariants {
			if flags&tv.flags != 0 && flags&tv.without == 0 {
				return tv.variant, nil
			}
		}
		return VariantToken, nil
	}

	node := kind.Node()
	if int(node) < len(nodeVariants) && nodeVariants[node] != VariantNone {
		return nodeVariants[node], nil
	}
	if permissive {
		return VariantPlaceholder, nil
	}
	return VariantNone, &UnhandledKindError{Kind: node, Handle: id.Empty}
}
