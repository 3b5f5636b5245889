/*
File    : corrosion/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the tagged-variant tree produced by the parser:
// type expressions, expressions, and statements. Every node carries the
// Span of the source tokens it was built from (invariant 1 of the data
// model: a node reproduces the span from the first to the last token it
// consumed).
//
// Unlike go-mix's parser.Node, which is visited through a NodeVisitor
// interface, Corrosion's AST is walked with plain type switches in the
// types and eval packages — idiomatic for a tree-walking interpreter of
// this size and avoids a visitor interface that would need a method per
// node variant in three unrelated packages (see DESIGN.md).
package ast

import "github.com/akashmaji946/corrosion/token"

// Node is the root of every AST type: something that knows the span of
// source it came from.
type Node interface {
	Span() token.Span
}

// TypeExpr is a user-written type annotation: Int, Bool, String,
// List T, T1 -> T2, (T1, T2), (T1 + T2), Rec T, or a named identifier.
type TypeExpr interface {
	Node
	typeExprNode()
}

// Expr is any Corrosion expression.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any Corrosion statement.
type Stmt interface {
	Node
	stmtNode()
}

// Program is an ordered sequence of top-level statements.
type Program struct {
	Statements []Stmt
	Sp         token.Span
}

func (p *Program) Span() token.Span { return p.Sp }
