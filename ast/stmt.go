/*
File    : corrosion/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/corrosion/token"

// LetStmt is `let name[: T] = value;`.
type LetStmt struct {
	Name  string
	Type  TypeExpr // nil when unannotated
	Value Expr
	Sp    token.Span
}

func (n *LetStmt) Span() token.Span { return n.Sp }
func (n *LetStmt) stmtNode()         {}

// FnStmt is `fn name(param[: T]) [-> R] { body }`, a recursive named
// function declaration: the name is visible inside its own body. The
// checker and evaluator handle it directly (as a RecursiveFn at
// runtime) rather than rewriting it into a let of a fix expression.
type FnStmt struct {
	Name       string
	Param      string
	ParamType  TypeExpr // nil when unannotated
	ResultType TypeExpr // nil when unannotated
	Body       *BlockExpr
	Sp         token.Span
}

func (n *FnStmt) Span() token.Span { return n.Sp }
func (n *FnStmt) stmtNode()         {}

// ImportStmt is `import "path" as alias;`. Path is resolved relative to
// the directory of the importing file.
type ImportStmt struct {
	Path  string
	Alias string
	Sp    token.Span
}

func (n *ImportStmt) Span() token.Span { return n.Sp }
func (n *ImportStmt) stmtNode()         {}

// ExprStmt is a bare expression used for its side effect, terminated by
// `;`.
type ExprStmt struct {
	Value Expr
	Sp    token.Span
}

func (n *ExprStmt) Span() token.Span { return n.Sp }
func (n *ExprStmt) stmtNode()         {}
