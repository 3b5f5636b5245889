/*
File    : corrosion/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/corrosion/token"

// IntLit is an integer literal, e.g. 42.
type IntLit struct {
	Value int64
	Sp    token.Span
}

func (n *IntLit) Span() token.Span { return n.Sp }
func (n *IntLit) exprNode()         {}

// BoolLit is a boolean literal, true or false.
type BoolLit struct {
	Value bool
	Sp    token.Span
}

func (n *BoolLit) Span() token.Span { return n.Sp }
func (n *BoolLit) exprNode()         {}

// StringLit is a string literal, with escapes already resolved by the
// lexer.
type StringLit struct {
	Value string
	Sp    token.Span
}

func (n *StringLit) Span() token.Span { return n.Sp }
func (n *StringLit) exprNode()         {}

// Ident is a bare identifier reference.
type Ident struct {
	Name string
	Sp   token.Span
}

func (n *Ident) Span() token.Span { return n.Sp }
func (n *Ident) exprNode()         {}

// QualifiedIdent is a module-qualified reference, module.name.
type QualifiedIdent struct {
	Module string
	Name   string
	Sp     token.Span
}

func (n *QualifiedIdent) Span() token.Span { return n.Sp }
func (n *QualifiedIdent) exprNode()         {}

// BinaryExpr is a left-associative binary operation.
type BinaryExpr struct {
	Op          token.Type
	Left, Right Expr
	Sp          token.Span
}

func (n *BinaryExpr) Span() token.Span { return n.Sp }
func (n *BinaryExpr) exprNode()         {}

// UnaryExpr is logical-not (!) or arithmetic negation (-).
type UnaryExpr struct {
	Op      token.Type
	Operand Expr
	Sp      token.Span
}

func (n *UnaryExpr) Span() token.Span { return n.Sp }
func (n *UnaryExpr) exprNode()         {}

// FuncLit is an anonymous function fn(x[: T]) { body }. The body is
// always a BlockExpr, so a function's result type is the type of its
// trailing expression (or Unit).
type FuncLit struct {
	Param     string
	ParamType TypeExpr // nil when unannotated
	Body      *BlockExpr
	Sp        token.Span
}

func (n *FuncLit) Span() token.Span { return n.Sp }
func (n *FuncLit) exprNode()         {}

// CallExpr is single-argument function application, f(a). Multi-argument
// calls are nested CallExprs built by the parser's postfix-application
// loop.
type CallExpr struct {
	Func Expr
	Arg  Expr
	Sp   token.Span
}

func (n *CallExpr) Span() token.Span { return n.Sp }
func (n *CallExpr) exprNode()         {}

// ListLit is a list literal [e, ..., e].
type ListLit struct {
	Elements []Expr
	Sp       token.Span
}

func (n *ListLit) Span() token.Span { return n.Sp }
func (n *ListLit) exprNode()         {}

// PairLit is a pair literal (e1, e2).
type PairLit struct {
	First, Second Expr
	Sp            token.Span
}

func (n *PairLit) Span() token.Span { return n.Sp }
func (n *PairLit) exprNode()         {}

// Side distinguishes the two arms of a sum injection / case branch.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

// InjectExpr is inl(e) or inr(e), injecting e into a sum type.
type InjectExpr struct {
	Which Side
	Value Expr
	Sp    token.Span
}

func (n *InjectExpr) Span() token.Span { return n.Sp }
func (n *InjectExpr) exprNode()         {}

// FixExpr is fix(f), the fixed-point combinator application.
type FixExpr struct {
	Func Expr
	Sp   token.Span
}

func (n *FixExpr) Span() token.Span { return n.Sp }
func (n *FixExpr) exprNode()         {}

// BlockExpr is { stmt* expr? }. Result is nil when the block has no
// trailing expression, in which case it evaluates to Unit.
type BlockExpr struct {
	Stmts  []Stmt
	Result Expr // nil if absent
	Sp     token.Span
}

func (n *BlockExpr) Span() token.Span { return n.Sp }
func (n *BlockExpr) exprNode()         {}

// FstExpr is fst(pair).
type FstExpr struct {
	Pair Expr
	Sp   token.Span
}

func (n *FstExpr) Span() token.Span { return n.Sp }
func (n *FstExpr) exprNode()         {}

// SndExpr is snd(pair).
type SndExpr struct {
	Pair Expr
	Sp   token.Span
}

func (n *SndExpr) Span() token.Span { return n.Sp }
func (n *SndExpr) exprNode()         {}

// ConsExpr is cons(head, tail).
type ConsExpr struct {
	Head, Tail Expr
	Sp         token.Span
}

func (n *ConsExpr) Span() token.Span { return n.Sp }
func (n *ConsExpr) exprNode()         {}

// HeadExpr is head(list).
type HeadExpr struct {
	List Expr
	Sp   token.Span
}

func (n *HeadExpr) Span() token.Span { return n.Sp }
func (n *HeadExpr) exprNode()         {}

// TailExpr is tail(list).
type TailExpr struct {
	List Expr
	Sp   token.Span
}

func (n *TailExpr) Span() token.Span { return n.Sp }
func (n *TailExpr) exprNode()         {}

// PrintExpr is print(e).
type PrintExpr struct {
	Value Expr
	Sp    token.Span
}

func (n *PrintExpr) Span() token.Span { return n.Sp }
func (n *PrintExpr) exprNode()         {}

// IfExpr is if cond { then } [else { else }]. Else is nil when absent,
// in which case the checker requires the then-branch to be Unit.
type IfExpr struct {
	Cond Expr
	Then *BlockExpr
	Else *BlockExpr // nil if absent
	Sp   token.Span
}

func (n *IfExpr) Span() token.Span { return n.Sp }
func (n *IfExpr) exprNode()         {}

// ForExpr is for x in iter { body }.
type ForExpr struct {
	Var  string
	Iter Expr
	Body *BlockExpr
	Sp   token.Span
}

func (n *ForExpr) Span() token.Span { return n.Sp }
func (n *ForExpr) exprNode()         {}

// RangeExpr is range(a, b), the integer range [a, b).
type RangeExpr struct {
	Start, End Expr
	Sp         token.Span
}

func (n *RangeExpr) Span() token.Span { return n.Sp }
func (n *RangeExpr) exprNode()         {}

// ConcatExpr is concat(a, b), string concatenation as a built-in call
// (distinct from the `+` operator, which also concatenates strings).
type ConcatExpr struct {
	Left, Right Expr
	Sp          token.Span
}

func (n *ConcatExpr) Span() token.Span { return n.Sp }
func (n *ConcatExpr) exprNode()         {}

// CharAtExpr is charAt(s, i): the code point at index i as a length-1 string.
type CharAtExpr struct {
	Str, Index Expr
	Sp         token.Span
}

func (n *CharAtExpr) Span() token.Span { return n.Sp }
func (n *CharAtExpr) exprNode()         {}

// LengthExpr is length(s): the code-point count of a string.
type LengthExpr struct {
	Str Expr
	Sp  token.Span
}

func (n *LengthExpr) Span() token.Span { return n.Sp }
func (n *LengthExpr) exprNode()         {}

// ToStringExpr is toString(v) for a ground value.
type ToStringExpr struct {
	Value Expr
	Sp    token.Span
}

func (n *ToStringExpr) Span() token.Span { return n.Sp }
func (n *ToStringExpr) exprNode()         {}

// TypeOfExpr is typeOf(v): the static type the checker assigned to v,
// rendered as a string (e.g. "List Int"). v itself is not evaluated.
type TypeOfExpr struct {
	Value Expr
	Sp    token.Span
}

func (n *TypeOfExpr) Span() token.Span { return n.Sp }
func (n *TypeOfExpr) exprNode()         {}

// CaseExpr is case e of inl x => L | inr y => R, deconstructing a sum.
type CaseExpr struct {
	Scrutinee                Expr
	LeftName, RightName      string
	LeftBody, RightBody      Expr
	Sp                       token.Span
}

func (n *CaseExpr) Span() token.Span { return n.Sp }
func (n *CaseExpr) exprNode()         {}
