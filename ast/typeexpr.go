/*
File    : corrosion/ast/typeexpr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/corrosion/token"

// IntType is the written type "Int".
type IntType struct{ Sp token.Span }

func (n *IntType) Span() token.Span { return n.Sp }
func (n *IntType) typeExprNode()     {}

// BoolType is the written type "Bool".
type BoolType struct{ Sp token.Span }

func (n *BoolType) Span() token.Span { return n.Sp }
func (n *BoolType) typeExprNode()     {}

// StringType is the written type "String".
type StringType struct{ Sp token.Span }

func (n *StringType) Span() token.Span { return n.Sp }
func (n *StringType) typeExprNode()     {}

// ListType is "List T".
type ListType struct {
	Element TypeExpr
	Sp      token.Span
}

func (n *ListType) Span() token.Span { return n.Sp }
func (n *ListType) typeExprNode()     {}

// FuncType is "T1 -> T2", right-associative at the parser level.
type FuncType struct {
	Param  TypeExpr
	Result TypeExpr
	Sp     token.Span
}

func (n *FuncType) Span() token.Span { return n.Sp }
func (n *FuncType) typeExprNode()     {}

// PairType is "(T1, T2)".
type PairType struct {
	First, Second TypeExpr
	Sp            token.Span
}

func (n *PairType) Span() token.Span { return n.Sp }
func (n *PairType) typeExprNode()     {}

// SumType is "(T1 + T2)".
type SumType struct {
	Left, Right TypeExpr
	Sp          token.Span
}

func (n *SumType) Span() token.Span { return n.Sp }
func (n *SumType) typeExprNode()     {}

// RecType is "Rec T".
type RecType struct {
	Inner TypeExpr
	Sp    token.Span
}

func (n *RecType) Span() token.Span { return n.Sp }
func (n *RecType) typeExprNode()     {}

// NamedType is a bare identifier used as a type (reserved for future
// user-declared names; the checker treats any unrecognized name as an
// error today since there are no user-defined ADTs, per spec Non-goals).
type NamedType struct {
	Name string
	Sp   token.Span
}

func (n *NamedType) Span() token.Span { return n.Sp }
func (n *NamedType) typeExprNode()     {}
