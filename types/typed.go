/*
File    : corrosion/types/typed.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package types

import (
	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/token"
)

// TypedExpr is a node of the parallel tree the checker produces: the
// same shape as ast.Expr (testable property 3: "the shape of the typed
// AST mirrors the input AST node-for-node"), decorated with the
// synthesized Type at every node. The evaluator walks this tree
// directly instead of the original ast.Expr.
type TypedExpr interface {
	Type() Type
	Span() token.Span
	typedExprNode()
}

type TypedStmt interface {
	Span() token.Span
	typedStmtNode()
}

type TypedProgram struct {
	Statements []TypedStmt
	Sp         token.Span
}

// base carries the two fields every typed node has; concrete types
// embed it to avoid repeating Type()/Span() boilerplate.
type base struct {
	Ty Type
	Sp token.Span
}

func (b base) Type() Type        { return b.Ty }
func (b base) Span() token.Span  { return b.Sp }

type TInt struct {
	base
	Value int64
}

type TBool struct {
	base
	Value bool
}

type TString struct {
	base
	Value string
}

type TIdent struct {
	base
	Name string
}

type TQualifiedIdent struct {
	base
	Module string
	Name   string
}

type TBinary struct {
	base
	Op          token.Type
	Left, Right TypedExpr
}

type TUnary struct {
	base
	Op      token.Type
	Operand TypedExpr
}

type TFunc struct {
	base
	Param string
	Body  *TBlock
}

type TCall struct {
	base
	Func TypedExpr
	Arg  TypedExpr
}

type TList struct {
	base
	Elements []TypedExpr
}

type TPair struct {
	base
	First, Second TypedExpr
}

type TInject struct {
	base
	Which ast.Side
	Value TypedExpr
}

type TFix struct {
	base
	Func TypedExpr
}

type TBlock struct {
	base
	Stmts  []TypedStmt
	Result TypedExpr // nil if absent
}

type TFst struct {
	base
	Pair TypedExpr
}

type TSnd struct {
	base
	Pair TypedExpr
}

type TCons struct {
	base
	Head, Tail TypedExpr
}

type THead struct {
	base
	List TypedExpr
}

type TTail struct {
	base
	List TypedExpr
}

type TPrint struct {
	base
	Value TypedExpr
}

type TIf struct {
	base
	Cond       TypedExpr
	Then, Else *TBlock // Else nil if absent
}

type TFor struct {
	base
	Var  string
	Iter TypedExpr
	Body *TBlock
}

type TRange struct {
	base
	Start, End TypedExpr
}

type TConcat struct {
	base
	Left, Right TypedExpr
}

type TCharAt struct {
	base
	Str, Index TypedExpr
}

type TLength struct {
	base
	Str TypedExpr
}

type TToString struct {
	base
	Value TypedExpr
}

type TTypeOf struct {
	base
	Value TypedExpr
}

type TCase struct {
	base
	Scrutinee           TypedExpr
	LeftName, RightName string
	LeftBody, RightBody TypedExpr
}

func (*TInt) typedExprNode()             {}
func (*TBool) typedExprNode()            {}
func (*TString) typedExprNode()          {}
func (*TIdent) typedExprNode()           {}
func (*TQualifiedIdent) typedExprNode()  {}
func (*TBinary) typedExprNode()          {}
func (*TUnary) typedExprNode()           {}
func (*TFunc) typedExprNode()            {}
func (*TCall) typedExprNode()            {}
func (*TList) typedExprNode()            {}
func (*TPair) typedExprNode()            {}
func (*TInject) typedExprNode()          {}
func (*TFix) typedExprNode()             {}
func (*TBlock) typedExprNode()           {}
func (*TFst) typedExprNode()             {}
func (*TSnd) typedExprNode()             {}
func (*TCons) typedExprNode()            {}
func (*THead) typedExprNode()            {}
func (*TTail) typedExprNode()            {}
func (*TPrint) typedExprNode()           {}
func (*TIf) typedExprNode()              {}
func (*TFor) typedExprNode()             {}
func (*TRange) typedExprNode()           {}
func (*TConcat) typedExprNode()          {}
func (*TCharAt) typedExprNode()          {}
func (*TLength) typedExprNode()          {}
func (*TToString) typedExprNode()        {}
func (*TTypeOf) typedExprNode()          {}
func (*TCase) typedExprNode()            {}

// TLetStmt, TFnStmt, TImportStmt, TExprStmt are the typed counterparts
// of ast's statement variants.
type TLetStmt struct {
	Name  string
	Ty    Type
	Value TypedExpr
	Sp    token.Span
}

type TFnStmt struct {
	Name  string
	Param string
	Ty    Type // the function's own (possibly refined) Function type
	Body  *TBlock
	Sp    token.Span
}

type TImportStmt struct {
	Path  string
	Alias string
	Sp    token.Span
}

type TExprStmt struct {
	Value TypedExpr
	Sp    token.Span
}

func (s *TLetStmt) Span() token.Span    { return s.Sp }
func (s *TFnStmt) Span() token.Span     { return s.Sp }
func (s *TImportStmt) Span() token.Span { return s.Sp }
func (s *TExprStmt) Span() token.Span   { return s.Sp }

func (*TLetStmt) typedStmtNode()    {}
func (*TFnStmt) typedStmtNode()     {}
func (*TImportStmt) typedStmtNode() {}
func (*TExprStmt) typedStmtNode()   {}
