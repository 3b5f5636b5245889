/*
File    : corrosion/types/inference.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package types

import (
	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/token"
)

// InferParamType analyzes the syntactic body of an unannotated
// function to guess its parameter's type, per the heuristic named in
// the language contract. It is local and syntax-driven — it never
// fails on its own, falling back to Unknown — ported in spirit from
// original_source's TypeInference::analyze_parameter_usage /
// expression_uses_parameter, narrowed to the five usage patterns the
// language contract enumerates.
func InferParamType(param string, body ast.Expr) Type {
	if t, ok := usage(param, body); ok {
		return t
	}
	return UnknownType{}
}

func isArithOp(op token.Type) bool {
	switch op {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH:
		return true
	default:
		return false
	}
}

func isParamIdent(param string, e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == param
}

// argumentHint guesses a call argument's type from its syntactic
// shape alone, without evaluating or looking anything up — used to
// seed the parameter type of a function inferred to be itself a
// function from a call site.
func argumentHint(e ast.Expr) Type {
	switch e.(type) {
	case *ast.IntLit:
		return IntType{}
	case *ast.BoolLit:
		return BoolType{}
	case *ast.StringLit:
		return StringType{}
	case *ast.ListLit:
		return ListType{Element: UnknownType{}}
	case *ast.PairLit:
		return PairType{First: UnknownType{}, Second: UnknownType{}}
	default:
		return UnknownType{}
	}
}

// usage recursively searches expr for one of the recognized usage
// patterns of param, returning the first one found in a fixed,
// depth-first precedence order.
func usage(param string, expr ast.Expr) (Type, bool) {
	switch n := expr.(type) {
	case *ast.BinaryExpr:
		if isArithOp(n.Op) && (isParamIdent(param, n.Left) || isParamIdent(param, n.Right)) {
			return IntType{}, true
		}
		if t, ok := usage(param, n.Left); ok {
			return t, true
		}
		return usage(param, n.Right)

	case *ast.UnaryExpr:
		if n.Op == token.MINUS && isParamIdent(param, n.Operand) {
			return IntType{}, true
		}
		return usage(param, n.Operand)

	case *ast.FstExpr:
		if isParamIdent(param, n.Pair) {
			return PairType{First: UnknownType{}, Second: UnknownType{}}, true
		}
		return usage(param, n.Pair)

	case *ast.SndExpr:
		if isParamIdent(param, n.Pair) {
			return PairType{First: UnknownType{}, Second: UnknownType{}}, true
		}
		return usage(param, n.Pair)

	case *ast.HeadExpr:
		if isParamIdent(param, n.List) {
			return ListType{Element: UnknownType{}}, true
		}
		return usage(param, n.List)

	case *ast.TailExpr:
		if isParamIdent(param, n.List) {
			return ListType{Element: UnknownType{}}, true
		}
		return usage(param, n.List)

	case *ast.ConsExpr:
		if isParamIdent(param, n.Tail) {
			return ListType{Element: UnknownType{}}, true
		}
		if t, ok := usage(param, n.Head); ok {
			return t, true
		}
		return usage(param, n.Tail)

	case *ast.CallExpr:
		if isParamIdent(param, n.Func) {
			return FunctionType{Param: argumentHint(n.Arg), Result: UnknownType{}}, true
		}
		if t, ok := usage(param, n.Func); ok {
			return t, true
		}
		return usage(param, n.Arg)

	case *ast.CaseExpr:
		if isParamIdent(param, n.Scrutinee) {
			return SumType{Left: UnknownType{}, Right: UnknownType{}}, true
		}
		if t, ok := usage(param, n.Scrutinee); ok {
			return t, true
		}
		if n.LeftName != param {
			if t, ok := usage(param, n.LeftBody); ok {
				return t, true
			}
		}
		if n.RightName != param {
			return usage(param, n.RightBody)
		}
		return nil, false

	case *ast.BlockExpr:
		for _, s := range n.Stmts {
			if t, ok := usageStmt(param, s); ok {
				return t, true
			}
		}
		if n.Result != nil {
			return usage(param, n.Result)
		}
		return nil, false

	case *ast.IfExpr:
		if t, ok := usage(param, n.Cond); ok {
			return t, true
		}
		if t, ok := usage(param, n.Then); ok {
			return t, true
		}
		if n.Else != nil {
			return usage(param, n.Else)
		}
		return nil, false

	case *ast.ForExpr:
		if n.Var == param {
			return usage(param, n.Iter)
		}
		if t, ok := usage(param, n.Iter); ok {
			return t, true
		}
		return usage(param, n.Body)

	case *ast.ListLit:
		for _, el := range n.Elements {
			if t, ok := usage(param, el); ok {
				return t, true
			}
		}
		return nil, false

	case *ast.PairLit:
		if t, ok := usage(param, n.First); ok {
			return t, true
		}
		return usage(param, n.Second)

	case *ast.InjectExpr:
		return usage(param, n.Value)

	case *ast.FixExpr:
		return usage(param, n.Func)

	case *ast.FuncLit:
		if n.Param == param {
			return nil, false
		}
		return usage(param, n.Body)

	case *ast.PrintExpr:
		return usage(param, n.Value)

	case *ast.RangeExpr:
		if t, ok := usage(param, n.Start); ok {
			return t, true
		}
		return usage(param, n.End)

	case *ast.ConcatExpr:
		if t, ok := usage(param, n.Left); ok {
			return t, true
		}
		return usage(param, n.Right)

	case *ast.CharAtExpr:
		if t, ok := usage(param, n.Str); ok {
			return t, true
		}
		return usage(param, n.Index)

	case *ast.LengthExpr:
		return usage(param, n.Str)

	case *ast.ToStringExpr:
		return usage(param, n.Value)

	case *ast.TypeOfExpr:
		return usage(param, n.Value)

	default:
		return nil, false
	}
}

func usageStmt(param string, stmt ast.Stmt) (Type, bool) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		return usage(param, s.Value)
	case *ast.LetStmt:
		return usage(param, s.Value)
	case *ast.FnStmt:
		if s.Param == param {
			return nil, false
		}
		return usage(param, s.Body)
	default:
		return nil, false
	}
}
