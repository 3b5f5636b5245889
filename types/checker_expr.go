/*
File    : corrosion/types/checker_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package types

import (
	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/token"
)

func (c *Checker) checkExpr(e ast.Expr) (TypedExpr, error) {
	switch n := e.(type) {
	case *ast.IntLit:
		return &TInt{base: base{Ty: IntType{}, Sp: n.Sp}, Value: n.Value}, nil
	case *ast.BoolLit:
		return &TBool{base: base{Ty: BoolType{}, Sp: n.Sp}, Value: n.Value}, nil
	case *ast.StringLit:
		return &TString{base: base{Ty: StringType{}, Sp: n.Sp}, Value: n.Value}, nil
	case *ast.Ident:
		t, ok := c.env.Lookup(n.Name)
		if !ok {
			return nil, &Error{Kind: UndefinedVariable, Name: n.Name, Span: n.Sp}
		}
		return &TIdent{base: base{Ty: t, Sp: n.Sp}, Name: n.Name}, nil
	case *ast.QualifiedIdent:
		return c.checkQualifiedIdent(n)
	case *ast.BinaryExpr:
		return c.checkBinaryExpr(n)
	case *ast.UnaryExpr:
		return c.checkUnaryExpr(n)
	case *ast.FuncLit:
		return c.checkFuncLit(n)
	case *ast.CallExpr:
		return c.checkCallExpr(n)
	case *ast.ListLit:
		return c.checkListLit(n)
	case *ast.PairLit:
		return c.checkPairLit(n)
	case *ast.InjectExpr:
		return c.checkInjectExpr(n)
	case *ast.FixExpr:
		return c.checkFixExpr(n)
	case *ast.BlockExpr:
		return c.checkBlock(n)
	case *ast.FstExpr:
		return c.checkFstExpr(n)
	case *ast.SndExpr:
		return c.checkSndExpr(n)
	case *ast.ConsExpr:
		return c.checkConsExpr(n)
	case *ast.HeadExpr:
		return c.checkHeadExpr(n)
	case *ast.TailExpr:
		return c.checkTailExpr(n)
	case *ast.PrintExpr:
		v, err := c.checkExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &TPrint{base: base{Ty: UnitType{}, Sp: n.Sp}, Value: v}, nil
	case *ast.IfExpr:
		return c.checkIfExpr(n)
	case *ast.ForExpr:
		return c.checkForExpr(n)
	case *ast.RangeExpr:
		return c.checkRangeExpr(n)
	case *ast.ConcatExpr:
		return c.checkConcatExpr(n)
	case *ast.CharAtExpr:
		return c.checkCharAtExpr(n)
	case *ast.LengthExpr:
		return c.checkLengthExpr(n)
	case *ast.ToStringExpr:
		v, err := c.checkExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &TToString{base: base{Ty: StringType{}, Sp: n.Sp}, Value: v}, nil
	case *ast.TypeOfExpr:
		v, err := c.checkExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &TTypeOf{base: base{Ty: StringType{}, Sp: n.Sp}, Value: v}, nil
	case *ast.CaseExpr:
		return c.checkCaseExpr(n)
	default:
		panic("types: unknown expression variant")
	}
}

func (c *Checker) checkQualifiedIdent(n *ast.QualifiedIdent) (TypedExpr, error) {
	exports, ok := c.modules[n.Module]
	if !ok {
		return nil, &Error{Kind: UndefinedVariable, Name: n.Module, Span: n.Sp}
	}
	t, ok := exports[n.Name]
	if !ok {
		return nil, &Error{Kind: UndefinedVariable, Name: n.Module + "." + n.Name, Span: n.Sp}
	}
	return &TQualifiedIdent{base: base{Ty: t, Sp: n.Sp}, Module: n.Module, Name: n.Name}, nil
}

func (c *Checker) checkBinaryExpr(n *ast.BinaryExpr) (TypedExpr, error) {
	left, err := c.checkExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.checkExpr(n.Right)
	if err != nil {
		return nil, err
	}
	result, ok := binaryResult(left.Type(), n.Op, right.Type())
	if !ok {
		return nil, &Error{Kind: InvalidBinaryOp, Left: left.Type(), Op: n.Op, Right: right.Type(), Span: n.Sp}
	}
	return &TBinary{base: base{Ty: result, Sp: n.Sp}, Op: n.Op, Left: left, Right: right}, nil
}

func (c *Checker) checkUnaryExpr(n *ast.UnaryExpr) (TypedExpr, error) {
	operand, err := c.checkExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	var want, result Type
	if n.Op == token.BANG {
		want, result = BoolType{}, BoolType{}
	} else {
		want, result = IntType{}, IntType{}
	}
	if !Compatible(operand.Type(), want) {
		return nil, typeMismatch(want, operand.Type(), n.Sp)
	}
	return &TUnary{base: base{Ty: result, Sp: n.Sp}, Op: n.Op, Operand: operand}, nil
}

func (c *Checker) checkFuncLit(n *ast.FuncLit) (TypedExpr, error) {
	var paramType Type
	if n.ParamType != nil {
		t, err := c.resolveTypeExpr(n.ParamType)
		if err != nil {
			return nil, err
		}
		paramType = t
	} else {
		paramType = InferParamType(n.Param, n.Body)
	}

	c.env.EnterScope()
	c.env.Bind(n.Param, paramType)
	body, err := c.checkBlock(n.Body)
	c.env.ExitScope()
	if err != nil {
		return nil, err
	}

	ft := FunctionType{Param: paramType, Result: body.Type()}
	return &TFunc{base: base{Ty: ft, Sp: n.Sp}, Param: n.Param, Body: body}, nil
}

func (c *Checker) checkCallExpr(n *ast.CallExpr) (TypedExpr, error) {
	fn, err := c.checkExpr(n.Func)
	if err != nil {
		return nil, err
	}
	arg, err := c.checkExpr(n.Arg)
	if err != nil {
		return nil, err
	}

	fnType := fn.Type()
	if IsUnknown(fnType) {
		return &TCall{base: base{Ty: UnknownType{}, Sp: n.Sp}, Func: fn, Arg: arg}, nil
	}
	ft, ok := fnType.(FunctionType)
	if !ok {
		return nil, typeMismatch(FunctionType{Param: UnknownType{}, Result: UnknownType{}}, fnType, n.Sp)
	}
	if !Compatible(arg.Type(), ft.Param) {
		return nil, typeMismatch(ft.Param, arg.Type(), n.Arg.Span())
	}
	return &TCall{base: base{Ty: ft.Result, Sp: n.Sp}, Func: fn, Arg: arg}, nil
}

func (c *Checker) checkListLit(n *ast.ListLit) (TypedExpr, error) {
	if len(n.Elements) == 0 {
		return &TList{base: base{Ty: ListType{Element: UnknownType{}}, Sp: n.Sp}}, nil
	}
	elems := make([]TypedExpr, 0, len(n.Elements))
	elemType := Type(UnknownType{})
	for _, el := range n.Elements {
		te, err := c.checkExpr(el)
		if err != nil {
			return nil, err
		}
		elems = append(elems, te)
		if !Compatible(elemType, te.Type()) {
			return nil, typeMismatch(elemType, te.Type(), el.Span())
		}
		if IsUnknown(elemType) {
			elemType = te.Type()
		}
	}
	return &TList{base: base{Ty: ListType{Element: elemType}, Sp: n.Sp}, Elements: elems}, nil
}

func (c *Checker) checkPairLit(n *ast.PairLit) (TypedExpr, error) {
	first, err := c.checkExpr(n.First)
	if err != nil {
		return nil, err
	}
	second, err := c.checkExpr(n.Second)
	if err != nil {
		return nil, err
	}
	return &TPair{
		base:   base{Ty: PairType{First: first.Type(), Second: second.Type()}, Sp: n.Sp},
		First:  first,
		Second: second,
	}, nil
}

func (c *Checker) checkInjectExpr(n *ast.InjectExpr) (TypedExpr, error) {
	v, err := c.checkExpr(n.Value)
	if err != nil {
		return nil, err
	}
	var sum Type
	if n.Which == ast.LeftSide {
		sum = SumType{Left: v.Type(), Right: UnknownType{}}
	} else {
		sum = SumType{Left: UnknownType{}, Right: v.Type()}
	}
	return &TInject{base: base{Ty: sum, Sp: n.Sp}, Which: n.Which, Value: v}, nil
}

func (c *Checker) checkFixExpr(n *ast.FixExpr) (TypedExpr, error) {
	f, err := c.checkExpr(n.Func)
	if err != nil {
		return nil, err
	}
	result, err := checkFixType(f.Type(), n.Sp)
	if err != nil {
		return nil, err
	}
	return &TFix{base: base{Ty: result, Sp: n.Sp}, Func: f}, nil
}

// checkFixType implements the `fix` contract: f must have shape
// `(T -> T) -> (T -> T)`, result `T -> T`; Unknown layers pass through
// best-effort.
func checkFixType(fType Type, span token.Span) (Type, error) {
	if IsUnknown(fType) {
		return UnknownType{}, nil
	}
	ft, ok := fType.(FunctionType)
	if !ok {
		return nil, typeMismatch(FunctionType{Param: UnknownType{}, Result: UnknownType{}}, fType, span)
	}
	if IsUnknown(ft.Param) {
		return ft.Result, nil
	}
	if IsUnknown(ft.Result) {
		return ft.Param, nil
	}
	if !Compatible(ft.Param, ft.Result) {
		return nil, typeMismatch(ft.Param, ft.Result, span)
	}
	return ft.Result, nil
}

func (c *Checker) checkBlock(n *ast.BlockExpr) (*TBlock, error) {
	c.env.EnterScope()
	defer c.env.ExitScope()

	tb := &TBlock{base: base{Sp: n.Sp}}
	for _, s := range n.Stmts {
		ts, err := c.checkStmt(s)
		if err != nil {
			return nil, err
		}
		tb.Stmts = append(tb.Stmts, ts)
	}
	if n.Result != nil {
		result, err := c.checkExpr(n.Result)
		if err != nil {
			return nil, err
		}
		tb.Result = result
		tb.Ty = result.Type()
	} else {
		tb.Ty = UnitType{}
	}
	return tb, nil
}

func (c *Checker) checkFstExpr(n *ast.FstExpr) (TypedExpr, error) {
	p, err := c.checkExpr(n.Pair)
	if err != nil {
		return nil, err
	}
	if IsUnknown(p.Type()) {
		return &TFst{base: base{Ty: UnknownType{}, Sp: n.Sp}, Pair: p}, nil
	}
	pt, ok := p.Type().(PairType)
	if !ok {
		return nil, typeMismatch(PairType{First: UnknownType{}, Second: UnknownType{}}, p.Type(), n.Sp)
	}
	return &TFst{base: base{Ty: pt.First, Sp: n.Sp}, Pair: p}, nil
}

func (c *Checker) checkSndExpr(n *ast.SndExpr) (TypedExpr, error) {
	p, err := c.checkExpr(n.Pair)
	if err != nil {
		return nil, err
	}
	if IsUnknown(p.Type()) {
		return &TSnd{base: base{Ty: UnknownType{}, Sp: n.Sp}, Pair: p}, nil
	}
	pt, ok := p.Type().(PairType)
	if !ok {
		return nil, typeMismatch(PairType{First: UnknownType{}, Second: UnknownType{}}, p.Type(), n.Sp)
	}
	return &TSnd{base: base{Ty: pt.Second, Sp: n.Sp}, Pair: p}, nil
}

func (c *Checker) checkConsExpr(n *ast.ConsExpr) (TypedExpr, error) {
	head, err := c.checkExpr(n.Head)
	if err != nil {
		return nil, err
	}
	tail, err := c.checkExpr(n.Tail)
	if err != nil {
		return nil, err
	}
	if IsUnknown(tail.Type()) {
		return &TCons{base: base{Ty: ListType{Element: head.Type()}, Sp: n.Sp}, Head: head, Tail: tail}, nil
	}
	lt, ok := tail.Type().(ListType)
	if !ok {
		return nil, typeMismatch(ListType{Element: UnknownType{}}, tail.Type(), n.Tail.Span())
	}
	if !Compatible(head.Type(), lt.Element) {
		return nil, typeMismatch(lt.Element, head.Type(), n.Head.Span())
	}
	elem := lt.Element
	if IsUnknown(elem) {
		elem = head.Type()
	}
	return &TCons{base: base{Ty: ListType{Element: elem}, Sp: n.Sp}, Head: head, Tail: tail}, nil
}

func (c *Checker) checkHeadExpr(n *ast.HeadExpr) (TypedExpr, error) {
	l, err := c.checkExpr(n.List)
	if err != nil {
		return nil, err
	}
	if IsUnknown(l.Type()) {
		return &THead{base: base{Ty: UnknownType{}, Sp: n.Sp}, List: l}, nil
	}
	lt, ok := l.Type().(ListType)
	if !ok {
		return nil, typeMismatch(ListType{Element: UnknownType{}}, l.Type(), n.Sp)
	}
	return &THead{base: base{Ty: lt.Element, Sp: n.Sp}, List: l}, nil
}

func (c *Checker) checkTailExpr(n *ast.TailExpr) (TypedExpr, error) {
	l, err := c.checkExpr(n.List)
	if err != nil {
		return nil, err
	}
	if IsUnknown(l.Type()) {
		return &TTail{base: base{Ty: ListType{Element: UnknownType{}}, Sp: n.Sp}, List: l}, nil
	}
	lt, ok := l.Type().(ListType)
	if !ok {
		return nil, typeMismatch(ListType{Element: UnknownType{}}, l.Type(), n.Sp)
	}
	return &TTail{base: base{Ty: lt, Sp: n.Sp}, List: l}, nil
}

func (c *Checker) checkIfExpr(n *ast.IfExpr) (TypedExpr, error) {
	cond, err := c.checkExpr(n.Cond)
	if err != nil {
		return nil, err
	}
	if !Compatible(cond.Type(), BoolType{}) {
		return nil, typeMismatch(BoolType{}, cond.Type(), n.Cond.Span())
	}

	then, err := c.checkBlock(n.Then)
	if err != nil {
		return nil, err
	}

	if n.Else == nil {
		if !Compatible(then.Type(), UnitType{}) {
			return nil, typeMismatch(UnitType{}, then.Type(), n.Then.Sp)
		}
		return &TIf{base: base{Ty: UnitType{}, Sp: n.Sp}, Cond: cond, Then: then}, nil
	}

	els, err := c.checkBlock(n.Else)
	if err != nil {
		return nil, err
	}

	var result Type
	if Compatible(then.Type(), els.Type()) {
		result = then.Type()
		if IsUnknown(result) {
			result = els.Type()
		}
	} else {
		result = SumType{Left: then.Type(), Right: els.Type()}
	}
	return &TIf{base: base{Ty: result, Sp: n.Sp}, Cond: cond, Then: then, Else: els}, nil
}

func (c *Checker) checkForExpr(n *ast.ForExpr) (TypedExpr, error) {
	iter, err := c.checkExpr(n.Iter)
	if err != nil {
		return nil, err
	}
	elemType := Type(UnknownType{})
	if !IsUnknown(iter.Type()) {
		lt, ok := iter.Type().(ListType)
		if !ok {
			return nil, typeMismatch(ListType{Element: UnknownType{}}, iter.Type(), n.Iter.Span())
		}
		elemType = lt.Element
	}

	c.env.EnterScope()
	c.env.Bind(n.Var, elemType)
	body, err := c.checkBlock(n.Body)
	c.env.ExitScope()
	if err != nil {
		return nil, err
	}
	return &TFor{base: base{Ty: UnitType{}, Sp: n.Sp}, Var: n.Var, Iter: iter, Body: body}, nil
}

func (c *Checker) checkRangeExpr(n *ast.RangeExpr) (TypedExpr, error) {
	lo, err := c.checkExpr(n.Start)
	if err != nil {
		return nil, err
	}
	hi, err := c.checkExpr(n.End)
	if err != nil {
		return nil, err
	}
	if !Compatible(lo.Type(), IntType{}) {
		return nil, typeMismatch(IntType{}, lo.Type(), n.Start.Span())
	}
	if !Compatible(hi.Type(), IntType{}) {
		return nil, typeMismatch(IntType{}, hi.Type(), n.End.Span())
	}
	return &TRange{base: base{Ty: ListType{Element: IntType{}}, Sp: n.Sp}, Start: lo, End: hi}, nil
}

func (c *Checker) checkConcatExpr(n *ast.ConcatExpr) (TypedExpr, error) {
	l, err := c.checkExpr(n.Left)
	if err != nil {
		return nil, err
	}
	r, err := c.checkExpr(n.Right)
	if err != nil {
		return nil, err
	}
	if !Compatible(l.Type(), StringType{}) {
		return nil, typeMismatch(StringType{}, l.Type(), n.Left.Span())
	}
	if !Compatible(r.Type(), StringType{}) {
		return nil, typeMismatch(StringType{}, r.Type(), n.Right.Span())
	}
	return &TConcat{base: base{Ty: StringType{}, Sp: n.Sp}, Left: l, Right: r}, nil
}

func (c *Checker) checkCharAtExpr(n *ast.CharAtExpr) (TypedExpr, error) {
	s, err := c.checkExpr(n.Str)
	if err != nil {
		return nil, err
	}
	idx, err := c.checkExpr(n.Index)
	if err != nil {
		return nil, err
	}
	if !Compatible(s.Type(), StringType{}) {
		return nil, typeMismatch(StringType{}, s.Type(), n.Str.Span())
	}
	if !Compatible(idx.Type(), IntType{}) {
		return nil, typeMismatch(IntType{}, idx.Type(), n.Index.Span())
	}
	return &TCharAt{base: base{Ty: StringType{}, Sp: n.Sp}, Str: s, Index: idx}, nil
}

func (c *Checker) checkLengthExpr(n *ast.LengthExpr) (TypedExpr, error) {
	s, err := c.checkExpr(n.Str)
	if err != nil {
		return nil, err
	}
	if !Compatible(s.Type(), StringType{}) {
		return nil, typeMismatch(StringType{}, s.Type(), n.Str.Span())
	}
	return &TLength{base: base{Ty: IntType{}, Sp: n.Sp}, Str: s}, nil
}

func (c *Checker) checkCaseExpr(n *ast.CaseExpr) (TypedExpr, error) {
	scrutinee, err := c.checkExpr(n.Scrutinee)
	if err != nil {
		return nil, err
	}
	var leftType, rightType Type = UnknownType{}, UnknownType{}
	if !IsUnknown(scrutinee.Type()) {
		st, ok := scrutinee.Type().(SumType)
		if !ok {
			return nil, typeMismatch(SumType{Left: UnknownType{}, Right: UnknownType{}}, scrutinee.Type(), n.Scrutinee.Span())
		}
		leftType, rightType = st.Left, st.Right
	}

	c.env.EnterScope()
	c.env.Bind(n.LeftName, leftType)
	leftBody, err := c.checkExpr(n.LeftBody)
	c.env.ExitScope()
	if err != nil {
		return nil, err
	}

	c.env.EnterScope()
	c.env.Bind(n.RightName, rightType)
	rightBody, err := c.checkExpr(n.RightBody)
	c.env.ExitScope()
	if err != nil {
		return nil, err
	}

	if !Compatible(leftBody.Type(), rightBody.Type()) {
		return nil, typeMismatch(leftBody.Type(), rightBody.Type(), n.RightBody.Span())
	}
	result := leftBody.Type()
	if IsUnknown(result) {
		result = rightBody.Type()
	}

	return &TCase{
		base:      base{Ty: result, Sp: n.Sp},
		Scrutinee: scrutinee,
		LeftName:  n.LeftName, RightName: n.RightName,
		LeftBody: leftBody, RightBody: rightBody,
	}, nil
}
