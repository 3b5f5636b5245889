/*
File    : corrosion/eval/eval_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/token"
	"github.com/akashmaji946/corrosion/types"
)

func (in *Interpreter) evalExpr(e types.TypedExpr) (Value, error) {
	switch n := e.(type) {
	case *types.TInt:
		return IntValue{Value: n.Value}, nil
	case *types.TBool:
		return BoolValue{Value: n.Value}, nil
	case *types.TString:
		return StringValue{Value: n.Value}, nil
	case *types.TIdent:
		return in.evalIdent(n)
	case *types.TQualifiedIdent:
		return in.evalQualifiedIdent(n)
	case *types.TBinary:
		return in.evalBinary(n)
	case *types.TUnary:
		return in.evalUnary(n)
	case *types.TFunc:
		return &Closure{Param: n.Param, Body: n.Body, Env: in.env.Snapshot()}, nil
	case *types.TCall:
		return in.evalCall(n)
	case *types.TList:
		return in.evalList(n)
	case *types.TPair:
		first, err := in.evalExpr(n.First)
		if err != nil {
			return nil, err
		}
		second, err := in.evalExpr(n.Second)
		if err != nil {
			return nil, err
		}
		return PairValue{First: first, Second: second}, nil
	case *types.TInject:
		v, err := in.evalExpr(n.Value)
		if err != nil {
			return nil, err
		}
		if n.Which == ast.LeftSide {
			return LeftInject{Value: v}, nil
		}
		return RightInject{Value: v}, nil
	case *types.TFix:
		return in.evalFix(n)
	case *types.TBlock:
		return in.evalBlock(n, in.env.Child())
	case *types.TFst:
		return in.evalFst(n)
	case *types.TSnd:
		return in.evalSnd(n)
	case *types.TCons:
		return in.evalCons(n)
	case *types.THead:
		return in.evalHead(n)
	case *types.TTail:
		return in.evalTail(n)
	case *types.TPrint:
		return in.evalPrint(n)
	case *types.TIf:
		return in.evalIf(n)
	case *types.TFor:
		return in.evalFor(n)
	case *types.TRange:
		return in.evalRange(n)
	case *types.TConcat:
		return in.evalConcat(n)
	case *types.TCharAt:
		return in.evalCharAt(n)
	case *types.TLength:
		return in.evalLength(n)
	case *types.TToString:
		v, err := in.evalExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return StringValue{Value: v.ToString()}, nil
	case *types.TTypeOf:
		return StringValue{Value: n.Value.Type().String()}, nil
	case *types.TCase:
		return in.evalCase(n)
	default:
		panic("eval: unknown typed expression variant")
	}
}

func (in *Interpreter) evalIdent(n *types.TIdent) (Value, error) {
	v, ok := in.env.Lookup(n.Name)
	if !ok {
		return nil, &Error{Kind: UndefinedVariable, Name: n.Name, Span: n.Sp}
	}
	return v, nil
}

func (in *Interpreter) evalQualifiedIdent(n *types.TQualifiedIdent) (Value, error) {
	modVal, ok := in.env.Lookup(n.Module)
	if !ok {
		return nil, &Error{Kind: UndefinedVariable, Name: n.Module, Span: n.Sp}
	}
	mod, ok := modVal.(*ModuleValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "`" + n.Module + "` is not a module", Span: n.Sp}
	}
	v, ok := mod.Exports[n.Name]
	if !ok {
		return nil, &Error{Kind: UndefinedVariable, Name: n.Module + "." + n.Name, Span: n.Sp}
	}
	return v, nil
}

func (in *Interpreter) evalBlock(n *types.TBlock, scope *Environment) (Value, error) {
	inner := in.withEnv(scope)
	for _, s := range n.Stmts {
		if _, err := inner.evalStmt(s); err != nil {
			return nil, err
		}
	}
	if n.Result == nil {
		return UnitValue{}, nil
	}
	return inner.evalExpr(n.Result)
}

func (in *Interpreter) evalFix(n *types.TFix) (Value, error) {
	f, err := in.evalExpr(n.Func)
	if err != nil {
		return nil, err
	}
	if _, ok := f.(*Closure); !ok {
		return nil, &Error{Kind: TypeError, Message: "fix requires a function", Span: n.Sp}
	}
	return &FixedPoint{Function: f}, nil
}

// evalCall implements the contract's application rule: evaluate the
// applicand, then the argument (left to right); a Closure extends its
// captured environment with param -> argument in a fresh inner scope;
// a FixedPoint wrapping closure lambda self. lambda x. body first
// self-applies (binding self -> the same FixedPoint), evaluates the
// inner lambda to a Closure, then applies that to the argument.
func (in *Interpreter) evalCall(n *types.TCall) (Value, error) {
	fn, err := in.evalExpr(n.Func)
	if err != nil {
		return nil, err
	}
	arg, err := in.evalExpr(n.Arg)
	if err != nil {
		return nil, err
	}
	return in.apply(fn, arg, n.Sp)
}

func (in *Interpreter) apply(fn, arg Value, span token.Span) (Value, error) {
	switch f := fn.(type) {
	case *Closure:
		scope := f.Env.Child()
		scope.Bind(f.Param, arg)
		return in.evalBlock(f.Body, scope)
	case *RecursiveFn:
		scope := f.Env.Child()
		scope.Bind(f.Name, &FixedPoint{Function: f})
		scope.Bind(f.Param, arg)
		return in.evalBlock(f.Body, scope)
	case *FixedPoint:
		return in.applyFixedPoint(f, arg, span)
	default:
		return nil, &Error{Kind: NotCallable, Span: span}
	}
}

// applyFixedPoint implements the contract's fix-application rule for
// an explicit fix(f): self-apply first (bind self -> the same
// FixedPoint), evaluate the wrapped lambda.self.lambda.x.body closure
// to an inner closure, then apply that inner closure to arg. A
// FixedPoint wrapping a RecursiveFn (built by a `fn` declaration)
// re-binds its own name directly in Interpreter.apply instead, since
// RecursiveFn already carries both the self name and the real
// parameter in one frame.
func (in *Interpreter) applyFixedPoint(f *FixedPoint, arg Value, span token.Span) (Value, error) {
	switch wrapped := f.Function.(type) {
	case *RecursiveFn:
		return in.apply(wrapped, arg, span)
	case *Closure:
		scope := wrapped.Env.Child()
		scope.Bind(wrapped.Param, f)
		inner, err := in.evalBlock(wrapped.Body, scope)
		if err != nil {
			return nil, err
		}
		return in.apply(inner, arg, span)
	default:
		return nil, &Error{Kind: NotCallable, Span: span}
	}
}

func (in *Interpreter) evalList(n *types.TList) (Value, error) {
	elems := make([]Value, len(n.Elements))
	for i, el := range n.Elements {
		v, err := in.evalExpr(el)
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return ListValue{Elements: elems}, nil
}

func (in *Interpreter) evalFst(n *types.TFst) (Value, error) {
	v, err := in.evalExpr(n.Pair)
	if err != nil {
		return nil, err
	}
	p, ok := v.(PairValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "fst requires a pair", Span: n.Sp}
	}
	return p.First, nil
}

func (in *Interpreter) evalSnd(n *types.TSnd) (Value, error) {
	v, err := in.evalExpr(n.Pair)
	if err != nil {
		return nil, err
	}
	p, ok := v.(PairValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "snd requires a pair", Span: n.Sp}
	}
	return p.Second, nil
}

// evalCons copies Head followed by Tail's elements into a brand new
// slice, so an earlier-held ListValue never shares its backing array
// with the new list and is never observably mutated.
func (in *Interpreter) evalCons(n *types.TCons) (Value, error) {
	head, err := in.evalExpr(n.Head)
	if err != nil {
		return nil, err
	}
	tailVal, err := in.evalExpr(n.Tail)
	if err != nil {
		return nil, err
	}
	tail, ok := tailVal.(ListValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "cons requires a list tail", Span: n.Sp}
	}
	out := make([]Value, 0, len(tail.Elements)+1)
	out = append(out, head)
	out = append(out, tail.Elements...)
	return ListValue{Elements: out}, nil
}

func (in *Interpreter) evalHead(n *types.THead) (Value, error) {
	v, err := in.evalExpr(n.List)
	if err != nil {
		return nil, err
	}
	list, ok := v.(ListValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "head requires a list", Span: n.Sp}
	}
	if len(list.Elements) == 0 {
		return nil, &Error{Kind: IndexOutOfBounds, Index: 0, Length: 0, Span: n.Sp}
	}
	return list.Elements[0], nil
}

func (in *Interpreter) evalTail(n *types.TTail) (Value, error) {
	v, err := in.evalExpr(n.List)
	if err != nil {
		return nil, err
	}
	list, ok := v.(ListValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "tail requires a list", Span: n.Sp}
	}
	if len(list.Elements) == 0 {
		return nil, &Error{Kind: IndexOutOfBounds, Index: 0, Length: 0, Span: n.Sp}
	}
	return ListValue{Elements: list.Elements[1:]}, nil
}

func (in *Interpreter) evalIf(n *types.TIf) (Value, error) {
	cond, err := in.evalExpr(n.Cond)
	if err != nil {
		return nil, err
	}
	b, ok := cond.(BoolValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "if condition must be Bool", Span: n.Cond.Span()}
	}
	if b.Value {
		return in.evalBlock(n.Then, in.env.Child())
	}
	if n.Else != nil {
		return in.evalBlock(n.Else, in.env.Child())
	}
	return UnitValue{}, nil
}

// evalFor iterates Iter left-to-right, discarding the body's result
// each time; the overall result is always Unit, per the contract.
func (in *Interpreter) evalFor(n *types.TFor) (Value, error) {
	iterVal, err := in.evalExpr(n.Iter)
	if err != nil {
		return nil, err
	}
	list, ok := iterVal.(ListValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "for requires a list to iterate", Span: n.Iter.Span()}
	}
	for _, elem := range list.Elements {
		scope := in.env.Child()
		scope.Bind(n.Var, elem)
		if _, err := in.evalBlock(n.Body, scope); err != nil {
			return nil, err
		}
	}
	return UnitValue{}, nil
}

// evalRange yields [a, a+1, ..., b-1]; empty if a >= b.
func (in *Interpreter) evalRange(n *types.TRange) (Value, error) {
	startVal, err := in.evalExpr(n.Start)
	if err != nil {
		return nil, err
	}
	endVal, err := in.evalExpr(n.End)
	if err != nil {
		return nil, err
	}
	start, ok := startVal.(IntValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "range bounds must be Int", Span: n.Start.Span()}
	}
	end, ok := endVal.(IntValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "range bounds must be Int", Span: n.End.Span()}
	}
	var elems []Value
	for i := start.Value; i < end.Value; i++ {
		elems = append(elems, IntValue{Value: i})
	}
	return ListValue{Elements: elems}, nil
}

func (in *Interpreter) evalConcat(n *types.TConcat) (Value, error) {
	l, err := in.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	r, err := in.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	ls, ok := l.(StringValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "concat requires strings", Span: n.Sp}
	}
	rs, ok := r.(StringValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "concat requires strings", Span: n.Sp}
	}
	return StringValue{Value: ls.Value + rs.Value}, nil
}

// evalCharAt indexes by 0-based code point, not byte offset, per the
// contract's UTF-8 string built-in semantics.
func (in *Interpreter) evalCharAt(n *types.TCharAt) (Value, error) {
	sv, err := in.evalExpr(n.Str)
	if err != nil {
		return nil, err
	}
	iv, err := in.evalExpr(n.Index)
	if err != nil {
		return nil, err
	}
	s, ok := sv.(StringValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "character-at requires a string", Span: n.Sp}
	}
	idx, ok := iv.(IntValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "character-at requires an Int index", Span: n.Sp}
	}
	runes := []rune(s.Value)
	if idx.Value < 0 || int(idx.Value) >= len(runes) {
		return nil, &Error{Kind: IndexOutOfBounds, Index: int(idx.Value), Length: len(runes), Span: n.Sp}
	}
	return StringValue{Value: string(runes[idx.Value])}, nil
}

func (in *Interpreter) evalLength(n *types.TLength) (Value, error) {
	v, err := in.evalExpr(n.Str)
	if err != nil {
		return nil, err
	}
	s, ok := v.(StringValue)
	if !ok {
		return nil, &Error{Kind: TypeError, Message: "length requires a string", Span: n.Sp}
	}
	return IntValue{Value: int64(len([]rune(s.Value)))}, nil
}

func (in *Interpreter) evalPrint(n *types.TPrint) (Value, error) {
	v, err := in.evalExpr(n.Value)
	if err != nil {
		return nil, err
	}
	in.print(v.ToString())
	return UnitValue{}, nil
}

// evalCase dispatches on the scrutinee's injection side, binding the
// matching branch's pattern name in a fresh inner scope.
func (in *Interpreter) evalCase(n *types.TCase) (Value, error) {
	v, err := in.evalExpr(n.Scrutinee)
	if err != nil {
		return nil, err
	}
	switch inj := v.(type) {
	case LeftInject:
		scope := in.env.Child()
		scope.Bind(n.LeftName, inj.Value)
		inner := in.withEnv(scope)
		return inner.evalExpr(n.LeftBody)
	case RightInject:
		scope := in.env.Child()
		scope.Bind(n.RightName, inj.Value)
		inner := in.withEnv(scope)
		return inner.evalExpr(n.RightBody)
	default:
		return nil, &Error{Kind: TypeError, Message: "case requires a sum value", Span: n.Scrutinee.Span()}
	}
}
