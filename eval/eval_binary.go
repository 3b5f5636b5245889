/*
File    : corrosion/eval/eval_binary.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/corrosion/token"
	"github.com/akashmaji946/corrosion/types"
)

// evalBinary implements the fixed operator table at the value level:
// by this point the checker has already ruled out any combination not
// in types.binaryResult, so failures here are defensive TypeErrors,
// never expected on a well-typed program (testable property 5).
func (in *Interpreter) evalBinary(n *types.TBinary) (Value, error) {
	left, err := in.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	if li, ok := left.(IntValue); ok {
		if ri, ok := right.(IntValue); ok {
			return intOp(li, n.Op, ri, n.Sp)
		}
	}
	if lb, ok := left.(BoolValue); ok {
		if rb, ok := right.(BoolValue); ok {
			return boolOp(lb, n.Op, rb, n.Sp)
		}
	}
	if ls, ok := left.(StringValue); ok {
		if rs, ok := right.(StringValue); ok {
			return stringOp(ls, n.Op, rs, n.Sp)
		}
	}
	if n.Op == token.EQ {
		return BoolValue{Value: Equal(left, right)}, nil
	}
	if n.Op == token.NOT_EQ {
		return BoolValue{Value: !Equal(left, right)}, nil
	}
	return nil, &Error{Kind: TypeError, Message: "operands do not support `" + string(n.Op) + "`", Span: n.Sp}
}

func intOp(l IntValue, op token.Type, r IntValue, span token.Span) (Value, error) {
	switch op {
	case token.PLUS:
		return IntValue{Value: l.Value + r.Value}, nil
	case token.MINUS:
		return IntValue{Value: l.Value - r.Value}, nil
	case token.STAR:
		return IntValue{Value: l.Value * r.Value}, nil
	case token.SLASH:
		if r.Value == 0 {
			return nil, &Error{Kind: DivisionByZero, Span: span}
		}
		// Go's native int64 division truncates toward zero (§9 open
		// question decision), consistent with the checker's Int result.
		return IntValue{Value: l.Value / r.Value}, nil
	case token.EQ:
		return BoolValue{Value: l.Value == r.Value}, nil
	case token.NOT_EQ:
		return BoolValue{Value: l.Value != r.Value}, nil
	case token.LT:
		return BoolValue{Value: l.Value < r.Value}, nil
	case token.LT_EQ:
		return BoolValue{Value: l.Value <= r.Value}, nil
	case token.GT:
		return BoolValue{Value: l.Value > r.Value}, nil
	case token.GT_EQ:
		return BoolValue{Value: l.Value >= r.Value}, nil
	default:
		return nil, &Error{Kind: TypeError, Message: "Int does not support `" + string(op) + "`", Span: span}
	}
}

func boolOp(l BoolValue, op token.Type, r BoolValue, span token.Span) (Value, error) {
	switch op {
	case token.EQ:
		return BoolValue{Value: l.Value == r.Value}, nil
	case token.NOT_EQ:
		return BoolValue{Value: l.Value != r.Value}, nil
	case token.AND:
		return BoolValue{Value: l.Value && r.Value}, nil
	case token.OR:
		return BoolValue{Value: l.Value || r.Value}, nil
	default:
		return nil, &Error{Kind: TypeError, Message: "Bool does not support `" + string(op) + "`", Span: span}
	}
}

func stringOp(l StringValue, op token.Type, r StringValue, span token.Span) (Value, error) {
	switch op {
	case token.PLUS:
		return StringValue{Value: l.Value + r.Value}, nil
	case token.EQ:
		return BoolValue{Value: l.Value == r.Value}, nil
	case token.NOT_EQ:
		return BoolValue{Value: l.Value != r.Value}, nil
	default:
		return nil, &Error{Kind: TypeError, Message: "String does not support `" + string(op) + "`", Span: span}
	}
}

func (in *Interpreter) evalUnary(n *types.TUnary) (Value, error) {
	v, err := in.evalExpr(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case token.BANG:
		b, ok := v.(BoolValue)
		if !ok {
			return nil, &Error{Kind: TypeError, Message: "`!` requires Bool", Span: n.Sp}
		}
		return BoolValue{Value: !b.Value}, nil
	case token.MINUS:
		i, ok := v.(IntValue)
		if !ok {
			return nil, &Error{Kind: TypeError, Message: "unary `-` requires Int", Span: n.Sp}
		}
		return IntValue{Value: -i.Value}, nil
	default:
		return nil, &Error{Kind: TypeError, Message: "unsupported unary operator `" + string(n.Op) + "`", Span: n.Sp}
	}
}
