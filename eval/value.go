/*
File    : corrosion/eval/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strconv"
	"strings"

	"github.com/akashmaji946/corrosion/types"
)

// Value is a runtime value produced by evaluating a TypedExpr. Variants
// mirror the language contract's value universe one-for-one.
type Value interface {
	TypeName() string
	ToString() string
	valueNode()
}

type IntValue struct{ Value int64 }

type BoolValue struct{ Value bool }

type StringValue struct{ Value string }

type UnitValue struct{}

type ListValue struct{ Elements []Value }

type PairValue struct{ First, Second Value }

// Closure captures the environment visible at the point a function
// literal was evaluated, per the contract's "structural clone of the
// entire visible scope stack at closure-construction time."
type Closure struct {
	Param string
	Body  *types.TBlock
	Env   *Environment
}

// RecursiveFn is the representation a `fn name(param) { body }`
// declaration builds before wrapping itself in a FixedPoint: Name is
// re-bound to that same FixedPoint in a fresh scope at the start of
// every call, giving the body a working self-reference without a
// mutable cell. Distinct from a plain Closure wrapped by explicit
// `fix`, whose self-application protocol instead evaluates an inner
// closure before applying it — see Interpreter.apply.
type RecursiveFn struct {
	Name  string
	Param string
	Body  *types.TBlock
	Env   *Environment
}

type LeftInject struct{ Value Value }

type RightInject struct{ Value Value }

// FixedPoint wraps either a closure of shape fn(self) -> fn(x) -> body
// built by explicit fix, which applying first self-applies (rebinding
// the recursive name to the same fixed point) before applying the inner
// closure to the argument, or a RecursiveFn built by a `fn`
// declaration, which is applied directly.
type FixedPoint struct{ Function Value }

// ModuleValue is the runtime result of an import: the imported file's
// top-level bindings, captured once the child interpreter finishes.
type ModuleValue struct {
	Name    string
	Exports map[string]Value
}

func (IntValue) valueNode()    {}
func (BoolValue) valueNode()   {}
func (StringValue) valueNode() {}
func (UnitValue) valueNode()   {}
func (ListValue) valueNode()   {}
func (PairValue) valueNode()   {}
func (*Closure) valueNode()     {}
func (*RecursiveFn) valueNode() {}
func (LeftInject) valueNode()  {}
func (RightInject) valueNode() {}
func (*FixedPoint) valueNode() {}
func (*ModuleValue) valueNode() {}

func (IntValue) TypeName() string    { return "Int" }
func (BoolValue) TypeName() string   { return "Bool" }
func (StringValue) TypeName() string { return "String" }
func (UnitValue) TypeName() string   { return "Unit" }
func (ListValue) TypeName() string   { return "List" }
func (PairValue) TypeName() string   { return "Pair" }
func (*Closure) TypeName() string     { return "Function" }
func (*RecursiveFn) TypeName() string { return "Function" }
func (LeftInject) TypeName() string  { return "LeftInject" }
func (RightInject) TypeName() string { return "RightInject" }
func (*FixedPoint) TypeName() string { return "FixedPoint" }
func (*ModuleValue) TypeName() string { return "Module" }

// ToString renders the stable textual form named by the language
// contract: decimal integers, true/false, strings verbatim with no
// quotes, [a, b, c] lists, (a, b) pairs, <function> closures, inl(v)/
// inr(v) injections, <recursive> fixed points, <module NAME> modules.
func (v IntValue) ToString() string  { return strconv.FormatInt(v.Value, 10) }
func (v BoolValue) ToString() string { return strconv.FormatBool(v.Value) }
func (v StringValue) ToString() string { return v.Value }
func (UnitValue) ToString() string   { return "()" }

func (v ListValue) ToString() string {
	parts := make([]string, len(v.Elements))
	for i, e := range v.Elements {
		parts[i] = e.ToString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (v PairValue) ToString() string {
	return "(" + v.First.ToString() + ", " + v.Second.ToString() + ")"
}

func (*Closure) ToString() string     { return "<function>" }
func (*RecursiveFn) ToString() string { return "<function>" }

func (v LeftInject) ToString() string  { return "inl(" + v.Value.ToString() + ")" }
func (v RightInject) ToString() string { return "inr(" + v.Value.ToString() + ")" }

func (*FixedPoint) ToString() string { return "<recursive>" }

func (v *ModuleValue) ToString() string { return "<module " + v.Name + ">" }

// Equal implements the contract's structural deep equality, which is
// always false for closures and fixed points (§9 open-question
// decision) rather than panicking or comparing captured environments.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case IntValue:
		bv, ok := b.(IntValue)
		return ok && av.Value == bv.Value
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av.Value == bv.Value
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av.Value == bv.Value
	case UnitValue:
		_, ok := b.(UnitValue)
		return ok
	case ListValue:
		bv, ok := b.(ListValue)
		if !ok || len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case PairValue:
		bv, ok := b.(PairValue)
		return ok && Equal(av.First, bv.First) && Equal(av.Second, bv.Second)
	case LeftInject:
		bv, ok := b.(LeftInject)
		return ok && Equal(av.Value, bv.Value)
	case RightInject:
		bv, ok := b.(RightInject)
		return ok && Equal(av.Value, bv.Value)
	case *Closure, *FixedPoint, *RecursiveFn:
		return false
	case *ModuleValue:
		return false
	default:
		return false
	}
}
