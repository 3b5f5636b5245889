/*
File    : corrosion/types/compat.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package types

// Compatible implements the structural relation `~`: reflexive on
// ground types, Unknown compatible with anything, congruent over the
// Function/List/Pair/Sum constructors. It is intentionally not
// transitive (Int ~ Unknown ~ Bool holds, Int ~ Bool does not) —
// ported from original_source's TypeCompatibility::types_compatible.
func Compatible(a, b Type) bool {
	if IsUnknown(a) || IsUnknown(b) {
		return true
	}
	switch at := a.(type) {
	case FunctionType:
		bt, ok := b.(FunctionType)
		return ok && Compatible(at.Param, bt.Param) && Compatible(at.Result, bt.Result)
	case ListType:
		bt, ok := b.(ListType)
		return ok && Compatible(at.Element, bt.Element)
	case PairType:
		bt, ok := b.(PairType)
		return ok && Compatible(at.First, bt.First) && Compatible(at.Second, bt.Second)
	case SumType:
		bt, ok := b.(SumType)
		return ok && Compatible(at.Left, bt.Left) && Compatible(at.Right, bt.Right)
	case RecursiveType:
		bt, ok := b.(RecursiveType)
		return ok && Compatible(at.Inner, bt.Inner)
	default:
		return structurallyEqual(a, b)
	}
}

func structurallyEqual(a, b Type) bool {
	switch a.(type) {
	case IntType:
		_, ok := b.(IntType)
		return ok
	case BoolType:
		_, ok := b.(BoolType)
		return ok
	case StringType:
		_, ok := b.(StringType)
		return ok
	case UnitType:
		_, ok := b.(UnitType)
		return ok
	case ErrorType:
		_, ok := b.(ErrorType)
		return ok
	default:
		return false
	}
}

// RefineWithAnnotation walks an inferred type and a user annotation in
// parallel: Unknown slots in the inferred tree adopt the annotation's
// concrete slot, other slots are kept as inferred (the caller is
// expected to have already verified they satisfy Compatible).
// Ported from original_source's refine_type_with_annotation.
func RefineWithAnnotation(inferred, annotated Type) Type {
	switch inf := inferred.(type) {
	case FunctionType:
		ann, ok := annotated.(FunctionType)
		if !ok {
			return inferred
		}
		param, result := inf.Param, inf.Result
		if IsUnknown(param) {
			param = ann.Param
		}
		if IsUnknown(result) {
			result = ann.Result
		}
		return FunctionType{Param: param, Result: result}
	case ListType:
		ann, ok := annotated.(ListType)
		if !ok {
			return inferred
		}
		elem := inf.Element
		if IsUnknown(elem) {
			elem = ann.Element
		}
		return ListType{Element: elem}
	case SumType:
		ann, ok := annotated.(SumType)
		if !ok {
			return inferred
		}
		left, right := inf.Left, inf.Right
		if IsUnknown(left) {
			left = ann.Left
		}
		if IsUnknown(right) {
			right = ann.Right
		}
		return SumType{Left: left, Right: right}
	case PairType:
		ann, ok := annotated.(PairType)
		if !ok {
			return inferred
		}
		first, second := inf.First, inf.Second
		if IsUnknown(first) {
			first = ann.First
		}
		if IsUnknown(second) {
			second = ann.Second
		}
		return PairType{First: first, Second: second}
	case UnknownType:
		return annotated
	default:
		return inferred
	}
}

// RefineWithContext replaces Unknown components of original with the
// corresponding concrete component of context, recursing through
// List/Sum/Function shapes. Used when an Unknown synthesized at one
// use site must adopt the shape implied by another use site.
// Ported from original_source's refine_type_with_context.
func RefineWithContext(original, context Type) Type {
	if IsUnknown(original) && !IsUnknown(context) {
		return context
	}
	switch o := original.(type) {
	case ListType:
		if c, ok := context.(ListType); ok {
			return ListType{Element: RefineWithContext(o.Element, c.Element)}
		}
	case SumType:
		if c, ok := context.(SumType); ok {
			return SumType{
				Left:  RefineWithContext(o.Left, c.Left),
				Right: RefineWithContext(o.Right, c.Right),
			}
		}
	case FunctionType:
		if c, ok := context.(FunctionType); ok {
			return FunctionType{
				Param:  RefineWithContext(o.Param, c.Param),
				Result: RefineWithContext(o.Result, c.Result),
			}
		}
	}
	return original
}
