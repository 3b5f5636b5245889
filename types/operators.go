/*
File    : corrosion/types/operators.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package types

import "github.com/akashmaji946/corrosion/token"

func isArith(op token.Type) bool {
	switch op {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH:
		return true
	}
	return false
}

func isComparison(op token.Type) bool {
	switch op {
	case token.EQ, token.NOT_EQ, token.LT, token.LT_EQ, token.GT, token.GT_EQ:
		return true
	}
	return false
}

func isEquality(op token.Type) bool {
	return op == token.EQ || op == token.NOT_EQ
}

func isLogic(op token.Type) bool {
	return op == token.AND || op == token.OR
}

// binaryResult implements the fixed operator table from the language
// contract (Int arithmetic/comparison, Bool equality/logic, String
// concatenation/equality, Error propagation, Unknown permissiveness),
// grounded on original_source's Type::can_binary_op. Returns (nil,
// false) when the combination is not in the table.
func binaryResult(left Type, op token.Type, right Type) (Type, bool) {
	if IsError(left) || IsError(right) {
		return ErrorType{}, true
	}

	_, lInt := left.(IntType)
	_, rInt := right.(IntType)
	if lInt && rInt {
		if isArith(op) {
			return IntType{}, true
		}
		if isComparison(op) {
			return BoolType{}, true
		}
	}

	_, lBool := left.(BoolType)
	_, rBool := right.(BoolType)
	if lBool && rBool {
		if isEquality(op) || isLogic(op) {
			return BoolType{}, true
		}
	}

	_, lStr := left.(StringType)
	_, rStr := right.(StringType)
	if lStr && rStr {
		if op == token.PLUS {
			return StringType{}, true
		}
		if isEquality(op) {
			return BoolType{}, true
		}
	}

	if IsUnknown(left) || IsUnknown(right) {
		if isComparison(op) || isLogic(op) {
			return BoolType{}, true
		}
		if IsUnknown(left) {
			return right, true
		}
		return left, true
	}

	return nil, false
}
