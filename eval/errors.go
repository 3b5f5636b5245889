/*
File    : corrosion/eval/errors.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/corrosion/token"
)

// Kind distinguishes the runtime error taxonomy named by the language
// contract's §7 error handling design, runtime tier.
type Kind int

const (
	RuntimeMessage Kind = iota
	DivisionByZero
	UndefinedVariable
	TypeError
	NotCallable
	IndexOutOfBounds
)

// Error is the evaluator's single error type; Kind selects which
// fields are populated and how Error() formats the message.
type Error struct {
	Kind    Kind
	Message string
	Name    string
	Index   int
	Length  int
	Span    token.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case DivisionByZero:
		return "runtime error: division by zero"
	case UndefinedVariable:
		return fmt.Sprintf("runtime error: undefined variable `%s`", e.Name)
	case TypeError:
		return "runtime error: " + e.Message
	case NotCallable:
		return "runtime error: value is not callable"
	case IndexOutOfBounds:
		return fmt.Sprintf("runtime error: index %d out of bounds for length %d", e.Index, e.Length)
	default:
		return "runtime error: " + e.Message
	}
}
