/*
File    : corrosion/parser/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/corrosion/token"
)

// Kind distinguishes the three parse-error variants named in the
// language contract.
type Kind int

const (
	UnexpectedToken Kind = iota
	UnexpectedEOF
	InvalidExpression
)

// Error is the parser's single error type; Parse reports the first one
// it meets and stops, mirroring go-mix's "first wins" contract for the
// public API even though the internal Errors slice accumulates more.
type Error struct {
	Kind     Kind
	Message  string
	Expected string
	Found    token.Token
	Span     token.Span
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("[%s] expected %s, found %s", e.Span, e.Expected, e.Found)
	case UnexpectedEOF:
		return fmt.Sprintf("[%s] unexpected end of input", e.Span)
	default:
		return fmt.Sprintf("[%s] invalid expression: %s", e.Span, e.Message)
	}
}
