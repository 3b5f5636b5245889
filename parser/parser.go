/*
File    : corrosion/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a hand-written recursive-descent parser
// with operator-precedence climbing for Corrosion, in the spirit of
// go-mix's Pratt parser: two-token lookahead (cur/peek), an internal
// error slice the parser keeps appending to for diagnostic purposes,
// and a Parse entry point that stops at the first syntax error.
package parser

import (
	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/lexer"
	"github.com/akashmaji946/corrosion/token"
)

// Parser converts a token stream into a Program, or the first syntax
// error encountered.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token

	// Errors accumulates every diagnostic seen while parsing, even
	// though Parse itself returns only the first one. Kept around as
	// go-mix keeps its Errors slice: a diagnostic aid, not the public
	// contract.
	Errors []string

	firstErr error
}

// New creates a Parser over src, priming the two-token lookahead.
func New(src string) (*Parser, error) {
	p := &Parser{lex: lexer.New(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse runs the full grammar over the token stream and returns the
// Program, or the first error (lexical, or syntactic) encountered.
func Parse(src string) (*ast.Program, error) {
	p, err := New(src)
	if err != nil {
		return nil, err
	}
	return p.ParseProgram()
}

// HasErrors reports whether any diagnostic was recorded, mirroring
// go-mix's HasErrors/GetErrors pair.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// GetErrors returns every diagnostic recorded during parsing.
func (p *Parser) GetErrors() []string { return p.Errors }

func (p *Parser) addError(err error) {
	p.Errors = append(p.Errors, err.Error())
	if p.firstErr == nil {
		p.firstErr = err
	}
}

// advance shifts peek into cur and scans the next token from the
// lexer. A lexical error is recorded and returned immediately.
func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.lex.Next()
	if err != nil {
		p.addError(err)
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expect checks that cur matches t, consumes it, and advances. On
// mismatch it records and returns an UnexpectedToken error.
func (p *Parser) expect(t token.Type, expected string) error {
	if !p.curIs(t) {
		err := p.unexpected(expected)
		return err
	}
	return p.advance()
}

func (p *Parser) unexpected(expected string) error {
	var err *Error
	if p.curIs(token.EOF) {
		err = &Error{Kind: UnexpectedEOF, Span: p.cur.Span}
	} else {
		err = &Error{Kind: UnexpectedToken, Expected: expected, Found: p.cur, Span: p.cur.Span}
	}
	p.addError(err)
	return err
}

func (p *Parser) invalid(msg string, span token.Span) error {
	err := &Error{Kind: InvalidExpression, Message: msg, Span: span}
	p.addError(err)
	return err
}

// ParseProgram parses the whole token stream into a Program. An empty
// program's span degenerates to the zero span at offset 0, per the
// span-composition rule.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{Sp: token.Span{Line: 1, Column: 1}}
	for !p.curIs(token.EOF) {
		start := p.cur.Span
		stmt, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
		if len(prog.Statements) == 1 {
			prog.Sp = start
		}
		prog.Sp = token.Merge(prog.Sp, stmt.Span())
	}
	return prog, nil
}
