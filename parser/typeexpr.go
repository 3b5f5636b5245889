/*
File    : corrosion/parser/typeexpr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/token"
)

// parseTypeExpr parses a type annotation: `->` is right-associative at
// the outermost level, binding looser than every primary type form.
func (p *Parser) parseTypeExpr() (ast.TypeExpr, error) {
	left, err := p.parseTypePrimary()
	if err != nil {
		return nil, err
	}
	if p.curIs(token.ARROW) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseTypeExpr() // right-associative: recurse, don't loop
		if err != nil {
			return nil, err
		}
		return &ast.FuncType{Param: left, Result: right, Sp: token.Merge(left.Span(), right.Span())}, nil
	}
	return left, nil
}

func (p *Parser) parseTypePrimary() (ast.TypeExpr, error) {
	switch p.cur.Type {
	case token.TYPE_INT:
		sp := p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.IntType{Sp: sp}, nil
	case token.TYPE_BOOL:
		sp := p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.BoolType{Sp: sp}, nil
	case token.TYPE_STRING:
		sp := p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.StringType{Sp: sp}, nil
	case token.TYPE_LIST:
		start := p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		elem, err := p.parseTypePrimary()
		if err != nil {
			return nil, err
		}
		return &ast.ListType{Element: elem, Sp: token.Merge(start, elem.Span())}, nil
	case token.TYPE_REC:
		start := p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseTypePrimary()
		if err != nil {
			return nil, err
		}
		return &ast.RecType{Inner: inner, Sp: token.Merge(start, inner.Span())}, nil
	case token.IDENT:
		sp := p.cur.Span
		name := p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.NamedType{Name: name, Sp: sp}, nil
	case token.LPAREN:
		return p.parseTypeParenOrPair()
	default:
		return nil, p.unexpected("type")
	}
}

// parseTypeParenOrPair parses `(T)` or `(T1, T2)`. A sum type
// `(T1 + T2)` is written with a literal `+` token between the two
// types inside the parens.
func (p *Parser) parseTypeParenOrPair() (ast.TypeExpr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	first, err := p.parseTypeExpr()
	if err != nil {
		return nil, err
	}
	switch p.cur.Type {
	case token.COMMA:
		if err := p.advance(); err != nil {
			return nil, err
		}
		second, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		end := p.cur.Span
		if err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return &ast.PairType{First: first, Second: second, Sp: token.Merge(start, end)}, nil
	case token.PLUS:
		if err := p.advance(); err != nil {
			return nil, err
		}
		second, err := p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
		end := p.cur.Span
		if err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return &ast.SumType{Left: first, Right: second, Sp: token.Merge(start, end)}, nil
	default:
		end := p.cur.Span
		if err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		_ = end
		return first, nil
	}
}
