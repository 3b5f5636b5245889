/*
File    : corrosion/parser/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/token"
)

// precedence is the single binding-power table driving precedence
// climbing. Higher binds tighter. All listed operators are
// left-associative.
var precedence = map[token.Type]int{
	token.OR:     2,
	token.AND:    3,
	token.EQ:     5,
	token.NOT_EQ: 5,
	token.LT:     5,
	token.LT_EQ:  5,
	token.GT:     5,
	token.GT_EQ:  5,
	token.PLUS:   10,
	token.MINUS:  10,
	token.STAR:   20,
	token.SLASH:  20,
}

// parseExpr climbs precedence starting at minPrec. Function application
// is handled inside parseUnary/parsePostfix, so it always binds tighter
// than any entry in the table above.
func (p *Parser) parseExpr(minPrec int) (ast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		prec, ok := precedence[p.cur.Type]
		if !ok || prec < minPrec {
			return left, nil
		}
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseExpr(prec + 1)
		if err != nil {
			return nil, err
		}
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right, Sp: token.Merge(left.Span(), right.Span())}
	}
}

// parseUnary handles logical-not and arithmetic negation, both of which
// bind to the immediately following unary expression.
func (p *Parser) parseUnary() (ast.Expr, error) {
	if p.curIs(token.BANG) || p.curIs(token.MINUS) {
		start := p.cur.Span
		op := p.cur.Type
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: op, Operand: operand, Sp: token.Merge(start, operand.Span())}, nil
	}
	return p.parsePostfix()
}

// parsePostfix parses an atom followed by zero or more `(arg)`
// applications, left-associatively: a(b)(c) parses as (a(b))(c).
func (p *Parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.LPAREN) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		arg, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		end := p.cur.Span
		if err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		expr = &ast.CallExpr{Func: expr, Arg: arg, Sp: token.Merge(expr.Span(), end)}
	}
	return expr, nil
}
