/*
File    : corrosion/parser/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/token"
)

// parseStmt dispatches on one lookahead token, per the statement
// dispatch rule: let / fn / import each have a dedicated form, anything
// else is an expression statement.
func (p *Parser) parseStmt() (ast.Stmt, error) {
	switch p.cur.Type {
	case token.LET:
		return p.parseLetStmt()
	case token.FN:
		return p.parseFnStmt()
	case token.IMPORT:
		return p.parseImportStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseLetStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume 'let'
		return nil, err
	}
	if !p.curIs(token.IDENT) {
		return nil, p.unexpected("identifier")
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	var typ ast.TypeExpr
	if p.curIs(token.COLON) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var err error
		typ, err = p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
	}

	if err := p.expect(token.ASSIGN, "'='"); err != nil {
		return nil, err
	}

	value, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}

	end := p.cur.Span
	if err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}

	return &ast.LetStmt{Name: name, Type: typ, Value: value, Sp: token.Merge(start, end)}, nil
}

// parseFnStmt parses `fn name(param[: T]) [-> R] block`, a recursive
// named function declaration.
func (p *Parser) parseFnStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume 'fn'
		return nil, err
	}
	if !p.curIs(token.IDENT) {
		return nil, p.unexpected("identifier")
	}
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	if err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	if !p.curIs(token.IDENT) {
		return nil, p.unexpected("parameter name")
	}
	param := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	var paramType ast.TypeExpr
	if p.curIs(token.COLON) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var err error
		paramType, err = p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
	}
	if err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}

	var resultType ast.TypeExpr
	if p.curIs(token.ARROW) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		var err error
		resultType, err = p.parseTypeExpr()
		if err != nil {
			return nil, err
		}
	}

	body, err := p.parseBlockExpr()
	if err != nil {
		return nil, err
	}

	return &ast.FnStmt{
		Name: name, Param: param, ParamType: paramType, ResultType: resultType,
		Body: body, Sp: token.Merge(start, body.Sp),
	}, nil
}

func (p *Parser) parseImportStmt() (ast.Stmt, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume 'import'
		return nil, err
	}
	if !p.curIs(token.STRING) {
		return nil, p.unexpected("string path")
	}
	path := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}

	alias := ""
	if p.curIs(token.AS) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.curIs(token.IDENT) {
			return nil, p.unexpected("identifier")
		}
		alias = p.cur.Literal
		if err := p.advance(); err != nil {
			return nil, err
		}
	}

	end := p.cur.Span
	if err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.ImportStmt{Path: path, Alias: alias, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseExprStmt() (ast.Stmt, error) {
	start := p.cur.Span
	value, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	// A for loop, an if, or a block ends in `}` and may stand as a
	// statement without a trailing `;`.
	if !p.curIs(token.SEMI) {
		switch value.(type) {
		case *ast.ForExpr, *ast.IfExpr, *ast.BlockExpr:
			return &ast.ExprStmt{Value: value, Sp: token.Merge(start, value.Span())}, nil
		}
	}
	end := p.cur.Span
	if err := p.expect(token.SEMI, "';'"); err != nil {
		return nil, err
	}
	return &ast.ExprStmt{Value: value, Sp: token.Merge(start, end)}, nil
}
