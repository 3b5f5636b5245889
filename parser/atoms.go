/*
File    : corrosion/parser/atoms.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/token"
)

// parseAtom dispatches on the current token to one of the primary
// expression forms: literals, identifiers, parenthesized-or-pair,
// list literals, blocks, anonymous functions, and every keyword-form
// built-in.
func (p *Parser) parseAtom() (ast.Expr, error) {
	switch p.cur.Type {
	case token.INT:
		return p.parseIntLit()
	case token.TRUE, token.FALSE:
		return p.parseBoolLit()
	case token.STRING:
		return p.parseStringLit()
	case token.IDENT:
		return p.parseIdentOrQualified()
	case token.LPAREN:
		return p.parseParenOrPair()
	case token.LBRACK:
		return p.parseListLit()
	case token.LBRACE:
		return p.parseBlockExpr()
	case token.FN:
		return p.parseFuncLit()
	case token.FIX:
		return p.parseFixExpr()
	case token.INL:
		return p.parseInjectExpr(ast.LeftSide)
	case token.INR:
		return p.parseInjectExpr(ast.RightSide)
	case token.FST:
		return p.parseFstExpr()
	case token.SND:
		return p.parseSndExpr()
	case token.CONS:
		return p.parseConsExpr()
	case token.HEAD:
		return p.parseHeadExpr()
	case token.TAIL:
		return p.parseTailExpr()
	case token.PRINT:
		return p.parsePrintExpr()
	case token.IF:
		return p.parseIfExpr()
	case token.FOR:
		return p.parseForExpr()
	case token.RANGE:
		return p.parseRangeExpr()
	case token.CONCAT:
		return p.parseConcatExpr()
	case token.CHAR_AT:
		return p.parseCharAtExpr()
	case token.LENGTH:
		return p.parseLengthExpr()
	case token.TOSTRING:
		return p.parseToStringExpr()
	case token.TYPEOF:
		return p.parseTypeOfExpr()
	case token.CASE:
		return p.parseCaseExpr()
	default:
		return nil, p.unexpected("expression")
	}
}

func (p *Parser) parseIntLit() (ast.Expr, error) {
	lit := p.cur.Literal
	sp := p.cur.Span
	v, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, p.invalid("integer literal out of range: "+lit, sp)
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.IntLit{Value: v, Sp: sp}, nil
}

func (p *Parser) parseBoolLit() (ast.Expr, error) {
	sp := p.cur.Span
	v := p.curIs(token.TRUE)
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.BoolLit{Value: v, Sp: sp}, nil
}

func (p *Parser) parseStringLit() (ast.Expr, error) {
	sp := p.cur.Span
	v := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	return &ast.StringLit{Value: v, Sp: sp}, nil
}

// parseIdentOrQualified parses a bare identifier, optionally followed
// by `.` + identifier for a module-qualified reference.
func (p *Parser) parseIdentOrQualified() (ast.Expr, error) {
	start := p.cur.Span
	name := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if p.curIs(token.DOT) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if !p.curIs(token.IDENT) {
			return nil, p.unexpected("identifier")
		}
		member := p.cur.Literal
		end := p.cur.Span
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.QualifiedIdent{Module: name, Name: member, Sp: token.Merge(start, end)}, nil
	}
	return &ast.Ident{Name: name, Sp: start}, nil
}

// parseParenOrPair parses `(e)` or `(e1, e2)`.
func (p *Parser) parseParenOrPair() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}
	first, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if p.curIs(token.COMMA) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		second, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		end := p.cur.Span
		if err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return &ast.PairLit{First: first, Second: second, Sp: token.Merge(start, end)}, nil
	}
	end := p.cur.Span
	if err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	_ = end
	return first, nil
}

// parseListLit parses `[e, ..., e[,]]`, accepting a trailing comma.
func (p *Parser) parseListLit() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	var elems []ast.Expr
	for !p.curIs(token.RBRACK) {
		elem, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		if p.curIs(token.COMMA) {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	end := p.cur.Span
	if err := p.expect(token.RBRACK, "']'"); err != nil {
		return nil, err
	}
	return &ast.ListLit{Elements: elems, Sp: token.Merge(start, end)}, nil
}

// parseBlockExpr parses `{ stmt* expr? }`.
func (p *Parser) parseBlockExpr() (*ast.BlockExpr, error) {
	start := p.cur.Span
	if err := p.expect(token.LBRACE, "'{'"); err != nil {
		return nil, err
	}

	block := &ast.BlockExpr{}
	for !p.curIs(token.RBRACE) {
		if p.isStmtStart() {
			stmt, err := p.parseStmt()
			if err != nil {
				return nil, err
			}
			block.Stmts = append(block.Stmts, stmt)
			continue
		}
		// Not a statement keyword: try it as the trailing expression.
		result, err := p.parseExpr(0)
		if err != nil {
			return nil, err
		}
		if p.curIs(token.SEMI) {
			// It was an expression statement after all.
			end := p.cur.Span
			if err := p.advance(); err != nil {
				return nil, err
			}
			block.Stmts = append(block.Stmts, &ast.ExprStmt{Value: result, Sp: token.Merge(result.Span(), end)})
			continue
		}
		block.Result = result
		break
	}

	end := p.cur.Span
	if err := p.expect(token.RBRACE, "'}'"); err != nil {
		return nil, err
	}
	block.Sp = token.Merge(start, end)
	return block, nil
}

// isStmtStart reports whether cur begins an unambiguous statement form
// (let, import, or fn followed by a name); anything else, including an
// anonymous fn(...) literal, is parsed as an expression, which may
// still turn out to be an expression statement if followed by `;`.
func (p *Parser) isStmtStart() bool {
	switch p.cur.Type {
	case token.LET, token.IMPORT:
		return true
	case token.FN:
		return p.peekIs(token.IDENT)
	default:
		return false
	}
}

// parseFuncLit parses `fn(p[: T]) block`.
func (p *Parser) parseFuncLit() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume 'fn'
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

	body, err := p.parseBlockExpr()
	if err != nil {
		return nil, err
	}
	return &ast.FuncLit{Param: param, ParamType: paramType, Body: body, Sp: token.Merge(start, body.Sp)}, nil
}

// parseParenExpr1 parses a single parenthesized argument expression,
// used by every keyword-form built-in that accepts one argument.
func (p *Parser) parseParenExpr1() (ast.Expr, token.Span, error) {
	if err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, token.Span{}, err
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return nil, token.Span{}, err
	}
	end := p.cur.Span
	if err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, token.Span{}, err
	}
	return e, end, nil
}

func (p *Parser) parseFixExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	f, end, err := p.parseParenExpr1()
	if err != nil {
		return nil, err
	}
	return &ast.FixExpr{Func: f, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseInjectExpr(side ast.Side) (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, end, err := p.parseParenExpr1()
	if err != nil {
		return nil, err
	}
	return &ast.InjectExpr{Which: side, Value: v, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseFstExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, end, err := p.parseParenExpr1()
	if err != nil {
		return nil, err
	}
	return &ast.FstExpr{Pair: v, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseSndExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, end, err := p.parseParenExpr1()
	if err != nil {
		return nil, err
	}
	return &ast.SndExpr{Pair: v, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseConsExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume 'cons'
		return nil, err
	}
	if err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	head, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.COMMA, "','"); err != nil {
		return nil, err
	}
	tail, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	end := p.cur.Span
	if err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return &ast.ConsExpr{Head: head, Tail: tail, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseHeadExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, end, err := p.parseParenExpr1()
	if err != nil {
		return nil, err
	}
	return &ast.HeadExpr{List: v, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseTailExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, end, err := p.parseParenExpr1()
	if err != nil {
		return nil, err
	}
	return &ast.TailExpr{List: v, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parsePrintExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, end, err := p.parseParenExpr1()
	if err != nil {
		return nil, err
	}
	return &ast.PrintExpr{Value: v, Sp: token.Merge(start, end)}, nil
}

// parseIfExpr parses `if cond block (else block)?`.
func (p *Parser) parseIfExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlockExpr()
	if err != nil {
		return nil, err
	}
	end := then.Sp
	var elseBlock *ast.BlockExpr
	if p.curIs(token.ELSE) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlockExpr()
		if err != nil {
			return nil, err
		}
		end = elseBlock.Sp
	}
	return &ast.IfExpr{Cond: cond, Then: then, Else: elseBlock, Sp: token.Merge(start, end)}, nil
}

// parseForExpr parses `for x in iter block`.
func (p *Parser) parseForExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume 'for'
		return nil, err
	}
	if !p.curIs(token.IDENT) {
		return nil, p.unexpected("identifier")
	}
	loopVar := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.IN, "'in'"); err != nil {
		return nil, err
	}
	iter, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlockExpr()
	if err != nil {
		return nil, err
	}
	return &ast.ForExpr{Var: loopVar, Iter: iter, Body: body, Sp: token.Merge(start, body.Sp)}, nil
}

func (p *Parser) parseRangeExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume 'range'
		return nil, err
	}
	if err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	lo, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.COMMA, "','"); err != nil {
		return nil, err
	}
	hi, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	end := p.cur.Span
	if err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return &ast.RangeExpr{Start: lo, End: hi, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseConcatExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	left, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.COMMA, "','"); err != nil {
		return nil, err
	}
	right, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	end := p.cur.Span
	if err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return &ast.ConcatExpr{Left: left, Right: right, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseCharAtExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	str, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.COMMA, "','"); err != nil {
		return nil, err
	}
	idx, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	end := p.cur.Span
	if err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}
	return &ast.CharAtExpr{Str: str, Index: idx, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseLengthExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, end, err := p.parseParenExpr1()
	if err != nil {
		return nil, err
	}
	return &ast.LengthExpr{Str: v, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseToStringExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, end, err := p.parseParenExpr1()
	if err != nil {
		return nil, err
	}
	return &ast.ToStringExpr{Value: v, Sp: token.Merge(start, end)}, nil
}

func (p *Parser) parseTypeOfExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil {
		return nil, err
	}
	v, end, err := p.parseParenExpr1()
	if err != nil {
		return nil, err
	}
	return &ast.TypeOfExpr{Value: v, Sp: token.Merge(start, end)}, nil
}

// parseCaseExpr parses `case e of inl x => L | inr y => R`.
func (p *Parser) parseCaseExpr() (ast.Expr, error) {
	start := p.cur.Span
	if err := p.advance(); err != nil { // consume 'case'
		return nil, err
	}
	scrutinee, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.OF, "'of'"); err != nil {
		return nil, err
	}
	if err := p.expect(token.INL, "'inl'"); err != nil {
		return nil, err
	}
	if !p.curIs(token.IDENT) {
		return nil, p.unexpected("identifier")
	}
	leftName := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.FAT_ARROW, "'=>'"); err != nil {
		return nil, err
	}
	leftBody, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	if err := p.expect(token.PIPE, "'|'"); err != nil {
		return nil, err
	}
	if err := p.expect(token.INR, "'inr'"); err != nil {
		return nil, err
	}
	if !p.curIs(token.IDENT) {
		return nil, p.unexpected("identifier")
	}
	rightName := p.cur.Literal
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.expect(token.FAT_ARROW, "'=>'"); err != nil {
		return nil, err
	}
	rightBody, err := p.parseExpr(0)
	if err != nil {
		return nil, err
	}
	return &ast.CaseExpr{
		Scrutinee: scrutinee,
		LeftName:  leftName, RightName: rightName,
		LeftBody: leftBody, RightBody: rightBody,
		Sp: token.Merge(start, rightBody.Span()),
	}, nil
}
