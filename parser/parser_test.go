/*
File    : corrosion/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser_test

import (
	"testing"

	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLetStmt(t *testing.T) {
	prog, err := parser.Parse(`let x = 1 + 2;`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
	let, ok := prog.Statements[0].(*ast.LetStmt)
	require.True(t, ok)
	assert.Equal(t, "x", let.Name)
	assert.Nil(t, let.Type)
}

func TestParseFnStmtWithAnnotations(t *testing.T) {
	prog, err := parser.Parse(`fn add(x: Int) -> Int { x + 1 }`)
	require.NoError(t, err)
	require.Len(t, prog.Statements, 1)
	fn, ok := prog.Statements[0].(*ast.FnStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	assert.Equal(t, "x", fn.Param)
	require.NotNil(t, fn.ParamType)
	require.NotNil(t, fn.ResultType)
	_, isInt := fn.ParamType.(*ast.IntType)
	assert.True(t, isInt)
}

func TestParseImportWithAlias(t *testing.T) {
	prog, err := parser.Parse(`import "math.cor" as math;`)
	require.NoError(t, err)
	imp, ok := prog.Statements[0].(*ast.ImportStmt)
	require.True(t, ok)
	assert.Equal(t, "math.cor", imp.Path)
	assert.Equal(t, "math", imp.Alias)
}

// Application is curried left-associative juxtaposition, binding
// tighter than any binary operator: a(b)(c) parses as (a(b))(c).
func TestApplicationIsLeftAssociativeAndTighterThanOperators(t *testing.T) {
	prog, err := parser.Parse(`a(b)(c) + 1;`)
	require.NoError(t, err)
	stmt, ok := prog.Statements[0].(*ast.ExprStmt)
	require.True(t, ok)
	bin, ok := stmt.Value.(*ast.BinaryExpr)
	require.True(t, ok)

	outerCall, ok := bin.Left.(*ast.CallExpr)
	require.True(t, ok)
	innerCall, ok := outerCall.Func.(*ast.CallExpr)
	require.True(t, ok)
	_, isIdent := innerCall.Func.(*ast.Ident)
	assert.True(t, isIdent)
}

func TestBinaryPrecedenceClimbsCorrectly(t *testing.T) {
	prog, err := parser.Parse(`1 + 2 * 3;`)
	require.NoError(t, err)
	stmt := prog.Statements[0].(*ast.ExprStmt)
	bin := stmt.Value.(*ast.BinaryExpr)
	assert.Equal(t, "+", string(bin.Op))
	_, leftIsInt := bin.Left.(*ast.IntLit)
	assert.True(t, leftIsInt)
	rightBin, ok := bin.Right.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, "*", string(rightBin.Op))
}

func TestParseCaseExpr(t *testing.T) {
	prog, err := parser.Parse(`case e of inl x => x | inr y => 0;`)
	require.NoError(t, err)
	stmt := prog.Statements[0].(*ast.ExprStmt)
	caseExpr, ok := stmt.Value.(*ast.CaseExpr)
	require.True(t, ok)
	assert.Equal(t, "x", caseExpr.LeftName)
	assert.Equal(t, "y", caseExpr.RightName)
}

func TestParseListLiteralWithTrailingComma(t *testing.T) {
	prog, err := parser.Parse(`[1, 2, 3,];`)
	require.NoError(t, err)
	stmt := prog.Statements[0].(*ast.ExprStmt)
	list, ok := stmt.Value.(*ast.ListLit)
	require.True(t, ok)
	assert.Len(t, list.Elements, 3)
}

func TestParsePairVsParenDisambiguation(t *testing.T) {
	prog, err := parser.Parse(`(1, 2);`)
	require.NoError(t, err)
	stmt := prog.Statements[0].(*ast.ExprStmt)
	_, isPair := stmt.Value.(*ast.PairLit)
	assert.True(t, isPair)

	prog2, err := parser.Parse(`(1 + 2);`)
	require.NoError(t, err)
	stmt2 := prog2.Statements[0].(*ast.ExprStmt)
	_, isBinary := stmt2.Value.(*ast.BinaryExpr)
	assert.True(t, isBinary)
}

func TestProgramSpanCoversWholeSource(t *testing.T) {
	src := `let x = 1;`
	prog, err := parser.Parse(src)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, prog.Sp.ByteStart, 0)
	assert.LessOrEqual(t, prog.Sp.ByteEnd, len(src))
	assert.LessOrEqual(t, prog.Sp.ByteStart, prog.Sp.ByteEnd)
}

func TestUnexpectedTokenIsParseError(t *testing.T) {
	_, err := parser.Parse(`let = 1;`)
	require.Error(t, err)
}

func TestUnterminatedBlockIsParseError(t *testing.T) {
	_, err := parser.Parse(`fn f(x: Int) { x`)
	require.Error(t, err)
}
