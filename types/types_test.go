/*
File    : corrosion/types/types_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package types_test

import (
	"testing"

	"github.com/akashmaji946/corrosion/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatibleUnknownIsPermissive(t *testing.T) {
	assert.True(t, types.Compatible(types.UnknownType{}, types.IntType{}))
	assert.True(t, types.Compatible(types.IntType{}, types.UnknownType{}))
	assert.True(t, types.Compatible(types.IntType{}, types.IntType{}))
	assert.False(t, types.Compatible(types.IntType{}, types.BoolType{}))
}

func TestCompatibleIsCongruentNotTransitive(t *testing.T) {
	a := types.ListType{Element: types.UnknownType{}}
	b := types.ListType{Element: types.IntType{}}
	c := types.ListType{Element: types.BoolType{}}
	assert.True(t, types.Compatible(a, b))
	assert.True(t, types.Compatible(a, c))
	assert.False(t, types.Compatible(b, c))
}

func TestRefineWithAnnotationFillsUnknownSlots(t *testing.T) {
	inferred := types.ListType{Element: types.UnknownType{}}
	annotated := types.ListType{Element: types.IntType{}}
	refined := types.RefineWithAnnotation(inferred, annotated)
	list, ok := refined.(types.ListType)
	require.True(t, ok)
	assert.Equal(t, types.IntType{}, list.Element)
}

func TestCheckLetStmtRejectsTypeMismatch(t *testing.T) {
	_, err := types.Check(`let x: Int = true;`, ".")
	require.Error(t, err)
	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.TypeMismatch, typeErr.Kind)
}

func TestCheckRejectsRedefinitionInSameScope(t *testing.T) {
	_, err := types.Check(`let x = 1; let x = 2;`, ".")
	require.Error(t, err)
	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.RedefinedVariable, typeErr.Kind)
}

func TestCheckAllowsShadowingInNestedScope(t *testing.T) {
	_, err := types.Check(`let x = 1; fn f(y: Int) -> Int { let x = y; x } print(f(2));`, ".")
	require.NoError(t, err)
}

func TestCheckRejectsUndefinedVariable(t *testing.T) {
	_, err := types.Check(`print(y);`, ".")
	require.Error(t, err)
	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.UndefinedVariable, typeErr.Kind)
}

func TestInferParamTypeFromArithmeticUsage(t *testing.T) {
	prog, err := types.Check(`fn inc(n) { n + 1 } print(inc(1));`, ".")
	require.NoError(t, err)
	fnStmt, ok := prog.Statements[0].(*types.TFnStmt)
	require.True(t, ok)
	ft, ok := fnStmt.Ty.(types.FunctionType)
	require.True(t, ok)
	assert.Equal(t, types.IntType{}, ft.Param)
}

func TestRecursiveFunctionTypeChecksAgainstItself(t *testing.T) {
	src := `fn fact(n: Int) -> Int { if n <= 1 { 1 } else { n * fact(n - 1) } } print(fact(5));`
	_, err := types.Check(src, ".")
	require.NoError(t, err)
}

func TestCheckRejectsIncompatibleCaseBranches(t *testing.T) {
	_, err := types.Check(`let e = inl(1); case e of inl x => x | inr y => true;`, ".")
	require.Error(t, err)
	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.TypeMismatch, typeErr.Kind)
}

func TestBinaryOperatorTableRejectsIncompatibleOperands(t *testing.T) {
	_, err := types.Check(`print(1 + true);`, ".")
	require.Error(t, err)
	typeErr, ok := err.(*types.Error)
	require.True(t, ok)
	assert.Equal(t, types.InvalidBinaryOp, typeErr.Kind)
}

func TestTypedProgramMirrorsShapeOfInput(t *testing.T) {
	prog, err := types.Check(`let x = 1; let y = x + 2;`, ".")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 2)
	_, firstIsLet := prog.Statements[0].(*types.TLetStmt)
	_, secondIsLet := prog.Statements[1].(*types.TLetStmt)
	assert.True(t, firstIsLet)
	assert.True(t, secondIsLet)
}
