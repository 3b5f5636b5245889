/*
File    : corrosion/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval_test

import (
	"bytes"
	"testing"

	"github.com/akashmaji946/corrosion/eval"
	"github.com/akashmaji946/corrosion/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run type-checks and evaluates src, capturing printed output and
// returning the final expression statement's value.
func run(t *testing.T, src string) (string, eval.Value) {
	t.Helper()
	typed, err := types.Check(src, ".")
	require.NoError(t, err)

	interp := eval.NewInterpreter(".")
	var out bytes.Buffer
	interp.SetOutput(&out)

	result, err := interp.Interpret(typed)
	require.NoError(t, err)
	return out.String(), result
}

func TestArithmeticAndPrint(t *testing.T) {
	out, _ := run(t, "let x = 1 + 2 * 3; print(x);")
	assert.Equal(t, "7\n", out)
}

func TestCurriedApplication(t *testing.T) {
	out, _ := run(t, "fn add(x: Int) -> Int { x + 1 } print(add(add(add(0))));")
	assert.Equal(t, "3\n", out)
}

func TestFixedPointFactorial(t *testing.T) {
	src := `let f = fix(fn(self) { fn(n) { if n <= 1 { 1 } else { n * self(n - 1) } } }); print(f(5));`
	out, _ := run(t, src)
	assert.Equal(t, "120\n", out)
}

func TestRangeAndForLoop(t *testing.T) {
	out, _ := run(t, "let xs = range(0, 4); for i in xs { print(i); }")
	assert.Equal(t, "0\n1\n2\n3\n", out)
}

func TestPairProjections(t *testing.T) {
	out, _ := run(t, "let p = (1, true); print(fst(p)); print(snd(p));")
	assert.Equal(t, "1\ntrue\n", out)
}

func TestCaseDispatch(t *testing.T) {
	src := "let e = inl(7); case e of inl x => print(x) | inr y => print(0);"
	out, _ := run(t, src)
	assert.Equal(t, "7\n", out)
}

func TestTypeMismatchRejected(t *testing.T) {
	_, err := types.Check("let x: Int = true;", ".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected `Int`, found `Bool`")
}

func TestDivisionByZero(t *testing.T) {
	typed, err := types.Check("print(1 / 0);", ".")
	require.NoError(t, err)

	interp := eval.NewInterpreter(".")
	var out bytes.Buffer
	interp.SetOutput(&out)
	_, err = interp.Interpret(typed)

	require.Error(t, err)
	runtimeErr, ok := err.(*eval.Error)
	require.True(t, ok)
	assert.Equal(t, eval.DivisionByZero, runtimeErr.Kind)
}

func TestEmptyListHead(t *testing.T) {
	typed, err := types.Check("print(head([]));", ".")
	require.NoError(t, err)

	interp := eval.NewInterpreter(".")
	var out bytes.Buffer
	interp.SetOutput(&out)
	_, err = interp.Interpret(typed)

	require.Error(t, err)
	runtimeErr, ok := err.(*eval.Error)
	require.True(t, ok)
	assert.Equal(t, eval.IndexOutOfBounds, runtimeErr.Kind)
}

func TestRangeLengthInvariant(t *testing.T) {
	out, _ := run(t, `
		let xs = range(3, 3);
		print(length(toString(xs)));
	`)
	assert.Equal(t, "2\n", out) // "[]" has two code points
}

func TestStringLengthCountsCodePoints(t *testing.T) {
	out, _ := run(t, `print(length("héllo"));`)
	assert.Equal(t, "5\n", out)
}

func TestToStringLiteralRoundTrip(t *testing.T) {
	out, _ := run(t, `print(toString(42)); print(toString(true)); print(toString("hi"));`)
	assert.Equal(t, "42\ntrue\nhi\n", out)
}

func TestListConsDoesNotMutateEarlierList(t *testing.T) {
	out, _ := run(t, `
		let xs = [2, 3];
		let ys = cons(1, xs);
		print(toString(xs));
		print(toString(ys));
	`)
	assert.Equal(t, "[2, 3]\n[1, 2, 3]\n", out)
}

// Comparing two closures type-checks only when an operand's type stays
// Unknown (equality is not among the usage patterns the inference
// heuristic recognizes, so `compare`'s parameters are never narrowed
// to Function), which is exactly the path that reaches eval.Equal's
// closure case at runtime.
func TestClosureEqualityAlwaysFalse(t *testing.T) {
	out, _ := run(t, `
		fn compare(a) { fn(b) { a == b } }
		let f = fn(y: Int) { y };
		let g = fn(y: Int) { y };
		print(compare(f)(g));
	`)
	assert.Equal(t, "false\n", out)
}

func TestModuleImportExportsBindings(t *testing.T) {
	t.Skip("requires a filesystem fixture; no test in this repository exercises imports")
}
