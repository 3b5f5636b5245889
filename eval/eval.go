/*
File    : corrosion/eval/eval.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akashmaji946/corrosion/token"
	"github.com/akashmaji946/corrosion/types"
)

// Interpreter walks a TypedProgram produced by the checker. One
// instance owns one module-values table and one resolution stack, the
// runtime mirror of types.Checker; an import opens a fresh child
// Interpreter rooted at the imported file's directory.
type Interpreter struct {
	env     *Environment
	baseDir string
	out     io.Writer

	// memo and loading are shared across a whole import tree: a path
	// imported twice is run once, and a cycle is reported instead of
	// recursing forever. §9 open-question decision: memoized by
	// absolute resolved path, unlike original_source's interpreter.
	memo    map[string]map[string]Value
	loading map[string]bool
}

// NewInterpreter creates an Interpreter rooted at baseDir, the
// directory imports are resolved relative to, printing to stdout.
func NewInterpreter(baseDir string) *Interpreter {
	return &Interpreter{
		env:     NewEnvironment(),
		baseDir: baseDir,
		out:     os.Stdout,
		memo:    make(map[string]map[string]Value),
		loading: make(map[string]bool),
	}
}

// SetOutput redirects print's destination, used by the REPL and by
// tests that capture output instead of writing to the terminal.
func (in *Interpreter) SetOutput(w io.Writer) {
	in.out = w
}

func (in *Interpreter) print(s string) {
	fmt.Fprintln(in.out, s)
}

// withEnv returns an Interpreter sharing every field except env, used
// whenever evaluation opens a fresh scope (block, case branch, for
// body) without starting a new module-loading context.
func (in *Interpreter) withEnv(env *Environment) *Interpreter {
	return &Interpreter{env: env, baseDir: in.baseDir, out: in.out, memo: in.memo, loading: in.loading}
}

// Interpret type-checks nothing itself: prog is already the checker's
// output. It evaluates every top-level statement in order and returns
// the last expression statement's value, or Unit if the program has
// none.
func (in *Interpreter) Interpret(prog *types.TypedProgram) (Value, error) {
	var result Value = UnitValue{}
	for _, s := range prog.Statements {
		v, err := in.evalStmt(s)
		if err != nil {
			return nil, err
		}
		if v != nil {
			result = v
		}
	}
	return result, nil
}

// evalStmt returns a non-nil Value only for TExprStmt, so that
// Interpret can track "the last expression's value" without a separate
// output channel for non-expression statements.
func (in *Interpreter) evalStmt(s types.TypedStmt) (Value, error) {
	switch n := s.(type) {
	case *types.TLetStmt:
		return nil, in.evalLetStmt(n)
	case *types.TFnStmt:
		return nil, in.evalFnStmt(n)
	case *types.TImportStmt:
		return nil, in.evalImportStmt(n)
	case *types.TExprStmt:
		v, err := in.evalExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return v, nil
	default:
		panic("eval: unknown statement variant")
	}
}

func (in *Interpreter) evalLetStmt(n *types.TLetStmt) error {
	v, err := in.evalExpr(n.Value)
	if err != nil {
		return err
	}
	in.env.Bind(n.Name, v)
	return nil
}

// evalFnStmt builds a recursive function per the contract: the body is
// wrapped so the declared name is, at each call, re-bound to the fixed
// point of the outer closure — the same representation explicit fix
// produces. RecursiveFn captures the environment as of declaration
// time; Interpreter.apply re-binds n.Name to the FixedPoint itself in
// a fresh scope on every call, so recursive references resolve
// without a shared mutable cell.
func (in *Interpreter) evalFnStmt(n *types.TFnStmt) error {
	rec := &RecursiveFn{Name: n.Name, Param: n.Param, Body: n.Body, Env: in.env.Snapshot()}
	fp := &FixedPoint{Function: rec}
	in.env.Bind(n.Name, fp)
	return nil
}

func (in *Interpreter) evalImportStmt(n *types.TImportStmt) error {
	mod, err := in.loadModule(n.Path, n.Sp)
	if err != nil {
		return err
	}
	name := n.Alias
	if name == "" {
		name = n.Path
	}
	in.env.Bind(name, &ModuleValue{Name: name, Exports: mod})
	return nil
}

// loadModule resolves path relative to in.baseDir, runs it with a
// fresh child Interpreter rooted at the imported file's own directory,
// and returns its top-level bindings flattened as an export table.
// Mirrors types.Checker.loadModule's memoization-by-absolute-path and
// cycle detection via a shared resolution-stack set.
func (in *Interpreter) loadModule(path string, span token.Span) (map[string]Value, error) {
	abs, err := filepath.Abs(filepath.Join(in.baseDir, path))
	if err != nil {
		return nil, &Error{Kind: RuntimeMessage, Message: "failed to resolve module path: " + err.Error(), Span: span}
	}

	if in.loading[abs] {
		return nil, &Error{Kind: RuntimeMessage, Message: "import cycle detected at `" + path + "`", Span: span}
	}
	if exports, ok := in.memo[abs]; ok {
		return exports, nil
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, &Error{Kind: RuntimeMessage, Message: "failed to read module file: " + err.Error(), Span: span}
	}

	typed, err := types.Check(string(content), filepath.Dir(abs))
	if err != nil {
		return nil, &Error{Kind: RuntimeMessage, Message: "failed to type-check module `" + path + "`: " + err.Error(), Span: span}
	}

	child := &Interpreter{
		env:     NewEnvironment(),
		baseDir: filepath.Dir(abs),
		out:     in.out,
		memo:    in.memo,
		loading: in.loading,
	}

	in.loading[abs] = true
	_, err = child.Interpret(typed)
	delete(in.loading, abs)
	if err != nil {
		return nil, err
	}

	exports := child.env.Flatten()
	in.memo[abs] = exports
	return exports, nil
}
