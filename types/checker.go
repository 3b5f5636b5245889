/*
File    : corrosion/types/checker.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package types

import (
	"github.com/akashmaji946/corrosion/ast"
	"github.com/akashmaji946/corrosion/parser"
	"github.com/akashmaji946/corrosion/token"
)

// Checker is the single-pass synthesis type checker. One Checker
// instance owns one module-exports table and one resolution stack;
// an import opens a fresh child Checker rooted at the imported file's
// directory, per the contract's reentrant module loader.
type Checker struct {
	env     *Environment
	baseDir string

	// modules is this checker's own alias -> exports table.
	modules map[string]map[string]Type

	// memo and loading are shared across a whole import tree so that a
	// path imported twice is loaded once, and so that a cycle is
	// caught instead of recursing forever. See §9 Open Questions: the
	// language contract leaves memoization open; this implementation
	// memoizes by absolute resolved path.
	memo    map[string]map[string]Type
	loading map[string]bool
}

// NewChecker creates a Checker rooted at baseDir, the directory
// imports are resolved relative to.
func NewChecker(baseDir string) *Checker {
	return &Checker{
		env:     NewEnvironment(),
		baseDir: baseDir,
		modules: make(map[string]map[string]Type),
		memo:    make(map[string]map[string]Type),
		loading: make(map[string]bool),
	}
}

// Check type-checks src as a top-level program rooted at baseDir.
func Check(src, baseDir string) (*TypedProgram, error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return NewChecker(baseDir).CheckProgram(prog)
}

// CheckProgram type-checks an already-parsed Program.
func (c *Checker) CheckProgram(prog *ast.Program) (*TypedProgram, error) {
	out := &TypedProgram{Sp: prog.Sp}
	for _, s := range prog.Statements {
		ts, err := c.checkStmt(s)
		if err != nil {
			return nil, err
		}
		out.Statements = append(out.Statements, ts)
	}
	return out, nil
}

func (c *Checker) checkStmt(s ast.Stmt) (TypedStmt, error) {
	switch n := s.(type) {
	case *ast.LetStmt:
		return c.checkLetStmt(n)
	case *ast.FnStmt:
		return c.checkFnStmt(n)
	case *ast.ImportStmt:
		return c.checkImportStmt(n)
	case *ast.ExprStmt:
		te, err := c.checkExpr(n.Value)
		if err != nil {
			return nil, err
		}
		return &TExprStmt{Value: te, Sp: n.Sp}, nil
	default:
		panic("types: unknown statement variant")
	}
}

func (c *Checker) checkLetStmt(n *ast.LetStmt) (TypedStmt, error) {
	if c.env.IsBoundLocally(n.Name) {
		return nil, &Error{Kind: RedefinedVariable, Name: n.Name, Span: n.Sp}
	}
	value, err := c.checkExpr(n.Value)
	if err != nil {
		return nil, err
	}
	valueType := value.Type()

	finalType := valueType
	if n.Type != nil {
		annotated, err := c.resolveTypeExpr(n.Type)
		if err != nil {
			return nil, err
		}
		if !Compatible(valueType, annotated) {
			return nil, &Error{Kind: TypeMismatch, Expected: annotated, Found: valueType, Span: n.Value.Span()}
		}
		finalType = RefineWithAnnotation(valueType, annotated)
	}

	c.env.Bind(n.Name, finalType)
	return &TLetStmt{Name: n.Name, Ty: finalType, Value: value, Sp: n.Sp}, nil
}

// checkFnStmt binds the function's name to a preliminary type before
// checking its body so the body can recurse, then updates the
// binding to the refined type once the body's real type is known.
func (c *Checker) checkFnStmt(n *ast.FnStmt) (TypedStmt, error) {
	if c.env.IsBoundLocally(n.Name) {
		return nil, &Error{Kind: RedefinedVariable, Name: n.Name, Span: n.Sp}
	}

	var paramType Type = UnknownType{}
	if n.ParamType != nil {
		t, err := c.resolveTypeExpr(n.ParamType)
		if err != nil {
			return nil, err
		}
		paramType = t
	} else {
		paramType = InferParamType(n.Param, n.Body)
	}

	var resultHint Type = UnknownType{}
	if n.ResultType != nil {
		t, err := c.resolveTypeExpr(n.ResultType)
		if err != nil {
			return nil, err
		}
		resultHint = t
	}

	prelim := FunctionType{Param: paramType, Result: resultHint}
	c.env.Bind(n.Name, prelim)

	c.env.EnterScope()
	c.env.Bind(n.Param, paramType)
	body, err := c.checkBlock(n.Body)
	c.env.ExitScope()
	if err != nil {
		return nil, err
	}

	bodyType := body.Type()
	if n.ResultType != nil {
		if !Compatible(bodyType, resultHint) {
			return nil, &Error{Kind: TypeMismatch, Expected: resultHint, Found: bodyType, Span: n.Body.Sp}
		}
		bodyType = RefineWithAnnotation(bodyType, resultHint)
	}

	refined := FunctionType{Param: paramType, Result: bodyType}
	c.env.Update(n.Name, refined)

	return &TFnStmt{Name: n.Name, Param: n.Param, Ty: refined, Body: body, Sp: n.Sp}, nil
}

func (c *Checker) checkImportStmt(n *ast.ImportStmt) (TypedStmt, error) {
	exports, err := c.loadModule(n.Path, n.Sp)
	if err != nil {
		return nil, err
	}
	name := n.Alias
	if name == "" {
		name = n.Path
	}
	c.modules[name] = exports
	return &TImportStmt{Path: n.Path, Alias: n.Alias, Sp: n.Sp}, nil
}

// resolveTypeExpr converts a user-written type annotation into a
// Type. A NamedType that isn't a recognized built-in is a type error:
// Corrosion has no user-defined type declarations (spec Non-goals).
func (c *Checker) resolveTypeExpr(te ast.TypeExpr) (Type, error) {
	switch n := te.(type) {
	case *ast.IntType:
		return IntType{}, nil
	case *ast.BoolType:
		return BoolType{}, nil
	case *ast.StringType:
		return StringType{}, nil
	case *ast.ListType:
		elem, err := c.resolveTypeExpr(n.Element)
		if err != nil {
			return nil, err
		}
		return ListType{Element: elem}, nil
	case *ast.FuncType:
		param, err := c.resolveTypeExpr(n.Param)
		if err != nil {
			return nil, err
		}
		result, err := c.resolveTypeExpr(n.Result)
		if err != nil {
			return nil, err
		}
		return FunctionType{Param: param, Result: result}, nil
	case *ast.PairType:
		first, err := c.resolveTypeExpr(n.First)
		if err != nil {
			return nil, err
		}
		second, err := c.resolveTypeExpr(n.Second)
		if err != nil {
			return nil, err
		}
		return PairType{First: first, Second: second}, nil
	case *ast.SumType:
		left, err := c.resolveTypeExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := c.resolveTypeExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return SumType{Left: left, Right: right}, nil
	case *ast.RecType:
		inner, err := c.resolveTypeExpr(n.Inner)
		if err != nil {
			return nil, err
		}
		return RecursiveType{Inner: inner}, nil
	case *ast.NamedType:
		return nil, &Error{
			Kind: TypeMismatch, Message: "unknown type name `" + n.Name + "`", Span: n.Sp,
		}
	default:
		panic("types: unknown type-expr variant")
	}
}

func typeMismatch(expected, found Type, span token.Span) error {
	return &Error{Kind: TypeMismatch, Expected: expected, Found: found, Span: span}
}
