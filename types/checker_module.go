/*
File    : corrosion/types/checker_module.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package types

import (
	"os"
	"path/filepath"

	"github.com/akashmaji946/corrosion/parser"
	"github.com/akashmaji946/corrosion/token"
)

// loadModule resolves path relative to c.baseDir, type-checks it with
// a fresh child Checker rooted at the imported file's own directory,
// and returns its top-level bindings flattened as an export table.
// Grounded on original_source's ModuleLoader::load_and_check_module.
//
// Per §9 Open Questions, this implementation memoizes by absolute
// resolved path and detects cycles via a shared resolution-stack set,
// rather than re-executing an already-loaded module.
func (c *Checker) loadModule(path string, span token.Span) (map[string]Type, error) {
	abs, err := filepath.Abs(filepath.Join(c.baseDir, path))
	if err != nil {
		return nil, &Error{Kind: ImportError, Path: path, Message: "failed to resolve module path: " + err.Error(), Span: span}
	}

	if c.loading[abs] {
		return nil, &Error{Kind: ImportError, Path: path, Message: "import cycle detected", Span: span}
	}
	if exports, ok := c.memo[abs]; ok {
		return exports, nil
	}

	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, &Error{Kind: ImportError, Path: path, Message: "failed to read module file: " + err.Error(), Span: span}
	}

	prog, err := parser.Parse(string(content))
	if err != nil {
		return nil, &Error{Kind: ImportError, Path: path, Message: "failed to parse module: " + err.Error(), Span: span}
	}

	child := &Checker{
		env:     NewEnvironment(),
		baseDir: filepath.Dir(abs),
		modules: make(map[string]map[string]Type),
		memo:    c.memo,
		loading: c.loading,
	}

	c.loading[abs] = true
	_, err = child.CheckProgram(prog)
	delete(c.loading, abs)
	if err != nil {
		return nil, &Error{Kind: ImportError, Path: path, Message: "failed to type-check module: " + err.Error(), Span: span}
	}

	exports := child.env.AllBindingsFlat()
	c.memo[abs] = exports
	return exports, nil
}
