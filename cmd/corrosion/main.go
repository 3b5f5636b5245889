/*
File    : corrosion/cmd/corrosion/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the Corrosion interpreter. It
provides two modes of operation:
 1. REPL mode (default): an interactive read-eval-print loop.
 2. File mode: lex, parse, type-check, and evaluate a source file.
*/
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/akashmaji946/corrosion/eval"
	"github.com/akashmaji946/corrosion/repl"
	"github.com/akashmaji946/corrosion/types"
	"github.com/fatih/color"
)

var (
	VERSION = "v0.1.0"
	AUTHOR  = "akashmaji(@iisc.ac.in)"
	LICENSE = "MIT"
	PROMPT  = "corrosion >>> "
	BANNER  = `
   ____                              _
  / ___|___  _ __ _ __ ___  ___  ___(_) ___  _ __
 | |   / _ \| '__| '__/ _ \/ __|/ __| |/ _ \| '_ \
 | |__| (_) | |  | | | (_) \__ \\__ \ | (_) | | | |
  \____\___/|_|  |_|  \___/|___/|___/_|\___/|_| |_|
`
	LINE = "----------------------------------------------------------------"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]
		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		}
		runFile(arg)
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	r := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENSE, PROMPT)
	r.Start(os.Stdin, os.Stdout, cwd)
}

func showHelp() {
	cyanColor.Println("Corrosion - a small statically-typed functional language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  corrosion                 Start interactive REPL mode")
	yellowColor.Println("  corrosion <path-to-file>  Lex, parse, type-check, and run a file")
	yellowColor.Println("  corrosion --help          Display this help message")
	yellowColor.Println("  corrosion --version       Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  help / :help              Show this session's banner again")
	yellowColor.Println("  clear / :clear            Clear the screen")
	yellowColor.Println("  :load <file>              Evaluate a file's contents in this session")
	yellowColor.Println("  exit / quit               Leave the REPL")
}

func showVersion() {
	cyanColor.Println("Corrosion - a small statically-typed functional language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENSE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads, type-checks, and evaluates a source file, exiting 0
// on success and non-zero with the error message on stderr on any
// stage's failure, per the contract's CLI surface.
func runFile(path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}

	baseDir := filepath.Dir(path)
	result, err := evalSource(string(content), baseDir, os.Stdout)
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	printResult(os.Stdout, result)
}

// evalSource type-checks and evaluates src, routing any print() output
// to out and returning the program's final value. A runtime panic is
// recovered and surfaced as an error, same as runFile's caller expects.
func evalSource(src, baseDir string, out io.Writer) (result eval.Value, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("[RUNTIME ERROR] %v", rec)
		}
	}()

	typed, err := types.Check(src, baseDir)
	if err != nil {
		return nil, err
	}

	interp := eval.NewInterpreter(baseDir)
	interp.SetOutput(out)
	result, err = interp.Interpret(typed)
	return result, err
}

// printResult echoes a program's final value, unless it is Unit — a
// program whose last statement is itself a print(...) call (or any
// other Unit-valued statement) must not also echo a spurious "()" line
// in batch mode.
func printResult(out io.Writer, result eval.Value) {
	if _, isUnit := result.(eval.UnitValue); result != nil && !isUnit {
		yellowColor.Fprintln(out, result.ToString())
	}
}
