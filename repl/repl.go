/*
File    : corrosion/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the Corrosion
interpreter: an interactive session that lexes, parses, type-checks and
evaluates one line at a time, keeping accumulated bindings alive across
lines for as long as the session runs.
*/
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/akashmaji946/corrosion/eval"
	"github.com/akashmaji946/corrosion/parser"
	"github.com/akashmaji946/corrosion/types"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration of one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner, version, author,
// separator line, license, and prompt.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Corrosion!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Commands: help, clear, :load <file>, exit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// session holds the accumulated environment across lines: one checker
// and one interpreter, each keeping its own top-level bindings alive
// between reads.
type session struct {
	checker     *types.Checker
	interpreter *eval.Interpreter
	writer      io.Writer
	baseDir     string
}

// Start runs the REPL main loop. It continues until `exit`/`quit`, EOF
// (Ctrl+D), or a readline error.
func (r *Repl) Start(reader io.Reader, writer io.Writer, baseDir string) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	sess := &session{
		checker:     types.NewChecker(baseDir),
		interpreter: eval.NewInterpreter(baseDir),
		writer:      writer,
		baseDir:     baseDir,
	}
	sess.interpreter.SetOutput(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Goodbye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		if line == "exit" || line == "quit" {
			writer.Write([]byte("Goodbye!\n"))
			break
		}
		rl.SaveHistory(line)

		switch {
		case line == "help" || line == ":help":
			r.PrintBannerInfo(writer)
			continue
		case line == "clear" || line == ":clear":
			writer.Write([]byte("\033[H\033[2J"))
			continue
		case strings.HasPrefix(line, ":load "):
			r.loadFile(sess, strings.TrimSpace(strings.TrimPrefix(line, ":load ")))
			continue
		}

		r.evalLineWithRecovery(sess, line)
	}
}

func (r *Repl) loadFile(sess *session, path string) {
	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(sess.writer, "[FILE ERROR] %v\n", err)
		return
	}
	r.evalLineWithRecovery(sess, string(content))
}

// evalLineWithRecovery type-checks and evaluates one fragment, keeping
// any bindings it produces in sess's environment on success. A panic
// during either stage is caught and reported as a runtime error so one
// bad line never ends the session.
func (r *Repl) evalLineWithRecovery(sess *session, src string) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(sess.writer, "[RUNTIME ERROR] %v\n", rec)
		}
	}()

	prog, err := parseAndCheck(sess, src)
	if err != nil {
		redColor.Fprintf(sess.writer, "%s\n", err)
		return
	}

	result, err := sess.interpreter.Interpret(prog)
	if err != nil {
		redColor.Fprintf(sess.writer, "%s\n", err)
		return
	}
	if result != nil {
		yellowColor.Fprintf(sess.writer, "%s\n", result.ToString())
	}
}

// parseAndCheck reuses sess.checker across lines, so a name bound on
// one line resolves when a later line refers to it: an error response
// "returns to the prompt without destroying accumulated bindings."
func parseAndCheck(sess *session, src string) (*types.TypedProgram, error) {
	prog, err := parser.Parse(src)
	if err != nil {
		return nil, err
	}
	return sess.checker.CheckProgram(prog)
}
