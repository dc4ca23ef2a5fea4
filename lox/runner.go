// Package lox drives the interpreter: it turns source text into statements
// and hands them to one long-lived evaluator.
package lox

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"

	eval "github.com/havrydotdev/treelox/evaluator"
	"github.com/havrydotdev/treelox/expr"
	"github.com/havrydotdev/treelox/parser"
	"github.com/havrydotdev/treelox/scanner"
)

// Exit codes, following sysexits.h.
const (
	ExitOK       = 0
	ExitUsage    = 64
	ExitDataErr  = 65
	ExitSoftware = 70
	ExitIOErr    = 74
)

// SyntaxError collects every lexical and parse error of one source unit.
type SyntaxError struct {
	Errs []error
}

func (e *SyntaxError) Error() string {
	messages := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		messages = append(messages, err.Error())
	}

	return strings.Join(messages, "\n")
}

func (e *SyntaxError) Unwrap() []error {
	return e.Errs
}

type Options struct {
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	PrintAST bool
}

type Runner struct {
	eval     *eval.Evaluator
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
	printAST bool

	hadError bool
}

func NewRunner(opts Options) *Runner {
	r := &Runner{
		stdout:   opts.Stdout,
		stderr:   opts.Stderr,
		logger:   opts.Logger,
		printAST: opts.PrintAST,
	}

	if r.stdout == nil {
		r.stdout = os.Stdout
	}
	if r.stderr == nil {
		r.stderr = os.Stderr
	}
	if r.logger == nil {
		r.logger = slog.New(slog.DiscardHandler)
	}

	r.eval = eval.New(eval.Config{
		Stdout: r.stdout,
		Stderr: r.stderr,
		Logger: r.logger,
	})

	return r
}

// Run executes one unit of source. Syntax errors are reported and nothing
// runs; a runtime error stops the rest of the unit.
func (r *Runner) Run(source string) error {
	var errs []error

	tokens, err := scanner.New(source).Scan()
	if err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			errs = append(errs, joined.Unwrap()...)
		} else {
			errs = append(errs, err)
		}
	}

	stmts, parseErrs := parser.New(tokens, expr.NewBuilder()).Parse()
	errs = append(errs, parseErrs...)

	if len(errs) > 0 {
		r.logger.Debug("syntax errors", "count", len(errs))
		r.hadError = true

		syntaxErr := &SyntaxError{Errs: errs}
		fmt.Fprintln(r.stderr, syntaxErr.Error())
		return syntaxErr
	}

	if r.printAST {
		for _, stmt := range stmts {
			fmt.Fprintln(r.stdout, expr.Sprint(stmt))
		}
	}

	return r.eval.Interpret(stmts)
}

// RunFile runs the script at path and returns the process exit code.
func (r *Runner) RunFile(path string) int {
	r.logger.Info("run file", "path", path)

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(r.stderr, errors.Wrapf(err, "read script %s", path))
		return ExitIOErr
	}

	_ = r.Run(string(source))

	switch {
	case r.hadError:
		return ExitDataErr
	case r.eval.HadRuntimeError():
		return ExitSoftware
	}

	return ExitOK
}

// LineReader supplies prompt input one line at a time; *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// RunPrompt runs lines until the reader fails (EOF or interrupt).
// Errors on one line never end the session.
func (r *Runner) RunPrompt(lines LineReader) {
	for {
		line, err := lines.Readline()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.logger.Debug("prompt closed", "error", err)
			}
			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		_ = r.Run(line)
		r.hadError = false
		r.eval.ClearRuntimeError()
	}
}
