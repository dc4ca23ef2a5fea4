package eval

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	env "github.com/havrydotdev/treelox/environment"
	"github.com/havrydotdev/treelox/expr"
	"github.com/havrydotdev/treelox/runtimeerr"
	"github.com/havrydotdev/treelox/token"
	"github.com/havrydotdev/treelox/value"
)

// Config holds the evaluator's collaborators. Zero fields fall back to
// os.Stdout, os.Stderr and a logger that discards everything.
type Config struct {
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

type Evaluator struct {
	env   *env.Env
	scope env.Scope

	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger

	hadRuntimeError bool
}

func New(cfg Config) *Evaluator {
	e := &Evaluator{
		env:    env.New(),
		scope:  env.Root,
		stdout: cfg.Stdout,
		stderr: cfg.Stderr,
		logger: cfg.Logger,
	}

	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	if e.logger == nil {
		e.logger = slog.New(slog.DiscardHandler)
	}

	return e
}

// Interpret executes stmts in order. The first runtime error stops the
// batch: it is reported to stderr, remembered, and returned. The evaluator
// stays usable for the next batch, with bindings made so far kept.
func (e *Evaluator) Interpret(stmts []expr.Stmt) error {
	e.logger.Debug("interpret", "statements", len(stmts))

	for _, stmt := range stmts {
		err := e.execute(stmt)
		if err == nil {
			continue
		}

		var rtErr *runtimeerr.Error
		if !errors.As(err, &rtErr) {
			return err
		}

		e.logger.Debug("runtime error",
			"kind", rtErr.Kind,
			"line", rtErr.Line(),
			"lexeme", rtErr.Token.Lexeme,
		)

		runtimeerr.Report(e.stderr, rtErr)
		e.hadRuntimeError = true
		return err
	}

	return nil
}

// HadRuntimeError reports whether any batch failed since the last ClearRuntimeError.
func (e *Evaluator) HadRuntimeError() bool {
	return e.hadRuntimeError
}

func (e *Evaluator) ClearRuntimeError() {
	e.hadRuntimeError = false
}

// Lookup resolves name from the current scope.
func (e *Evaluator) Lookup(name string) (value.Value, bool) {
	return e.env.Lookup(e.scope, name)
}

// Depth is the number of live scope frames. Between batches it is 1.
func (e *Evaluator) Depth() int {
	return e.env.Depth()
}

func (e *Evaluator) evaluate(ex expr.Expr) (value.Value, error) {
	switch ex := ex.(type) {
	case *expr.Literal:
		return ex.Value, nil
	case *expr.Grouping:
		return e.evaluate(ex.Inner)
	case *expr.Unary:
		return e.unary(ex)
	case *expr.Binary:
		return e.binary(ex)
	case *expr.Logical:
		return e.logical(ex)
	case *expr.Variable:
		return e.env.Get(e.scope, ex.Name)
	case *expr.Assign:
		val, err := e.evaluate(ex.Value)
		if err != nil {
			return nil, err
		}

		return e.env.Assign(e.scope, ex.Name, val)
	}

	panic(fmt.Sprintf("eval: unhandled expression %T", ex))
}

func (e *Evaluator) unary(ex *expr.Unary) (value.Value, error) {
	right, err := e.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case token.Bang:
		return value.Bool(!value.Truthy(right)), nil
	case token.Minus:
		n, err := checkNumber(ex.Op, right)
		if err != nil {
			return nil, err
		}

		return -n, nil
	}

	panic(fmt.Sprintf("eval: unhandled unary operator %v", ex.Op.Kind))
}

func (e *Evaluator) binary(ex *expr.Binary) (value.Value, error) {
	left, err := e.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}

	right, err := e.evaluate(ex.Right)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case token.EqualEqual:
		return value.Bool(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.Bool(!value.Equal(left, right)), nil
	case token.Plus:
		return add(ex.Op, left, right)
	}

	l, r, err := checkNumbers(ex.Op, left, right)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case token.Greater:
		return value.Bool(l > r), nil
	case token.GreaterEqual:
		return value.Bool(l >= r), nil
	case token.Less:
		return value.Bool(l < r), nil
	case token.LessEqual:
		return value.Bool(l <= r), nil

	case token.Minus:
		return l - r, nil
	case token.Slash:
		// IEEE semantics: x/0 is ±Infinity, 0/0 is NaN.
		return l / r, nil
	case token.Star:
		return l * r, nil
	}

	panic(fmt.Sprintf("eval: unhandled binary operator %v", ex.Op.Kind))
}

func (e *Evaluator) logical(ex *expr.Logical) (value.Value, error) {
	left, err := e.evaluate(ex.Left)
	if err != nil {
		return nil, err
	}

	switch ex.Op.Kind {
	case token.Or:
		if value.Truthy(left) {
			return left, nil
		}
	case token.And:
		if !value.Truthy(left) {
			return left, nil
		}
	default:
		panic(fmt.Sprintf("eval: unhandled logical operator %v", ex.Op.Kind))
	}

	return e.evaluate(ex.Right)
}
