package runtimeerr

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/havrydotdev/treelox/token"
)

func TestIs(t *testing.T) {
	name := token.New(token.Identifier, "missing", nil, 7)
	op := token.New(token.Minus, "-", nil, 3)

	undefined := NewUndefinedVariable(name)
	typeErr := NewTypeError(op, "Operand must be a number.")

	if !errors.Is(undefined, ErrUndefinedVariable) || errors.Is(undefined, ErrType) {
		t.Errorf("undefined variable error matched the wrong sentinel")
	}
	if !errors.Is(typeErr, ErrType) || errors.Is(typeErr, ErrUndefinedVariable) {
		t.Errorf("type error matched the wrong sentinel")
	}

	wrapped := fmt.Errorf("batch: %w", typeErr)
	var rtErr *Error
	if !errors.As(wrapped, &rtErr) || rtErr.Line() != 3 {
		t.Errorf("errors.As through wrapping failed: %v", wrapped)
	}
}

func TestReport(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, NewUndefinedVariable(token.New(token.Identifier, "x", nil, 12)))

	want := "Undefined variable 'x'.\n[line 12]\n"
	if buf.String() != want {
		t.Errorf("Report wrote %q, want %q", buf.String(), want)
	}
}
