// Package runtimeerr holds the errors raised while a program runs, as
// opposed to syntax errors reported before it starts.
package runtimeerr

import (
	"errors"
	"fmt"
	"io"

	"github.com/havrydotdev/treelox/token"
)

type Kind uint8

const (
	// TypeError: an operator got an operand of the wrong runtime type.
	TypeError Kind = iota + 1
	// UndefinedVariable: no frame in the scope chain binds the name.
	UndefinedVariable
)

func (k Kind) String() string {
	switch k {
	case TypeError:
		return "TypeError"
	case UndefinedVariable:
		return "UndefinedVariable"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

var (
	ErrType              = errors.New("type error")
	ErrUndefinedVariable = errors.New("undefined variable")
)

type Error struct {
	Kind    Kind
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrType:
		return e.Kind == TypeError
	case ErrUndefinedVariable:
		return e.Kind == UndefinedVariable
	}

	return false
}

func (e *Error) Line() int {
	return e.Token.Line
}

func NewTypeError(tok token.Token, message string) *Error {
	return &Error{Kind: TypeError, Token: tok, Message: message}
}

func NewUndefinedVariable(tok token.Token) *Error {
	return &Error{
		Kind:    UndefinedVariable,
		Token:   tok,
		Message: fmt.Sprintf("Undefined variable '%s'.", tok.Lexeme),
	}
}

// Report writes the one-line diagnostic: message followed by [line N].
func Report(w io.Writer, err *Error) {
	fmt.Fprintf(w, "%s\n[line %d]\n", err.Message, err.Line())
}
