package eval

import (
	"github.com/havrydotdev/treelox/runtimeerr"
	"github.com/havrydotdev/treelox/token"
	"github.com/havrydotdev/treelox/value"
)

func checkNumber(op token.Token, operand value.Value) (value.Number, error) {
	n, ok := operand.(value.Number)
	if !ok {
		return 0, runtimeerr.NewTypeError(op, "Operand must be a number.")
	}

	return n, nil
}

func checkNumbers(op token.Token, left, right value.Value) (value.Number, value.Number, error) {
	l, okl := left.(value.Number)
	r, okr := right.(value.Number)
	if !okl || !okr {
		return 0, 0, runtimeerr.NewTypeError(op, "Operands must be numbers.")
	}

	return l, r, nil
}

// add is numeric sum or string concatenation; mixed kinds are rejected.
func add(op token.Token, left, right value.Value) (value.Value, error) {
	switch l := left.(type) {
	case value.Number:
		if r, ok := right.(value.Number); ok {
			return l + r, nil
		}
	case value.String:
		if r, ok := right.(value.String); ok {
			return l + r, nil
		}
	}

	return nil, runtimeerr.NewTypeError(op, "Operands must be two numbers or two strings.")
}
