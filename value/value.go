// Package value defines the dynamically-typed runtime values of the language.
package value

import (
	"fmt"
	"math"
	"strconv"
)

// Kind tags a Value variant.
type Kind uint8

const (
	NilKind Kind = iota
	BoolKind
	NumberKind
	StringKind
)

func (k Kind) String() string {
	switch k {
	case NilKind:
		return "nil"
	case BoolKind:
		return "boolean"
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Value is a runtime value. String renders the value the way print shows it.
type Value interface {
	Kind() Kind
	String() string
}

type (
	Nil    struct{}
	Bool   bool
	Number float64
	String string
)

var (
	_ Value = Nil{}
	_ Value = Bool(false)
	_ Value = Number(0)
	_ Value = String("")
)

func (Nil) Kind() Kind    { return NilKind }
func (Bool) Kind() Kind   { return BoolKind }
func (Number) Kind() Kind { return NumberKind }
func (String) Kind() Kind { return StringKind }

func (Nil) String() string { return "nil" }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// String drops the fractional part when there is none: 3, not 3.0.
func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (s String) String() string { return string(s) }

// FromLiteral converts a scanner literal payload into a Value.
func FromLiteral(literal any) Value {
	switch l := literal.(type) {
	case nil:
		return Nil{}
	case bool:
		return Bool(l)
	case float64:
		return Number(l)
	case string:
		return String(l)
	case Value:
		return l
	}

	panic(fmt.Sprintf("value: unsupported literal %T", literal))
}

// Truthy reports whether v counts as true in a condition.
// Only nil and false are falsy.
func Truthy(v Value) bool {
	switch v := v.(type) {
	case nil, Nil:
		return false
	case Bool:
		return bool(v)
	}

	return true
}

// Equal compares two values without any coercion between kinds.
func Equal(a, b Value) bool {
	if a == nil {
		a = Nil{}
	}
	if b == nil {
		b = Nil{}
	}

	if a.Kind() != b.Kind() {
		return false
	}

	switch a := a.(type) {
	case Nil:
		return true
	case Bool:
		return a == b.(Bool)
	case Number:
		return a == b.(Number)
	case String:
		return a == b.(String)
	}

	panic(fmt.Sprintf("value: equality not defined for %T", a))
}
