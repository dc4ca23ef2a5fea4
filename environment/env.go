// Package env implements the lexical scope chain.
//
// Frames live in an arena owned by Env and are addressed by Scope index.
// Each frame records the index of its enclosing frame, so the chain never
// holds pointers back into itself. Scopes are released in LIFO order,
// which is how blocks nest.
package env

import (
	"fmt"

	"github.com/havrydotdev/treelox/runtimeerr"
	"github.com/havrydotdev/treelox/token"
	"github.com/havrydotdev/treelox/value"
)

// Scope addresses one frame of an Env.
type Scope int

const (
	// Root is the outermost frame, present for the lifetime of the Env.
	Root Scope = 0

	noParent Scope = -1
)

type frame struct {
	outer  Scope
	values map[string]value.Value
}

type Env struct {
	frames []frame
}

func New() *Env {
	return &Env{frames: []frame{{outer: noParent, values: make(map[string]value.Value)}}}
}

// NewChild creates a frame enclosed by parent.
func (e *Env) NewChild(parent Scope) Scope {
	e.mustBeLive(parent)

	e.frames = append(e.frames, frame{outer: parent, values: make(map[string]value.Value)})
	return Scope(len(e.frames) - 1)
}

// Release drops scope together with every frame created after it.
// Releasing Root or an already released scope is a programming error.
func (e *Env) Release(scope Scope) {
	if scope == Root {
		panic("env: cannot release the root scope")
	}
	e.mustBeLive(scope)

	clear(e.frames[scope:])
	e.frames = e.frames[:scope]
}

// Depth is the number of live frames, root included.
func (e *Env) Depth() int {
	return len(e.frames)
}

// Define binds name in scope itself, overwriting any binding already there.
func (e *Env) Define(scope Scope, name string, val value.Value) {
	e.mustBeLive(scope)

	e.frames[scope].values[name] = val
}

// Lookup resolves name from scope outward.
func (e *Env) Lookup(scope Scope, name string) (value.Value, bool) {
	owner, ok := e.resolve(scope, name)
	if !ok {
		return nil, false
	}

	return e.frames[owner].values[name], true
}

func (e *Env) Get(scope Scope, name token.Token) (value.Value, error) {
	val, ok := e.Lookup(scope, name.Lexeme)
	if !ok {
		return nil, runtimeerr.NewUndefinedVariable(name)
	}

	return val, nil
}

// Assign updates the nearest existing binding of name. It never creates one.
func (e *Env) Assign(scope Scope, name token.Token, val value.Value) (value.Value, error) {
	owner, ok := e.resolve(scope, name.Lexeme)
	if !ok {
		return nil, runtimeerr.NewUndefinedVariable(name)
	}

	e.frames[owner].values[name.Lexeme] = val
	return val, nil
}

func (e *Env) resolve(scope Scope, name string) (Scope, bool) {
	e.mustBeLive(scope)

	for s := scope; s != noParent; s = e.frames[s].outer {
		if _, ok := e.frames[s].values[name]; ok {
			return s, true
		}
	}

	return noParent, false
}

func (e *Env) mustBeLive(scope Scope) {
	if scope < 0 || int(scope) >= len(e.frames) {
		panic(fmt.Sprintf("env: scope %d is not live (depth %d)", scope, len(e.frames)))
	}
}
