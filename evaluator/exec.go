package eval

import (
	"fmt"

	env "github.com/havrydotdev/treelox/environment"
	"github.com/havrydotdev/treelox/expr"
	"github.com/havrydotdev/treelox/value"
)

func (e *Evaluator) execute(stmt expr.Stmt) error {
	switch stmt := stmt.(type) {
	case *expr.Expression:
		_, err := e.evaluate(stmt.Expr)
		return err
	case *expr.Print:
		val, err := e.evaluate(stmt.Expr)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(e.stdout, val.String())
		return err
	case *expr.Var:
		var val value.Value = value.Nil{}
		if stmt.Init != nil {
			v, err := e.evaluate(stmt.Init)
			if err != nil {
				return err
			}

			val = v
		}

		e.env.Define(e.scope, stmt.Name.Lexeme, val)
		return nil
	case *expr.If:
		cond, err := e.evaluate(stmt.Cond)
		if err != nil {
			return err
		}

		if value.Truthy(cond) {
			return e.execute(stmt.Then)
		} else if stmt.Else != nil {
			return e.execute(stmt.Else)
		}

		return nil
	case *expr.Block:
		return e.executeBlock(stmt.Stmts, e.env.NewChild(e.scope))
	}

	panic(fmt.Sprintf("eval: unhandled statement %T", stmt))
}

// executeBlock runs stmts with scope as the current frame and restores the
// previous frame on every exit path.
func (e *Evaluator) executeBlock(stmts []expr.Stmt, scope env.Scope) error {
	prev := e.scope
	e.scope = scope
	defer func() {
		e.scope = prev
		e.env.Release(scope)
	}()

	for _, stmt := range stmts {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}

	return nil
}
