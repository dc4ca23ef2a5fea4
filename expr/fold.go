package expr

import (
	"fmt"

	interp "github.com/havrydotdev/treelox/interpreter"
)

// FoldExpr replays a tree through any algebra.
func FoldExpr[E, S any](alg interp.Alg[E, S], e Expr) E {
	switch e := e.(type) {
	case *Literal:
		return alg.Literal(e.Value)
	case *Grouping:
		return alg.Grouping(FoldExpr(alg, e.Inner))
	case *Unary:
		return alg.Unary(e.Op, FoldExpr(alg, e.Right))
	case *Binary:
		return alg.Binary(e.Op, FoldExpr(alg, e.Left), FoldExpr(alg, e.Right))
	case *Logical:
		return alg.Logical(e.Op, FoldExpr(alg, e.Left), FoldExpr(alg, e.Right))
	case *Variable:
		return alg.Variable(e.Name)
	case *Assign:
		return alg.Assign(e.Name, FoldExpr(alg, e.Value))
	}

	panic(fmt.Sprintf("expr: unknown expression node %T", e))
}

func FoldStmt[E, S any](alg interp.Alg[E, S], s Stmt) S {
	switch s := s.(type) {
	case *Expression:
		return alg.ExprStatement(FoldExpr(alg, s.Expr))
	case *Print:
		return alg.Print(FoldExpr(alg, s.Expr))
	case *Var:
		if s.Init == nil {
			return alg.Var(s.Name, nil)
		}

		init := FoldExpr(alg, s.Init)
		return alg.Var(s.Name, &init)
	case *If:
		cond := FoldExpr(alg, s.Cond)
		then := FoldStmt(alg, s.Then)
		if s.Else == nil {
			return alg.If(cond, then, nil)
		}

		_else := FoldStmt(alg, s.Else)
		return alg.If(cond, then, &_else)
	case *Block:
		stmts := make([]S, 0, len(s.Stmts))
		for _, stmt := range s.Stmts {
			stmts = append(stmts, FoldStmt(alg, stmt))
		}

		return alg.Block(stmts)
	}

	panic(fmt.Sprintf("expr: unknown statement node %T", s))
}
