package expr

import (
	interp "github.com/havrydotdev/treelox/interpreter"
	"github.com/havrydotdev/treelox/token"
	"github.com/havrydotdev/treelox/value"
)

// Builder is the algebra that produces syntax trees.
type Builder struct{}

var _ interp.Alg[Expr, Stmt] = Builder{}

func NewBuilder() interp.Alg[Expr, Stmt] {
	return Builder{}
}

func (Builder) Grouping(expr Expr) Expr {
	return &Grouping{Inner: expr}
}

func (Builder) Literal(v value.Value) Expr {
	return &Literal{Value: v}
}

func (Builder) Variable(name token.Token) Expr {
	return &Variable{Name: name}
}

func (Builder) Unary(op token.Token, right Expr) Expr {
	return &Unary{Op: op, Right: right}
}

func (Builder) Assign(name token.Token, value Expr) Expr {
	return &Assign{Name: name, Value: value}
}

func (Builder) Binary(op token.Token, left, right Expr) Expr {
	return &Binary{Op: op, Left: left, Right: right}
}

func (Builder) Logical(op token.Token, left, right Expr) Expr {
	return &Logical{Op: op, Left: left, Right: right}
}

func (Builder) Print(expr Expr) Stmt {
	return &Print{Expr: expr}
}

func (Builder) Block(stmts []Stmt) Stmt {
	return &Block{Stmts: stmts}
}

func (Builder) ExprStatement(expr Expr) Stmt {
	return &Expression{Expr: expr}
}

func (Builder) If(cond Expr, then Stmt, _else *Stmt) Stmt {
	stmt := &If{Cond: cond, Then: then}
	if _else != nil {
		stmt.Else = *_else
	}

	return stmt
}

func (Builder) Var(name token.Token, init *Expr) Stmt {
	stmt := &Var{Name: name}
	if init != nil {
		stmt.Init = *init
	}

	return stmt
}

func (Builder) NilExpr() Expr {
	return nil
}

func (Builder) NilStmt() Stmt {
	return nil
}
