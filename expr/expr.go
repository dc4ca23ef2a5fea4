// Package expr holds the syntax tree the evaluator walks.
//
// Expr and Stmt are closed sums: only the node types declared here
// implement them.
package expr

import (
	"github.com/havrydotdev/treelox/token"
	"github.com/havrydotdev/treelox/value"
)

type Expr interface {
	exprNode()
}

type (
	Literal struct {
		Value value.Value
	}

	Grouping struct {
		Inner Expr
	}

	Unary struct {
		Op    token.Token
		Right Expr
	}

	Binary struct {
		Op          token.Token
		Left, Right Expr
	}

	// Logical is `and` / `or`; kept apart from Binary because it short-circuits.
	Logical struct {
		Op          token.Token
		Left, Right Expr
	}

	Variable struct {
		Name token.Token
	}

	Assign struct {
		Name  token.Token
		Value Expr
	}
)

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}

type Stmt interface {
	stmtNode()
}

type (
	Expression struct {
		Expr Expr
	}

	Print struct {
		Expr Expr
	}

	// Var declares Name; Init is nil when there is no initializer.
	Var struct {
		Name token.Token
		Init Expr
	}

	// If has a nil Else when there is no else branch.
	If struct {
		Cond Expr
		Then Stmt
		Else Stmt
	}

	Block struct {
		Stmts []Stmt
	}
)

func (*Expression) stmtNode() {}
func (*Print) stmtNode()      {}
func (*Var) stmtNode()        {}
func (*If) stmtNode()         {}
func (*Block) stmtNode()      {}
