package expr

import (
	"testing"

	"github.com/havrydotdev/treelox/token"
	"github.com/havrydotdev/treelox/value"
)

func op(kind token.Kind, lexeme string) token.Token {
	return token.New(kind, lexeme, nil, 1)
}

func TestSprint(t *testing.T) {
	b := NewBuilder()
	x := token.New(token.Identifier, "x", nil, 1)
	one := b.Literal(value.Number(1))
	greeting := b.Literal(value.String("hi"))
	elseBranch := b.Print(b.Literal(value.Nil{}))
	init := b.Binary(op(token.Plus, "+"), one, b.Grouping(b.Literal(value.Number(2.5))))

	tests := []struct {
		name string
		stmt Stmt
		want string
	}{
		{
			name: "var with initializer",
			stmt: b.Var(x, &init),
			want: "(var x (+ 1 (group 2.5)))",
		},
		{
			name: "var without initializer",
			stmt: b.Var(x, nil),
			want: "(var x)",
		},
		{
			name: "print string",
			stmt: b.Print(greeting),
			want: `(print "hi")`,
		},
		{
			name: "if else",
			stmt: b.If(b.Logical(op(token.Or, "or"), b.Variable(x), b.Literal(value.Bool(false))),
				b.ExprStatement(b.Assign(x, b.Unary(op(token.Minus, "-"), one))), &elseBranch),
			want: "(if (or x false) (assign x (- 1)) (print nil))",
		},
		{
			name: "block",
			stmt: b.Block([]Stmt{b.Print(b.Variable(x)), b.If(b.Literal(value.Bool(true)), b.Block(nil), nil)}),
			want: "(block (print x) (if true (block)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sprint(tt.stmt); got != tt.want {
				t.Errorf("Sprint() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFoldRebuilds(t *testing.T) {
	b := NewBuilder()
	x := token.New(token.Identifier, "x", nil, 3)
	orig := b.Block([]Stmt{
		b.ExprStatement(b.Assign(x, b.Binary(op(token.Star, "*"), b.Variable(x), b.Literal(value.Number(3))))),
	})

	rebuilt := FoldStmt[Expr, Stmt](b, orig)
	if Sprint(rebuilt) != Sprint(orig) {
		t.Errorf("fold changed the tree: %s vs %s", Sprint(rebuilt), Sprint(orig))
	}
}

type unknownExpr struct{ Expr }

func TestFoldUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on unknown node")
		}
	}()

	SprintExpr(unknownExpr{})
}
