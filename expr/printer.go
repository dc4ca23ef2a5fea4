package expr

import (
	"fmt"
	"strconv"
	"strings"

	interp "github.com/havrydotdev/treelox/interpreter"
	"github.com/havrydotdev/treelox/token"
	"github.com/havrydotdev/treelox/value"
)

type Printer interface {
	Print() string
}

// implements Printer
type PrintFunc func() string

func (fn PrintFunc) Print() string {
	return fn()
}

// implements Alg[Printer, Printer]
type PrintExpr struct{}

var _ interp.Alg[Printer, Printer] = (*PrintExpr)(nil)

func NewPrinter() interp.Alg[Printer, Printer] {
	return &PrintExpr{}
}

// Sprint renders a statement in parenthesized prefix form.
func Sprint(s Stmt) string {
	return FoldStmt[Printer, Printer](NewPrinter(), s).Print()
}

func SprintExpr(e Expr) string {
	return FoldExpr[Printer, Printer](NewPrinter(), e).Print()
}

func (*PrintExpr) If(cond Printer, then Printer, _else *Printer) Printer {
	return PrintFunc(func() string {
		if _else == nil {
			return parenthesize("if", cond, then)
		}

		return parenthesize("if", cond, then, *_else)
	})
}

func (*PrintExpr) Block(stmts []Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("block", stmts...)
	})
}

func (*PrintExpr) Variable(name token.Token) Printer {
	return PrintFunc(func() string {
		return name.Lexeme
	})
}

func (*PrintExpr) Assign(name token.Token, value Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(fmt.Sprintf("assign %s", name.Lexeme), value)
	})
}

func (*PrintExpr) Var(name token.Token, init *Printer) Printer {
	return PrintFunc(func() string {
		if init == nil {
			return parenthesize(fmt.Sprintf("var %s", name.Lexeme))
		}

		return parenthesize(fmt.Sprintf("var %s", name.Lexeme), *init)
	})
}

func (*PrintExpr) Literal(v value.Value) Printer {
	return PrintFunc(func() string {
		if s, ok := v.(value.String); ok {
			return strconv.Quote(string(s))
		}

		return v.String()
	})
}

func (*PrintExpr) Grouping(expr Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("group", expr)
	})
}

func (*PrintExpr) Unary(op token.Token, right Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(op.Lexeme, right)
	})
}

func (*PrintExpr) Binary(op token.Token, left, right Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(op.Lexeme, left, right)
	})
}

func (*PrintExpr) Logical(op token.Token, left, right Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(op.Lexeme, left, right)
	})
}

func (*PrintExpr) Print(expr Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("print", expr)
	})
}

func (*PrintExpr) ExprStatement(expr Printer) Printer {
	return PrintFunc(func() string {
		return expr.Print()
	})
}

func (*PrintExpr) NilExpr() Printer {
	return PrintFunc(func() string {
		return "<nil>"
	})
}

func (*PrintExpr) NilStmt() Printer {
	return PrintFunc(func() string {
		return "<nil>"
	})
}

func parenthesize(name string, exprs ...Printer) string {
	parts := make([]string, 0, len(exprs)+1)
	parts = append(parts, name)
	for _, expr := range exprs {
		parts = append(parts, expr.Print())
	}

	return "(" + strings.Join(parts, " ") + ")"
}
