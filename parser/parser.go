package parser

import (
	"fmt"
	"slices"

	interp "github.com/havrydotdev/treelox/interpreter"
	"github.com/havrydotdev/treelox/token"
	"github.com/havrydotdev/treelox/value"
)

// Error is a syntax error located at a token.
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Error() string {
	if e.Token.Kind == token.Eof {
		return fmt.Sprintf("[line %d] Error at end: %s", e.Token.Line, e.Message)
	}

	return fmt.Sprintf("[line %d] Error at '%s': %s", e.Token.Line, e.Token.Lexeme, e.Message)
}

type Parser[E any, S any] struct {
	current uint
	errors  []error
	tokens  []token.Token
	alg     interp.Alg[E, S]
}

// New expects tokens terminated by Eof, as the scanner produces them.
func New[E any, S any](tokens []token.Token, alg interp.Alg[E, S]) *Parser[E, S] {
	return &Parser[E, S]{tokens: tokens, alg: alg, current: 0}
}

// Parse returns every statement it could build and every syntax error it met.
// Statements are only safe to run when no errors were returned.
func (p *Parser[E, S]) Parse() ([]S, []error) {
	var stmts []S
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.errors = append(p.errors, err)
			p.synchronize()
			continue
		}

		stmts = append(stmts, stmt)
	}

	return stmts, p.errors
}

func (p *Parser[E, S]) declaration() (S, error) {
	if p.match(token.Var) {
		return p.varDeclaration()
	}

	return p.statement()
}

func (p *Parser[E, S]) varDeclaration() (S, error) {
	name, err := p.consume(token.Identifier, "Expect variable name.")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	var init *E
	if p.match(token.Equal) {
		value, err := p.expression()
		if err != nil {
			return p.alg.NilStmt(), err
		}

		init = &value
	}

	_, err = p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	return p.alg.Var(name, init), nil
}

func (p *Parser[E, S]) statement() (S, error) {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.LeftBrace):
		return p.block()
	case p.match(token.Class, token.Fun, token.For, token.While, token.Return):
		return p.alg.NilStmt(), p.error(p.previous(), fmt.Sprintf("'%s' statements are not supported.", p.previous().Lexeme))
	default:
		return p.expressionStatement()
	}
}

func (p *Parser[E, S]) printStatement() (S, error) {
	expr, err := p.expression()
	if err != nil {
		return p.alg.NilStmt(), err
	}

	_, err = p.consume(token.Semicolon, "Expect ';' after value.")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	return p.alg.Print(expr), nil
}

func (p *Parser[E, S]) ifStatement() (S, error) {
	_, err := p.consume(token.LeftParen, "Expect '(' after 'if'.")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	cond, err := p.expression()
	if err != nil {
		return p.alg.NilStmt(), err
	}

	_, err = p.consume(token.RightParen, "Expect ')' after if condition.")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	then, err := p.statement()
	if err != nil {
		return p.alg.NilStmt(), err
	}

	var _else *S
	if p.match(token.Else) {
		stmt, err := p.statement()
		if err != nil {
			return p.alg.NilStmt(), err
		}

		_else = &stmt
	}

	return p.alg.If(cond, then, _else), nil
}

func (p *Parser[E, S]) block() (S, error) {
	var stmts []S
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return p.alg.NilStmt(), err
		}

		stmts = append(stmts, stmt)
	}

	_, err := p.consume(token.RightBrace, "Expect '}' after block.")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	return p.alg.Block(stmts), nil
}

func (p *Parser[E, S]) expressionStatement() (S, error) {
	expr, err := p.expression()
	if err != nil {
		return p.alg.NilStmt(), err
	}

	_, err = p.consume(token.Semicolon, "Expect ';' after expression.")
	if err != nil {
		return p.alg.NilStmt(), err
	}

	return p.alg.ExprStatement(expr), nil
}

func (p *Parser[E, S]) expression() (E, error) {
	return p.assignment()
}

// assignment only accepts a bare identifier as target. The algebra result
// is opaque, so the target is recognised from the tokens before the '='.
func (p *Parser[E, S]) assignment() (E, error) {
	start := p.current
	expr, err := p.or()
	if err != nil {
		return p.alg.NilExpr(), err
	}

	if p.match(token.Equal) {
		equals := p.current - 1
		value, err := p.assignment()
		if err != nil {
			return p.alg.NilExpr(), err
		}

		target := p.tokens[start]
		if equals == start+1 && target.Kind == token.Identifier {
			return p.alg.Assign(target, value), nil
		}

		return p.alg.NilExpr(), p.error(p.tokens[equals], "Invalid assignment target.")
	}

	return expr, nil
}

func (p *Parser[E, S]) or() (E, error) {
	expr, err := p.and()
	if err != nil {
		return p.alg.NilExpr(), err
	}

	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return p.alg.NilExpr(), err
		}

		expr = p.alg.Logical(op, expr, right)
	}

	return expr, nil
}

func (p *Parser[E, S]) and() (E, error) {
	expr, err := p.equality()
	if err != nil {
		return p.alg.NilExpr(), err
	}

	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return p.alg.NilExpr(), err
		}

		expr = p.alg.Logical(op, expr, right)
	}

	return expr, nil
}

func (p *Parser[E, S]) equality() (E, error) {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser[E, S]) comparison() (E, error) {
	return p.binary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser[E, S]) term() (E, error) {
	return p.binary(p.factor, token.Minus, token.Plus)
}

func (p *Parser[E, S]) factor() (E, error) {
	return p.binary(p.unary, token.Slash, token.Star)
}

// binary parses a left-associative chain of operands joined by kinds.
func (p *Parser[E, S]) binary(operand func() (E, error), kinds ...token.Kind) (E, error) {
	expr, err := operand()
	if err != nil {
		return p.alg.NilExpr(), err
	}

	for p.match(kinds...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return p.alg.NilExpr(), err
		}

		expr = p.alg.Binary(op, expr, right)
	}

	return expr, nil
}

func (p *Parser[E, S]) unary() (E, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return p.alg.NilExpr(), err
		}

		return p.alg.Unary(op, right), nil
	}

	return p.primary()
}

func (p *Parser[E, S]) primary() (E, error) {
	switch {
	case p.match(token.Identifier):
		return p.alg.Variable(p.previous()), nil
	case p.match(token.False):
		return p.alg.Literal(value.Bool(false)), nil
	case p.match(token.True):
		return p.alg.Literal(value.Bool(true)), nil
	case p.match(token.Nil):
		return p.alg.Literal(value.Nil{}), nil
	case p.match(token.Number, token.String):
		return p.alg.Literal(value.FromLiteral(p.previous().Literal)), nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return p.alg.NilExpr(), err
		}

		_, err = p.consume(token.RightParen, "Expect ')' after expression.")
		if err != nil {
			return p.alg.NilExpr(), err
		}

		return p.alg.Grouping(expr), nil
	}

	return p.alg.NilExpr(), p.error(p.peek(), "Expect expression.")
}

// synchronize method moves cursor
// to the next statement
func (p *Parser[E, S]) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}

		p.advance()
	}
}

func (p *Parser[E, S]) error(tok token.Token, message string) error {
	return &Error{Token: tok, Message: message}
}

func (p *Parser[E, S]) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	return token.NilV, p.error(p.peek(), message)
}

func (p *Parser[E, S]) match(kinds ...token.Kind) bool {
	if slices.ContainsFunc(kinds, p.check) {
		p.advance()
		return true
	}

	return false
}

func (p *Parser[E, S]) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().Kind == kind
}

func (p *Parser[E, S]) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p *Parser[E, S]) isAtEnd() bool {
	return p.peek().Kind == token.Eof
}

func (p *Parser[E, S]) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser[E, S]) previous() token.Token {
	return p.tokens[p.current-1]
}
