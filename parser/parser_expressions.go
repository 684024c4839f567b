/*
File    : sparkling/parser/parser_expressions.go
Package : parser

Level 13 (prefix, right-assoc) and level 14 (postfix, left-assoc iterative
chain) of the precedence ladder. Level 15 (term dispatch) lives in
parser_literals.go.
*/
package parser

import (
	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/token"
)

var prefixKinds = map[token.Kind]ast.Kind{
	token.Plus:     ast.UnPlus,
	token.Minus:    ast.UnMinus,
	token.Incr:     ast.PreIncr,
	token.Decr:     ast.PreDecr,
	token.Not:      ast.LogNot,
	token.Tilde:    ast.BitNot,
	token.Hash:     ast.NthArg,
	token.KwSizeof: ast.SizeOf,
	token.KwTypeof: ast.TypeOf,
}

// parsePrefix is level 13: `+ - ++ -- ! ~ # sizeof typeof`, right-assoc —
// each application wraps the result of recursing on the same level, so
// `!!x` is LogNot(LogNot(x)). Bottoms out at level 14 (postfix).
func (p *Parser) parsePrefix() *ast.Node {
	kind, ok := prefixKinds[p.current().Kind]
	if !ok {
		return p.parsePostfix()
	}
	line := p.current().Line
	p.advance()
	operand := p.parsePrefix()
	if operand == nil {
		return nil
	}
	return ast.NewUnary(kind, line, operand)
}

// parsePostfix is level 14: an iterative chain of `[expr]`, `(args?)`,
// `++`, `--`, `.IDENT`/`->IDENT` applications, each wrapping the
// accumulated expression so far (left-assoc by construction).
func (p *Parser) parsePostfix() *ast.Node {
	expr := p.parseTerm()
	if expr == nil {
		return nil
	}
	for {
		switch p.current().Kind {
		case token.LBracket:
			line := p.current().Line
			p.advance()
			idx := p.parseExpr()
			if idx == nil {
				return nil
			}
			if !p.expect(token.RBracket, "after subscript expression") {
				return nil
			}
			expr = ast.NewBinary(ast.ArrSub, line, expr, idx)

		case token.LParen:
			line := p.current().Line
			p.advance()
			args := p.parseCallArgs()
			if p.failed() {
				return nil
			}
			expr = ast.NewBinary(ast.FuncCall, line, expr, args)

		case token.Dot, token.Arrow:
			line := p.current().Line
			op := p.current().Literal
			p.advance()
			if p.current().Kind != token.Ident {
				p.fail(p.current().Line, "expected member name after `%s'", op)
				return nil
			}
			member := ast.NewIdent(p.current().Payload.Str, p.current().Line)
			p.advance()
			expr = ast.NewBinary(ast.MemberOf, line, expr, member)

		case token.Incr:
			expr = ast.NewUnary(ast.PostIncr, p.current().Line, expr)
			p.advance()

		case token.Decr:
			expr = ast.NewUnary(ast.PostDecr, p.current().Line, expr)
			p.advance()

		default:
			return expr
		}
	}
}
