/*
File    : sparkling/parser/parser_functions.go
Package : parser

Function statements/expressions and the two argument-chain shapes: DeclArgs
(formal parameters, singly-linked via Right) and CallArgs (actual arguments,
head-growing via Left per spec.md §4.2 — the same shape as a left-assoc
binary operator chain).
*/
package parser

import (
	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/token"
)

// parseFunction parses a function definition. At file-scope statement
// position (asStmt true) the name is mandatory and the result is FuncStmt; as a term
// inside an expression (asStmt false) a name is not allowed — the expression
// form must be anonymous (spec.md §8 boundary: "function f() {} at program
// scope → FuncStmt; same text inside an expression → parse error (requires
// anonymous form)") — and the result is FuncExpr.
func (p *Parser) parseFunction(asStmt bool) *ast.Node {
	line := p.current().Line
	p.advance() // consume `function`

	var name string
	switch {
	case p.current().Kind == token.Ident && asStmt:
		name = p.current().Payload.Str
		p.advance()
	case p.current().Kind == token.Ident:
		p.fail(p.current().Line, "function expression must be anonymous")
		return nil
	case asStmt:
		p.fail(p.current().Line, "expected function name after `function'")
		return nil
	}

	if !p.expect(token.LParen, "after function name") {
		return nil
	}
	var declHead *ast.Node
	if p.current().Kind != token.RParen {
		for {
			if p.current().Kind != token.Ident {
				p.fail(p.current().Line, "expected parameter name")
				return nil
			}
			declHead = ast.NewDeclArg(declHead, p.current().Payload.Str, p.current().Line)
			p.advance()
			if !p.accept(token.Comma) {
				break
			}
		}
	}
	if !p.expect(token.RParen, "after function parameters") {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}

	kind := ast.FuncExpr
	if asStmt {
		kind = ast.FuncStmt
	}
	return &ast.Node{Kind: kind, Line: line, Name: name, Left: declHead, Right: body}
}

// parseCallArgs parses the comma-separated actual-argument list between an
// already-consumed `(` and the closing `)` (consumed here), building the
// head-growing CallArgs chain.
func (p *Parser) parseCallArgs() *ast.Node {
	var head *ast.Node
	if p.current().Kind != token.RParen {
		for {
			line := p.current().Line
			arg := p.parseExpr()
			if arg == nil {
				return nil
			}
			head = ast.NewCallArg(head, arg, line)
			if !p.accept(token.Comma) {
				break
			}
		}
	}
	if !p.expect(token.RParen, "after call arguments") {
		return nil
	}
	return head
}
