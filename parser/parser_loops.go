/*
File    : sparkling/parser/parser_loops.go
Package : parser

while / do-while / for / foreach statements. None of the headers are
parenthesized (spec grammar: `while expr block`, `for expr ; expr ; expr
block`, `foreach IDENT as IDENT in expr block`). `for` and `foreach` share
the three-deep ForHeader spine built by ast.NewForHeader.
*/
package parser

import (
	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/token"
)

// parseWhile parses `while expr block`, building While(Left=cond,
// Right=body).
func (p *Parser) parseWhile() *ast.Node {
	line := p.current().Line
	p.advance() // consume `while`

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	return ast.NewBinary(ast.While, line, cond, body)
}

// parseDo parses `do block while expr ;`. Per spec.md §4.4 the resulting
// node stores Left=cond, Right=body even though the body is parsed first.
func (p *Parser) parseDo() *ast.Node {
	line := p.current().Line
	p.advance() // consume `do`

	body := p.parseBlock()
	if body == nil {
		return nil
	}
	if !p.expect(token.KwWhile, "after `do' body") {
		return nil
	}
	cond := p.parseExpr()
	if cond == nil {
		return nil
	}
	if !p.expect(token.Semi, "after `do...while' condition") {
		return nil
	}
	return ast.NewBinary(ast.Do, line, cond, body)
}

// parseFor parses `for init ; cond ; incr block`, where any of the three
// header expressions may be empty. No declarations are allowed in the
// header — each part is a full expression. Builds For(Left=ForHeader
// spine, Right=body).
func (p *Parser) parseFor() *ast.Node {
	line := p.current().Line
	p.advance() // consume `for`

	var init *ast.Node
	if p.current().Kind != token.Semi {
		init = p.parseExpr()
		if init == nil {
			return nil
		}
	}
	if !p.expect(token.Semi, "after `for' initializer") {
		return nil
	}

	var cond *ast.Node
	if p.current().Kind != token.Semi {
		cond = p.parseExpr()
		if cond == nil {
			return nil
		}
	}
	if !p.expect(token.Semi, "after `for' condition") {
		return nil
	}

	var incr *ast.Node
	if p.current().Kind != token.LBrace {
		incr = p.parseExpr()
		if incr == nil {
			return nil
		}
	}

	body := p.parseBlock()
	if body == nil {
		return nil
	}
	header := ast.NewForHeader(line, init, cond, incr)
	return ast.NewBinary(ast.For, line, header, body)
}

// parseForeach parses `foreach IDENT as IDENT in expr block`, building
// Foreach(Left=ForHeader spine holding key/val/iterable, Right=body).
func (p *Parser) parseForeach() *ast.Node {
	line := p.current().Line
	p.advance() // consume `foreach`

	if p.current().Kind != token.Ident {
		p.fail(p.current().Line, "expected identifier after `foreach'")
		return nil
	}
	key := ast.NewIdent(p.current().Payload.Str, p.current().Line)
	p.advance()

	if !p.expect(token.KwAs, "after `foreach' key identifier") {
		return nil
	}
	if p.current().Kind != token.Ident {
		p.fail(p.current().Line, "expected identifier after `as'")
		return nil
	}
	val := ast.NewIdent(p.current().Payload.Str, p.current().Line)
	p.advance()

	if !p.expect(token.KwIn, "after `foreach' value identifier") {
		return nil
	}
	iterable := p.parseExpr()
	if iterable == nil {
		return nil
	}
	body := p.parseBlock()
	if body == nil {
		return nil
	}
	header := ast.NewForHeader(line, key, val, iterable)
	return ast.NewBinary(ast.Foreach, line, header, body)
}
