/*
File    : sparkling/parser/parser_controls.go
Package : parser

break / continue / return.
*/
package parser

import (
	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/token"
)

// parseBreak parses `break;`.
func (p *Parser) parseBreak() *ast.Node {
	line := p.current().Line
	p.advance()
	if !p.expect(token.Semi, "after `break'") {
		return nil
	}
	return ast.NewLeaf(ast.Break, line)
}

// parseContinue parses `continue;`.
func (p *Parser) parseContinue() *ast.Node {
	line := p.current().Line
	p.advance()
	if !p.expect(token.Semi, "after `continue'") {
		return nil
	}
	return ast.NewLeaf(ast.Continue, line)
}

// parseReturn parses `return [expr];`, building a childless Return for the
// bare form or one with Left set to the returned expression.
func (p *Parser) parseReturn() *ast.Node {
	line := p.current().Line
	p.advance()

	if p.accept(token.Semi) {
		return ast.NewLeaf(ast.Return, line)
	}
	val := p.parseExpr()
	if val == nil {
		return nil
	}
	if !p.expect(token.Semi, "after `return' value") {
		return nil
	}
	return ast.NewUnary(ast.Return, line, val)
}
