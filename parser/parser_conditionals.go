/*
File    : sparkling/parser/parser_conditionals.go
Package : parser

Level 3 of the precedence ladder (the `cond ? then : else` ternary, right
taking a full expression for its then-branch but recursing at its own level
for the else-branch so chained ternaries nest rightward) and the `if`
statement, including its `else if` chain.
*/
package parser

import (
	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/token"
)

// parseConditional is level 3: `a ? b : c`. Unlike the other levels this is
// not a generic binOp fold — the branches are held under a Branches node so
// CondExpr always has exactly (Left=cond, Right=Branches(then, else)).
func (p *Parser) parseConditional() *ast.Node {
	cond := p.parseLogOr()
	if cond == nil {
		return nil
	}
	if p.current().Kind != token.Question {
		return cond
	}
	line := p.current().Line
	p.advance()

	then := p.parseExpr()
	if then == nil {
		return nil
	}
	if !p.expect(token.Colon, "in conditional expression") {
		return nil
	}
	els := p.parseConditional()
	if els == nil {
		return nil
	}
	branches := ast.NewBinary(ast.Branches, line, then, els)
	return ast.NewBinary(ast.CondExpr, line, cond, branches)
}

// parseIf parses `if expr block [else (block|if)]` (no parentheses around
// the condition; only a block or another `if` may follow `else`, so
// `else if` chains are right-nested If nodes rather than a bare statement).
func (p *Parser) parseIf() *ast.Node {
	line := p.current().Line
	p.advance() // consume `if`

	cond := p.parseExpr()
	if cond == nil {
		return nil
	}
	then := p.parseBlock()
	if then == nil {
		return nil
	}

	if !p.accept(token.KwElse) {
		return ast.NewBinary(ast.If, line, cond, ast.NewBinary(ast.Branches, line, then, nil))
	}

	var els *ast.Node
	switch p.current().Kind {
	case token.KwIf:
		els = p.parseIf()
	case token.LBrace:
		els = p.parseBlock()
	default:
		p.fail(p.current().Line, "expected block or `if' after `else'")
		return nil
	}
	if els == nil {
		return nil
	}
	return ast.NewBinary(ast.If, line, cond, ast.NewBinary(ast.Branches, line, then, els))
}
