/*
File    : sparkling/parser/parser_assignments.go
Package : parser

Level 1 of the precedence ladder (assignment, right-assoc over the twelve
plain/compound operators) and the `var` declaration statement, whose
initializers are parsed at level 2 (concatenation) rather than as a full
assignment expression.
*/
package parser

import (
	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/token"
)

var assignOps = []binOp{
	{token.Assign, ast.Assign},
	{token.PlusAssign, ast.AssignAdd},
	{token.MinusAssign, ast.AssignSub},
	{token.MulAssign, ast.AssignMul},
	{token.DivAssign, ast.AssignDiv},
	{token.ModAssign, ast.AssignMod},
	{token.AndAssign, ast.AssignAnd},
	{token.OrAssign, ast.AssignOr},
	{token.XorAssign, ast.AssignXor},
	{token.ShlAssign, ast.AssignShl},
	{token.ShrAssign, ast.AssignShr},
	{token.ConcatAssign, ast.AssignConcat},
}

// parseExpr is the full-expression entry point: level 1, assignment,
// right-associative over the twelve assign operators, bottoming out at
// level 2 (concatenation). A long `a = b = c` chain nests as
// Assign(a, Assign(b, c)) rather than folding left.
func (p *Parser) parseExpr() *ast.Node {
	return p.rightAssoc(assignOps, p.parseConcat, p.parseExpr)
}

// parseVarDecl parses a `var` statement: `var` name [`=` expr] (`,` name
// [`=` expr])* `;`, building the right-linked VarDecl chain spec.md §4.2
// describes.
func (p *Parser) parseVarDecl() *ast.Node {
	p.advance() // consume `var`

	var head *ast.Node
	for {
		if p.current().Kind != token.Ident {
			p.fail(p.current().Line, "expected identifier in `var' declaration, got `%s'", p.current().Kind)
			return nil
		}
		name := p.current().Payload.Str
		declLine := p.current().Line
		p.advance()

		var init *ast.Node
		if p.accept(token.Assign) {
			init = p.parseConcat()
			if init == nil {
				return nil
			}
		}
		head = ast.NewVarDecl(head, name, declLine, init)

		if !p.accept(token.Comma) {
			break
		}
	}
	if !p.expect(token.Semi, "after `var' declaration") {
		return nil
	}
	return head
}
