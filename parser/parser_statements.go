/*
File    : sparkling/parser/parser_statements.go
Package : parser

parseStmt ties every other production in this package together: the
dispatch table spec.md §4.2 describes, plus block/empty/expression
statements, which have no other natural home.
*/
package parser

import (
	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/token"
)

// parseStmt dispatches on the current token kind (spec.md §4.2). isGlobal
// gates the `function` keyword: a function statement is only legal at file
// scope; inside a block it is parsed as an expression statement instead (a
// bare function expression followed by `;`), matching the function-stmt-vs-
// expr scope rule.
func (p *Parser) parseStmt(isGlobal bool) *ast.Node {
	if p.err != nil {
		return nil
	}
	switch p.current().Kind {
	case token.KwIf:
		return p.parseIf()
	case token.KwWhile:
		return p.parseWhile()
	case token.KwDo:
		return p.parseDo()
	case token.KwFor:
		return p.parseFor()
	case token.KwForeach:
		return p.parseForeach()
	case token.KwBreak:
		return p.parseBreak()
	case token.KwContinue:
		return p.parseContinue()
	case token.KwReturn:
		return p.parseReturn()
	case token.Semi:
		return p.parseEmpty()
	case token.LBrace:
		return p.parseBlock()
	case token.KwVar:
		return p.parseVarDecl()
	case token.KwFunction:
		if isGlobal {
			return p.parseFunction(true)
		}
		return p.parseExprStmt()
	default:
		return p.parseExprStmt()
	}
}

// parseEmpty parses a bare `;`.
func (p *Parser) parseEmpty() *ast.Node {
	line := p.current().Line
	p.advance()
	return ast.NewLeaf(ast.Empty, line)
}

// parseExprStmt parses an expression followed by `;`.
func (p *Parser) parseExprStmt() *ast.Node {
	expr := p.parseExpr()
	if expr == nil {
		return nil
	}
	if !p.expect(token.Semi, "after expression statement") {
		return nil
	}
	return expr
}

// parseBlock parses `{ stmt* }`. An empty block collapses to Empty; a
// non-empty one is built via the list-flattening hack (ast.FlattenList)
// into a Block-shaped node, whether that is a single-statement wrapper or a
// Compound-rewritten spine.
func (p *Parser) parseBlock() *ast.Node {
	line := p.current().Line
	if !p.expect(token.LBrace, "to start block") {
		return nil
	}
	var stmts []*ast.Node
	for p.current().Kind != token.RBrace && p.err == nil {
		if p.atEOF() {
			p.fail(p.current().Line, "unterminated block")
			return nil
		}
		stmt := p.parseStmt(false)
		if stmt == nil {
			return nil
		}
		stmts = append(stmts, stmt)
	}
	if !p.expect(token.RBrace, "to close block") {
		return nil
	}
	return ast.FlattenList(stmts, ast.Empty, ast.Block, line)
}
