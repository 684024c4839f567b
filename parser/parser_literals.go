/*
File    : sparkling/parser/parser_literals.go
Package : parser

Level 15 (term) dispatch: parenthesized expressions, function expressions,
identifiers, literals, and the `@[`/`@{` sequence/dict literals spec.md §9
flags as a documented extension over the reference parser (SPEC_FULL.md §4).
*/
package parser

import (
	"math"

	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/token"
	"github.com/sparkling-lang/sparkling/value"
)

// parseTerm dispatches on the current token per spec.md §4.3's term table.
func (p *Parser) parseTerm() *ast.Node {
	tok := p.current()
	switch tok.Kind {
	case token.LParen:
		p.advance()
		inner := p.parseExpr()
		if inner == nil {
			return nil
		}
		if !p.expect(token.RParen, "after parenthesized expression") {
			return nil
		}
		return inner

	case token.KwFunction:
		return p.parseFunction(false)

	case token.Ident:
		p.advance()
		return ast.NewIdent(tok.Payload.Str, tok.Line)

	case token.KwTrue:
		p.advance()
		return ast.NewLiteral(tok.Line, value.Boolean{Val: true})

	case token.KwFalse:
		p.advance()
		return ast.NewLiteral(tok.Line, value.Boolean{Val: false})

	case token.KwNil:
		p.advance()
		return ast.NewLiteral(tok.Line, value.Nil{})

	case token.KwNan:
		p.advance()
		return ast.NewLiteral(tok.Line, value.Float{Val: math.NaN()})

	case token.Int:
		p.advance()
		return ast.NewLiteral(tok.Line, value.Integer{Val: tok.Payload.Int})

	case token.Float:
		p.advance()
		return ast.NewLiteral(tok.Line, value.Float{Val: tok.Payload.Float})

	case token.String:
		p.advance()
		return ast.NewLiteral(tok.Line, value.String{Val: tok.Payload.Str})

	case token.AtLBrack:
		return p.parseSequenceLiteral()

	case token.AtLBrace:
		return p.parseDictLiteral()

	default:
		p.fail(tok.Line, "unexpected token `%s'", tok.Kind)
		return nil
	}
}

// parseSequenceLiteral parses `@[` expr (`,` expr)* `]` (trailing comma and
// empty sequence allowed), building a CallArgs-shaped head-growing chain
// under a Sequence node.
func (p *Parser) parseSequenceLiteral() *ast.Node {
	line := p.current().Line
	p.advance() // consume `@[`

	var head *ast.Node
	for p.current().Kind != token.RBracket {
		elem := p.parseExpr()
		if elem == nil {
			return nil
		}
		head = ast.NewCallArg(head, elem, line)
		if !p.accept(token.Comma) {
			break
		}
	}
	if !p.expect(token.RBracket, "after sequence literal") {
		return nil
	}
	return ast.NewUnary(ast.Sequence, line, head)
}

// parseDictLiteral parses `@{` (expr `:` expr (`,` expr `:` expr)*)? `}`,
// building a head-growing chain of KeyValue pairs under a DictLiteral node.
func (p *Parser) parseDictLiteral() *ast.Node {
	line := p.current().Line
	p.advance() // consume `@{`

	var head *ast.Node
	for p.current().Kind != token.RBrace {
		keyLine := p.current().Line
		key := p.parseExpr()
		if key == nil {
			return nil
		}
		if !p.expect(token.Colon, "after dict literal key") {
			return nil
		}
		val := p.parseExpr()
		if val == nil {
			return nil
		}
		pair := ast.NewBinary(ast.KeyValue, keyLine, key, val)
		head = ast.NewCallArg(head, pair, keyLine)
		if !p.accept(token.Comma) {
			break
		}
	}
	if !p.expect(token.RBrace, "after dict literal") {
		return nil
	}
	return ast.NewUnary(ast.DictLiteral, line, head)
}
