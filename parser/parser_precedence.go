/*
File    : sparkling/parser/parser_precedence.go
Package : parser

The two generic precedence-climbing helpers spec.md §4.3 describes as
driving levels 2 through 12 of the ladder, plus the concrete left-associative
levels built from them. Level 1 (assignment) lives in parser_assignments.go,
level 3 (conditional) in parser_conditionals.go, levels 13-14 (prefix/postfix)
in parser_expressions.go, and level 15 (term) in parser_literals.go.
*/
package parser

import (
	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/token"
)

// binOp pairs a token kind with the AST node kind it builds at a given
// precedence level.
type binOp struct {
	tok  token.Kind
	kind ast.Kind
}

// leftAssoc implements spec.md §4.3's L_left: parse one subexpr, then
// iterate (not recurse) consuming any of ops, each time parsing another
// subexpr and folding it onto the left.
func (p *Parser) leftAssoc(ops []binOp, sub func() *ast.Node) *ast.Node {
	lhs := sub()
	if lhs == nil {
		return nil
	}
	for {
		op, ok := p.matchOp(ops)
		if !ok {
			return lhs
		}
		line := p.current().Line
		p.advance()
		rhs := sub()
		if rhs == nil {
			return nil
		}
		lhs = ast.NewBinary(op.kind, line, lhs, rhs)
	}
}

// rightAssoc implements spec.md §4.3's L_right: parse one subexpr; if an
// operator follows, consume it and recurse on the same level for the
// right-hand side (so a long chain nests rightward instead of folding
// leftward like leftAssoc).
func (p *Parser) rightAssoc(ops []binOp, sub func() *ast.Node, self func() *ast.Node) *ast.Node {
	lhs := sub()
	if lhs == nil {
		return nil
	}
	op, ok := p.matchOp(ops)
	if !ok {
		return lhs
	}
	line := p.current().Line
	p.advance()
	rhs := self()
	if rhs == nil {
		return nil
	}
	return ast.NewBinary(op.kind, line, lhs, rhs)
}

func (p *Parser) matchOp(ops []binOp) (binOp, bool) {
	cur := p.current().Kind
	for _, op := range ops {
		if op.tok == cur {
			return op, true
		}
	}
	return binOp{}, false
}

// Level 2: concatenation, left-assoc.
var concatOps = []binOp{{token.Concat, ast.Concat}}

func (p *Parser) parseConcat() *ast.Node {
	return p.leftAssoc(concatOps, p.parseConditional)
}

// Level 4: logical or, left-assoc.
var logOrOps = []binOp{{token.OrOr, ast.LogOr}}

func (p *Parser) parseLogOr() *ast.Node {
	return p.leftAssoc(logOrOps, p.parseLogAnd)
}

// Level 5: logical and, left-assoc.
var logAndOps = []binOp{{token.AndAnd, ast.LogAnd}}

func (p *Parser) parseLogAnd() *ast.Node {
	return p.leftAssoc(logAndOps, p.parseComparison)
}

// Level 6: equality/relational comparisons, left-assoc.
var comparisonOps = []binOp{
	{token.Eq, ast.Equal},
	{token.Ne, ast.NotEq},
	{token.Lt, ast.Less},
	{token.Gt, ast.Greater},
	{token.Le, ast.LEq},
	{token.Ge, ast.GEq},
}

func (p *Parser) parseComparison() *ast.Node {
	return p.leftAssoc(comparisonOps, p.parseBitOr)
}

// Level 7: bitwise or, left-assoc.
var bitOrOps = []binOp{{token.Pipe, ast.BitOr}}

func (p *Parser) parseBitOr() *ast.Node {
	return p.leftAssoc(bitOrOps, p.parseBitXor)
}

// Level 8: bitwise xor, left-assoc.
var bitXorOps = []binOp{{token.Caret, ast.BitXor}}

func (p *Parser) parseBitXor() *ast.Node {
	return p.leftAssoc(bitXorOps, p.parseBitAnd)
}

// Level 9: bitwise and, left-assoc.
var bitAndOps = []binOp{{token.Amp, ast.BitAnd}}

func (p *Parser) parseBitAnd() *ast.Node {
	return p.leftAssoc(bitAndOps, p.parseShift)
}

// Level 10: shifts, left-assoc.
var shiftOps = []binOp{
	{token.Shl, ast.Shl},
	{token.Shr, ast.Shr},
}

func (p *Parser) parseShift() *ast.Node {
	return p.leftAssoc(shiftOps, p.parseAdditive)
}

// Level 11: additive, left-assoc.
var additiveOps = []binOp{
	{token.Plus, ast.Add},
	{token.Minus, ast.Sub},
}

func (p *Parser) parseAdditive() *ast.Node {
	return p.leftAssoc(additiveOps, p.parseMultiplicative)
}

// Level 12: multiplicative, left-assoc.
var multiplicativeOps = []binOp{
	{token.Star, ast.Mul},
	{token.Slash, ast.Div},
	{token.Percent, ast.Mod},
}

func (p *Parser) parseMultiplicative() *ast.Node {
	return p.leftAssoc(multiplicativeOps, p.parsePrefix)
}
