/*
File    : sparkling/parser/parser.go
Package : parser

Package parser implements Sparkling's recursive-descent parser: pure
top-down dispatch over the token stream produced by package lexer, building
the AST described in package ast. There is no Pratt/operator-table
indirection — each precedence level in spec.md §4.3 is its own function,
composed the way the grammar itself is laid out.
*/
package parser

import (
	"fmt"

	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/lexer"
	"github.com/sparkling-lang/sparkling/token"
)

// Parser holds all per-parse state: the lexer it drives, whether an error
// has already been reported, and the first error seen (spec.md §7: the
// first failure aborts the parse; later productions short-circuit).
//
// A Parser is single-owner (spec.md §5): never share one across goroutines.
// Once errored it is done — create a new Parser (via Parse) for the next
// source text.
type Parser struct {
	lex *lexer.Lexer
	err *SyntaxError
	sink func(*SyntaxError) *SyntaxError
}

// newParser creates a Parser over src and primes its one-token lookahead.
func newParser(src string) *Parser {
	p := &Parser{lex: lexer.New(src), sink: reportToStderr}
	p.lex.Advance()
	if lerr := p.lex.Err(); lerr != nil {
		p.fail(lerr.Line, "%s", lerr.Msg)
	}
	return p
}

// Parse is the parser core's single entry point (spec.md §4.2). It parses
// one complete translation unit and returns either the root Program node or
// nil with the first syntax error, which has already been written to the
// process's stderr sink (colorized, per spec.md §6).
func Parse(src string) (*ast.Node, *SyntaxError) {
	p := newParser(src)
	return p.parseProgram()
}

// current returns the token the parser is positioned on.
func (p *Parser) current() token.Token {
	return p.lex.Current()
}

// atEOF reports whether the current token is EOF.
func (p *Parser) atEOF() bool {
	return p.current().Kind == token.EOF
}

// advance moves the lexer to the next token. If the lexer hits a lexical
// error, that becomes the parser's error (first-failure-wins, so a
// already-set error is never overwritten).
func (p *Parser) advance() {
	if p.err != nil {
		return
	}
	if !p.lex.Advance() {
		if lerr := p.lex.Err(); lerr != nil {
			p.fail(lerr.Line, "%s", lerr.Msg)
		}
		// Otherwise Advance returned false because of EOF, which is not an
		// error — p.current() now reports token.EOF.
	}
}

// accept consumes the current token and advances if its kind matches, and
// reports whether it did. On a non-match nothing is consumed.
func (p *Parser) accept(kind token.Kind) bool {
	if p.err != nil {
		return false
	}
	if p.current().Kind != kind {
		return false
	}
	p.advance()
	return true
}

// acceptAny consumes and advances if the current token matches any of
// kinds, returning the matching index or -1.
func (p *Parser) acceptAny(kinds ...token.Kind) int {
	if p.err != nil {
		return -1
	}
	cur := p.current().Kind
	for i, k := range kinds {
		if cur == k {
			p.advance()
			return i
		}
	}
	return -1
}

// expect requires the current token to have the given kind, advancing past
// it on success or failing with a diagnostic naming what was expected
// (spec.md §7: "missing required terminal").
func (p *Parser) expect(kind token.Kind, context string) bool {
	if p.current().Kind == kind {
		p.advance()
		return true
	}
	p.fail(p.current().Line, "expected `%s' %s, got `%s'", kind, context, p.current().Kind)
	return false
}

// fail records the first syntax error, reports it to the sink, and leaves
// the parser in its terminal Errored state. Later calls are no-ops so the
// first error always wins.
func (p *Parser) fail(line int, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	e := &SyntaxError{Line: line, Msg: fmt.Sprintf(format, args...)}
	p.err = p.sink(e)
}

// failed reports whether the parser has already recorded an error.
func (p *Parser) failed() bool {
	return p.err != nil
}

// parseProgram implements spec.md §4.2's entry point: an empty source is an
// empty Program with no error; otherwise statements accumulate until EOF.
// A trailing token that cannot start a statement is reported by the
// statement production that meets it (e.g. "unexpected token"); the
// "garbage after input" check only fires if the loop stops short of EOF
// without an error having been recorded.
func (p *Parser) parseProgram() (*ast.Node, *SyntaxError) {
	if p.err != nil {
		return nil, p.err
	}
	if p.atEOF() {
		return ast.FlattenList(nil, ast.Program, ast.Program, 1), nil
	}

	var stmts []*ast.Node
	for !p.atEOF() && p.err == nil {
		stmt := p.parseStmt(true)
		if stmt == nil {
			break
		}
		stmts = append(stmts, stmt)
	}
	if p.err != nil {
		return nil, p.err
	}
	if !p.atEOF() {
		p.fail(p.current().Line, "garbage after input")
		return nil, p.err
	}
	return ast.FlattenList(stmts, ast.Program, ast.Program, 1), nil
}
