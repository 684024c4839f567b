/*
File    : sparkling/lexer/lexer.go
Package : lexer

Package lexer performs lexical analysis of Sparkling source text. It scans
byte by byte, skipping whitespace and slash-star block comments, and recognizes
keywords, identifiers, numeric/string/character literals and punctuation.
*/
package lexer

import (
	"fmt"

	"github.com/sparkling-lang/sparkling/token"
)

// Lexer scans Sparkling source text into a single-token lookahead stream.
// It owns the read cursor, the current byte under examination, and the
// 1-based line counter used to attribute every token to a source line.
type Lexer struct {
	src     string
	pos     int  // index of cur in src
	cur     byte // byte at pos, or 0 at end of input
	line    int
	current token.Token
	eof     bool
	err     *LexError
}

// LexError is a lexical failure: an unterminated comment/string, a bad
// escape sequence, a malformed or overflowing numeric literal, or an
// unrecognized byte.
type LexError struct {
	Line int
	Msg  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// New creates a Lexer positioned at the start of src, line 1, with no
// current token yet buffered. Call Advance once before reading Current.
func New(src string) *Lexer {
	lx := &Lexer{src: src, line: 1}
	if len(src) > 0 {
		lx.cur = src[0]
	}
	return lx
}

// Current returns the most recently produced token. Its zero value before
// the first Advance is meaningless; callers always Advance first.
func (lx *Lexer) Current() token.Token { return lx.current }

// Line returns the lexer's current line counter (the line of the byte the
// cursor is sitting on, not necessarily the line of Current()).
func (lx *Lexer) Line() int { return lx.line }

// Err returns the first lexical error encountered, or nil.
func (lx *Lexer) Err() *LexError { return lx.err }

// Advance skips whitespace/comments, scans the next token into Current,
// and reports whether a token was produced. It returns false at end of
// input (with Eof() becoming true) or on a lexical error (with Err()
// becoming non-nil); once Err() is set, further Advance calls keep
// returning false.
func (lx *Lexer) Advance() bool {
	if lx.err != nil {
		return false
	}
	lx.skipWhitespaceAndComments()
	if lx.err != nil {
		return false
	}
	if lx.cur == 0 {
		lx.eof = true
		lx.current = token.New(token.EOF, "", lx.line)
		return false
	}

	startLine := lx.line
	tok, ok := lx.scanToken(startLine)
	if !ok {
		return false
	}
	lx.current = tok
	return true
}

// Eof reports whether the lexer has reached end of input.
func (lx *Lexer) Eof() bool { return lx.eof }

func (lx *Lexer) fail(line int, format string, args ...interface{}) (token.Token, bool) {
	lx.err = &LexError{Line: line, Msg: fmt.Sprintf(format, args...)}
	return token.Token{}, false
}

func (lx *Lexer) peekByte() byte {
	if lx.pos+1 >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+1]
}

func (lx *Lexer) peekAt(offset int) byte {
	if lx.pos+offset >= len(lx.src) {
		return 0
	}
	return lx.src[lx.pos+offset]
}

// advanceByte moves the cursor one byte forward, tracking line numbers.
func (lx *Lexer) advanceByte() {
	if lx.cur == '\n' {
		lx.line++
	}
	lx.pos++
	if lx.pos >= len(lx.src) {
		lx.cur = 0
		lx.pos = len(lx.src)
		return
	}
	lx.cur = lx.src[lx.pos]
}

func (lx *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case isWhitespace(lx.cur):
			lx.advanceByte()
		case lx.cur == '/' && lx.peekByte() == '*':
			line := lx.line
			lx.advanceByte()
			lx.advanceByte()
			closed := false
			for lx.cur != 0 {
				if lx.cur == '*' && lx.peekByte() == '/' {
					lx.advanceByte()
					lx.advanceByte()
					closed = true
					break
				}
				lx.advanceByte()
			}
			if !closed {
				lx.err = &LexError{Line: line, Msg: "unterminated comment"}
				return
			}
		default:
			return
		}
	}
}

// scanToken recognizes exactly one token starting at lx.cur. Called only
// once whitespace/comments have been skipped and lx.cur != 0.
func (lx *Lexer) scanToken(line int) (token.Token, bool) {
	switch {
	case isDigit(lx.cur):
		return lx.readNumber(line)
	case isIdentStart(lx.cur):
		return lx.readIdentifier(line)
	case lx.cur == '"':
		return lx.readString(line)
	case lx.cur == '\'':
		return lx.readChar(line)
	}

	switch lx.cur {
	case '(':
		lx.advanceByte()
		return token.New(token.LParen, "(", line), true
	case ')':
		lx.advanceByte()
		return token.New(token.RParen, ")", line), true
	case '{':
		lx.advanceByte()
		return token.New(token.LBrace, "{", line), true
	case '}':
		lx.advanceByte()
		return token.New(token.RBrace, "}", line), true
	case '[':
		lx.advanceByte()
		return token.New(token.LBracket, "[", line), true
	case ']':
		lx.advanceByte()
		return token.New(token.RBracket, "]", line), true
	case ';':
		lx.advanceByte()
		return token.New(token.Semi, ";", line), true
	case ',':
		lx.advanceByte()
		return token.New(token.Comma, ",", line), true
	case ':':
		lx.advanceByte()
		return token.New(token.Colon, ":", line), true
	case '?':
		lx.advanceByte()
		return token.New(token.Question, "?", line), true
	case '~':
		lx.advanceByte()
		return token.New(token.Tilde, "~", line), true
	case '#':
		lx.advanceByte()
		return token.New(token.Hash, "#", line), true
	case '@':
		return lx.readAt(line)
	case '.':
		if isDigit(lx.peekByte()) {
			return lx.readDotFloat(line)
		}
		return lx.readDot(line)
	case '-':
		return lx.readDash(line)
	case '+':
		return lx.readPlus(line)
	case '=':
		if lx.peekByte() == '=' {
			lx.advanceByte()
			lx.advanceByte()
			return token.New(token.Eq, "==", line), true
		}
		lx.advanceByte()
		return token.New(token.Assign, "=", line), true
	case '!':
		if lx.peekByte() == '=' {
			lx.advanceByte()
			lx.advanceByte()
			return token.New(token.Ne, "!=", line), true
		}
		lx.advanceByte()
		return token.New(token.Not, "!", line), true
	case '<':
		return lx.readLt(line)
	case '>':
		return lx.readGt(line)
	case '*':
		if lx.peekByte() == '=' {
			lx.advanceByte()
			lx.advanceByte()
			return token.New(token.MulAssign, "*=", line), true
		}
		lx.advanceByte()
		return token.New(token.Star, "*", line), true
	case '/':
		if lx.peekByte() == '=' {
			lx.advanceByte()
			lx.advanceByte()
			return token.New(token.DivAssign, "/=", line), true
		}
		lx.advanceByte()
		return token.New(token.Slash, "/", line), true
	case '%':
		if lx.peekByte() == '=' {
			lx.advanceByte()
			lx.advanceByte()
			return token.New(token.ModAssign, "%=", line), true
		}
		lx.advanceByte()
		return token.New(token.Percent, "%", line), true
	case '&':
		return lx.readAmp(line)
	case '|':
		return lx.readPipe(line)
	case '^':
		if lx.peekByte() == '=' {
			lx.advanceByte()
			lx.advanceByte()
			return token.New(token.XorAssign, "^=", line), true
		}
		lx.advanceByte()
		return token.New(token.Caret, "^", line), true
	}

	return lx.fail(line, "unexpected byte %q", lx.cur)
}

func (lx *Lexer) readPlus(line int) (token.Token, bool) {
	switch lx.peekByte() {
	case '+':
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.Incr, "++", line), true
	case '=':
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.PlusAssign, "+=", line), true
	}
	lx.advanceByte()
	return token.New(token.Plus, "+", line), true
}

func (lx *Lexer) readDash(line int) (token.Token, bool) {
	switch lx.peekByte() {
	case '-':
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.Decr, "--", line), true
	case '=':
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.MinusAssign, "-=", line), true
	case '>':
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.Arrow, "->", line), true
	}
	lx.advanceByte()
	return token.New(token.Minus, "-", line), true
}

// readDot distinguishes '.', '..' (concat) and '..=' (concat-assign).
func (lx *Lexer) readDot(line int) (token.Token, bool) {
	if lx.peekByte() != '.' {
		lx.advanceByte()
		return token.New(token.Dot, ".", line), true
	}
	lx.advanceByte()
	lx.advanceByte()
	if lx.cur == '=' {
		lx.advanceByte()
		return token.New(token.ConcatAssign, "..=", line), true
	}
	return token.New(token.Concat, "..", line), true
}

func (lx *Lexer) readAt(line int) (token.Token, bool) {
	switch lx.peekByte() {
	case '[':
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.AtLBrack, "@[", line), true
	case '{':
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.AtLBrace, "@{", line), true
	}
	return lx.fail(line, "unexpected byte '@'")
}

func (lx *Lexer) readLt(line int) (token.Token, bool) {
	if lx.peekByte() == '=' {
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.Le, "<=", line), true
	}
	if lx.peekByte() == '<' {
		lx.advanceByte()
		lx.advanceByte()
		if lx.cur == '=' {
			lx.advanceByte()
			return token.New(token.ShlAssign, "<<=", line), true
		}
		return token.New(token.Shl, "<<", line), true
	}
	lx.advanceByte()
	return token.New(token.Lt, "<", line), true
}

func (lx *Lexer) readGt(line int) (token.Token, bool) {
	if lx.peekByte() == '=' {
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.Ge, ">=", line), true
	}
	if lx.peekByte() == '>' {
		lx.advanceByte()
		lx.advanceByte()
		if lx.cur == '=' {
			lx.advanceByte()
			return token.New(token.ShrAssign, ">>=", line), true
		}
		return token.New(token.Shr, ">>", line), true
	}
	lx.advanceByte()
	return token.New(token.Gt, ">", line), true
}

func (lx *Lexer) readAmp(line int) (token.Token, bool) {
	if lx.peekByte() == '&' {
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.AndAnd, "&&", line), true
	}
	if lx.peekByte() == '=' {
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.AndAssign, "&=", line), true
	}
	lx.advanceByte()
	return token.New(token.Amp, "&", line), true
}

func (lx *Lexer) readPipe(line int) (token.Token, bool) {
	if lx.peekByte() == '|' {
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.OrOr, "||", line), true
	}
	if lx.peekByte() == '=' {
		lx.advanceByte()
		lx.advanceByte()
		return token.New(token.OrAssign, "|=", line), true
	}
	lx.advanceByte()
	return token.New(token.Pipe, "|", line), true
}

// ConsumeAll tokenizes the entire source, returning every token up to but
// excluding EOF. Intended for tests and debugging, mirroring the lexer's
// one-token-at-a-time contract without requiring a parser.
func ConsumeAll(src string) ([]token.Token, *LexError) {
	lx := New(src)
	var toks []token.Token
	for lx.Advance() {
		toks = append(toks, lx.Current())
	}
	return toks, lx.Err()
}
