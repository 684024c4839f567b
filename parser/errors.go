/*
File    : sparkling/parser/errors.go
Package : parser

SyntaxError and the colored stderr diagnostic sink (spec.md §6, §7).
*/
package parser

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// SyntaxError is the sole error taxonomy at this level (spec.md §7):
// lexical and structural failures are both reported as a SyntaxError,
// distinguished only by Msg.
type SyntaxError struct {
	Line int
	Msg  string
}

// Error renders the exact diagnostic prefix spec.md §6 requires:
// "Sparkling: syntax error near line N: " followed by the free-form
// message, with no trailing newline (the sink adds one when printing).
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Sparkling: syntax error near line %d: %s", e.Line, e.Msg)
}

var errColor = color.New(color.FgRed)

// reportError writes a SyntaxError's diagnostic line to w, colorized the
// same way the teacher repo's REPL colorizes error output, and returns the
// error unchanged so callers can both report and propagate it in one
// expression.
func reportError(w io.Writer, err *SyntaxError) *SyntaxError {
	errColor.Fprintln(w, err.Error())
	return err
}

// reportToStderr is the default error sink used by Parse.
func reportToStderr(err *SyntaxError) *SyntaxError {
	return reportError(os.Stderr, err)
}
