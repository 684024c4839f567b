/*
File: sparkling/cmd/sparkparse/main.go

sparkparse is a thin, non-interactive driver for manual smoke-testing of
the parser core: it reads one file named on argv, parses it, and either
prints a compact tree dump or exits with status 1 after the parser has
written its diagnostic to stderr. It is not the REPL/CLI this module leaves out of scope — there is
no prompt, no line editing, no evaluation.
*/
package main

import (
	"fmt"
	"os"

	"github.com/sparkling-lang/sparkling/ast"
	"github.com/sparkling-lang/sparkling/parser"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.spk>\n", os.Args[0])
		os.Exit(2)
	}

	src, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	root, perr := parser.Parse(string(src))
	if perr != nil {
		// parser.Parse has already written the colorized diagnostic.
		os.Exit(1)
	}
	dump(os.Stdout, root, 0)
}

// dump prints a node and its children as an indented tree, one node per
// line, enough to eyeball that the shape parser.Parse built matches what
// was typed.
func dump(w *os.File, n *ast.Node, depth int) {
	if n == nil {
		return
	}
	for i := 0; i < depth; i++ {
		fmt.Fprint(w, "  ")
	}
	switch {
	case n.Name != "" && n.Value != nil:
		fmt.Fprintf(w, "%s %q = %s\n", n.Kind, n.Name, n.Value)
	case n.Name != "":
		fmt.Fprintf(w, "%s %q\n", n.Kind, n.Name)
	case n.Value != nil:
		fmt.Fprintf(w, "%s %s\n", n.Kind, n.Value)
	default:
		fmt.Fprintf(w, "%s\n", n.Kind)
	}
	dump(w, n.Left, depth+1)
	dump(w, n.Right, depth+1)
}
