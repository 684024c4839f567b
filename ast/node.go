/*
File    : sparkling/ast/node.go
Package : ast

Package ast defines Sparkling's abstract syntax tree: a single Node shape
discriminated by a Kind tag, with up to two owned children (Left/Right) plus
an optional identifier Name and an optional literal Value. This mirrors the
reference parser's binary-tree-with-kind-tag design (spec.md §3) rather than
a Go interface hierarchy with one struct per production, because the
grammar's list-flattening convention (Compound rewritten in place to
Program/Block), the three-deep ForHeader spine, and the decl-args/call-args
linked forms are part of the contract the downstream compiler consumes
(spec.md §6) — not an implementation detail a sum-type redesign could hide.
*/
package ast

import "github.com/sparkling-lang/sparkling/value"

// Kind discriminates every syntactic form a Node can take. It is a closed
// set; every production in the parser emits exactly one of these.
type Kind string

const (
	// Program/structure
	Program  Kind = "Program"
	Block    Kind = "Block"
	Compound Kind = "Compound" // internal linearization pair, rewritten at Program/Block boundaries
	Empty    Kind = "Empty"

	// Statements
	If         Kind = "If"
	While      Kind = "While"
	Do         Kind = "Do"
	For        Kind = "For"
	Foreach    Kind = "Foreach"
	ForHeader  Kind = "ForHeader"
	Break      Kind = "Break"
	Continue   Kind = "Continue"
	Return     Kind = "Return"
	VarDecl    Kind = "VarDecl"
	FuncStmt   Kind = "FuncStmt"
	FuncExpr   Kind = "FuncExpr"
	DeclArgs   Kind = "DeclArgs"
	CallArgs   Kind = "CallArgs"

	// Assignments (right-assoc)
	Assign       Kind = "Assign"
	AssignAdd    Kind = "AssignAdd"
	AssignSub    Kind = "AssignSub"
	AssignMul    Kind = "AssignMul"
	AssignDiv    Kind = "AssignDiv"
	AssignMod    Kind = "AssignMod"
	AssignAnd    Kind = "AssignAnd"
	AssignOr     Kind = "AssignOr"
	AssignXor    Kind = "AssignXor"
	AssignShl    Kind = "AssignShl"
	AssignShr    Kind = "AssignShr"
	AssignConcat Kind = "AssignConcat"

	// Other expressions
	Concat    Kind = "Concat"
	CondExpr  Kind = "CondExpr"
	Branches  Kind = "Branches"
	LogOr     Kind = "LogOr"
	LogAnd    Kind = "LogAnd"
	BitOr     Kind = "BitOr"
	BitXor    Kind = "BitXor"
	BitAnd    Kind = "BitAnd"
	Equal     Kind = "Equal"
	NotEq     Kind = "NotEq"
	Less      Kind = "Less"
	Greater   Kind = "Greater"
	LEq       Kind = "LEq"
	GEq       Kind = "GEq"
	Shl       Kind = "Shl"
	Shr       Kind = "Shr"
	Add       Kind = "Add"
	Sub       Kind = "Sub"
	Mul       Kind = "Mul"
	Div       Kind = "Div"
	Mod       Kind = "Mod"

	// Prefix (right-assoc)
	PreIncr Kind = "PreIncr"
	PreDecr Kind = "PreDecr"
	UnPlus  Kind = "UnPlus"
	UnMinus Kind = "UnMinus"
	LogNot  Kind = "LogNot"
	BitNot  Kind = "BitNot"
	SizeOf  Kind = "SizeOf"
	TypeOf  Kind = "TypeOf"
	NthArg  Kind = "NthArg"

	// Postfix (left-assoc, iterative)
	PostIncr Kind = "PostIncr"
	PostDecr Kind = "PostDecr"
	ArrSub   Kind = "ArrSub"
	FuncCall Kind = "FuncCall"
	MemberOf Kind = "MemberOf"

	// Terms
	Ident   Kind = "Ident"
	Literal Kind = "Literal"

	// Supplemented collection literals (spec.md §9 open question, resolved
	// in SPEC_FULL.md §4: implemented rather than omitted).
	Sequence    Kind = "Sequence"
	DictLiteral Kind = "DictLiteral"
	KeyValue    Kind = "KeyValue"
)

// Node is Sparkling's single AST shape. For every non-leaf Kind, exactly
// the slots the grammar in spec.md §4 populates are non-zero; the rest are
// left at their zero value. Children are exclusively owned: a Node is
// never referenced from two parents.
type Node struct {
	Kind  Kind
	Line  int
	Left  *Node
	Right *Node
	Name  string
	Value value.Value
}

// NewLeaf builds a childless node (Break, Continue, Empty, a bare Ident or
// Literal term before its payload is attached).
func NewLeaf(kind Kind, line int) *Node {
	return &Node{Kind: kind, Line: line}
}

// NewUnary builds a node with only a Left child (prefix and postfix
// increment/decrement operators, Return with a value).
func NewUnary(kind Kind, line int, left *Node) *Node {
	return &Node{Kind: kind, Line: line, Left: left}
}

// NewBinary builds a node with both Left and Right children (binary
// operators, If/Branches pairs, loop header/body pairs).
func NewBinary(kind Kind, line int, left, right *Node) *Node {
	return &Node{Kind: kind, Line: line, Left: left, Right: right}
}

// NewIdent builds an Ident term node carrying its owned name.
func NewIdent(name string, line int) *Node {
	return &Node{Kind: Ident, Line: line, Name: name}
}

// NewLiteral builds a Literal term node carrying a decoded payload value.
func NewLiteral(line int, v value.Value) *Node {
	return &Node{Kind: Literal, Line: line, Value: v}
}

// FlattenList implements spec.md §4.2's list-flattening hack for a
// statement list accumulated as a plain slice in source order (building the
// slice incrementally is functionally identical to — and, per spec.md §9's
// own design note, a clearer Go rendering of — growing the spine one
// Compound cons-cell at a time while parsing):
//
//   - zero statements: a bare node of emptyKind with no children
//     (spec.md: an empty Program; an empty Block collapses to Empty)
//   - one statement: a node of targetKind with Left set to it
//   - two or more: a right-leaning chain of Compound cons-cells, whose
//     head is then rewritten in place to targetKind
//
// A consumer walking Left/Right in order sees the statements in source
// order regardless of which of the three shapes was produced.
func FlattenList(stmts []*Node, emptyKind, targetKind Kind, line int) *Node {
	switch len(stmts) {
	case 0:
		return &Node{Kind: emptyKind, Line: line}
	case 1:
		return &Node{Kind: targetKind, Line: stmts[0].Line, Left: stmts[0]}
	}
	var spine *Node
	for i := len(stmts) - 1; i >= 1; i-- {
		spine = &Node{Kind: Compound, Line: stmts[i].Line, Left: stmts[i], Right: spine}
	}
	spine = &Node{Kind: Compound, Line: stmts[0].Line, Left: stmts[0], Right: spine}
	spine.Kind = targetKind
	return spine
}

// Statements walks a Program/Block-shaped node (whether produced as a bare
// Empty/single-statement wrapper or a Compound-rewritten spine) and returns
// its statements in source order. It is the read side of FlattenList, used
// by tests and by any future compiler-facing walker.
func Statements(n *Node) []*Node {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case Empty:
		return nil
	case Program, Block:
		if n.Right == nil {
			if n.Left == nil {
				return nil
			}
			return []*Node{n.Left}
		}
		// Rewritten Compound spine: walk it like one.
		var out []*Node
		cur := n
		for {
			out = append(out, cur.Left)
			if cur.Right == nil {
				break
			}
			cur = cur.Right
		}
		return out
	}
	return []*Node{n}
}

// appendRightChain extends a right-linked DeclArgs/VarDecl-style chain. head is
// the first node of the chain (or nil for an empty chain); the new node is
// appended at the tail and the (possibly new) head is returned.
func appendRightChain(head *Node, next *Node) *Node {
	if head == nil {
		return next
	}
	cur := head
	for cur.Right != nil {
		cur = cur.Right
	}
	cur.Right = next
	return head
}

// NewDeclArg builds one link of a function's formal-parameter chain
// (singly-linked via Right, per spec.md §4.2) and appends it to head.
func NewDeclArg(head *Node, name string, line int) *Node {
	return appendRightChain(head, &Node{Kind: DeclArgs, Line: line, Name: name})
}

// NewVarDecl builds one link of a `var` statement's declaration chain
// (singly-linked via Right; Left holds the optional initializer
// expression) and appends it to head.
func NewVarDecl(head *Node, name string, line int, init *Node) *Node {
	return appendRightChain(head, &Node{Kind: VarDecl, Line: line, Name: name, Left: init})
}

// NewCallArg extends a call-argument chain. Per spec.md §4.2, call-args
// chain "via left, head-growing": the very first argument is its own bare
// expression node, and each subsequent argument wraps the chain so far in
// Left and holds the new argument in Right — the same shape an ordinary
// left-associative binary operator level produces (spec.md §4.3's L_left),
// just with CallArgs standing in for the operator.
func NewCallArg(head *Node, arg *Node, line int) *Node {
	if head == nil {
		return arg
	}
	return &Node{Kind: CallArgs, Line: line, Left: head, Right: arg}
}

// CallArgList flattens a CallArgs head-growing chain back into a slice of
// argument expressions in source order.
func CallArgList(n *Node) []*Node {
	if n == nil {
		return nil
	}
	if n.Kind != CallArgs {
		return []*Node{n}
	}
	return append(CallArgList(n.Left), n.Right)
}

// DeclArgList flattens a DeclArgs right-linked chain into argument names in
// source order.
func DeclArgList(n *Node) []string {
	var names []string
	for cur := n; cur != nil; cur = cur.Right {
		names = append(names, cur.Name)
	}
	return names
}

// VarDeclList flattens a VarDecl right-linked chain into its links in
// source order.
func VarDeclList(n *Node) []*Node {
	var decls []*Node
	for cur := n; cur != nil; cur = cur.Right {
		decls = append(decls, cur)
	}
	return decls
}

// NewForHeader builds the fixed three-deep right spine spec.md §3 requires
// for both `for` (init, cond, incr) and `foreach` (key, val, iterable)
// headers, each part carried in Left of its own link.
func NewForHeader(line int, first, second, third *Node) *Node {
	h3 := &Node{Kind: ForHeader, Line: line, Left: third}
	h2 := &Node{Kind: ForHeader, Line: line, Left: second, Right: h3}
	h1 := &Node{Kind: ForHeader, Line: line, Left: first, Right: h2}
	return h1
}
