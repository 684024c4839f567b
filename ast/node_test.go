/*
File    : sparkling/ast/node_test.go
Package : ast

Tests for the list-flattening convention and the linked-chain helpers: the
part of the tree shape that has no direct counterpart in a sum-type AST and
is therefore the part most worth pinning down with tests (spec.md §4.2,
§8's "tree shape" invariant).
*/
package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkling-lang/sparkling/value"
)

func TestFlattenList_Empty(t *testing.T) {
	n := FlattenList(nil, Empty, Program, 1)
	assert.Equal(t, Empty, n.Kind)
	assert.Nil(t, n.Left)
	assert.Nil(t, n.Right)
}

func TestFlattenList_SingleStatement(t *testing.T) {
	stmt := NewLeaf(Break, 3)
	n := FlattenList([]*Node{stmt}, Empty, Block, 1)
	assert.Equal(t, Block, n.Kind)
	assert.Same(t, stmt, n.Left)
	assert.Nil(t, n.Right)
}

func TestFlattenList_MultipleStatements_RewritesSpineKind(t *testing.T) {
	stmts := []*Node{NewLeaf(Break, 1), NewLeaf(Continue, 2), NewLeaf(Empty, 3)}
	n := FlattenList(stmts, Empty, Block, 1)
	assert.Equal(t, Block, n.Kind, "the spine head must be rewritten from Compound to the target kind")
	assert.Same(t, stmts[0], n.Left)
	require.NotNil(t, n.Right)
	assert.Equal(t, Compound, n.Right.Kind, "only the head is rewritten; inner links stay Compound")
	assert.Same(t, stmts[1], n.Right.Left)
	assert.Same(t, stmts[2], n.Right.Right.Left)
	assert.Nil(t, n.Right.Right.Right)
}

func TestStatements_RoundTripsFlattenList(t *testing.T) {
	stmts := []*Node{NewLeaf(Break, 1), NewLeaf(Continue, 2), NewLeaf(Empty, 3)}
	n := FlattenList(stmts, Empty, Program, 1)
	got := Statements(n)
	require.Len(t, got, 3)
	for i, s := range stmts {
		assert.Same(t, s, got[i])
	}
}

func TestStatements_EmptyProgramHasNoStatements(t *testing.T) {
	n := FlattenList(nil, Empty, Program, 1)
	assert.Nil(t, Statements(n))
}

func TestNewForHeader_ThreeDeepRightSpine(t *testing.T) {
	first := NewIdent("k", 1)
	second := NewIdent("v", 1)
	third := NewIdent("arr", 1)
	h1 := NewForHeader(1, first, second, third)

	assert.Equal(t, ForHeader, h1.Kind)
	assert.Same(t, first, h1.Left)
	h2 := h1.Right
	require.NotNil(t, h2)
	assert.Equal(t, ForHeader, h2.Kind)
	assert.Same(t, second, h2.Left)
	h3 := h2.Right
	require.NotNil(t, h3)
	assert.Equal(t, ForHeader, h3.Kind)
	assert.Same(t, third, h3.Left)
	assert.Nil(t, h3.Right)
}

func TestNewDeclArg_ChainsViaRightInOrder(t *testing.T) {
	var head *Node
	head = NewDeclArg(head, "a", 1)
	head = NewDeclArg(head, "b", 2)
	head = NewDeclArg(head, "c", 3)
	assert.Equal(t, []string{"a", "b", "c"}, DeclArgList(head))
}

func TestNewVarDecl_ChainsViaRightWithInitializers(t *testing.T) {
	var head *Node
	head = NewVarDecl(head, "a", 1, nil)
	head = NewVarDecl(head, "b", 2, NewLiteral(2, value.Integer{Val: 5}))
	decls := VarDeclList(head)
	require.Len(t, decls, 2)
	assert.Equal(t, "a", decls[0].Name)
	assert.Nil(t, decls[0].Left)
	assert.Equal(t, "b", decls[1].Name)
	require.NotNil(t, decls[1].Left)
	assert.Equal(t, value.Integer{Val: 5}, decls[1].Left.Value)
}

func TestNewCallArg_HeadGrowingChain(t *testing.T) {
	var head *Node
	a := NewLiteral(1, value.Integer{Val: 1})
	b := NewLiteral(1, value.Integer{Val: 2})
	c := NewLiteral(1, value.Integer{Val: 3})
	head = NewCallArg(head, a, 1)
	head = NewCallArg(head, b, 1)
	head = NewCallArg(head, c, 1)

	// Single argument: no wrapper node at all.
	assert.Same(t, a, NewCallArg(nil, a, 1))

	args := CallArgList(head)
	require.Len(t, args, 3)
	assert.Same(t, a, args[0])
	assert.Same(t, b, args[1])
	assert.Same(t, c, args[2])
}

func TestDeclArgList_Nil(t *testing.T) {
	assert.Nil(t, DeclArgList(nil))
}

func TestCallArgList_Nil(t *testing.T) {
	assert.Nil(t, CallArgList(nil))
}
