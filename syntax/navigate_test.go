package syntax

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindToken(t *testing.T) {
	root := NewRoot(twoFunctions(NewBuilder()))
	tests := []struct {
		offset int
		kind   SyntaxKind
		text   string
	}{
		{0, KindFunctionKeyword, "function"},
		{8, KindFunctionKeyword, "function"},
		{9, KindIdentifierToken, "a"},
		{15, KindReturnKeyword, "return"},
		{17, KindReturnKeyword, "return"},
		{26, KindDecimalIntegerLiteralToken, "1"},
		{28, KindSemicolonToken, ";"},
		{31, KindFunctionKeyword, "function"},
		{40, KindIdentifierToken, "b"},
		{45, KindCloseBraceToken, "}"},
		{46, KindEOFToken, ""},
	}
	for _, tt := range tests {
		tk := FindToken(root, tt.offset)
		require.NotNil(t, tk, "offset %d", tt.offset)
		assert.Equal(t, tt.kind, tk.Kind(), "offset %d", tt.offset)
		assert.Equal(t, tt.text, tk.Text(), "offset %d", tt.offset)
		assert.True(t, tk.TextRange().Contains(tt.offset) || tt.offset == root.Width())
	}
	assert.Nil(t, FindToken(root, -1))
	assert.Nil(t, FindToken(root, 47))
}

func TestNodeAt(t *testing.T) {
	root := NewRoot(twoFunctions(NewBuilder()))

	n := NodeAt(root, 26, 27)
	require.NotNil(t, n)
	assert.Equal(t, KindDecimalIntegerLiteralToken, n.Kind())

	n = NodeAt(root, 19, 28)
	require.NotNil(t, n)
	assert.Equal(t, KindReturnStatement, n.Kind())

	n = NodeAt(root, 9, 12)
	require.NotNil(t, n)
	assert.Equal(t, KindFunctionDefinition, n.Kind())

	assert.Nil(t, NodeAt(root, 40, 100))
}

func TestAncestors(t *testing.T) {
	root := NewRoot(twoFunctions(NewBuilder()))
	lit := FindToken(root, 26)
	var kinds []SyntaxKind
	for a := range Ancestors(lit) {
		kinds = append(kinds, a.Kind())
	}
	assert.Equal(t, []SyntaxKind{
		KindBasicLiteral,
		KindReturnStatement,
		KindNodeList,
		KindFunctionBodyBlock,
		KindFunctionDefinition,
		KindNodeList,
		KindModulePart,
	}, kinds)
}

func TestPathOf(t *testing.T) {
	root := NewRoot(twoFunctions(NewBuilder()))
	lit := FindToken(root, 26)

	path, ok := PathOf(root, lit)
	require.True(t, ok)
	assert.Equal(t, []int{1, 0, 4, 1, 0, 1, 0}, path)

	reached := Descend(root, path)
	assert.True(t, SameNode(reached, lit))

	other := NewRoot(functionF(NewBuilder()))
	_, ok = PathOf(other, lit)
	assert.False(t, ok)
}

func TestPathOfFromDetachedFacade(t *testing.T) {
	internal := twoFunctions(NewBuilder())
	root := NewRoot(internal)
	second := NewRoot(internal)
	target := FindToken(second, 40)

	path, ok := PathOf(root, target)
	require.True(t, ok)
	assert.Equal(t, "b", Descend(root, path).(*Token).Text())
}

func TestWalkSkipsChildren(t *testing.T) {
	root := NewRoot(twoFunctions(NewBuilder()))
	var kinds []SyntaxKind
	Walk(root, func(n Node) bool {
		kinds = append(kinds, n.Kind())
		return n.Kind() != KindFunctionDefinition
	})
	assert.Equal(t, 2, countOf(kinds, KindFunctionDefinition))
	assert.False(t, slices.Contains(kinds, KindFunctionBodyBlock))
}

func countOf(kinds []SyntaxKind, k SyntaxKind) int {
	n := 0
	for _, x := range kinds {
		if x == k {
			n++
		}
	}
	return n
}
