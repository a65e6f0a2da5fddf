package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/syntree/text"
)

func TestFunctionFPositions(t *testing.T) {
	root := NewRoot(functionF(NewBuilder())).(*ModulePart)
	assert.Nil(t, root.Parent())
	assert.Equal(t, 0, root.Position())

	fn, ok := root.Members().Get(0).(*FunctionDefinition)
	require.True(t, ok)
	assert.Equal(t, 0, fn.Position())
	assert.Equal(t, 9, fn.FunctionName().Position())
	assert.Equal(t, "f", fn.FunctionName().Text())
	assert.Equal(t, 14, fn.Width())

	_, hasVis := fn.VisibilityQualifier()
	assert.False(t, hasVis)

	sig := fn.FunctionSignature()
	assert.Equal(t, 10, sig.Position())
	_, hasReturn := sig.ReturnTypeDesc()
	assert.False(t, hasReturn)
	assert.Equal(t, 0, sig.Parameters().Len())

	body := fn.FunctionBody()
	assert.Equal(t, 12, body.Position())
	assert.Equal(t, 13, body.CloseBraceToken().Position())
	assert.Equal(t, "function f(){}", root.ToSourceText())
}

func TestParentIsTypedFacade(t *testing.T) {
	root := NewRoot(functionF(NewBuilder())).(*ModulePart)
	fn := root.Members().Get(0).(*FunctionDefinition)
	name := fn.FunctionName()

	parent, ok := name.Parent().(*FunctionDefinition)
	require.True(t, ok, "parent is %T", name.Parent())
	assert.True(t, SameNode(parent, fn))

	list, ok := fn.Parent().(*NodeList)
	require.True(t, ok)
	assert.True(t, SameNode(list.Parent(), root))
}

func TestIdempotentFacadeCreation(t *testing.T) {
	root := NewRoot(twoFunctions(NewBuilder()))
	members := root.ChildAt(1)
	for i := range members.ChildCount() {
		first := members.ChildAt(i)
		second := members.ChildAt(i)
		assert.NotSame(t, first, second)
		assert.True(t, SameNode(first, second))
		assert.Equal(t, first.Kind(), second.Kind())
		assert.Equal(t, first.Position(), second.Position())
	}
}

func TestChildPositionIsPrefixSum(t *testing.T) {
	root := NewRoot(twoFunctions(NewBuilder()))
	Walk(root, func(n Node) bool {
		want := n.Position()
		for i, child := range n.Children() {
			if child == nil {
				continue
			}
			assert.Equal(t, want, child.Position(), "%s child %d", n.Kind(), i)
			assert.Equal(t, child.Position(), n.ChildAt(i).Position())
			want += child.Width()
		}
		return true
	})
}

func TestTokensReproduceSource(t *testing.T) {
	root := NewRoot(twoFunctions(NewBuilder()))
	var got string
	offset := 0
	for tk := range Tokens(root) {
		assert.Equal(t, offset, tk.Position(), tk.Text())
		got += tk.ToSourceText()
		offset += tk.Width()
	}
	assert.Equal(t, twoFunctionsSource, got)
}

func TestTextRangeWithoutTrivia(t *testing.T) {
	root := NewRoot(twoFunctions(NewBuilder())).(*ModulePart)
	fn := root.Members().Get(0).(*FunctionDefinition)
	stmt := fn.FunctionBody().Statements().Get(0).(*ReturnStatement)

	assert.Equal(t, text.Range{Start: 15, End: 29}, stmt.TextRange())
	assert.Equal(t, text.Range{Start: 19, End: 28}, stmt.TextRangeWithoutTrivia())
	assert.Equal(t, "    return 1;\n", stmt.ToSourceText())

	kw := stmt.ReturnKeyword()
	assert.Equal(t, text.Range{Start: 19, End: 25}, kw.TextRangeWithoutTrivia())
}

func TestPositionedDiagnostics(t *testing.T) {
	b := NewBuilder()
	d := NewError("SYN0001", "missing '}'")
	body := b.FunctionBodyBlock(tok(b, KindOpenBraceToken, "{", ws(" ")), b.NodeList(), b.MissingToken(KindCloseBraceToken, d))
	root := NewRoot(body)

	diags := root.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, d, diags[0].Diagnostic)
	assert.Equal(t, KindCloseBraceToken, diags[0].Kind)
	assert.Equal(t, text.Range{Start: 2, End: 2}, diags[0].Range)
}

func TestSeparatedNodeList(t *testing.T) {
	b := NewBuilder()
	param := func(typ, name string) InternalNode {
		return b.RequiredParameter(
			b.BuiltinSimpleNameReference(tok(b, KindIntKeyword, typ, ws(" "))),
			tok(b, KindIdentifierToken, name),
		)
	}
	list := b.SeparatedNodeList(param("int", "a"), tok(b, KindCommaToken, ",", ws(" ")), param("int", "b"))
	root := NewRoot(list).(*SeparatedNodeList)

	assert.Equal(t, 2, root.Len())
	assert.Equal(t, ",", root.Separator(0).Text())
	var names []string
	var positions []int
	for i, item := range root.Items() {
		assert.True(t, SameNode(item, root.Get(i)))
		names = append(names, item.(*RequiredParameter).ParamName().Text())
		positions = append(positions, item.Position())
	}
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Equal(t, []int{0, 7}, positions)
}

func TestTokenChildAtPanics(t *testing.T) {
	tk := NewRoot(NewInternalToken(KindIdentifierToken, "x", EmptyTrivia, EmptyTrivia))
	assert.Equal(t, 0, tk.ChildCount())
	assert.Panics(t, func() { tk.ChildAt(0) })
}
