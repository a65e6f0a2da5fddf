package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceBodyReusesSiblings(t *testing.T) {
	b := NewBuilder()
	original := twoFunctions(b)
	root := NewRoot(original).(*ModulePart)
	first := root.Members().Get(0).(*FunctionDefinition)

	newBody := b.FunctionBodyBlock(
		tok(b, KindOpenBraceToken, "{", eol()),
		b.NodeList(returnStatement(b, "2")),
		tok(b, KindCloseBraceToken, "}", eol()),
	)
	replaced, err := Replace(first.FunctionBody(), newBody)
	require.NoError(t, err)

	newRoot := replaced.(*InternalBranch)
	assert.NotSame(t, original, newRoot)
	assert.Equal(t, "function a() {\n    return 2;\n}\nfunction b() {}", SourceText(newRoot))

	// the original is untouched
	assert.Equal(t, twoFunctionsSource, SourceText(original))

	// off-spine subtrees are the same pointers
	oldMembers := original.ChildAt(1).(*InternalBranch)
	newMembers := newRoot.ChildAt(1).(*InternalBranch)
	assert.Same(t, original.ChildAt(0), newRoot.ChildAt(0))
	assert.Same(t, original.ChildAt(2), newRoot.ChildAt(2))
	assert.Same(t, oldMembers.ChildAt(1), newMembers.ChildAt(1))

	oldFirst := oldMembers.ChildAt(0).(*InternalBranch)
	newFirst := newMembers.ChildAt(0).(*InternalBranch)
	assert.Nil(t, newFirst.ChildAt(0), "visibility qualifier stays absent")
	for i := 1; i < 4; i++ {
		assert.Same(t, oldFirst.ChildAt(i), newFirst.ChildAt(i), "bucket %d", i)
	}
	assert.Same(t, newBody, newFirst.ChildAt(4))

	require.NoError(t, VerifyWidth(newRoot))
}

func TestReplaceBodyReusesVisibilityQualifier(t *testing.T) {
	b := NewBuilder()
	public := tok(b, KindPublicKeyword, "public", ws(" "))
	keyword := tok(b, KindFunctionKeyword, "function", ws(" "))
	name := tok(b, KindIdentifierToken, "a")
	signature := b.FunctionSignature(tok(b, KindOpenParenToken, "("), b.SeparatedNodeList(), tok(b, KindCloseParenToken, ")", ws(" ")), nil)
	fn := b.FunctionDefinition(public, keyword, name, signature,
		b.FunctionBodyBlock(tok(b, KindOpenBraceToken, "{"), b.NodeList(), tok(b, KindCloseBraceToken, "}")))
	original := b.ModulePart(b.NodeList(), b.NodeList(fn), tok(b, KindEOFToken, ""))
	require.Equal(t, "public function a() {}", SourceText(original))

	first := NewRoot(original).(*ModulePart).Members().Get(0).(*FunctionDefinition)
	newBody := b.FunctionBodyBlock(
		tok(b, KindOpenBraceToken, "{", eol()),
		b.NodeList(returnStatement(b, "2")),
		tok(b, KindCloseBraceToken, "}"),
	)
	replaced, err := Replace(first.FunctionBody(), newBody)
	require.NoError(t, err)

	newFn := replaced.ChildAt(1).ChildAt(0)
	assert.Same(t, public, newFn.ChildAt(0))
	assert.Same(t, keyword, newFn.ChildAt(1))
	assert.Same(t, name, newFn.ChildAt(2))
	assert.Same(t, signature, newFn.ChildAt(3))
	assert.Same(t, newBody, newFn.ChildAt(4))
	assert.Equal(t, "public function a() {\n    return 2;\n}", SourceText(replaced))
	require.NoError(t, VerifyWidth(replaced))
}

func TestReplaceAtShiftsPositions(t *testing.T) {
	b := NewBuilder()
	original := twoFunctions(b)
	longer := tok(b, KindIdentifierToken, "alpha")

	replaced, err := ReplaceAt(original, []int{1, 0, 2}, longer)
	require.NoError(t, err)

	root := NewRoot(replaced).(*ModulePart)
	second := root.Members().Get(1).(*FunctionDefinition)
	assert.Equal(t, 35, second.Position())
	assert.Equal(t, 44, second.FunctionName().Position())
}

func TestReplaceAtErrors(t *testing.T) {
	b := NewBuilder()
	original := twoFunctions(b)

	_, err := ReplaceAt(original, []int{7}, nil)
	var ie *IndexError
	assert.ErrorAs(t, err, &ie)

	_, err = ReplaceAt(original, []int{1, 0, 1}, nil)
	var ae *ArityError
	assert.ErrorAs(t, err, &ae)

	_, err = ReplaceAt(original, []int{2, 0}, nil)
	assert.Error(t, err)

	sigPath := []int{1, 0, 3, 3}
	_, err = ReplaceAt(original, sigPath, nil)
	assert.NoError(t, err, "clearing an optional bucket")
}

func TestReplaceSameNodeReturnsSameRoot(t *testing.T) {
	original := twoFunctions(NewBuilder())
	got, err := ReplaceAt(original, []int{1, 0}, original.ChildAt(1).ChildAt(0))
	require.NoError(t, err)
	assert.Same(t, original, got)
}

func TestSyntaxTreeReplaceNode(t *testing.T) {
	b := NewBuilder()
	tree := NewSyntaxTree(twoFunctions(b), "main.bal")
	second := tree.Root().Members().Get(1).(*FunctionDefinition)

	edited, err := tree.ReplaceNode(second.FunctionName(), tok(b, KindIdentifierToken, "main"))
	require.NoError(t, err)
	assert.Equal(t, "main.bal", edited.File())
	assert.Equal(t, "function a() {\n    return 1;\n}\nfunction main() {}", edited.ToSourceText())
	assert.Equal(t, twoFunctionsSource, tree.ToSourceText())

	pos := edited.LinePosition(40)
	assert.Equal(t, 3, pos.Line)
	assert.Equal(t, 9, pos.Column)
}
