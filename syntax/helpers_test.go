package syntax

// Small tree-building helpers shared by the package tests.

func ws(s string) Trivia {
	return NewTrivia(KindWhitespaceTrivia, s)
}

func eol() Trivia {
	return NewTrivia(KindEndOfLineTrivia, "\n")
}

func tok(b *Builder, kind SyntaxKind, text string, trailing ...Trivia) *InternalToken {
	return b.Token(kind, text, EmptyTrivia, NewTriviaList(trailing...))
}

// functionF builds the tree for "function f(){}".
func functionF(b *Builder) *InternalBranch {
	sig := b.FunctionSignature(
		tok(b, KindOpenParenToken, "("),
		b.SeparatedNodeList(),
		tok(b, KindCloseParenToken, ")"),
		nil,
	)
	body := b.FunctionBodyBlock(
		tok(b, KindOpenBraceToken, "{"),
		b.NodeList(),
		tok(b, KindCloseBraceToken, "}"),
	)
	fn := b.FunctionDefinition(
		nil,
		tok(b, KindFunctionKeyword, "function", ws(" ")),
		tok(b, KindIdentifierToken, "f"),
		sig,
		body,
	)
	return b.ModulePart(b.NodeList(), b.NodeList(fn), tok(b, KindEOFToken, ""))
}

// returnStatement builds "return <n>;" with a leading indent.
func returnStatement(b *Builder, n string) *InternalBranch {
	return b.ReturnStatement(
		b.Token(KindReturnKeyword, "return", NewTriviaList(ws("    ")), NewTriviaList(ws(" "))),
		b.BasicLiteral(tok(b, KindDecimalIntegerLiteralToken, n)),
		tok(b, KindSemicolonToken, ";", eol()),
	)
}

// twoFunctions builds
//
//	function a() {
//	    return 1;
//	}
//	function b() {}
func twoFunctions(b *Builder) *InternalBranch {
	first := b.FunctionDefinition(
		nil,
		tok(b, KindFunctionKeyword, "function", ws(" ")),
		tok(b, KindIdentifierToken, "a"),
		b.FunctionSignature(tok(b, KindOpenParenToken, "("), b.SeparatedNodeList(), tok(b, KindCloseParenToken, ")", ws(" ")), nil),
		b.FunctionBodyBlock(
			tok(b, KindOpenBraceToken, "{", eol()),
			b.NodeList(returnStatement(b, "1")),
			tok(b, KindCloseBraceToken, "}", eol()),
		),
	)
	second := b.FunctionDefinition(
		nil,
		tok(b, KindFunctionKeyword, "function", ws(" ")),
		tok(b, KindIdentifierToken, "b"),
		b.FunctionSignature(tok(b, KindOpenParenToken, "("), b.SeparatedNodeList(), tok(b, KindCloseParenToken, ")", ws(" ")), nil),
		b.FunctionBodyBlock(tok(b, KindOpenBraceToken, "{"), b.NodeList(), tok(b, KindCloseBraceToken, "}")),
	)
	return b.ModulePart(b.NodeList(), b.NodeList(first, second), tok(b, KindEOFToken, ""))
}

const twoFunctionsSource = "function a() {\n    return 1;\n}\nfunction b() {}"
