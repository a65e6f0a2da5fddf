package parser

import (
	"testing"

	"github.com/dhamidi/syntree/syntax"
)

func TestLexer(t *testing.T) {
	tests := []struct {
		input    string
		expected []syntax.SyntaxKind
	}{
		{"", []syntax.SyntaxKind{syntax.KindEOFToken}},
		{"function", []syntax.SyntaxKind{syntax.KindFunctionKeyword, syntax.KindEOFToken}},
		{"public function main() {}", []syntax.SyntaxKind{
			syntax.KindPublicKeyword, syntax.KindFunctionKeyword, syntax.KindIdentifierToken,
			syntax.KindOpenParenToken, syntax.KindCloseParenToken,
			syntax.KindOpenBraceToken, syntax.KindCloseBraceToken, syntax.KindEOFToken,
		}},
		{"123", []syntax.SyntaxKind{syntax.KindDecimalIntegerLiteralToken, syntax.KindEOFToken}},
		{"3.14", []syntax.SyntaxKind{syntax.KindDecimalFloatingPointLiteralToken, syntax.KindEOFToken}},
		{"1e10", []syntax.SyntaxKind{syntax.KindDecimalFloatingPointLiteralToken, syntax.KindEOFToken}},
		{".5", []syntax.SyntaxKind{syntax.KindDecimalFloatingPointLiteralToken, syntax.KindEOFToken}},
		{"x.y", []syntax.SyntaxKind{syntax.KindIdentifierToken, syntax.KindDotToken, syntax.KindIdentifierToken, syntax.KindEOFToken}},
		{`"hello"`, []syntax.SyntaxKind{syntax.KindStringLiteralToken, syntax.KindEOFToken}},
		{`"a \" b"`, []syntax.SyntaxKind{syntax.KindStringLiteralToken, syntax.KindEOFToken}},
		{"// comment\nreturn", []syntax.SyntaxKind{syntax.KindReturnKeyword, syntax.KindEOFToken}},
		{"+ - * / %", []syntax.SyntaxKind{
			syntax.KindPlusToken, syntax.KindMinusToken, syntax.KindAsteriskToken,
			syntax.KindSlashToken, syntax.KindPercentToken, syntax.KindEOFToken,
		}},
		{"== != < <= > >=", []syntax.SyntaxKind{
			syntax.KindDoubleEqualToken, syntax.KindNotEqualToken, syntax.KindLtToken,
			syntax.KindLtEqualToken, syntax.KindGtToken, syntax.KindGtEqualToken, syntax.KindEOFToken,
		}},
		{"&& || !", []syntax.SyntaxKind{syntax.KindLogicalAndToken, syntax.KindLogicalOrToken, syntax.KindExclamationMarkToken, syntax.KindEOFToken}},
		{"+=", []syntax.SyntaxKind{syntax.KindPlusToken, syntax.KindEqualToken, syntax.KindEOFToken}},
		{"io:println", []syntax.SyntaxKind{syntax.KindIdentifierToken, syntax.KindColonToken, syntax.KindIdentifierToken, syntax.KindEOFToken}},
		{"int float string boolean var", []syntax.SyntaxKind{
			syntax.KindIntKeyword, syntax.KindFloatKeyword, syntax.KindStringKeyword,
			syntax.KindBooleanKeyword, syntax.KindVarKeyword, syntax.KindEOFToken,
		}},
		{"größe", []syntax.SyntaxKind{syntax.KindIdentifierToken, syntax.KindEOFToken}},
		{"a # b", []syntax.SyntaxKind{syntax.KindIdentifierToken, syntax.KindIdentifierToken, syntax.KindEOFToken}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize([]byte(tt.input), "test.bal")
			if len(tokens) != len(tt.expected) {
				t.Fatalf("got %d tokens, want %d", len(tokens), len(tt.expected))
			}
			for i, tok := range tokens {
				if tok.Kind != tt.expected[i] {
					t.Errorf("token %d: got %v, want %v", i, tok.Kind, tt.expected[i])
				}
			}
		})
	}
}

func TestLexerFidelity(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"\n\n",
		"function f() {}\n",
		"a // trailing\n  // leading\nb",
		"x\r\ny\rz",
		"\"unterminated\nnext",
		"a # $ b",
		"// only a comment",
	}
	for _, input := range inputs {
		tokens := Tokenize([]byte(input), "")
		var got []byte
		offset := 0
		for _, tok := range tokens {
			if tok.Offset != offset {
				t.Errorf("%q: token %v at %d, want %d", input, tok.Kind, tok.Offset, offset)
			}
			for _, p := range tok.Leading {
				got = append(got, p.Text()...)
			}
			got = append(got, tok.Text...)
			for _, p := range tok.Trailing {
				got = append(got, p.Text()...)
			}
			offset += tok.Width()
		}
		if string(got) != input {
			t.Errorf("got %q, want %q", got, input)
		}
	}
}

func triviaKinds(pieces []syntax.Trivia) []syntax.SyntaxKind {
	var kinds []syntax.SyntaxKind
	for _, p := range pieces {
		kinds = append(kinds, p.Kind())
	}
	return kinds
}

func sameKinds(a, b []syntax.SyntaxKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestTriviaAttachment(t *testing.T) {
	tokens := Tokenize([]byte("a // c\n  // d\n  b \n"), "")
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}

	a, b, eof := tokens[0], tokens[1], tokens[2]
	wantTrailing := []syntax.SyntaxKind{syntax.KindWhitespaceTrivia, syntax.KindCommentTrivia, syntax.KindEndOfLineTrivia}
	if got := triviaKinds(a.Trailing); !sameKinds(got, wantTrailing) {
		t.Errorf("a trailing: got %v, want %v", got, wantTrailing)
	}
	wantLeading := []syntax.SyntaxKind{
		syntax.KindWhitespaceTrivia, syntax.KindCommentTrivia, syntax.KindEndOfLineTrivia, syntax.KindWhitespaceTrivia,
	}
	if got := triviaKinds(b.Leading); !sameKinds(got, wantLeading) {
		t.Errorf("b leading: got %v, want %v", got, wantLeading)
	}
	if got := triviaKinds(b.Trailing); !sameKinds(got, []syntax.SyntaxKind{syntax.KindWhitespaceTrivia, syntax.KindEndOfLineTrivia}) {
		t.Errorf("b trailing: got %v", got)
	}
	if len(eof.Leading) != 0 || eof.Offset != 19 {
		t.Errorf("eof: leading %v at %d", eof.Leading, eof.Offset)
	}
}

func TestCRLFIsOneTriviaPiece(t *testing.T) {
	tokens := Tokenize([]byte("a\r\nb"), "")
	if len(tokens[0].Trailing) != 1 || tokens[0].Trailing[0].Text() != "\r\n" {
		t.Errorf("got trailing %v", tokens[0].Trailing)
	}
	if tokens[1].Offset != 3 {
		t.Errorf("b at %d, want 3", tokens[1].Offset)
	}
}

func TestLexerDiagnostics(t *testing.T) {
	tests := []struct {
		input string
		token int
		code  string
	}{
		{"a # b", 1, CodeInvalidCharacter},
		{"@", 0, CodeInvalidCharacter},
		{"\"abc", 0, CodeUnterminatedString},
		{"\"abc\nx", 0, CodeUnterminatedString},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tokens := Tokenize([]byte(tt.input), "")
			diags := tokens[tt.token].Diagnostics
			if len(diags) != 1 {
				t.Fatalf("got %d diagnostics, want 1", len(diags))
			}
			if diags[0].Code != tt.code {
				t.Errorf("got code %s, want %s", diags[0].Code, tt.code)
			}
		})
	}
}

func TestInvalidCharacterBecomesTrivia(t *testing.T) {
	tokens := Tokenize([]byte("a # b"), "")
	b := tokens[1]
	if len(b.Leading) != 2 {
		t.Fatalf("got %d leading pieces, want 2", len(b.Leading))
	}
	if b.Leading[0].Kind() != syntax.KindInvalidTokenTrivia || b.Leading[0].Text() != "#" {
		t.Errorf("got %v %q", b.Leading[0].Kind(), b.Leading[0].Text())
	}
	if b.TextStart() != 4 {
		t.Errorf("b text at %d, want 4", b.TextStart())
	}
}
