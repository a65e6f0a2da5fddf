package parser

import (
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/syntree/syntax"
)

// Token is a lexed token with the trivia attached to it. Offset is the
// position of the first byte of its leading trivia.
type Token struct {
	Kind        syntax.SyntaxKind
	Text        string
	Leading     []syntax.Trivia
	Trailing    []syntax.Trivia
	Offset      int
	Diagnostics []syntax.Diagnostic
}

// Width is the number of source bytes the token spans, trivia included.
func (t Token) Width() int {
	w := len(t.Text)
	for _, p := range t.Leading {
		w += p.Width()
	}
	for _, p := range t.Trailing {
		w += p.Width()
	}
	return w
}

// TextStart is the offset of the token text, after its leading trivia.
func (t Token) TextStart() int {
	start := t.Offset
	for _, p := range t.Leading {
		start += p.Width()
	}
	return start
}

// Lexer splits source into tokens. Leading trivia is everything before a
// token that is not the previous token's trailing trivia. Trailing trivia is
// same-line whitespace and comments up to and including the first newline.
type Lexer struct {
	input []byte
	file  string
	pos   int
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input: input,
		file:  file,
	}
}

func (l *Lexer) File() string {
	return l.file
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

// NextToken returns the next token. After the input is exhausted it keeps
// returning EOF tokens carrying whatever trivia remained.
func (l *Lexer) NextToken() Token {
	tok := Token{Offset: l.pos}
	tok.Leading, tok.Diagnostics = l.scanLeadingTrivia()

	if l.atEOF() {
		tok.Kind = syntax.KindEOFToken
		return tok
	}

	start := l.pos
	ch := l.peek()
	switch {
	case isIdentStart(ch) || ch >= utf8.RuneSelf && l.isUnicodeLetter():
		tok.Kind = l.scanIdentOrKeyword()
	case isDigit(ch):
		tok.Kind = l.scanNumber()
	case ch == '.' && isDigit(l.peekN(1)):
		tok.Kind = l.scanNumber()
	case ch == '"':
		var diag *syntax.Diagnostic
		tok.Kind, diag = l.scanString()
		if diag != nil {
			tok.Diagnostics = append(tok.Diagnostics, *diag)
		}
	default:
		tok.Kind = l.scanOperator()
	}
	tok.Text = string(l.input[start:l.pos])
	tok.Trailing = l.scanTrailingTrivia()
	return tok
}

// scanLeadingTrivia collects whitespace, newlines, comments and characters
// no token can start with.
func (l *Lexer) scanLeadingTrivia() ([]syntax.Trivia, []syntax.Diagnostic) {
	var pieces []syntax.Trivia
	var diags []syntax.Diagnostic
	for !l.atEOF() {
		if t, ok := l.scanTriviaPiece(); ok {
			pieces = append(pieces, t)
			continue
		}
		if l.startsToken() {
			break
		}
		r, size := utf8.DecodeRune(l.input[l.pos:])
		text := string(l.input[l.pos : l.pos+size])
		l.pos += size
		pieces = append(pieces, syntax.NewTrivia(syntax.KindInvalidTokenTrivia, text))
		diags = append(diags, syntax.NewError(CodeInvalidCharacter, "invalid character %q", r))
	}
	return pieces, diags
}

func (l *Lexer) scanTrailingTrivia() []syntax.Trivia {
	var pieces []syntax.Trivia
	for !l.atEOF() {
		ch := l.peek()
		if ch == '\n' || ch == '\r' {
			t, _ := l.scanTriviaPiece()
			return append(pieces, t)
		}
		if ch == ' ' || ch == '\t' || ch == '/' && l.peekN(1) == '/' {
			t, _ := l.scanTriviaPiece()
			pieces = append(pieces, t)
			continue
		}
		break
	}
	return pieces
}

func (l *Lexer) scanTriviaPiece() (syntax.Trivia, bool) {
	start := l.pos
	switch ch := l.peek(); {
	case ch == ' ' || ch == '\t':
		for l.peek() == ' ' || l.peek() == '\t' {
			l.pos++
		}
		return syntax.NewTrivia(syntax.KindWhitespaceTrivia, string(l.input[start:l.pos])), true
	case ch == '\r':
		l.pos++
		if l.peek() == '\n' {
			l.pos++
		}
		return syntax.NewTrivia(syntax.KindEndOfLineTrivia, string(l.input[start:l.pos])), true
	case ch == '\n':
		l.pos++
		return syntax.NewTrivia(syntax.KindEndOfLineTrivia, "\n"), true
	case ch == '/' && l.peekN(1) == '/':
		for !l.atEOF() && l.peek() != '\n' && l.peek() != '\r' {
			l.pos++
		}
		return syntax.NewTrivia(syntax.KindCommentTrivia, string(l.input[start:l.pos])), true
	}
	return syntax.Trivia{}, false
}

func (l *Lexer) startsToken() bool {
	ch := l.peek()
	if isIdentStart(ch) || isDigit(ch) || ch == '"' {
		return true
	}
	if ch >= utf8.RuneSelf {
		return l.isUnicodeLetter()
	}
	switch ch {
	case '(', ')', '{', '}', ';', ',', '.', ':', '?', '=', '+', '-', '*', '/', '%', '<', '>', '!':
		return true
	case '&':
		return l.peekN(1) == '&'
	case '|':
		return l.peekN(1) == '|'
	}
	return false
}

func (l *Lexer) isUnicodeLetter() bool {
	r, _ := utf8.DecodeRune(l.input[l.pos:])
	return unicode.IsLetter(r)
}

func (l *Lexer) scanIdentOrKeyword() syntax.SyntaxKind {
	start := l.pos
	for !l.atEOF() {
		ch := l.peek()
		if isIdentStart(ch) || isDigit(ch) {
			l.pos++
			continue
		}
		if ch >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(l.input[l.pos:])
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				l.pos += size
				continue
			}
		}
		break
	}
	return syntax.LookupKeyword(string(l.input[start:l.pos]))
}

func (l *Lexer) scanNumber() syntax.SyntaxKind {
	kind := syntax.KindDecimalIntegerLiteralToken
	for isDigit(l.peek()) {
		l.pos++
	}
	if l.peek() == '.' && isDigit(l.peekN(1)) {
		kind = syntax.KindDecimalFloatingPointLiteralToken
		l.pos++
		for isDigit(l.peek()) {
			l.pos++
		}
	}
	if ch := l.peek(); ch == 'e' || ch == 'E' {
		n := 1
		if sign := l.peekN(1); sign == '+' || sign == '-' {
			n = 2
		}
		if isDigit(l.peekN(n)) {
			kind = syntax.KindDecimalFloatingPointLiteralToken
			l.pos += n
			for isDigit(l.peek()) {
				l.pos++
			}
		}
	}
	return kind
}

// scanString consumes a double-quoted literal. An unterminated literal ends
// at the end of the line.
func (l *Lexer) scanString() (syntax.SyntaxKind, *syntax.Diagnostic) {
	l.pos++
	for !l.atEOF() {
		switch l.peek() {
		case '"':
			l.pos++
			return syntax.KindStringLiteralToken, nil
		case '\\':
			l.pos++
			if !l.atEOF() && l.peek() != '\n' && l.peek() != '\r' {
				l.pos++
			}
		case '\n', '\r':
			d := syntax.NewError(CodeUnterminatedString, "unterminated string literal")
			return syntax.KindStringLiteralToken, &d
		default:
			l.pos++
		}
	}
	d := syntax.NewError(CodeUnterminatedString, "unterminated string literal")
	return syntax.KindStringLiteralToken, &d
}

var twoCharOperators = map[string]syntax.SyntaxKind{
	"==": syntax.KindDoubleEqualToken,
	"!=": syntax.KindNotEqualToken,
	"<=": syntax.KindLtEqualToken,
	">=": syntax.KindGtEqualToken,
	"&&": syntax.KindLogicalAndToken,
	"||": syntax.KindLogicalOrToken,
}

var oneCharOperators = map[byte]syntax.SyntaxKind{
	'(': syntax.KindOpenParenToken,
	')': syntax.KindCloseParenToken,
	'{': syntax.KindOpenBraceToken,
	'}': syntax.KindCloseBraceToken,
	';': syntax.KindSemicolonToken,
	',': syntax.KindCommaToken,
	'.': syntax.KindDotToken,
	':': syntax.KindColonToken,
	'?': syntax.KindQuestionMarkToken,
	'=': syntax.KindEqualToken,
	'+': syntax.KindPlusToken,
	'-': syntax.KindMinusToken,
	'*': syntax.KindAsteriskToken,
	'/': syntax.KindSlashToken,
	'%': syntax.KindPercentToken,
	'<': syntax.KindLtToken,
	'>': syntax.KindGtToken,
	'!': syntax.KindExclamationMarkToken,
}

// scanOperator is only called when startsToken holds, so one of the tables
// always matches.
func (l *Lexer) scanOperator() syntax.SyntaxKind {
	if l.pos+2 <= len(l.input) {
		if kind, ok := twoCharOperators[string(l.input[l.pos:l.pos+2])]; ok {
			l.pos += 2
			return kind
		}
	}
	kind := oneCharOperators[l.peek()]
	l.pos++
	return kind
}

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Tokenize lexes the whole input, ending with exactly one EOF token.
func Tokenize(input []byte, file string) []Token {
	l := NewLexer(input, file)
	var tokens []Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Kind == syntax.KindEOFToken {
			return tokens
		}
	}
}
