package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/syntree/syntax"
)

type Option func(*Parser)

func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithBuilder makes the parser construct nodes through b, for example to
// share a deduplicating builder across files.
func WithBuilder(b *syntax.Builder) Option {
	return func(p *Parser) {
		p.builder = b
	}
}

func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

type parseFunc func(*Parser) syntax.InternalNode

type Parser struct {
	file    string
	reader  io.Reader
	input   []byte
	builder *syntax.Builder
	log     commonlog.Logger
	tokens  []Token
	pos     int
	entry   parseFunc
	// trivia and diagnostics of skipped tokens, waiting for the next
	// consumed token
	pending      []syntax.Trivia
	pendingDiags []syntax.Diagnostic
}

func newParser(r io.Reader, entry parseFunc, opts []Option) *Parser {
	p := &Parser{
		reader: r,
		entry:  entry,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.builder == nil {
		p.builder = syntax.NewBuilder()
	}
	if p.log == nil {
		p.log = commonlog.GetLogger("syntree.parser")
	}
	return p
}

// ParseModule prepares a parser for a whole source file.
func ParseModule(r io.Reader, opts ...Option) *Parser {
	return newParser(r, (*Parser).parseModulePart, opts)
}

// ParseExpression prepares a parser whose root is a single expression.
// Input after the expression is kept as trailing trivia.
func ParseExpression(r io.Reader, opts ...Option) *Parser {
	return newParser(r, func(p *Parser) syntax.InternalNode {
		return p.parseFragment(p.parseExpression())
	}, opts)
}

// ParseStatement prepares a parser whose root is a single statement.
func ParseStatement(r io.Reader, opts ...Option) *Parser {
	return newParser(r, func(p *Parser) syntax.InternalNode {
		return p.parseFragment(p.parseStatement())
	}, opts)
}

// Parse parses a module from a string.
func Parse(src string, opts ...Option) *syntax.SyntaxTree {
	tree, err := ParseModule(strings.NewReader(src), opts...).Finish()
	if err != nil {
		// strings.Reader never fails
		panic(err)
	}
	return tree
}

func (p *Parser) readAll() error {
	if p.input != nil {
		return nil
	}
	data, err := io.ReadAll(p.reader)
	if err != nil {
		return fmt.Errorf("read %s: %w", p.displayName(), err)
	}
	p.input = data
	return nil
}

func (p *Parser) displayName() string {
	if p.file == "" {
		return "<input>"
	}
	return p.file
}

// Finish reads the input and parses it. Syntax errors never fail: they are
// recorded as diagnostics in the returned tree. The error is only non-nil
// when the input could not be read.
func (p *Parser) Finish() (*syntax.SyntaxTree, error) {
	if err := p.readAll(); err != nil {
		return nil, err
	}
	p.tokens = Tokenize(p.input, p.file)
	p.pos = 0
	p.pending = nil
	p.pendingDiags = nil

	root := p.entry(p)
	tree := syntax.NewSyntaxTree(root, p.file)
	p.log.Debugf("parsed %s: %d bytes, %d tokens, %d diagnostics",
		p.displayName(), len(p.input), len(p.tokens), len(tree.Diagnostics()))
	return tree, nil
}

// Reset points the parser at new input, keeping its options.
func (p *Parser) Reset(r io.Reader) {
	p.reader = r
	p.input = nil
	p.tokens = nil
	p.pos = 0
	p.pending = nil
	p.pendingDiags = nil
}

func (p *Parser) peek() Token {
	return p.peekN(0)
}

func (p *Parser) peekN(n int) Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) peekKind() syntax.SyntaxKind {
	return p.peek().Kind
}

func (p *Parser) check(kind syntax.SyntaxKind) bool {
	return p.peekKind() == kind
}

func (p *Parser) match(kinds ...syntax.SyntaxKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

// consume turns the current token into an internal token, prepending the
// trivia of any tokens skipped before it.
func (p *Parser) consume() *syntax.InternalToken {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	leading := make([]syntax.Trivia, 0, len(p.pending)+len(tok.Leading))
	leading = append(leading, p.pending...)
	leading = append(leading, tok.Leading...)
	it := p.builder.Token(tok.Kind, tok.Text, syntax.NewTriviaList(leading...), syntax.NewTriviaList(tok.Trailing...))

	diags := append(p.pendingDiags, tok.Diagnostics...)
	p.pending = nil
	p.pendingDiags = nil
	if len(diags) > 0 {
		it = it.WithDiagnostics(diags...)
	}
	return it
}

// expect consumes a token of the given kind or inserts a missing one.
func (p *Parser) expect(kind syntax.SyntaxKind) *syntax.InternalToken {
	if p.check(kind) {
		return p.consume()
	}
	return p.missing(kind)
}

func (p *Parser) missing(kind syntax.SyntaxKind) *syntax.InternalToken {
	got := p.peek()
	desc := got.Text
	if got.Kind == syntax.KindEOFToken {
		desc = "end of file"
	} else {
		desc = "'" + desc + "'"
	}
	d := syntax.NewError(CodeMissingToken, "missing %s before %s", describe(kind), desc)
	return p.builder.MissingToken(kind, d)
}

func describe(kind syntax.SyntaxKind) string {
	if text, ok := kind.FixedText(); ok {
		return "'" + text + "'"
	}
	switch kind {
	case syntax.KindIdentifierToken:
		return "identifier"
	case syntax.KindEOFToken:
		return "end of file"
	}
	return kind.String()
}

// skip turns the current token into invalid-token trivia attached to the
// next consumed token. EOF is never skipped.
func (p *Parser) skip() {
	tok := p.peek()
	if tok.Kind == syntax.KindEOFToken {
		return
	}
	p.pos++
	p.log.Debugf("%s: skipping unexpected %s %q at %d", p.displayName(), tok.Kind, tok.Text, tok.TextStart())
	p.pending = append(p.pending, tok.Leading...)
	p.pending = append(p.pending, syntax.NewTrivia(syntax.KindInvalidTokenTrivia, tok.Text))
	p.pending = append(p.pending, tok.Trailing...)
	p.pendingDiags = append(p.pendingDiags, tok.Diagnostics...)
	p.pendingDiags = append(p.pendingDiags, syntax.NewError(CodeInvalidToken, "invalid token '%s'", tok.Text))
}

// mustProgress returns a function that checks if the parser has advanced.
// Call it at the start of a loop iteration, then call the returned function
// at the end to break if no progress was made.
func (p *Parser) mustProgress() func() bool {
	saved := p.pos
	return func() bool {
		if p.pos == saved {
			if !p.check(syntax.KindEOFToken) {
				p.skip()
				return true
			}
			return false
		}
		return true
	}
}

// parseFragment finishes an expression or statement root: whatever follows
// it, up to and including the EOF trivia, becomes trailing trivia of its
// last token.
func (p *Parser) parseFragment(root syntax.InternalNode) syntax.InternalNode {
	for !p.check(syntax.KindEOFToken) {
		p.skip()
	}
	eof := p.consume()
	extra := eof.LeadingTrivia()
	diags := eof.Diagnostics()
	if extra.Len() == 0 && len(diags) == 0 {
		return root
	}

	var last *syntax.Token
	for t := range syntax.Tokens(syntax.NewRoot(root)) {
		last = t
	}
	if last == nil {
		return root
	}
	it := last.InternalToken()
	replacement := it.WithTrailingTrivia(it.TrailingTrivia().Concat(extra))
	if len(diags) > 0 {
		replacement = replacement.WithDiagnostics(diags...)
	}
	newRoot, err := syntax.Replace(last, replacement)
	if err != nil {
		p.log.Errorf("%s: attach trailing trivia: %s", p.displayName(), err)
		return root
	}
	return newRoot
}

// parseSeparatedList parses item (',' item)*. A missing item or separator
// is inserted where needed and unexpected tokens are skipped, so the result
// always alternates item, separator, item.
func (p *Parser) parseSeparatedList(isItemStart func() bool, parseItem func() syntax.InternalNode, isEnd func() bool) *syntax.InternalBranch {
	var items []syntax.InternalNode
	if isEnd() || p.check(syntax.KindEOFToken) {
		return p.builder.SeparatedNodeList()
	}
	for {
		items = append(items, parseItem())
		for !isEnd() && !p.check(syntax.KindCommaToken) && !isItemStart() && !p.check(syntax.KindEOFToken) {
			p.skip()
		}
		if p.check(syntax.KindCommaToken) {
			items = append(items, p.consume())
			continue
		}
		if isEnd() || p.check(syntax.KindEOFToken) {
			break
		}
		items = append(items, p.missing(syntax.KindCommaToken))
	}
	return p.builder.SeparatedNodeList(items...)
}
