package syntax

import (
	"strconv"
	"strings"
)

// InternalNode is the immutable, position-independent layer of the tree.
// Implementations never hold a position or a parent, so any subtree can be
// linked into any number of trees.
//
// An absent bucket is represented by a nil InternalNode.
type InternalNode interface {
	Kind() SyntaxKind
	// Width is the number of source bytes spanned, trivia included.
	Width() int
	ChildCount() int
	// ChildAt returns bucket i, or nil when the bucket is absent.
	ChildAt(i int) InternalNode
	// CreateFacade wraps this node in exactly one external node. It does not
	// descend into children.
	CreateFacade(position int, parent Node) Node
	Diagnostics() []Diagnostic
	// HasDiagnostics reports whether this node or any descendant carries a
	// diagnostic.
	HasDiagnostics() bool
	LeadingTriviaWidth() int
	TrailingTriviaWidth() int

	writeSource(b *strings.Builder)
	hasTokens() bool
}

// present turns typed nil pointers into a nil interface so callers may pass
// an unset *InternalToken for an optional bucket.
func present(n InternalNode) InternalNode {
	switch v := n.(type) {
	case nil:
		return nil
	case *InternalToken:
		if v == nil {
			return nil
		}
	case *InternalBranch:
		if v == nil {
			return nil
		}
	}
	return n
}

// InternalToken is an immutable leaf.
type InternalToken struct {
	kind        SyntaxKind
	text        string
	leading     TriviaList
	trailing    TriviaList
	width       int
	missing     bool
	diagnostics []Diagnostic
}

// NewInternalToken creates a token. Panics if kind is not a token kind.
func NewInternalToken(kind SyntaxKind, text string, leading, trailing TriviaList) *InternalToken {
	if !kind.IsToken() {
		panic(&ArityError{Kind: kind, Message: "not a token kind"})
	}
	return &InternalToken{
		kind:     kind,
		text:     text,
		leading:  leading,
		trailing: trailing,
		width:    leading.Width() + len(text) + trailing.Width(),
	}
}

// NewMissingToken creates a zero-width placeholder the parser inserts where
// the grammar required a token the source does not have.
func NewMissingToken(kind SyntaxKind, diagnostics ...Diagnostic) *InternalToken {
	t := NewInternalToken(kind, "", EmptyTrivia, EmptyTrivia)
	t.missing = true
	t.diagnostics = diagnostics
	return t
}

func (t *InternalToken) Kind() SyntaxKind {
	return t.kind
}

func (t *InternalToken) Text() string {
	return t.text
}

func (t *InternalToken) LeadingTrivia() TriviaList {
	return t.leading
}

func (t *InternalToken) TrailingTrivia() TriviaList {
	return t.trailing
}

func (t *InternalToken) IsMissing() bool {
	return t.missing
}

func (t *InternalToken) Width() int {
	return t.width
}

func (t *InternalToken) ChildCount() int {
	return 0
}

func (t *InternalToken) ChildAt(i int) InternalNode {
	panic(&IndexError{Kind: t.kind, Index: i, Count: 0})
}

func (t *InternalToken) CreateFacade(position int, parent Node) Node {
	return &Token{internal: t, position: position, parent: parent}
}

func (t *InternalToken) Diagnostics() []Diagnostic {
	return t.diagnostics
}

func (t *InternalToken) HasDiagnostics() bool {
	return len(t.diagnostics) > 0
}

func (t *InternalToken) LeadingTriviaWidth() int {
	return t.leading.Width()
}

func (t *InternalToken) TrailingTriviaWidth() int {
	return t.trailing.Width()
}

func (t *InternalToken) writeSource(b *strings.Builder) {
	t.leading.writeTo(b)
	b.WriteString(t.text)
	t.trailing.writeTo(b)
}

func (t *InternalToken) hasTokens() bool {
	return true
}

// WithLeadingTrivia returns a copy of t with different leading trivia.
func (t *InternalToken) WithLeadingTrivia(leading TriviaList) *InternalToken {
	c := *t
	c.leading = leading
	c.width = leading.Width() + len(c.text) + c.trailing.Width()
	return &c
}

// WithTrailingTrivia returns a copy of t with different trailing trivia.
func (t *InternalToken) WithTrailingTrivia(trailing TriviaList) *InternalToken {
	c := *t
	c.trailing = trailing
	c.width = c.leading.Width() + len(c.text) + trailing.Width()
	return &c
}

// WithDiagnostics returns a copy of t carrying additional diagnostics.
func (t *InternalToken) WithDiagnostics(diagnostics ...Diagnostic) *InternalToken {
	c := *t
	c.diagnostics = appendDiagnostics(t.diagnostics, diagnostics)
	return &c
}

// InternalBranch is an immutable non-terminal with a fixed number of buckets.
type InternalBranch struct {
	kind           SyntaxKind
	buckets        []InternalNode
	width          int
	leadingWidth   int
	trailingWidth  int
	tokens         bool
	diagnostics    []Diagnostic
	hasDiagnostics bool
}

// NewInternalNode creates a non-terminal of the given kind. The number of
// children must match the kind's arity and only optional buckets may be nil;
// anything else panics with an *ArityError.
func NewInternalNode(kind SyntaxKind, children ...InternalNode) *InternalBranch {
	return newBranch(kind, children, nil)
}

func newBranch(kind SyntaxKind, children []InternalNode, diagnostics []Diagnostic) *InternalBranch {
	if !kind.IsNode() {
		panic(&ArityError{Kind: kind, Message: "not a node kind"})
	}
	buckets := make([]InternalNode, len(children))
	for i, c := range children {
		buckets[i] = present(c)
	}
	if kind.IsList() {
		for i, c := range buckets {
			if c == nil {
				panic(&ArityError{Kind: kind, Message: "list item " + strconv.Itoa(i) + " is absent"})
			}
		}
	} else {
		if want := kind.Arity(); want != len(buckets) {
			panic(&ArityError{Kind: kind, Want: want, Got: len(buckets)})
		}
		for i, c := range buckets {
			if c == nil && !kind.SlotOptional(i) {
				panic(&ArityError{Kind: kind, Message: "required bucket " + kind.SlotName(i) + " is absent"})
			}
		}
	}

	b := &InternalBranch{
		kind:           kind,
		buckets:        buckets,
		diagnostics:    diagnostics,
		hasDiagnostics: len(diagnostics) > 0,
	}
	b.computeCache()
	return b
}

func (b *InternalBranch) computeCache() {
	width := 0
	for _, c := range b.buckets {
		if c == nil {
			continue
		}
		width += c.Width()
		if c.HasDiagnostics() {
			b.hasDiagnostics = true
		}
		if !b.tokens && c.hasTokens() {
			b.tokens = true
			b.leadingWidth = c.LeadingTriviaWidth()
		}
	}
	b.width = width
	for i := len(b.buckets) - 1; i >= 0; i-- {
		c := b.buckets[i]
		if c != nil && c.hasTokens() {
			b.trailingWidth = c.TrailingTriviaWidth()
			break
		}
	}
}

func (b *InternalBranch) Kind() SyntaxKind {
	return b.kind
}

func (b *InternalBranch) Width() int {
	return b.width
}

func (b *InternalBranch) ChildCount() int {
	return len(b.buckets)
}

func (b *InternalBranch) ChildAt(i int) InternalNode {
	if i < 0 || i >= len(b.buckets) {
		panic(&IndexError{Kind: b.kind, Index: i, Count: len(b.buckets)})
	}
	return b.buckets[i]
}

func (b *InternalBranch) CreateFacade(position int, parent Node) Node {
	if newFacade, ok := facadeConstructors[b.kind]; ok {
		return newFacade(b, position, parent)
	}
	n := &NonTerminalNode{}
	n.init(n, b, position, parent)
	return n
}

func (b *InternalBranch) Diagnostics() []Diagnostic {
	return b.diagnostics
}

func (b *InternalBranch) HasDiagnostics() bool {
	return b.hasDiagnostics
}

func (b *InternalBranch) LeadingTriviaWidth() int {
	return b.leadingWidth
}

func (b *InternalBranch) TrailingTriviaWidth() int {
	return b.trailingWidth
}

func (b *InternalBranch) writeSource(sb *strings.Builder) {
	for _, c := range b.buckets {
		if c != nil {
			c.writeSource(sb)
		}
	}
}

func (b *InternalBranch) hasTokens() bool {
	return b.tokens
}

// WithDiagnostics returns a copy of b carrying additional diagnostics. The
// children are shared, not copied.
func (b *InternalBranch) WithDiagnostics(diagnostics ...Diagnostic) *InternalBranch {
	return newBranch(b.kind, b.buckets, appendDiagnostics(b.diagnostics, diagnostics))
}

// WithChild returns a copy of b whose bucket i is replaced. All other buckets
// are the same InternalNode values as in b.
func (b *InternalBranch) WithChild(i int, child InternalNode) *InternalBranch {
	if i < 0 || i >= len(b.buckets) {
		panic(&IndexError{Kind: b.kind, Index: i, Count: len(b.buckets)})
	}
	children := make([]InternalNode, len(b.buckets))
	copy(children, b.buckets)
	children[i] = child
	return newBranch(b.kind, children, b.diagnostics)
}

// offsetOf returns the distance from the start of b to the start of bucket i.
func (b *InternalBranch) offsetOf(i int) int {
	offset := 0
	for _, c := range b.buckets[:i] {
		if c != nil {
			offset += c.Width()
		}
	}
	return offset
}

// SourceText reconstructs the exact source text covered by n.
func SourceText(n InternalNode) string {
	n = present(n)
	if n == nil {
		return ""
	}
	var b strings.Builder
	b.Grow(n.Width())
	n.writeSource(&b)
	return b.String()
}

func appendDiagnostics(existing, extra []Diagnostic) []Diagnostic {
	if len(extra) == 0 {
		return existing
	}
	out := make([]Diagnostic, 0, len(existing)+len(extra))
	out = append(out, existing...)
	return append(out, extra...)
}
