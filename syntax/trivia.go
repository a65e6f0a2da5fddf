package syntax

import (
	"iter"
	"strings"
)

// Trivia is one piece of whitespace, line ending, comment or skipped token
// text attached to a token.
type Trivia struct {
	kind SyntaxKind
	text string
}

func NewTrivia(kind SyntaxKind, text string) Trivia {
	if !kind.IsTrivia() {
		panic(&ArityError{Kind: kind, Message: "not a trivia kind"})
	}
	return Trivia{kind: kind, text: text}
}

func (t Trivia) Kind() SyntaxKind {
	return t.kind
}

func (t Trivia) Text() string {
	return t.text
}

func (t Trivia) Width() int {
	return len(t.text)
}

// TriviaList is an immutable ordered sequence of trivia pieces.
type TriviaList struct {
	pieces []Trivia
	width  int
}

var EmptyTrivia = TriviaList{}

func NewTriviaList(pieces ...Trivia) TriviaList {
	if len(pieces) == 0 {
		return EmptyTrivia
	}
	owned := make([]Trivia, len(pieces))
	copy(owned, pieces)
	width := 0
	for _, p := range owned {
		width += len(p.text)
	}
	return TriviaList{pieces: owned, width: width}
}

func (l TriviaList) Len() int {
	return len(l.pieces)
}

func (l TriviaList) At(i int) Trivia {
	if i < 0 || i >= len(l.pieces) {
		panic(&IndexError{Kind: KindNone, Index: i, Count: len(l.pieces)})
	}
	return l.pieces[i]
}

func (l TriviaList) Width() int {
	return l.width
}

func (l TriviaList) All() iter.Seq[Trivia] {
	return func(yield func(Trivia) bool) {
		for _, p := range l.pieces {
			if !yield(p) {
				return
			}
		}
	}
}

// Pieces returns a copy of the underlying pieces.
func (l TriviaList) Pieces() []Trivia {
	out := make([]Trivia, len(l.pieces))
	copy(out, l.pieces)
	return out
}

// Concat returns a list holding the pieces of l followed by those of other.
func (l TriviaList) Concat(other TriviaList) TriviaList {
	if other.Len() == 0 {
		return l
	}
	if l.Len() == 0 {
		return other
	}
	pieces := make([]Trivia, 0, len(l.pieces)+len(other.pieces))
	pieces = append(pieces, l.pieces...)
	pieces = append(pieces, other.pieces...)
	return TriviaList{pieces: pieces, width: l.width + other.width}
}

// HasComments reports whether any piece is a comment.
func (l TriviaList) HasComments() bool {
	for _, p := range l.pieces {
		if p.kind == KindCommentTrivia {
			return true
		}
	}
	return false
}

func (l TriviaList) String() string {
	var b strings.Builder
	l.writeTo(&b)
	return b.String()
}

func (l TriviaList) writeTo(b *strings.Builder) {
	for _, p := range l.pieces {
		b.WriteString(p.text)
	}
}

func triviaEqual(a, b TriviaList) bool {
	if a.width != b.width || len(a.pieces) != len(b.pieces) {
		return false
	}
	for i := range a.pieces {
		if a.pieces[i] != b.pieces[i] {
			return false
		}
	}
	return true
}
