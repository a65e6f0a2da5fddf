package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/syntree/syntax"
)

// LineEncoder lists the tokens of a tree, one tab-separated line each:
//
//	kind	line:column	range	text	[leading trivia]	[trailing trivia]
type LineEncoder struct {
	w      io.Writer
	tree   *syntax.SyntaxTree
	trivia bool
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

// WithTrivia adds the leading and trailing trivia columns.
func (e *LineEncoder) WithTrivia() *LineEncoder {
	e.trivia = true
	return e
}

func (e *LineEncoder) EncodeTree(tree *syntax.SyntaxTree) error {
	e.tree = tree
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	root := e.tree.RootNode()
	if root == nil {
		return nil, nil
	}
	for tok := range syntax.Tokens(root) {
		r := tok.TextRangeWithoutTrivia()
		text := strconv.Quote(tok.Text())
		if tok.IsMissing() {
			text = "<missing>"
		}
		fmt.Fprintf(&sb, "%s\t%s\t%s\t%s",
			tok.Kind(),
			e.tree.LinePosition(r.Start),
			r,
			text,
		)
		if e.trivia {
			fmt.Fprintf(&sb, "\t%s\t%s", e.triviaStr(tok.LeadingTrivia()), e.triviaStr(tok.TrailingTrivia()))
		}
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

func (e *LineEncoder) triviaStr(list syntax.TriviaList) string {
	var parts []string
	for p := range list.All() {
		parts = append(parts, p.Kind().String()+"="+strconv.Quote(p.Text()))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
