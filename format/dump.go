package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dhamidi/syntree/syntax"
)

// Dump renders a facade subtree as an indented outline, one element per
// line. Tokens show their quoted text; missing tokens and diagnostics are
// marked. With positions each line also carries its full text range.
func Dump(node syntax.Node, withPositions bool) string {
	var b strings.Builder
	NewDumpEncoder(&b, withPositions).Encode(node)
	return b.String()
}

// DumpEncoder streams the outline produced by Dump.
type DumpEncoder struct {
	w             io.Writer
	withPositions bool
	showTrivia    bool
	err           error
}

func NewDumpEncoder(w io.Writer, withPositions bool) *DumpEncoder {
	return &DumpEncoder{w: w, withPositions: withPositions}
}

// WithTrivia also lists every trivia piece under its token.
func (e *DumpEncoder) WithTrivia() *DumpEncoder {
	e.showTrivia = true
	return e
}

func (e *DumpEncoder) Encode(node syntax.Node) error {
	e.err = nil
	if node != nil {
		e.writeNode(node, 0, "")
	}
	return e.err
}

func (e *DumpEncoder) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *DumpEncoder) writeNode(n syntax.Node, indent int, slot string) {
	prefix := strings.Repeat("  ", indent)
	line := prefix
	if slot != "" {
		line += slot + ": "
	}
	line += n.Kind().String()
	if e.withPositions {
		line += " " + n.TextRange().String()
	}

	tok, isToken := n.(*syntax.Token)
	if isToken {
		if tok.IsMissing() {
			line += " <missing>"
		} else {
			line += " " + strconv.Quote(tok.Text())
		}
	}
	for _, d := range n.Internal().Diagnostics() {
		line += " ERROR: " + d.String()
	}
	e.printf("%s\n", line)

	if isToken {
		if e.showTrivia {
			e.writeTrivia(prefix+"  ", "leading", tok.LeadingTrivia())
			e.writeTrivia(prefix+"  ", "trailing", tok.TrailingTrivia())
		}
		return
	}
	kind := n.Kind()
	for i, child := range n.Children() {
		name := kind.SlotName(i)
		if child == nil {
			if e.withPositions {
				e.printf("%s  %s: <absent>\n", prefix, name)
			}
			continue
		}
		e.writeNode(child, indent+1, name)
	}
}

func (e *DumpEncoder) writeTrivia(prefix, label string, list syntax.TriviaList) {
	for p := range list.All() {
		e.printf("%s%s %s %s\n", prefix, label, p.Kind(), strconv.Quote(p.Text()))
	}
}
