package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dhamidi/syntree/syntax"
)

// TreeJSONEncoder writes the internal layer of a syntax tree as JSON. The
// form is lossless: decoding it with DecodeTreeJSON yields a tree that is
// syntax.Equal to the input and carries the same diagnostics.
type TreeJSONEncoder struct {
	w      io.Writer
	indent bool
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w, indent: true}
}

// Compact disables indentation.
func (e *TreeJSONEncoder) Compact() *TreeJSONEncoder {
	e.indent = false
	return e
}

func (e *TreeJSONEncoder) Encode(node syntax.InternalNode) error {
	text, err := e.MarshalText(node)
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeJSONEncoder) MarshalText(node syntax.InternalNode) ([]byte, error) {
	if e.indent {
		return json.MarshalIndent(treeToJSON(node), "", "  ")
	}
	return json.Marshal(treeToJSON(node))
}

type treeJSONNode struct {
	Kind        string           `json:"kind"`
	Text        string           `json:"text,omitempty"`
	Missing     bool             `json:"missing,omitempty"`
	Leading     []treeJSONTrivia `json:"leading,omitempty"`
	Trailing    []treeJSONTrivia `json:"trailing,omitempty"`
	Diagnostics []treeJSONDiag   `json:"diagnostics,omitempty"`
	Children    []*treeJSONNode  `json:"children,omitempty"`
}

type treeJSONTrivia struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

type treeJSONDiag struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

func treeToJSON(n syntax.InternalNode) *treeJSONNode {
	if n == nil {
		return nil
	}
	jn := &treeJSONNode{
		Kind: n.Kind().String(),
	}
	for _, d := range n.Diagnostics() {
		jn.Diagnostics = append(jn.Diagnostics, treeJSONDiag{
			Code:     d.Code,
			Severity: d.Severity.String(),
			Message:  d.Message,
		})
	}

	if t, ok := n.(*syntax.InternalToken); ok {
		jn.Text = t.Text()
		jn.Missing = t.IsMissing()
		jn.Leading = triviaToJSON(t.LeadingTrivia())
		jn.Trailing = triviaToJSON(t.TrailingTrivia())
		return jn
	}

	jn.Children = make([]*treeJSONNode, n.ChildCount())
	for i := range jn.Children {
		jn.Children[i] = treeToJSON(n.ChildAt(i))
	}
	return jn
}

func triviaToJSON(list syntax.TriviaList) []treeJSONTrivia {
	var out []treeJSONTrivia
	for p := range list.All() {
		out = append(out, treeJSONTrivia{Kind: p.Kind().String(), Text: p.Text()})
	}
	return out
}

// DecodeTreeJSON reads a tree written by TreeJSONEncoder.
func DecodeTreeJSON(r io.Reader) (syntax.InternalNode, error) {
	var jn treeJSONNode
	if err := json.NewDecoder(r).Decode(&jn); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return jsonToTree(&jn, "$")
}

func jsonToTree(jn *treeJSONNode, path string) (node syntax.InternalNode, err error) {
	if jn == nil {
		return nil, nil
	}
	kind, ok := syntax.KindByName(jn.Kind)
	if !ok {
		return nil, fmt.Errorf("%s: unknown kind %q", path, jn.Kind)
	}
	diags, err := jsonToDiagnostics(jn.Diagnostics, path)
	if err != nil {
		return nil, err
	}

	if kind.IsToken() {
		leading, err := jsonToTrivia(jn.Leading, path)
		if err != nil {
			return nil, err
		}
		trailing, err := jsonToTrivia(jn.Trailing, path)
		if err != nil {
			return nil, err
		}
		if jn.Missing {
			t := syntax.NewMissingToken(kind, diags...)
			return t.WithLeadingTrivia(leading).WithTrailingTrivia(trailing), nil
		}
		t := syntax.NewInternalToken(kind, jn.Text, leading, trailing)
		if len(diags) > 0 {
			t = t.WithDiagnostics(diags...)
		}
		return t, nil
	}

	if !kind.IsNode() {
		return nil, fmt.Errorf("%s: %s is not a token or node kind", path, kind)
	}
	children := make([]syntax.InternalNode, len(jn.Children))
	for i, c := range jn.Children {
		children[i], err = jsonToTree(c, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
	}

	defer func() {
		if r := recover(); r != nil {
			ae, ok := r.(*syntax.ArityError)
			if !ok {
				panic(r)
			}
			node, err = nil, fmt.Errorf("%s: %w", path, ae)
		}
	}()
	branch := syntax.NewInternalNode(kind, children...)
	if len(diags) > 0 {
		branch = branch.WithDiagnostics(diags...)
	}
	return branch, nil
}

func jsonToTrivia(pieces []treeJSONTrivia, path string) (syntax.TriviaList, error) {
	out := make([]syntax.Trivia, 0, len(pieces))
	for _, p := range pieces {
		kind, ok := syntax.KindByName(p.Kind)
		if !ok || !kind.IsTrivia() {
			return syntax.EmptyTrivia, fmt.Errorf("%s: invalid trivia kind %q", path, p.Kind)
		}
		out = append(out, syntax.NewTrivia(kind, p.Text))
	}
	return syntax.NewTriviaList(out...), nil
}

func jsonToDiagnostics(diags []treeJSONDiag, path string) ([]syntax.Diagnostic, error) {
	var out []syntax.Diagnostic
	for _, d := range diags {
		severity, ok := syntax.SeverityByName(d.Severity)
		if !ok {
			return nil, fmt.Errorf("%s: unknown severity %q", path, d.Severity)
		}
		out = append(out, syntax.Diagnostic{Code: d.Code, Severity: severity, Message: d.Message})
	}
	return out, nil
}
