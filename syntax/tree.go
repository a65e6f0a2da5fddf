package syntax

import (
	"github.com/dhamidi/syntree/text"
)

// SyntaxTree couples a root internal node with the file it came from and a
// line map over its source text.
type SyntaxTree struct {
	file string
	root InternalNode
	doc  *text.Document
}

// NewSyntaxTree wraps root. The document is rebuilt from the tree's own
// source text so line positions always agree with node offsets.
func NewSyntaxTree(root InternalNode, file string) *SyntaxTree {
	root = present(root)
	return &SyntaxTree{
		file: file,
		root: root,
		doc:  text.NewDocument([]byte(SourceText(root))),
	}
}

func (t *SyntaxTree) File() string {
	return t.file
}

// Root returns the module facade. It is nil when the tree was built from
// something other than a module, for example by ParseExpression.
func (t *SyntaxTree) Root() *ModulePart {
	m, _ := t.RootNode().(*ModulePart)
	return m
}

// RootNode returns the root facade whatever its kind.
func (t *SyntaxTree) RootNode() Node {
	return NewRoot(t.root)
}

func (t *SyntaxTree) InternalRoot() InternalNode {
	return t.root
}

func (t *SyntaxTree) Document() *text.Document {
	return t.doc
}

func (t *SyntaxTree) HasDiagnostics() bool {
	return t.root != nil && t.root.HasDiagnostics()
}

func (t *SyntaxTree) Diagnostics() []PositionedDiagnostic {
	return collectDiagnostics(t.root, 0, nil)
}

func (t *SyntaxTree) ToSourceText() string {
	return t.doc.String()
}

// LinePosition maps a byte offset to a 0-based line and column.
func (t *SyntaxTree) LinePosition(offset int) text.LinePosition {
	return t.doc.Lines().Position(offset)
}

func (t *SyntaxTree) LineRange(r text.Range) text.LineRange {
	return t.doc.Lines().LineRange(r)
}

// ReplaceNode returns a new tree in which target, a facade obtained from
// this tree, is replaced. The receiver is left untouched and shares every
// subtree off the edited spine with the result.
func (t *SyntaxTree) ReplaceNode(target Node, replacement InternalNode) (*SyntaxTree, error) {
	root, err := Replace(target, replacement)
	if err != nil {
		return nil, err
	}
	return NewSyntaxTree(root, t.file), nil
}
