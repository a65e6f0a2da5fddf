// Package format renders syntax trees: a lossless JSON form of the internal
// layer, an indented outline of the facade layer and a tab-separated token
// listing.
package format

import (
	"github.com/dhamidi/syntree/syntax"
)

// TreeEncoder writes a parsed tree in some output form.
type TreeEncoder interface {
	EncodeTree(tree *syntax.SyntaxTree) error
}

func (e *TreeJSONEncoder) EncodeTree(tree *syntax.SyntaxTree) error {
	return e.Encode(tree.InternalRoot())
}

func (e *DumpEncoder) EncodeTree(tree *syntax.SyntaxTree) error {
	return e.Encode(tree.RootNode())
}
