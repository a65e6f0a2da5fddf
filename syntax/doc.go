// Package syntax implements a lossless concrete syntax tree in two layers.
//
// The internal layer (InternalToken, InternalBranch) is immutable and knows
// nothing about where it sits: no absolute position, no parent. Widths are
// cached, so any subtree can be shared between trees and between versions of
// the same tree.
//
// The external layer (Token, NonTerminalNode and the generated typed nodes)
// is a thin facade created on demand while navigating. A facade records its
// absolute position and the facade it was reached from:
//
//	root := syntax.NewRoot(internal)
//	fn := root.(*syntax.ModulePart).Members().Get(0).(*syntax.FunctionDefinition)
//	name := fn.FunctionName()
//	fmt.Println(name.Text(), name.Position())
//
// Every token owns its trivia. Leading trivia is everything before the token
// that is not the previous token's trailing trivia; trailing trivia runs to
// the end of the line. Concatenating all tokens with their trivia reproduces
// the source exactly, including skipped and invalid input.
package syntax

//go:generate go run ../cmd/syntaxgen -i nodes.yaml -o nodes_gen.go
