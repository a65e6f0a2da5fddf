package syntax

import "fmt"

// ArityError reports a node constructed with the wrong shape. It is raised as
// a panic: only a broken producer can trigger it.
type ArityError struct {
	Kind    SyntaxKind
	Want    int
	Got     int
	Message string
}

func (e *ArityError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("syntax: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("syntax: %s takes %d children, got %d", e.Kind, e.Want, e.Got)
}

// IndexError reports a child index outside a node's bucket range. It is
// raised as a panic.
type IndexError struct {
	Kind  SyntaxKind
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("syntax: index %d out of range for %s with %d children", e.Index, e.Kind, e.Count)
}
