package syntax

import (
	"fmt"

	"github.com/dhamidi/syntree/text"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
)

var severityNames = map[Severity]string{
	SeverityError:   "error",
	SeverityWarning: "warning",
	SeverityInfo:    "info",
}

func (s Severity) String() string {
	if name, ok := severityNames[s]; ok {
		return name
	}
	return "unknown"
}

// SeverityByName resolves the String form of a severity.
func SeverityByName(name string) (Severity, bool) {
	for s, n := range severityNames {
		if n == name {
			return s, true
		}
	}
	return SeverityError, false
}

// Diagnostic is a parser finding attached to the internal node it concerns.
// It carries no position; the facade computes one on demand.
type Diagnostic struct {
	Code     string
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Severity, d.Code, d.Message)
}

func NewError(code, format string, args ...any) Diagnostic {
	return Diagnostic{Code: code, Severity: SeverityError, Message: fmt.Sprintf(format, args...)}
}

func NewWarning(code, format string, args ...any) Diagnostic {
	return Diagnostic{Code: code, Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)}
}

// PositionedDiagnostic is a Diagnostic resolved against a facade position.
type PositionedDiagnostic struct {
	Diagnostic
	Kind  SyntaxKind
	Range text.Range
}

func (d PositionedDiagnostic) String() string {
	return fmt.Sprintf("%s %s", d.Range, d.Diagnostic)
}

// collectDiagnostics walks internal nodes only, skipping every subtree whose
// cached flag is clear.
func collectDiagnostics(n InternalNode, position int, out []PositionedDiagnostic) []PositionedDiagnostic {
	if n == nil || !n.HasDiagnostics() {
		return out
	}
	if own := n.Diagnostics(); len(own) > 0 {
		start := position + n.LeadingTriviaWidth()
		end := position + n.Width() - n.TrailingTriviaWidth()
		if end < start {
			end = start
		}
		for _, d := range own {
			out = append(out, PositionedDiagnostic{
				Diagnostic: d,
				Kind:       n.Kind(),
				Range:      text.Range{Start: start, End: end},
			})
		}
	}
	offset := position
	for i := 0; i < n.ChildCount(); i++ {
		child := n.ChildAt(i)
		if child == nil {
			continue
		}
		out = collectDiagnostics(child, offset, out)
		offset += child.Width()
	}
	return out
}
