package syntax

import "fmt"

// Equal reports whether a and b are structurally equal: same kind, same
// token text and trivia, pairwise equal children. Diagnostics are not part
// of a node's identity and are ignored.
func Equal(a, b InternalNode) bool {
	a, b = present(a), present(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() || a.Width() != b.Width() {
		return false
	}
	switch x := a.(type) {
	case *InternalToken:
		y, ok := b.(*InternalToken)
		if !ok {
			return false
		}
		return x.text == y.text &&
			x.missing == y.missing &&
			triviaEqual(x.leading, y.leading) &&
			triviaEqual(x.trailing, y.trailing)
	case *InternalBranch:
		y, ok := b.(*InternalBranch)
		if !ok || len(x.buckets) != len(y.buckets) {
			return false
		}
		for i := range x.buckets {
			if !Equal(x.buckets[i], y.buckets[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// VerifyWidth recomputes every width in the subtree from its tokens and
// compares it with the cached value.
func VerifyWidth(n InternalNode) error {
	_, err := verifyWidth(present(n))
	return err
}

func verifyWidth(n InternalNode) (int, error) {
	if n == nil {
		return 0, nil
	}
	var width int
	switch v := n.(type) {
	case *InternalToken:
		width = v.leading.Width() + len(v.text) + v.trailing.Width()
	case *InternalBranch:
		for _, c := range v.buckets {
			w, err := verifyWidth(c)
			if err != nil {
				return 0, err
			}
			width += w
		}
	}
	if width != n.Width() {
		return 0, fmt.Errorf("%s: cached width %d, computed %d", n.Kind(), n.Width(), width)
	}
	return width, nil
}
