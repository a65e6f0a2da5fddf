package syntax

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Builder is the construction API producers use. With deduplication enabled
// it hash-conses structurally equal elements so that repeated tokens and
// subtrees share one InternalNode. The cache lives here, never in the nodes.
//
// A Builder is not safe for concurrent use.
type Builder struct {
	dedup  bool
	cache  map[uint64][]InternalNode
	hashes map[InternalNode]uint64
	hits   int
}

type BuilderOption func(*Builder)

// WithDeduplication enables hash-consing of diagnostic-free elements.
func WithDeduplication() BuilderOption {
	return func(b *Builder) {
		b.dedup = true
	}
}

func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	if b.dedup {
		b.cache = make(map[uint64][]InternalNode)
		b.hashes = make(map[InternalNode]uint64)
	}
	return b
}

func (b *Builder) Token(kind SyntaxKind, text string, leading, trailing TriviaList) *InternalToken {
	t := NewInternalToken(kind, text, leading, trailing)
	if !b.dedup {
		return t
	}
	return b.intern(t).(*InternalToken)
}

func (b *Builder) MissingToken(kind SyntaxKind, diagnostics ...Diagnostic) *InternalToken {
	return NewMissingToken(kind, diagnostics...)
}

func (b *Builder) Node(kind SyntaxKind, children ...InternalNode) *InternalBranch {
	n := NewInternalNode(kind, children...)
	if !b.dedup || n.HasDiagnostics() {
		return n
	}
	return b.intern(n).(*InternalBranch)
}

// Stats reports the number of distinct cached elements and cache hits.
func (b *Builder) Stats() (entries, hits int) {
	return len(b.hashes), b.hits
}

func (b *Builder) intern(n InternalNode) InternalNode {
	if n.HasDiagnostics() {
		return n
	}
	h := b.hash(n)
	for _, candidate := range b.cache[h] {
		if Equal(candidate, n) {
			b.hits++
			return candidate
		}
	}
	b.cache[h] = append(b.cache[h], n)
	b.hashes[n] = h
	return n
}

func (b *Builder) hash(n InternalNode) uint64 {
	if h, ok := b.hashes[n]; ok {
		return h
	}
	return structuralHash(n, b.hashes)
}

// structuralHash hashes kind, token text, trivia and child hashes. Known
// child hashes are looked up in memo.
func structuralHash(n InternalNode, memo map[InternalNode]uint64) uint64 {
	d := xxhash.New()
	var buf [8]byte
	writeInt := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		d.Write(buf[:])
	}

	writeInt(uint64(n.Kind()))
	switch v := n.(type) {
	case *InternalToken:
		if v.missing {
			writeInt(1)
		} else {
			writeInt(0)
		}
		for _, list := range []TriviaList{v.leading, v.trailing} {
			writeInt(uint64(list.Len()))
			for _, p := range list.pieces {
				writeInt(uint64(p.kind))
				d.WriteString(p.text)
			}
		}
		d.WriteString(v.text)
	case *InternalBranch:
		writeInt(uint64(len(v.buckets)))
		for _, c := range v.buckets {
			if c == nil {
				writeInt(0)
				continue
			}
			if h, ok := memo[c]; ok {
				writeInt(h)
			} else {
				writeInt(structuralHash(c, memo))
			}
		}
	}
	return d.Sum64()
}
