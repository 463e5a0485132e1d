package index

import (
	"github.com/cockroachdb/swiss"
)

// bucket holds the tokens of all recorded values sharing one hash. Most
// buckets have a single token, so it is kept inline.
type bucket struct {
	head uint32
	more []uint32
}

// Hash is an index over a swiss map keyed by value hash.
type Hash[T any] struct {
	m     *swiss.Map[uint64, bucket]
	fn    Funcs[T]
	at    Accessor[T]
	count int
	clash int
}

func NewHash[T any](capacity int, fn Funcs[T], at Accessor[T]) *Hash[T] {
	return &Hash[T]{
		m:  swiss.New[uint64, bucket](capacity),
		fn: fn,
		at: at,
	}
}

func (h *Hash[T]) Lookup(v T) (uint32, bool) {
	b, ok := h.m.Get(h.fn.Hash(v))
	if !ok {
		return 0, false
	}
	if h.fn.Equal(h.at(b.head), v) {
		return b.head, true
	}
	for _, tok := range b.more {
		if h.fn.Equal(h.at(tok), v) {
			return tok, true
		}
	}
	return 0, false
}

func (h *Hash[T]) Record(v T, tok uint32) {
	sum := h.fn.Hash(v)
	b, ok := h.m.Get(sum)
	if ok {
		b.more = append(b.more, tok)
		h.clash++
	} else {
		b.head = tok
	}
	h.m.Put(sum, b)
	h.count++
}

func (h *Hash[T]) Len() int { return h.count }

// Collisions returns the number of recorded values that share a hash with
// an earlier one.
func (h *Hash[T]) Collisions() int { return h.clash }
