// Package store is the forward half of an intern pool: an append-only
// sequence of values addressed by token.
package store

import (
	"errors"
)

// MaxLimit is the largest token space a store can address with uint32 tokens.
const MaxLimit = 1 << 32

var ErrFull = errors.New("store is full")

// Store holds values in issue order. Store[i] is the value of token i.
type Store[T any] struct {
	values []T
	limit  uint64
}

// New returns an empty store with room for capacity values that accepts at
// most limit values. A limit of 0 or above MaxLimit is clamped to MaxLimit.
func New[T any](capacity int, limit uint64) *Store[T] {
	if limit == 0 || limit > MaxLimit {
		limit = MaxLimit
	}
	if capacity < 0 {
		capacity = 0
	}
	if uint64(capacity) > limit {
		capacity = int(limit)
	}
	return &Store[T]{
		values: make([]T, 0, capacity),
		limit:  limit,
	}
}

// Append stores v at the next free slot and returns the slot number.
func (s *Store[T]) Append(v T) (uint32, error) {
	n := uint64(len(s.values))
	if n >= s.limit {
		return 0, ErrFull
	}
	s.values = append(s.values, v)
	return uint32(n), nil
}

// Get returns the value at tok, or false if tok was never issued.
func (s *Store[T]) Get(tok uint32) (v T, ok bool) {
	if uint64(tok) >= uint64(len(s.values)) {
		return v, false
	}
	return s.values[tok], true
}

// At is Get without the range check, for callers holding an issued token.
func (s *Store[T]) At(tok uint32) T {
	return s.values[tok]
}

func (s *Store[T]) Len() int { return len(s.values) }

func (s *Store[T]) Cap() int { return cap(s.values) }

func (s *Store[T]) Limit() uint64 { return s.limit }

// Scan calls fn for every value in token order until fn returns false.
func (s *Store[T]) Scan(fn func(tok uint32, v T) bool) {
	for i, v := range s.values {
		if !fn(uint32(i), v) {
			return
		}
	}
}
