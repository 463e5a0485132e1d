// Package intern assigns each distinct value a small, stable Token and
// stores every distinct value exactly once.
//
//	p := intern.Strings()
//	hello, _ := p.Intern("hello") // 0
//	world, _ := p.Intern("world") // 1
//	again, _ := p.Intern("hello") // 0
//	s, _ := p.Resolve(world)      // "world"
//
// A Pool is not safe for concurrent use.
package intern

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/xgzlucario/intern/internal/index"
	"github.com/xgzlucario/intern/internal/store"
)

// Pool is an append-only intern table. The forward store maps tokens to
// values; the backward index maps values to tokens. Both always hold the
// same set of values.
type Pool[T any] struct {
	store    *store.Store[T]
	index    index.Index[T]
	ordered  *index.Ordered[T]
	clone    func(T) T
	strategy Strategy
	logger   zerolog.Logger
}

func newPool[T any](options Options) (*Pool[T], error) {
	p := &Pool[T]{
		store:    store.New[T](options.Capacity, options.MaxTokens),
		clone:    index.Cloning[T](),
		strategy: options.Strategy,
		logger:   options.Logger,
	}

	switch options.Strategy {
	case StrategyHash:
		fn, err := index.Hashing[T]()
		if err != nil {
			return nil, unsupported(StrategyHash, err)
		}
		p.index = index.NewHash(options.Capacity, fn, p.store.At)

	case StrategyBTree:
		cmp, err := index.Ordering[T]()
		if err != nil {
			return nil, unsupported(StrategyBTree, err)
		}
		p.ordered = index.NewOrdered(cmp, p.store.At)
		p.index = p.ordered
	}
	return p, nil
}

// Intern returns the token of v, storing v if no equal value was interned
// before. The first token issued for a value is returned for every later
// equal value. Intern fails with ErrOverflow once MaxTokens distinct values
// are stored, leaving the pool unchanged.
func (p *Pool[T]) Intern(v T) (Token, error) {
	if tok, ok := p.index.Lookup(v); ok {
		return Token(tok), nil
	}

	if uint64(p.store.Len()) >= p.store.Limit() {
		p.logger.Warn().Uint64("maxTokens", p.store.Limit()).Msg("intern pool overflow")
		return 0, ErrOverflow
	}
	if p.clone != nil {
		v = p.clone(v)
	}

	c := p.store.Cap()
	tok, err := p.store.Append(v)
	if err != nil {
		return 0, ErrOverflow
	}
	p.index.Record(v, tok)

	if n := p.store.Cap(); n != c {
		p.logger.Debug().Int("len", p.store.Len()).Int("cap", n).Msg("intern pool grown")
	}
	return Token(tok), nil
}

// Resolve returns the value interned under t. Tokens are only meaningful to
// the pool that issued them: a token from another pool that happens to be
// in range resolves to an unrelated value.
//
// A resolved []byte aliases pool storage and must not be modified.
func (p *Pool[T]) Resolve(t Token) (T, error) {
	v, ok := p.store.Get(uint32(t))
	if !ok {
		return v, fmt.Errorf("%w: %d (pool has %d)", ErrNotFound, t, p.store.Len())
	}
	return v, nil
}

// Lookup returns the token of v without interning it.
func (p *Pool[T]) Lookup(v T) (Token, bool) {
	tok, ok := p.index.Lookup(v)
	return Token(tok), ok
}

// Len returns the number of interned values.
func (p *Pool[T]) Len() int { return p.store.Len() }

// Cap returns the number of values the pool can hold without growing.
func (p *Pool[T]) Cap() int { return p.store.Cap() }

// Limit returns the MaxTokens the pool was built with.
func (p *Pool[T]) Limit() uint64 { return p.store.Limit() }

func (p *Pool[T]) Strategy() Strategy { return p.strategy }

// Scan calls fn for every value in token order until fn returns false.
func (p *Pool[T]) Scan(fn func(Token, T) bool) {
	p.store.Scan(func(tok uint32, v T) bool {
		return fn(Token(tok), v)
	})
}

// Ascend calls fn for every value in ascending value order until fn returns
// false. Only btree pools keep that order.
func (p *Pool[T]) Ascend(fn func(Token, T) bool) error {
	if p.ordered == nil {
		return &ConfigError{
			Strategy: p.strategy,
			Err:      fmt.Errorf("%w: ordered iteration", ErrUnsupportedCapability),
		}
	}
	p.ordered.Ascend(func(tok uint32) bool {
		return fn(Token(tok), p.store.At(tok))
	})
	return nil
}
