package intern

import (
	"github.com/rs/zerolog"
	"github.com/xgzlucario/intern/internal/index"
)

// Builder configures a Pool before it exists. Strategy selection is checked
// against the capabilities of T right away, so an unusable configuration is
// reported before any pool is built.
type Builder[T any] struct {
	options  Options
	consumed bool
}

// NewBuilder returns a builder with DefaultOptions.
func NewBuilder[T any]() *Builder[T] {
	return NewBuilderWithOptions[T](DefaultOptions)
}

func NewBuilderWithOptions[T any](options Options) *Builder[T] {
	return &Builder[T]{options: options}
}

// Hash selects the hash-backed index. It fails with ErrUnsupportedCapability
// when T has no hash consistent with equality.
func (b *Builder[T]) Hash() (*Builder[T], error) {
	return b.strategy(StrategyHash)
}

// BTree selects the order-backed index. It fails with
// ErrUnsupportedCapability when T has no total order.
func (b *Builder[T]) BTree() (*Builder[T], error) {
	return b.strategy(StrategyBTree)
}

func (b *Builder[T]) strategy(s Strategy) (*Builder[T], error) {
	if err := capable[T](s); err != nil {
		return nil, err
	}
	b.options.Strategy = s
	return b, nil
}

// Capacity reserves room for n entries.
func (b *Builder[T]) Capacity(n int) *Builder[T] {
	b.options.Capacity = max(n, 0)
	return b
}

// MaxTokens bounds the number of distinct values the pool accepts.
func (b *Builder[T]) MaxTokens(n uint64) *Builder[T] {
	b.options.MaxTokens = n
	return b
}

func (b *Builder[T]) Logger(logger zerolog.Logger) *Builder[T] {
	b.options.Logger = logger
	return b
}

// Build consumes the builder and returns an empty pool.
func (b *Builder[T]) Build() (*Pool[T], error) {
	if b.consumed {
		return nil, ErrBuilderConsumed
	}
	if err := checkOptions(b.options); err != nil {
		return nil, &ConfigError{Strategy: b.options.Strategy, Err: err}
	}
	p, err := newPool[T](b.options)
	if err != nil {
		return nil, err
	}
	b.consumed = true

	b.options.Logger.Debug().
		Stringer("strategy", b.options.Strategy).
		Int("capacity", b.options.Capacity).
		Uint64("maxTokens", b.options.MaxTokens).
		Msg("intern pool built")

	return p, nil
}

func capable[T any](s Strategy) error {
	var err error
	switch s {
	case StrategyHash:
		_, err = index.Hashing[T]()
	case StrategyBTree:
		_, err = index.Ordering[T]()
	}
	if err != nil {
		return unsupported(s, err)
	}
	return nil
}
