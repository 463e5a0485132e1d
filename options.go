package intern

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xgzlucario/intern/internal/store"
)

// Strategy selects the backward index of a pool.
type Strategy byte

const (
	// StrategyHash needs a hash consistent with equality. Expected O(1).
	StrategyHash Strategy = iota
	// StrategyBTree needs a total order. O(log n), iterable in value order.
	StrategyBTree
)

const (
	DefaultCapacity = 64

	// TokenSpace is the number of distinct tokens a Token can express.
	TokenSpace = store.MaxLimit
)

var (
	DefaultOptions = Options{
		Strategy:  StrategyHash,
		Capacity:  DefaultCapacity,
		MaxTokens: TokenSpace,
		Logger:    zerolog.Nop(),
	}
)

// Options represents the configuration of a pool.
type Options struct {
	// Strategy is the backward index used for deduplication.
	Strategy Strategy

	// Capacity is the number of entries reserved up front.
	Capacity int

	// MaxTokens bounds the token space. Interning a new value once MaxTokens
	// values are stored fails with ErrOverflow. Must be in [1, TokenSpace].
	MaxTokens uint64

	// Logger receives build and overflow events.
	Logger zerolog.Logger
}

func (s Strategy) String() string {
	switch s {
	case StrategyHash:
		return "hash"
	case StrategyBTree:
		return "btree"
	}
	return fmt.Sprintf("Strategy(%d)", byte(s))
}

// ParseStrategy accepts the names printed by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hash", "":
		return StrategyHash, nil
	case "btree":
		return StrategyBTree, nil
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfig, name)
}

func checkOptions(options Options) error {
	if options.Strategy != StrategyHash && options.Strategy != StrategyBTree {
		return fmt.Errorf("%w: unknown strategy %v", ErrInvalidConfig, options.Strategy)
	}
	if options.Capacity < 0 {
		return fmt.Errorf("%w: negative capacity %d", ErrInvalidConfig, options.Capacity)
	}
	if options.MaxTokens == 0 || options.MaxTokens > TokenSpace {
		return fmt.Errorf("%w: max tokens %d out of range", ErrInvalidConfig, options.MaxTokens)
	}
	return nil
}
