package intern

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedCapability = errors.New("unsupported capability")
	ErrInvalidConfig         = errors.New("invalid config")
	ErrBuilderConsumed       = errors.New("builder already consumed")
	ErrOverflow              = errors.New("token space exhausted")
	ErrNotFound              = errors.New("token not found")
)

// ConfigError is returned when a pool cannot be built as configured.
type ConfigError struct {
	Strategy Strategy
	Err      error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("intern: %s pool: %v", e.Strategy, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func unsupported(s Strategy, cause error) error {
	return &ConfigError{
		Strategy: s,
		Err:      fmt.Errorf("%w: %w", ErrUnsupportedCapability, cause),
	}
}
