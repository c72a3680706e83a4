package game

import (
	"errors"
	"fmt"
)

// ErrValidation matches every ValidationError.
var ErrValidation = errors.New("validation failed")

// ErrPlayerCount indicates a player count outside [MinPlayers, MaxPlayers].
var ErrPlayerCount = errors.New("player count out of range")

// ErrNegativeCount indicates a negative loot count.
var ErrNegativeCount = errors.New("loot count must be non-negative")

// ErrTemplateShape indicates a car template that is not a (purses, jewels) pair.
var ErrTemplateShape = errors.New("template must have 1 or 2 non-negative entries")

// ValidationError reports an input rejected before any generation work.
type ValidationError struct {
	Field string
	Value int
	// Min and Max bound Value for range checks; both are zero otherwise.
	Min, Max int
	kind     error
}

func (e *ValidationError) Error() string {
	if e.Min != 0 || e.Max != 0 {
		return fmt.Sprintf("%s: %s [%d,%d]: %d", e.Field, e.kind, e.Min, e.Max, e.Value)
	}
	return fmt.Sprintf("%s: %s: %d", e.Field, e.kind, e.Value)
}

// Is reports whether target is ErrValidation or the specific sentinel for
// this failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation || target == e.kind
}

func (e *ValidationError) Unwrap() error {
	return e.kind
}

func playerCountOutOfRange(n int) *ValidationError {
	return &ValidationError{Field: "players", Value: n, Min: MinPlayers, Max: MaxPlayers, kind: ErrPlayerCount}
}

func negativeCount(field string, n int) *ValidationError {
	return &ValidationError{Field: field, Value: n, kind: ErrNegativeCount}
}

func badTemplate(value int) *ValidationError {
	return &ValidationError{Field: "template", Value: value, kind: ErrTemplateShape}
}
