package config

import (
	"fmt"

	"github.com/lgbarn/rookworks-go/internal/errors"
)

// FilterConfig selects which replayed games are written out.
type FilterConfig struct {
	// Move bounds, in full moves.
	CheckMoveBounds bool
	LowerMoveBound  uint
	UpperMoveBound  uint

	// Match conditions on the final position.
	MatchCheckmate bool
	MatchStalemate bool

	// KeepBrokenGames reports games whose replay failed instead of
	// dropping them silently.
	KeepBrokenGames bool
}

// NewFilterConfig creates a FilterConfig with default values.
// All filters are disabled by default.
func NewFilterConfig() *FilterConfig {
	return &FilterConfig{}
}

// Validate checks that the filter configuration is valid.
func (f *FilterConfig) Validate() error {
	if f.CheckMoveBounds && f.LowerMoveBound > f.UpperMoveBound {
		return fmt.Errorf("lower move bound (%d) > upper move bound (%d): %w",
			f.LowerMoveBound, f.UpperMoveBound, errors.ErrInvalidConfig)
	}
	return nil
}

// MatchesLength reports whether a game of plies half-moves passes the move
// bounds.
func (f *FilterConfig) MatchesLength(plies int) bool {
	if !f.CheckMoveBounds {
		return true
	}
	moves := uint((plies + 1) / 2)
	return moves >= f.LowerMoveBound && moves <= f.UpperMoveBound
}
