package config

import (
	"fmt"

	"github.com/lgbarn/rookworks-go/internal/errors"
)

// EngineSettings are the options sent to an external UCI analysis engine.
type EngineSettings struct {
	Threads       int
	Hash          int // MB
	MultiPV       int
	SkillLevel    int // 0..20
	LimitStrength bool
	Elo           int
	MoveOverhead  int // ms
	Depth         int // search depth for "go"; 0 means use MoveTime
	MoveTime      int // ms
}

// NewEngineSettings returns settings matching common engine defaults.
func NewEngineSettings() *EngineSettings {
	return &EngineSettings{
		Threads:      1,
		Hash:         16,
		MultiPV:      1,
		SkillLevel:   20,
		Elo:          1320,
		MoveOverhead: 10,
		Depth:        12,
	}
}

// Validate checks the settings are in range.
func (e *EngineSettings) Validate() error {
	switch {
	case e.Threads < 1:
		return fmt.Errorf("engine threads %d < 1: %w", e.Threads, errors.ErrInvalidConfig)
	case e.Hash < 1:
		return fmt.Errorf("engine hash %d < 1: %w", e.Hash, errors.ErrInvalidConfig)
	case e.MultiPV < 1:
		return fmt.Errorf("engine multipv %d < 1: %w", e.MultiPV, errors.ErrInvalidConfig)
	case e.SkillLevel < 0 || e.SkillLevel > 20:
		return fmt.Errorf("engine skill level %d not in 0..20: %w", e.SkillLevel, errors.ErrInvalidConfig)
	case e.Depth < 0 || e.MoveTime < 0:
		return fmt.Errorf("engine depth/movetime must not be negative: %w", errors.ErrInvalidConfig)
	case e.Depth == 0 && e.MoveTime == 0:
		return fmt.Errorf("engine needs a depth or a movetime: %w", errors.ErrInvalidConfig)
	}
	return nil
}
