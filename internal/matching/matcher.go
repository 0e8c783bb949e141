// Package matching selects replayed games by their tags, the positions they
// pass through and how they end.
package matching

import (
	"fmt"
	"strings"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// GameMatcher decides whether a replayed game is wanted. g may be nil for
// matchers that only read tags.
type GameMatcher interface {
	Match(data *chess.GameData, g *engine.Game) bool
	Name() string
}

// MatchMode specifies how multiple matchers are combined.
type MatchMode int

const (
	// MatchAll requires all matchers to match (AND logic).
	MatchAll MatchMode = iota

	// MatchAny requires at least one matcher to match (OR logic).
	MatchAny
)

// CompositeMatcher combines multiple GameMatchers with AND or OR logic.
type CompositeMatcher struct {
	matchers []GameMatcher
	mode     MatchMode
}

// NewCompositeMatcher creates a new CompositeMatcher with the given mode and matchers.
func NewCompositeMatcher(mode MatchMode, matchers ...GameMatcher) *CompositeMatcher {
	return &CompositeMatcher{
		matchers: matchers,
		mode:     mode,
	}
}

// Match implements GameMatcher. An empty AND composite matches everything;
// an empty OR composite matches nothing.
func (c *CompositeMatcher) Match(data *chess.GameData, g *engine.Game) bool {
	if len(c.matchers) == 0 {
		return c.mode == MatchAll
	}
	for _, m := range c.matchers {
		ok := m.Match(data, g)
		if c.mode == MatchAll && !ok {
			return false
		}
		if c.mode == MatchAny && ok {
			return true
		}
	}
	return c.mode == MatchAll
}

// Name implements GameMatcher.
func (c *CompositeMatcher) Name() string {
	if len(c.matchers) == 0 {
		return "CompositeMatcher(empty)"
	}

	names := make([]string, len(c.matchers))
	for i, m := range c.matchers {
		names[i] = m.Name()
	}

	modeStr := "AND"
	if c.mode == MatchAny {
		modeStr = "OR"
	}
	return fmt.Sprintf("CompositeMatcher(%s: %s)", modeStr, strings.Join(names, ", "))
}

// Add adds a matcher to the composite.
func (c *CompositeMatcher) Add(m GameMatcher) {
	c.matchers = append(c.matchers, m)
}

// Len returns the number of matchers in the composite.
func (c *CompositeMatcher) Len() int {
	return len(c.matchers)
}
