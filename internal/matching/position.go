package matching

import (
	"strings"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// PositionMatcher finds games that pass through given positions. Positions
// compare by piece placement and side to move only.
type PositionMatcher struct {
	targets map[string]string // position key -> label
}

// NewPositionMatcher creates an empty position matcher.
func NewPositionMatcher() *PositionMatcher {
	return &PositionMatcher{targets: make(map[string]string)}
}

// positionKey returns the placement and side-to-move fields of a FEN.
func positionKey(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) < 2 {
		return fen
	}
	return fields[0] + " " + fields[1]
}

// AddFEN adds a target position. The FEN must decode.
func (pm *PositionMatcher) AddFEN(fen, label string) error {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	pm.targets[positionKey(engine.BoardToFEN(board))] = label
	return nil
}

// MatchGame returns the index into g.History() of the first target position
// the game reaches, with its label, or -1.
func (pm *PositionMatcher) MatchGame(g *engine.Game) (int, string) {
	for i, fen := range g.History() {
		if label, ok := pm.targets[positionKey(fen)]; ok {
			return i, label
		}
	}
	return -1, ""
}

// Match implements GameMatcher.
func (pm *PositionMatcher) Match(_ *chess.GameData, g *engine.Game) bool {
	if g == nil {
		return false
	}
	i, _ := pm.MatchGame(g)
	return i >= 0
}

// Name implements GameMatcher.
func (pm *PositionMatcher) Name() string {
	return "PositionMatcher"
}

// PatternCount returns the number of target positions.
func (pm *PositionMatcher) PatternCount() int {
	return len(pm.targets)
}
