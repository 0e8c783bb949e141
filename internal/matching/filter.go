package matching

import (
	"bufio"
	"os"
	"strings"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/config"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// EndingMatcher selects games by length and by how the final position
// stands, as set in a FilterConfig.
type EndingMatcher struct {
	cfg *config.FilterConfig
}

// NewEndingMatcher creates an ending matcher for cfg.
func NewEndingMatcher(cfg *config.FilterConfig) *EndingMatcher {
	return &EndingMatcher{cfg: cfg}
}

// Match implements GameMatcher.
func (em *EndingMatcher) Match(_ *chess.GameData, g *engine.Game) bool {
	if g == nil {
		return !em.active()
	}
	if !em.cfg.MatchesLength(len(g.Moves())) {
		return false
	}
	if !em.cfg.MatchCheckmate && !em.cfg.MatchStalemate {
		return true
	}

	history := g.History()
	final, err := engine.NewBoardFromFEN(history[len(history)-1])
	if err != nil {
		return false
	}
	if em.cfg.MatchCheckmate && engine.IsCheckmate(final, final.ToMove) {
		return true
	}
	return em.cfg.MatchStalemate && engine.IsStalemate(final, final.ToMove)
}

// Name implements GameMatcher.
func (em *EndingMatcher) Name() string {
	return "EndingMatcher"
}

func (em *EndingMatcher) active() bool {
	return em.cfg.CheckMoveBounds || em.cfg.MatchCheckmate || em.cfg.MatchStalemate
}

// GameFilter combines tag, position and ending criteria. All criteria that
// are set must match.
type GameFilter struct {
	TagMatcher      *TagMatcher
	PositionMatcher *PositionMatcher
	EndingMatcher   *EndingMatcher
}

// NewGameFilter creates a filter with no criteria, using cfg for the
// ending criteria.
func NewGameFilter(cfg *config.FilterConfig) *GameFilter {
	if cfg == nil {
		cfg = config.NewFilterConfig()
	}
	return &GameFilter{
		TagMatcher:      NewTagMatcher(),
		PositionMatcher: NewPositionMatcher(),
		EndingMatcher:   NewEndingMatcher(cfg),
	}
}

// LoadTagFile loads criteria from a file, one per line:
//
//	TagName "value"
//	TagName >= "value"
//	FEN "fen"
//
// Lines that do not parse are skipped.
func (gf *GameFilter) LoadTagFile(filename string) error {
	file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if rest, ok := strings.CutPrefix(line, chess.FENTag+" "); ok {
			_ = gf.PositionMatcher.AddFEN(strings.Trim(strings.TrimSpace(rest), `"`), "")
			continue
		}
		_ = gf.TagMatcher.ParseCriterion(line)
	}
	return scanner.Err()
}

// AddPlayerFilter adds a filter for player name (matches White or Black).
func (gf *GameFilter) AddPlayerFilter(name string) {
	gf.TagMatcher.AddPlayerCriterion(name)
}

// AddWhiteFilter adds a filter for White player.
func (gf *GameFilter) AddWhiteFilter(name string) {
	_ = gf.TagMatcher.AddCriterion(chess.WhiteTag, name, OpContains)
}

// AddBlackFilter adds a filter for Black player.
func (gf *GameFilter) AddBlackFilter(name string) {
	_ = gf.TagMatcher.AddCriterion(chess.BlackTag, name, OpContains)
}

// AddResultFilter adds a filter for game result.
func (gf *GameFilter) AddResultFilter(result string) {
	_ = gf.TagMatcher.AddCriterion(chess.ResultTag, result, OpEqual)
}

// AddFENFilter adds a position the game must pass through.
func (gf *GameFilter) AddFENFilter(fen string) error {
	return gf.PositionMatcher.AddFEN(fen, "")
}

// SetUseSoundex enables soundex matching for player names.
func (gf *GameFilter) SetUseSoundex(use bool) {
	gf.TagMatcher.SetUseSoundex(use)
}

// HasCriteria returns true if any filter criteria are set.
func (gf *GameFilter) HasCriteria() bool {
	return gf.TagMatcher.CriteriaCount() > 0 ||
		gf.PositionMatcher.PatternCount() > 0 ||
		gf.EndingMatcher.active()
}

// MatchGame checks if a replayed game matches the filter criteria.
func (gf *GameFilter) MatchGame(data *chess.GameData, g *engine.Game) bool {
	if !gf.TagMatcher.MatchGame(data) {
		return false
	}
	if gf.PositionMatcher.PatternCount() > 0 && !gf.PositionMatcher.Match(data, g) {
		return false
	}
	return gf.EndingMatcher.Match(data, g)
}

// Match implements GameMatcher.
func (gf *GameFilter) Match(data *chess.GameData, g *engine.Game) bool {
	return gf.MatchGame(data, g)
}

// Name implements GameMatcher.
func (gf *GameFilter) Name() string {
	return "GameFilter"
}
