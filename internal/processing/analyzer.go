// Package processing provides game analysis and validation for replayed games.
package processing

import (
	stderrors "errors"
	"fmt"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
	"github.com/lgbarn/rookworks-go/internal/errors"
	"github.com/lgbarn/rookworks-go/internal/hashing"
	"github.com/lgbarn/rookworks-go/internal/replay"
)

// GameAnalysis holds features found while walking a replayed game.
type GameAnalysis struct {
	FinalBoard *chess.Board
	Status     engine.GameState
	Positions  []uint64 // Zobrist hash of every position, starting position first
	Captures   int

	HasUnderpromotion       bool
	HasInsufficientMaterial bool
	HasMaterialOdds         bool
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid       bool
	ErrorPly    int
	ErrorMsg    string
	ParseErrors []string
}

// AnalyzeGame walks the moves of a replayed game from its first position.
func AnalyzeGame(data *chess.GameData, g *engine.Game) *GameAnalysis {
	board, err := engine.NewBoardFromFEN(g.History()[0])
	if err != nil {
		board = engine.NewInitialBoard()
	}
	analysis := &GameAnalysis{
		HasMaterialOdds: engine.CheckMaterialOdds(data),
		Positions:       []uint64{hashing.GenerateZobristHash(board)},
	}

	for _, move := range g.Moves() {
		if !engine.ApplyMove(board, move) {
			break
		}
		if move.IsPromotion() && move.Promotion != chess.Queen {
			analysis.HasUnderpromotion = true
		}
		analysis.Positions = append(analysis.Positions, hashing.GenerateZobristHash(board))
	}

	analysis.Captures = len(board.Captured(chess.White)) + len(board.Captured(chess.Black))
	analysis.HasInsufficientMaterial = engine.HasInsufficientMaterial(board)
	analysis.Status = engine.Status(board)
	analysis.FinalBoard = board
	return analysis
}

// ValidateGame checks the tag roster and the result, then replays the
// moves. Tag problems are reported but do not make the game invalid.
func ValidateGame(data *chess.GameData) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for _, tag := range chess.SevenTagRoster {
		if data.Tag(tag) == "" {
			result.ParseErrors = append(result.ParseErrors, fmt.Sprintf("missing required tag: %s", tag))
		}
	}
	if r := data.Result(); r != "" && !isValidResult(r) {
		result.ParseErrors = append(result.ParseErrors, fmt.Sprintf("invalid result: %s", r))
	}

	if _, err := replay.Replay(data, nil); err != nil {
		result.Valid = false
		result.ErrorMsg = err.Error()
		var gerr *errors.GameError
		if stderrors.As(err, &gerr) {
			result.ErrorPly = gerr.PlyNum
			result.ErrorMsg = fmt.Sprintf("ply %d, move %q: %v", gerr.PlyNum, gerr.MoveText, gerr.Err)
		}
	}
	return result
}

// isValidResult checks if a result string is a valid PGN result.
func isValidResult(result string) bool {
	switch result {
	case chess.WhiteWinResult, chess.BlackWinResult, chess.DrawResult, chess.UnknownResult:
		return true
	default:
		return false
	}
}
