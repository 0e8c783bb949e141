package engine

import "github.com/lgbarn/rookworks-go/internal/chess"

// IsCheckmate returns true if the colour is in check and has no move that
// resolves it.
func IsCheckmate(board *chess.Board, colour chess.Colour) bool {
	return IsKingInCheck(board, colour) && !hasLegalMove(board, colour)
}

// IsStalemate returns true if the colour is not in check but has no legal move.
func IsStalemate(board *chess.Board, colour chess.Colour) bool {
	return !IsKingInCheck(board, colour) && !hasLegalMove(board, colour)
}

// GameState is the lifecycle state of a game.
type GameState int

const (
	Playing GameState = iota
	WhiteWon
	BlackWon
	Tie
	Reviewing
)

// String returns the name of the state.
func (s GameState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case WhiteWon:
		return "WhiteWon"
	case BlackWon:
		return "BlackWon"
	case Tie:
		return "Tie"
	case Reviewing:
		return "Reviewing"
	default:
		return "Unknown"
	}
}

// Result returns the PGN result token for the state.
func (s GameState) Result() string {
	switch s {
	case WhiteWon:
		return chess.WhiteWinResult
	case BlackWon:
		return chess.BlackWinResult
	case Tie:
		return chess.DrawResult
	default:
		return chess.UnknownResult
	}
}

// Status evaluates the position for the side to move: checkmate ends the
// game for the other side, stalemate and insufficient material are ties.
func Status(board *chess.Board) GameState {
	colour := board.ToMove
	if hasLegalMove(board, colour) {
		if HasInsufficientMaterial(board) {
			return Tie
		}
		return Playing
	}
	if IsKingInCheck(board, colour) {
		if colour == chess.White {
			return BlackWon
		}
		return WhiteWon
	}
	return Tie
}
