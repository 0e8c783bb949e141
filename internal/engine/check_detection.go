package engine

import "github.com/lgbarn/rookworks-go/internal/chess"

// IsKingInCheck returns true if the given colour's king is attacked.
// A board without a king of that colour is never in check.
func IsKingInCheck(board *chess.Board, colour chess.Colour) bool {
	kingSq, ok := findKing(board, colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, kingSq, colour.Opposite())
}

// findKing returns the king square of the colour, trusting the board's
// cache when it is consistent with the grid.
func findKing(board *chess.Board, colour chess.Colour) (chess.Square, bool) {
	king := chess.Piece{Type: chess.King, Colour: colour}
	if sq := board.KingSquare(colour); board.Get(sq) == king {
		return sq, true
	}
	var found chess.Square
	ok := false
	forEachPiece(board, colour, func(sq chess.Square, p chess.Piece) bool {
		if p.Type == chess.King {
			found, ok = sq, true
			return false
		}
		return true
	})
	return found, ok
}

// IsSquareAttacked returns true if any piece of byColour could move to sq,
// with castling disabled. Pawns attack their two capture diagonals whether
// or not those squares are occupied; their forward pushes never attack.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	attacked := false
	forEachPiece(board, byColour, func(from chess.Square, piece chess.Piece) bool {
		if piece.Type == chess.Pawn {
			dir := chess.ColourOffset(byColour)
			attacked = sq == from.Offset(-1, dir) || sq == from.Offset(1, dir)
		} else {
			attacked = containsSquare(PseudoLegalMoves(board, from, false), sq)
		}
		return !attacked
	})
	return attacked
}
