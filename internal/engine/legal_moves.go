package engine

import "github.com/lgbarn/rookworks-go/internal/chess"

// promotionPieces lists the piece types a pawn may promote to.
var promotionPieces = []chess.PieceType{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// withTemporaryMove applies the move, runs fn against the resulting
// position, and restores the board exactly on every exit path.
func withTemporaryMove(board *chess.Board, move chess.Move, fn func()) {
	state := board.SaveState()
	defer board.RestoreState(state)
	ApplyMove(board, move)
	fn()
}

// leavesKingSafe simulates the move and reports whether the mover's king
// is out of check afterwards.
func leavesKingSafe(board *chess.Board, move chess.Move) bool {
	colour := board.Get(move.From).Colour
	safe := false
	withTemporaryMove(board, move, func() {
		safe = !IsKingInCheck(board, colour)
	})
	return safe
}

// IsLegalMove returns true if the source holds a piece of the side to move,
// the destination is among its pseudo-legal moves, and playing it does not
// leave the mover's king in check. The board is not modified.
func IsLegalMove(board *chess.Board, move chess.Move) bool {
	piece := board.Get(move.From)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return false
	}
	if !containsSquare(PseudoLegalMoves(board, move.From, true), move.To) {
		return false
	}
	return leavesKingSafe(board, move)
}

// LegalMoves returns every legal move for the side to move. Pawn moves to
// the last rank are expanded into one move per promotion piece.
func LegalMoves(board *chess.Board) []chess.Move {
	return legalMovesFor(board, board.ToMove)
}

func legalMovesFor(board *chess.Board, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	forEachPiece(board, colour, func(from chess.Square, piece chess.Piece) bool {
		for _, to := range PseudoLegalMoves(board, from, true) {
			move := chess.NewMove(from, to)
			if !leavesKingSafe(board, move) {
				continue
			}
			if piece.Type == chess.Pawn && to.Rank == chess.PromotionRank(colour) {
				for _, promo := range promotionPieces {
					move.Promotion = promo
					moves = append(moves, move)
				}
				continue
			}
			moves = append(moves, move)
		}
		return true
	})
	return moves
}

// hasLegalMove returns true if any piece of the colour has a move that
// survives the check simulation.
func hasLegalMove(board *chess.Board, colour chess.Colour) bool {
	found := false
	forEachPiece(board, colour, func(from chess.Square, _ chess.Piece) bool {
		for _, to := range PseudoLegalMoves(board, from, true) {
			if leavesKingSafe(board, chess.NewMove(from, to)) {
				found = true
				return false
			}
		}
		return true
	})
	return found
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(board *chess.Board, depth int) int {
	if depth == 0 {
		return 1
	}
	moves := LegalMoves(board)
	if depth == 1 {
		return len(moves)
	}
	nodes := 0
	for _, move := range moves {
		withTemporaryMove(board, move, func() {
			nodes += Perft(board, depth-1)
		})
	}
	return nodes
}
