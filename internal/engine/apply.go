package engine

import (
	"github.com/lgbarn/rookworks-go/internal/chess"
)

// ApplyMove applies a coordinate move to the board and updates the board
// state. No legality checks are made. Returns false, leaving the board
// untouched, only if the source square is empty.
func ApplyMove(board *chess.Board, move chess.Move) bool {
	piece := board.Get(move.From)
	if piece.IsEmpty() {
		return false
	}

	switch {
	case chess.IsCastle(piece, move):
		applyCastle(board, move)
	case piece.Type == chess.Pawn:
		applyPawnMove(board, piece, move)
	default:
		applyPieceMove(board, piece, move)
	}

	updateCastlingRights(board, piece, move)

	if piece.Type == chess.King {
		board.SetKingSquare(piece.Colour, move.To)
	}
	board.Ply++
	board.ToMove = piece.Colour.Opposite()

	return true
}

// applyCastle moves the king two files and the rook to the square it crossed.
func applyCastle(board *chess.Board, move chess.Move) {
	king := board.Get(move.From)
	board.Set(move.From, chess.NoPiece)
	board.Set(move.To, king)

	rookFrom, rookTo := chess.CastleRookSquares(move)
	rook := board.Get(rookFrom)
	board.Set(rookFrom, chess.NoPiece)
	board.Set(rookTo, rook)

	board.EnPassant = false
}

// applyPawnMove applies a pawn move, including en passant capture, the
// double-step target square and promotion.
func applyPawnMove(board *chess.Board, pawn chess.Piece, move chess.Move) {
	captured := board.Get(move.To)

	// En passant: diagonal onto the empty target square removes the pawn
	// that passed it.
	if board.EnPassant && move.To == board.EPSquare && captured.IsEmpty() && move.From.File != move.To.File {
		passed := chess.Sq(move.To.File, move.From.Rank)
		captured = board.Get(passed)
		board.Set(passed, chess.NoPiece)
	}
	board.AddCaptured(captured)

	board.Set(move.From, chess.NoPiece)
	if move.IsPromotion() && move.To.Rank == chess.PromotionRank(pawn.Colour) {
		board.Set(move.To, chess.Piece{Type: move.Promotion, Colour: pawn.Colour})
	} else {
		board.Set(move.To, pawn)
	}

	board.EnPassant = false
	if d := move.To.Rank - move.From.Rank; d == 2 || d == -2 {
		board.EnPassant = true
		board.EPSquare = chess.Sq(move.From.File, (move.From.Rank+move.To.Rank)/2)
	}
}

// applyPieceMove applies a non-pawn move, recording any capture.
func applyPieceMove(board *chess.Board, piece chess.Piece, move chess.Move) {
	board.AddCaptured(board.Get(move.To))
	board.Set(move.From, chess.NoPiece)
	board.Set(move.To, piece)
	board.EnPassant = false
}

// updateCastlingRights removes rights when a king moves, a rook leaves its
// home square, or anything lands on a rook home square.
func updateCastlingRights(board *chess.Board, piece chess.Piece, move chess.Move) {
	if piece.Type == chess.King {
		board.Castling.ClearColour(piece.Colour)
	}
	board.Castling.ClearRookSquare(move.From)
	board.Castling.ClearRookSquare(move.To)
}
