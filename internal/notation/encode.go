package notation

import (
	"strings"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// ToAlgebraic renders a legal coordinate move in standard algebraic
// notation for the position on board, with the minimal disambiguation and
// a trailing "+" or "#". The board is not modified.
func ToAlgebraic(board *chess.Board, move chess.Move) string {
	piece := board.Get(move.From)
	if piece.IsEmpty() {
		return move.String()
	}

	var sb strings.Builder
	switch {
	case chess.IsCastle(piece, move):
		if move.To.File > move.From.File {
			sb.WriteString("O-O")
		} else {
			sb.WriteString("O-O-O")
		}
	case piece.Type == chess.Pawn:
		if move.From.File != move.To.File {
			sb.WriteByte(byte('a' + move.From.File))
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
		if move.IsPromotion() && move.To.Rank == chess.PromotionRank(piece.Colour) {
			sb.WriteByte('=')
			sb.WriteByte(move.Promotion.Letter())
		}
	default:
		sb.WriteByte(piece.Type.Letter())
		sb.WriteString(disambiguation(board, piece, move))
		if !board.Get(move.To).IsEmpty() {
			sb.WriteByte('x')
		}
		sb.WriteString(move.To.String())
	}

	after := board.Copy()
	engine.ApplyMove(after, move)
	opponent := piece.Colour.Opposite()
	switch {
	case engine.IsCheckmate(after, opponent):
		sb.WriteByte('#')
	case engine.IsKingInCheck(after, opponent):
		sb.WriteByte('+')
	}
	return sb.String()
}

// disambiguation returns the source file, rank or square needed to tell
// move apart from other legal moves of the same piece type to the same square.
func disambiguation(board *chess.Board, piece chess.Piece, move chess.Move) string {
	var others []chess.Square
	for _, m := range engine.LegalMoves(board) {
		if m.To == move.To && m.From != move.From && board.Get(m.From) == piece {
			others = append(others, m.From)
		}
	}
	if len(others) == 0 {
		return ""
	}

	sameFile, sameRank := false, false
	for _, sq := range others {
		if sq.File == move.From.File {
			sameFile = true
		}
		if sq.Rank == move.From.Rank {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return string(rune('a' + move.From.File))
	case !sameRank:
		return string(rune('1' + move.From.Rank))
	default:
		return move.From.String()
	}
}
