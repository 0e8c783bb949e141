package engine

import (
	"testing"

	"github.com/lgbarn/rookworks-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewBoardFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewBoardFromFEN(fen)
			}
		})
	}
}

func BenchmarkBoardToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				BoardToFEN(board)
			}
		})
	}
}

func BenchmarkFEN_RoundTrip(b *testing.B) {
	fen := benchFENs["Midgame"]
	for i := 0; i < b.N; i++ {
		board, _ := NewBoardFromFEN(fen)
		BoardToFEN(board)
	}
}

func BenchmarkApplyMove(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move string
	}{
		{"PawnMove", benchFENs["Initial"], "e2e4"},
		{"PieceMove", benchFENs["Initial"], "g1f3"},
		{"Castle", benchFENs["Castling"], "e1g1"},
		{"EnPassant", benchFENs["EnPassant"], "f5e6"},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(tc.fen)
			move, _ := chess.ParseMove(tc.move)
			state := board.SaveState()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				ApplyMove(board, move)
				board.RestoreState(state)
			}
		})
	}
}

func BenchmarkIsKingInCheck(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				IsKingInCheck(board, board.ToMove)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			board, _ := NewBoardFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(board)
			}
		})
	}
}

func BenchmarkPerft3(b *testing.B) {
	board := NewInitialBoard()
	for i := 0; i < b.N; i++ {
		Perft(board, 3)
	}
}

func BenchmarkBoardCopy(b *testing.B) {
	board, _ := NewBoardFromFEN(benchFENs["Complex"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.Copy()
	}
}
