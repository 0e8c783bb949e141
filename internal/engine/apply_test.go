package engine

import (
	"testing"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/testutil"
)

func TestApplyMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    string
		wantFEN string
	}{
		{
			name:    "1.e4",
			fen:     InitialFEN,
			move:    "e2e4",
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		},
		{
			name:    "1.Nf3",
			fen:     InitialFEN,
			move:    "g1f3",
			wantFEN: "rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 0 1",
		},
		{
			name:    "black reply advances fullmove",
			fen:     "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			move:    "c7c5",
			wantFEN: "rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		},
		{
			name:    "kingside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			move:    "e1g1",
			wantFEN: "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R4RK1 b kq - 0 1",
		},
		{
			name:    "queenside castle",
			fen:     "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			move:    "e8c8",
			wantFEN: "2kr3r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQ - 0 2",
		},
		{
			name:    "king step clears both rights",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "e1f1",
			wantFEN: "r3k2r/8/8/8/8/8/8/R4K1R b kq - 0 1",
		},
		{
			name:    "rook leaving home clears one right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "h1h5",
			wantFEN: "r3k2r/8/8/7R/8/8/8/R3K3 b Qkq - 0 1",
		},
		{
			name:    "rook captured on home square",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move:    "a1a8",
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:    "en passant removes passed pawn",
			fen:     "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			move:    "f5e6",
			wantFEN: "rnbqkbnr/pppp1ppp/4P3/8/8/8/PPPPP1PP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "promotion to queen",
			fen:     "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
			move:    "b7b8q",
			wantFEN: "1Q2k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name:    "black underpromotion",
			fen:     "4k3/8/8/8/8/8/6p1/4K3 b - - 0 1",
			move:    "g2g1n",
			wantFEN: "4k3/8/8/8/8/8/8/4K1n1 w - - 0 2",
		},
		{
			name:    "back rank without promotion letter keeps pawn",
			fen:     "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1",
			move:    "b7b8",
			wantFEN: "1P2k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			if !ApplyMove(board, testutil.MustParseMove(t, tt.move)) {
				t.Fatalf("ApplyMove(%s) = false, want true", tt.move)
			}
			testutil.AssertEqual(t, BoardToFEN(board), tt.wantFEN)
		})
	}
}

func TestApplyMove_EmptySource(t *testing.T) {
	board := NewInitialBoard()
	before := BoardToFEN(board)

	if ApplyMove(board, testutil.MustParseMove(t, "e4e5")) {
		t.Error("ApplyMove(empty source) = true, want false")
	}
	testutil.AssertEqual(t, BoardToFEN(board), before)
}

func TestApplyMove_CapturedLists(t *testing.T) {
	board := mustBoard(t, "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3")
	ApplyMove(board, testutil.MustParseMove(t, "f5e6"))
	ApplyMove(board, testutil.MustParseMove(t, "d7e6"))

	testutil.AssertEqual(t, board.Captured(chess.Black), []chess.Piece{chess.B(chess.Pawn)})
	testutil.AssertEqual(t, board.Captured(chess.White), []chess.Piece{chess.W(chess.Pawn)})
}

func TestApplyMove_KingCache(t *testing.T) {
	board := mustBoard(t, "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	ApplyMove(board, testutil.MustParseMove(t, "e1c1"))
	testutil.AssertEqual(t, board.WhiteKing, chess.Sq(2, 0))
	testutil.AssertEqual(t, board.Get(chess.Sq(3, 0)), chess.W(chess.Rook))
	testutil.AssertTrue(t, board.Get(chess.Sq(0, 0)).IsEmpty(), "a1 should be empty after O-O-O")
}
