package hashing

import (
	"testing"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q): %v", fen, err)
	}
	return board
}

func TestZobristHashConsistency(t *testing.T) {
	board1 := chess.NewBoard()
	board1.SetupInitialPosition()
	board2 := engine.NewInitialBoard()

	if h1, h2 := GenerateZobristHash(board1), GenerateZobristHash(board2); h1 != h2 {
		t.Errorf("identical boards produced different hashes: %x != %x", h1, h2)
	}
	if w1, w2 := WeakHash(board1), WeakHash(board2); w1 != w2 {
		t.Errorf("identical boards produced different weak hashes: %x != %x", w1, w2)
	}
}

func TestZobristHashDistinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"piece moved", engine.InitialFEN, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1"},
		{"side to move", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", "4k3/8/8/8/8/8/8/4K3 b - - 0 1"},
		{"castling rights", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "4k3/8/8/3pP3/8/8/8/4K3 w - - 0 1"},
		{"piece colour", "4k3/8/8/8/8/8/8/N3K3 w - - 0 1", "4k3/8/8/8/8/8/8/n3K3 w - - 0 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if GenerateZobristHash(mustBoard(t, tt.a)) == GenerateZobristHash(mustBoard(t, tt.b)) {
				t.Error("different positions produced the same hash")
			}
		})
	}
}

func TestZobristHashTransposition(t *testing.T) {
	a := engine.NewInitialBoard()
	for _, m := range []string{"g1f3", "g8f6", "b1c3"} {
		move, _ := chess.ParseMove(m)
		engine.ApplyMove(a, move)
	}
	b := engine.NewInitialBoard()
	for _, m := range []string{"b1c3", "g8f6", "g1f3"} {
		move, _ := chess.ParseMove(m)
		engine.ApplyMove(b, move)
	}
	if GenerateZobristHash(a) != GenerateZobristHash(b) {
		t.Error("transposed move orders produced different hashes")
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	board := engine.NewInitialBoard()

	if detector.CheckAndAdd(0, board) {
		t.Error("first game was marked as duplicate")
	}
	if !detector.CheckAndAdd(0, board) {
		t.Error("duplicate game was not detected")
	}
	if !detector.CheckAndAdd(4, board) {
		t.Error("inexact detector should ignore ply count")
	}
	if detector.DuplicateCount() != 2 {
		t.Errorf("DuplicateCount() = %d, want 2", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d, want 1", detector.UniqueCount())
	}
	if detector.CheckAndAdd(0, nil) {
		t.Error("nil board reported as duplicate")
	}

	detector.Reset()
	if detector.UniqueCount() != 0 || detector.DuplicateCount() != 0 {
		t.Error("Reset did not clear the detector")
	}
}

func TestDuplicateDetector_ExactMatch(t *testing.T) {
	detector := NewDuplicateDetector(true, 0)
	board := engine.NewInitialBoard()

	detector.CheckAndAdd(4, board)
	if detector.CheckAndAdd(8, board) {
		t.Error("exact detector matched different ply counts")
	}
	if !detector.CheckAndAdd(8, board) {
		t.Error("exact detector missed equal ply counts")
	}
}

func TestDuplicateDetector_Capacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 1)
	detector.CheckAndAdd(0, engine.NewInitialBoard())
	if !detector.IsFull() {
		t.Fatal("detector with capacity 1 should be full")
	}

	other := mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if detector.CheckAndAdd(0, other) {
		t.Error("unseen game reported as duplicate")
	}
	if detector.CheckAndAdd(0, other) {
		t.Error("game stored beyond capacity")
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d, want 1", detector.UniqueCount())
	}
}
