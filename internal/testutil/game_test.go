package testutil

import (
	"testing"

	"github.com/lgbarn/rookworks-go/internal/chess"
)

func TestParseTestGame(t *testing.T) {
	tests := []struct {
		name      string
		pgn       string
		wantNil   bool
		wantMoves []string
		wantTags  map[string]string
	}{
		{
			name: "tags and moves",
			pgn: `[Event "Test"]
[White "Player1"]
[Black "Player2"]
[Result "1-0"]

1. e4 e5 2. Nf3 1-0`,
			wantMoves: []string{"e4", "e5", "Nf3"},
			wantTags:  map[string]string{chess.EventTag: "Test", chess.WhiteTag: "Player1", chess.ResultTag: "1-0"},
		},
		{
			name:    "empty",
			pgn:     "",
			wantNil: true,
		},
		{
			name:    "whitespace only",
			pgn:     "   \n\t  ",
			wantNil: true,
		},
		{
			name:      "castling and check",
			pgn:       "1. e4 e5 2. Nf3 Nc6 3. Bc4 Bc5 4. O-O Bxf2+ *",
			wantMoves: []string{"e4", "e5", "Nf3", "Nc6", "Bc4", "Bc5", "O-O", "Bxf2+"},
		},
		{
			name:      "variations and comments dropped",
			pgn:       "1. e4 {Best by test} e5 (1... c5 2. Nf3) 2. Nf3 $1 *",
			wantMoves: []string{"e4", "e5", "Nf3"},
		},
		{
			name: "set-up position",
			pgn: `[SetUp "1"]
[FEN "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"]

1. e4 *`,
			wantMoves: []string{"e4"},
			wantTags:  map[string]string{chess.FENTag: "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := ParseTestGame(tt.pgn)
			if tt.wantNil {
				AssertNil(t, game)
				return
			}
			if game == nil {
				t.Fatal("ParseTestGame() = nil, want game")
			}

			AssertEqual(t, game.Moves, tt.wantMoves)
			AssertEqual(t, game.PlyCount(), len(tt.wantMoves))
			for tag, want := range tt.wantTags {
				AssertEqual(t, game.Tag(tag), want, "tag %s", tag)
			}
		})
	}
}

func TestParseTestGames(t *testing.T) {
	two := `[Event "Test1"]
[White "A"]

1. e4 *

[Event "Test2"]
[White "C"]

1. d4 *`

	AssertEqual(t, len(ParseTestGames("")), 0)
	AssertEqual(t, len(ParseTestGames("1. e4 *")), 1)

	games := MustParseGames(t, two)
	AssertEqual(t, len(games), 2)
	AssertEqual(t, games[1].Tag(chess.EventTag), "Test2")
	AssertEqual(t, games[1].Moves, []string{"d4"})
}

func TestMustParseGame(t *testing.T) {
	game := MustParseGame(t, "[White \"A\"]\n\n1. e4 e5 *")
	AssertEqual(t, game.White(), "A")
}

func TestMustParseMoveAndSquare(t *testing.T) {
	move := MustParseMove(t, "e7e8q")
	AssertEqual(t, move.String(), "e7e8q")
	AssertEqual(t, move.Promotion, chess.Queen)
	AssertEqual(t, MustParseSquare(t, "h8"), chess.Square{File: 7, Rank: 7})
}
