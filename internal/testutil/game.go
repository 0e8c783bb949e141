package testutil

import (
	"testing"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/pgn"
)

// ParseTestGame parses a PGN string and returns the first game, or nil if
// no games are found.
func ParseTestGame(text string) *chess.GameData {
	if games := ParseTestGames(text); len(games) > 0 {
		return games[0]
	}
	return nil
}

// ParseTestGames parses a PGN string and returns all games found.
func ParseTestGames(text string) []*chess.GameData {
	return pgn.ParseGames(text)
}

// MustParseGame parses a PGN string and returns the first game.
// It calls t.Fatal if no games are found.
func MustParseGame(t *testing.T, text string) *chess.GameData {
	t.Helper()
	game := ParseTestGame(text)
	if game == nil {
		t.Fatalf("failed to parse test game:\n%s", text)
	}
	return game
}

// MustParseGames parses a PGN string and returns all games found.
// It calls t.Fatal if no games are found.
func MustParseGames(t *testing.T, text string) []*chess.GameData {
	t.Helper()
	games := ParseTestGames(text)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from PGN:\n%s", text)
	}
	return games
}

// MustParseMove parses a coordinate move such as "e2e4", calling t.Fatal
// on malformed text.
func MustParseMove(t *testing.T, text string) chess.Move {
	t.Helper()
	move, err := chess.ParseMove(text)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", text, err)
	}
	return move
}

// MustParseSquare parses an algebraic square such as "e4", calling t.Fatal
// on malformed text.
func MustParseSquare(t *testing.T, text string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(text)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", text, err)
	}
	return sq
}
