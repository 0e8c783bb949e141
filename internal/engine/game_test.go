package engine

import (
	"testing"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/testutil"
)

func TestNewGame(t *testing.T) {
	g := NewGame()

	testutil.AssertEqual(t, g.FEN(), InitialFEN)
	testutil.AssertEqual(t, g.History(), []string{InitialFEN})
	testutil.AssertEqual(t, g.Cursor(), 0)
	testutil.AssertEqual(t, g.State(), Playing)
	testutil.AssertTrue(t, g.IsLive())
	testutil.AssertTrue(t, g.IsPlayerPieceInSquare("e2"))
	testutil.AssertFalse(t, g.IsPlayerPieceInSquare("e7"))
	testutil.AssertFalse(t, g.IsPlayerPieceInSquare("e4"))
	testutil.AssertFalse(t, g.IsPlayerPieceInSquare("z9"))
}

func TestGame_TryMove(t *testing.T) {
	g := NewGame()

	testutil.AssertTrue(t, g.TryMove("e2e4"), "TryMove(e2e4)")
	testutil.AssertFalse(t, g.TryMove("e2e4"), "TryMove(e2e4) twice")
	testutil.AssertFalse(t, g.TryMove("d2d4"), "TryMove on the wrong side")
	testutil.AssertFalse(t, g.TryMove("garbage"), "TryMove(garbage)")
	testutil.AssertTrue(t, g.TryMove("e7e5"), "TryMove(e7e5)")

	testutil.AssertEqual(t, g.Cursor(), 2)
	testutil.AssertEqual(t, len(g.History()), 3)
	testutil.AssertEqual(t, g.History()[1], "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	testutil.AssertEqual(t, g.FEN(), g.History()[g.Cursor()])
	testutil.AssertEqual(t, len(g.Moves()), 2)
	testutil.AssertEqual(t, g.Moves()[1].String(), "e7e5")
}

func TestGame_FoolsMate(t *testing.T) {
	g := NewGame()
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if !g.TryMove(m) {
			t.Fatalf("TryMove(%s) = false", m)
		}
	}

	testutil.AssertTrue(t, g.IsCheckmate())
	testutil.AssertEqual(t, g.State(), BlackWon)
	testutil.AssertFalse(t, g.IsLegalMove("e1f2"))
	testutil.AssertFalse(t, g.TryMove("a2a3"), "no moves after the game is over")
}

func TestGame_PlayContinuesWithInsufficientMaterial(t *testing.T) {
	t.Run("drawn start", func(t *testing.T) {
		g := NewGame()
		testutil.AssertNoError(t, g.SetCustomPosition("8/8/8/4k3/8/8/8/4KN2 w - - 0 1", true))
		testutil.AssertEqual(t, g.State(), Tie)
		testutil.AssertTrue(t, g.IsLive())
		testutil.AssertTrue(t, g.TryMove("e1d1"), "king move in K+N vs K")
		testutil.AssertTrue(t, g.TryMove("e5d5"))
		testutil.AssertEqual(t, g.State(), Tie)
		testutil.AssertEqual(t, len(g.Moves()), 2)
	})

	t.Run("capture leaves bare kings", func(t *testing.T) {
		g := NewGame()
		testutil.AssertNoError(t, g.SetCustomPosition("8/8/8/4p3/8/5N2/8/K6k w - - 0 1", true))
		testutil.AssertEqual(t, g.State(), Playing)
		testutil.AssertTrue(t, g.TryMove("f3e5"))
		testutil.AssertEqual(t, g.State(), Tie)
		testutil.AssertTrue(t, g.TryMove("h1g1"), "reply after the draw")
		testutil.AssertEqual(t, g.FEN(), "8/8/8/4N3/8/8/8/K5k1 w - - 0 2")
	})
}

func TestGame_Review(t *testing.T) {
	g := NewGame()
	for _, m := range []string{"e2e4", "e7e5", "g1f3"} {
		if !g.TryMove(m) {
			t.Fatalf("TryMove(%s) = false", m)
		}
	}
	history := g.History()

	g.SetLoadGame()
	testutil.AssertEqual(t, g.State(), Reviewing)
	testutil.AssertEqual(t, g.Cursor(), 0)
	testutil.AssertEqual(t, g.FEN(), InitialFEN)
	testutil.AssertFalse(t, g.IsLive())
	testutil.AssertFalse(t, g.TryMove("d2d4"), "TryMove while reviewing")

	g.PreviousPosition()
	testutil.AssertEqual(t, g.Cursor(), 0, "cursor clamps at the start")

	g.NextPosition()
	g.NextPosition()
	testutil.AssertEqual(t, g.FEN(), history[2])

	g.NextPosition()
	g.NextPosition()
	testutil.AssertEqual(t, g.Cursor(), 3, "cursor clamps at the end")
	testutil.AssertEqual(t, g.FEN(), history[3])
	testutil.AssertEqual(t, g.History(), history, "review does not touch history")

	g.PreviousPosition()
	testutil.AssertEqual(t, g.FEN(), history[2])

	g.Resume()
	testutil.AssertTrue(t, g.IsLive())
	testutil.AssertTrue(t, g.TryMove("b8c6"))
}

func TestGame_NavigationWhilePlaying(t *testing.T) {
	g := NewGame()
	g.TryMove("e2e4")

	g.PreviousPosition()
	testutil.AssertFalse(t, g.IsLive(), "stepping back leaves the live end")
	testutil.AssertFalse(t, g.TryMove("d2d4"))

	g.LastPosition()
	testutil.AssertTrue(t, g.IsLive())
	testutil.AssertTrue(t, g.TryMove("e7e5"))
}

func TestGame_SetCustomPosition(t *testing.T) {
	const fen = "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 7"

	t.Run("reset starts a new history", func(t *testing.T) {
		g := NewGame()
		g.TryMove("e2e4")
		testutil.AssertNoError(t, g.SetCustomPosition(fen, true))
		testutil.AssertEqual(t, g.History(), []string{fen})
		testutil.AssertEqual(t, g.Cursor(), 0)
		testutil.AssertEqual(t, len(g.Moves()), 0)
		testutil.AssertTrue(t, g.TryMove("e8c8"))
		testutil.AssertEqual(t, g.FEN(), "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 0 8")
	})

	t.Run("without reset keeps history", func(t *testing.T) {
		g := NewGame()
		g.TryMove("e2e4")
		testutil.AssertNoError(t, g.SetCustomPosition(fen, false))
		testutil.AssertEqual(t, len(g.History()), 2)
		testutil.AssertEqual(t, g.FEN(), fen)
	})

	t.Run("invalid FEN", func(t *testing.T) {
		g := NewGame()
		testutil.AssertError(t, g.SetCustomPosition("8/8/8 w - -", true))
		testutil.AssertEqual(t, g.FEN(), InitialFEN)
	})
}

func TestGame_ResetBoard(t *testing.T) {
	g := NewGame()
	g.TryMove("e2e4")
	g.TryMove("d7d5")
	g.TryMove("e4d5")
	testutil.AssertEqual(t, g.Board().Captured(chess.Black), []chess.Piece{chess.B(chess.Pawn)})

	g.ResetBoard()
	testutil.AssertEqual(t, g.FEN(), InitialFEN)
	testutil.AssertEqual(t, g.History(), []string{InitialFEN})
	testutil.AssertEqual(t, len(g.Board().Captured(chess.Black)), 0)
}

func TestGame_ApplyMove(t *testing.T) {
	g := NewGame()

	// Raw mutation: no legality check and no history entry.
	testutil.AssertNoError(t, g.ApplyMove("e2e5"))
	testutil.AssertEqual(t, g.Board().Get(chess.Sq(4, 4)), chess.W(chess.Pawn))
	testutil.AssertEqual(t, len(g.History()), 1)

	testutil.AssertError(t, g.ApplyMove("a3a4"), "empty source")
	testutil.AssertError(t, g.ApplyMove("e2"), "malformed text")
}
