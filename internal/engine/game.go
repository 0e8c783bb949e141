package engine

import (
	"fmt"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/errors"
)

// Game is a board together with its position history. history[0] is the
// starting position; while live, history[cursor] is the current position.
// A Game has a single owner and is not safe for concurrent use.
type Game struct {
	board   *chess.Board
	history []string
	moves   []chess.Move
	cursor  int
	state   GameState
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	g := &Game{}
	g.ResetBoard()
	return g
}

// ResetBoard sets up the standard starting position and clears the captured
// lists, the move list and the history.
func (g *Game) ResetBoard() {
	g.board = NewInitialBoard()
	g.history = []string{BoardToFEN(g.board)}
	g.moves = nil
	g.cursor = 0
	g.state = Playing
}

// SetCustomPosition replaces the position with the one described by fen.
// With isReset the history restarts from this position; otherwise the
// history is untouched, as when showing a stored snapshot.
func (g *Game) SetCustomPosition(fen string, isReset bool) error {
	board, err := NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	g.board = board
	if isReset {
		g.history = []string{BoardToFEN(board)}
		g.moves = nil
		g.cursor = 0
		g.state = Status(board)
	}
	return nil
}

// TryMove plays a coordinate move if it is legal at the live end of the
// history. It returns false, leaving the game untouched, otherwise.
func (g *Game) TryMove(moveText string) bool {
	if !g.IsLive() {
		return false
	}
	move, err := chess.ParseMove(moveText)
	if err != nil || !IsLegalMove(g.board, move) {
		return false
	}
	ApplyMove(g.board, move)
	g.history = append(g.history, BoardToFEN(g.board))
	g.moves = append(g.moves, move)
	g.cursor++
	g.state = Status(g.board)
	return true
}

// ApplyMove performs the raw board mutation for a coordinate move without
// any legality check and without touching the history.
func (g *Game) ApplyMove(moveText string) error {
	move, err := chess.ParseMove(moveText)
	if err != nil {
		return err
	}
	if !ApplyMove(g.board, move) {
		return fmt.Errorf("%s: empty source square: %w", moveText, errors.ErrInvalidMove)
	}
	return nil
}

// PreviousPosition steps the review cursor back one snapshot.
func (g *Game) PreviousPosition() {
	if g.cursor > 0 {
		g.cursor--
		g.showSnapshot()
	}
}

// NextPosition steps the review cursor forward one snapshot.
func (g *Game) NextPosition() {
	if g.cursor < len(g.history)-1 {
		g.cursor++
		g.showSnapshot()
	}
}

// SetLoadGame enters review mode at the starting position.
func (g *Game) SetLoadGame() {
	g.state = Reviewing
	g.SetInitialPosition()
}

// SetInitialPosition moves the cursor to the first snapshot.
func (g *Game) SetInitialPosition() {
	g.cursor = 0
	g.showSnapshot()
}

// LastPosition moves the cursor to the latest snapshot.
func (g *Game) LastPosition() {
	g.cursor = len(g.history) - 1
	g.showSnapshot()
}

// Resume leaves review mode and returns to the live end of the history.
func (g *Game) Resume() {
	g.LastPosition()
	g.state = Status(g.board)
}

// showSnapshot reloads the board from the snapshot under the cursor.
// Snapshots are produced by BoardToFEN and always decode.
func (g *Game) showSnapshot() {
	_ = g.SetCustomPosition(g.history[g.cursor], false)
}

// Board returns the current position. Callers must not modify it.
func (g *Game) Board() *chess.Board {
	return g.board
}

// FEN returns the FEN of the current position.
func (g *Game) FEN() string {
	return BoardToFEN(g.board)
}

// History returns a copy of the FEN snapshots, starting position first.
func (g *Game) History() []string {
	return append([]string(nil), g.history...)
}

// Moves returns the coordinate moves played since the starting position.
func (g *Game) Moves() []chess.Move {
	return append([]chess.Move(nil), g.moves...)
}

// Cursor returns the index of the displayed snapshot.
func (g *Game) Cursor() int {
	return g.cursor
}

// State returns the lifecycle state of the game.
func (g *Game) State() GameState {
	return g.state
}

// IsLive reports whether moves can be played: the game is not being
// reviewed and the cursor is at the latest snapshot. A finished game stays
// live; checkmate and stalemate leave no legal move, while a Tie from
// insufficient material does not stop play.
func (g *Game) IsLive() bool {
	return g.state != Reviewing && g.cursor == len(g.history)-1
}

// IsPlayerPieceInSquare reports whether the square holds a piece of the side
// to move.
func (g *Game) IsPlayerPieceInSquare(square string) bool {
	sq, err := chess.ParseSquare(square)
	if err != nil {
		return false
	}
	piece := g.board.Get(sq)
	return !piece.IsEmpty() && piece.Colour == g.board.ToMove
}

// IsLegalMove reports whether the coordinate move is legal in the current
// position.
func (g *Game) IsLegalMove(moveText string) bool {
	move, err := chess.ParseMove(moveText)
	if err != nil {
		return false
	}
	return IsLegalMove(g.board, move)
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return IsCheckmate(g.board, g.board.ToMove)
}

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return IsStalemate(g.board, g.board.ToMove)
}
