package output

import (
	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/config"
	"github.com/lgbarn/rookworks-go/internal/engine"
	"github.com/lgbarn/rookworks-go/internal/notation"
)

// Ply is one played move with the position it produced.
type Ply struct {
	MoveNumber int
	Colour     chess.Colour
	Move       chess.Move
	SAN        string
	Piece      chess.PieceType
	Captured   chess.PieceType
	FEN        string // position after the move
}

// walkPlies replays the moves of g from its first position. It returns the
// plies and the final board.
func walkPlies(g *engine.Game) ([]Ply, *chess.Board) {
	history := g.History()
	board, err := engine.NewBoardFromFEN(history[0])
	if err != nil {
		board = engine.NewInitialBoard()
	}

	moves := g.Moves()
	plies := make([]Ply, 0, len(moves))
	for _, move := range moves {
		piece := board.Get(move.From)
		p := Ply{
			MoveNumber: board.Ply/2 + 1,
			Colour:     board.ToMove,
			Move:       move,
			SAN:        notation.ToAlgebraic(board, move),
			Piece:      piece.Type,
			Captured:   capturedType(board, piece, move),
		}
		engine.ApplyMove(board, move)
		p.FEN = engine.BoardToFEN(board)
		plies = append(plies, p)
	}
	return plies, board
}

// capturedType returns the type of the piece the move removes, if any.
func capturedType(board *chess.Board, piece chess.Piece, move chess.Move) chess.PieceType {
	if target := board.Get(move.To); !target.IsEmpty() {
		return target.Type
	}
	if piece.Type == chess.Pawn && move.From.File != move.To.File {
		return chess.Pawn
	}
	return chess.NoPieceType
}

// formatMove renders a ply in the requested notation.
func formatMove(p Ply, format config.MoveFormat) string {
	if format == config.UCI {
		return p.Move.String()
	}
	return p.SAN
}
