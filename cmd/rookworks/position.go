// position.go - Single position mode: play moves from a FEN and describe the result
package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/rookworks-go/internal/config"
	"github.com/lgbarn/rookworks-go/internal/engine"
	"github.com/lgbarn/rookworks-go/internal/errors"
	"github.com/lgbarn/rookworks-go/internal/notation"
	"github.com/lgbarn/rookworks-go/internal/uci"
)

// positionOptions selects what position mode prints.
type positionOptions struct {
	FEN   string
	Moves string
	Board bool
	Legal bool
	UCI   bool
}

// playPosition sets up fen (the standard position when empty) and plays the
// space-separated moves, which may be SAN or coordinate text.
func playPosition(fen, moves string) (*engine.Game, error) {
	g := engine.NewGame()
	if fen != "" {
		if err := g.SetCustomPosition(fen, true); err != nil {
			return nil, err
		}
	}

	for i, token := range strings.Fields(moves) {
		move, err := notation.ToCoordinate(g.Board(), token)
		if err != nil {
			return nil, &errors.GameError{Err: err, GameNum: 1, PlyNum: i + 1, MoveText: token}
		}
		if !g.TryMove(move.String()) {
			return nil, &errors.GameError{Err: errors.ErrIllegalMove, GameNum: 1, PlyNum: i + 1, MoveText: token}
		}
	}
	return g, nil
}

// legalMovesSAN returns the legal moves of the current position in SAN,
// sorted.
func legalMovesSAN(g *engine.Game) []string {
	board := g.Board()
	legal := engine.LegalMoves(board)
	sans := make([]string, 0, len(legal))
	for _, m := range legal {
		sans = append(sans, notation.ToAlgebraic(board, m))
	}
	sort.Strings(sans)
	return sans
}

// runPosition prints the position reached by opts to w.
func runPosition(cfg *config.Config, w io.Writer, opts positionOptions) error {
	g, err := playPosition(opts.FEN, opts.Moves)
	if err != nil {
		return err
	}

	if opts.Board {
		renderBoard(w, g.Board(), cfg.Output.Colour)
	}
	fmt.Fprintf(w, "FEN: %s\n", g.FEN())
	fmt.Fprintf(w, "Status: %s\n", g.State())
	if engine.IsKingInCheck(g.Board(), g.Board().ToMove) && g.State() == engine.Playing {
		fmt.Fprintf(w, "%s is in check\n", g.Board().ToMove)
	}

	if opts.Legal {
		sans := legalMovesSAN(g)
		fmt.Fprintf(w, "Legal moves (%d): %s\n", len(sans), strings.Join(sans, " "))
	}

	if opts.UCI {
		moves := make([]string, 0, len(g.Moves()))
		for _, m := range g.Moves() {
			moves = append(moves, m.String())
		}
		fmt.Fprintln(w, "uci")
		for _, opt := range uci.SetOptionCommands(cfg.Engine) {
			fmt.Fprintln(w, opt)
		}
		fmt.Fprintln(w, "isready")
		fmt.Fprintln(w, "ucinewgame")
		fmt.Fprintln(w, uci.PositionCommand(g.History()[0], moves))
		fmt.Fprintln(w, uci.GoCommand(cfg.Engine.Depth, cfg.Engine.MoveTime))
	}
	return nil
}
