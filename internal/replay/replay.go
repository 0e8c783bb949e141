// Package replay drives a parsed game's algebraic move list through the
// engine, producing a reviewable engine.Game or an error that names the
// failing move.
package replay

import (
	"context"
	"fmt"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/config"
	"github.com/lgbarn/rookworks-go/internal/engine"
	"github.com/lgbarn/rookworks-go/internal/errors"
	"github.com/lgbarn/rookworks-go/internal/notation"
	"github.com/lgbarn/rookworks-go/internal/worker"
)

// Replay plays every move of data from its starting position (the FEN tag
// when present, else the standard position). On success the game is left
// in review mode at the starting position. On failure the board is reset
// to the initial position and a *errors.GameError is returned: a partially
// replayed game is never handed back.
func Replay(data *chess.GameData, cfg *config.Config) (*engine.Game, error) {
	return replay(data, cfg, 1)
}

// replay is Replay for the gameNum-th game of the input.
func replay(data *chess.GameData, cfg *config.Config, gameNum int) (*engine.Game, error) {
	r := &run{game: engine.NewGame(), cfg: cfg, gameNum: gameNum}
	g := r.game

	if fen := data.FEN(); fen != "" {
		if err := g.SetCustomPosition(fen, true); err != nil {
			return r.abort(0, "", err)
		}
	}

	for i, token := range data.Moves {
		move, err := notation.ToCoordinate(g.Board(), token)
		if err != nil {
			return r.abort(i+1, token, err)
		}
		label := plyLabel(g.Board().Ply)
		san := notation.ToAlgebraic(g.Board(), move)
		if !g.TryMove(move.String()) {
			return r.abort(i+1, token, errors.ErrIllegalMove)
		}
		if cfg != nil && cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "%s %s (%s)\n", label, san, move)
		}
	}

	if cfg != nil && cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "%s - %s: %d plies, %s\n",
			data.White(), data.Black(), len(data.Moves), g.State())
	}
	g.SetLoadGame()
	return g, nil
}

// run is the state of one replay.
type run struct {
	game    *engine.Game
	cfg     *config.Config
	gameNum int
}

// abort resets the board and builds the error for a failed replay.
func (r *run) abort(ply int, token string, err error) (*engine.Game, error) {
	r.game.ResetBoard()
	gerr := &errors.GameError{
		Err:      err,
		GameNum:  r.gameNum,
		PlyNum:   ply,
		MoveText: token,
	}
	if r.cfg != nil {
		gerr.File = r.cfg.CurrentInputFile
		if r.cfg.Verbosity > 1 {
			fmt.Fprintf(r.cfg.LogFile, "%v\n", gerr)
		}
	}
	return nil, gerr
}

// plyLabel returns the move number prefix for a move played at ply,
// e.g. "1." or "1...".
func plyLabel(ply int) string {
	if ply%2 == 0 {
		return fmt.Sprintf("%d.", ply/2+1)
	}
	return fmt.Sprintf("%d...", ply/2+1)
}

// ReplayAll replays every game on cfg.Workers goroutines. The results are in
// input order; each carries either the replayed game or its error.
func ReplayAll(ctx context.Context, games []*chess.GameData, cfg *config.Config) []worker.ProcessResult {
	workers := 1
	if cfg != nil && cfg.Workers > 1 {
		workers = cfg.Workers
	}
	return worker.Run(ctx, games, workers, func(_ context.Context, item worker.WorkItem) worker.ProcessResult {
		g, err := replay(item.Game, cfg, item.Index+1)
		return worker.ProcessResult{Game: item.Game, Index: item.Index, Replayed: g, Error: err}
	})
}
