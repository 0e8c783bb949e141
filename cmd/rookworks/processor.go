// processor.go - Game processing and output functions
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/config"
	"github.com/lgbarn/rookworks-go/internal/engine"
	"github.com/lgbarn/rookworks-go/internal/hashing"
	"github.com/lgbarn/rookworks-go/internal/matching"
	"github.com/lgbarn/rookworks-go/internal/output"
	"github.com/lgbarn/rookworks-go/internal/pgn"
	"github.com/lgbarn/rookworks-go/internal/processing"
	"github.com/lgbarn/rookworks-go/internal/replay"
)

// featureFilter holds the analysis-based filters.
type featureFilter struct {
	underpromotion bool
	insufficient   bool
	materialOdds   bool
}

func (f featureFilter) active() bool {
	return f.underpromotion || f.insufficient || f.materialOdds
}

// matches reports whether the analysis has every requested feature.
func (f featureFilter) matches(a *processing.GameAnalysis) bool {
	if f.underpromotion && !a.HasUnderpromotion {
		return false
	}
	if f.insufficient && !a.HasInsufficientMaterial {
		return false
	}
	return !f.materialOdds || a.HasMaterialOdds
}

// ProcessingContext holds all processing state.
// NOT thread-safe: results are consumed on a single goroutine.
type ProcessingContext struct {
	cfg        *config.Config
	detector   *hashing.DuplicateDetector
	gameFilter *matching.GameFilter
	features   featureFilter
	writer     output.GameWriter
	validate   bool
}

// processStats counts what happened to the games of one or more inputs.
type processStats struct {
	total      int
	output     int
	duplicates int
	broken     int
}

func (s *processStats) add(o processStats) {
	s.total += o.total
	s.output += o.output
	s.duplicates += o.duplicates
	s.broken += o.broken
}

// processInput reads all games from a reader.
func processInput(r io.Reader, name string, cfg *config.Config) []*chess.GameData {
	games, err := pgn.ReadGames(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %s: %v\n", name, err)
		return nil
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "%s: %d game(s)\n", name, len(games))
	}
	return games
}

// processGames replays games on the worker pool and writes those that pass
// every filter.
func processGames(games []*chess.GameData, name string, ctx *ProcessingContext) processStats {
	cfg := ctx.cfg
	cfg.CurrentInputFile = name
	stats := processStats{total: len(games)}

	if ctx.validate {
		for i, data := range games {
			reportValidation(cfg.LogFile, name, i+1, processing.ValidateGame(data))
		}
	}

	for _, result := range replay.ReplayAll(context.Background(), games, cfg) {
		if result.Error != nil {
			stats.broken++
			if cfg.Filter.KeepBrokenGames && !ctx.validate {
				fmt.Fprintf(cfg.LogFile, "%v\n", result.Error)
			}
			continue
		}

		out, dup := handleGame(result.Game, result.Replayed, ctx)
		stats.output += out
		stats.duplicates += dup
	}
	return stats
}

// handleGame filters, deduplicates and writes one replayed game.
// Returns (output count, duplicate count).
func handleGame(data *chess.GameData, g *engine.Game, ctx *ProcessingContext) (int, int) {
	if !ctx.gameFilter.MatchGame(data, g) {
		return 0, 0
	}

	analysis := processing.AnalyzeGame(data, g)
	if ctx.features.active() && !ctx.features.matches(analysis) {
		return 0, 0
	}

	if ctx.detector != nil && ctx.detector.CheckAndAdd(len(g.Moves()), analysis.FinalBoard) {
		return 0, 1
	}

	cfg := ctx.cfg
	if err := ctx.writer.WriteGame(data, g); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing game: %v\n", err)
		return 0, 0
	}
	if cfg.Output.ShowBoard && !cfg.Output.JSONFormat && cfg.Output.ParquetPath == "" {
		renderBoard(cfg.OutputFile, analysis.FinalBoard, cfg.Output.Colour)
		fmt.Fprintln(cfg.OutputFile)
	}
	return 1, 0
}

// reportValidation logs the problems ValidateGame found in one game.
func reportValidation(w io.Writer, name string, gameNum int, vr *processing.ValidationResult) {
	for _, msg := range vr.ParseErrors {
		fmt.Fprintf(w, "%s: game %d: %s\n", name, gameNum, msg)
	}
	if !vr.Valid {
		fmt.Fprintf(w, "%s: game %d: %s\n", name, gameNum, vr.ErrorMsg)
	}
}
