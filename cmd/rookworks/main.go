// rookworks replays, checks, filters and converts chess games, and describes
// single positions.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/rookworks-go/internal/config"
	"github.com/lgbarn/rookworks-go/internal/hashing"
	"github.com/lgbarn/rookworks-go/internal/library"
	"github.com/lgbarn/rookworks-go/internal/matching"
	"github.com/lgbarn/rookworks-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("rookworks version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *fenPosition != "" || *playMoves != "" {
		opts := positionOptions{
			FEN:   *fenPosition,
			Moves: *playMoves,
			Board: *showBoard,
			Legal: *showLegal,
			UCI:   *uciCommands,
		}
		if err := runPosition(cfg, cfg.OutputFile, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *listGames {
		if err := listAllInputs(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx := &ProcessingContext{
		cfg:        cfg,
		detector:   setupDuplicateDetector(),
		gameFilter: setupGameFilter(cfg),
		features: featureFilter{
			underpromotion: *underpromotionFilter,
			insufficient:   *insufficientFilter,
			materialOdds:   *materialOddsFilter,
		},
		writer:   output.NewGameWriter(cfg),
		validate: *validateMode,
	}

	stats := processAllInputs(ctx)

	if err := ctx.writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	// Report statistics
	if cfg.Verbosity > 0 {
		reportStatistics(os.Stderr, ctx.detector, stats)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(1)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(*outputFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(*outputFile)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// setupDuplicateDetector creates the duplicate detector when -D is given.
func setupDuplicateDetector() *hashing.DuplicateDetector {
	if !*suppressDuplicates {
		return nil
	}
	return hashing.NewDuplicateDetector(true, *duplicateCapacity)
}

// setupGameFilter creates and configures the game filter with all criteria.
func setupGameFilter(cfg *config.Config) *matching.GameFilter {
	filter := matching.NewGameFilter(cfg.Filter)
	filter.SetUseSoundex(*useSoundex)

	// Load tag criteria file if specified
	if *tagFile != "" {
		if err := filter.LoadTagFile(*tagFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tag file %s: %v\n", *tagFile, err)
			os.Exit(1)
		}
	}

	// Add individual filter criteria
	if *playerFilter != "" {
		filter.AddPlayerFilter(*playerFilter)
	}
	if *whiteFilter != "" {
		filter.AddWhiteFilter(*whiteFilter)
	}
	if *blackFilter != "" {
		filter.AddBlackFilter(*blackFilter)
	}
	if *resultFilter != "" {
		filter.AddResultFilter(*resultFilter)
	}
	if *fenFilter != "" {
		if err := filter.AddFENFilter(*fenFilter); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing FEN filter: %v\n", err)
			os.Exit(1)
		}
	}

	return filter
}

// forEachInput calls fn with each input file named on the command line, or
// with stdin when there are none.
func forEachInput(fn func(r io.Reader, name string)) {
	args := flag.Args()
	if len(args) == 0 {
		fn(os.Stdin, "stdin")
		return
	}

	for _, filename := range args {
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening file %s: %v\n", filename, err)
			continue
		}
		fn(file, filename)
		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

// processAllInputs processes all input files or stdin.
func processAllInputs(ctx *ProcessingContext) processStats {
	var stats processStats
	forEachInput(func(r io.Reader, name string) {
		games := processInput(r, name, ctx.cfg)
		stats.add(processGames(games, name, ctx))
	})
	return stats
}

// listAllInputs loads every input into a library and prints one summary
// line per distinct game.
func listAllInputs(cfg *config.Config) error {
	lib := library.New()
	forEachInput(func(r io.Reader, name string) {
		if _, err := lib.LoadPGN(r); err != nil && cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "%s: %v\n", name, err)
		}
	})

	for _, entry := range lib.List() {
		summary, err := lib.Summary(entry.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(cfg.OutputFile, "%s  %s\n", entry.ID, summary)
	}
	return nil
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, detector *hashing.DuplicateDetector, stats processStats) {
	if detector != nil {
		fmt.Fprintf(w, "%d game(s) output, %d duplicate(s) out of %d.\n", stats.output, stats.duplicates, stats.total)
	} else {
		fmt.Fprintf(w, "%d game(s) matched out of %d.\n", stats.output, stats.total)
	}
	if stats.broken > 0 {
		fmt.Fprintf(w, "%d game(s) could not be replayed.\n", stats.broken)
	}
}

// usage prints the command-line help.
func usage() {
	fmt.Fprintf(os.Stderr, "Usage: rookworks [options] [input-files...]\n")
	fmt.Fprintf(os.Stderr, "       rookworks -fen FEN [-moves \"e4 e5 ...\"] [-board] [-legal] [-uci]\n\n")
	fmt.Fprintf(os.Stderr, "Replays chess games in PGN format, filters them and writes them as PGN, JSON or Parquet.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove formats (-format):\n")
	fmt.Fprintf(os.Stderr, "  san    Standard Algebraic Notation (default)\n")
	fmt.Fprintf(os.Stderr, "  uci    Coordinate notation (e2e4, e7e8q)\n")
}
