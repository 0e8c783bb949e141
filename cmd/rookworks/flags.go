// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/rookworks-go/internal/config"
)

var (
	// Position mode
	fenPosition = flag.String("fen", "", "Start position for position mode (FEN)")
	playMoves   = flag.String("moves", "", "Space-separated moves to play in position mode (SAN or coordinate)")
	showLegal   = flag.Bool("legal", false, "List the legal moves of the position")
	showBoard   = flag.Bool("board", false, "Draw the board")
	noColour    = flag.Bool("nocolor", false, "Draw the board without colours")
	uciCommands = flag.Bool("uci", false, "Print the UCI commands that would start an analysis of the position")
	depth       = flag.Int("depth", 0, "Search depth for -uci (0 = engine default)")
	moveTime    = flag.Int("movetime", 0, "Search time in ms for -uci")
	engineElo   = flag.Int("elo", 0, "Limit engine strength to this Elo for -uci")

	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	outputFormat = flag.String("format", "san", "Move notation in PGN output: san, uci")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	noFENs       = flag.Bool("nofens", false, "Leave per-ply FENs out of JSON output")
	parquetFile  = flag.String("parquet", "", "Write one row per ply to this Parquet file")
	listGames    = flag.Bool("list", false, "List a one-line summary of each distinct game")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Filtering options
	tagFile      = flag.String("t", "", "Tag criteria file for filtering")
	playerFilter = flag.String("p", "", "Filter by player name (either color)")
	whiteFilter  = flag.String("Tw", "", "Filter by White player")
	blackFilter  = flag.String("Tb", "", "Filter by Black player")
	resultFilter = flag.String("Tr", "", "Filter by result (1-0, 0-1, 1/2-1/2)")
	fenFilter    = flag.String("Tf", "", "Filter by FEN position")
	useSoundex   = flag.Bool("S", false, "Use Soundex for player name matching")

	// Move bounds
	minMoves = flag.Int("minmoves", 0, "Minimum number of moves")
	maxMoves = flag.Int("maxmoves", 0, "Maximum number of moves (0 = no limit)")

	// Ending filters
	checkmateFilter = flag.Bool("checkmate", false, "Only output games ending in checkmate")
	stalemateFilter = flag.Bool("stalemate", false, "Only output games ending in stalemate")

	// Game feature filters
	underpromotionFilter = flag.Bool("underpromotion", false, "Games with underpromotion")
	insufficientFilter   = flag.Bool("insufficient", false, "Games ending with insufficient mating material")
	materialOddsFilter   = flag.Bool("odds", false, "Games played at material odds (unequal starting material)")

	// Validation
	validateMode = flag.Bool("validate", false, "Report tag and move problems for every game")
	keepBroken   = flag.Bool("keepbroken", false, "Report games whose moves cannot be replayed")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	appendLog = flag.String("L", "", "Append diagnostics to log file")
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 every move")

	// Other options
	quiet   = flag.Bool("s", false, "Silent mode (no game count)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")

	// Performance options
	workers = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyMoveBoundsFlags(cfg)
	applyFilterFlags(cfg)
	applyEngineFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
	if *workers > 0 {
		cfg.Workers = *workers
	}
}

// applyOutputFlags configures the output format.
func applyOutputFlags(cfg *config.Config) {
	if format, ok := config.ParseMoveFormat(*outputFormat); ok {
		cfg.Output.Format = format
	}
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.IncludeFEN = !*noFENs
	cfg.Output.ParquetPath = *parquetFile
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.Colour = !*noColour
	cfg.OutputFilename = *outputFile
}

// applyMoveBoundsFlags configures move bounds.
func applyMoveBoundsFlags(cfg *config.Config) {
	if *minMoves <= 0 && *maxMoves <= 0 {
		return
	}

	cfg.Filter.CheckMoveBounds = true
	cfg.Filter.LowerMoveBound = 0
	cfg.Filter.UpperMoveBound = ^uint(0)
	if *minMoves > 0 {
		cfg.Filter.LowerMoveBound = uint(*minMoves)
	}
	if *maxMoves > 0 {
		cfg.Filter.UpperMoveBound = uint(*maxMoves)
	}
}

// applyFilterFlags configures game filter settings.
func applyFilterFlags(cfg *config.Config) {
	cfg.Filter.MatchCheckmate = *checkmateFilter
	cfg.Filter.MatchStalemate = *stalemateFilter
	cfg.Filter.KeepBrokenGames = *keepBroken
}

// applyEngineFlags configures the UCI analysis settings.
func applyEngineFlags(cfg *config.Config) {
	if *depth > 0 || *moveTime > 0 {
		cfg.Engine.Depth = *depth
		cfg.Engine.MoveTime = *moveTime
	}
	if *engineElo > 0 {
		cfg.Engine.LimitStrength = true
		cfg.Engine.Elo = *engineElo
	}
}
