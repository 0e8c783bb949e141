package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/config"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// GameWriter is the interface for writing replayed games to output.
// Different implementations handle different output formats (PGN, JSON, parquet).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(data *chess.GameData, g *engine.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer cfg asks for: parquet when a path is
// set, else JSON or PGN on cfg.OutputFile.
func NewGameWriter(cfg *config.Config) GameWriter {
	switch {
	case cfg.Output.ParquetPath != "":
		return NewParquetWriter(cfg.Output.ParquetPath)
	case cfg.Output.JSONFormat:
		return NewJSONWriter(cfg.OutputFile, cfg)
	default:
		return NewPGNWriter(cfg.OutputFile, cfg)
	}
}

// PGNWriter writes games in PGN format.
type PGNWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewPGNWriter creates a new PGN writer.
func NewPGNWriter(w io.Writer, cfg *config.Config) *PGNWriter {
	return &PGNWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteGame writes a game in PGN format.
func (pw *PGNWriter) WriteGame(data *chess.GameData, g *engine.Game) error {
	originalOutput := pw.cfg.OutputFile
	pw.cfg.OutputFile = pw.w
	OutputGame(data, g, pw.cfg)
	pw.cfg.OutputFile = originalOutput
	return nil
}

// Flush flushes the PGN writer (no-op for PGN as it writes immediately).
func (pw *PGNWriter) Flush() error {
	return nil
}

// Close closes the PGN writer.
func (pw *PGNWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w      io.Writer
	cfg    *config.Config
	games  []*JSONGame
	single bool // If true, write each game immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches games and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:     w,
		cfg:   cfg,
		games: make([]*JSONGame, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each game immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteGame buffers a game for JSON output (or writes immediately in single mode).
func (jw *JSONWriter) WriteGame(data *chess.GameData, g *engine.Game) error {
	jg := GameToJSON(data, g)
	if !jw.cfg.Output.IncludeFEN {
		stripFEN(jg)
	}
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jg)
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.games) == 0 {
		return nil
	}
	err := WriteGamesJSON(jw.w, jw.games)
	jw.games = jw.games[:0]
	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// ParquetWriter collects one row per ply and writes the file on Close.
type ParquetWriter struct {
	path  string
	rows  []PositionRow
	games int
}

// NewParquetWriter creates a writer for the parquet file at path.
func NewParquetWriter(path string) *ParquetWriter {
	return &ParquetWriter{path: path}
}

// WriteGame buffers the rows of a game.
func (pw *ParquetWriter) WriteGame(data *chess.GameData, g *engine.Game) error {
	pw.games++
	pw.rows = append(pw.rows, PositionRows(data, g, pw.games)...)
	return nil
}

// Flush is a no-op; a parquet file is written once, on Close.
func (pw *ParquetWriter) Flush() error {
	return nil
}

// Close writes the buffered rows.
func (pw *ParquetWriter) Close() error {
	return WritePositionsParquet(pw.path, pw.rows)
}
