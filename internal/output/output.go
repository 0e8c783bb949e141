// Package output writes replayed games as PGN text, JSON or parquet rows.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/config"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// DefaultLineLength is the move text width of PGN output.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame writes a replayed game as PGN to cfg.OutputFile: the seven tag
// roster, the remaining tags in name order, then the moves in the configured
// notation.
func OutputGame(data *chess.GameData, g *engine.Game, cfg *config.Config) {
	w := cfg.OutputFile

	outputTags(data, w)
	fmt.Fprintln(w)
	outputMoves(data, g, cfg, w)
	fmt.Fprintln(w)
}

// outputTags outputs the game tags.
func outputTags(data *chess.GameData, w io.Writer) {
	for _, tag := range chess.SevenTagRoster {
		value := data.Tag(tag)
		if value == "" {
			value = "?"
		}
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(value))
	}

	extra := make([]string, 0, len(data.Tags))
	for tag := range data.Tags {
		if !chess.IsSevenTagRosterTag(tag) {
			extra = append(extra, tag)
		}
	}
	sort.Strings(extra)
	for _, tag := range extra {
		fmt.Fprintf(w, "[%s \"%s\"]\n", tag, escapeTagValue(data.Tags[tag]))
	}
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// outputMoves outputs the move text followed by the result.
func outputMoves(data *chess.GameData, g *engine.Game, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, DefaultLineLength)

	plies, final := walkPlies(g)
	for i, p := range plies {
		if p.Colour == chess.White {
			ow.Write(fmt.Sprintf("%d.", p.MoveNumber))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", p.MoveNumber))
		}
		ow.Write(formatMove(p, cfg.Output.Format))
	}

	ow.Write(gameResult(data, final))
	ow.NewLine()
}

// gameResult returns the Result tag, or the result the final position
// decides when the tag is missing or unknown.
func gameResult(data *chess.GameData, final *chess.Board) string {
	if result := data.Result(); result != "" && result != chess.UnknownResult {
		return result
	}
	return engine.Status(final).Result()
}
