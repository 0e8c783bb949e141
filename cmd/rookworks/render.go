// render.go - Text drawing of a board position
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/rookworks-go/internal/chess"
)

// boardTheme holds the colour attributes of squares and pieces.
type boardTheme struct {
	SquareLight color.Attribute
	SquareDark  color.Attribute
	White       color.Attribute
	Black       color.Attribute
	enabled     bool
}

var defaultTheme = boardTheme{
	SquareLight: color.BgHiYellow,
	SquareDark:  color.BgYellow,
	White:       color.FgHiWhite,
	Black:       color.FgBlack,
}

// style returns the colour for a cell with the given square background and
// optional piece foreground.
func (t boardTheme) style(bg color.Attribute, fg ...color.Attribute) *color.Color {
	c := color.New(bg).Add(fg...)
	if len(fg) > 0 {
		c.Add(color.Bold)
	}
	if t.enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// squareText returns the three-column cell for a square. Without colour,
// empty dark squares show a dot so the pattern stays readable.
func (t boardTheme) squareText(sq chess.Square, p chess.Piece) string {
	bg := t.SquareDark
	if sq.IsLight() {
		bg = t.SquareLight
	}
	if p.IsEmpty() {
		if !t.enabled && !sq.IsLight() {
			return " . "
		}
		return t.style(bg).Sprint("   ")
	}
	fg := t.White
	if p.Colour == chess.Black {
		fg = t.Black
	}
	return t.style(bg, fg).Sprintf(" %s ", p)
}

// renderBoard draws board from White's side with rank and file labels,
// followed by the side to move.
func renderBoard(w io.Writer, board *chess.Board, useColour bool) {
	t := defaultTheme
	t.enabled = useColour

	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			sb.WriteString(t.squareText(sq, board.Get(sq)))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		fmt.Fprintf(&sb, " %c ", 'a'+file)
	}
	fmt.Fprintf(&sb, "\n%s to move\n", board.ToMove)
	fmt.Fprint(w, sb.String())
}
