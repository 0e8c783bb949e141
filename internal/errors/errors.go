// Package errors holds the sentinel errors of rookworks and the error types
// that attach game or input position to them. Both work with errors.Is and
// errors.As from the standard library.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates square text that is not a1..h8.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidMove indicates coordinate move text that cannot be parsed.
	ErrInvalidMove = errors.New("invalid move text")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnresolvableMove indicates an algebraic move that matches no legal move.
	ErrUnresolvableMove = errors.New("unresolvable move")

	// ErrAmbiguousMove indicates an algebraic move that matches several moves.
	ErrAmbiguousMove = errors.New("ambiguous move")

	// ErrParseFailure indicates a general PGN parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrGameNotFound indicates a library lookup for an unknown game.
	ErrGameNotFound = errors.New("game not found")
)

// GameError is a failure inside one game of an input: the game's position
// in the file and, for move errors, the ply and the move text.
type GameError struct {
	Err      error
	GameNum  int    // 1-based
	PlyNum   int    // 1-based; 0 when the error is not tied to a move
	MoveText string // as written in the input
	File     string
	Line     int
}

// Error formats the error as "file:line, game N, ply P, move "text": cause",
// leaving out the parts that are not known.
func (e *GameError) Error() string {
	var parts []string
	switch {
	case e.File != "" && e.Line > 0:
		parts = append(parts, fmt.Sprintf("%s:%d", e.File, e.Line))
	case e.File != "":
		parts = append(parts, e.File)
	}
	parts = append(parts, fmt.Sprintf("game %d", e.GameNum))
	if e.PlyNum > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.PlyNum))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	msg := strings.Join(parts, ", ")
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

func (e *GameError) Unwrap() error {
	return e.Err
}

// ParseError is a failure to read FEN or PGN text. Column is the FEN field
// or the text column; Expected and Got describe the offending input.
type ParseError struct {
	Err      error
	File     string
	Line     int
	Column   int
	Expected string
	Got      string
}

// Error formats the error as "file:line:column: expected X, got Y: cause".
func (e *ParseError) Error() string {
	var parts []string
	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		if e.Line > 0 && e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	switch {
	case e.Expected != "" && e.Got != "":
		parts = append(parts, fmt.Sprintf("expected %s, got %s", e.Expected, e.Got))
	case e.Expected != "":
		parts = append(parts, "expected "+e.Expected)
	case e.Got != "":
		parts = append(parts, "unexpected "+e.Got)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	if len(parts) == 0 {
		return "parse error"
	}
	return strings.Join(parts, ": ")
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap prefixes err with context. A nil err stays nil.
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf is Wrap with a formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
