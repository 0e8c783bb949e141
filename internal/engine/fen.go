// Package engine provides chess move generation, legality checking and
// board manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenError builds an ErrInvalidFEN parse error for a FEN field.
func fenError(field int, expected, got string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Column:   field,
		Expected: expected,
		Got:      got,
	}
}

// NewBoardFromFEN creates a board from a FEN string.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	board := chess.NewBoard()
	if err := decodeFEN(board, fen); err != nil {
		return nil, err
	}
	return board, nil
}

// SetBoardFromFEN replaces the full position of board with the one described
// by fen. Captured-piece lists are cleared. On error the board is unchanged.
func SetBoardFromFEN(board *chess.Board, fen string) error {
	decoded := chess.NewBoard()
	if err := decodeFEN(decoded, fen); err != nil {
		return err
	}
	*board = *decoded
	return nil
}

func decodeFEN(board *chess.Board, fen string) error {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return fenError(0, "at least 4 fields", strconv.Itoa(len(parts)))
	}

	if err := parsePiecePositions(board, parts[0]); err != nil {
		return err
	}
	if err := parseSideToMove(board, parts[1]); err != nil {
		return err
	}
	parseCastlingRights(board, parts[2])
	if err := parseEnPassant(board, parts[3]); err != nil {
		return err
	}
	if err := parseFullmove(board, parts); err != nil {
		return err
	}

	board.LocateKings()
	return nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(1, "8 ranks", strconv.Itoa(len(ranks)))
	}

	for i, text := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(text); j++ {
			c := text[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			piece, ok := chess.PieceFromLetter(c)
			if !ok {
				return fenError(1, "piece letter or digit", fmt.Sprintf("%q", c))
			}
			if file >= chess.BoardSize {
				return fenError(1, "8 files in rank "+strconv.Itoa(rank+1), "more")
			}
			board.Set(chess.Sq(file, rank), piece)
			file++
		}
		if file != chess.BoardSize {
			return fenError(1, "8 files in rank "+strconv.Itoa(rank+1), strconv.Itoa(file))
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return fenError(2, "w or b", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field by membership.
func parseCastlingRights(board *chess.Board, field string) {
	board.Castling = chess.CastlingRights{
		WhiteKingside:  strings.ContainsRune(field, 'K'),
		WhiteQueenside: strings.ContainsRune(field, 'Q'),
		BlackKingside:  strings.ContainsRune(field, 'k'),
		BlackQueenside: strings.ContainsRune(field, 'q'),
	}
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = false
	board.EPSquare = chess.Square{}
	if field == "-" {
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(4, "- or a square", field)
	}
	if sq.Rank != 2 && sq.Rank != 5 {
		return fenError(4, "en passant square on rank 3 or 6", field)
	}
	board.EnPassant = true
	board.EPSquare = sq
	return nil
}

// parseFullmove derives the ply count from the fullmove number and the side
// to move. The halfmove clock is not tracked.
func parseFullmove(board *chess.Board, parts []string) error {
	fullmove := 1
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fenError(6, "positive fullmove number", parts[5])
		}
		fullmove = n
	}
	board.Ply = (fullmove - 1) * 2
	if board.ToMove == chess.Black {
		board.Ply++
	}
	return nil
}

// BoardToFEN converts a board to a FEN string.
// The halfmove clock is always written as 0.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	writeEnPassant(&sb, board)
	fmt.Fprintf(&sb, " 0 %d", board.Ply/2+1)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.Sq(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, board *chess.Board) {
	if board.ToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, board *chess.Board) {
	if board.EnPassant {
		sb.WriteString(board.EPSquare.String())
	} else {
		sb.WriteByte('-')
	}
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board := chess.NewBoard()
	board.SetupInitialPosition()
	return board
}

// NewBoardForGame creates a board for a game, using the FEN tag if present.
func NewBoardForGame(game *chess.GameData) (*chess.Board, error) {
	if fen := game.FEN(); fen != "" {
		return NewBoardFromFEN(fen)
	}
	return NewInitialBoard(), nil
}
