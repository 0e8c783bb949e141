package chess

import (
	"fmt"

	"github.com/lgbarn/rookworks-go/internal/errors"
)

// Move is a coordinate move: source, destination and an optional promotion.
type Move struct {
	From Square
	To   Square

	// Promotion is NoPieceType unless the move text carried a promotion letter.
	Promotion PieceType
}

// NewMove creates a move without promotion.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// ParseMove parses the 4-5 character coordinate form, e.g. "e2e4" or "e7e8q".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMove)
	}
	move := Move{From: from, To: to}
	if len(text) == 5 {
		switch promo := PieceTypeFromLetter(text[4]); promo {
		case Queen, Rook, Bishop, Knight:
			move.Promotion = promo
		default:
			return Move{}, fmt.Errorf("%q: bad promotion letter: %w", text, errors.ErrInvalidMove)
		}
	}
	return move, nil
}

// String returns the coordinate form of the move.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPieceType {
		s += string(m.Promotion.Letter() + ('a' - 'A'))
	}
	return s
}

// IsPromotion returns true if the move names a promotion piece.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// FileDistance returns the absolute number of files the move crosses.
func (m Move) FileDistance() int {
	d := m.To.File - m.From.File
	if d < 0 {
		return -d
	}
	return d
}

// IsCastle reports whether moving piece along m is a castling move.
// Castling is always encoded as a king move of two files.
func IsCastle(piece Piece, m Move) bool {
	return piece.Type == King && m.From.Rank == m.To.Rank && m.FileDistance() == 2
}

// CastleRookSquares returns the rook's source and destination for a castling
// king move.
func CastleRookSquares(m Move) (from, to Square) {
	rank := m.From.Rank
	if m.To.File > m.From.File {
		return Sq(BoardSize-1, rank), Sq(m.To.File-1, rank)
	}
	return Sq(0, rank), Sq(m.To.File+1, rank)
}
