package chess

import (
	"fmt"

	"github.com/lgbarn/rookworks-go/internal/errors"
)

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// Sq creates a square from file and rank indices.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// Valid returns true if the square lies on the board.
func (s Square) Valid() bool {
	return s.File >= 0 && s.File < BoardSize && s.Rank >= 0 && s.Rank < BoardSize
}

// Offset returns the square displaced by the given file and rank deltas.
// The result may be off the board.
func (s Square) Offset(df, dr int) Square {
	return Square{File: s.File + df, Rank: s.Rank + dr}
}

// String returns the algebraic form of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare parses an algebraic square such as "e4".
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	sq := Square{File: int(text[0]) - ColBase, Rank: int(text[1]) - RankBase}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return sq, nil
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.File+s.Rank)%2 == 1
}
