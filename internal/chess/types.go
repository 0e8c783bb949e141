// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PieceType represents a kind of chess piece, independent of colour.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceTypeFromLetter converts a piece letter of either case to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// Piece is a coloured piece. The zero value is an empty square.
type Piece struct {
	Type   PieceType
	Colour Colour
}

// NoPiece is the empty square.
var NoPiece = Piece{}

// W creates a white piece.
func W(t PieceType) Piece {
	return Piece{Type: t, Colour: White}
}

// B creates a black piece.
func B(t PieceType) Piece {
	return Piece{Type: t, Colour: Black}
}

// IsEmpty returns true if the piece represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// Is reports whether p is a piece of the given type and colour.
func (p Piece) Is(t PieceType, c Colour) bool {
	return p.Type == t && p.Colour == c
}

// Letter returns the FEN letter of the piece: uppercase for white,
// lowercase for black, and 0 for an empty square.
func (p Piece) Letter() byte {
	if p.IsEmpty() {
		return 0
	}
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter of the piece, or "" for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return ""
	}
	return string(p.Letter())
}

// PieceFromLetter converts a FEN letter to a coloured piece.
func PieceFromLetter(c byte) (Piece, bool) {
	t := PieceTypeFromLetter(c)
	if t == NoPieceType {
		return NoPiece, false
	}
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
	}
	return Piece{Type: t, Colour: colour}, true
}

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// HomeRank returns the back rank index of the given colour.
func HomeRank(colour Colour) int {
	if colour == White {
		return 0
	}
	return BoardSize - 1
}

// PawnStartRank returns the rank index from which pawns of the colour may double-step.
func PawnStartRank(colour Colour) int {
	if colour == White {
		return 1
	}
	return BoardSize - 2
}

// PromotionRank returns the rank index on which pawns of the colour promote.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)
