package chess

// CastlingRights holds the four independent castling availability flags.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights is the castling availability of the initial position.
var AllCastlingRights = CastlingRights{true, true, true, true}

// Kingside returns the kingside right of the colour.
func (c CastlingRights) Kingside(colour Colour) bool {
	if colour == White {
		return c.WhiteKingside
	}
	return c.BlackKingside
}

// Queenside returns the queenside right of the colour.
func (c CastlingRights) Queenside(colour Colour) bool {
	if colour == White {
		return c.WhiteQueenside
	}
	return c.BlackQueenside
}

// ClearColour removes both rights of the colour.
func (c *CastlingRights) ClearColour(colour Colour) {
	if colour == White {
		c.WhiteKingside = false
		c.WhiteQueenside = false
	} else {
		c.BlackKingside = false
		c.BlackQueenside = false
	}
}

// ClearRookSquare removes the right tied to a rook home square, if sq is one.
func (c *CastlingRights) ClearRookSquare(sq Square) {
	switch sq {
	case Sq(0, 0):
		c.WhiteQueenside = false
	case Sq(7, 0):
		c.WhiteKingside = false
	case Sq(0, 7):
		c.BlackQueenside = false
	case Sq(7, 7):
		c.BlackKingside = false
	}
}

// String returns the FEN castling field: a subset of "KQkq", or "-".
func (c CastlingRights) String() string {
	s := ""
	if c.WhiteKingside {
		s += "K"
	}
	if c.WhiteQueenside {
		s += "Q"
	}
	if c.BlackKingside {
		s += "k"
	}
	if c.BlackQueenside {
		s += "q"
	}
	if s == "" {
		return "-"
	}
	return s
}

// Board represents a chess position with all state needed to continue play.
type Board struct {
	// The board squares, indexed Squares[file][rank].
	Squares [BoardSize][BoardSize]Piece

	// Who has the next move.
	ToMove Colour

	// Castling availability.
	Castling CastlingRights

	// Is EnPassant capture possible? If so then EPSquare is the square on
	// which this can be made.
	EnPassant bool
	EPSquare  Square

	// Keep track of where the two kings are for check detection.
	WhiteKing Square
	BlackKing Square

	// Pieces removed from the board, by the colour of the removed piece.
	WhiteCaptured []Piece
	BlackCaptured []Piece

	// Half-moves played since the start of the game.
	Ply int
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{
		ToMove: White,
	}
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.Squares[file][0] = W(backRank[file])
		b.Squares[file][1] = W(Pawn)
		b.Squares[file][6] = B(Pawn)
		b.Squares[file][7] = B(backRank[file])
	}

	b.WhiteKing = Sq(4, 0)
	b.BlackKing = Sq(4, 7)
	b.Castling = AllCastlingRights
	b.ToMove = White
	b.EnPassant = false
	b.Ply = 0
}

// Clear empties every square and resets the auxiliary state.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
	b.ToMove = White
	b.Castling = CastlingRights{}
	b.EnPassant = false
	b.EPSquare = Square{}
	b.WhiteKing = Square{}
	b.BlackKing = Square{}
	b.WhiteCaptured = nil
	b.BlackCaptured = nil
	b.Ply = 0
}

// Get returns the piece on the square, or NoPiece for off-board squares.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return NoPiece
	}
	return b.Squares[sq.File][sq.Rank]
}

// Set places a piece on the square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.File][sq.Rank] = piece
	}
}

// KingSquare returns the cached king square of the colour.
func (b *Board) KingSquare(colour Colour) Square {
	if colour == White {
		return b.WhiteKing
	}
	return b.BlackKing
}

// SetKingSquare updates the cached king square of the colour.
func (b *Board) SetKingSquare(colour Colour, sq Square) {
	if colour == White {
		b.WhiteKing = sq
	} else {
		b.BlackKing = sq
	}
}

// LocateKings recomputes the king cache from the grid.
// Returns false if either colour does not have exactly one king.
func (b *Board) LocateKings() bool {
	whiteKings, blackKings := 0, 0
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			p := b.Squares[file][rank]
			if p.Type != King {
				continue
			}
			if p.Colour == White {
				b.WhiteKing = Sq(file, rank)
				whiteKings++
			} else {
				b.BlackKing = Sq(file, rank)
				blackKings++
			}
		}
	}
	return whiteKings == 1 && blackKings == 1
}

// Captured returns the removed pieces of the given colour.
func (b *Board) Captured(colour Colour) []Piece {
	if colour == White {
		return b.WhiteCaptured
	}
	return b.BlackCaptured
}

// AddCaptured records a piece removed from the board.
func (b *Board) AddCaptured(piece Piece) {
	if piece.IsEmpty() {
		return
	}
	if piece.Colour == White {
		b.WhiteCaptured = append(b.WhiteCaptured, piece)
	} else {
		b.BlackCaptured = append(b.BlackCaptured, piece)
	}
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	newBoard.WhiteCaptured = append([]Piece(nil), b.WhiteCaptured...)
	newBoard.BlackCaptured = append([]Piece(nil), b.BlackCaptured...)
	return newBoard
}

// BoardState captures all mutable board state for save/restore operations.
// This is more efficient than Copy() when you need to temporarily modify
// the board and then restore it (e.g., testing a move for legality).
type BoardState struct {
	Squares       [BoardSize][BoardSize]Piece
	ToMove        Colour
	Castling      CastlingRights
	EnPassant     bool
	EPSquare      Square
	WhiteKing     Square
	BlackKing     Square
	whiteCaptured int
	blackCaptured int
	Ply           int
}

// SaveState captures the current board state for later restoration.
func (b *Board) SaveState() BoardState {
	return BoardState{
		Squares:       b.Squares,
		ToMove:        b.ToMove,
		Castling:      b.Castling,
		EnPassant:     b.EnPassant,
		EPSquare:      b.EPSquare,
		WhiteKing:     b.WhiteKing,
		BlackKing:     b.BlackKing,
		whiteCaptured: len(b.WhiteCaptured),
		blackCaptured: len(b.BlackCaptured),
		Ply:           b.Ply,
	}
}

// RestoreState restores the board to a previously saved state.
// Captured pieces recorded after the save are dropped.
func (b *Board) RestoreState(s BoardState) {
	b.Squares = s.Squares
	b.ToMove = s.ToMove
	b.Castling = s.Castling
	b.EnPassant = s.EnPassant
	b.EPSquare = s.EPSquare
	b.WhiteKing = s.WhiteKing
	b.BlackKing = s.BlackKing
	b.WhiteCaptured = truncateCaptured(b.WhiteCaptured, s.whiteCaptured)
	b.BlackCaptured = truncateCaptured(b.BlackCaptured, s.blackCaptured)
	b.Ply = s.Ply
}

func truncateCaptured(pieces []Piece, n int) []Piece {
	if n == 0 {
		return nil
	}
	if len(pieces) > n {
		return pieces[:n]
	}
	return pieces
}
