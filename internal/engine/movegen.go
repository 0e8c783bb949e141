package engine

import "github.com/lgbarn/rookworks-go/internal/chess"

// Offset tables for the stepping and sliding pieces.
var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs  = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs  = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	queenDirs     = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// PseudoLegalMoves returns the destination squares of the piece on from,
// obeying movement shape and blocking but not king safety.
// Castling destinations are only produced for a king when castling is true;
// attack queries pass false so that castling legality never recurses.
// The result is a fresh slice and never contains a square held by the
// mover's own colour.
func PseudoLegalMoves(board *chess.Board, from chess.Square, castling bool) []chess.Square {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}

	var targets []chess.Square
	switch piece.Type {
	case chess.Pawn:
		targets = pawnMoves(board, from, piece.Colour)
	case chess.Knight:
		targets = stepMoves(board, from, piece.Colour, knightOffsets)
	case chess.Bishop:
		targets = slideMoves(board, from, piece.Colour, diagonalDirs)
	case chess.Rook:
		targets = slideMoves(board, from, piece.Colour, straightDirs)
	case chess.Queen:
		targets = slideMoves(board, from, piece.Colour, queenDirs)
	case chess.King:
		targets = stepMoves(board, from, piece.Colour, kingOffsets)
		if castling {
			targets = append(targets, castlingMoves(board, from, piece.Colour)...)
		}
	}
	return targets
}

// pawnMoves generates pushes, captures and en passant for a pawn.
func pawnMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	var targets []chess.Square
	dir := chess.ColourOffset(colour)

	one := from.Offset(0, dir)
	if one.Valid() && board.Get(one).IsEmpty() {
		targets = append(targets, one)
		two := from.Offset(0, 2*dir)
		if from.Rank == chess.PawnStartRank(colour) && board.Get(two).IsEmpty() {
			targets = append(targets, two)
		}
	}

	for _, df := range []int{-1, 1} {
		to := from.Offset(df, dir)
		if !to.Valid() {
			continue
		}
		target := board.Get(to)
		if !target.IsEmpty() && target.Colour != colour {
			targets = append(targets, to)
			continue
		}
		if board.EnPassant && to == board.EPSquare && target.IsEmpty() && to.Rank == enPassantRank(colour) {
			targets = append(targets, to)
		}
	}
	return targets
}

// enPassantRank is the rank a pawn of the colour lands on when capturing
// en passant.
func enPassantRank(colour chess.Colour) int {
	return chess.HomeRank(colour.Opposite()) - 2*chess.ColourOffset(colour)
}

// stepMoves generates single-step moves from a fixed offset table.
func stepMoves(board *chess.Board, from chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	targets := make([]chess.Square, 0, len(offsets))
	for _, off := range offsets {
		to := from.Offset(off[0], off[1])
		if !to.Valid() {
			continue
		}
		if target := board.Get(to); target.IsEmpty() || target.Colour != colour {
			targets = append(targets, to)
		}
	}
	return targets
}

// slideMoves ray-casts along each direction until blocked, including the
// blocking square when it holds an enemy piece.
func slideMoves(board *chess.Board, from chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var targets []chess.Square
	for _, dir := range dirs {
		to := from.Offset(dir[0], dir[1])
		for to.Valid() {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					targets = append(targets, to)
				}
				break
			}
			targets = append(targets, to)
			to = to.Offset(dir[0], dir[1])
		}
	}
	return targets
}

// castlingMoves returns the two-file king destinations whose castling right
// is set, whose rook is home, whose path is clear, and whose king squares
// are not attacked.
func castlingMoves(board *chess.Board, from chess.Square, colour chess.Colour) []chess.Square {
	home := chess.HomeRank(colour)
	if from != chess.Sq(4, home) {
		return nil
	}
	enemy := colour.Opposite()
	rook := chess.Piece{Type: chess.Rook, Colour: colour}

	var targets []chess.Square
	if board.Castling.Kingside(colour) &&
		board.Get(chess.Sq(7, home)) == rook &&
		pathClear(board, home, 5, 6) &&
		!anyAttacked(board, enemy, home, 4, 5, 6) {
		targets = append(targets, chess.Sq(6, home))
	}
	if board.Castling.Queenside(colour) &&
		board.Get(chess.Sq(0, home)) == rook &&
		pathClear(board, home, 1, 3) &&
		!anyAttacked(board, enemy, home, 4, 3, 2) {
		targets = append(targets, chess.Sq(2, home))
	}
	return targets
}

// pathClear reports whether files lo..hi on the rank are all empty.
func pathClear(board *chess.Board, rank, lo, hi int) bool {
	for file := lo; file <= hi; file++ {
		if !board.Get(chess.Sq(file, rank)).IsEmpty() {
			return false
		}
	}
	return true
}

func anyAttacked(board *chess.Board, byColour chess.Colour, rank int, files ...int) bool {
	for _, file := range files {
		if IsSquareAttacked(board, chess.Sq(file, rank), byColour) {
			return true
		}
	}
	return false
}

// CountPseudoLegalMoves returns the number of pseudo-legal moves available
// to the colour, castling included.
func CountPseudoLegalMoves(board *chess.Board, colour chess.Colour) int {
	count := 0
	forEachPiece(board, colour, func(from chess.Square, _ chess.Piece) bool {
		count += len(PseudoLegalMoves(board, from, true))
		return true
	})
	return count
}

// forEachPiece calls fn for every piece of the colour, rank by rank from a1.
// Iteration stops early when fn returns false.
func forEachPiece(board *chess.Board, colour chess.Colour, fn func(chess.Square, chess.Piece) bool) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			piece := board.Get(sq)
			if piece.IsEmpty() || piece.Colour != colour {
				continue
			}
			if !fn(sq, piece) {
				return
			}
		}
	}
}

func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
