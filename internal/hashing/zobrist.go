package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/rookworks-go/internal/chess"
)

// Zobrist keys. The generator is seeded with constants so hashes are stable
// across runs.
var (
	pieceKeys    [2][7][chess.BoardSize * chess.BoardSize]uint64
	whiteToMove  uint64
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	r := rand.New(rand.NewPCG(0x726f6f6b, 0x776f726b))
	for c := range pieceKeys {
		for p := range pieceKeys[c] {
			for sq := range pieceKeys[c][p] {
				pieceKeys[c][p][sq] = r.Uint64()
			}
		}
	}
	whiteToMove = r.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = r.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = r.Uint64()
	}
}

// GenerateZobristHash returns the Zobrist hash of the position: pieces,
// side to move, castling rights and en passant file.
func GenerateZobristHash(board *chess.Board) uint64 {
	var hash uint64
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := board.Squares[file][rank]
			if p.IsEmpty() {
				continue
			}
			hash ^= pieceKeys[p.Colour][p.Type][file*chess.BoardSize+rank]
		}
	}
	if board.ToMove == chess.White {
		hash ^= whiteToMove
	}
	rights := []bool{
		board.Castling.WhiteKingside, board.Castling.WhiteQueenside,
		board.Castling.BlackKingside, board.Castling.BlackQueenside,
	}
	for i, ok := range rights {
		if ok {
			hash ^= castlingKeys[i]
		}
	}
	if board.EnPassant {
		hash ^= epFileKeys[board.EPSquare.File]
	}
	return hash
}

// WeakHash is a cheap order-dependent checksum of the piece placement only,
// used as a second opinion when Zobrist hashes collide.
func WeakHash(board *chess.Board) uint64 {
	var hash uint64
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			p := board.Squares[file][rank]
			code := uint64(p.Type)
			if p.Colour == chess.White && !p.IsEmpty() {
				code += 8
			}
			hash = hash*31 + code
		}
	}
	return hash
}
