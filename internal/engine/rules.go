package engine

import (
	"github.com/lgbarn/rookworks-go/internal/chess"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.Sq(file, rank)
			piece := board.Get(sq)
			if piece.IsEmpty() || piece.Type == chess.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if piece.Type == chess.Pawn || piece.Type == chess.Rook || piece.Type == chess.Queen {
				return false
			}

			if piece.Colour == chess.White {
				whitePieces = append(whitePieces, piece.Type)
				if piece.Type == chess.Bishop {
					whiteBishopOnLight = sq.IsLight()
				}
			} else {
				blackPieces = append(blackPieces, piece.Type)
				if piece.Type == chess.Bishop {
					blackBishopOnLight = sq.IsLight()
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	// Standard material: 8 pawns, 2 rooks, 2 knights, 2 bishops, 1 queen, 1 king per side
	expected := map[chess.PieceType]int{
		chess.Pawn:   8,
		chess.Rook:   2,
		chess.Knight: 2,
		chess.Bishop: 2,
		chess.Queen:  1,
		chess.King:   1,
	}

	actual := make(map[chess.Piece]int)
	for rank := 0; rank < chess.BoardSize; rank++ {
		for file := 0; file < chess.BoardSize; file++ {
			if piece := board.Get(chess.Sq(file, rank)); !piece.IsEmpty() {
				actual[piece]++
			}
		}
	}

	for pieceType, count := range expected {
		if actual[chess.W(pieceType)] != count || actual[chess.B(pieceType)] != count {
			return false
		}
	}
	return true
}

// CheckMaterialOdds checks if a game started with material odds.
func CheckMaterialOdds(game *chess.GameData) bool {
	fenStr := game.FEN()
	if fenStr == "" {
		return false // Standard starting position
	}

	board, err := NewBoardFromFEN(fenStr)
	if err != nil {
		return false
	}

	return !isStandardMaterial(board)
}
