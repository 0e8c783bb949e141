// Package notation converts between algebraic move text, as found in PGN
// move lists, and the coordinate moves accepted by the engine.
package notation

import (
	"strings"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
	"github.com/lgbarn/rookworks-go/internal/errors"
)

// isCol returns true if c is a valid file character.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isAnnotation returns true for check marks and move-quality suffixes.
func isAnnotation(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// pieceLetter returns the piece type for an uppercase SAN piece letter.
func pieceLetter(c byte) chess.PieceType {
	switch c {
	case 'K':
		return chess.King
	case 'Q':
		return chess.Queen
	case 'R':
		return chess.Rook
	case 'B':
		return chess.Bishop
	case 'N':
		return chess.Knight
	}
	return chess.NoPieceType
}

// decoded is the board-independent reading of an algebraic token.
type decoded struct {
	piece     chess.PieceType
	to        chess.Square
	fromFile  int // -1 when not given
	fromRank  int // -1 when not given
	promotion chess.PieceType
	castle    int // 0 none, 2 kingside, 3 queenside
}

// decodeToken splits an algebraic token into its parts. It knows nothing
// about the position; ok is false if the text is not algebraic at all.
func decodeToken(token string) (decoded, bool) {
	d := decoded{fromFile: -1, fromRank: -1}

	text := strings.TrimSpace(token)
	for len(text) > 0 && isAnnotation(text[len(text)-1]) {
		text = text[:len(text)-1]
	}
	text = strings.TrimSuffix(text, "e.p.")
	text = strings.TrimSuffix(text, "ep")
	if text == "" {
		return d, false
	}

	if isCastlingChar(text[0]) {
		n := 0
		for i := 0; i < len(text); i++ {
			switch {
			case isCastlingChar(text[i]):
				n++
			case text[i] == '-':
			default:
				return d, false
			}
		}
		if n != 2 && n != 3 {
			return d, false
		}
		d.piece = chess.King
		d.castle = n
		return d, true
	}

	// Promotion suffix: "e8=Q" or the bare "e8Q".
	if i := strings.IndexByte(text, '='); i >= 0 {
		if i+1 >= len(text) {
			return d, false
		}
		d.promotion = pieceLetter(text[i+1])
		text = text[:i]
		if d.promotion == chess.NoPieceType || d.promotion == chess.King {
			return d, false
		}
	} else if n := len(text); n >= 3 && isRank(text[n-2]) {
		if p := pieceLetter(text[n-1]); p != chess.NoPieceType && p != chess.King {
			d.promotion = p
			text = text[:n-1]
		}
	}

	d.piece = chess.Pawn
	if p := pieceLetter(text[0]); p != chess.NoPieceType {
		d.piece = p
		text = text[1:]
	}

	var body []byte
	for i := 0; i < len(text); i++ {
		if !isCapture(text[i]) {
			body = append(body, text[i])
		}
	}
	if len(body) < 2 || len(body) > 4 {
		return d, false
	}

	to, err := chess.ParseSquare(string(body[len(body)-2:]))
	if err != nil {
		return d, false
	}
	d.to = to

	for _, c := range body[:len(body)-2] {
		switch {
		case isCol(c) && d.fromFile < 0:
			d.fromFile = int(c - 'a')
		case isRank(c) && d.fromRank < 0:
			d.fromRank = int(c - '1')
		default:
			return d, false
		}
	}
	if d.promotion != chess.NoPieceType && d.piece != chess.Pawn {
		return d, false
	}
	return d, true
}

// ToCoordinate resolves an algebraic move token (e.g. "Nf3", "exd5", "O-O",
// "e8=Q+") against the position on board and returns the coordinate move.
// Every candidate is checked with engine.IsLegalMove. Disambiguators are
// applied only when more than one piece could make the move.
func ToCoordinate(board *chess.Board, token string) (chess.Move, error) {
	d, ok := decodeToken(token)
	if !ok {
		return chess.Move{}, errors.Wrapf(errors.ErrInvalidMove, "%q", token)
	}

	colour := board.ToMove
	if d.castle != 0 {
		home := chess.HomeRank(colour)
		move := chess.NewMove(chess.Sq(4, home), chess.Sq(6, home))
		if d.castle == 3 {
			move.To = chess.Sq(2, home)
		}
		if !engine.IsLegalMove(board, move) {
			return chess.Move{}, errors.Wrapf(errors.ErrUnresolvableMove, "%q", token)
		}
		return move, nil
	}

	var candidates []chess.Move
	for file := 0; file < chess.BoardSize; file++ {
		for rank := 0; rank < chess.BoardSize; rank++ {
			from := chess.Sq(file, rank)
			if !board.Get(from).Is(d.piece, colour) {
				continue
			}
			move := chess.Move{From: from, To: d.to, Promotion: d.promotion}
			if engine.IsLegalMove(board, move) {
				candidates = append(candidates, move)
			}
		}
	}

	if len(candidates) > 1 {
		filtered := candidates[:0]
		for _, m := range candidates {
			if d.fromFile >= 0 && m.From.File != d.fromFile {
				continue
			}
			if d.fromRank >= 0 && m.From.Rank != d.fromRank {
				continue
			}
			filtered = append(filtered, m)
		}
		candidates = filtered
	}

	switch len(candidates) {
	case 0:
		return chess.Move{}, errors.Wrapf(errors.ErrUnresolvableMove, "%q", token)
	case 1:
		return candidates[0], nil
	default:
		return chess.Move{}, errors.Wrapf(errors.ErrAmbiguousMove, "%q", token)
	}
}
