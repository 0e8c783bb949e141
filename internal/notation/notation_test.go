package notation

import (
	"testing"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
	"github.com/lgbarn/rookworks-go/internal/errors"
	"github.com/lgbarn/rookworks-go/internal/testutil"
)

const (
	twoKnightsFEN = "rnbqkb1r/ppp1pppp/5n2/3p4/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1"
	castlingFEN   = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
	twoRooksFEN   = "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1"
	promotionFEN  = "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1"
	foolsMateFEN  = "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func TestToCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		token string
		want  string
	}{
		{"pawn push", engine.InitialFEN, "e4", "e2e4"},
		{"knight", engine.InitialFEN, "Nf3", "g1f3"},
		{"file disambiguation b", twoKnightsFEN, "Nbd7", "b8d7"},
		{"file disambiguation f", twoKnightsFEN, "Nfd7", "f6d7"},
		{"single candidate", "rnbqkbnr/ppp1pppp/8/3p4/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1", "Nd7", "b8d7"},
		{"redundant disambiguator", "rnbqkbnr/ppp1pppp/8/3p4/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1", "Nbd7", "b8d7"},
		{"rank disambiguation", twoRooksFEN, "R1a3", "a1a3"},
		{"rank disambiguation upper", twoRooksFEN, "R5a3", "a5a3"},
		{"full square", twoRooksFEN, "Ra1a3", "a1a3"},
		{"kingside castle", castlingFEN, "O-O", "e1g1"},
		{"queenside castle", castlingFEN, "O-O-O", "e1c1"},
		{"zero castle", castlingFEN, "0-0", "e1g1"},
		{"black castles", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "O-O-O+", "e8c8"},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "exd5", "e4d5"},
		{"pawn capture picks file", "4k3/8/8/3p4/2P1P3/8/8/4K3 w - - 0 1", "cxd5", "c4d5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "exd6", "e5d6"},
		{"en passant suffix", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "exd6e.p.", "e5d6"},
		{"promotion", promotionFEN, "b8=Q", "b7b8q"},
		{"promotion with check", promotionFEN, "b8=Q+", "b7b8q"},
		{"underpromotion without equals", promotionFEN, "b8N", "b7b8n"},
		{"mate suffix", foolsMateFEN, "Qh4#", "d8h4"},
		{"annotation suffix", engine.InitialFEN, "e4!?", "e2e4"},
		{"long algebraic", engine.InitialFEN, "Ng1-f3", "g1f3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			before := engine.BoardToFEN(board)
			got, err := ToCoordinate(board, tt.token)
			testutil.AssertNoError(t, err, "ToCoordinate(%q)", tt.token)
			testutil.AssertEqual(t, got.String(), tt.want)
			testutil.AssertEqual(t, engine.BoardToFEN(board), before, "board modified")
		})
	}
}

func TestToCoordinate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		token string
		want  error
	}{
		{"ambiguous knights", twoKnightsFEN, "Nd7", errors.ErrAmbiguousMove},
		{"ambiguous rooks", twoRooksFEN, "Ra3", errors.ErrAmbiguousMove},
		{"wrong side", engine.InitialFEN, "e5", errors.ErrUnresolvableMove},
		{"blocked piece", engine.InitialFEN, "Bc4", errors.ErrUnresolvableMove},
		{"disambiguator matches nothing", twoKnightsFEN, "Ncd7", errors.ErrUnresolvableMove},
		{"castle without right", "r3k2r/8/8/8/8/8/8/R3K2R w Qkq - 0 1", "O-O", errors.ErrUnresolvableMove},
		{"pinned piece", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", "Nc3", errors.ErrUnresolvableMove},
		{"empty", engine.InitialFEN, "", errors.ErrInvalidMove},
		{"not a square", engine.InitialFEN, "Nz9", errors.ErrInvalidMove},
		{"king promotion", promotionFEN, "b8=K", errors.ErrInvalidMove},
		{"piece promotion", engine.InitialFEN, "Nf3=Q", errors.ErrInvalidMove},
		{"castle typo", castlingFEN, "O-O-O-O", errors.ErrInvalidMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToCoordinate(mustBoard(t, tt.fen), tt.token)
			testutil.AssertErrorIs(t, err, tt.want, "ToCoordinate(%q)", tt.token)
		})
	}
}

func TestToAlgebraic(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"pawn push", engine.InitialFEN, "e2e4", "e4"},
		{"knight", engine.InitialFEN, "g1f3", "Nf3"},
		{"file disambiguation", twoKnightsFEN, "b8d7", "Nbd7"},
		{"no disambiguation needed", twoKnightsFEN, "f6e4", "Ne4"},
		{"rank disambiguation", twoRooksFEN, "a1a3", "R1a3"},
		{"square disambiguation", "8/7k/8/8/8/Q7/8/Q1Q4K w - - 0 1", "a1b2", "Qa1b2"},
		{"piece capture", "4k3/8/8/3p4/8/8/8/3RK3 w - - 0 1", "d1d5", "Rxd5"},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2", "e4d5", "exd5"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1", "e5d6", "exd6"},
		{"kingside castle", castlingFEN, "e1g1", "O-O"},
		{"queenside castle", castlingFEN, "e1c1", "O-O-O"},
		{"promotion with check", promotionFEN, "b7b8q", "b8=Q+"},
		{"underpromotion", promotionFEN, "b7b8n", "b8=N"},
		{"checkmate", foolsMateFEN, "d8h4", "Qh4#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			before := engine.BoardToFEN(board)
			got := ToAlgebraic(board, testutil.MustParseMove(t, tt.move))
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, engine.BoardToFEN(board), before, "board modified")
		})
	}
}

func TestRoundTrip(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		twoKnightsFEN,
		twoRooksFEN,
		castlingFEN,
		promotionFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/7k/8/8/8/Q7/8/Q1Q4K w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board := mustBoard(t, fen)
			for _, move := range engine.LegalMoves(board) {
				san := ToAlgebraic(board, move)
				got, err := ToCoordinate(board, san)
				if err != nil {
					t.Errorf("ToCoordinate(%q) for %v: %v", san, move, err)
					continue
				}
				testutil.AssertEqual(t, got, move, "round trip of %s", san)
			}
		})
	}
}
