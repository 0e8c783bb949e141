package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/rookworks-go/internal/chess"
	chesserrors "github.com/lgbarn/rookworks-go/internal/errors"
)

// Failing assertions cannot be observed without a fake *testing.T, so
// these only exercise the passing paths and formatMessage.

func TestAssertEqual(t *testing.T) {
	AssertEqual(t, chess.Sq(4, 3), chess.Square{File: 4, Rank: 3})
	AssertEqual(t, []string{"e4", "e5"}, []string{"e4", "e5"})
	AssertEqual(t, chess.NewMove(chess.Sq(4, 6), chess.Sq(4, 7)), chess.Move{From: chess.Sq(4, 6), To: chess.Sq(4, 7)}, "move %s", "e7e8")
	AssertEqual(t, nil, nil)
}

func TestAssertErrors(t *testing.T) {
	wrapped := fmt.Errorf("replaying: %w", chesserrors.ErrIllegalMove)

	AssertNoError(t, nil, "no error")
	AssertError(t, wrapped)
	AssertErrorIs(t, wrapped, chesserrors.ErrIllegalMove)
	AssertErrorIs(t, &chesserrors.GameError{Err: chesserrors.ErrAmbiguousMove, GameNum: 1}, chesserrors.ErrAmbiguousMove)
}

func TestAssertStrings(t *testing.T) {
	AssertContains(t, "1. e4 e5 2. Nf3", "Nf3")
	AssertContains(t, "anything", "")
	AssertNotContains(t, "1. e4 e5", "Nf3")
}

func TestAssertBooleansAndNil(t *testing.T) {
	var board *chess.Board
	AssertTrue(t, chess.Sq(0, 0).Valid())
	AssertFalse(t, chess.Sq(8, 0).Valid())
	AssertNil(t, board)
	AssertNil(t, nil)
	AssertNotNil(t, chess.NewBoard())
	AssertNotNil(t, []chess.Move{})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"plain string", []interface{}{"after 1. e4"}, "after 1. e4"},
		{"non-string", []interface{}{42}, "42"},
		{"format", []interface{}{"ply %d: %s", 3, "Nf3"}, "ply 3: Nf3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
