package library

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/rookworks-go/internal/chess"
	chesserrors "github.com/lgbarn/rookworks-go/internal/errors"
)

func newGame(date, time, white, black string) *chess.GameData {
	g := chess.NewGameData()
	g.SetTag(chess.UTCDateTag, date)
	g.SetTag(chess.UTCTimeTag, time)
	g.SetTag(chess.WhiteTag, white)
	g.SetTag(chess.BlackTag, black)
	g.SetTag(chess.ResultTag, "1-0")
	g.Moves = []string{"e4", "e5"}
	return g
}

func TestAdd_AssignsGUID(t *testing.T) {
	lib := New()
	game := newGame("2024.01.02", "10:00:00", "A", "B")

	id, err := lib.Add(game)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Empty(t, game.GUID(), "caller's game must not be modified")

	stored, err := lib.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id.String(), stored.GUID())
	assert.Equal(t, []string{"e4", "e5"}, stored.Moves)
}

func TestAdd_KeepsExistingGUID(t *testing.T) {
	lib := New()
	want := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	game := newGame("2024.01.02", "10:00:00", "A", "B")
	game.SetTag(chess.GUIDTag, want.String())

	id, err := lib.Add(game)
	require.NoError(t, err)
	assert.Equal(t, want, id)

	game.SetTag(chess.WhiteTag, "C")
	_, err = lib.Add(game)
	require.NoError(t, err)
	assert.Equal(t, 1, lib.Len(), "same GUID replaces")

	stored, err := lib.Get(want)
	require.NoError(t, err)
	assert.Equal(t, "C", stored.White())
}

func TestAdd_BadGUID(t *testing.T) {
	game := newGame("2024.01.02", "10:00:00", "A", "B")
	game.SetTag(chess.GUIDTag, "not-a-uuid")

	_, err := New().Add(game)
	assert.ErrorIs(t, err, chesserrors.ErrParseFailure)
}

func TestGet_ReturnsCopy(t *testing.T) {
	lib := New()
	id, err := lib.Add(newGame("2024.01.02", "10:00:00", "A", "B"))
	require.NoError(t, err)

	g, err := lib.Get(id)
	require.NoError(t, err)
	g.Moves[0] = "d4"
	g.SetTag(chess.WhiteTag, "changed")

	again, err := lib.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "e4", again.Moves[0])
	assert.Equal(t, "A", again.White())
}

func TestGetRemove_NotFound(t *testing.T) {
	lib := New()
	_, err := lib.Get(uuid.New())
	assert.ErrorIs(t, err, chesserrors.ErrGameNotFound)
	assert.ErrorIs(t, lib.Remove(uuid.New()), chesserrors.ErrGameNotFound)
	_, err = lib.Summary(uuid.New())
	assert.ErrorIs(t, err, chesserrors.ErrGameNotFound)
}

func TestRemove(t *testing.T) {
	lib := New()
	id, err := lib.Add(newGame("2024.01.02", "10:00:00", "A", "B"))
	require.NoError(t, err)

	require.NoError(t, lib.Remove(id))
	assert.Equal(t, 0, lib.Len())
	_, err = lib.Get(id)
	assert.ErrorIs(t, err, chesserrors.ErrGameNotFound)
}

func TestList_Order(t *testing.T) {
	lib := New()
	late, _ := lib.Add(newGame("2024.03.01", "09:00:00", "Late", "X"))
	early, _ := lib.Add(newGame("2024.01.01", "23:00:00", "Early", "X"))
	sameDayLater, _ := lib.Add(newGame("2024.01.01", "23:30:00", "SameDay", "X"))

	entries := lib.List()
	require.Len(t, entries, 3)
	assert.Equal(t, []uuid.UUID{early, sameDayLater, late},
		[]uuid.UUID{entries[0].ID, entries[1].ID, entries[2].ID})
	assert.Equal(t, "Early", entries[0].Game.White())
}

func TestSummary(t *testing.T) {
	lib := New()
	id, err := lib.Add(newGame("2024.01.02", "10:00:00", "Carlsen", "Nakamura"))
	require.NoError(t, err)

	got, err := lib.Summary(id)
	require.NoError(t, err)
	assert.Equal(t, "2024.01.02 10:00:00 \n Carlsen - Nakamura (1-0)", got)
}

const loadPGN = `[White "A"]
[Black "B"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1


[White "C"]
[Black "D"]
[Result "*"]

1. e4 e5 2. Ke3 *


[White "E"]
[Black "F"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1


[White "G"]
[Black "H"]
[Result "*"]

1. Nf3 Nf6 2. Nc3 *
`

func TestLoadPGN(t *testing.T) {
	lib := New()
	ids, err := lib.LoadPGN(strings.NewReader(loadPGN))

	require.Error(t, err, "the broken game must be reported")
	assert.ErrorIs(t, err, chesserrors.ErrUnresolvableMove)
	var gerr *chesserrors.GameError
	require.True(t, errors.As(err, &gerr))
	assert.Equal(t, 2, gerr.GameNum)

	require.Len(t, ids, 2, "broken game and duplicate are skipped")
	assert.Equal(t, 2, lib.Len())

	first, err := lib.Get(ids[0])
	require.NoError(t, err)
	assert.Equal(t, "A", first.White())
	second, err := lib.Get(ids[1])
	require.NoError(t, err)
	assert.Equal(t, "G", second.White())
}

func TestLoadPGN_Clean(t *testing.T) {
	lib := New()
	ids, err := lib.LoadPGN(strings.NewReader("1. d4 d5 *\n"))
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}

func TestConcurrentAccess(t *testing.T) {
	lib := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := lib.Add(newGame("2024.01.01", fmt.Sprintf("10:00:%02d", i), "A", "B"))
			if err != nil {
				t.Error(err)
				return
			}
			_, _ = lib.Get(id)
			_ = lib.List()
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 20, lib.Len())
}
