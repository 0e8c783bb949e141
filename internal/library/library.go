// Package library keeps an in-memory collection of games addressed by
// GUID. A Library is safe for concurrent use.
package library

import (
	stderrors "errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/errors"
	"github.com/lgbarn/rookworks-go/internal/hashing"
	"github.com/lgbarn/rookworks-go/internal/pgn"
	"github.com/lgbarn/rookworks-go/internal/replay"
)

// Entry is a stored game.
type Entry struct {
	ID   uuid.UUID
	Game *chess.GameData
}

// Library stores games by GUID.
type Library struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*chess.GameData
	dups  *hashing.ThreadSafeDuplicateDetector
}

// New creates an empty library.
func New() *Library {
	return &Library{
		games: make(map[uuid.UUID]*chess.GameData),
		dups:  hashing.NewThreadSafeDuplicateDetector(true, 0),
	}
}

// Add stores a copy of game. A game without a GUID tag is given a fresh
// one; an existing GUID must parse as a UUID and replaces any game stored
// under it.
func (l *Library) Add(game *chess.GameData) (uuid.UUID, error) {
	stored := game.Clone()

	var id uuid.UUID
	if s := stored.GUID(); s != "" {
		parsed, err := uuid.Parse(s)
		if err != nil {
			return uuid.Nil, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "GUID tag", Got: s}
		}
		id = parsed
	} else {
		id = uuid.New()
		stored.SetTag(chess.GUIDTag, id.String())
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.games[id] = stored
	return id, nil
}

// Get returns a copy of the game stored under id.
func (l *Library) Get(id uuid.UUID) (*chess.GameData, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	game, ok := l.games[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	return game.Clone(), nil
}

// Remove deletes the game stored under id.
func (l *Library) Remove(id uuid.UUID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.games[id]; !ok {
		return fmt.Errorf("%s: %w", id, errors.ErrGameNotFound)
	}
	delete(l.games, id)
	return nil
}

// Len returns the number of stored games.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.games)
}

// List returns every entry, oldest first by UTCDate and UTCTime tags, with
// the GUID as the final tie-break.
func (l *Library) List() []Entry {
	l.mu.RLock()
	entries := make([]Entry, 0, len(l.games))
	for id, game := range l.games {
		entries = append(entries, Entry{ID: id, Game: game.Clone()})
	}
	l.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Game, entries[j].Game
		if x, y := a.Tag(chess.UTCDateTag), b.Tag(chess.UTCDateTag); x != y {
			return x < y
		}
		if x, y := a.Tag(chess.UTCTimeTag), b.Tag(chess.UTCTimeTag); x != y {
			return x < y
		}
		return entries[i].ID.String() < entries[j].ID.String()
	})
	return entries
}

// Summary describes the game stored under id in two lines: when it was
// played, then who played it and how it ended.
func (l *Library) Summary(id uuid.UUID) (string, error) {
	game, err := l.Get(id)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s \n %s - %s (%s)",
		game.Tag(chess.UTCDateTag), game.Tag(chess.UTCTimeTag),
		game.White(), game.Black(), game.Result()), nil
}

// LoadPGN reads games from r and adds every game that replays cleanly and
// whose final position was not seen before at the same ply. It returns the
// ids of the added games; games that fail to replay are reported together
// in the error while the rest are still added.
func (l *Library) LoadPGN(r io.Reader) ([]uuid.UUID, error) {
	games, err := pgn.ReadGames(r)
	if err != nil {
		return nil, err
	}

	var ids []uuid.UUID
	var errs []error
	for i, game := range games {
		g, err := replay.Replay(game, nil)
		if err != nil {
			var gerr *errors.GameError
			if stderrors.As(err, &gerr) {
				gerr.GameNum = i + 1
			}
			errs = append(errs, err)
			continue
		}
		g.LastPosition()
		if l.dups.CheckAndAdd(len(game.Moves), g.Board()) {
			continue
		}
		id, err := l.Add(game)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "game %d", i+1))
			continue
		}
		ids = append(ids, id)
	}
	return ids, stderrors.Join(errs...)
}
