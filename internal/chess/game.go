package chess

import "golang.org/x/exp/maps"

// GameData is a parsed PGN game: its tag pairs and the algebraic move tokens
// of the main line, in order.
type GameData struct {
	// Tags for this game (e.g., Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// Move tokens as they appeared in the move text, e.g. "Nf3", "exd5", "O-O".
	Moves []string
}

// NewGameData creates a new empty game.
func NewGameData() *GameData {
	return &GameData{
		Tags: make(map[string]string),
	}
}

// Tag returns a tag value, or empty string if not present.
func (g *GameData) Tag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *GameData) SetTag(name, value string) {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *GameData) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// White returns the White player name.
func (g *GameData) White() string {
	return g.Tag(WhiteTag)
}

// Black returns the Black player name.
func (g *GameData) Black() string {
	return g.Tag(BlackTag)
}

// Result returns the game result.
func (g *GameData) Result() string {
	return g.Tag(ResultTag)
}

// FEN returns the FEN string if present.
func (g *GameData) FEN() string {
	return g.Tag(FENTag)
}

// GUID returns the library identifier of the game, if assigned.
func (g *GameData) GUID() string {
	return g.Tag(GUIDTag)
}

// PlyCount returns the number of half-moves in the game.
func (g *GameData) PlyCount() int {
	return len(g.Moves)
}

// Clone returns a copy that shares no mutable state with g.
func (g *GameData) Clone() *GameData {
	clone := &GameData{
		Tags:  make(map[string]string, len(g.Tags)),
		Moves: append([]string(nil), g.Moves...),
	}
	maps.Copy(clone.Tags, g.Tags)
	return clone
}
