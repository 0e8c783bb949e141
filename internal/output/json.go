package output

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/config"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	Tags       map[string]string `json:"tags"`
	Moves      []JSONMove        `json:"moves,omitempty"`
	Result     string            `json:"result"`
	PlyCount   int               `json:"plyCount"`
	InitialFEN string            `json:"initialFEN"`
	FinalFEN   string            `json:"finalFEN"`
	Status     string            `json:"status"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"` // "white" or "black"
	SAN        string `json:"san"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a replayed game to JSON format. Status is judged on
// the final position.
func GameToJSON(data *chess.GameData, g *engine.Game) *JSONGame {
	plies, final := walkPlies(g)

	jg := &JSONGame{
		Tags:       copyTags(data.Tags),
		Moves:      make([]JSONMove, 0, len(plies)),
		PlyCount:   len(plies),
		InitialFEN: g.History()[0],
		FinalFEN:   engine.BoardToFEN(final),
		Status:     engine.Status(final).String(),
		Result:     gameResult(data, final),
	}
	for _, p := range plies {
		jg.Moves = append(jg.Moves, convertPly(p))
	}
	return jg
}

// copyTags copies game tags and ensures seven tag roster has values.
func copyTags(tags map[string]string) map[string]string {
	result := make(map[string]string, len(tags)+len(chess.SevenTagRoster))
	for k, v := range tags {
		result[k] = v
	}
	for _, tag := range chess.SevenTagRoster {
		if _, ok := result[tag]; !ok {
			result[tag] = "?"
		}
	}
	return result
}

func convertPly(p Ply) JSONMove {
	jm := JSONMove{
		MoveNumber: p.MoveNumber,
		Color:      strings.ToLower(p.Colour.String()),
		SAN:        p.SAN,
		UCI:        p.Move.String(),
		From:       p.Move.From.String(),
		To:         p.Move.To.String(),
		Piece:      pieceTypeName(p.Piece),
		Captured:   pieceTypeName(p.Captured),
		FEN:        p.FEN,
	}
	if p.Move.IsPromotion() {
		jm.Promotion = pieceTypeName(p.Move.Promotion)
	}
	return jm
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.PieceType) string {
	if p == chess.NoPieceType {
		return ""
	}
	return strings.ToLower(p.String())
}

// OutputGameJSON writes a single game to cfg.OutputFile.
func OutputGameJSON(data *chess.GameData, g *engine.Game, cfg *config.Config) error {
	jg := GameToJSON(data, g)
	if !cfg.Output.IncludeFEN {
		stripFEN(jg)
	}
	enc := json.NewEncoder(cfg.OutputFile)
	enc.SetIndent("", "  ")
	return enc.Encode(jg)
}

// WriteGamesJSON writes games as a JSON object holding a "games" array.
func WriteGamesJSON(w io.Writer, games []*JSONGame) error {
	if games == nil {
		games = []*JSONGame{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&JSONOutput{Games: games})
}

// stripFEN drops the per-move positions.
func stripFEN(jg *JSONGame) {
	for i := range jg.Moves {
		jg.Moves[i].FEN = ""
	}
}
