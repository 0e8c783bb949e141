// Package pgn splits PGN text into games: tag pairs plus the algebraic move
// tokens of the main line.
package pgn

import (
	"bufio"
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/errors"
)

var (
	gameSplitRe   = regexp.MustCompile(`\r?\n[ \t]*\r?\n[ \t]*\r?\n`)
	tagRe         = regexp.MustCompile(`^\[(\w+)\s+"((?:[^"\\]|\\.)*)"\s*\]`)
	commentRe     = regexp.MustCompile(`\{[^}]*\}`)
	lineCommentRe = regexp.MustCompile(`;[^\n]*`)
	variationRe   = regexp.MustCompile(`\([^()]*\)`)
	nagRe         = regexp.MustCompile(`\$\d+`)
	moveNumberRe  = regexp.MustCompile(`\d+\.+`)
)

// results are the game termination markers removed from move text.
var results = map[string]bool{
	chess.WhiteWinResult: true,
	chess.BlackWinResult: true,
	chess.DrawResult:     true,
	chess.UnknownResult:  true,
}

// ParseGames splits text into games. Games are separated by two consecutive
// blank lines; a tag line following move text also starts a new game.
// Malformed tag lines are ignored. Blocks with neither tags nor moves
// produce no game.
func ParseGames(text string) []*chess.GameData {
	var games []*chess.GameData
	for _, block := range gameSplitRe.Split(strings.TrimSpace(text), -1) {
		games = append(games, parseBlock(block)...)
	}
	return games
}

// parseBlock parses one block, which may hold several games written with
// single blank lines between them.
func parseBlock(block string) []*chess.GameData {
	var games []*chess.GameData
	var moveText strings.Builder
	game := chess.NewGameData()
	inMoves := false

	flush := func() {
		game.Moves = parseMoves(moveText.String())
		if len(game.Tags) > 0 || len(game.Moves) > 0 {
			games = append(games, game)
		}
		game = chess.NewGameData()
		moveText.Reset()
		inMoves = false
	}

	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case line == "" || strings.HasPrefix(line, "%"):
			continue
		case strings.HasPrefix(line, "["):
			if inMoves {
				flush()
			}
			if m := tagRe.FindStringSubmatch(line); m != nil {
				game.SetTag(m[1], unescape(m[2]))
			}
		default:
			inMoves = true
			moveText.WriteString(line)
			moveText.WriteByte('\n')
		}
	}
	flush()
	return games
}

// parseMoves cleans move text of comments, variations, annotation glyphs,
// move numbers and results, and splits the rest on whitespace.
func parseMoves(text string) []string {
	cleaned := commentRe.ReplaceAllString(text, " ")
	cleaned = lineCommentRe.ReplaceAllString(cleaned, " ")
	for variationRe.MatchString(cleaned) {
		cleaned = variationRe.ReplaceAllString(cleaned, " ")
	}
	cleaned = nagRe.ReplaceAllString(cleaned, " ")
	cleaned = moveNumberRe.ReplaceAllString(cleaned, " ")

	var moves []string
	for _, token := range strings.Fields(cleaned) {
		if results[token] {
			continue
		}
		moves = append(moves, token)
	}
	return moves
}

func unescape(value string) string {
	if !strings.Contains(value, `\`) {
		return value
	}
	return strings.NewReplacer(`\"`, `"`, `\\`, `\`).Replace(value)
}

// ReadGames reads PGN text from r and parses it. Input is taken as UTF-8
// (a leading byte order mark is dropped); input that is not valid UTF-8 is
// decoded as ISO-8859-1, the traditional PGN character set.
func ReadGames(r io.Reader) ([]*chess.GameData, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, errors.Wrap(err, "reading PGN")
	}
	text, err := decode(data)
	if err != nil {
		return nil, err
	}
	return ParseGames(text), nil
}

func decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte{0xEF, 0xBB, 0xBF})
	if utf8.Valid(data) {
		return string(data), nil
	}
	reader := transform.NewReader(bytes.NewReader(data), charmap.ISO8859_1.NewDecoder())
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", &errors.ParseError{Err: errors.ErrParseFailure, Expected: "ISO-8859-1 text", Got: err.Error()}
	}
	return string(decoded), nil
}
