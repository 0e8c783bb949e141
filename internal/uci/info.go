package uci

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
	"github.com/lgbarn/rookworks-go/internal/errors"
)

// Evaluation is the running result of an engine search.
type Evaluation struct {
	Score    int // centipawns, from the side to move
	IsMate   bool
	MateIn   int // negative when the side to move is being mated
	Depth    int
	BestMove string
}

// MoveInfo is one "info" line that carries a principal variation.
type MoveInfo struct {
	Depth   int
	MultiPV int
	Score   int
	IsMate  bool
	MateIn  int
	PV      []string
}

// Move returns the first move of the principal variation.
func (m MoveInfo) Move() string {
	if len(m.PV) == 0 {
		return ""
	}
	return m.PV[0]
}

// ParseInfo updates eval from an "info" line. Fields absent from the line
// keep their previous values.
func ParseInfo(line string, eval *Evaluation) {
	fields := strings.Fields(line)
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			if n, ok := intAt(fields, i+1); ok {
				eval.Depth = n
				i++
			}
		case "score":
			if i+2 >= len(fields) {
				continue
			}
			n, ok := intAt(fields, i+2)
			if !ok {
				continue
			}
			switch fields[i+1] {
			case "cp":
				eval.Score = n
				eval.IsMate = false
				eval.MateIn = 0
			case "mate":
				eval.IsMate = true
				eval.MateIn = n
			}
			i += 2
		case "pv":
			if i+1 < len(fields) {
				eval.BestMove = fields[i+1]
			}
			return
		}
	}
}

// ParseInfoLine reads an "info" line with a score and a principal
// variation. Other lines, such as "info string", report false.
func ParseInfoLine(line string) (MoveInfo, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != "info" {
		return MoveInfo{}, false
	}

	info := MoveInfo{MultiPV: 1}
	scored := false
	for i := 1; i < len(fields); i++ {
		switch fields[i] {
		case "string":
			return MoveInfo{}, false
		case "depth":
			if n, ok := intAt(fields, i+1); ok {
				info.Depth = n
				i++
			}
		case "multipv":
			if n, ok := intAt(fields, i+1); ok {
				info.MultiPV = n
				i++
			}
		case "score":
			if i+2 >= len(fields) {
				continue
			}
			n, ok := intAt(fields, i+2)
			if !ok {
				continue
			}
			switch fields[i+1] {
			case "cp":
				info.Score = n
				scored = true
			case "mate":
				info.IsMate = true
				info.MateIn = n
				scored = true
			}
			i += 2
		case "pv":
			info.PV = append([]string(nil), fields[i+1:]...)
			i = len(fields)
		}
	}
	if !scored || len(info.PV) == 0 {
		return MoveInfo{}, false
	}
	return info, true
}

func intAt(fields []string, i int) (int, bool) {
	if i >= len(fields) {
		return 0, false
	}
	n, err := strconv.Atoi(fields[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseBestMove reads a "bestmove" line. An engine with no move to play
// answers "bestmove (none)", which reports false.
func ParseBestMove(line string) (best, ponder string, ok bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != "bestmove" || fields[1] == "(none)" {
		return "", "", false
	}
	if len(fields) >= 4 && fields[2] == "ponder" {
		ponder = fields[3]
	}
	return fields[1], ponder, true
}

// ExtractMove returns the move an engine line proposes: the best move of a
// "bestmove" line or the first move of an "info" line's variation.
func ExtractMove(line string) (string, bool) {
	if best, _, ok := ParseBestMove(line); ok {
		return best, true
	}
	if info, ok := ParseInfoLine(line); ok {
		return info.Move(), true
	}
	return "", false
}

// ValidateMove extracts the move from an engine line and checks it is
// legal in the game's current position.
func ValidateMove(g *engine.Game, line string) (chess.Move, error) {
	text, ok := ExtractMove(line)
	if !ok {
		return chess.Move{}, &errors.ParseError{Err: errors.ErrParseFailure, Expected: "engine move", Got: strconv.Quote(line)}
	}
	move, err := chess.ParseMove(text)
	if err != nil {
		return chess.Move{}, err
	}
	if !g.IsLegalMove(text) {
		return chess.Move{}, errors.Wrapf(errors.ErrIllegalMove, "engine move %s", text)
	}
	return move, nil
}

// FormatEvaluation renders eval in pawns ("+1.23") or as a mate distance
// ("-M3").
func FormatEvaluation(eval *Evaluation) string {
	if eval.IsMate {
		if eval.MateIn < 0 {
			return fmt.Sprintf("-M%d", -eval.MateIn)
		}
		return fmt.Sprintf("+M%d", eval.MateIn)
	}
	sign := "+"
	score := eval.Score
	if score < 0 {
		sign = "-"
		score = -score
	}
	return fmt.Sprintf("%s%d.%02d", sign, score/100, score%100)
}
