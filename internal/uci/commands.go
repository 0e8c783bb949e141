// Package uci builds and reads the text of the Universal Chess Interface
// protocol. It does no process I/O: callers send the commands to an engine
// and feed the engine's output lines back in.
package uci

import (
	"fmt"
	"strings"

	"github.com/lgbarn/rookworks-go/internal/config"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// PositionCommand returns the "position" command for a game that started
// at startFEN and continued with the coordinate moves. An empty startFEN
// means the standard starting position.
func PositionCommand(startFEN string, moves []string) string {
	var sb strings.Builder
	if startFEN == "" || startFEN == engine.InitialFEN {
		sb.WriteString("position startpos")
	} else {
		sb.WriteString("position fen ")
		sb.WriteString(startFEN)
	}
	if len(moves) > 0 {
		sb.WriteString(" moves ")
		sb.WriteString(strings.Join(moves, " "))
	}
	return sb.String()
}

// GoCommand returns the "go" command limited by depth and/or move time.
// With neither limit the search is infinite.
func GoCommand(depth, moveTimeMs int) string {
	cmd := "go"
	if depth > 0 {
		cmd += fmt.Sprintf(" depth %d", depth)
	}
	if moveTimeMs > 0 {
		cmd += fmt.Sprintf(" movetime %d", moveTimeMs)
	}
	if cmd == "go" {
		cmd += " infinite"
	}
	return cmd
}

// SetOptionCommands returns one "setoption" command per engine setting.
// UCI_Elo is only sent when strength is limited.
func SetOptionCommands(s *config.EngineSettings) []string {
	cmds := []string{
		setOption("Threads", s.Threads),
		setOption("Hash", s.Hash),
		setOption("MultiPV", s.MultiPV),
		setOption("Skill Level", s.SkillLevel),
		setOption("Move Overhead", s.MoveOverhead),
		setOption("UCI_LimitStrength", s.LimitStrength),
	}
	if s.LimitStrength {
		cmds = append(cmds, setOption("UCI_Elo", s.Elo))
	}
	return cmds
}

func setOption(name string, value any) string {
	return fmt.Sprintf("setoption name %s value %v", name, value)
}
