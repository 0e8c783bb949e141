package config

// MoveFormat selects the notation used when printing moves.
type MoveFormat int

const (
	SAN MoveFormat = iota // Standard Algebraic Notation (Nf3)
	UCI                   // Coordinate notation (g1f3)
)

// String returns the flag spelling of the format.
func (f MoveFormat) String() string {
	if f == UCI {
		return "uci"
	}
	return "san"
}

// ParseMoveFormat converts a flag value to a MoveFormat.
func ParseMoveFormat(s string) (MoveFormat, bool) {
	switch s {
	case "san", "SAN":
		return SAN, true
	case "uci", "UCI", "lalg":
		return UCI, true
	}
	return SAN, false
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format is the notation for move lists in text output.
	Format MoveFormat

	// JSONFormat enables JSON output instead of text.
	JSONFormat bool

	// IncludeFEN adds the position after every ply to JSON output.
	IncludeFEN bool

	// ParquetPath, when set, receives one row per replayed ply.
	ParquetPath string

	// ShowBoard draws the final position of each game.
	ShowBoard bool

	// Colour enables ANSI colours in board drawings.
	Colour bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format:     SAN,
		IncludeFEN: true,
		Colour:     true,
	}
}
