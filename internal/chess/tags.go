package chess

// Names of the tags the engine and its tools read or write.
const (
	EventTag   = "Event"
	SiteTag    = "Site"
	DateTag    = "Date"
	RoundTag   = "Round"
	WhiteTag   = "White"
	BlackTag   = "Black"
	ResultTag  = "Result"
	FENTag     = "FEN"
	SetupTag   = "SetUp"
	UTCDateTag = "UTCDate"
	UTCTimeTag = "UTCTime"

	// GUIDTag identifies a game stored in a library.
	GUIDTag = "GUID"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// Game results as they appear in the Result tag and at the end of move text.
const (
	WhiteWinResult = "1-0"
	BlackWinResult = "0-1"
	DrawResult     = "1/2-1/2"
	UnknownResult  = "*"
)
