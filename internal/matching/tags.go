package matching

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/lgbarn/rookworks-go/internal/chess"
	"github.com/lgbarn/rookworks-go/internal/engine"
)

// TagOperator represents comparison operators for tag matching.
type TagOperator int

const (
	OpNone TagOperator = iota
	OpEqual
	OpNotEqual
	OpLessThan
	OpLessOrEqual
	OpGreaterThan
	OpGreaterOrEqual
	OpContains // substring match
	OpRegex    // regex match
	OpSoundex  // soundex match for names
)

// playerTag is the pseudo tag that matches either player.
const playerTag = "_Player"

// TagCriterion represents a single tag matching criterion.
type TagCriterion struct {
	TagName  string
	Value    string
	Operator TagOperator
	regex    *regexp.Regexp
	soundex  string
	folded   string // foldName(Value), for OpContains
}

// TagMatcher provides tag-based game filtering.
type TagMatcher struct {
	criteria   []*TagCriterion
	useSoundex bool
	matchAll   bool // true = AND all criteria, false = OR
}

// NewTagMatcher creates a new tag matcher.
func NewTagMatcher() *TagMatcher {
	return &TagMatcher{matchAll: true}
}

// SetMatchAll sets whether all criteria must match (AND) or any (OR).
func (tm *TagMatcher) SetMatchAll(all bool) {
	tm.matchAll = all
}

// SetUseSoundex makes later player criteria compare by soundex.
func (tm *TagMatcher) SetUseSoundex(use bool) {
	tm.useSoundex = use
}

// foldName lowercases s and strips diacritics, so "Ljubojević" and
// "ljubojevic" compare equal.
func foldName(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// AddCriterion adds a tag matching criterion. Only OpRegex can fail.
func (tm *TagMatcher) AddCriterion(tagName, value string, op TagOperator) error {
	c := &TagCriterion{
		TagName:  tagName,
		Value:    value,
		Operator: op,
	}
	switch op {
	case OpRegex:
		re, err := regexp.Compile(value)
		if err != nil {
			return err
		}
		c.regex = re
	case OpSoundex:
		c.soundex = Soundex(value)
	case OpContains:
		c.folded = foldName(value)
	}
	tm.criteria = append(tm.criteria, c)
	return nil
}

// AddPlayerCriterion adds a criterion that matches either White or Black.
func (tm *TagMatcher) AddPlayerCriterion(playerName string) {
	op := OpContains
	if tm.useSoundex {
		op = OpSoundex
	}
	_ = tm.AddCriterion(playerTag, playerName, op)
}

// ParseCriterion parses a criterion line such as `Date >= "1990.01.01"` or
// `White ~ "^Carl"`. Blank lines and # comments are ignored.
func (tm *TagMatcher) ParseCriterion(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	tagEnd := strings.IndexAny(line, " \t<>=!~")
	if tagEnd == -1 {
		return nil
	}
	tagName := line[:tagEnd]
	rest := strings.TrimSpace(line[tagEnd:])

	op := OpEqual
	for _, p := range []struct {
		prefix string
		op     TagOperator
	}{
		{"<=", OpLessOrEqual},
		{">=", OpGreaterOrEqual},
		{"<>", OpNotEqual},
		{"!=", OpNotEqual},
		{"<", OpLessThan},
		{">", OpGreaterThan},
		{"=", OpEqual},
		{"~", OpRegex},
	} {
		if strings.HasPrefix(rest, p.prefix) {
			op = p.op
			rest = rest[len(p.prefix):]
			break
		}
	}

	value := strings.TrimSpace(rest)
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		value = value[1 : len(value)-1]
	}
	return tm.AddCriterion(tagName, value, op)
}

// MatchGame checks if the game's tags satisfy the criteria.
func (tm *TagMatcher) MatchGame(data *chess.GameData) bool {
	if len(tm.criteria) == 0 {
		return true
	}
	for _, c := range tm.criteria {
		ok := tm.matchCriterion(data, c)
		if tm.matchAll && !ok {
			return false
		}
		if !tm.matchAll && ok {
			return true
		}
	}
	return tm.matchAll
}

// Match implements GameMatcher.
func (tm *TagMatcher) Match(data *chess.GameData, _ *engine.Game) bool {
	return tm.MatchGame(data)
}

// Name implements GameMatcher.
func (tm *TagMatcher) Name() string {
	return "TagMatcher"
}

func (tm *TagMatcher) matchCriterion(data *chess.GameData, c *TagCriterion) bool {
	if c.TagName == playerTag {
		return matchValue(data.White(), c) || matchValue(data.Black(), c)
	}
	if !data.HasTag(c.TagName) {
		return c.Operator == OpNotEqual
	}
	return matchValue(data.Tag(c.TagName), c)
}

// matchValue compares a tag value against a criterion.
func matchValue(tagValue string, c *TagCriterion) bool {
	switch c.Operator {
	case OpNone, OpEqual:
		return strings.EqualFold(tagValue, c.Value)
	case OpNotEqual:
		return !strings.EqualFold(tagValue, c.Value)
	case OpContains:
		return strings.Contains(foldName(tagValue), c.folded)
	case OpRegex:
		return c.regex != nil && c.regex.MatchString(tagValue)
	case OpSoundex:
		return Soundex(tagValue) == c.soundex
	case OpLessThan, OpLessOrEqual, OpGreaterThan, OpGreaterOrEqual:
		return compareOrdered(compareValues(tagValue, c.Value), c.Operator)
	}
	return false
}

// compareValues orders two tag values as dates (YYYY.MM.DD), then as
// numbers, then as case-insensitive strings.
func compareValues(a, b string) int {
	if da, db := parseDate(a), parseDate(b); da > 0 && db > 0 {
		return cmpInt(da, db)
	}
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		switch {
		case fa < fb:
			return -1
		case fa > fb:
			return 1
		}
		return 0
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func compareOrdered(cmp int, op TagOperator) bool {
	switch op {
	case OpLessThan:
		return cmp < 0
	case OpLessOrEqual:
		return cmp <= 0
	case OpGreaterThan:
		return cmp > 0
	case OpGreaterOrEqual:
		return cmp >= 0
	}
	return false
}

// parseDate encodes a YYYY.MM.DD date as YYYYMMDD. Unknown month and day
// fields ("??") count as 1. It returns 0 if the year is not a number.
func parseDate(s string) int {
	parts := strings.Split(s, ".")
	year, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || year < 100 || year > 3000 {
		return 0
	}

	month, day := 1, 1
	if len(parts) >= 2 {
		if m, err := strconv.Atoi(strings.TrimSpace(parts[1])); err == nil && m >= 1 && m <= 12 {
			month = m
		}
	}
	if len(parts) >= 3 {
		if d, err := strconv.Atoi(strings.TrimSpace(parts[2])); err == nil && d >= 1 && d <= 31 {
			day = d
		}
	}
	return year*10000 + month*100 + day
}

// CriteriaCount returns the number of criteria.
func (tm *TagMatcher) CriteriaCount() int {
	return len(tm.criteria)
}
