package matching

import (
	"strings"
	"unicode"
)

// soundexLength is the length of a code, first letter included.
const soundexLength = 6

// soundexDigit groups consonants that sound alike. Vowels and other
// letters map to 0. The groups are wide enough that common
// spellings of player names agree (Fischer, Fisher).
func soundexDigit(r rune) byte {
	switch r {
	case 'B', 'F', 'P', 'V', 'W':
		return '1'
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return '2'
	case 'D', 'T':
		return '3'
	case 'L':
		return '4'
	case 'M', 'N':
		return '5'
	case 'R':
		return '6'
	}
	return '0'
}

// Soundex returns the sound code of a player name, or "" if the name has
// no letters.
func Soundex(name string) string {
	letters := make([]rune, 0, len(name))
	for _, r := range strings.ToUpper(name) {
		if unicode.IsLetter(r) {
			letters = append(letters, r)
		}
	}
	if len(letters) == 0 {
		return ""
	}

	code := []byte(string(letters[0]))
	last := soundexDigit(letters[0])
	for _, r := range letters[1:] {
		if len(code) >= soundexLength {
			break
		}
		d := soundexDigit(r)
		if d != '0' && d != last {
			code = append(code, d)
		}
		if d != '0' {
			last = d
		}
	}
	for len(code) < soundexLength {
		code = append(code, '0')
	}
	return string(code)
}

// SoundexMatch checks if two names match via soundex.
func SoundexMatch(name1, name2 string) bool {
	return Soundex(name1) == Soundex(name2)
}
