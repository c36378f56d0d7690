package gcode

import (
	"strconv"
	"strings"
)

// Param is one labelled numeric field extracted from a command line.
type Param struct {
	Letter  byte
	Value   float64
	Present bool
}

// ParseParam extracts the number following the first standalone occurrence
// of letter in line. The letter counts as standalone only when preceded by
// start-of-line or a space, so F never matches inside an unrelated word.
// Parsing is permissive: the scan stops at the first character that is not
// a digit, sign or decimal point, and anything without digits (including a
// letter that never occurs) yields Present=false rather than an error.
// Optional parameters are the G-code norm, so absence is not a fault here.
func ParseParam(line string, letter byte) Param {
	for i := 0; i < len(line); i++ {
		if line[i] != letter {
			continue
		}
		if i > 0 && line[i-1] != ' ' {
			continue
		}
		v, ok := scanNumber(line[i+1:])
		if !ok {
			return Param{Letter: letter}
		}
		return Param{Letter: letter, Value: v, Present: true}
	}
	return Param{Letter: letter}
}

// scanNumber reads a signed decimal prefix of s. Trailing garbage
// truncates the number; no digits at all means no number.
func scanNumber(s string) (float64, bool) {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	digits := false
	dot := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			digits = true
			i++
			continue
		}
		if c == '.' && !dot {
			dot = true
			i++
			continue
		}
		break
	}
	if !digits {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s[:i], "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// normalize prepares a raw line for classification: comment stripped,
// whitespace trimmed, uppercased. An empty result means nothing to do.
func normalize(line string) string {
	if i := strings.IndexByte(line, ';'); i >= 0 {
		line = line[:i]
	}
	return strings.ToUpper(strings.TrimSpace(line))
}
