package source

import (
	"errors"
	"strings"
)

var errBadCrateList = errors.New("bad crate list")

// ParseCrateList reads a crate list stored as a bracketed list of quoted strings,
// e.g. ['Chroma Case', "Operation Bravo Case"]. Anything that is not such a
// list (empty cell, bare text, unterminated quote) yields an empty list and ok=false
// unless the cell was simply blank.
func ParseCrateList(raw string) (crates []string, ok bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return []string{}, true
	}
	if !strings.HasPrefix(s, "[") {
		return []string{}, false
	}

	out, err := scanCrateList(s)
	if err != nil {
		return []string{}, false
	}
	return out, true
}

func scanCrateList(s string) ([]string, error) {
	out := []string{}
	i := 1 // past '['
	expectItem := true

	for i < len(s) {
		switch c := s[i]; {
		case c == ' ' || c == '\t':
			i++
		case c == ']':
			if strings.TrimSpace(s[i+1:]) != "" {
				return nil, errBadCrateList
			}
			return out, nil
		case c == ',':
			if expectItem {
				return nil, errBadCrateList
			}
			expectItem = true
			i++
		case c == '\'' || c == '"':
			if !expectItem {
				return nil, errBadCrateList
			}
			str, next, err := scanQuoted(s, i)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
			expectItem = false
			i = next
		default:
			return nil, errBadCrateList
		}
	}
	return nil, errBadCrateList
}

// scanQuoted reads the quoted string starting at s[start] and returns it with
// the index just past the closing quote. Backslash escapes the next byte.
func scanQuoted(s string, start int) (string, int, error) {
	quote := s[start]
	var b strings.Builder
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			if i+1 >= len(s) {
				return "", 0, errBadCrateList
			}
			i++
			b.WriteByte(s[i])
		case quote:
			return b.String(), i + 1, nil
		default:
			b.WriteByte(s[i])
		}
	}
	return "", 0, errBadCrateList
}
