package utils

import (
	"strconv"
	"strings"
	"unicode"
)

// ParsePositiveInt reads the leading integer of raw the way a browser's
// parseInt does ("12abc" -> 12, " 7" -> 7, "3.9" -> 3) and reports whether
// it is a positive value. Anything else, including overflow, is rejected.
func ParsePositiveInt(raw string) (int, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	if s == "" {
		return 0, false
	}

	sign := ""
	if s[0] == '+' || s[0] == '-' {
		sign = s[:1]
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(sign + s[:end])
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
