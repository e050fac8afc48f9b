// Package words splits Go identifiers into words and derives snake_case
// names from them. It backs the default output file naming, where the
// generated file for type HTTPStatus becomes http_status_caseiter.go.
package words

import (
	"strings"
)

// Snake converts an identifier into snake_case. Words detected by Split are
// lowercased and joined with underscores; underscore runs in the input
// collapse into single separators, and digit groups stick to the word before
// them ("ISO8601" stays "iso8601", not "iso_8601").
func Snake(s string) string {
	var b strings.Builder
	for _, w := range Split(s) {
		if strings.Trim(w, "_") == "" {
			continue
		}
		if b.Len() > 0 && !(w[0] >= '0' && w[0] <= '9') {
			b.WriteByte('_')
		}
		b.WriteString(strings.ToLower(w))
	}
	return b.String()
}

// Split splits an identifier into words based on character transitions. It
// detects word boundaries at:
//   - Uppercase letter after lowercase letter: "getID" -> "get" + "ID"
//   - Around underscores: "send_nowait" -> "send" + "_" + "nowait"
//   - Around digits: "file2name" -> "file" + "2" + "name"
func Split(s string) []string {
	var words []string
	i := 0
	for i < len(s) {
		splitted := false

		j := i + 1
		for ; j < len(s); j++ {
			var next byte
			if j != len(s)-1 {
				next = s[j+1]
			}

			if isWordBoundary(s[j-1], s[j], next) {
				words = append(words, s[i:j])
				i = j
				splitted = true
				break
			}
		}

		if !splitted {
			words = append(words, s[i:])
			break
		}
	}
	return words
}

// isWordBoundary detects word boundaries based on character transitions.
func isWordBoundary(prev, curr, next byte) bool {
	// Uppercase after lowercase (camelCase transition)
	if prev >= 'a' && prev <= 'z' && curr >= 'A' && curr <= 'Z' {
		return true
	}
	// Uppercase before lowercase (camelCase transition)
	if curr >= 'A' && curr <= 'Z' && next >= 'a' && next <= 'z' {
		return true
	}

	// Underscore after non-underscore
	if prev != '_' && curr == '_' {
		return true
	}
	// Non-underscore after underscore
	if prev == '_' && curr != '_' {
		return true
	}

	// Digit after letter
	if (prev >= 'a' && prev <= 'z' || prev >= 'A' && prev <= 'Z') && (curr >= '0' && curr <= '9') {
		return true
	}
	// Letter after digit
	if (prev >= '0' && prev <= '9') && (curr >= 'a' && curr <= 'z' || curr >= 'A' && curr <= 'Z') {
		return true
	}

	return false
}
