package usecase

import (
	"fmt"
	"strings"
)

// minutesOfDay converts a zero-padded HH:MM string to minutes since
// midnight. Inputs are trusted (already validated or produced here).
func minutesOfDay(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	var h, m int
	fmt.Sscanf(parts[0], "%d", &h)
	fmt.Sscanf(parts[1], "%d", &m)
	return h*60 + m
}

func clockOfMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// extractJSONBlock returns the first balanced {...} block in s, or ""
// when no balanced block exists. Brace counting ignores braces inside
// JSON string literals.
func extractJSONBlock(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[start : i+1]
				}
			}
		}
	}
	return ""
}
