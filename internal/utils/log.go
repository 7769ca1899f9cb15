package utils

import "strings"

// TruncateForLog collapses whitespace runs into single spaces and shortens the
// result to limit runes, appending an ellipsis when truncated. Job
// descriptions are multi-line, so previews must fit on one log line.
func TruncateForLog(s string, limit int) string {
	if limit <= 0 {
		return ""
	}

	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
