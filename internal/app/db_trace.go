package app

import (
	"strings"
	"unicode/utf8"
)

const maxTracedQueryRunes = 512

// traceQuery puts a query on one line for span attributes: line comments are
// dropped, whitespace collapses and long statements are cut at a rune boundary.
func traceQuery(query string) string {
	lines := strings.Split(query, "\n")
	for i, line := range lines {
		if idx := strings.Index(line, "--"); idx >= 0 {
			lines[i] = line[:idx]
		}
	}
	oneLine := strings.Join(strings.Fields(strings.Join(lines, " ")), " ")
	if utf8.RuneCountInString(oneLine) <= maxTracedQueryRunes {
		return oneLine
	}
	return string([]rune(oneLine)[:maxTracedQueryRunes]) + "..."
}
