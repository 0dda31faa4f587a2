package core

import (
	"strings"
	"unicode"
)

const ellipsis = "..."

// Truncate trims s and, if it is longer than max runes, cuts it to max-3
// runes followed by an ellipsis. A negative cut length is treated as zero,
// so very small limits return just the ellipsis.
func Truncate(s string, max int) string {
	trimmed := strings.TrimSpace(s)
	runes := []rune(trimmed)
	if len(runes) <= max {
		return trimmed
	}
	keep := max - len(ellipsis)
	if keep < 0 {
		keep = 0
	}
	return strings.TrimRightFunc(string(runes[:keep]), unicode.IsSpace) + ellipsis
}
