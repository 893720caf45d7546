// Package trim cleans raw clipboard text before storage.
package trim

import (
	"strings"

	"clipton/internal/store"
)

// Trim applies the line-count-aware whitespace policy. Single-line and
// multi-line text use independent flag pairs; with both relevant flags off the
// text passes through unchanged. The multi-line defaults keep left trimming
// off so pasted code retains its indentation.
func Trim(text string, cfg store.Settings) string {
	left, right := cfg.TrimLeftSingle, cfg.TrimRightSingle
	if strings.Contains(text, "\n") {
		left, right = cfg.TrimLeftMulti, cfg.TrimRightMulti
	}
	if left {
		text = strings.TrimLeft(text, " \t\n\r")
	}
	if right {
		text = strings.TrimRight(text, " \t\n\r")
	}
	return text
}
