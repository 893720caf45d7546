package model

import (
	"strings"
	"time"
)

// OriginalPrefix tags an item as the pre-conversion companion of the entry
// that currently sits at the front of the store.
const OriginalPrefix = "Original :: "

// Item is one stored clipboard entry.
//
// The JSON field names are a persistence contract: items.json must round-trip
// through a read-modify-write cycle without changing meaning, including files
// written by older revisions where "title" may be absent.
type Item struct {
	Text     string `json:"text"`
	Date     int64  `json:"date"`
	NumLines int    `json:"num_lines"`
	Title    string `json:"title,omitempty"`
}

func NewItem(text string, now time.Time) Item {
	return Item{
		Text:     text,
		Date:     now.Unix(),
		NumLines: LineCount(text),
	}
}

// LineCount is the number of newline characters plus one.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}

// IsOriginal reports whether the item holds pre-conversion companion text.
func (it Item) IsOriginal() bool {
	return strings.HasPrefix(it.Text, OriginalPrefix)
}

// IsBareURL reports whether text is a lone http(s) URL rather than a URL
// embedded in prose. Whitespace anywhere disqualifies it.
func IsBareURL(text string) bool {
	if !strings.HasPrefix(text, "https://") && !strings.HasPrefix(text, "http://") {
		return false
	}
	return !strings.ContainsFunc(text, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
