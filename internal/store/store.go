package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"clipton/internal/model"
)

const itemsFileName = "items.json"

// Store owns the persisted item list. The whole list is loaded at the start of
// an invocation and written back in full after each mutation. There is no
// cross-process lock: a watcher and a picker racing to persist can lose one
// update. Writes are atomic (temp file + rename) so a reader never observes a
// torn file, but last-writer-wins is an accepted limitation.
type Store struct {
	Dir string

	// Log, when non-nil, receives an audit record for each mutation.
	Log *ClipLog
}

// List is the in-memory ordered item sequence. Index 0 is most recently used.
type List struct {
	Items []model.Item
}

func (s Store) Ensure() error {
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) itemsPath() string {
	return filepath.Join(s.Dir, itemsFileName)
}

// Load reads items.json. A missing or empty file yields an empty list; a
// malformed file fails closed with a clear error rather than silently
// discarding history.
func (s Store) Load() (*List, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.itemsPath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &List{}, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return &List{}, nil
	}
	var items []model.Item
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("items file %s is corrupt: %w", s.itemsPath(), err)
	}
	return &List{Items: items}, nil
}

// Save writes the full snapshot. Persistence failures are fatal to the caller;
// no partial-state recovery is attempted.
func (s Store) Save(l *List) error {
	if err := s.Ensure(); err != nil {
		return err
	}
	items := l.Items
	if items == nil {
		items = []model.Item{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return atomicWriteFile(s.Dir, itemsFileName+".*.tmp", s.itemsPath(), b, 0o644)
}

// LogAppend records a mutation in the audit log when enabled. Best effort:
// the log is diagnostics, not the source of truth.
func (s Store) LogAppend(op, text string) {
	if s.Log == nil {
		return
	}
	if err := s.Log.Append(op, text); err != nil {
		log.Printf("clip log: %v", err)
	}
}

func (l *List) Len() int { return len(l.Items) }

func (l *List) At(i int) (model.Item, bool) {
	if i < 0 || i >= len(l.Items) {
		return model.Item{}, false
	}
	return l.Items[i], true
}

// indexOf finds the item with exactly equal text (case-sensitive, including
// internal newlines).
func (l *List) indexOf(text string) int {
	for i := range l.Items {
		if l.Items[i].Text == text {
			return i
		}
	}
	return -1
}

// Add inserts text at the front of the list.
//
// Rejections are silent no-ops returning false: empty text, file:// URIs, and
// heavy pastes over the configured character threshold. If an equal-text item
// already exists it is removed first; the re-added item is structurally fresh
// (new timestamp, empty title). The list is then truncated from the tail to
// MaxItems.
func (l *List) Add(text string, now time.Time, cfg Settings) bool {
	if text == "" {
		return false
	}
	if strings.HasPrefix(text, "file://") {
		return false
	}
	// The threshold is in characters, so multi-byte text is measured in runes.
	if cfg.HeavyPaste > 0 && utf8.RuneCountInString(text) > cfg.HeavyPaste {
		return false
	}

	if i := l.indexOf(text); i >= 0 {
		l.Items = append(l.Items[:i], l.Items[i+1:]...)
	}

	l.Items = append([]model.Item{model.NewItem(text, now)}, l.Items...)
	if cfg.MaxItems > 0 && len(l.Items) > cfg.MaxItems {
		l.Items = l.Items[:cfg.MaxItems]
	}
	return true
}

// Delete removes the item at index i. Out-of-range indexes are ignored.
func (l *List) Delete(i int) bool {
	if i < 0 || i >= len(l.Items) {
		return false
	}
	l.Items = append(l.Items[:i], l.Items[i+1:]...)
	return true
}

func (l *List) DeleteAll() {
	l.Items = nil
}

// Join concatenates the count items starting at start with single spaces,
// removes them from the list, and re-adds the joined text as a new front item
// (subject to the same Add rejections). Concatenation follows store order, or
// reverse store order when reverse is set. Returns the joined text and whether
// the Add succeeded.
func (l *List) Join(start, count int, reverse bool, now time.Time, cfg Settings) (string, bool) {
	if start < 0 || count < 2 || start+count > len(l.Items) {
		return "", false
	}

	parts := make([]string, 0, count)
	for i := start; i < start+count; i++ {
		parts = append(parts, strings.TrimSpace(l.Items[i].Text))
	}
	if reverse {
		for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
			parts[i], parts[j] = parts[j], parts[i]
		}
	}
	joined := strings.Join(parts, " ")

	l.Items = append(l.Items[:start], l.Items[start+count:]...)
	return joined, l.Add(joined, now, cfg)
}

// Cleanup drops any original-companion item that is no longer the second
// entry. At most one companion is kept, and only while it sits directly behind
// its converted counterpart. Returns whether anything was dropped.
func (l *List) Cleanup() bool {
	changed := false
	out := l.Items[:0]
	for i := range l.Items {
		if l.Items[i].IsOriginal() && i != 1 {
			changed = true
			continue
		}
		out = append(out, l.Items[i])
	}
	l.Items = out
	return changed
}

// SetTitle stores a fetched title on the item with exactly matching text.
// A title, once non-empty, is never overwritten.
func (l *List) SetTitle(text, title string) bool {
	if title == "" {
		return false
	}
	i := l.indexOf(text)
	if i < 0 || l.Items[i].Title != "" {
		return false
	}
	l.Items[i].Title = title
	return true
}
