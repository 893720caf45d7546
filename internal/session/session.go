// Package session runs one interactive picker session against the store:
// it blocks on the selector, maps the returned action code to the matching
// list operation, and re-invokes the selector where the protocol asks for it.
package session

import (
	"fmt"
	"log"
	"strings"
	"time"

	"clipton/internal/format"
	"clipton/internal/ingest"
	"clipton/internal/picker"
	"clipton/internal/store"
)

const shortcutsHint = "Alt+1 Delete | Alt+(2-9) Join | Alt+0 Clear"

type Session struct {
	Store    store.Store
	List     *store.List
	Settings store.Settings

	Selector  picker.Selector
	Clipboard ingest.Copier

	// MarkupRows enables markup escaping in rendered lines (rofi front-end).
	MarkupRows bool

	Now func() time.Time
}

func (s *Session) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Prompt builds the picker prompt from the display toggles.
func (s *Session) Prompt() string {
	parts := make([]string, 0, 3)
	if s.Settings.ShowName {
		parts = append(parts, "Clipton")
	}
	if s.Settings.ShowNumItems {
		parts = append(parts, fmt.Sprintf("(%d)", s.List.Len()))
	}
	if s.Settings.ShowShortcuts {
		parts = append(parts, shortcutsHint)
	}
	return strings.Join(parts, " ")
}

// Run loops until a terminal action or cancellation. Single-threaded and
// synchronous throughout: block on the picker, block on the operation, maybe
// re-invoke the picker.
func (s *Session) Run() error {
	selected := 0
	for {
		if s.List.Len() == 0 {
			return nil
		}

		lines := format.Displays(format.Lines(s.List.Items, s.Settings, s.now(), format.Options{Markup: s.MarkupRows}))
		resp, err := s.Selector.Pick(lines, s.Prompt(), selected)
		if err != nil {
			return err
		}
		if !resp.OK {
			return nil // cancelled: no side effects
		}
		if resp.Index < 0 || resp.Index >= s.List.Len() {
			return nil
		}

		if n, ok := resp.Action.JoinCount(); ok {
			joined, added := s.List.Join(resp.Index, n, s.Settings.ReverseJoin, s.now(), s.Settings)
			s.Store.LogAppend(store.ClipLogOpJoin, joined)
			if err := s.Store.Save(s.List); err != nil {
				return err
			}
			if added {
				s.copy(joined)
			}
			// Re-invoke from scratch.
			selected = 0
			continue
		}

		switch resp.Action {
		case picker.ActionSelect:
			it, _ := s.List.At(resp.Index)
			s.copy(it.Text)
			return nil

		case picker.ActionDelete:
			it, _ := s.List.At(resp.Index)
			s.List.Delete(resp.Index)
			s.Store.LogAppend(store.ClipLogOpDelete, it.Text)
			if err := s.Store.Save(s.List); err != nil {
				return err
			}
			// Re-invoke with the same row pre-highlighted.
			selected = resp.Index
			if selected >= s.List.Len() {
				selected = s.List.Len() - 1
			}
			continue

		case picker.ActionClear:
			yes, err := s.Selector.Confirm("Delete all items?")
			if err != nil {
				return err
			}
			if !yes {
				return nil
			}
			s.List.DeleteAll()
			s.Store.LogAppend(store.ClipLogOpClear, "")
			return s.Store.Save(s.List)

		case picker.ActionCopyTitle:
			it, _ := s.List.At(resp.Index)
			if it.Title != "" {
				s.copy(it.Title)
			}
			return nil

		default:
			return nil
		}
	}
}

func (s *Session) copy(text string) {
	if s.Clipboard == nil {
		return
	}
	if err := s.Clipboard.Copy(text); err != nil {
		// Degrades to "did not copy"; the session itself survives.
		log.Printf("copy: %v", err)
	}
}
