// Package watch implements the long-running clipboard watcher: suspend on the
// external change notifier, read the new clipboard value, and feed it through
// the insert pipeline.
package watch

import (
	"context"
	"fmt"
	"log"

	"github.com/gen2brain/beeep"

	"clipton/internal/ingest"
	"clipton/internal/store"
)

// maxConsecutiveFailures stops a watcher that is spinning on a broken notifier
// or clipboard tool instead of looping forever at full speed.
const maxConsecutiveFailures = 100

// Clip is the external clipboard boundary the watcher blocks on.
type Clip interface {
	WaitForChange(ctx context.Context) error
	Read() (string, error)
	Copy(text string) error
}

type Watcher struct {
	Store    store.Store
	Settings store.Settings

	Clip       Clip
	Converters ingest.Converter
	Titles     ingest.Titler

	// Notify sends a desktop notification for captured items when the
	// feedback toggle is on. Defaults to beeep; split out for tests.
	Notify func(title, message string) error
}

// Run loops until ctx is cancelled. Cancellation (a process interrupt) causes
// a clean exit with no cleanup obligations: the store was persisted after the
// previous mutation. Transient clipboard failures are logged and the loop
// keeps iterating; persistence failures are returned as fatal.
func (w *Watcher) Run(ctx context.Context) error {
	failures := 0
	for {
		if ctx.Err() != nil {
			return nil
		}
		if failures > maxConsecutiveFailures {
			return fmt.Errorf("giving up after %d consecutive failures", failures)
		}

		if err := w.Clip.WaitForChange(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			failures++
			log.Printf("notifier: %v", err)
			continue
		}

		text, err := w.Clip.Read()
		if err != nil {
			failures++
			log.Printf("clipboard read: %v", err)
			continue
		}
		if text == "" {
			continue
		}

		// Re-read the persisted snapshot each iteration: a picker session may
		// have mutated the file since the previous change.
		list, err := w.Store.Load()
		if err != nil {
			return err
		}
		g := &ingest.Ingestor{
			Store:      w.Store,
			List:       list,
			Settings:   w.Settings,
			Converters: w.Converters,
			Titles:     w.Titles,
			Clipboard:  w.Clip,
		}
		added, err := g.Insert(text)
		if err != nil {
			return err
		}
		failures = 0

		if added && w.Settings.Feedback {
			w.feedback(list.Items[0].Text)
		}
	}
}

func (w *Watcher) feedback(text string) {
	notify := w.Notify
	if notify == nil {
		notify = func(title, message string) error {
			return beeep.Notify(title, message, "")
		}
	}
	if err := notify("Clipton", Truncate(text, w.Settings.FeedbackLength)); err != nil {
		log.Printf("notify: %v", err)
	}
}

// Truncate shortens text to at most n runes, marking the cut with an ellipsis.
func Truncate(text string, n int) string {
	if n <= 0 {
		n = 80
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n]) + "…"
}

