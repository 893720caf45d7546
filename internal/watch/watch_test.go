package watch

import (
	"context"
	"errors"
	"testing"

	"clipton/internal/store"
)

// scriptedClip feeds a fixed sequence of clipboard values, one per change
// notification, then cancels the context.
type scriptedClip struct {
	texts  []string
	i      int
	cancel context.CancelFunc

	readErr   error
	notifyErr error
}

func (c *scriptedClip) WaitForChange(ctx context.Context) error {
	if c.notifyErr != nil {
		return c.notifyErr
	}
	if c.i >= len(c.texts) {
		c.cancel()
		return ctx.Err()
	}
	return nil
}

func (c *scriptedClip) Read() (string, error) {
	if c.readErr != nil {
		return "", c.readErr
	}
	text := c.texts[c.i]
	c.i++
	return text, nil
}

func (c *scriptedClip) Copy(string) error { return nil }

func TestWatcher_CapturesChangesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	clip := &scriptedClip{texts: []string{"one", "two", "one"}, cancel: cancel}
	w := &Watcher{
		Store:    store.Store{Dir: t.TempDir()},
		Settings: store.DefaultSettings(),
		Clip:     clip,
	}

	if err := w.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	list, err := w.Store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if list.Len() != 2 {
		t.Fatalf("expected 2 unique items, got %+v", list.Items)
	}
	if list.Items[0].Text != "one" || list.Items[1].Text != "two" {
		t.Fatalf("expected re-added item promoted to front, got %+v", list.Items)
	}
}

func TestWatcher_FeedbackNotification(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := store.DefaultSettings()
	cfg.Feedback = true
	cfg.FeedbackLength = 5

	var messages []string
	clip := &scriptedClip{texts: []string{"a rather long capture"}, cancel: cancel}
	w := &Watcher{
		Store:    store.Store{Dir: t.TempDir()},
		Settings: cfg,
		Clip:     clip,
		Notify: func(_, message string) error {
			messages = append(messages, message)
			return nil
		},
	}

	if err := w.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected one notification, got %v", messages)
	}
	if messages[0] != "a rat…" {
		t.Fatalf("expected truncated message, got %q", messages[0])
	}
}

func TestWatcher_GivesUpAfterRepeatedFailures(t *testing.T) {
	ctx := context.Background()
	clip := &scriptedClip{notifyErr: errors.New("notifier broken")}
	w := &Watcher{
		Store:    store.Store{Dir: t.TempDir()},
		Settings: store.DefaultSettings(),
		Clip:     clip,
	}

	if err := w.Run(ctx); err == nil {
		t.Fatal("expected failure-loop guard to trip")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := Truncate("абвгде", 3); got != "абв…" {
		t.Fatalf("rune-aware truncation expected, got %q", got)
	}
}
