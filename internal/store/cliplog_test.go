package store

import (
	"context"
	"testing"
)

func TestClipLog_AppendAndRecent(t *testing.T) {
	ctx := context.Background()
	lg, err := OpenClipLog(ctx, t.TempDir())
	if err != nil {
		t.Fatalf("OpenClipLog: %v", err)
	}
	defer lg.Close()

	if err := lg.Append(ClipLogOpAdd, "hello"); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := lg.Append(ClipLogOpDelete, "hello"); err != nil {
		t.Fatalf("Append: %v", err)
	}

	got, err := lg.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	for _, e := range got {
		if e.EventID == "" || e.CreatedAt == 0 {
			t.Fatalf("entry missing id/timestamp: %+v", e)
		}
		if e.Text != "hello" {
			t.Fatalf("unexpected text %q", e.Text)
		}
	}
}

func TestStore_LogAppend_NilLogIsNoop(t *testing.T) {
	s := Store{Dir: t.TempDir()}
	// Must not panic without a log attached.
	s.LogAppend(ClipLogOpClear, "")
}
