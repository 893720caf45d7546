package convert

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestYouTubeMusic_Convert(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"https://music.youtube.com/watch?v=abc123", "https://www.youtube.com/watch?v=abc123"},
		{"https://music.youtube.com/watch?v=abc123&si=xyz", "https://www.youtube.com/watch?v=abc123"},
		{"https://music.youtube.com/playlist?list=PL-x_1", "https://www.youtube.com/playlist?list=PL-x_1"},
		{"https://www.youtube.com/watch?v=abc123", ""},
		{"not a url", ""},
		{"https://music.youtube.com/watch?v=abc with words", ""},
	}
	for _, c := range cases {
		got, err := YouTubeMusic{}.Convert(c.in)
		if err != nil {
			t.Fatalf("Convert(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("Convert(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestYoutuBe_Convert(t *testing.T) {
	got, err := YoutuBe{}.Convert("https://youtu.be/dQw4w9WgXcQ?t=42")
	if err != nil {
		t.Fatal(err)
	}
	if want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	got, err = YoutuBe{}.Convert("https://youtu.be/dQw4w9WgXcQ")
	if err != nil {
		t.Fatal(err)
	}
	if want := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

type fixed struct {
	name string
	out  string
	err  error
}

func (f fixed) Name() string                  { return f.name }
func (f fixed) Convert(string) (string, error) { return f.out, f.err }

func TestRegistry_FirstNonEmptyWins(t *testing.T) {
	r := NewRegistry(fixed{name: "a"}, fixed{name: "b", out: "B"}, fixed{name: "c", out: "C"})
	got, ok, err := r.Convert("x")
	if err != nil || !ok {
		t.Fatalf("Convert: ok=%v err=%v", ok, err)
	}
	if got != "B" {
		t.Fatalf("expected first match to win, got %q", got)
	}
}

func TestRegistry_NoneWhenAllEmpty(t *testing.T) {
	r := NewRegistry(fixed{name: "a"}, fixed{name: "b"})
	got, ok, err := r.Convert("x")
	if err != nil {
		t.Fatal(err)
	}
	if ok || got != "" {
		t.Fatalf("expected no conversion, got %q ok=%v", got, ok)
	}
}

func TestRegistry_FailureAbortsWholeChain(t *testing.T) {
	boom := errors.New("boom")
	r := NewRegistry(fixed{name: "bad", err: boom}, fixed{name: "good", out: "G"})
	got, ok, err := r.Convert("x")
	if err == nil {
		t.Fatal("expected chain failure")
	}
	if ok || got != "" {
		t.Fatalf("a failing unit must abort the attempt; got %q ok=%v", got, ok)
	}
}

func TestScriptPlugin_Contract(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("plugin scripts are POSIX shell")
	}
	dir := t.TempDir()
	script := filepath.Join(dir, "upper")
	body := "#!/bin/sh\ntr a-z A-Z\n"
	if err := os.WriteFile(script, []byte(body), 0o755); err != nil {
		t.Fatal(err)
	}

	plugins, err := DiscoverPlugins(dir)
	if err != nil {
		t.Fatalf("DiscoverPlugins: %v", err)
	}
	if len(plugins) != 1 || plugins[0].Name() != "upper" {
		t.Fatalf("unexpected plugins: %v", plugins)
	}

	got, err := plugins[0].Convert("hello")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if got != "HELLO" {
		t.Fatalf("got %q, want %q", got, "HELLO")
	}
}

func TestScriptPlugin_StartFailureIsAnError(t *testing.T) {
	p := ScriptPlugin{name: "missing", path: filepath.Join(t.TempDir(), "nope")}
	if _, err := p.Convert("x"); err == nil {
		t.Fatal("expected error for unstartable plugin")
	}
}

func TestNewDefaultRegistry_MissingPluginDir(t *testing.T) {
	r, err := NewDefaultRegistry(filepath.Join(t.TempDir(), "absent"))
	if err != nil {
		t.Fatalf("missing plugin dir must not fail: %v", err)
	}
	names := r.Names()
	if len(names) != 2 || names[0] != "youtube_music" || names[1] != "youtu_be" {
		t.Fatalf("unexpected builtin order: %v", names)
	}
}
