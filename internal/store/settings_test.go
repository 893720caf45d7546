package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_DefaultsWhenMissing(t *testing.T) {
	got, err := LoadSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	want := DefaultSettings()
	if got != want {
		t.Fatalf("expected pure defaults\n  got  %+v\n  want %+v", got, want)
	}
	if got.MaxItems != 2000 || got.HeavyPaste != 5000 {
		t.Fatalf("unexpected limit defaults: %+v", got)
	}
	if got.TrimLeftMulti || !got.TrimRightMulti {
		t.Fatalf("multi-line trim defaults must preserve indentation: %+v", got)
	}
}

func TestLoadSettings_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	body := `{
		"max_items": 10,
		"enable_titles": false,
		"trim_left_multi": true,
		"reverse_join": true,
		"icon_url": ">",
		"unknown_key": 42
	}`
	if err := os.WriteFile(SettingsPath(dir), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSettings(dir)
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got.MaxItems != 10 {
		t.Fatalf("expected max_items override, got %d", got.MaxItems)
	}
	if got.EnableTitles {
		t.Fatal("expected enable_titles=false")
	}
	if !got.TrimLeftMulti || !got.ReverseJoin {
		t.Fatalf("expected flag overrides, got %+v", got)
	}
	if got.IconURL != ">" {
		t.Fatalf("expected icon override, got %q", got.IconURL)
	}
	// Untouched keys keep defaults.
	if got.HeavyPaste != 5000 || !got.EnableConverters {
		t.Fatalf("expected untouched defaults, got %+v", got)
	}
}

func TestLoadSettings_MalformedFileIsAnError(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(SettingsPath(dir), []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CLIPTON_DIR", dir)
	got, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
	if p := SettingsPath(got); p != filepath.Join(dir, "settings.json") {
		t.Fatalf("unexpected settings path %q", p)
	}
}
