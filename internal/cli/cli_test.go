package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"clipton/internal/model"
	"clipton/internal/store"
)

func seedItems(t *testing.T, dir string, texts ...string) {
	t.Helper()
	st := store.Store{Dir: dir}
	if err := st.Ensure(); err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	list := &store.List{}
	cfg := store.DefaultSettings()
	now := time.Unix(1700000000, 0)
	// Add in reverse so texts[0] ends up most recent.
	for i := len(texts) - 1; i >= 0; i-- {
		list.Add(texts[i], now, cfg)
		now = now.Add(time.Minute)
	}
	if err := st.Save(list); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	seedItems(t, dir, "newest", "older")

	out, err := run(t, "list", "--dir", dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var items []model.Item
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("list output is not JSON: %v\n%s", err, out)
	}
	if len(items) != 2 || items[0].Text != "newest" || items[1].Text != "older" {
		t.Fatalf("items = %+v", items)
	}
}

func TestListLimit(t *testing.T) {
	dir := t.TempDir()
	seedItems(t, dir, "a", "b", "c")

	out, err := run(t, "list", "--dir", dir, "--limit", "1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var items []model.Item
	if err := json.Unmarshal([]byte(out), &items); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(items) != 1 || items[0].Text != "a" {
		t.Fatalf("items = %+v", items)
	}
}

func TestListEmptyStore(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "list", "--dir", dir)
	if err != nil {
		t.Fatalf("list on fresh dir: %v\n%s", err, out)
	}
}

func TestClearRequiresYes(t *testing.T) {
	dir := t.TempDir()
	seedItems(t, dir, "keep me")

	_, err := run(t, "clear", "--dir", dir)
	var need needConfirmError
	if !errors.As(err, &need) {
		t.Fatalf("err = %v, want needConfirmError", err)
	}

	st := store.Store{Dir: dir}
	list, err := st.Load()
	if err != nil || list.Len() != 1 {
		t.Fatalf("store mutated by refused clear: len=%d err=%v", list.Len(), err)
	}
}

func TestClearYes(t *testing.T) {
	dir := t.TempDir()
	seedItems(t, dir, "a", "b")

	out, err := run(t, "clear", "--dir", dir, "--yes")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if out != "cleared 2 items\n" {
		t.Fatalf("out = %q", out)
	}

	st := store.Store{Dir: dir}
	list, err := st.Load()
	if err != nil || list.Len() != 0 {
		t.Fatalf("store not empty after clear: len=%d err=%v", list.Len(), err)
	}
}

func TestClearEmptyStoreIsNoop(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, "clear", "--dir", dir); err != nil {
		t.Fatalf("clear on empty store: %v", err)
	}
}

func TestLogDisabledByDefault(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, "log", "--dir", dir); err == nil {
		t.Fatal("log succeeded with history_log disabled")
	}
}

func TestLogEnabled(t *testing.T) {
	dir := t.TempDir()
	settings := []byte(`{"history_log": true}`)
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), settings, 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}

	out, err := run(t, "log", "--dir", dir)
	if err != nil {
		t.Fatalf("log: %v\n%s", err, out)
	}
	var entries []store.ClipLogEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, out)
	}
}

func TestPickerMode(t *testing.T) {
	cfg := store.DefaultSettings()

	app := &App{Picker: "builtin"}
	mode, err := pickerMode(app, cfg)
	if err != nil || mode != "builtin" {
		t.Fatalf("flag override: mode=%q err=%v", mode, err)
	}

	cfg.Picker = "rofi"
	mode, err = pickerMode(&App{}, cfg)
	if err != nil || mode != "rofi" {
		t.Fatalf("settings fallback: mode=%q err=%v", mode, err)
	}

	if _, err := pickerMode(&App{Picker: "dmenu"}, cfg); err == nil {
		t.Fatal("unknown picker accepted")
	}
}

func TestResolveDirFlagWins(t *testing.T) {
	t.Setenv("CLIPTON_DIR", "/nonexistent/env")
	dir, err := resolveDir(&App{Dir: "/tmp/explicit"})
	if err != nil || dir != "/tmp/explicit" {
		t.Fatalf("dir=%q err=%v", dir, err)
	}
}

func TestDoctorReportsStore(t *testing.T) {
	dir := t.TempDir()
	seedItems(t, dir, "one")

	out, err := run(t, "doctor", "--dir", dir)
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	var report doctorReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("doctor output is not JSON: %v\n%s", err, out)
	}
	if report.Dir != dir || report.Items != 1 || !report.Settings {
		t.Fatalf("report = %+v", report)
	}
}
