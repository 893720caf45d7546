package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Settings is the decoded settings.json. Every field is pointer-typed in the
// wire struct so "key absent" and "key set to zero value" stay distinguishable;
// defaults are filled on load. Unrecognized keys are ignored.
type Settings struct {
	MaxItems   int
	HeavyPaste int

	EnableTitles     bool
	EnableConverters bool
	SaveOriginals    bool

	ShowDate      bool
	ShowNumLines  bool
	ShowName      bool
	ShowNumItems  bool
	ShowShortcuts bool
	ShowIcons     bool

	RemoveHTTP bool
	RemoveWWW  bool

	TrimLeftSingle  bool
	TrimRightSingle bool
	TrimLeftMulti   bool
	TrimRightMulti  bool

	ReverseJoin bool

	Width string

	IconURL    string
	IconSingle string
	IconMulti  string

	Feedback       bool
	FeedbackLength int

	// Picker selects the selector front-end: "rofi", "builtin", or "auto"
	// (rofi when installed, builtin otherwise).
	Picker string

	// HistoryLog enables the append-only sqlite audit log of store mutations.
	HistoryLog bool

	// ConvertersDir overrides the default converter plugin directory.
	ConvertersDir string
}

type settingsFile struct {
	MaxItems   *int `json:"max_items"`
	HeavyPaste *int `json:"heavy_paste"`

	EnableTitles     *bool `json:"enable_titles"`
	EnableConverters *bool `json:"enable_converters"`
	SaveOriginals    *bool `json:"save_originals"`

	ShowDate      *bool `json:"show_date"`
	ShowNumLines  *bool `json:"show_num_lines"`
	ShowName      *bool `json:"show_name"`
	ShowNumItems  *bool `json:"show_num_items"`
	ShowShortcuts *bool `json:"show_shortcuts"`
	ShowIcons     *bool `json:"show_icons"`

	RemoveHTTP *bool `json:"remove_http"`
	RemoveWWW  *bool `json:"remove_www"`

	TrimLeftSingle  *bool `json:"trim_left_single"`
	TrimRightSingle *bool `json:"trim_right_single"`
	TrimLeftMulti   *bool `json:"trim_left_multi"`
	TrimRightMulti  *bool `json:"trim_right_multi"`

	ReverseJoin *bool `json:"reverse_join"`

	Width *string `json:"width"`

	IconURL    *string `json:"icon_url"`
	IconSingle *string `json:"icon_single"`
	IconMulti  *string `json:"icon_multi"`

	Feedback       *bool `json:"feedback"`
	FeedbackLength *int  `json:"feedback_length"`

	Picker        *string `json:"picker"`
	HistoryLog    *bool   `json:"history_log"`
	ConvertersDir *string `json:"converters_dir"`
}

// DefaultSettings returns the documented defaults. Multi-line left-trim stays
// off so pasted code keeps its leading indentation.
func DefaultSettings() Settings {
	return Settings{
		MaxItems:   2000,
		HeavyPaste: 5000,

		EnableTitles:     true,
		EnableConverters: true,
		SaveOriginals:    true,

		ShowDate:      true,
		ShowNumLines:  true,
		ShowName:      true,
		ShowNumItems:  true,
		ShowShortcuts: true,
		ShowIcons:     true,

		RemoveHTTP: false,
		RemoveWWW:  false,

		TrimLeftSingle:  true,
		TrimRightSingle: true,
		TrimLeftMulti:   false,
		TrimRightMulti:  true,

		ReverseJoin: false,

		Width: "66%",

		IconURL:    "🌐",
		IconSingle: "📋",
		IconMulti:  "📚",

		Feedback:       false,
		FeedbackLength: 80,

		Picker:        "auto",
		HistoryLog:    false,
		ConvertersDir: "",
	}
}

// ConfigDir resolves the config directory, honoring the CLIPTON_DIR override
// (keeps unit tests from touching ~/.config/clipton).
func ConfigDir() (string, error) {
	if v := strings.TrimSpace(os.Getenv("CLIPTON_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "clipton"), nil
}

func SettingsPath(dir string) string {
	return filepath.Join(dir, "settings.json")
}

// LoadSettings reads settings.json under dir and fills defaults for every
// missing key. A missing or empty file yields pure defaults; malformed JSON is
// an error (fail closed rather than silently running with surprise defaults).
func LoadSettings(dir string) (Settings, error) {
	s := DefaultSettings()

	b, err := os.ReadFile(SettingsPath(dir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, err
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return s, nil
	}

	var f settingsFile
	if err := json.Unmarshal(b, &f); err != nil {
		return s, fmt.Errorf("parse %s: %w", SettingsPath(dir), err)
	}

	setInt(&s.MaxItems, f.MaxItems)
	setInt(&s.HeavyPaste, f.HeavyPaste)
	setBool(&s.EnableTitles, f.EnableTitles)
	setBool(&s.EnableConverters, f.EnableConverters)
	setBool(&s.SaveOriginals, f.SaveOriginals)
	setBool(&s.ShowDate, f.ShowDate)
	setBool(&s.ShowNumLines, f.ShowNumLines)
	setBool(&s.ShowName, f.ShowName)
	setBool(&s.ShowNumItems, f.ShowNumItems)
	setBool(&s.ShowShortcuts, f.ShowShortcuts)
	setBool(&s.ShowIcons, f.ShowIcons)
	setBool(&s.RemoveHTTP, f.RemoveHTTP)
	setBool(&s.RemoveWWW, f.RemoveWWW)
	setBool(&s.TrimLeftSingle, f.TrimLeftSingle)
	setBool(&s.TrimRightSingle, f.TrimRightSingle)
	setBool(&s.TrimLeftMulti, f.TrimLeftMulti)
	setBool(&s.TrimRightMulti, f.TrimRightMulti)
	setBool(&s.ReverseJoin, f.ReverseJoin)
	setString(&s.Width, f.Width)
	setString(&s.IconURL, f.IconURL)
	setString(&s.IconSingle, f.IconSingle)
	setString(&s.IconMulti, f.IconMulti)
	setBool(&s.Feedback, f.Feedback)
	setInt(&s.FeedbackLength, f.FeedbackLength)
	setString(&s.Picker, f.Picker)
	setBool(&s.HistoryLog, f.HistoryLog)
	setString(&s.ConvertersDir, f.ConvertersDir)

	return s, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
