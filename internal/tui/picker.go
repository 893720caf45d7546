// Package tui is the built-in terminal picker, used when rofi is not
// installed or the picker setting asks for it. It honors the same
// index-plus-action-code contract as the rofi front-end.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"clipton/internal/picker"
)

// Picker runs a full-screen fuzzy selector in the invoking terminal.
// Preview, when set, resolves a line's raw text for the preview pane.
type Picker struct {
	Preview func(index int) string
}

func (p *Picker) Pick(lines []string, prompt string, selected int) (picker.Response, error) {
	applyColorProfilePreference()
	m := newPickModel(lines, prompt, selected, p.Preview)
	out, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return picker.Response{}, fmt.Errorf("picker: %w", err)
	}
	final, ok := out.(pickModel)
	if !ok {
		return picker.Response{}, nil
	}
	return final.resp, nil
}

func (p *Picker) Confirm(prompt string) (bool, error) {
	// No preview: the answers are not list rows.
	plain := Picker{}
	resp, err := plain.Pick([]string{"No", "Yes"}, prompt, 0)
	if err != nil {
		return false, err
	}
	return resp.OK && resp.Action == picker.ActionSelect && resp.Index == 1, nil
}
