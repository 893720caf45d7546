package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/sahilm/fuzzy"

	"clipton/internal/picker"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	chromeRows    = 4 // prompt, input, blank, help
)

type pickModel struct {
	lines   []string
	prompt  string
	preview func(int) string

	input    textinput.Model
	filtered []int // view rows -> original line indices
	cursor   int   // row in filtered
	offset   int   // first visible row
	width    int
	height   int
	showPrev bool

	resp picker.Response
	done bool
}

func newPickModel(lines []string, prompt string, selected int, preview func(int) string) pickModel {
	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "filter"
	in.Focus()

	m := pickModel{
		lines:   lines,
		prompt:  prompt,
		preview: preview,
		input:   in,
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.refilter()
	if selected >= 0 && selected < len(m.filtered) {
		m.cursor = selected
	}
	m.clampWindow()
	return m
}

func (m pickModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampWindow()
		return m, nil

	case tea.KeyMsg:
		handled, next := m.handleKey(msg)
		m = next
		if m.done {
			return m, tea.Quit
		}
		if handled {
			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.refilter()
		m.clampWindow()
		return m, cmd
	}
	return m, nil
}

// handleKey consumes navigation and action keys. The second return is the
// updated model; the first reports whether the key was fully handled and the
// text input must not see it.
func (m pickModel) handleKey(msg tea.KeyMsg) (bool, pickModel) {
	switch msg.String() {
	case "ctrl+c", "esc", "ctrl+g":
		m.done = true
		return true, m
	case "enter":
		return true, m.finish(picker.ActionSelect)
	case "ctrl+d":
		return true, m.finish(picker.ActionDelete)
	case "ctrl+x":
		return true, m.finish(picker.ActionClear)
	case "ctrl+t":
		return true, m.finish(picker.ActionCopyTitle)
	case "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9":
		code := int(msg.String()[4] - '0')
		return true, m.finish(picker.Action(code))
	case "tab":
		m.showPrev = !m.showPrev
		return true, m
	case "up", "ctrl+p":
		m.move(-1)
		return true, m
	case "down", "ctrl+n":
		m.move(1)
		return true, m
	case "pgup":
		m.move(-m.pageSize())
		return true, m
	case "pgdown":
		m.move(m.pageSize())
		return true, m
	case "home":
		m.cursor = 0
		m.clampWindow()
		return true, m
	case "end":
		m.cursor = len(m.filtered) - 1
		m.clampWindow()
		return true, m
	}
	return false, m
}

func (m pickModel) finish(a picker.Action) pickModel {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		// Nothing to act on; stay open.
		return m
	}
	m.resp = picker.Response{Index: m.filtered[m.cursor], Action: a, OK: true}
	m.done = true
	return m
}

func (m *pickModel) move(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	m.clampWindow()
}

func (m *pickModel) refilter() {
	query := strings.TrimSpace(m.input.Value())
	if query == "" {
		m.filtered = make([]int, len(m.lines))
		for i := range m.lines {
			m.filtered[i] = i
		}
		return
	}
	matches := fuzzy.Find(query, m.lines)
	m.filtered = make([]int, 0, len(matches))
	for _, match := range matches {
		m.filtered = append(m.filtered, match.Index)
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m pickModel) pageSize() int {
	n := m.height - chromeRows
	if n < 1 {
		n = 1
	}
	return n
}

func (m *pickModel) clampWindow() {
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m pickModel) View() string {
	if m.done {
		return ""
	}

	listWidth := m.width
	if m.showPrev {
		listWidth = m.width / 2
	}
	if listWidth < 10 {
		listWidth = 10
	}

	var b strings.Builder
	b.WriteString(stylePrompt().Render(m.prompt))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	page := m.pageSize()
	end := m.offset + page
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	var rows []string
	for row := m.offset; row < end; row++ {
		line := ansi.Truncate(m.lines[m.filtered[row]], listWidth-2, "…")
		if row == m.cursor {
			rows = append(rows, styleSelected().Render("▌ "+line))
		} else {
			rows = append(rows, "  "+line)
		}
	}
	list := strings.Join(rows, "\n")

	if m.showPrev && m.cursor >= 0 && m.cursor < len(m.filtered) && m.preview != nil {
		prev := renderPreview(m.preview(m.filtered[m.cursor]), m.width-listWidth-1)
		list = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(listWidth).Render(list),
			prev)
	}
	b.WriteString(list)
	b.WriteString("\n")
	b.WriteString(styleMuted().Render(
		"enter copy  ctrl+d delete  alt+2..9 join  ctrl+t title  ctrl+x clear  tab preview  esc cancel"))
	return b.String()
}
