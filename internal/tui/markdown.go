package tui

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width + style. Creating a renderer with
	// WithAutoStyle can trigger terminal capability queries that may block
	// on some terminals, so a fixed style is resolved once instead.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderPreview renders the preview pane body. Clipboard text is frequently
// markdown-ish (READMEs, chat snippets, code fences), and glamour degrades
// gracefully to wrapped paragraphs for plain text.
func renderPreview(text string, width int) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	mdRendererMu.Lock()
	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)
	r := mdRenderers[key]
	mdRendererMu.Unlock()

	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return text
		}
		mdRendererMu.Lock()
		if existing := mdRenderers[key]; existing != nil {
			r = existing
		} else {
			mdRenderers[key] = rr
			r = rr
		}
		mdRendererMu.Unlock()
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyle() string {
	// Explicit override for debugging / accessibility.
	switch strings.ToLower(strings.TrimSpace(os.Getenv("CLIPTON_MD_STYLE"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	// COLORFGBG is often "fg;bg" (e.g. "15;0" => dark bg). Prefer it over
	// terminal queries to avoid blocking.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
		if err == nil {
			if bg >= 7 {
				return "light"
			}
			return "dark"
		}
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
