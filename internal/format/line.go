// Package format renders stored items into picker display lines and handles
// CLI output encoding.
package format

import (
	"fmt"
	"html"
	"regexp"
	"strings"
	"time"

	"clipton/internal/model"
	"clipton/internal/store"
)

// Line is one rendered picker row. Scheme carries the URL scheme that was
// stripped from Display (if any) so callers can reconstruct the full text.
type Line struct {
	Display string
	Scheme  string
}

// Options tweak rendering per front-end. Rofi rows use pango markup, the
// builtin picker renders plain runes.
type Options struct {
	Markup bool
}

var (
	newlineRuns = regexp.MustCompile(` *\n *`)
	spaceRuns   = regexp.MustCompile(` +`)
)

// timeagoWidth keeps recency labels aligned into a fixed-width column.
const timeagoWidth = 12

// FormatLine renders item into a display line. Pure and deterministic for a
// given (item, settings, now) triple; required for snapshot-style tests.
func FormatLine(it model.Item, cfg store.Settings, now time.Time, opts Options) Line {
	text := strings.TrimSpace(it.Text)
	text = newlineRuns.ReplaceAllString(text, "\n")
	if opts.Markup {
		text = html.EscapeString(text)
	}

	sep := " * "
	if opts.Markup {
		sep = "<span> * </span>"
	}
	text = strings.ReplaceAll(text, "\n", sep)
	text = spaceRuns.ReplaceAllString(text, " ")

	var scheme string
	if it.NumLines == 1 && model.IsBareURL(it.Text) {
		if cfg.RemoveHTTP {
			for _, s := range []string{"https://", "http://"} {
				if strings.HasPrefix(text, s) {
					scheme = s
					text = strings.TrimPrefix(text, s)
					break
				}
			}
		}
		if cfg.RemoveWWW {
			text = strings.TrimPrefix(text, "www.")
		}
	}

	if title := strings.TrimSpace(strings.ReplaceAll(it.Title, "\n", "")); title != "" {
		if opts.Markup {
			title = html.EscapeString(title)
		}
		text += fmt.Sprintf(" (%s)", title)
	}

	var prefix strings.Builder
	if cfg.ShowIcons {
		if icon := iconFor(it, cfg); icon != "" {
			prefix.WriteString(icon)
			prefix.WriteString(" ")
		}
	}
	if cfg.ShowDate {
		mins := int(now.Unix()-it.Date) / 60
		prefix.WriteString(Timeago(mins))
	}
	if cfg.ShowNumLines {
		prefix.WriteString(fmt.Sprintf("%-6s", fmt.Sprintf("(%d)", it.NumLines)))
	}

	if opts.Markup && prefix.Len() > 0 {
		return Line{Display: "<span>" + prefix.String() + "</span>" + text, Scheme: scheme}
	}
	return Line{Display: prefix.String() + text, Scheme: scheme}
}

// iconFor picks the leading icon by content shape, first match wins:
// URL, then single-line, then multi-line.
func iconFor(it model.Item, cfg store.Settings) string {
	switch {
	case model.IsBareURL(it.Text):
		return cfg.IconURL
	case it.NumLines == 1:
		return cfg.IconSingle
	default:
		return cfg.IconMulti
	}
}

// Timeago renders minutes-since as a fixed-width recency label.
func Timeago(mins int) string {
	var ago string
	switch {
	case mins >= 1440:
		ago = fmt.Sprintf("%02d days", mins/1440)
	case mins >= 60:
		ago = fmt.Sprintf("%02d hours", mins/60)
	case mins >= 1:
		ago = fmt.Sprintf("%02d mins", mins)
	default:
		ago = "just now"
	}
	return fmt.Sprintf("%-*s", timeagoWidth, "("+ago+")")
}

// Lines renders every item in the list with the same options.
func Lines(items []model.Item, cfg store.Settings, now time.Time, opts Options) []Line {
	out := make([]Line, 0, len(items))
	for _, it := range items {
		out = append(out, FormatLine(it, cfg, now, opts))
	}
	return out
}

// Displays projects Lines down to the display strings.
func Displays(lines []Line) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, l.Display)
	}
	return out
}
