// Package ingest drives newly captured clipboard text through conversion,
// normalization, storage, clipboard write-back, and title enrichment.
package ingest

import (
	"log"
	"strings"
	"time"

	"clipton/internal/model"
	"clipton/internal/store"
	"clipton/internal/trim"
)

// Copier writes text to the system clipboard.
type Copier interface {
	Copy(text string) error
}

// Converter is the conversion registry boundary.
type Converter interface {
	Convert(text string) (result string, ok bool, err error)
}

// Titler fetches a best-effort page title for URL-shaped text.
type Titler interface {
	Fetch(text string) string
}

// Ingestor owns one insert pipeline over a loaded list snapshot.
type Ingestor struct {
	Store    store.Store
	List     *store.List
	Settings store.Settings

	Converters Converter // nil disables conversion
	Titles     Titler    // nil disables title enrichment
	Clipboard  Copier

	// Now is split out for tests.
	Now func() time.Time
}

func (g *Ingestor) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// Insert is the watcher's top-level entry point for a captured clipboard
// value. It reports whether an item was stored. Persistence failures are
// returned (fatal to the invoking process); clipboard write-back and title
// enrichment degrade to logged no-ops.
func (g *Ingestor) Insert(text string) (bool, error) {
	cfg := g.Settings

	converted := ""
	if !strings.HasPrefix(text, model.OriginalPrefix) && cfg.EnableConverters && g.Converters != nil {
		out, ok, err := g.Converters.Convert(text)
		if err != nil {
			// A failing converter aborts the whole attempt for this input.
			log.Printf("convert: %v", err)
		} else if ok {
			converted = out
		}
	}

	if converted != "" {
		companion := false
		if cfg.SaveOriginals {
			if g.List.Add(model.OriginalPrefix+text, g.now(), cfg) {
				g.Store.LogAppend(store.ClipLogOpAdd, model.OriginalPrefix+text)
				companion = true
			}
		}
		added, err := g.commit(converted, true)
		if err != nil {
			return added, err
		}
		if !added && companion {
			// The converted text was rejected, leaving the companion at the
			// front with no counterpart; drop it rather than persist it.
			if g.List.Cleanup() {
				return false, g.Store.Save(g.List)
			}
		}
		return added, nil
	}

	trimmed := trim.Trim(text, cfg)
	if trimmed != text {
		// Normalization changed the clipboard's content; write the cleaned
		// text back so paste matches what was stored.
		return g.commit(trimmed, true)
	}
	// The raw text is already the clipboard's current content.
	return g.commit(text, false)
}

// commit adds text, persists, optionally copies, then runs enrichment and the
// original-companion cleanup pass.
func (g *Ingestor) commit(text string, copyBack bool) (bool, error) {
	if !g.List.Add(text, g.now(), g.Settings) {
		return false, nil
	}
	g.Store.LogAppend(store.ClipLogOpAdd, text)
	if err := g.Store.Save(g.List); err != nil {
		return true, err
	}

	if copyBack && g.Clipboard != nil {
		if err := g.Clipboard.Copy(text); err != nil {
			log.Printf("copy: %v", err)
		}
	}

	// Enrichment runs strictly after the text is committed and copied; a slow
	// or failed fetch never holds up the clipboard.
	if g.Settings.EnableTitles && g.Titles != nil {
		if title := g.Titles.Fetch(text); g.List.SetTitle(text, title) {
			if err := g.Store.Save(g.List); err != nil {
				return true, err
			}
		}
	}

	if g.List.Cleanup() {
		return true, g.Store.Save(g.List)
	}
	return true, nil
}
