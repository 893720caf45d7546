// Package title enriches URL-shaped items with the page's <title>, best
// effort. Failures of any kind degrade to "no title"; nothing here may block
// or break the add path, which has already committed and copied the text by
// the time a fetch starts.
package title

import (
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"clipton/internal/model"
)

// maxBodyBytes caps how much of a page is scanned for the title element.
// Titles live in <head>; anything past this is not worth downloading.
const maxBodyBytes = 256 << 10

type Fetcher struct {
	client *http.Client
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// Fetch returns the page title for a bare http(s) URL, or "" when the text is
// not a lone URL, the content is not HTML, or anything goes wrong.
func (f *Fetcher) Fetch(text string) string {
	if !model.IsBareURL(text) {
		return ""
	}
	resp, err := f.client.Get(text)
	if err != nil {
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}
	mt, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mt != "text/html" {
		return ""
	}

	return ParseTitle(io.LimitReader(resp.Body, maxBodyBytes))
}

// ParseTitle tokenizes HTML incrementally: it matches the opening <title> tag,
// captures the immediately following text node, and stops at the next tag.
func ParseTitle(r io.Reader) string {
	z := html.NewTokenizer(r)
	inTitle := false
	for {
		switch z.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := z.TagName()
			inTitle = string(name) == "title"
		case html.TextToken:
			if inTitle {
				return strings.TrimSpace(string(z.Text()))
			}
		case html.EndTagToken, html.SelfClosingTagToken:
			if inTitle {
				return ""
			}
		}
	}
}
