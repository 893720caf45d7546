package tui

import "testing"

func TestMarkdownStyleOverride(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("CLIPTON_MD_STYLE", "light")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("markdownStyle() = %q, want light", got)
	}
	t.Setenv("CLIPTON_MD_STYLE", "dark")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("markdownStyle() = %q, want dark", got)
	}
}

func TestMarkdownStyleFromColorFgBg(t *testing.T) {
	t.Setenv("CLIPTON_MD_STYLE", "")

	t.Setenv("COLORFGBG", "15;0")
	if got := markdownStyle(); got != "dark" {
		t.Fatalf("markdownStyle() = %q, want dark for bg 0", got)
	}
	t.Setenv("COLORFGBG", "0;15")
	if got := markdownStyle(); got != "light" {
		t.Fatalf("markdownStyle() = %q, want light for bg 15", got)
	}
}

func TestRenderPreviewEmpty(t *testing.T) {
	if got := renderPreview("   \n ", 40); got != "" {
		t.Fatalf("renderPreview(blank) = %q, want empty", got)
	}
}
