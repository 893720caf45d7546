// Package clipboard wraps the external clipboard and change-notifier tools.
// Tool discovery happens once at startup; a missing required tool is a fatal
// startup condition for the caller, while individual copy/read failures are
// transient and degrade to no-ops.
package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// opTimeout bounds copy/read calls. The notifier wait is deliberately
// unbounded; it is the watcher's sole suspension point.
const opTimeout = 3 * time.Second

type tool struct {
	name      string
	copyArgs  []string
	pasteArgs []string
}

// Preference order: Wayland first, then X11 fallbacks.
var clipTools = []tool{
	{name: "wl-copy"}, // paired with wl-paste below
	{name: "xclip", copyArgs: []string{"-selection", "clipboard"}, pasteArgs: []string{"-o", "-selection", "clipboard"}},
	{name: "xsel", copyArgs: []string{"--clipboard", "--input"}, pasteArgs: []string{"--clipboard", "--output"}},
}

var notifyTools = [][]string{
	{"clipnotify", "-s", "clipboard"},
	{"copyevent", "-s", "clipboard"},
}

// External is the detected toolset.
type External struct {
	copyCmd  []string
	pasteCmd []string
	waitCmd  []string
}

// MissingToolError names the collaborator that could not be found, for the
// user-visible startup message.
type MissingToolError struct {
	Want string
}

func (e MissingToolError) Error() string {
	return fmt.Sprintf("required external tool not found: %s", e.Want)
}

// Detect locates the clipboard copy/read tools. withNotifier additionally
// requires a clipboard-change notifier (watcher mode only).
func Detect(withNotifier bool) (*External, error) {
	ext := &External{}
	for _, t := range clipTools {
		if _, err := exec.LookPath(t.name); err != nil {
			continue
		}
		if t.name == "wl-copy" {
			if _, err := exec.LookPath("wl-paste"); err != nil {
				continue
			}
			ext.copyCmd = []string{"wl-copy"}
			ext.pasteCmd = []string{"wl-paste", "--no-newline"}
		} else {
			ext.copyCmd = append([]string{t.name}, t.copyArgs...)
			ext.pasteCmd = append([]string{t.name}, t.pasteArgs...)
		}
		break
	}
	if ext.copyCmd == nil {
		return nil, MissingToolError{Want: "wl-copy, xclip or xsel"}
	}

	if withNotifier {
		for _, w := range notifyTools {
			if _, err := exec.LookPath(w[0]); err == nil {
				ext.waitCmd = w
				break
			}
		}
		if ext.waitCmd == nil {
			return nil, MissingToolError{Want: "clipnotify or copyevent"}
		}
	}
	return ext, nil
}

// Copy writes text to the system clipboard. Exceeding the bounded timeout is
// reported as an error; callers treat it as "did not copy".
func (e *External) Copy(text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, e.copyCmd[0], e.copyCmd[1:]...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", e.copyCmd[0], err)
	}
	return nil
}

// Read returns the current clipboard text.
func (e *External) Read() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, e.pasteCmd[0], e.pasteCmd[1:]...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s: %w", e.pasteCmd[0], err)
	}
	return out.String(), nil
}

// WaitForChange blocks until the notifier reports a clipboard change or ctx is
// cancelled. No timeout: this is the watcher's suspension point.
func (e *External) WaitForChange(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, e.waitCmd[0], e.waitCmd[1:]...)
	return cmd.Run()
}
