// Package convert rewrites newly captured clipboard text through an ordered
// registry of transforms. The first transform that produces non-empty output
// wins; a transform that fails aborts the whole attempt for that input.
package convert

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// Converter is one text -> text transform. Returning "" means "no conversion";
// returning an error aborts the whole chain for the current input.
type Converter interface {
	Name() string
	Convert(text string) (string, error)
}

// Registry holds converters in invocation order: builtins first, then plugin
// scripts in directory order.
type Registry struct {
	converters []Converter
}

func NewRegistry(converters ...Converter) *Registry {
	return &Registry{converters: converters}
}

// NewDefaultRegistry builds the registry with the builtin converters plus any
// plugins discovered under pluginDir (ignored when empty or missing).
func NewDefaultRegistry(pluginDir string) (*Registry, error) {
	r := NewRegistry(YouTubeMusic{}, YoutuBe{})
	if pluginDir == "" {
		return r, nil
	}
	plugins, err := DiscoverPlugins(pluginDir)
	if err != nil {
		if os.IsNotExist(err) {
			return r, nil
		}
		return nil, err
	}
	r.converters = append(r.converters, plugins...)
	return r, nil
}

// Convert runs the chain and returns the first non-empty result. The second
// return is false when no converter matched or when any converter failed; a
// failure is reported so the caller can log it, and always means "treat this
// input as unconverted".
func (r *Registry) Convert(text string) (result string, ok bool, err error) {
	for _, c := range r.converters {
		out, err := c.Convert(text)
		if err != nil {
			return "", false, fmt.Errorf("converter %s: %w", c.Name(), err)
		}
		if out != "" {
			return out, true, nil
		}
	}
	return "", false, nil
}

// Names lists the registered converters in invocation order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.converters))
	for _, c := range r.converters {
		out = append(out, c.Name())
	}
	return out
}

// ScriptPlugin runs a user-supplied executable with a fixed text-in/text-out
// contract: input on stdin, conversion on stdout, empty stdout for "no
// conversion". Plugins run as isolated subprocesses, never as in-process code.
type ScriptPlugin struct {
	name string
	path string
}

// pluginTimeout bounds a single plugin run. Converters are simple string
// rewrites; anything slower is treated as broken.
const pluginTimeout = 5 * time.Second

func (p ScriptPlugin) Name() string { return p.name }

func (p ScriptPlugin) Convert(text string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), pluginTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.path)
	cmd.Stdin = strings.NewReader(text)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimRight(out.String(), "\n"), nil
}

// DiscoverPlugins lists dir and returns a ScriptPlugin per regular file, in
// directory order. The files themselves are not validated here; a plugin that
// cannot be started surfaces as a conversion failure for the input being
// processed.
func DiscoverPlugins(dir string) ([]Converter, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	out := make([]Converter, 0, len(ents))
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		out = append(out, ScriptPlugin{name: name, path: filepath.Join(dir, e.Name())})
	}
	return out, nil
}
