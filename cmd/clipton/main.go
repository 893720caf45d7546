package main

import (
	"os"
	"strings"

	"clipton/internal/cli"
)

// modeAliases maps legacy invocation modes to the current subcommands, so
// existing autostart entries and key bindings keep working.
var modeAliases = map[string]string{
	"watch": "watcher",
	"menu":  "show",
}

func rewriteModeAliasArgs(argv []string) []string {
	// Cobra treats the first non-flag token as a subcommand, so we rewrite
	// argv before parsing. Users often pass persistent flags first
	// (e.g. `clipton --dir ... watch`), so we must find the first
	// positional token, not just argv[1].
	valueFlags := map[string]bool{
		"--dir":    true,
		"--picker": true,
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			return argv
		}
		if strings.HasPrefix(a, "-") {
			// --flag=value carries its value; --flag value needs the
			// next token skipped too.
			if !strings.Contains(a, "=") && valueFlags[a] {
				i++
			}
			continue
		}
		if alias, ok := modeAliases[a]; ok {
			out := append([]string{}, argv...)
			out[i] = alias
			return out
		}
		return argv
	}
	return argv
}

func main() {
	os.Args = rewriteModeAliasArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
