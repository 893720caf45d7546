package picker

import (
	"bytes"
	"errors"
	"os/exec"
	"strconv"
	"strings"
)

// Rofi drives a rofi dmenu process: lines on stdin, the selected row index on
// stdout (-format i), and the confirming keybinding in the exit code.
//
// Exit-code contract (rofi kb-custom bindings):
//
//	0      enter            -> select
//	10     kb-custom-1      -> delete
//	11-18  kb-custom-2..9   -> join 2..9 items
//	19     kb-custom-10     -> clear all
//	20     kb-custom-11     -> copy title
type Rofi struct {
	// Width is the rofi window width theme string, e.g. "66%".
	Width string
}

const rofiExitCustomBase = 10

func actionFromExitCode(code int) (Action, bool) {
	switch {
	case code == 0:
		return ActionSelect, true
	case code == rofiExitCustomBase:
		return ActionDelete, true
	case code >= rofiExitCustomBase+1 && code <= rofiExitCustomBase+8:
		return Action(code - rofiExitCustomBase + 1), true
	case code == rofiExitCustomBase+9:
		return ActionClear, true
	case code == rofiExitCustomBase+10:
		return ActionCopyTitle, true
	default:
		return 0, false
	}
}

func (r Rofi) args(prompt string, selected int, markupRows bool) []string {
	width := strings.TrimSpace(r.Width)
	if width == "" {
		width = "66%"
	}
	a := []string{
		"-dmenu",
		"-i",
		"-p", prompt,
		"-format", "i",
		"-selected-row", strconv.Itoa(selected),
		"-me-select-entry", "",
		"-me-accept-entry", "MousePrimary",
		"-theme-str", "window {width: " + width + ";}",
	}
	if markupRows {
		a = append(a, "-markup-rows")
	}
	return a
}

func (r Rofi) run(lines []string, args []string) (index int, exitCode int, err error) {
	cmd := exec.Command("rofi", args...)
	cmd.Stdin = strings.NewReader(strings.Join(lines, "\n"))
	var out bytes.Buffer
	cmd.Stdout = &out

	runErr := cmd.Run()
	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return 0, 0, runErr
	}
	exitCode = cmd.ProcessState.ExitCode()

	ans := strings.TrimSpace(out.String())
	if ans == "" {
		return -1, exitCode, nil
	}
	idx, err := strconv.Atoi(ans)
	if err != nil {
		return -1, exitCode, nil
	}
	return idx, exitCode, nil
}

func (r Rofi) Pick(lines []string, prompt string, selected int) (Response, error) {
	idx, code, err := r.run(lines, r.args(prompt, selected, true))
	if err != nil {
		return Response{}, err
	}
	action, known := actionFromExitCode(code)
	if idx < 0 || !known {
		return Response{}, nil // cancelled
	}
	return Response{Index: idx, Action: action, OK: true}, nil
}

// Confirm runs a second round-trip with a Yes/No menu; only an explicit "Yes"
// row confirms.
func (r Rofi) Confirm(prompt string) (bool, error) {
	idx, code, err := r.run([]string{"No", "Yes"}, r.args(prompt, 0, false))
	if err != nil {
		return false, err
	}
	return code == 0 && idx == 1, nil
}

// Installed reports whether rofi is available on PATH.
func Installed() bool {
	_, err := exec.LookPath("rofi")
	return err == nil
}
