package cli

import "fmt"

type unknownPickerError struct {
	mode string
}

func (e unknownPickerError) Error() string {
	return fmt.Sprintf("unknown picker %q (want rofi, builtin or auto)", e.mode)
}

type needConfirmError struct {
	items int
}

func (e needConfirmError) Error() string {
	return fmt.Sprintf("refusing to clear %d items without --yes", e.items)
}
