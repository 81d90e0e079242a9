package errhandler

import (
	"errors"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
)

// HandleInterrupt exits cleanly when err means the user cancelled an
// interactive prompt. Any other error passes through untouched so the
// caller can report it as a real failure.
func HandleInterrupt(err error) {
	if err == nil {
		return
	}
	if errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted) || strings.Contains(err.Error(), "interrupt") {
		pterm.Warning.Println("Operation cancelled")
		os.Exit(0)
	}
}
