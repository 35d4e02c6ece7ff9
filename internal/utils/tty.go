package utils

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// IsTTY reports whether both prompting and rendering can happen in a terminal.
func IsTTY() bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}

	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}

	// Bubble Tea and huh open /dev/tty directly
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return false
	}
	defer tty.Close()

	return true
}
