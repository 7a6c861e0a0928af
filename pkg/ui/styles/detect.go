package styles

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// IsInteractive reports whether f is attached to a terminal
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// PreferMinimal reports whether output to f should fall back to the
// minimal UI: NO_COLOR is set, f is piped, or the terminal has no colors.
func PreferMinimal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	if !IsInteractive(f) {
		return true
	}
	return termenv.ColorProfile() == termenv.Ascii
}
