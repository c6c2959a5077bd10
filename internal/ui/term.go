package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Pinned notes: bold yellow so they stand out at the top
	colorPinned = color.New(color.FgYellow, color.Bold)

	// Voice clip lengths: cyan
	colorVoice = color.New(color.FgCyan)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for timestamps and secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatPinned(s string) string {
	return colorPinned.Sprint(s)
}

func formatVoice(s string) string {
	return colorVoice.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
