package tui

import (
	"github.com/charmbracelet/glamour"
)

// NoTTYStyle is the glamour style for pipes and files.
const NoTTYStyle = "notty"

// NewRenderer returns a function that renders markdown using glamour.
// An empty style detects the terminal background (light/dark).
// If the renderer cannot be built, the markdown is returned unchanged.
func NewRenderer(style string) func(string) (string, error) {
	styleOpt := glamour.WithAutoStyle()
	if style != "" {
		styleOpt = glamour.WithStandardStyle(style)
	}

	r, err := glamour.NewTermRenderer(styleOpt, glamour.WithWordWrap(80))
	if err != nil {
		return func(markdown string) (string, error) {
			return markdown, nil
		}
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}
