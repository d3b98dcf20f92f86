package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the ASCII art banner to w using the given color profile.
// termenv.Ascii yields plain text.
func PrintBanner(w io.Writer, p termenv.Profile) {
	// Gradient from teal to indigo
	lines := []struct {
		text  string
		color string
	}{
		{`  ____  _       _                       `, "#2dd4bf"},
		{` |  _ \(_)_ __ | | ___  _ __ ___   __ _ `, "#38bdf8"},
		{` | | | | | '_ \| |/ _ \| '_ ' _ \ / _' |`, "#60a5fa"},
		{` | |_| | | |_) | | (_) | | | | | | (_| |`, "#818cf8"},
		{` |____/|_| .__/|_|\___/|_| |_| |_|\__,_|`, "#a78bfa"},
		{`          |_|                           `, "#c084fc"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w)
}
