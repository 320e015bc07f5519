package tui

import (
	"fmt"
	"io"
)

// PrintBanner writes the mcts-gen ASCII art banner to w.
func PrintBanner(w io.Writer) {
	o := NewOutput(w)
	// Subtle gradient (Teal/Green)
	lines := []struct{ text, color string }{
		{"  _ __ ___   ___| |_ ___        __ _  ___ _ __", "#2dd4bf"},
		{" | '_ ` _ \\ / __| __/ __|_____ / _` |/ _ \\ '_ \\", "#34d399"},
		{" | | | | | | (__| |_\\__ \\_____| (_| |  __/ | | |", "#4ade80"},
		{" |_| |_| |_|\\___|\\__|___/      \\__, |\\___|_| |_|", "#a3e635"},
		{"                               |___/", "#facc15"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, o.String(l.text).Foreground(o.Color(l.color)))
	}
	fmt.Fprintln(w)
}
