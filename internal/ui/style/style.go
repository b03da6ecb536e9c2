// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
	Circle  = "○"
	Pause   = "…"
)

// Heading returns the bold section heading style bound to r.
func Heading(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Bold(true).Foreground(Iris)
}

// Muted returns the style for secondary information bound to r.
func Muted(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Slate)
}
