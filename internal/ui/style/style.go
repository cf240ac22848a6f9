// Package style maps build and log outcomes to the markers and colours the
// terminal output uses.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Tone is the marker and colour of one kind of outcome.
type Tone struct {
	Marker string
	Color  lipgloss.Color
}

// Outcome tones.
var (
	Succeeded = Tone{Marker: "✓", Color: lipgloss.Color("#22A06B")}
	Failed    = Tone{Marker: "✗", Color: lipgloss.Color("#D93025")}
	Warned    = Tone{Marker: "!", Color: lipgloss.Color("#F59E0B")}
	Detail    = Tone{Marker: "●", Color: lipgloss.Color("#667085")}
)

// Paint renders s in the tone's colour, degraded to the profile of out.
func (t Tone) Paint(out *termenv.Output, s string) string {
	return out.String(s).Foreground(out.Color(string(t.Color))).String()
}

// Mark prefixes s with the tone's marker and paints the result.
func (t Tone) Mark(out *termenv.Output, s string) string {
	return t.Paint(out, t.Marker+" "+s)
}
