// Package output creates the terminal writers that status reports and log
// records are printed through.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the colour profile for terminal output: plain text when
// NO_COLOR is set, the environment's profile otherwise.
func Profile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New returns an Output writing to w, or to stderr when w is nil.
func New(w io.Writer) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}
	return termenv.NewOutput(w, termenv.WithProfile(Profile()), termenv.WithTTY(true))
}
