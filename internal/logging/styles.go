package logging

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - keeping it minimal and accessible.
var (
	colorError = lipgloss.Color("196") // Red
	colorMuted = lipgloss.Color("240") // Dark gray
)

const (
	verbosePrefix = "[VERBOSE]"
	errorPrefix   = "[ERROR]"
)

// prefixes holds the rendered message prefixes for one output stream.
type prefixes struct {
	verbose string
	err     string
}

func plainPrefixes() prefixes {
	return prefixes{verbose: verbosePrefix, err: errorPrefix}
}

// styledPrefixes renders the prefixes for w, letting lipgloss pick the
// color profile of that stream.
func styledPrefixes(w io.Writer) prefixes {
	r := lipgloss.NewRenderer(w)
	return prefixes{
		verbose: r.NewStyle().Foreground(colorMuted).Render(verbosePrefix),
		err:     r.NewStyle().Foreground(colorError).Bold(true).Render(errorPrefix),
	}
}
