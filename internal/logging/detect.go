package logging

import (
	"os"

	"golang.org/x/term"
)

// ColorEnabled reports whether output written to f may carry ANSI styling.
//
// Returns false if:
//   - LOADNAMES_NO_COLOR=1 is set
//   - NO_COLOR is set (accessibility/automation indicator)
//   - CI is set (common CI/CD convention)
//   - f is not a terminal (piped or redirected output)
func ColorEnabled(f *os.File) bool {
	if os.Getenv("LOADNAMES_NO_COLOR") == "1" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
