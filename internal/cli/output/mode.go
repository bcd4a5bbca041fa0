// Package output renders CLI output for terminals, pipes, and machines.
//
// Output adapts to the environment:
//   - Terminal: styled text
//   - Piped/Scripted: markdown
//   - JSON: machine-readable
package output

import "fmt"

// Mode selects how command output is rendered.
type Mode string

// Output modes.
const (
	ModeAuto     Mode = "auto"
	ModeText     Mode = "text"
	ModeMarkdown Mode = "markdown"
	ModeJSON     Mode = "json"
)

// Modes lists every accepted mode.
var Modes = []Mode{ModeAuto, ModeText, ModeMarkdown, ModeJSON}

// ParseMode validates a mode name. Empty means auto.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return ModeAuto, nil
	}
	for _, m := range Modes {
		if Mode(s) == m {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid output mode %q (use auto, text, markdown, or json)", s)
}
