// Package paste delivers resolved snippet text outside the tool.
package paste

import (
	"context"
	"fmt"
	"strings"

	"github.com/pluqqy/snipmux/pkg/models"
)

// Sink delivers text to a target. For tmux the target is a pane id such as "%3" or "work:1.0".
type Sink interface {
	Send(ctx context.Context, text, target string) error
}

// Lines splits text on line boundaries and drops empty lines
func Lines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// NewSink returns the sink selected by the dispatch settings
func NewSink(settings models.DispatchSettings) (Sink, error) {
	switch settings.Mode {
	case "", models.DispatchTmux:
		return NewTmuxSink(settings.TmuxBinary), nil
	case models.DispatchClipboard:
		return NewClipboardSink(), nil
	default:
		return nil, fmt.Errorf("unknown dispatch mode %q (must be: %s or %s)",
			settings.Mode, models.DispatchTmux, models.DispatchClipboard)
	}
}
