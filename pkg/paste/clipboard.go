package paste

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ClipboardSink copies the snippet to the system clipboard instead of typing it.
// The target is ignored.
type ClipboardSink struct {
	write func(string) error
}

// NewClipboardSink creates a sink backed by the system clipboard
func NewClipboardSink() *ClipboardSink {
	return &ClipboardSink{write: clipboard.WriteAll}
}

// Send copies the non-empty lines of text, newline separated
func (s *ClipboardSink) Send(_ context.Context, text, _ string) error {
	if err := s.write(strings.Join(Lines(text), "\n")); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	return nil
}
