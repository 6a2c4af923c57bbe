package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateTarget checks a tmux target such as "%3", "work:1.0" or "work:editor"
func ValidateTarget(target string) error {
	if strings.TrimSpace(target) == "" {
		return fmt.Errorf("target pane cannot be empty")
	}
	if strings.ContainsAny(target, "\n\r") {
		return fmt.Errorf("target pane contains a line break: %q", target)
	}
	return nil
}

// ParseSnippetID parses a snippet identity given on the command line
func ParseSnippetID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid snippet id %q: %w", raw, err)
	}
	return id, nil
}

// Contains checks if a string is in a slice
func Contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
