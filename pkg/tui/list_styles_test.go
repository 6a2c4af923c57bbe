package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestStaticStyles(t *testing.T) {
	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"ActiveBorderStyle", ActiveBorderStyle},
		{"SelectedStyle", SelectedStyle},
		{"NormalStyle", NormalStyle},
		{"FolderStyle", FolderStyle},
		{"AscendStyle", AscendStyle},
		{"TypeHeaderStyle", TypeHeaderStyle},
		{"HeaderStyle", HeaderStyle},
		{"ContentPaddingStyle", ContentPaddingStyle},
		{"EmptyActiveStyle", EmptyActiveStyle},
		{"DescriptionStyle", DescriptionStyle},
		{"UUIDStyle", UUIDStyle},
		{"StatusStyle", StatusStyle},
		{"StatusErrorStyle", StatusErrorStyle},
		{"EnterKeyStyle", EnterKeyStyle},
		{"EscKeyStyle", EscKeyStyle},
	}

	for _, tt := range styles {
		t.Run(tt.name, func(t *testing.T) {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("Style %s caused panic: %v", tt.name, r)
					}
				}()
				_ = tt.style.Render("test content")
			}()

			if output := tt.style.Render("test"); output == "" {
				t.Errorf("Style %s rendered empty output", tt.name)
			}
		})
	}
}

func TestGetActiveHeaderStyle(t *testing.T) {
	for _, active := range []bool{true, false} {
		if output := GetActiveHeaderStyle(active).Render("Title"); output == "" {
			t.Errorf("GetActiveHeaderStyle(%v) rendered empty output", active)
		}
	}

	if got := GetActiveHeaderStyle(true).GetForeground(); got != lipgloss.Color(ColorActive) {
		t.Errorf("active header foreground = %v, want %v", got, ColorActive)
	}
	if got := GetActiveHeaderStyle(false).GetForeground(); got != lipgloss.Color(ColorInactive) {
		t.Errorf("inactive header foreground = %v, want %v", got, ColorInactive)
	}
}
