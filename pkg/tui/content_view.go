package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/muesli/reflow/wordwrap"

	"github.com/pluqqy/snipmux/pkg/models"
)

// ContentViewer shows one snippet read-only. Any key or mouse press closes it.
type ContentViewer struct {
	snippet  *models.Snippet
	showUUID bool
	viewport viewport.Model
	width    int
	height   int
}

// NewContentViewer creates an empty viewer
func NewContentViewer(showUUID bool) *ContentViewer {
	return &ContentViewer{
		showUUID: showUUID,
		viewport: viewport.New(80, 20),
	}
}

// SetSize updates the viewer dimensions
func (v *ContentViewer) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = max(width-4, 20)
	// header, metadata and footer lines
	v.viewport.Height = max(height-8, 3)
	v.refresh()
}

// Open loads a snippet into the viewer
func (v *ContentViewer) Open(snippet *models.Snippet) {
	v.snippet = snippet
	v.refresh()
	v.viewport.GotoTop()
}

// Snippet returns the snippet on display
func (v *ContentViewer) Snippet() *models.Snippet {
	return v.snippet
}

func (v *ContentViewer) refresh() {
	if v.snippet == nil {
		v.viewport.SetContent("")
		return
	}
	v.viewport.SetContent(wordwrap.String(v.snippet.Content, v.viewport.Width))
}

// View renders the snippet title, its metadata and the content
func (v *ContentViewer) View() string {
	if v.snippet == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(TypeHeaderStyle.Render(v.snippet.Title))
	b.WriteString("\n")

	var meta []string
	if v.snippet.FromFile {
		meta = append(meta, "content is read from file")
	}
	if v.showUUID {
		meta = append(meta, v.snippet.ID.String())
	}
	if len(meta) > 0 {
		b.WriteString(UUIDStyle.Render(strings.Join(meta, " · ")))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(v.viewport.View())
	b.WriteString("\n\n")
	b.WriteString(DescriptionStyle.Render("press any key to return"))

	return ContentPaddingStyle.Render(b.String())
}
