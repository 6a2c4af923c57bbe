package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type snippetField int

const (
	fieldTitle snippetField = iota
	fieldContent
	fieldFromFile
	fieldCount
)

// SnippetDialog collects a title, content and the from-file flag. Title and
// content are both required.
type SnippetDialog struct {
	Title    string
	title    textinput.Model
	content  textarea.Model
	fromFile bool
	focus    snippetField
	// the textarea rewrites some characters (tabs become spaces), so an
	// untouched buffer commits the content it was opened with
	original string
	loaded   string
	onCommit func(title, content string, fromFile bool)
	keys     dialogKeyMap
}

// NewSnippetDialog creates an inactive dialog
func NewSnippetDialog() *SnippetDialog {
	keys := defaultDialogKeyMap()

	ti := textinput.New()
	ti.Placeholder = "Snippet title..."
	ti.CharLimit = 200
	ti.Width = 50

	ta := textarea.New()
	ta.Placeholder = "Commands, one per line (or a file name)"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(60)
	ta.SetHeight(6)
	// Enter saves the dialog, so new lines need their own key
	ta.KeyMap.InsertNewline = keys.Newline

	return &SnippetDialog{
		title:   ti,
		content: ta,
		keys:    keys,
	}
}

// Open resets the dialog with prefilled values and the action to run on confirm
func (d *SnippetDialog) Open(heading, title, content string, fromFile bool, onCommit func(title, content string, fromFile bool)) tea.Cmd {
	d.Title = heading
	d.onCommit = onCommit
	d.title.SetValue(title)
	d.title.CursorEnd()
	d.content.SetValue(content)
	d.original = content
	d.loaded = d.content.Value()
	d.fromFile = fromFile
	return d.setFocus(fieldTitle)
}

// Values returns the current buffers
func (d *SnippetDialog) Values() (title, content string, fromFile bool) {
	return d.title.Value(), d.content.Value(), d.fromFile
}

// SetSize fits the content area to the terminal
func (d *SnippetDialog) SetSize(width, height int) {
	w := dialogWidth(width) - 8
	d.title.Width = w - 2
	d.content.SetWidth(w)

	h := height/3 - 2
	if h < 3 {
		h = 3
	}
	d.content.SetHeight(h)
}

// Update handles a key and reports whether the dialog is finished. A blank title
// or blank content closes the dialog without running the commit.
func (d *SnippetDialog) Update(msg tea.KeyMsg) (done bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Cancel):
		d.close()
		return true, nil

	case key.Matches(msg, d.keys.Confirm):
		title := strings.TrimSpace(d.title.Value())
		content := d.content.Value()
		if content == d.loaded {
			content = d.original
		}
		if title != "" && strings.TrimSpace(content) != "" && d.onCommit != nil {
			d.onCommit(title, content, d.fromFile)
		}
		d.close()
		return true, nil

	case key.Matches(msg, d.keys.NextField):
		return false, d.setFocus((d.focus + 1) % fieldCount)

	case key.Matches(msg, d.keys.PrevField):
		return false, d.setFocus((d.focus + fieldCount - 1) % fieldCount)
	}

	switch d.focus {
	case fieldTitle:
		d.title, cmd = d.title.Update(msg)
	case fieldContent:
		d.content, cmd = d.content.Update(msg)
	case fieldFromFile:
		if key.Matches(msg, d.keys.Toggle) {
			d.fromFile = !d.fromFile
		}
	}
	return false, cmd
}

func (d *SnippetDialog) setFocus(field snippetField) tea.Cmd {
	d.focus = field
	d.title.Blur()
	d.content.Blur()

	switch field {
	case fieldTitle:
		return d.title.Focus()
	case fieldContent:
		return d.content.Focus()
	}
	return nil
}

func (d *SnippetDialog) close() {
	d.title.Blur()
	d.content.Blur()
	d.title.SetValue("")
	d.content.SetValue("")
	d.original = ""
	d.loaded = ""
	d.fromFile = false
	d.focus = fieldTitle
	d.onCommit = nil
}

// View renders the dialog body; the caller centers and frames it
func (d *SnippetDialog) View() string {
	var b strings.Builder

	b.WriteString(TypeHeaderStyle.Render(strings.ToUpper(d.Title)))
	b.WriteString("\n\n")

	b.WriteString(GetActiveHeaderStyle(d.focus == fieldTitle).Render("Title:"))
	b.WriteString("\n")
	b.WriteString(d.title.View())
	b.WriteString("\n\n")

	b.WriteString(GetActiveHeaderStyle(d.focus == fieldContent).Render("Content:"))
	b.WriteString("\n")
	b.WriteString(d.content.View())
	b.WriteString("\n\n")

	check := "[ ]"
	if d.fromFile {
		check = "[x]"
	}
	b.WriteString(GetActiveHeaderStyle(d.focus == fieldFromFile).Render(check + " Content is a file name"))
	b.WriteString("\n\n")

	b.WriteString(dialogHelp())
	b.WriteString("  ")
	b.WriteString(DescriptionStyle.Render("tab: next field  ctrl+j: new line  space: toggle"))

	return b.String()
}
