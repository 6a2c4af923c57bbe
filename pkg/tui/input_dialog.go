package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputDialog collects one required line of text, such as a folder name
type InputDialog struct {
	Title    string
	Label    string
	input    textinput.Model
	onCommit func(value string)
	keys     dialogKeyMap
}

// NewInputDialog creates an inactive dialog
func NewInputDialog() *InputDialog {
	ti := textinput.New()
	ti.Placeholder = "Enter a name..."
	ti.CharLimit = 200
	ti.Width = 50

	return &InputDialog{
		input: ti,
		keys:  defaultDialogKeyMap(),
	}
}

// Open resets the dialog with a prefilled value and the action to run on confirm
func (d *InputDialog) Open(title, label, value string, onCommit func(string)) tea.Cmd {
	d.Title = title
	d.Label = label
	d.onCommit = onCommit
	d.input.SetValue(value)
	d.input.CursorEnd()
	return d.input.Focus()
}

// Value returns the current buffer
func (d *InputDialog) Value() string {
	return d.input.Value()
}

// Update handles a key and reports whether the dialog is finished. Confirming a
// blank value closes the dialog without running the commit.
func (d *InputDialog) Update(msg tea.KeyMsg) (done bool, cmd tea.Cmd) {
	switch {
	case key.Matches(msg, d.keys.Cancel):
		d.close()
		return true, nil

	case key.Matches(msg, d.keys.Confirm):
		value := strings.TrimSpace(d.input.Value())
		if value != "" && d.onCommit != nil {
			d.onCommit(value)
		}
		d.close()
		return true, nil
	}

	d.input, cmd = d.input.Update(msg)
	return false, cmd
}

func (d *InputDialog) close() {
	d.input.Blur()
	d.input.SetValue("")
	d.onCommit = nil
}

// View renders the dialog body; the caller centers and frames it
func (d *InputDialog) View() string {
	var b strings.Builder

	b.WriteString(TypeHeaderStyle.Render(strings.ToUpper(d.Title)))
	b.WriteString("\n\n")
	b.WriteString(HeaderStyle.Render(d.Label))
	b.WriteString("\n")
	b.WriteString(d.input.View())
	b.WriteString("\n\n")
	b.WriteString(dialogHelp())

	return b.String()
}

func dialogHelp() string {
	return "[" + EnterKeyStyle.Render("Enter") + "] Save  [" + EscKeyStyle.Render("Esc") + "] Cancel"
}
