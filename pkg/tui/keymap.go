package tui

import "github.com/charmbracelet/bubbles/key"

// browseKeyMap defines key bindings for each browse action
type browseKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Top        key.Binding
	Bottom     key.Binding
	Activate   key.Binding
	Ascend     key.Binding
	Root       key.Binding
	AddSnippet key.Binding
	Edit       key.Binding
	AddFolder  key.Binding
	View       key.Binding
	Delete     key.Binding
	Examples   key.Binding
	Quit       key.Binding
}

func defaultBrowseKeyMap() browseKeyMap {
	return browseKeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Top:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Activate:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open/send")),
		Ascend:     key.NewBinding(key.WithKeys("backspace", "left", "h"), key.WithHelp("←/h", "up a folder")),
		Root:       key.NewBinding(key.WithKeys("~"), key.WithHelp("~", "root")),
		AddSnippet: key.NewBinding(key.WithKeys("f1", "a"), key.WithHelp("F1/a", "add snippet")),
		Edit:       key.NewBinding(key.WithKeys("f2", "e"), key.WithHelp("F2/e", "edit")),
		AddFolder:  key.NewBinding(key.WithKeys("f3", "n"), key.WithHelp("F3/n", "new folder")),
		View:       key.NewBinding(key.WithKeys("f4", "v"), key.WithHelp("F4/v", "view")),
		Delete:     key.NewBinding(key.WithKeys("delete", "d"), key.WithHelp("del/d", "delete")),
		Examples:   key.NewBinding(key.WithKeys("E"), key.WithHelp("E", "add examples")),
		Quit:       key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc/q", "quit")),
	}
}

// ShortHelp lists the bindings shown in the footer
func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Activate, k.Ascend, k.AddSnippet, k.Edit, k.AddFolder, k.View, k.Delete, k.Quit}
}

// FullHelp groups every binding
func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Activate, k.Ascend, k.Root},
		{k.AddSnippet, k.Edit, k.AddFolder, k.View, k.Delete},
		{k.Examples, k.Quit},
	}
}

// dialogKeyMap is shared by the single and snippet dialogs
type dialogKeyMap struct {
	Confirm   key.Binding
	Cancel    key.Binding
	NextField key.Binding
	PrevField key.Binding
	Toggle    key.Binding
	Newline   key.Binding
}

func defaultDialogKeyMap() dialogKeyMap {
	return dialogKeyMap{
		Confirm:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextField: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Newline:   key.NewBinding(key.WithKeys("ctrl+j", "alt+enter"), key.WithHelp("ctrl+j", "new line")),
	}
}
