package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/pluqqy/snipmux/pkg/examples"
	"github.com/pluqqy/snipmux/pkg/files"
	"github.com/pluqqy/snipmux/pkg/tree"
)

const ascendLabel = ".."

func (a *App) rowCount() int {
	return tree.RowCount(a.store.Current(), a.store.IsAtRoot())
}

func (a *App) selectedRow() tree.Row {
	return tree.Resolve(a.store.Current(), a.store.IsAtRoot(), a.cursor)
}

// selectID puts the cursor on the row holding id, or clamps it when id is not listed
func (a *App) selectID(id uuid.UUID) {
	if i := tree.IndexOf(a.store.Current(), a.store.IsAtRoot(), id); i >= 0 {
		a.cursor = i
		return
	}
	a.cursor = tree.ClampCursor(a.cursor, a.rowCount())
}

func (a *App) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	a.statusMsg = ""

	switch {
	case key.Matches(keyMsg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(keyMsg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(keyMsg, a.keys.Down):
		if a.cursor < a.rowCount()-1 {
			a.cursor++
		}

	case key.Matches(keyMsg, a.keys.Top):
		a.cursor = 0

	case key.Matches(keyMsg, a.keys.Bottom):
		a.cursor = tree.ClampCursor(a.rowCount()-1, a.rowCount())

	case key.Matches(keyMsg, a.keys.Activate):
		return a.activate()

	case key.Matches(keyMsg, a.keys.Ascend):
		a.ascend()

	case key.Matches(keyMsg, a.keys.Root):
		a.store.GoToRoot()
		a.cursor = 0

	case key.Matches(keyMsg, a.keys.AddSnippet):
		return a, a.openAddSnippet()

	case key.Matches(keyMsg, a.keys.Edit):
		return a, a.openEdit()

	case key.Matches(keyMsg, a.keys.AddFolder):
		return a, a.openAddFolder()

	case key.Matches(keyMsg, a.keys.View):
		a.openViewer()

	case key.Matches(keyMsg, a.keys.Delete):
		a.deleteSelected()

	case key.Matches(keyMsg, a.keys.Examples):
		a.installExamples()
	}

	return a, nil
}

// activate handles Enter: the ascend row goes up, a folder row descends and a
// snippet row is dispatched
func (a *App) activate() (tea.Model, tea.Cmd) {
	row := a.selectedRow()
	switch row.Kind {
	case tree.RowAscend:
		a.ascend()
	case tree.RowFolder:
		a.store.Descend(row.ID)
		a.cursor = 0
	case tree.RowSnippet:
		return a.dispatch(row.ID)
	}
	return a, nil
}

// ascend moves to the parent and selects the folder just left
func (a *App) ascend() {
	if a.store.IsAtRoot() {
		return
	}
	left := a.store.Current().ID
	a.store.Ascend()
	a.cursor = 0
	a.selectID(left)
}

func (a *App) dispatch(id uuid.UUID) (tea.Model, tea.Cmd) {
	snippet := a.store.Current().Snippet(id)
	if snippet == nil {
		return a, nil
	}
	log := a.logger.WithField("snippet", snippet.ID)

	text, err := files.ResolveContent(a.paths, snippet)
	if err != nil {
		log.WithError(err).Error("failed to resolve snippet")
		a.setError(fmt.Sprintf("✗ Dispatch failed: %v", err))
		return a, nil
	}

	if a.sink == nil {
		a.setError("✗ Dispatch failed: no paste target configured")
		return a, nil
	}
	if err := a.sink.Send(context.Background(), text, a.target); err != nil {
		log.WithError(err).WithField("target", a.target).Error("failed to dispatch snippet")
		a.setError(fmt.Sprintf("✗ Dispatch failed: %v", err))
		return a, nil
	}

	log.WithField("target", a.target).Info("snippet dispatched")
	a.dispatched = snippet
	return a, tea.Quit
}

func (a *App) openAddFolder() tea.Cmd {
	a.mode = modeSingleInput
	return a.input.Open("New folder", "Name:", "", func(name string) {
		id := a.store.AddFolder(name)
		a.selectID(id)
		a.setStatus(fmt.Sprintf("✓ Added folder %s", name))
	})
}

func (a *App) openAddSnippet() tea.Cmd {
	a.mode = modeDualInput
	return a.snippet.Open("New snippet", "", "", false, func(title, content string, fromFile bool) {
		id := a.store.AddSnippet(title, content, fromFile)
		a.selectID(id)
		a.setStatus(fmt.Sprintf("✓ Added snippet %s", title))
	})
}

// openEdit renames the selected folder or edits the selected snippet
func (a *App) openEdit() tea.Cmd {
	row := a.selectedRow()
	current := a.store.Current()

	switch row.Kind {
	case tree.RowFolder:
		folder := current.Subfolder(row.ID)
		a.mode = modeSingleInput
		return a.input.Open("Rename folder", "Name:", folder.Name, func(name string) {
			a.store.RenameFolder(row.ID, name)
		})

	case tree.RowSnippet:
		snippet := current.Snippet(row.ID)
		a.mode = modeDualInput
		return a.snippet.Open("Edit snippet", snippet.Title, snippet.Content, snippet.FromFile,
			func(title, content string, fromFile bool) {
				a.store.EditSnippet(row.ID, title, content, fromFile)
			})
	}
	return nil
}

func (a *App) openViewer() {
	row := a.selectedRow()
	if row.Kind != tree.RowSnippet {
		return
	}
	a.viewer.Open(a.store.Current().Snippet(row.ID))
	a.mode = modeContentView
}

// deleteSelected removes the folder or snippet under the cursor. The ascend row is not deletable.
func (a *App) deleteSelected() {
	row := a.selectedRow()
	switch row.Kind {
	case tree.RowFolder:
		a.store.DeleteFolder(row.ID)
	case tree.RowSnippet:
		a.store.DeleteSnippet(row.ID)
	default:
		return
	}
	a.cursor = tree.ClampCursor(a.cursor, a.rowCount())
}

// installExamples seeds an empty tree
func (a *App) installExamples() {
	if !a.store.Root().IsEmpty() {
		a.setError("Examples can only be added to an empty tree (use the examples command)")
		return
	}
	result := examples.Install(a.store, examples.GetExamples("all"), false)
	a.cursor = tree.ClampCursor(a.cursor, a.rowCount())
	a.setStatus(fmt.Sprintf("✓ Added %d examples", len(result.Installed)))
	a.logger.WithField("count", len(result.Installed)).Info("examples installed")
}

func (a *App) browseView() string {
	var b strings.Builder

	b.WriteString(renderHeader(a.width, a.store.Path(), a.target))
	b.WriteString("\n\n")

	footer := ""
	if a.showHelp {
		footer = a.help.ShortHelpView(a.keys.ShortHelp())
	}

	// header (2), footer (2) and status bar (1)
	visible := a.height - 5
	if visible < 1 {
		visible = 1
	}

	count := a.rowCount()
	if count == 0 {
		b.WriteString(ContentPaddingStyle.Render(EmptyActiveStyle.Render("Nothing here yet.")))
		b.WriteString("\n")
		hint := "Press F1/a to add a snippet or F3/n to add a folder."
		if a.store.Root().IsEmpty() {
			hint += " Press E to add examples."
		}
		b.WriteString(ContentPaddingStyle.Render(DescriptionStyle.Render(hint)))
		b.WriteString("\n")
	}

	start, end := visibleRange(a.cursor, count, visible)
	for i := start; i < end; i++ {
		b.WriteString(a.renderRow(i))
		b.WriteString("\n")
	}

	if footer != "" {
		b.WriteString("\n")
		b.WriteString(ContentPaddingStyle.Render(footer))
	}

	return b.String()
}

func (a *App) renderRow(index int) string {
	row := tree.Resolve(a.store.Current(), a.store.IsAtRoot(), index)
	current := a.store.Current()

	var label string
	switch row.Kind {
	case tree.RowAscend:
		label = AscendStyle.Render(ascendLabel)
	case tree.RowFolder:
		label = FolderStyle.Render(current.Subfolder(row.ID).Name + "/")
	case tree.RowSnippet:
		s := current.Snippet(row.ID)
		label = NormalStyle.Render(s.Title)
		if s.FromFile {
			label += " " + UUIDStyle.Render("[file]")
		}
	default:
		return ""
	}

	if index == a.cursor {
		return ContentPaddingStyle.Render(SelectedStyle.Render("▸ ") + label)
	}
	return ContentPaddingStyle.Render("  " + label)
}

// visibleRange returns the window of rows to draw so that cursor stays on screen
func visibleRange(cursor, count, height int) (start, end int) {
	if count <= height {
		return 0, count
	}
	if cursor >= height {
		start = cursor - height + 1
	}
	end = start + height
	if end > count {
		end = count
		start = end - height
	}
	return start, end
}
