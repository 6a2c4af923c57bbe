package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pluqqy/snipmux/pkg/files"
	"github.com/pluqqy/snipmux/pkg/paste"
	"github.com/pluqqy/snipmux/pkg/tree"
)

// recordingRunner stands in for the tmux binary
type recordingRunner struct {
	calls [][]string
	err   error
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func (r *recordingRunner) sentLines() []string {
	var lines []string
	for _, call := range r.calls {
		if len(call) == 7 && call[4] == "-l" && call[5] == "--" {
			lines = append(lines, call[6])
		}
	}
	return lines
}

func newTestApp(t *testing.T, store *tree.Store) (*App, *recordingRunner) {
	t.Helper()
	runner := &recordingRunner{}
	app := NewApp(Config{
		Store:    store,
		Sink:     &paste.TmuxSink{Binary: "tmux", Runner: runner},
		Target:   "%3",
		Paths:    files.Paths{DataDir: t.TempDir()},
		ShowHelp: true,
		ShowUUID: true,
	})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return app, runner
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyOf(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func send(a *App, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = a.Update(msg)
	}
	return cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestApp_StartsInBrowse(t *testing.T) {
	app, _ := newTestApp(t, nil)
	assert.Equal(t, modeBrowse, app.mode)
	assert.Equal(t, 0, app.cursor)
	assert.Nil(t, app.Init())
}

func TestApp_DispatchSendsNonEmptyLines(t *testing.T) {
	store := tree.NewStore()
	id := store.AddSnippet("two commands", "echo a\n\necho b", false)
	app, runner := newTestApp(t, store)

	cmd := send(app, keyOf(tea.KeyEnter))

	assert.Equal(t, []string{"echo a", "echo b"}, runner.sentLines())
	assert.Len(t, runner.calls, 4)
	for _, call := range runner.calls {
		assert.Equal(t, "%3", call[3])
	}
	assert.True(t, isQuit(cmd))
	require.NotNil(t, app.Dispatched())
	assert.Equal(t, id, app.Dispatched().ID)
}

func TestApp_FailedDispatchStaysInBrowse(t *testing.T) {
	store := tree.NewStore()
	store.AddSnippet("ls", "ls -la", false)
	app, runner := newTestApp(t, store)
	runner.err = errors.New("can't find pane: %3")

	cmd := send(app, keyOf(tea.KeyEnter))

	assert.False(t, isQuit(cmd))
	assert.Equal(t, modeBrowse, app.mode)
	assert.True(t, app.statusErr)
	assert.Contains(t, app.statusMsg, "can't find pane")
	assert.Nil(t, app.Dispatched())
	assert.Contains(t, app.View(), "Dispatch failed")
}

func TestApp_DispatchFromFile(t *testing.T) {
	store := tree.NewStore()
	store.AddSnippet("script", "deploy.sh", true)
	app, runner := newTestApp(t, store)
	require.NoError(t, os.WriteFile(filepath.Join(app.paths.DataDir, "deploy.sh"), []byte("make build\nmake deploy\n"), 0644))

	cmd := send(app, keyOf(tea.KeyEnter))

	assert.True(t, isQuit(cmd))
	assert.Equal(t, []string{"make build", "make deploy"}, runner.sentLines())
}

func TestApp_DispatchFromMissingFileIsReported(t *testing.T) {
	store := tree.NewStore()
	store.AddSnippet("script", "missing.sh", true)
	app, runner := newTestApp(t, store)

	cmd := send(app, keyOf(tea.KeyEnter))

	assert.False(t, isQuit(cmd))
	assert.Empty(t, runner.calls)
	assert.True(t, app.statusErr)
	assert.Contains(t, app.statusMsg, "missing.sh")
}

func TestApp_EnterOnFolderDescends(t *testing.T) {
	store := tree.NewStore()
	a := store.AddFolder("A")
	store.AddSnippet("root snippet", "x", false)
	app, runner := newTestApp(t, store)

	// Folder rows come before snippet rows at the root
	send(app, keyOf(tea.KeyDown), keyOf(tea.KeyUp))
	cmd := send(app, keyOf(tea.KeyEnter))

	assert.Nil(t, cmd)
	assert.Empty(t, runner.calls)
	assert.False(t, store.IsAtRoot())
	assert.Equal(t, a, store.Current().ID)
	assert.Equal(t, 0, app.cursor)
	assert.Equal(t, tree.RowAscend, app.selectedRow().Kind)

	// Enter on the ascend row goes back up and selects the folder just left
	send(app, keyOf(tea.KeyEnter))
	assert.True(t, store.IsAtRoot())
	assert.Equal(t, tree.Row{Kind: tree.RowFolder, ID: a}, app.selectedRow())
	assert.Empty(t, runner.calls)
}

func TestApp_AscendSelectsFolderJustLeft(t *testing.T) {
	store := tree.NewStore()
	for _, name := range []string{"A", "B", "C"} {
		store.AddFolder(name)
	}
	store.AddSnippet("s", "x", false)
	app, _ := newTestApp(t, store)

	send(app, keyOf(tea.KeyDown), keyOf(tea.KeyDown))
	left := app.selectedRow().ID
	send(app, keyOf(tea.KeyEnter))
	require.Equal(t, left, store.Current().ID)

	// Move to the last row of the child, then ascend with h
	send(app, runeKey("G"), runeKey("h"))

	assert.True(t, store.IsAtRoot())
	assert.Equal(t, 2, app.cursor)
	assert.Equal(t, left, app.selectedRow().ID)

	// Ascending at the root does nothing
	send(app, keyOf(tea.KeyBackspace))
	assert.Equal(t, 2, app.cursor)
}

func TestApp_RootKeyResetsCursor(t *testing.T) {
	store := tree.NewStore()
	a := store.AddFolder("A")
	store.Descend(a)
	b := store.AddFolder("B")
	store.GoToRoot()
	app, _ := newTestApp(t, store)

	send(app, keyOf(tea.KeyEnter), keyOf(tea.KeyDown), keyOf(tea.KeyEnter))
	require.Equal(t, b, store.Current().ID)

	send(app, runeKey("~"))
	assert.True(t, store.IsAtRoot())
	assert.Equal(t, 0, app.cursor)
}

func TestApp_CursorIsBounded(t *testing.T) {
	store := tree.NewStore()
	store.AddSnippet("one", "1", false)
	store.AddSnippet("two", "2", false)
	app, _ := newTestApp(t, store)

	send(app, keyOf(tea.KeyUp))
	assert.Equal(t, 0, app.cursor)

	send(app, runeKey("j"), runeKey("j"), runeKey("j"))
	assert.Equal(t, 1, app.cursor)

	send(app, runeKey("g"))
	assert.Equal(t, 0, app.cursor)

	send(app, runeKey("G"))
	assert.Equal(t, 1, app.cursor)
}

func TestApp_DeleteSkipsAscendRow(t *testing.T) {
	store := tree.NewStore()
	a := store.AddFolder("A")
	store.Descend(a)
	store.AddSnippet("keep", "x", false)
	app, _ := newTestApp(t, store)

	require.Equal(t, tree.RowAscend, app.selectedRow().Kind)
	send(app, runeKey("d"))
	assert.Equal(t, a, store.Current().ID)
	assert.Len(t, store.Current().Snippets, 1)

	send(app, runeKey("j"), keyOf(tea.KeyDelete))
	assert.Empty(t, store.Current().Snippets)
	assert.Equal(t, 0, app.cursor)
	assert.Equal(t, 1, app.rowCount())
}

func TestApp_DeleteClampsCursor(t *testing.T) {
	store := tree.NewStore()
	store.AddFolder("A")
	store.AddSnippet("one", "1", false)
	store.AddSnippet("two", "2", false)
	app, _ := newTestApp(t, store)

	send(app, runeKey("G"))
	require.Equal(t, 2, app.cursor)

	for count := 3; count > 0; count-- {
		require.Equal(t, count, app.rowCount())
		send(app, runeKey("d"))
		assert.Equal(t, count-1, app.rowCount())
		assert.Equal(t, tree.ClampCursor(app.cursor, app.rowCount()), app.cursor)
	}
	assert.Equal(t, 0, app.cursor)
	assert.Equal(t, tree.RowOutOfRange, app.selectedRow().Kind)

	// Deleting with nothing selected is harmless
	send(app, runeKey("d"))
	assert.Equal(t, 0, app.rowCount())
}

func TestApp_AddSnippet(t *testing.T) {
	store := tree.NewStore()
	store.AddSnippet("first", "1", false)
	app, _ := newTestApp(t, store)

	send(app, keyOf(tea.KeyF1))
	require.Equal(t, modeDualInput, app.mode)

	send(app, runeKey("greet"), keyOf(tea.KeyTab), runeKey("echo hi"))
	title, content, fromFile := app.snippet.Values()
	assert.Equal(t, "greet", title)
	assert.Equal(t, "echo hi", content)
	assert.False(t, fromFile)

	send(app, keyOf(tea.KeyEnter))

	assert.Equal(t, modeBrowse, app.mode)
	require.Len(t, store.Current().Snippets, 2)
	added := store.Current().Snippets[1]
	assert.Equal(t, "greet", added.Title)
	assert.Equal(t, "echo hi", added.Content)
	assert.Equal(t, 1, app.cursor)
	assert.Contains(t, app.statusMsg, "greet")
}

func TestApp_SnippetDialogFromFileToggle(t *testing.T) {
	app, _ := newTestApp(t, nil)

	send(app, runeKey("a"), runeKey("build"), keyOf(tea.KeyTab), runeKey("build.sh"))
	send(app, keyOf(tea.KeyTab), keyOf(tea.KeySpace))
	_, _, fromFile := app.snippet.Values()
	require.True(t, fromFile)

	// shift+tab cycles back round to the checkbox's neighbour
	send(app, keyOf(tea.KeyShiftTab))
	assert.Equal(t, fieldContent, app.snippet.focus)

	send(app, keyOf(tea.KeyEnter))
	require.Len(t, app.Store().Current().Snippets, 1)
	assert.True(t, app.Store().Current().Snippets[0].FromFile)
}

func TestApp_EmptyTitleSnippetIsDiscarded(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		content string
	}{
		{name: "empty title", title: "", content: "echo hi"},
		{name: "blank title", title: "   ", content: "echo hi"},
		{name: "empty content", title: "greet", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tree.NewStore()
			app, _ := newTestApp(t, store)

			send(app, runeKey("a"))
			if tt.title != "" {
				send(app, runeKey(tt.title))
			}
			send(app, keyOf(tea.KeyTab))
			if tt.content != "" {
				send(app, runeKey(tt.content))
			}
			send(app, keyOf(tea.KeyEnter))

			assert.Equal(t, modeBrowse, app.mode)
			assert.Empty(t, store.Current().Snippets)
			assert.Empty(t, app.statusMsg)
		})
	}
}

func TestApp_EditSnippet(t *testing.T) {
	store := tree.NewStore()
	id := store.AddSnippet("old", "echo old", false)
	app, _ := newTestApp(t, store)

	send(app, runeKey("e"))
	require.Equal(t, modeDualInput, app.mode)
	title, content, _ := app.snippet.Values()
	assert.Equal(t, "old", title)
	assert.Equal(t, "echo old", content)

	send(app, runeKey("er"), keyOf(tea.KeyEnter))

	s := store.FindSnippet(id)
	assert.Equal(t, "older", s.Title)
	assert.Equal(t, "echo old", s.Content)
	assert.Len(t, store.Current().Snippets, 1)
}

func TestApp_EditSnippetKeepsTabs(t *testing.T) {
	tests := []struct {
		name    string
		keys    []tea.Msg
		title   string
		content string
	}{
		{
			name:    "unchanged content",
			keys:    []tea.Msg{keyOf(tea.KeyEnter)},
			title:   "heredoc",
			content: "cat <<-EOF\n\tindented\nEOF",
		},
		{
			name:    "title change only",
			keys:    []tea.Msg{runeKey("2"), keyOf(tea.KeyEnter)},
			title:   "heredoc2",
			content: "cat <<-EOF\n\tindented\nEOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tree.NewStore()
			id := store.AddSnippet("heredoc", "cat <<-EOF\n\tindented\nEOF", false)
			app, _ := newTestApp(t, store)

			send(app, runeKey("e"))
			require.Equal(t, modeDualInput, app.mode)
			send(app, tt.keys...)

			s := store.FindSnippet(id)
			assert.Equal(t, tt.title, s.Title)
			assert.Equal(t, tt.content, s.Content)
		})
	}
}

func TestApp_EditSnippetContentChangeIsStored(t *testing.T) {
	store := tree.NewStore()
	id := store.AddSnippet("ls", "ls", false)
	app, _ := newTestApp(t, store)

	send(app, runeKey("e"), keyOf(tea.KeyTab), keyOf(tea.KeyEnd), runeKey(" -la"), keyOf(tea.KeyEnter))

	assert.Equal(t, "ls -la", store.FindSnippet(id).Content)
}

func TestApp_AddAndRenameFolder(t *testing.T) {
	store := tree.NewStore()
	app, _ := newTestApp(t, store)

	send(app, runeKey("n"))
	require.Equal(t, modeSingleInput, app.mode)
	send(app, runeKey("Work"), keyOf(tea.KeyEnter))

	require.Len(t, store.Root().Subfolders, 1)
	folder := store.Root().Subfolders[0]
	assert.Equal(t, "Work", folder.Name)
	assert.Equal(t, tree.Row{Kind: tree.RowFolder, ID: folder.ID}, app.selectedRow())

	send(app, keyOf(tea.KeyF2))
	require.Equal(t, modeSingleInput, app.mode)
	assert.Equal(t, "Work", app.input.Value())

	send(app, runeKey("2"), keyOf(tea.KeyEnter))
	assert.Equal(t, "Work2", folder.Name)
	assert.Equal(t, modeBrowse, app.mode)
}

func TestApp_BlankFolderNameIsDiscarded(t *testing.T) {
	store := tree.NewStore()
	app, _ := newTestApp(t, store)

	send(app, keyOf(tea.KeyF3), runeKey("  "), keyOf(tea.KeyEnter))

	assert.Equal(t, modeBrowse, app.mode)
	assert.Empty(t, store.Root().Subfolders)
}

func TestApp_CancelDiscardsDialog(t *testing.T) {
	store := tree.NewStore()
	app, _ := newTestApp(t, store)

	send(app, runeKey("n"), runeKey("Nope"), keyOf(tea.KeyEsc))
	assert.Equal(t, modeBrowse, app.mode)
	assert.Empty(t, store.Root().Subfolders)

	send(app, runeKey("a"), runeKey("t"), keyOf(tea.KeyTab), runeKey("c"), keyOf(tea.KeyEsc))
	assert.Equal(t, modeBrowse, app.mode)
	assert.Empty(t, store.Root().Snippets)

	// The next dialog starts empty
	send(app, runeKey("n"))
	assert.Empty(t, app.input.Value())
}

func TestApp_ContentViewClosesOnAnyInput(t *testing.T) {
	store := tree.NewStore()
	store.AddFolder("A")
	id := store.AddSnippet("show me", "echo shown", false)
	app, runner := newTestApp(t, store)

	// View on a folder row does nothing
	send(app, runeKey("v"))
	assert.Equal(t, modeBrowse, app.mode)

	send(app, runeKey("j"), keyOf(tea.KeyF4))
	require.Equal(t, modeContentView, app.mode)
	assert.Equal(t, id, app.viewer.Snippet().ID)
	view := app.View()
	assert.Contains(t, view, "show me")
	assert.Contains(t, view, "echo shown")
	assert.Contains(t, view, id.String())

	// Enter closes the viewer instead of dispatching
	send(app, keyOf(tea.KeyEnter))
	assert.Equal(t, modeBrowse, app.mode)
	assert.Empty(t, runner.calls)

	send(app, runeKey("v"))
	require.Equal(t, modeContentView, app.mode)
	send(app, tea.MouseMsg{Action: tea.MouseActionMotion})
	assert.Equal(t, modeContentView, app.mode)
	send(app, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, modeBrowse, app.mode)
}

func TestApp_Quit(t *testing.T) {
	app, _ := newTestApp(t, nil)
	assert.True(t, isQuit(send(app, runeKey("q"))))
	assert.True(t, isQuit(send(app, keyOf(tea.KeyEsc))))

	// ctrl+c quits from any mode
	send(app, runeKey("n"))
	require.Equal(t, modeSingleInput, app.mode)
	assert.True(t, isQuit(send(app, keyOf(tea.KeyCtrlC))))

	// q is text while a dialog is open
	assert.False(t, isQuit(send(app, runeKey("q"))))
	assert.Equal(t, "q", app.input.Value())
}

func TestApp_ExamplesOnlyOnEmptyTree(t *testing.T) {
	store := tree.NewStore()
	app, _ := newTestApp(t, store)

	send(app, runeKey("E"))
	folders, snippets := store.Count()
	assert.Positive(t, folders)
	assert.Positive(t, snippets)
	assert.False(t, app.statusErr)

	send(app, runeKey("E"))
	again, _ := store.Count()
	assert.Equal(t, folders, again)
	assert.True(t, app.statusErr)
}

func TestApp_StatusMsg(t *testing.T) {
	app, _ := newTestApp(t, nil)
	send(app, StatusMsg("saved"))
	assert.Equal(t, "saved", app.statusMsg)
	assert.Contains(t, app.View(), "saved")

	// The next key in browse clears it
	send(app, runeKey("j"))
	assert.Empty(t, app.statusMsg)
}

func TestApp_View(t *testing.T) {
	store := tree.NewStore()
	a := store.AddFolder("Projects")
	store.AddSnippet("Hello World", "print('Hello World')", false)
	app, _ := newTestApp(t, store)

	view := app.View()
	assert.Contains(t, view, "snipmux")
	assert.Contains(t, view, "Projects/")
	assert.Contains(t, view, "Hello World")
	assert.Contains(t, view, "%3")

	send(app, keyOf(tea.KeyEnter))
	require.Equal(t, a, store.Current().ID)
	view = app.View()
	assert.Contains(t, view, "/Projects/")
	assert.Contains(t, view, ascendLabel)

	send(app, runeKey("n"))
	assert.Contains(t, app.View(), "NEW FOLDER")
}

func TestApp_ViewBeforeSize(t *testing.T) {
	app := NewApp(Config{})
	assert.Equal(t, "Loading...", app.View())
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		name      string
		cursor    int
		count     int
		height    int
		wantStart int
		wantEnd   int
	}{
		{name: "fits", cursor: 2, count: 5, height: 10, wantStart: 0, wantEnd: 5},
		{name: "empty", cursor: 0, count: 0, height: 10, wantStart: 0, wantEnd: 0},
		{name: "cursor in first page", cursor: 3, count: 20, height: 5, wantStart: 0, wantEnd: 5},
		{name: "cursor past first page", cursor: 7, count: 20, height: 5, wantStart: 3, wantEnd: 8},
		{name: "cursor on last row", cursor: 19, count: 20, height: 5, wantStart: 15, wantEnd: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := visibleRange(tt.cursor, tt.count, tt.height)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			if tt.count > 0 {
				assert.True(t, tt.cursor >= start && tt.cursor < end)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "browse", modeBrowse.String())
	assert.Equal(t, "single-input", modeSingleInput.String())
	assert.Equal(t, "dual-input", modeDualInput.String())
	assert.Equal(t, "content-view", modeContentView.String())
	assert.Equal(t, "unknown", mode(42).String())
}
