package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/pluqqy/snipmux/pkg/files"
	"github.com/pluqqy/snipmux/pkg/logging"
	"github.com/pluqqy/snipmux/pkg/models"
	"github.com/pluqqy/snipmux/pkg/paste"
	"github.com/pluqqy/snipmux/pkg/tree"
)

type mode int

const (
	modeBrowse mode = iota
	modeSingleInput
	modeDualInput
	modeContentView
)

func (m mode) String() string {
	switch m {
	case modeBrowse:
		return "browse"
	case modeSingleInput:
		return "single-input"
	case modeDualInput:
		return "dual-input"
	case modeContentView:
		return "content-view"
	}
	return "unknown"
}

// Config wires the app to its collaborators
type Config struct {
	Store    *tree.Store
	Sink     paste.Sink
	Target   string
	Paths    files.Paths
	Logger   *logrus.Entry
	ShowHelp bool
	ShowUUID bool
}

// App is the bubbletea model. Exactly one mode owns input at a time and every
// message is routed to that mode's handler.
type App struct {
	mode   mode
	store  *tree.Store
	sink   paste.Sink
	target string
	paths  files.Paths
	logger *logrus.Entry

	cursor int
	keys   browseKeyMap
	help   help.Model

	input   *InputDialog
	snippet *SnippetDialog
	viewer  *ContentViewer

	width     int
	height    int
	statusMsg string
	statusErr bool
	showHelp  bool

	dispatched *models.Snippet
}

func NewApp(cfg Config) *App {
	store := cfg.Store
	if store == nil {
		store = tree.NewStore()
	}

	return &App{
		mode:     modeBrowse,
		store:    store,
		sink:     cfg.Sink,
		target:   cfg.Target,
		paths:    cfg.Paths,
		logger:   logging.OrDiscard(cfg.Logger).WithField("component", "tui"),
		keys:     defaultBrowseKeyMap(),
		help:     help.New(),
		input:    NewInputDialog(),
		snippet:  NewSnippetDialog(),
		viewer:   NewContentViewer(cfg.ShowUUID),
		showHelp: cfg.ShowHelp,
	}
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.snippet.SetSize(msg.Width, msg.Height)
		a.viewer.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.setStatus(string(msg))
		return a, nil
	}

	switch a.mode {
	case modeBrowse:
		return a.updateBrowse(msg)
	case modeSingleInput:
		return a.updateSingleInput(msg)
	case modeDualInput:
		return a.updateDualInput(msg)
	case modeContentView:
		return a.updateContentView(msg)
	}
	return a, nil
}

func (a *App) updateSingleInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	done, cmd := a.input.Update(keyMsg)
	if done {
		a.mode = modeBrowse
	}
	return a, cmd
}

func (a *App) updateDualInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}
	done, cmd := a.snippet.Update(keyMsg)
	if done {
		a.mode = modeBrowse
	}
	return a, cmd
}

func (a *App) updateContentView(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		a.mode = modeBrowse
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress {
			a.mode = modeBrowse
		}
	}
	return a, nil
}

// Store returns the tree the app edits
func (a *App) Store() *tree.Store {
	return a.store
}

// Dispatched returns the snippet sent before the program quit, or nil
func (a *App) Dispatched() *models.Snippet {
	return a.dispatched
}

func (a *App) setStatus(msg string) {
	a.statusMsg = msg
	a.statusErr = false
}

func (a *App) setError(msg string) {
	a.statusMsg = msg
	a.statusErr = true
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.mode {
	case modeBrowse:
		content = a.browseView()
	case modeSingleInput:
		content = a.dialogView(a.input.View())
	case modeDualInput:
		content = a.dialogView(a.snippet.View())
	case modeContentView:
		content = a.viewer.View()
	default:
		content = "Unknown view"
	}

	if a.statusMsg != "" {
		style := StatusStyle
		if a.statusErr {
			style = StatusErrorStyle
		}
		content = lipgloss.JoinVertical(lipgloss.Top, content, style.Render(a.statusMsg))
	}

	return content
}

// dialogView frames a dialog body and centers it on screen
func (a *App) dialogView(body string) string {
	dialogStyle := ActiveBorderStyle.
		Width(dialogWidth(a.width)).
		Padding(1, 2)

	centeredStyle := lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 1).
		Align(lipgloss.Center, lipgloss.Center)

	return centeredStyle.Render(dialogStyle.Render(body))
}

func dialogWidth(width int) int {
	w := width / 2
	if w < 50 {
		w = 50
	}
	if w > 80 {
		w = 80
	}
	return w
}

// StatusMsg shows a message in the status bar
type StatusMsg string
