package ui

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"
	"go.uber.org/zap"

	"github.com/fragmede/modview/internal/config"
	"github.com/fragmede/modview/internal/store"
	"github.com/fragmede/modview/internal/ui/messages"
	"github.com/fragmede/modview/internal/ui/notedetail"
	"github.com/fragmede/modview/internal/ui/notelist"
	"github.com/fragmede/modview/internal/ui/statusbar"
	"github.com/fragmede/modview/internal/watcher"
)

// ViewType identifies the active view.
type ViewType int

const (
	ViewNoteList ViewType = iota
	ViewNoteDetail
)

// App is the root Bubble Tea model.
type App struct {
	// View state
	activeView    ViewType
	previousViews []ViewType
	showHelp      bool

	// Child models
	noteList   notelist.Model
	noteDetail notedetail.Model
	statusBar  statusbar.Model

	// Shared state
	cfg     config.Config
	db      *store.DB
	watcher *watcher.Watcher
	origin  string
	logger  *zap.Logger

	// Dimensions
	width  int
	height int
}

// NewApp creates the root application model. origin tags status writes
// made from this session; w may be nil.
func NewApp(cfg config.Config, db *store.DB, w *watcher.Watcher, origin string, logger *zap.Logger) *App {
	return &App{
		activeView: ViewNoteList,
		noteList:   notelist.New(cfg, db),
		statusBar:  statusbar.New(),
		cfg:        cfg,
		db:         db,
		watcher:    w,
		origin:     origin,
		logger:     logger,
	}
}

// SetProgram starts the background watcher against the running program.
func (a *App) SetProgram(p *tea.Program) {
	if a.watcher != nil {
		a.watcher.Start(p)
	}
}

// Init starts the application.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.noteList.Init(), a.loadUnread())
}

// Update handles all messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		contentHeight := msg.Height - 1 // Reserve 1 line for status bar.
		a.noteList.SetSize(msg.Width, contentHeight)
		a.statusBar.SetSize(msg.Width)
		if a.activeView == ViewNoteDetail {
			a.noteDetail.SetSize(msg.Width, contentHeight)
		}
		return a, nil

	case tea.KeyMsg:
		if a.showHelp {
			a.showHelp = false
			return a, nil
		}
		if key.Matches(msg, Keys.ForceQuit) {
			return a, a.quit()
		}
		// The list's filter prompt owns the keyboard while it is open.
		if a.activeView == ViewNoteList && a.noteList.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, Keys.Quit):
			if a.activeView == ViewNoteList {
				return a, a.quit()
			}
			return a, a.goBack()
		case key.Matches(msg, Keys.Back):
			if len(a.previousViews) > 0 {
				return a, a.goBack()
			}
		case key.Matches(msg, Keys.Help):
			a.showHelp = true
			return a, nil
		case key.Matches(msg, Keys.NextTab):
			return a, a.switchTab(nextFilter(a.noteList.Filter(), 1))
		case key.Matches(msg, Keys.PrevTab):
			return a, a.switchTab(nextFilter(a.noteList.Filter(), -1))
		case key.Matches(msg, Keys.Tab1):
			return a, a.switchTab(store.FilterAll)
		case key.Matches(msg, Keys.Tab2), key.Matches(msg, Keys.Unread):
			return a, a.switchTab(store.FilterUnread)
		case key.Matches(msg, Keys.Tab3):
			return a, a.switchTab(store.FilterComments)
		case key.Matches(msg, Keys.Tab4):
			return a, a.switchTab(store.FilterUnapproved)
		}

	// View transitions.
	case messages.OpenNoteMsg:
		a.pushView(ViewNoteDetail)
		a.noteDetail = notedetail.New(msg.NoteID, a.cfg, a.db, a.origin)
		a.noteDetail.SetSize(a.width, a.height-1)
		return a, tea.Batch(a.noteDetail.Init(), a.loadUnread())

	case messages.GoBackMsg:
		return a, a.goBack()

	// The list stays current while the detail view is on top.
	case messages.NotesLoadedMsg:
		var cmd tea.Cmd
		a.noteList, cmd = a.noteList.Update(msg)
		return a, cmd

	case messages.StatusChangedMsg:
		a.logger.Debug("status changed",
			zap.Int64("note", msg.NoteID),
			zap.String("status", string(msg.Status)),
			zap.String("origin", msg.Origin))
		if a.activeView != ViewNoteList {
			var cmd tea.Cmd
			a.noteList, cmd = a.noteList.Update(msg)
			cmds = append(cmds, cmd)
		}

	case messages.ModerationFailedMsg:
		a.logger.Warn("moderation failed", zap.Int64("note", msg.NoteID), zap.Error(msg.Err))

	case messages.StatusMsg:
		if !msg.IsError && strings.HasPrefix(msg.Text, "Opening: ") {
			go openBrowser(strings.TrimPrefix(msg.Text, "Opening: "))
		}
	}

	// Route to active view.
	var cmd tea.Cmd
	switch a.activeView {
	case ViewNoteList:
		a.noteList, cmd = a.noteList.Update(msg)
		cmds = append(cmds, cmd)
		a.statusBar.SetActiveTab(a.noteList.Filter())
	case ViewNoteDetail:
		a.noteDetail, cmd = a.noteDetail.Update(msg)
		cmds = append(cmds, cmd)
	}

	a.statusBar, cmd = a.statusBar.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// View renders the application.
func (a *App) View() string {
	var content string
	switch a.activeView {
	case ViewNoteList:
		content = a.noteList.View()
	case ViewNoteDetail:
		content = a.noteDetail.View()
	}

	screen := lipgloss.JoinVertical(lipgloss.Left, content, a.statusBar.View())
	if !a.showHelp {
		return screen
	}
	return overlay.New(helpView{}, staticView{content: screen}, overlay.Center, overlay.Center, 0, 0).View()
}

// ActiveView reports which view has focus.
func (a *App) ActiveView() ViewType {
	return a.activeView
}

// quit leaves stopping the watcher to the caller of Run: the watcher may be
// blocked in Send until the event loop exits.
func (a *App) quit() tea.Cmd {
	a.logger.Info("quitting")
	return tea.Quit
}

func (a *App) pushView(v ViewType) {
	a.previousViews = append(a.previousViews, a.activeView)
	a.activeView = v
}

func (a *App) goBack() tea.Cmd {
	if len(a.previousViews) > 0 {
		a.activeView = a.previousViews[len(a.previousViews)-1]
		a.previousViews = a.previousViews[:len(a.previousViews)-1]
	}
	if a.activeView == ViewNoteList {
		return a.noteList.Reload()
	}
	return nil
}

func (a *App) loadUnread() tea.Cmd {
	db := a.db
	return func() tea.Msg {
		n, err := db.UnreadCount()
		if err != nil {
			return messages.StatusMsg{Text: "Unread count: " + err.Error(), IsError: true}
		}
		return messages.UnreadCountMsg{UnreadCount: n}
	}
}

var tabOrder = []store.Filter{
	store.FilterAll, store.FilterUnread, store.FilterComments, store.FilterUnapproved,
}

func nextFilter(current store.Filter, step int) store.Filter {
	for i, f := range tabOrder {
		if f == current {
			return tabOrder[(i+step+len(tabOrder))%len(tabOrder)]
		}
	}
	return tabOrder[0]
}

func (a *App) switchTab(f store.Filter) tea.Cmd {
	if a.activeView != ViewNoteList {
		a.activeView = ViewNoteList
		a.previousViews = nil
	}
	m, cmd := a.noteList.Update(messages.SwitchTabMsg{Filter: f})
	a.noteList = m
	a.statusBar.SetActiveTab(f)
	return cmd
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	default:
		return
	}
	cmd.Run()
}
