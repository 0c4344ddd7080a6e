package statusbar

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/modview/internal/store"
	"github.com/fragmede/modview/internal/ui/messages"
)

var (
	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#FFFFFF"))

	activeTabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#F0821E")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#555555")).
				Foreground(lipgloss.Color("#CCCCCC")).
				Padding(0, 1)

	notifyStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#FF0000")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	statusTextStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#AAAAAA")).
			Padding(0, 1)

	errorTextStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#8B0000")).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)
)

type tab struct {
	label  string
	filter store.Filter
}

var tabs = []tab{
	{"1 All", store.FilterAll},
	{"2 Unread", store.FilterUnread},
	{"3 Comments", store.FilterComments},
	{"4 Pending", store.FilterUnapproved},
}

// Model is the status bar at the bottom of the screen.
type Model struct {
	width       int
	active      store.Filter
	unreadCount int
	statusText  string
	isError     bool
}

// New creates a new status bar.
func New() Model {
	return Model{active: store.FilterAll}
}

// SetSize sets the width.
func (m *Model) SetSize(w int) {
	m.width = w
}

// SetActiveTab sets the highlighted filter tab.
func (m *Model) SetActiveTab(f store.Filter) {
	m.active = f
}

// SetUnread sets the unread notification count.
func (m *Model) SetUnread(count int) {
	m.unreadCount = count
}

// SetStatus sets a temporary status message.
func (m *Model) SetStatus(text string, isError bool) {
	m.statusText = text
	m.isError = isError
}

// Update picks up status and unread messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.StatusMsg:
		m.SetStatus(msg.Text, msg.IsError)
	case messages.UnreadCountMsg:
		m.SetUnread(msg.UnreadCount)
	case messages.ModerationFailedMsg:
		m.SetStatus("Moderation failed: "+msg.Err.Error(), true)
	}
	return m, nil
}

// View renders the status bar.
func (m Model) View() string {
	var tabsStr string
	for _, t := range tabs {
		if t.filter == m.active {
			tabsStr += activeTabStyle.Render(t.label)
		} else {
			tabsStr += inactiveTabStyle.Render(t.label)
		}
	}

	var right string
	if m.unreadCount > 0 {
		right += notifyStyle.Render(fmt.Sprintf(" %d ", m.unreadCount))
	}
	switch {
	case m.statusText != "" && m.isError:
		right += errorTextStyle.Render(m.statusText)
	case m.statusText != "":
		right += statusTextStyle.Render(m.statusText)
	default:
		right += statusTextStyle.Render("?:help")
	}

	// Fill middle with background.
	gap := m.width - lipgloss.Width(tabsStr) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	mid := barStyle.Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, tabsStr, mid, right)
}
