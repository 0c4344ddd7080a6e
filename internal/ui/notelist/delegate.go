package notelist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/modview/internal/comment"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	unreadTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FFFFFF"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#828282"))

	selectedTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#F0821E"))

	selectedDescStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CCCCCC"))

	unreadDotStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF0000")).Bold(true)

	pendingBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#000000")).
				Background(lipgloss.Color("#F0821E")).
				Padding(0, 1)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#555555")).
			Padding(0, 1)
)

type Delegate struct{}

func (d Delegate) Height() int                             { return 2 }
func (d Delegate) Spacing() int                            { return 1 }
func (d Delegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d Delegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(NoteItem)
	if !ok {
		return
	}

	dot := "  "
	if !item.Note.Read() {
		dot = unreadDotStyle.Render("● ")
	}

	var title, desc string
	switch {
	case index == m.Index():
		title = selectedTitleStyle.Render(item.Title())
		desc = selectedDescStyle.Render(item.Description())
	case !item.Note.Read():
		title = unreadTitleStyle.Render(item.Title())
		desc = descStyle.Render(item.Description())
	default:
		title = titleStyle.Render(item.Title())
		desc = descStyle.Render(item.Description())
	}

	if badge := item.Badge(); badge != "" {
		if item.Status == comment.StatusUnapproved {
			title += " " + pendingBadgeStyle.Render(badge)
		} else {
			title += " " + badgeStyle.Render(badge)
		}
	}

	fmt.Fprintf(w, "%s%s\n  %s", dot, title, desc)
}
