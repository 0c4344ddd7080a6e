package notedetail

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/modview/internal/comment"
	"github.com/fragmede/modview/internal/config"
	"github.com/fragmede/modview/internal/render"
	"github.com/fragmede/modview/internal/store"
	"github.com/fragmede/modview/internal/ui/commentblock"
	"github.com/fragmede/modview/internal/ui/messages"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Padding(0, 1)
	metaStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#828282")).Padding(0, 1)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	separatorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#444444"))
	bodyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDDDDD")).Padding(0, 1)
)

// Moderation keys and the status each one applies.
var moderationKeys = map[string]comment.Status{
	"a": comment.StatusApproved,
	"u": comment.StatusUnapproved,
	"s": comment.StatusSpam,
	"t": comment.StatusTrash,
}

// Model is the detail view of a single note.
type Model struct {
	viewport viewport.Model
	noteID   int64
	row      store.NoteRow
	block    commentblock.Block
	hasBlock bool
	db       *store.DB
	cfg      config.Config
	origin   string
	loading  bool
	width    int
	height   int
}

// New creates a detail view for a note. Moderation writes are tagged with
// origin so the watcher can skip them.
func New(noteID int64, cfg config.Config, db *store.DB, origin string) Model {
	vp := viewport.New(0, 0)
	vp.SetContent("Loading...")

	return Model{
		viewport: vp,
		noteID:   noteID,
		db:       db,
		cfg:      cfg,
		origin:   origin,
		loading:  true,
	}
}

// Init loads the note and its current status.
func (m Model) Init() tea.Cmd {
	id := m.noteID
	db := m.db
	return func() tea.Msg {
		row, err := db.GetRow(id)
		return messages.NoteLoadedMsg{NoteID: id, Row: row, Err: err}
	}
}

// NoteID is the note being shown.
func (m Model) NoteID() int64 {
	return m.noteID
}

// Status is the moderation status currently displayed.
func (m Model) Status() comment.Status {
	if m.hasBlock {
		return m.block.Status()
	}
	return m.row.Status
}

// SetSize updates viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.resizeViewport()
	m.rebuildContent()
}

func (m *Model) resizeViewport() {
	header := m.renderHeader()
	headerLines := strings.Count(header, "\n") + 1
	m.viewport.Height = m.height - headerLines
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.NoteLoadedMsg:
		if msg.NoteID != m.noteID {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.viewport.SetContent("Error loading note: " + msg.Err.Error())
			return m, nil
		}
		m.row = msg.Row
		ub, ok := msg.Row.Note.CommentUserBlock()
		switch {
		case !ok:
			m.hasBlock = false
		case m.hasBlock:
			// A reload keeps the block so a transition armed while the
			// load was in flight still fades in.
			m.block.SetUser(ub)
			m.block.SetStatus(msg.Row.Status)
		default:
			m.block = commentblock.New(m.noteID, ub, msg.Row.Status, commentblock.OptionsFromConfig(m.cfg))
			m.hasBlock = true
		}
		m.resizeViewport()
		return m, m.rebuildContent()

	case messages.StatusChangedMsg:
		if msg.NoteID != m.noteID {
			return m, nil
		}
		m.row.Status = msg.Status
		if !m.hasBlock || !m.block.StatusChanged(msg.Status) {
			return m, nil
		}
		m.resizeViewport()
		return m, m.rebuildContent()

	case commentblock.FadeFrameMsg:
		if !m.hasBlock {
			return m, nil
		}
		dirty, cmd := m.block.Update(msg)
		if dirty {
			m.rebuildContent()
		}
		return m, cmd

	case tea.KeyMsg:
		key := msg.String()
		if status, ok := moderationKeys[key]; ok {
			if !m.hasBlock {
				return m, statusCmd("Not a comment", true)
			}
			return m, m.moderate(status)
		}
		switch key {
		case "y":
			return m, copyLink(m.row.Note.URL)
		case "Y":
			if m.hasBlock {
				return m, copyLink(m.block.AvatarURL())
			}
			return m, copyLink("")
		case "o":
			if m.hasBlock {
				if u := m.block.User().UserURL(); u != "" {
					return m, statusCmd("Opening: "+u, false)
				}
			}
			return m, statusCmd("No link for this user", true)
		case "ctrl+r":
			m.loading = true
			m.viewport.SetContent("  Refreshing...")
			return m, m.Init()
		case "ctrl+d", "pgdown":
			m.viewport.HalfViewDown()
			return m, nil
		case "ctrl+u", "pgup":
			m.viewport.HalfViewUp()
			return m, nil
		case "g", "home":
			m.viewport.GotoTop()
			return m, nil
		case "G", "end":
			m.viewport.GotoBottom()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the detail view.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), m.viewport.View())
}

// moderate writes the new status off the UI loop. The resulting
// StatusChangedMsg comes back through Update like any other change.
func (m Model) moderate(status comment.Status) tea.Cmd {
	id := m.noteID
	db := m.db
	origin := m.origin
	return func() tea.Msg {
		change, err := db.SetCommentStatus(id, status, origin)
		if err != nil {
			return messages.ModerationFailedMsg{NoteID: id, Err: err}
		}
		return messages.StatusChangedMsg{NoteID: id, Status: change.Status, Origin: change.Origin}
	}
}

func (m *Model) rebuildContent() tea.Cmd {
	if m.loading {
		return nil
	}
	width := m.width - 2
	if width < 20 {
		width = 20
	}

	if m.hasBlock {
		out, cmd := m.block.Bind(width)
		m.viewport.SetContent(out)
		return cmd
	}

	var parts []string
	for _, b := range m.row.Note.Body {
		if b.Text == "" {
			continue
		}
		parts = append(parts, bodyStyle.Render(render.CommentHTMLToText(b.Text, width)))
	}
	if len(parts) == 0 {
		m.viewport.SetContent("  Nothing to show.")
		return nil
	}
	m.viewport.SetContent(strings.Join(parts, "\n\n"))
	return nil
}

func (m Model) renderHeader() string {
	if m.loading && m.row.Note.ID == 0 {
		return headerStyle.Render("Loading...")
	}

	n := m.row.Note
	title := n.SubjectText()
	if title == "" {
		title = fmt.Sprintf("[%s #%d]", n.Type, n.ID)
	}
	parts := []string{headerStyle.Render(title)}

	meta := n.Type
	if ago := render.TimeAgo(n.Timestamp()); ago != "" {
		meta += " | " + ago
	}
	if m.hasBlock {
		meta += " | " + m.block.Status().Label()
		if name := m.block.User().Name(); name != "" {
			meta = "by " + name + " | " + meta
		}
		if ref := m.block.User().Ref(); ref != "" {
			meta += " | " + ref
		}
	}
	parts = append(parts, metaStyle.Render(meta))
	parts = append(parts, separatorStyle.Render(strings.Repeat("─", m.width)))
	hint := "y:copy link  Y:copy avatar  o:open user  esc:back"
	if m.hasBlock {
		hint = "a:approve  u:unapprove  s:spam  t:trash  " + hint
	}
	parts = append(parts, hintStyle.Render(hint))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func copyLink(u string) tea.Cmd {
	return func() tea.Msg {
		if u == "" {
			return messages.StatusMsg{Text: "No link to copy", IsError: true}
		}
		if err := clipboard.WriteAll(u); err != nil {
			return messages.StatusMsg{Text: "Copy failed: " + err.Error(), IsError: true}
		}
		return messages.StatusMsg{Text: "Copied " + u}
	}
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return messages.StatusMsg{Text: text, IsError: isError}
	}
}
