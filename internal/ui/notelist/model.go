package notelist

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fragmede/modview/internal/config"
	"github.com/fragmede/modview/internal/store"
	"github.com/fragmede/modview/internal/ui/messages"
)

// Model is the notifications list view.
type Model struct {
	list    list.Model
	filter  store.Filter
	db      *store.DB
	cfg     config.Config
	loading bool
	width   int
	height  int
}

// New creates a new note list model.
func New(cfg config.Config, db *store.DB) Model {
	l := list.New(nil, Delegate{}, 0, 0)
	l.Title = FilterTitle(store.FilterAll)
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return Model{
		list: l,
		db:   db,
		cfg:  cfg,
	}
}

// Init loads the initial note list.
func (m Model) Init() tea.Cmd {
	return m.loadNotes()
}

// SetSize updates the viewport dimensions.
func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.list.SetSize(w, h)
}

// Filter returns the active filter.
func (m Model) Filter() store.Filter {
	return m.filter
}

// Filtering reports whether the list's text filter has the keyboard.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Items returns the notes currently listed.
func (m Model) Items() []NoteItem {
	items := m.list.Items()
	out := make([]NoteItem, 0, len(items))
	for _, it := range items {
		if ni, ok := it.(NoteItem); ok {
			out = append(out, ni)
		}
	}
	return out
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.NotesLoadedMsg:
		if msg.Filter != m.filter {
			return m, nil
		}
		m.loading = false
		if msg.Err != nil {
			m.list.Title = "Error: " + msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.Rows))
		for i, row := range msg.Rows {
			items = append(items, NoteItem{NoteRow: row, Index: i})
		}
		m.list.Title = FilterTitle(m.filter)
		return m, m.list.SetItems(items)

	case messages.SwitchTabMsg:
		m.filter = msg.Filter
		m.list.Title = FilterTitle(m.filter) + " (loading...)"
		m.loading = true
		return m, m.loadNotes()

	case messages.StatusChangedMsg, messages.UnreadCountMsg:
		return m, m.loadNotes()

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(NoteItem); ok {
				return m, m.openNote(item.Note.ID)
			}
		case "r", "ctrl+r":
			m.loading = true
			m.list.Title = FilterTitle(m.filter) + " (refreshing...)"
			return m, m.loadNotes()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the note list.
func (m Model) View() string {
	return m.list.View()
}

// Reload re-reads the list from the store.
func (m Model) Reload() tea.Cmd {
	return m.loadNotes()
}

func (m Model) openNote(id int64) tea.Cmd {
	db := m.db
	return func() tea.Msg {
		if err := db.MarkRead(id); err != nil {
			return messages.StatusMsg{Text: "Mark read failed: " + err.Error(), IsError: true}
		}
		return messages.OpenNoteMsg{NoteID: id}
	}
}

func (m Model) loadNotes() tea.Cmd {
	filter := m.filter
	db := m.db
	limit := m.cfg.ListLimit
	return func() tea.Msg {
		rows, err := db.ListRows(filter, limit)
		return messages.NotesLoadedMsg{Filter: filter, Rows: rows, Err: err}
	}
}

// FilterTitle is the list heading for a filter.
func FilterTitle(f store.Filter) string {
	switch f {
	case store.FilterUnread:
		return "Unread"
	case store.FilterComments:
		return "Comments"
	case store.FilterUnapproved:
		return "Pending Moderation"
	default:
		return "Notifications"
	}
}
