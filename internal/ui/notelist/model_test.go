package notelist

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragmede/modview/internal/comment"
	"github.com/fragmede/modview/internal/config"
	"github.com/fragmede/modview/internal/note"
	"github.com/fragmede/modview/internal/store"
	"github.com/fragmede/modview/internal/ui/messages"
)

const fixture = `{"notes": [
  {"id": 1, "type": "comment", "read": 0, "timestamp": 1398945600,
   "subject": [{"text": "Alice commented on Hello"}],
   "body": [{"type": "user", "text": "Alice", "comment_status": "unapproved",
             "comment_text": {"text": "hi", "nest_level": 0}}]},
  {"id": 2, "type": "like", "read": 1, "timestamp": 1398945000,
   "subject": [{"text": "Bob liked your post"}],
   "body": [{"type": "user", "text": "Bob"}]}
]}`

func testModel(t *testing.T) (Model, *store.DB) {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	notes, err := note.Parse([]byte(fixture))
	require.NoError(t, err)
	for _, n := range notes {
		require.NoError(t, db.PutNote(n))
	}

	m := New(config.Default(), db)
	m.SetSize(80, 20)
	return m, db
}

func load(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.NotesLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	m, _ = m.Update(msg)
	return m
}

func TestInitLoadsAllNotes(t *testing.T) {
	m, _ := testModel(t)
	m = load(t, m, m.Init())

	items := m.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].Note.ID, "newest first")
	assert.Equal(t, "pending", items[0].Badge())
	assert.Empty(t, items[1].Badge(), "non-comment notes carry no badge")
}

func TestSwitchTabFilters(t *testing.T) {
	m, _ := testModel(t)
	m = load(t, m, m.Init())

	m, cmd := m.Update(messages.SwitchTabMsg{Filter: store.FilterUnapproved})
	assert.Equal(t, store.FilterUnapproved, m.Filter())
	m = load(t, m, cmd)
	require.Len(t, m.Items(), 1)
	assert.Equal(t, comment.StatusUnapproved, m.Items()[0].Status)
}

func TestStaleLoadIsIgnored(t *testing.T) {
	m, _ := testModel(t)
	m = load(t, m, m.Init())

	m, _ = m.Update(messages.SwitchTabMsg{Filter: store.FilterUnread})
	m, _ = m.Update(messages.NotesLoadedMsg{Filter: store.FilterAll})
	assert.Len(t, m.Items(), 2, "result for another tab must not replace the list")
}

func TestEnterMarksReadAndOpens(t *testing.T) {
	m, db := testModel(t)
	m = load(t, m, m.Init())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	open, ok := cmd().(messages.OpenNoteMsg)
	require.True(t, ok)
	assert.Equal(t, int64(1), open.NoteID)

	unread, err := db.UnreadCount()
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestStatusChangeReloads(t *testing.T) {
	m, db := testModel(t)
	m = load(t, m, m.Init())

	_, err := db.SetCommentStatus(1, comment.StatusApproved, "test")
	require.NoError(t, err)
	m, cmd := m.Update(messages.StatusChangedMsg{NoteID: 1, Status: comment.StatusApproved})
	m = load(t, m, cmd)
	assert.Equal(t, comment.StatusApproved, m.Items()[0].Status)
	assert.Empty(t, m.Items()[0].Badge())
}

func TestFilterTitle(t *testing.T) {
	assert.Equal(t, "Notifications", FilterTitle(store.FilterAll))
	assert.Equal(t, "Unread", FilterTitle(store.FilterUnread))
	assert.Equal(t, "Comments", FilterTitle(store.FilterComments))
	assert.Equal(t, "Pending Moderation", FilterTitle(store.FilterUnapproved))
}
