package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fragmede/modview/internal/config"
	"github.com/fragmede/modview/internal/store"
	"github.com/fragmede/modview/internal/ui/messages"
)

func testApp(t *testing.T) *App {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	a := NewApp(config.Default(), db, nil, "session-a", zap.NewNop())
	a.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return a
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestOpenAndGoBack(t *testing.T) {
	a := testApp(t)

	a.Update(messages.OpenNoteMsg{NoteID: 7})
	assert.Equal(t, ViewNoteDetail, a.ActiveView())

	a.Update(runes("q"))
	assert.Equal(t, ViewNoteList, a.ActiveView())
}

func TestTabKeysSwitchFilter(t *testing.T) {
	a := testApp(t)

	_, cmd := a.Update(runes("4"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.NotesLoadedMsg)
	require.True(t, ok)
	assert.Equal(t, store.FilterUnapproved, msg.Filter)
	assert.Contains(t, ansi.Strip(a.View()), "Pending Moderation")
}

func TestTabFromDetailReturnsToList(t *testing.T) {
	a := testApp(t)
	a.Update(messages.OpenNoteMsg{NoteID: 7})
	a.Update(runes("2"))
	assert.Equal(t, ViewNoteList, a.ActiveView())
}

func TestHelpOverlay(t *testing.T) {
	a := testApp(t)

	a.Update(runes("?"))
	view := ansi.Strip(a.View())
	assert.Contains(t, view, "modview keys")
	assert.Contains(t, view, "approve")

	a.Update(runes("x"))
	assert.NotContains(t, ansi.Strip(a.View()), "modview keys")
}

func TestNextFilterWraps(t *testing.T) {
	assert.Equal(t, store.FilterUnread, nextFilter(store.FilterAll, 1))
	assert.Equal(t, store.FilterUnapproved, nextFilter(store.FilterAll, -1))
	assert.Equal(t, store.FilterAll, nextFilter(store.FilterUnapproved, 1))
}
