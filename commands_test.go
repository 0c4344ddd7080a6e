package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/fragmede/modview/internal/comment"
	"github.com/fragmede/modview/internal/config"
	"github.com/fragmede/modview/internal/store"
)

var fixtures = []string{
	filepath.Join("internal", "note", "testdata", "comment_reply.json"),
	filepath.Join("internal", "note", "testdata", "envelope.json"),
}

func testEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.CacheDir = dir
	cfg.DBPath = filepath.Join(dir, "notes.db")
	cfg.LogPath = filepath.Join(dir, "debug.log")

	db, err := store.Open(cfg.DBPath)
	require.NoError(t, err)
	e := &env{cfg: cfg, logger: zap.NewNop(), db: db}
	t.Cleanup(e.Close)
	return e
}

func importFixtures(t *testing.T, e *env) {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, runImport(context.Background(), &out, e, fixtures))
	assert.Contains(t, out.String(), "Imported 3 notes from 2 files")
}

func TestImportCommand(t *testing.T) {
	e := testEnv(t)
	importFixtures(t, e)

	unread, err := e.db.UnreadCount()
	require.NoError(t, err)
	assert.Equal(t, 2, unread)
}

func TestImportReportsSkippedFiles(t *testing.T) {
	e := testEnv(t)
	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{not json"), 0o644))

	var out bytes.Buffer
	require.NoError(t, runImport(context.Background(), &out, e, []string{fixtures[0], bad}))
	assert.Contains(t, out.String(), "Imported 1 note from 2 files")
	assert.Contains(t, out.String(), "skipped "+bad)
}

func TestShowCommand(t *testing.T) {
	e := testEnv(t)
	importFixtures(t, e)

	var out bytes.Buffer
	require.NoError(t, runShow(&out, e, 1001, 60))
	plain := ansi.Strip(out.String())
	assert.Contains(t, plain, "Alice replied to your comment")
	assert.Contains(t, plain, "Alice")
	assert.Contains(t, plain, "Thanks")
	assert.Contains(t, plain, "│", "replies carry the thread rail")
	assert.Contains(t, plain, "comment #42 on post 9, site 3")
	assert.Contains(t, plain, "avatar: https://0.gravatar.com/avatar/abc123?s=256&d=mm")

	err := runShow(&out, e, 2002, 60)
	assert.ErrorContains(t, err, "without a comment")

	err = runShow(&out, e, 4242, 60)
	assert.ErrorContains(t, err, "not found")
}

func TestModerateCommand(t *testing.T) {
	e := testEnv(t)
	importFixtures(t, e)

	var out bytes.Buffer
	require.NoError(t, runModerate(&out, e, 1001, "approve"))
	assert.Equal(t, "Note 1001 is now approved\n", out.String())

	status, err := e.db.CommentStatus(1001)
	require.NoError(t, err)
	assert.Equal(t, comment.StatusApproved, status)

	assert.ErrorContains(t, runModerate(&out, e, 1001, "burn"), "unknown status")
	assert.ErrorContains(t, runModerate(&out, e, 2002, "spam"), "not a comment")
	assert.ErrorContains(t, runModerate(&out, e, 4242, "spam"), "not found")
}

func TestParseNoteID(t *testing.T) {
	id, err := parseNoteID("1001")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), id)

	for _, bad := range []string{"", "abc", "-4", "0"} {
		_, err := parseNoteID(bad)
		assert.Error(t, err, bad)
	}
}
