package messages

import (
	"github.com/fragmede/modview/internal/comment"
	"github.com/fragmede/modview/internal/store"
)

// View transition messages.
type (
	OpenNoteMsg  struct{ NoteID int64 }
	GoBackMsg    struct{}
	SwitchTabMsg struct{ Filter store.Filter }
	ShowHelpMsg  struct{}
)

// Data messages.
type (
	NotesLoadedMsg struct {
		Filter store.Filter
		Rows   []store.NoteRow
		Err    error
	}

	NoteLoadedMsg struct {
		NoteID int64
		Row    store.NoteRow
		Err    error
	}

	// StatusChangedMsg carries a moderation change onto the UI loop. It is
	// the only way a status transition reaches a comment block.
	StatusChangedMsg struct {
		NoteID int64
		Status comment.Status
		Origin string
	}

	ModerationFailedMsg struct {
		NoteID int64
		Err    error
	}

	UnreadCountMsg struct {
		UnreadCount int
	}

	StatusMsg struct {
		Text    string
		IsError bool
	}
)
