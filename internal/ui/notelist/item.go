package notelist

import (
	"fmt"

	"github.com/fragmede/modview/internal/comment"
	"github.com/fragmede/modview/internal/render"
	"github.com/fragmede/modview/internal/store"
)

// NoteItem wraps a stored note for the bubbles list.
type NoteItem struct {
	store.NoteRow
	Index int
}

func (n NoteItem) Title() string {
	if s := n.Note.SubjectText(); s != "" {
		return s
	}
	return fmt.Sprintf("[%s #%d]", n.Note.Type, n.Note.ID)
}

func (n NoteItem) Description() string {
	desc := n.Note.Type
	if ago := render.TimeAgo(n.Note.Timestamp()); ago != "" {
		desc += " | " + ago
	}
	if ub, ok := n.Note.CommentUserBlock(); ok {
		if level := ub.NestingLevel(); level > 0 {
			desc += fmt.Sprintf(" | reply (depth %d)", level)
		}
	}
	return desc
}

// Badge is the moderation label shown next to comment notes.
func (n NoteItem) Badge() string {
	if !n.Note.IsComment() || n.Status == comment.StatusApproved {
		return ""
	}
	return n.Status.Label()
}

func (n NoteItem) FilterValue() string {
	name := ""
	if ub, ok := n.Note.CommentUserBlock(); ok {
		name = ub.Name()
	}
	return n.Title() + " " + name
}
