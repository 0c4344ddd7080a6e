package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fragmede/modview/internal/comment"
)

// StatusChange is a recorded moderation action.
type StatusChange struct {
	NoteID    int64
	Status    comment.Status
	ChangedAt time.Time
	Origin    string
}

// SetCommentStatus records a moderation status for a comment note. Origin
// identifies the process that made the change.
func (d *DB) SetCommentStatus(noteID int64, status comment.Status, origin string) (StatusChange, error) {
	var exists int
	err := d.db.QueryRow(`SELECT 1 FROM notes WHERE id = ?`, noteID).Scan(&exists)
	if errors.Is(err, sql.ErrNoRows) {
		return StatusChange{}, fmt.Errorf("note %d: %w", noteID, ErrNotFound)
	}
	if err != nil {
		return StatusChange{}, fmt.Errorf("looking up note %d: %w", noteID, err)
	}

	change := StatusChange{
		NoteID:    noteID,
		Status:    status,
		ChangedAt: time.Now(),
		Origin:    origin,
	}
	_, err = d.db.Exec(`INSERT OR REPLACE INTO comment_status (note_id, status, changed_at, origin)
		VALUES (?, ?, ?, ?)`,
		noteID, string(status), change.ChangedAt.UnixNano(), origin)
	if err != nil {
		return StatusChange{}, fmt.Errorf("setting status of note %d: %w", noteID, err)
	}
	return change, nil
}

// CommentStatus returns the moderation status of a comment note. Without a
// recorded change it falls back to the status embedded in the note.
func (d *DB) CommentStatus(noteID int64) (comment.Status, error) {
	var status string
	err := d.db.QueryRow(`SELECT COALESCE(s.status, n.comment_status) FROM notes n
		LEFT JOIN comment_status s ON s.note_id = n.id WHERE n.id = ?`, noteID).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return comment.StatusUnknown, fmt.Errorf("note %d: %w", noteID, ErrNotFound)
	}
	if err != nil {
		return comment.StatusUnknown, fmt.Errorf("loading status of note %d: %w", noteID, err)
	}
	return comment.ParseStatus(status), nil
}

// StatusChangesSince returns changes recorded strictly after since, oldest
// first.
func (d *DB) StatusChangesSince(since time.Time, limit int) ([]StatusChange, error) {
	rows, err := d.db.Query(`SELECT note_id, status, changed_at, origin FROM comment_status
		WHERE changed_at > ? ORDER BY changed_at ASC LIMIT ?`, since.UnixNano(), limit)
	if err != nil {
		return nil, fmt.Errorf("listing status changes: %w", err)
	}
	defer rows.Close()

	var result []StatusChange
	for rows.Next() {
		var sc StatusChange
		var status string
		var changedAt int64
		if err := rows.Scan(&sc.NoteID, &status, &changedAt, &sc.Origin); err != nil {
			return nil, fmt.Errorf("scanning status change: %w", err)
		}
		sc.Status = comment.ParseStatus(status)
		sc.ChangedAt = time.Unix(0, changedAt)
		result = append(result, sc)
	}
	return result, rows.Err()
}
