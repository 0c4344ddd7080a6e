package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fragmede/modview/internal/comment"
	"github.com/fragmede/modview/internal/note"
)

// Filter selects which notes ListNotes returns.
type Filter int

const (
	FilterAll Filter = iota
	FilterUnread
	FilterComments
	FilterUnapproved
)

// PutNote stores a note, replacing any earlier copy. The read flag of an
// existing row is kept so a re-import does not resurrect read notes.
func (d *DB) PutNote(n note.Note) error {
	raw, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("encoding note %d: %w", n.ID, err)
	}
	read := 0
	if n.Read() {
		read = 1
	}
	var embedded string
	if ub, ok := n.CommentUserBlock(); ok {
		embedded = string(ub.Status())
	}
	_, err = d.db.Exec(`INSERT INTO notes (id, type, timestamp, read, comment_status, raw, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			timestamp = excluded.timestamp,
			read = MAX(notes.read, excluded.read),
			comment_status = excluded.comment_status,
			raw = excluded.raw,
			imported_at = excluded.imported_at`,
		n.ID, n.Type, n.Timestamp(), read, embedded, string(raw), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("storing note %d: %w", n.ID, err)
	}
	return nil
}

// GetNote loads a single note.
func (d *DB) GetNote(id int64) (note.Note, error) {
	var raw string
	var read int
	err := d.db.QueryRow(`SELECT raw, read FROM notes WHERE id = ?`, id).Scan(&raw, &read)
	if errors.Is(err, sql.ErrNoRows) {
		return note.Note{}, fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return note.Note{}, fmt.Errorf("loading note %d: %w", id, err)
	}
	return decode(raw, read)
}

// NoteRow is a stored note with its effective moderation status.
type NoteRow struct {
	Note   note.Note
	Status comment.Status
}

// ListNotes returns the newest notes matching filter.
func (d *DB) ListNotes(filter Filter, limit int) ([]note.Note, error) {
	rows, err := d.ListRows(filter, limit)
	if err != nil {
		return nil, err
	}
	notes := make([]note.Note, len(rows))
	for i, r := range rows {
		notes[i] = r.Note
	}
	return notes, nil
}

// ListRows returns the newest notes matching filter along with their
// moderation status.
func (d *DB) ListRows(filter Filter, limit int) ([]NoteRow, error) {
	query := `SELECT n.raw, n.read, COALESCE(s.status, n.comment_status) FROM notes n
		LEFT JOIN comment_status s ON s.note_id = n.id`
	var args []interface{}
	switch filter {
	case FilterUnread:
		query += ` WHERE n.read = 0`
	case FilterComments:
		query += ` WHERE n.type = 'comment'`
	case FilterUnapproved:
		query += ` WHERE COALESCE(s.status, n.comment_status) = ?`
		args = append(args, string(comment.StatusUnapproved))
	}
	query += ` ORDER BY n.timestamp DESC, n.id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing notes: %w", err)
	}
	defer rows.Close()

	var result []NoteRow
	for rows.Next() {
		var raw, status string
		var read int
		if err := rows.Scan(&raw, &read, &status); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		n, err := decode(raw, read)
		if err != nil {
			continue
		}
		result = append(result, NoteRow{Note: n, Status: comment.ParseStatus(status)})
	}
	return result, rows.Err()
}

// GetRow loads a single note with its moderation status.
func (d *DB) GetRow(id int64) (NoteRow, error) {
	n, err := d.GetNote(id)
	if err != nil {
		return NoteRow{}, err
	}
	status, err := d.CommentStatus(id)
	if err != nil {
		return NoteRow{}, err
	}
	return NoteRow{Note: n, Status: status}, nil
}

// MarkRead flags a note as read.
func (d *DB) MarkRead(id int64) error {
	res, err := d.db.Exec(`UPDATE notes SET read = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("marking note %d read: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("note %d: %w", id, ErrNotFound)
	}
	return nil
}

// UnreadCount returns the number of unread notes.
func (d *DB) UnreadCount() (int, error) {
	var count int
	if err := d.db.QueryRow(`SELECT COUNT(*) FROM notes WHERE read = 0`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting unread notes: %w", err)
	}
	return count, nil
}

// decode restores a stored note. The read column is authoritative.
func decode(raw string, read int) (note.Note, error) {
	var n note.Note
	if err := json.Unmarshal([]byte(raw), &n); err != nil {
		return note.Note{}, fmt.Errorf("decoding stored note: %w", err)
	}
	if read != 0 {
		n.RawRead = json.RawMessage("1")
	} else {
		n.RawRead = json.RawMessage("0")
	}
	return n, nil
}
