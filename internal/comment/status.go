package comment

import "strings"

// Status is the moderation state of a comment.
type Status string

// Status values.
const (
	StatusApproved   Status = "approved"
	StatusUnapproved Status = "unapproved"
	StatusSpam       Status = "spam"
	StatusTrash      Status = "trash"
	StatusUnknown    Status = "unknown"
)

// ParseStatus maps a wire value to a Status. Anything unrecognised is
// StatusUnknown.
func ParseStatus(s string) Status {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approved", "approve", "1":
		return StatusApproved
	case "unapproved", "unapprove", "hold", "pending", "0":
		return StatusUnapproved
	case "spam":
		return StatusSpam
	case "trash", "trashed":
		return StatusTrash
	default:
		return StatusUnknown
	}
}

// Label is the short human-readable form used in badges.
func (s Status) Label() string {
	switch s {
	case StatusApproved:
		return "approved"
	case StatusUnapproved:
		return "pending"
	case StatusSpam:
		return "spam"
	case StatusTrash:
		return "trash"
	default:
		return ""
	}
}
