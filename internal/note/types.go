package note

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Range marks a styled span of block text. Indices are rune offsets,
// start inclusive and end exclusive.
type Range struct {
	Type    string `json:"type"`
	Indices []int  `json:"indices"`
	URL     string `json:"url"`
	ID      int64  `json:"id"`
}

// Bounds returns the span of the range, or ok=false if indices are missing.
func (r Range) Bounds() (start, end int, ok bool) {
	if len(r.Indices) < 2 || r.Indices[0] < 0 || r.Indices[1] <= r.Indices[0] {
		return 0, 0, false
	}
	return r.Indices[0], r.Indices[1], true
}

// Media is an image or other attachment on a block.
type Media struct {
	Type   string `json:"type"`
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Meta carries the ids and links of a block.
type Meta struct {
	IDs    map[string]int64  `json:"ids"`
	Links  map[string]string `json:"links"`
	Titles map[string]string `json:"titles"`
}

// Text is a piece of formatted text.
type Text struct {
	Text   string  `json:"text"`
	Ranges []Range `json:"ranges"`
}

// Block is one body block of a note.
type Block struct {
	Type          string          `json:"type"`
	Text          string          `json:"text"`
	Ranges        []Range         `json:"ranges"`
	Media         []Media         `json:"media"`
	Meta          Meta            `json:"meta"`
	RawTimestamp  json.RawMessage `json:"timestamp,omitempty"`
	CommentStatus string          `json:"comment_status,omitempty"`
	RawComment    json.RawMessage `json:"comment_text,omitempty"`
}

// Note is a single notification.
type Note struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	RawRead      json.RawMessage `json:"read,omitempty"`
	RawTimestamp json.RawMessage `json:"timestamp,omitempty"`
	URL          string          `json:"url"`
	Subject      []Text          `json:"subject"`
	Body         []Block         `json:"body"`
}

// IsComment reports whether the note is about a comment.
func (n Note) IsComment() bool {
	return n.Type == "comment"
}

// Read reports whether the note has been read. Both booleans and the
// numeric 0/1 form are accepted.
func (n Note) Read() bool {
	var b bool
	if err := json.Unmarshal(n.RawRead, &b); err == nil {
		return b
	}
	var f float64
	if err := json.Unmarshal(n.RawRead, &f); err == nil {
		return f != 0
	}
	return false
}

// Timestamp returns the note time in unix seconds. Unix numbers and RFC 3339
// strings are accepted; anything else is 0.
func (n Note) Timestamp() int64 {
	return parseTimestamp(n.RawTimestamp)
}

// SubjectText joins the subject lines.
func (n Note) SubjectText() string {
	parts := make([]string, 0, len(n.Subject))
	for _, s := range n.Subject {
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// CommentUserBlock returns the first user block that carries comment text.
func (n Note) CommentUserBlock() (UserBlock, bool) {
	for _, b := range n.Body {
		if b.Type == "user" && !isNull(b.RawComment) {
			return UserBlock{Block: b}, true
		}
	}
	return UserBlock{}, false
}

func isNull(raw json.RawMessage) bool {
	t := strings.TrimSpace(string(raw))
	return t == "" || t == "null"
}

func parseTimestamp(raw json.RawMessage) int64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int64(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	s = strings.TrimSpace(s)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Unix()
	}
	return 0
}
