package note

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fragmede/modview/internal/comment"
)

// UserBlock is a user block formatted for display in a comment detail.
type UserBlock struct {
	Block
}

type commentText struct {
	Text      string          `json:"text"`
	Ranges    []Range         `json:"ranges"`
	NestLevel json.RawMessage `json:"nest_level"`
}

// Name is the commenter's display name.
func (u UserBlock) Name() string {
	return u.Text
}

// HasAvatar reports whether the block has an image media item.
func (u UserBlock) HasAvatar() bool {
	return u.AvatarURL() != ""
}

// AvatarURL returns the URL of the first image media item.
func (u UserBlock) AvatarURL() string {
	for _, m := range u.Media {
		if m.Type == "image" && m.URL != "" {
			return m.URL
		}
	}
	return ""
}

// UserURL is the commenter's home link, if any.
func (u UserBlock) UserURL() string {
	return u.Meta.Links["home"]
}

// Timestamp is the comment time in unix seconds, or 0 if missing.
func (u UserBlock) Timestamp() int64 {
	return parseTimestamp(u.RawTimestamp)
}

// CommentText returns the comment body and its ranges. Malformed data yields
// an empty Text.
func (u UserBlock) CommentText() Text {
	ct, _ := u.comment()
	return Text{Text: ct.Text, Ranges: ct.Ranges}
}

// NestingLevel is the reply depth of the comment. Malformed or missing
// metadata is top level.
func (u UserBlock) NestingLevel() int {
	ct, ok := u.comment()
	if !ok {
		return 0
	}
	return comment.ParseNestingLevel(ct.NestLevel)
}

// Status is the moderation status embedded in the note.
func (u UserBlock) Status() comment.Status {
	return comment.ParseStatus(u.CommentStatus)
}

// CommentID is the id of the comment on its site.
func (u UserBlock) CommentID() int64 {
	return u.Meta.IDs["comment"]
}

// SiteID is the id of the site the comment belongs to.
func (u UserBlock) SiteID() int64 {
	return u.Meta.IDs["site"]
}

// PostID is the id of the post the comment was left on.
func (u UserBlock) PostID() int64 {
	return u.Meta.IDs["post"]
}

// Ref names the comment by its site ids, e.g. "comment #42 on post 9, site 3".
// Parts that are unknown are left out.
func (u UserBlock) Ref() string {
	id := u.CommentID()
	if id == 0 {
		return ""
	}
	ref := fmt.Sprintf("comment #%d", id)
	var where []string
	if post := u.PostID(); post != 0 {
		where = append(where, fmt.Sprintf("post %d", post))
	}
	if site := u.SiteID(); site != 0 {
		where = append(where, fmt.Sprintf("site %d", site))
	}
	if len(where) > 0 {
		ref += " on " + strings.Join(where, ", ")
	}
	return ref
}

func (u UserBlock) comment() (commentText, bool) {
	var ct commentText
	if isNull(u.RawComment) {
		return ct, false
	}
	if err := json.Unmarshal(u.RawComment, &ct); err != nil {
		return commentText{}, false
	}
	return ct, true
}
