package comment

// Background is the row background variant.
type Background int

const (
	BackgroundNormal Background = iota
	BackgroundNormalReply
	BackgroundUnapproved
	BackgroundUnapprovedReply
)

func (b Background) String() string {
	switch b {
	case BackgroundNormalReply:
		return "normal_reply"
	case BackgroundUnapproved:
		return "unapproved"
	case BackgroundUnapprovedReply:
		return "unapproved_reply"
	default:
		return "normal"
	}
}

// IsReply reports whether the background carries the reply rail.
func (b Background) IsReply() bool {
	return b == BackgroundNormalReply || b == BackgroundUnapprovedReply
}

// TextColor is the text colour variant.
type TextColor int

const (
	TextNormal TextColor = iota
	TextAgo
	TextUnapproved
)

func (c TextColor) String() string {
	switch c {
	case TextAgo:
		return "ago"
	case TextUnapproved:
		return "unapproved"
	default:
		return "normal"
	}
}

// Padding selects between the base and indented left padding.
type Padding int

const (
	PaddingBase Padding = iota
	PaddingIndented
)

func (p Padding) String() string {
	if p == PaddingIndented {
		return "indented"
	}
	return "base"
}

// PresentationState describes how a comment row should look. It is derived
// fresh on every bind and never stored.
type PresentationState struct {
	Background Background
	// Text applies to the author name and the comment body.
	Text TextColor
	// Ago applies to the relative-time label.
	Ago                 TextColor
	LeftPadding         Padding
	DividerVisible      bool
	ShouldAnimateFadeIn bool
}

// Resolve derives the presentation of a comment row from its status and
// nesting level. statusJustChanged is passed through as the fade-in signal;
// the caller owns clearing it.
func Resolve(status Status, nestingLevel int, statusJustChanged bool) PresentationState {
	reply := nestingLevel > 0

	state := PresentationState{
		LeftPadding:         PaddingBase,
		ShouldAnimateFadeIn: statusJustChanged,
	}
	if reply {
		state.LeftPadding = PaddingIndented
	}

	if status == StatusUnapproved {
		state.Text = TextUnapproved
		state.Ago = TextUnapproved
		state.DividerVisible = false
		if reply {
			state.Background = BackgroundUnapprovedReply
		} else {
			state.Background = BackgroundUnapproved
		}
		return state
	}

	state.Text = TextNormal
	state.Ago = TextAgo
	if reply {
		state.Background = BackgroundNormalReply
		state.DividerVisible = false
	} else {
		state.Background = BackgroundNormal
		state.DividerVisible = true
	}
	return state
}
