package commentblock

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fragmede/modview/internal/comment"
	"github.com/fragmede/modview/internal/config"
	"github.com/fragmede/modview/internal/note"
	"github.com/fragmede/modview/internal/render"
)

const frameInterval = 40 * time.Millisecond

// Options holds the layout and animation settings of a block.
type Options struct {
	AvatarSize      int
	AvatarPixels    int
	TextIndent      int
	BasePadding     int
	IndentedPadding int
	FadeDuration    time.Duration
	FadeStartAlpha  float64
	Palette         Palette
}

// OptionsFromConfig builds block options from the application config.
func OptionsFromConfig(cfg config.Config) Options {
	return Options{
		AvatarSize:      cfg.AvatarSize,
		AvatarPixels:    cfg.AvatarPixels,
		TextIndent:      cfg.TextIndent,
		BasePadding:     cfg.BasePadding,
		IndentedPadding: cfg.IndentedPadding,
		FadeDuration:    cfg.FadeDuration,
		FadeStartAlpha:  cfg.FadeStartAlpha,
		Palette:         DefaultPalette(),
	}
}

// FadeFrameMsg advances the fade-in of one block.
type FadeFrameMsg struct {
	NoteID int64
	seq    int
	frame  int
}

// Block binds a comment user block to terminal output.
type Block struct {
	noteID int64
	user   note.UserBlock
	status comment.Status
	fade   *comment.FadeTrigger
	opts   Options

	alpha  float64
	seq    int
	frames int
}

// New creates a block for the comment of a note.
func New(noteID int64, user note.UserBlock, status comment.Status, opts Options) Block {
	return Block{
		noteID: noteID,
		user:   user,
		status: status,
		fade:   &comment.FadeTrigger{},
		opts:   opts,
		alpha:  1,
	}
}

// NoteID identifies the note the block renders.
func (b Block) NoteID() int64 { return b.noteID }

// Status is the current moderation status.
func (b Block) Status() comment.Status { return b.status }

// User is the underlying note block.
func (b Block) User() note.UserBlock { return b.user }

// AvatarURL is the commenter's avatar rewritten to the configured pixel
// size, or "" when the note has none.
func (b Block) AvatarURL() string {
	return render.FixAvatar(b.user.AvatarURL(), b.opts.AvatarPixels)
}

// Animating reports whether a fade-in is in progress.
func (b Block) Animating() bool { return b.alpha < 1 }

// SetUser swaps in freshly loaded note content. A pending fade survives.
func (b *Block) SetUser(u note.UserBlock) {
	b.user = u
}

// SetStatus replaces the status without animating.
func (b *Block) SetStatus(s comment.Status) {
	b.status = s
}

// StatusChanged applies a status transition and schedules a fade-in for the
// next bind. It returns false when the status did not actually change.
func (b *Block) StatusChanged(s comment.Status) bool {
	if s == b.status {
		return false
	}
	b.status = s
	b.fade.Arm()
	return true
}

// Bind resolves the current presentation, consuming any pending
// transition, and renders the block at width. The returned command drives
// the fade-in when one starts.
func (b *Block) Bind(width int) (string, tea.Cmd) {
	state := comment.Resolve(b.status, b.user.NestingLevel(), b.fade.Consume())

	var cmd tea.Cmd
	if state.ShouldAnimateFadeIn {
		b.seq++
		b.alpha = b.opts.FadeStartAlpha
		b.frames = int(b.opts.FadeDuration / frameInterval)
		if b.frames < 1 {
			b.frames = 1
		}
		cmd = b.tick(1)
	}
	return b.render(state, width), cmd
}

// Update advances the fade. It reports whether the block needs a re-render.
func (b *Block) Update(msg tea.Msg) (bool, tea.Cmd) {
	frame, ok := msg.(FadeFrameMsg)
	if !ok || frame.NoteID != b.noteID || frame.seq != b.seq {
		return false, nil
	}
	if frame.frame >= b.frames {
		b.alpha = 1
		return true, nil
	}
	start := b.opts.FadeStartAlpha
	b.alpha = start + (1-start)*float64(frame.frame)/float64(b.frames)
	return true, b.tick(frame.frame + 1)
}

func (b *Block) tick(frame int) tea.Cmd {
	id, seq := b.noteID, b.seq
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return FadeFrameMsg{NoteID: id, seq: seq, frame: frame}
	})
}

func (b *Block) render(state comment.PresentationState, width int) string {
	p := b.opts.Palette
	alpha := b.alpha

	bg := p.fade(p.Background[state.Background], alpha)
	textColor := p.fade(p.Text[state.Text], alpha)
	agoColor := p.fade(p.Text[state.Ago], alpha)

	styled := func(fg lipgloss.Color) lipgloss.Style {
		s := lipgloss.NewStyle().Foreground(fg)
		if bg != "" {
			s = s.Background(bg)
		}
		return s
	}
	base := styled(textColor)

	pad := b.opts.BasePadding
	if state.LeftPadding == comment.PaddingIndented {
		pad = b.opts.IndentedPadding
	}
	prefix := base.Render(strings.Repeat(" ", pad))
	prefixWidth := pad
	if state.Background.IsReply() {
		prefix += styled(p.fade(p.Rail[state.Background], alpha)).Render("│ ")
		prefixWidth += 2
	}

	bodyWidth := width - prefixWidth
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	var lines []string

	header := base.Bold(true).Render(b.user.Name())
	if ago := render.TimeAgo(b.user.Timestamp()); ago != "" {
		header += styled(agoColor).Render(" · " + ago)
	}
	lines = append(lines, prefix+header)

	text := b.user.CommentText()
	body, spans := text.Text, toSpans(text.Ranges)
	if len(spans) == 0 && strings.Contains(body, "<") {
		body = render.CommentHTMLToText(body, 0)
	}
	bodyLines := render.StyleRanges(body, spans, bodyWidth, b.opts.TextIndent, base, func(kind string) lipgloss.Style {
		return rangeStyle(kind, base, p.fade(p.Link, alpha))
	})
	bodyLines = render.IndentFirstLine(bodyLines, b.avatar(styled, alpha))
	for _, l := range bodyLines {
		lines = append(lines, prefix+l)
	}

	// A hidden divider keeps its row so toggling it does not shift the list.
	if state.DividerVisible {
		lines = append(lines, strings.Repeat(" ", pad)+
			lipgloss.NewStyle().Foreground(p.fade(p.Divider, alpha)).Render(strings.Repeat("─", bodyWidth)))
	} else {
		lines = append(lines, "")
	}

	if bg != "" {
		row := lipgloss.NewStyle().Background(bg).Width(prefixWidth + bodyWidth)
		for i, l := range lines {
			lines[i] = row.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// avatar renders the badge that occupies the first-line indent.
func (b *Block) avatar(styled func(lipgloss.Color) lipgloss.Style, alpha float64) string {
	p := b.opts.Palette
	size := b.opts.AvatarSize
	if size > b.opts.TextIndent {
		size = b.opts.TextIndent
	}
	if size <= 0 {
		return strings.Repeat(" ", b.opts.TextIndent)
	}

	var badge string
	if b.user.HasAvatar() {
		badge = lipgloss.NewStyle().
			Width(size).
			Align(lipgloss.Center).
			Bold(true).
			Foreground(p.fade("#FFFFFF", alpha)).
			Background(p.fade(p.AvatarBg, alpha)).
			Render(render.Initials(b.user.Name()))
	} else {
		badge = lipgloss.NewStyle().
			Width(size).
			Align(lipgloss.Center).
			Foreground(p.fade(p.Placeholder, alpha)).
			Render("?")
	}
	return badge + styled("").Render(strings.Repeat(" ", b.opts.TextIndent-size))
}

func rangeStyle(kind string, base lipgloss.Style, link lipgloss.Color) lipgloss.Style {
	switch kind {
	case "user", "b", "strong":
		return base.Bold(true)
	case "a", "link":
		return base.Underline(true).Foreground(link)
	case "post", "site", "comment", "i", "em":
		return base.Italic(true)
	case "blockquote":
		return base.Faint(true)
	default:
		return base
	}
}

func toSpans(ranges []note.Range) []render.Span {
	spans := make([]render.Span, 0, len(ranges))
	for _, r := range ranges {
		start, end, ok := r.Bounds()
		if !ok {
			continue
		}
		spans = append(spans, render.Span{Start: start, End: end, Kind: r.Type})
	}
	return spans
}
