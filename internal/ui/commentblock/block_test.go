package commentblock

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fragmede/modview/internal/comment"
	"github.com/fragmede/modview/internal/config"
	"github.com/fragmede/modview/internal/note"
)

func userBlock(nest int, withAvatar bool) note.UserBlock {
	b := note.Block{
		Type:         "user",
		Text:         "Alice Smith",
		RawTimestamp: json.RawMessage("0"),
		RawComment: json.RawMessage(`{"text":"Thanks @bob, see the docs","nest_level":` +
			strconv.Itoa(nest) +
			`,"ranges":[{"type":"user","indices":[7,11]},{"type":"a","indices":[21,25],"url":"https://docs.example"}]}`),
	}
	if withAvatar {
		b.Media = []note.Media{{Type: "image", URL: "https://0.gravatar.com/avatar/abc"}}
	}
	return note.UserBlock{Block: b}
}

func testOptions() Options {
	opts := OptionsFromConfig(config.Default())
	opts.BasePadding = 1
	opts.IndentedPadding = 4
	opts.TextIndent = 5
	opts.AvatarSize = 4
	opts.FadeDuration = 200 * time.Millisecond
	opts.FadeStartAlpha = 0.4
	return opts
}

func plainLines(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestBindTopLevelApproved(t *testing.T) {
	b := New(1, userBlock(0, true), comment.StatusApproved, testOptions())
	out, cmd := b.Bind(60)
	assert.Nil(t, cmd)

	lines := plainLines(out)
	require.GreaterOrEqual(t, len(lines), 3)
	assert.True(t, strings.HasPrefix(lines[0], " Alice Smith"), "header %q", lines[0])
	assert.Contains(t, lines[1], "AS")
	assert.Contains(t, lines[1], "Thanks @bob")
	assert.NotContains(t, out, "│")
	assert.Contains(t, lines[len(lines)-1], "─", "top-level approved comments show the divider")
}

func TestBindReplyIsIndentedWithRail(t *testing.T) {
	b := New(1, userBlock(2, true), comment.StatusApproved, testOptions())
	out, _ := b.Bind(60)

	lines := plainLines(out)
	assert.True(t, strings.HasPrefix(lines[0], "    │ Alice Smith"), "header %q", lines[0])
	assert.NotContains(t, lines[len(lines)-1], "─")
}

func TestBindUnapprovedHidesDivider(t *testing.T) {
	for _, nest := range []int{0, 3} {
		b := New(1, userBlock(nest, false), comment.StatusUnapproved, testOptions())
		out, _ := b.Bind(60)
		lines := plainLines(out)
		assert.NotContains(t, lines[len(lines)-1], "─", "nest %d", nest)
		assert.Contains(t, lines[1], "?", "placeholder avatar")
	}
}

func TestStatusChangedFadesOnce(t *testing.T) {
	b := New(1, userBlock(0, true), comment.StatusUnapproved, testOptions())

	assert.False(t, b.StatusChanged(comment.StatusUnapproved), "same status is not a transition")
	_, cmd := b.Bind(60)
	assert.Nil(t, cmd)

	require.True(t, b.StatusChanged(comment.StatusApproved))
	_, cmd = b.Bind(60)
	require.NotNil(t, cmd)
	assert.True(t, b.Animating())

	_, cmd = b.Bind(60)
	assert.Nil(t, cmd, "the transition is consumed by the first bind")
}

func TestSetStatusDoesNotFade(t *testing.T) {
	b := New(1, userBlock(0, true), comment.StatusUnapproved, testOptions())
	b.SetStatus(comment.StatusApproved)
	_, cmd := b.Bind(60)
	assert.Nil(t, cmd)
	assert.Equal(t, comment.StatusApproved, b.Status())
}

func TestFadeFramesReachFullAlpha(t *testing.T) {
	b := New(9, userBlock(0, true), comment.StatusUnapproved, testOptions())
	b.StatusChanged(comment.StatusApproved)
	_, cmd := b.Bind(60)
	require.NotNil(t, cmd)
	assert.InDelta(t, 0.4, b.alpha, 1e-9)

	last := b.alpha
	for frame := 1; frame <= b.frames; frame++ {
		redraw, _ := b.Update(FadeFrameMsg{NoteID: 9, seq: b.seq, frame: frame})
		require.True(t, redraw)
		assert.Greater(t, b.alpha, last)
		last = b.alpha
	}
	assert.InDelta(t, 1.0, b.alpha, 1e-9)
	assert.False(t, b.Animating())
}

func TestUpdateIgnoresForeignFrames(t *testing.T) {
	b := New(9, userBlock(0, true), comment.StatusUnapproved, testOptions())
	b.StatusChanged(comment.StatusApproved)
	b.Bind(60)

	redraw, cmd := b.Update(FadeFrameMsg{NoteID: 8, seq: b.seq, frame: 1})
	assert.False(t, redraw)
	assert.Nil(t, cmd)

	redraw, _ = b.Update(FadeFrameMsg{NoteID: 9, seq: b.seq - 1, frame: 1})
	assert.False(t, redraw, "frames from an earlier fade are stale")
}

func TestSetUserKeepsPendingFade(t *testing.T) {
	b := New(1, userBlock(0, true), comment.StatusUnapproved, testOptions())
	require.True(t, b.StatusChanged(comment.StatusApproved))

	b.SetUser(userBlock(1, true))
	b.SetStatus(comment.StatusApproved)
	out, cmd := b.Bind(60)
	assert.NotNil(t, cmd, "reloading the content must not drop the transition")
	assert.Contains(t, ansi.Strip(out), "│", "the new content is rendered")
}

func TestAvatarURL(t *testing.T) {
	opts := testOptions()
	opts.AvatarPixels = 128

	b := New(1, userBlock(0, true), comment.StatusApproved, opts)
	assert.Equal(t, "https://0.gravatar.com/avatar/abc?s=128&d=mm", b.AvatarURL())

	b = New(1, userBlock(0, false), comment.StatusApproved, opts)
	assert.Empty(t, b.AvatarURL())
}

func TestCopiesShareTrigger(t *testing.T) {
	b := New(1, userBlock(0, true), comment.StatusUnapproved, testOptions())
	c := b
	c.StatusChanged(comment.StatusApproved)

	_, cmd := c.Bind(60)
	require.NotNil(t, cmd)
	assert.False(t, b.fade.Pending())
}

func TestPaletteFade(t *testing.T) {
	p := DefaultPalette()
	assert.Equal(t, p.Text[comment.TextNormal], p.fade(p.Text[comment.TextNormal], 1))
	assert.True(t, strings.EqualFold(string(p.Canvas), string(p.fade("#FFFFFF", 0))))
	assert.Equal(t, "", string(p.fade("", 0.5)))
	assert.NotEqual(t, "#FFFFFF", string(p.fade("#FFFFFF", 0.5)))
}

func TestHTMLBodyWithoutRanges(t *testing.T) {
	ub := note.UserBlock{Block: note.Block{
		Type:       "user",
		Text:       "Bob",
		RawComment: json.RawMessage(`{"text":"<p>one</p><p>two &amp; three</p>"}`),
	}}
	b := New(2, ub, comment.StatusApproved, testOptions())
	out, _ := b.Bind(60)
	plain := ansi.Strip(out)
	assert.Contains(t, plain, "two & three")
	assert.NotContains(t, plain, "<p>")
}
