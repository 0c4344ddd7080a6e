package commentblock

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/fragmede/modview/internal/comment"
)

// Palette maps presentation variants to terminal colours. An empty colour
// means the terminal default.
type Palette struct {
	// Canvas is the assumed terminal background; fades start from it.
	Canvas      lipgloss.Color
	Text        map[comment.TextColor]lipgloss.Color
	Background  map[comment.Background]lipgloss.Color
	Rail        map[comment.Background]lipgloss.Color
	Divider     lipgloss.Color
	Link        lipgloss.Color
	AvatarBg    lipgloss.Color
	Placeholder lipgloss.Color
}

// DefaultPalette is tuned for dark terminals.
func DefaultPalette() Palette {
	return Palette{
		Canvas: "#1A1A1A",
		Text: map[comment.TextColor]lipgloss.Color{
			comment.TextNormal:     "#DDDDDD",
			comment.TextAgo:        "#828282",
			comment.TextUnapproved: "#F0821E",
		},
		Background: map[comment.Background]lipgloss.Color{
			comment.BackgroundNormal:          "",
			comment.BackgroundNormalReply:     "",
			comment.BackgroundUnapproved:      "#3A2614",
			comment.BackgroundUnapprovedReply: "#3A2614",
		},
		Rail: map[comment.Background]lipgloss.Color{
			comment.BackgroundNormalReply:     "#555555",
			comment.BackgroundUnapprovedReply: "#F0821E",
		},
		Divider:     "#444444",
		Link:        "#00BFFF",
		AvatarBg:    "#005F87",
		Placeholder: "#666666",
	}
}

// fade blends c toward the canvas; alpha 1 is the colour itself.
func (p Palette) fade(c lipgloss.Color, alpha float64) lipgloss.Color {
	if c == "" || alpha >= 1 {
		return c
	}
	fg, err := colorful.Hex(string(c))
	if err != nil {
		return c
	}
	bg, err := colorful.Hex(string(p.Canvas))
	if err != nil {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	return lipgloss.Color(bg.BlendRgb(fg, alpha).Clamped().Hex())
}
