package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Span styles the runes in [Start, End) of a text.
type Span struct {
	Start int
	End   int
	Kind  string
}

// StyleFunc returns the style for a span kind.
type StyleFunc func(kind string) lipgloss.Style

// StyleRanges word-wraps text to width cells and renders each span with its
// style; unstyled runes use base. The first line is shortened by firstIndent
// cells so a prefix can be placed in front of it. Words wider than a line
// are kept whole. A width <= 0 disables wrapping.
func StyleRanges(text string, spans []Span, width, firstIndent int, base lipgloss.Style, style StyleFunc) []string {
	runes := []rune(text)
	kinds := make([]string, len(runes))
	for _, sp := range spans {
		start, end := sp.Start, sp.End
		if start < 0 {
			start = 0
		}
		if end > len(runes) {
			end = len(runes)
		}
		for i := start; i < end; i++ {
			kinds[i] = sp.Kind
		}
	}

	render := func(a, b int) string {
		var sb strings.Builder
		for a < b {
			kind := kinds[a]
			j := a + 1
			for j < b && kinds[j] == kind {
				j++
			}
			seg := string(runes[a:j])
			if kind == "" || style == nil {
				sb.WriteString(base.Render(seg))
			} else {
				sb.WriteString(style(kind).Render(seg))
			}
			a = j
		}
		return sb.String()
	}

	var lines []string
	first := true
	capacity := func() int {
		if first {
			return width - firstIndent
		}
		return width
	}

	paraStart := 0
	for paraStart <= len(runes) {
		paraEnd := paraStart
		for paraEnd < len(runes) && runes[paraEnd] != '\n' {
			paraEnd++
		}

		words := wordBounds(runes, paraStart, paraEnd)
		if len(words) == 0 {
			lines = append(lines, "")
			first = false
		}

		lineStart := -1
		lineEnd := -1
		for _, w := range words {
			if lineStart < 0 {
				lineStart, lineEnd = w[0], w[1]
				continue
			}
			if width > 0 && runewidth.StringWidth(string(runes[lineStart:w[1]])) > capacity() {
				lines = append(lines, render(lineStart, lineEnd))
				first = false
				lineStart, lineEnd = w[0], w[1]
				continue
			}
			lineEnd = w[1]
		}
		if lineStart >= 0 {
			lines = append(lines, render(lineStart, lineEnd))
			first = false
		}

		paraStart = paraEnd + 1
	}
	return lines
}

// wordBounds returns [start, end) pairs of the non-space runs in runes[a:b].
func wordBounds(runes []rune, a, b int) [][2]int {
	var words [][2]int
	i := a
	for i < b {
		for i < b && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= b {
			break
		}
		j := i
		for j < b && !unicode.IsSpace(runes[j]) {
			j++
		}
		words = append(words, [2]int{i, j})
		i = j
	}
	return words
}

// IndentFirstLine places prefix in front of the first line only.
func IndentFirstLine(lines []string, prefix string) []string {
	if len(lines) == 0 {
		return []string{prefix}
	}
	out := make([]string, len(lines))
	copy(out, lines)
	out[0] = prefix + out[0]
	return out
}
