package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type helpSection struct {
	title    string
	bindings []key.Binding
}

const helpColumns = 3

// helpView is the foreground of the help overlay.
type helpView struct{}

func (h helpView) Init() tea.Cmd                       { return nil }
func (h helpView) Update(tea.Msg) (tea.Model, tea.Cmd) { return h, nil }

func (h helpView) View() string {
	var sb strings.Builder
	sb.WriteString(HelpTitleStyle.Render("modview keys"))
	for _, s := range helpSections() {
		sb.WriteString("\n")
		sb.WriteString(HelpSectionStyle.Render(s.title))
		for i, b := range s.bindings {
			if i%helpColumns == 0 {
				sb.WriteString("\n")
			}
			hk := b.Help()
			sb.WriteString(HelpKeyStyle.Render(hk.Key) + HelpDescStyle.Render(hk.Desc))
		}
	}
	sb.WriteString("\n\n")
	sb.WriteString(DimStyle.Render("press any key to close"))
	return HelpBoxStyle.Render(sb.String())
}

// staticView wraps already rendered output as the overlay background.
type staticView struct {
	content string
}

func (s staticView) Init() tea.Cmd                       { return nil }
func (s staticView) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }
func (s staticView) View() string                        { return s.content }
