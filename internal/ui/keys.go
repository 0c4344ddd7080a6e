package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	Back       key.Binding
	Help       key.Binding
	Enter      key.Binding
	Refresh    key.Binding
	Unread     key.Binding
	NextTab    key.Binding
	PrevTab    key.Binding
	Tab1       key.Binding
	Tab2       key.Binding
	Tab3       key.Binding
	Tab4       key.Binding
	Filter     key.Binding
	Approve    key.Binding
	Unapprove  key.Binding
	Spam       key.Binding
	Trash      key.Binding
	CopyLink   key.Binding
	CopyAvatar key.Binding
	OpenUser   key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
}

var Keys = KeyMap{
	Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit / back")),
	ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Refresh:    key.NewBinding(key.WithKeys("r", "ctrl+r"), key.WithHelp("r", "refresh")),
	Unread:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "unread")),
	NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
	PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous tab")),
	Tab1:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
	Tab2:       key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "unread")),
	Tab3:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "comments")),
	Tab4:       key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "pending")),
	Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
	Approve:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "approve")),
	Unapprove:  key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "unapprove")),
	Spam:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "spam")),
	Trash:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trash")),
	CopyLink:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
	CopyAvatar: key.NewBinding(key.WithKeys("Y"), key.WithHelp("Y", "copy avatar")),
	OpenUser:   key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open user")),
	PageUp:     key.NewBinding(key.WithKeys("ctrl+u", "pgup"), key.WithHelp("ctrl+u", "page up")),
	PageDown:   key.NewBinding(key.WithKeys("ctrl+d", "pgdown"), key.WithHelp("ctrl+d", "page down")),
	Home:       key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
	End:        key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
}

// helpSections groups bindings for the help overlay.
func helpSections() []helpSection {
	k := Keys
	return []helpSection{
		{"Global", []key.Binding{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.NextTab, k.PrevTab, k.Unread, k.Help, k.Back, k.Quit, k.ForceQuit}},
		{"List", []key.Binding{k.Enter, k.Refresh, k.Filter}},
		{"Comment", []key.Binding{k.Approve, k.Unapprove, k.Spam, k.Trash, k.CopyLink, k.CopyAvatar, k.OpenUser, k.PageUp, k.PageDown, k.Home, k.End}},
	}
}
