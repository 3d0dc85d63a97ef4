package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	enter      key.Binding
	esc        key.Binding
	quit       key.Binding
	buildInfo  key.Binding
	uploadPDF  key.Binding
	scrapeWeb  key.Binding
	toggleMode key.Binding
	testAI     key.Binding
	clearPDF   key.Binding
	clearWeb   key.Binding
	clearAll   key.Binding
	clearChat  key.Binding
	refresh    key.Binding
	copy       key.Binding
	scrollUp   key.Binding
	scrollDown key.Binding
}

var keys = keyMap{
	enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send")),
	esc:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	buildInfo:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	uploadPDF:  key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "pdf")),
	scrapeWeb:  key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "website")),
	toggleMode: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "toggle mode")),
	testAI:     key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "test ai")),
	clearPDF:   key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "clear pdf")),
	clearWeb:   key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "clear web")),
	clearAll:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "clear all")),
	clearChat:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear chat")),
	refresh:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
	copy:       key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy answer")),
	scrollUp:   key.NewBinding(key.WithKeys("pgup")),
	scrollDown: key.NewBinding(key.WithKeys("pgdown")),
}

// shortHelp lists the bindings shown in the footer.
func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{
		k.uploadPDF, k.scrapeWeb, k.toggleMode, k.testAI, k.clearPDF, k.clearWeb,
		k.clearAll, k.clearChat, k.refresh, k.copy, k.buildInfo, k.quit,
	}
}
