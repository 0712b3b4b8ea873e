package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Delete key.Binding
	Skip   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		Delete: key.NewBinding(key.WithKeys("backspace", "ctrl+h", "delete"), key.WithHelp("⌫", "delete")),
		Skip:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "skip")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc/q", "quit")),
	}
}

func (k keyMap) help() string {
	var out string
	for i, b := range []key.Binding{k.Submit, k.Skip, k.Delete, k.Quit} {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += "[" + h.Key + "] " + h.Desc
	}
	return out
}
