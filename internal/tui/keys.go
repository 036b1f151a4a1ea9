package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	nextFocus   key.Binding
	prevFocus   key.Binding
	selectFile  key.Binding
	encrypt     key.Binding
	save        key.Binding
	loadEntry   key.Binding
	fallback    key.Binding
	decrypt     key.Binding
	deleteEntry key.Binding
	refresh     key.Binding
	export      key.Binding
	copy        key.Binding
	buildInfo   key.Binding
	yes         key.Binding
	no          key.Binding
	confirm     key.Binding
	back        key.Binding
	quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		nextFocus:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		prevFocus:   key.NewBinding(key.WithKeys("shift+tab")),
		selectFile:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select file")),
		encrypt:     key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "encrypt")),
		save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		loadEntry:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load")),
		fallback:    key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "local copy")),
		decrypt:     key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "decrypt")),
		deleteEntry: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		refresh:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
		export:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "export")),
		copy:        key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy ciphertext")),
		buildInfo:   key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "version")),
		yes:         key.NewBinding(key.WithKeys("y")),
		no:          key.NewBinding(key.WithKeys("n", "esc")),
		confirm:     key.NewBinding(key.WithKeys("enter")),
		back:        key.NewBinding(key.WithKeys("esc")),
		quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) shortHelp() []key.Binding {
	return []key.Binding{
		k.selectFile, k.loadEntry, k.encrypt, k.save, k.decrypt, k.fallback,
		k.deleteEntry, k.refresh, k.export, k.copy, k.nextFocus, k.buildInfo, k.quit,
	}
}
