package tui

import "fmt"

type confirmDeleteModel struct {
	id   int64
	name string
}

func (m confirmDeleteModel) View() string {
	content := fmt.Sprintf("Delete %q from the vault?", m.name) + "\n\n" + helpStyle.Render("y: delete   n / esc: cancel")
	return overlayBoxStyle.Render(content)
}
