package tui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
)

// Every command runs one controller action off the UI goroutine and reports
// back with a message.

func (m model) cmdSelectFile(path string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: actionSelect, err: m.vault.SelectFile(m.ctx, path)}
	}
}

func (m model) cmdEncrypt(password string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: actionEncrypt, err: m.vault.Encrypt(password)}
	}
}

func (m model) cmdSave() tea.Cmd {
	return func() tea.Msg {
		res, err := m.vault.Save(m.ctx)
		return savedMsg{result: res, err: err}
	}
}

func (m model) cmdLoadEntry(id int64, name string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: actionLoad, detail: name, err: m.vault.LoadEntry(m.ctx, id)}
	}
}

func (m model) cmdLoadFallback() tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: actionFallback, err: m.vault.LoadFallback(m.ctx)}
	}
}

func (m model) cmdDecrypt(password string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: actionDecrypt, err: m.vault.Decrypt(password)}
	}
}

func (m model) cmdDelete(id int64, name string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: actionDelete, detail: name, err: m.vault.Delete(m.ctx, id)}
	}
}

func (m model) cmdRefresh() tea.Cmd {
	return func() tea.Msg {
		res, err := m.vault.Refresh(m.ctx)
		return listLoadedMsg{result: res, err: err}
	}
}

func (m model) cmdExport(path string) tea.Cmd {
	return func() tea.Msg {
		return actionDoneMsg{action: actionExport, detail: filepath.Clean(path), err: m.vault.ExportDecrypted(path)}
	}
}
