package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusPath focusArea = iota
	focusPassword
	focusEntries

	focusAreas = 3
)

// defaultStatusTTL is how long a success notification stays visible.
const defaultStatusTTL = 5 * time.Second

type model struct {
	ctx       context.Context
	vault     Vault
	buildInfo models.AppBuildInfo
	keys      keyMap

	pathInput     textinput.Model
	passwordInput textinput.Model
	exportInput   textinput.Model
	table         table.Model
	spinner       spinner.Model
	help          help.Model
	focus         focusArea

	entries []models.VaultEntry
	offline bool

	pending bool
	running action

	status    string
	statusSeq int
	statusTTL time.Duration

	errOverlay    *errorOverlayModel
	confirmDelete *confirmDeleteModel
	exporting     bool
	showBuildInfo bool

	// writeClipboard is swapped in tests.
	writeClipboard func(string) error
}

func newModel(ctx context.Context, vault Vault, buildInfo models.AppBuildInfo) model {
	path := newInput("path to a file to encrypt", 60)
	path.Focus()

	password := newInput("password", 40)
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	export := newInput("export path", 60)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "ID", Width: 6},
			{Title: "Original file", Width: 40},
			{Title: "Created", Width: 20},
		}),
		table.WithHeight(8),
	)

	m := model{
		ctx:            ctx,
		vault:          vault,
		buildInfo:      buildInfo,
		keys:           newKeyMap(),
		pathInput:      path,
		passwordInput:  password,
		exportInput:    export,
		table:          t,
		spinner:        spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:           help.New(),
		focus:          focusPath,
		entries:        []models.VaultEntry{},
		statusTTL:      defaultStatusTTL,
		writeClipboard: clipboard.WriteAll,

		// the first listing is requested by Init
		pending: true,
		running: actionRefresh,
	}
	m.syncKeys()

	return m
}

func newInput(placeholder string, width int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Width = width
	in.Prompt = "> "
	in.Cursor.SetMode(cursor.CursorStatic)
	return in
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.cmdRefresh(), m.spinner.Tick)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	case actionDoneMsg:
		cmd = m.onActionDone(msg)
		m.syncKeys()
		return m, cmd
	case savedMsg:
		cmd = m.onSaved(msg)
		m.syncKeys()
		return m, cmd
	case listLoadedMsg:
		cmd = m.onListLoaded(msg)
		m.syncKeys()
		return m, cmd
	case tea.KeyMsg:
		cmd = m.onKey(msg)
		m.syncKeys()
		return m, cmd
	}

	return m, nil
}

func (m *model) onKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.quit) {
		return tea.Quit
	}

	switch {
	case m.errOverlay != nil:
		if key.Matches(msg, m.keys.confirm, m.keys.back) {
			m.errOverlay = nil
		}
		return nil
	case m.showBuildInfo:
		if key.Matches(msg, m.keys.back, m.keys.buildInfo) {
			m.showBuildInfo = false
		}
		return nil
	case m.confirmDelete != nil:
		return m.onConfirmKey(msg)
	case m.exporting:
		return m.onExportKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.buildInfo):
		m.showBuildInfo = true
		return nil
	case key.Matches(msg, m.keys.nextFocus):
		m.setFocus((m.focus + 1) % focusAreas)
		return nil
	case key.Matches(msg, m.keys.prevFocus):
		m.setFocus((m.focus + focusAreas - 1) % focusAreas)
		return nil
	case key.Matches(msg, m.keys.encrypt):
		return m.start(actionEncrypt, m.cmdEncrypt(m.passwordInput.Value()))
	case key.Matches(msg, m.keys.save):
		return m.start(actionSave, m.cmdSave())
	case key.Matches(msg, m.keys.decrypt):
		return m.start(actionDecrypt, m.cmdDecrypt(m.passwordInput.Value()))
	case key.Matches(msg, m.keys.fallback):
		return m.start(actionFallback, m.cmdLoadFallback())
	case key.Matches(msg, m.keys.refresh):
		return m.start(actionRefresh, m.cmdRefresh())
	case key.Matches(msg, m.keys.export):
		m.openExport()
		return nil
	case key.Matches(msg, m.keys.copy):
		return m.copyCiphertext()
	}

	switch m.focus {
	case focusPath:
		if key.Matches(msg, m.keys.selectFile) {
			return m.start(actionSelect, m.cmdSelectFile(strings.TrimSpace(m.pathInput.Value())))
		}
		var cmd tea.Cmd
		m.pathInput, cmd = m.pathInput.Update(msg)
		return cmd
	case focusPassword:
		var cmd tea.Cmd
		m.passwordInput, cmd = m.passwordInput.Update(msg)
		return cmd
	default:
		if entry, ok := m.selectedEntry(); ok {
			switch {
			case key.Matches(msg, m.keys.loadEntry):
				return m.start(actionLoad, m.cmdLoadEntry(entry.ID, entry.OriginalFilename))
			case key.Matches(msg, m.keys.deleteEntry):
				m.confirmDelete = &confirmDeleteModel{id: entry.ID, name: entry.OriginalFilename}
				return nil
			}
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}
}

func (m *model) onConfirmKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.yes):
		target := *m.confirmDelete
		m.confirmDelete = nil
		return m.start(actionDelete, m.cmdDelete(target.id, target.name))
	case key.Matches(msg, m.keys.no):
		m.confirmDelete = nil
	}
	return nil
}

func (m *model) onExportKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.back):
		m.exporting = false
		m.exportInput.Blur()
		return nil
	case key.Matches(msg, m.keys.confirm):
		path := strings.TrimSpace(m.exportInput.Value())
		if path == "" {
			return nil
		}
		m.exporting = false
		m.exportInput.Blur()
		return m.start(actionExport, m.cmdExport(path))
	}

	var cmd tea.Cmd
	m.exportInput, cmd = m.exportInput.Update(msg)
	return cmd
}

// start marks a as running and schedules cmd. A second action is refused
// until the first one reported back.
func (m *model) start(a action, cmd tea.Cmd) tea.Cmd {
	if m.pending {
		return nil
	}
	m.pending = true
	m.running = a
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *model) finish() {
	m.pending = false
	m.running = 0
}

func (m *model) onActionDone(msg actionDoneMsg) tea.Cmd {
	m.finish()
	if msg.err != nil {
		return m.fail(msg.err)
	}

	st := m.vault.State()
	switch msg.action {
	case actionSelect:
		file, _ := st.SelectedFile()
		return m.notify(fmt.Sprintf("Selected %s (%s)", file.Name, file.MediaType))
	case actionEncrypt:
		return m.notify("Encrypted " + st.ActiveName())
	case actionLoad:
		return m.notify("Loaded " + msg.detail + " from the vault")
	case actionFallback:
		return m.notify("Loaded the local copy")
	case actionDecrypt:
		return m.notify("Decrypted " + st.ActiveName())
	case actionDelete:
		return tea.Batch(m.notify("Deleted "+msg.detail), m.start(actionRefresh, m.cmdRefresh()))
	case actionExport:
		return m.notify("Exported to " + msg.detail)
	default:
		return nil
	}
}

func (m *model) onSaved(msg savedMsg) tea.Cmd {
	m.finish()
	if msg.err != nil {
		return m.fail(msg.err)
	}

	if msg.result.Outcome == models.SaveOutcomeFallback {
		m.offline = true
		return m.notify("Vault unreachable: saved locally as " + msg.result.StorageName)
	}
	return tea.Batch(
		m.notify("Saved to the vault as "+msg.result.StorageName),
		m.start(actionRefresh, m.cmdRefresh()),
	)
}

func (m *model) onListLoaded(msg listLoadedMsg) tea.Cmd {
	m.finish()
	if msg.err != nil {
		return m.fail(msg.err)
	}

	m.entries = msg.result.Entries
	m.offline = msg.result.Offline

	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		created := "-"
		if !e.CreatedAt.IsZero() {
			created = e.CreatedAt.Local().Format("2006-01-02 15:04")
		}
		rows = append(rows, table.Row{fmt.Sprint(e.ID), fitText(e.OriginalFilename, 40), created})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}

	if m.offline {
		return m.notify("Vault offline: ctrl+f loads the local copy")
	}
	return nil
}

func (m *model) fail(err error) tea.Cmd {
	m.errOverlay = &errorOverlayModel{message: userMessage(err)}
	return nil
}

// notify shows a status line that clears itself after statusTTL.
func (m *model) notify(status string) tea.Cmd {
	m.status = status
	m.statusSeq++
	if m.statusTTL <= 0 {
		return nil
	}

	seq := m.statusSeq
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *model) openExport() {
	name := m.vault.State().ActiveName()
	if name == "" {
		name = "decrypted"
	}
	m.exportInput.SetValue(name)
	m.exportInput.CursorEnd()
	m.exportInput.Focus()
	m.exporting = true
}

func (m *model) copyCiphertext() tea.Cmd {
	ct, ok := m.vault.State().ActiveCiphertext()
	if !ok {
		return nil
	}
	if err := m.writeClipboard(string(ct)); err != nil {
		return m.fail(fmt.Errorf("copy to clipboard: %w", err))
	}
	return m.notify("Ciphertext copied to the clipboard")
}

func (m *model) setFocus(f focusArea) {
	m.focus = f
	m.pathInput.Blur()
	m.passwordInput.Blur()
	m.table.Blur()

	switch f {
	case focusPath:
		m.pathInput.Focus()
	case focusPassword:
		m.passwordInput.Focus()
	case focusEntries:
		m.table.Focus()
	}
}

func (m model) selectedEntry() (models.VaultEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return models.VaultEntry{}, false
	}
	return m.entries[i], true
}

// syncKeys enables exactly the triggers the current state allows. Disabled
// bindings neither match nor show up in the help line.
func (m *model) syncKeys() {
	st := m.vault.State()
	idle := !m.pending
	_, hasEntry := m.selectedEntry()
	_, hasCiphertext := st.ActiveCiphertext()
	_, hasPayload := st.DecryptedPayload()

	m.keys.selectFile.SetEnabled(idle && m.focus == focusPath)
	m.keys.encrypt.SetEnabled(idle && st.CanEncrypt())
	m.keys.save.SetEnabled(idle && st.CanSave())
	m.keys.decrypt.SetEnabled(idle && st.CanDecrypt())
	m.keys.fallback.SetEnabled(idle)
	m.keys.refresh.SetEnabled(idle)
	m.keys.loadEntry.SetEnabled(idle && m.focus == focusEntries && hasEntry)
	m.keys.deleteEntry.SetEnabled(idle && m.focus == focusEntries && hasEntry)
	m.keys.export.SetEnabled(idle && hasPayload)
	m.keys.copy.SetEnabled(hasCiphertext)
}
