package tui

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-doc-vault/internal/session"
	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/charmbracelet/lipgloss"
)

const ciphertextPreviewLen = 48

func (m model) View() string {
	switch {
	case m.showBuildInfo:
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	case m.errOverlay != nil:
		return appStyle.Render(m.errOverlay.View())
	case m.confirmDelete != nil:
		return appStyle.Render(m.confirmDelete.View())
	}

	st := m.vault.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Secure Document Vault"))
	if m.pending {
		b.WriteString("  " + m.spinner.View() + " " + m.running.label() + "...")
	}
	b.WriteString("\n" + uiDivider + "\n\n")

	b.WriteString(row("File", m.pathInput.View()))
	b.WriteString(row("Password", m.passwordInput.View()))
	if m.exporting {
		b.WriteString(row("Export to", m.exportInput.View()))
	}
	b.WriteString("\n")

	b.WriteString(row("Selected", selectedView(st)))
	b.WriteString(row("Ciphertext", ciphertextView(st)))
	b.WriteString(row("Decrypted", decryptedView(st)))
	b.WriteString("\n")

	header := "Vault entries"
	if m.offline {
		header += " " + warnStyle.Render("(offline)")
	}
	b.WriteString(titleStyle.Render(header) + "\n")
	if len(m.entries) == 0 {
		b.WriteString(helpStyle.Render("no entries") + "\n")
	} else {
		b.WriteString(m.table.View() + "\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.shortHelp()))

	return appStyle.Render(b.String())
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value) + "\n"
}

func selectedView(st session.State) string {
	file, ok := st.SelectedFile()
	if !ok {
		return helpStyle.Render("none")
	}
	return fmt.Sprintf("%s  %s  %s", file.Name, file.MediaType, formatSize(file.Size))
}

func ciphertextView(st session.State) string {
	ct, ok := st.ActiveCiphertext()
	if !ok {
		return helpStyle.Render("none")
	}

	source := st.Origin().String()
	if name := st.ActiveName(); name != "" {
		source += ": " + name
	}
	return fmt.Sprintf("[%s] %d chars  %s", source, len(ct), fitText(string(ct), ciphertextPreviewLen))
}

// decryptedView describes the payload by its render kind. A terminal cannot
// show images or documents inline, so both point at export.
func decryptedView(st session.State) string {
	payload, ok := st.DecryptedPayload()
	if !ok {
		return helpStyle.Render("none")
	}

	mt := st.ActiveMediaType()
	size := formatSize(payloadSize(payload))
	switch st.RenderKind() {
	case models.MediaKindImage:
		return fmt.Sprintf("image %s, %s (ctrl+o to export and view)", mt.Raw, size)
	case models.MediaKindDocument:
		return fmt.Sprintf("document %s, %s (ctrl+o to export)", mt.Raw, size)
	default:
		return fmt.Sprintf("raw bytes of unknown type, %s (ctrl+o to export)", size)
	}
}

// payloadSize estimates the decoded size of a data URL without decoding it.
func payloadSize(payload string) int64 {
	_, data, found := strings.Cut(payload, ",")
	if !found {
		return 0
	}
	n := base64.StdEncoding.DecodedLen(len(data)) - strings.Count(data[max(len(data)-2, 0):], "=")
	return int64(max(n, 0))
}

func formatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(size)/float64(div), "KMGTPE"[exp])
}
