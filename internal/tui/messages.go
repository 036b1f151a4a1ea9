package tui

import "github.com/MKhiriev/go-doc-vault/models"

type action int

const (
	actionSelect action = iota + 1
	actionEncrypt
	actionSave
	actionLoad
	actionFallback
	actionDecrypt
	actionDelete
	actionRefresh
	actionExport
)

// label is shown next to the spinner while the action runs.
func (a action) label() string {
	switch a {
	case actionSelect:
		return "Reading file"
	case actionEncrypt:
		return "Encrypting"
	case actionSave:
		return "Saving"
	case actionLoad:
		return "Loading entry"
	case actionFallback:
		return "Loading local copy"
	case actionDecrypt:
		return "Decrypting"
	case actionDelete:
		return "Deleting"
	case actionRefresh:
		return "Loading vault"
	case actionExport:
		return "Exporting"
	default:
		return "Working"
	}
}

type actionDoneMsg struct {
	action action
	// detail is appended to the success notification.
	detail string
	err    error
}

type savedMsg struct {
	result models.SaveResult
	err    error
}

type listLoadedMsg struct {
	result models.ListResult
	err    error
}

type clearStatusMsg struct {
	seq int
}
