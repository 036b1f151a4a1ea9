package session

import "github.com/MKhiriev/go-doc-vault/models"

// Origin tells where the active ciphertext came from.
type Origin int

const (
	OriginNone Origin = iota
	OriginEncrypted
	OriginVault
	OriginFallback
)

func (o Origin) String() string {
	switch o {
	case OriginEncrypted:
		return "encrypted"
	case OriginVault:
		return "vault"
	case OriginFallback:
		return "fallback"
	default:
		return "none"
	}
}

// State is an immutable snapshot of the session. The zero value is the
// initial state.
type State struct {
	selectedFile *models.SelectedFile

	activeCiphertext *models.Ciphertext
	activeMediaType  models.MediaType
	activeName       string
	origin           Origin

	decryptedPayload *string
}

// SelectFile replaces the selected file wholesale. The active ciphertext is
// not touched.
func (s State) SelectFile(file models.SelectedFile) (State, error) {
	if file.IsEmpty() {
		return s, ErrNoFileSelected
	}

	s.selectedFile = &file
	return s, nil
}

// OnEncrypted makes ct, just produced from the selected file, the active
// ciphertext. Its media type is the selected file's and any decrypted
// payload is dropped.
func (s State) OnEncrypted(ct models.Ciphertext) (State, error) {
	if s.selectedFile == nil {
		return s, ErrNoFileSelected
	}
	if ct.IsEmpty() {
		return s, ErrEmptyCiphertext
	}

	s.activeCiphertext = &ct
	s.activeMediaType = s.selectedFile.MediaType
	s.activeName = s.selectedFile.Name
	s.origin = OriginEncrypted
	s.decryptedPayload = nil
	return s, nil
}

// OnVaultLoaded makes a ciphertext read from the vault or the fallback slot
// the active one. A nil or unparsable mediaType marks the media type
// unknown; the previous one is never carried over.
func (s State) OnVaultLoaded(ct models.Ciphertext, mediaType *string) (State, error) {
	if ct.IsEmpty() {
		return s, ErrEmptyCiphertext
	}

	s.activeCiphertext = &ct
	s.activeMediaType = models.UnknownMediaType
	if mediaType != nil {
		s.activeMediaType = models.ParseMediaType(*mediaType)
	}
	s.activeName = ""
	s.origin = OriginVault
	s.decryptedPayload = nil
	return s, nil
}

// OnDecrypted records the plaintext of the active ciphertext.
func (s State) OnDecrypted(plaintext string) (State, error) {
	if s.activeCiphertext == nil {
		return s, ErrNoActiveCiphertext
	}

	s.decryptedPayload = &plaintext
	return s, nil
}

// OnDecryptFailed leaves no decrypted payload behind.
func (s State) OnDecryptFailed() State {
	s.decryptedPayload = nil
	return s
}

func (s State) withOrigin(origin Origin, name string) State {
	s.origin = origin
	s.activeName = name
	return s
}

func (s State) SelectedFile() (models.SelectedFile, bool) {
	if s.selectedFile == nil {
		return models.SelectedFile{}, false
	}
	return *s.selectedFile, true
}

func (s State) ActiveCiphertext() (models.Ciphertext, bool) {
	if s.activeCiphertext == nil {
		return "", false
	}
	return *s.activeCiphertext, true
}

// ActiveMediaType is [models.UnknownMediaType] when no ciphertext is active.
func (s State) ActiveMediaType() models.MediaType {
	if s.activeCiphertext == nil {
		return models.UnknownMediaType
	}
	return s.activeMediaType
}

// ActiveName is the original file name of the active ciphertext, if known.
func (s State) ActiveName() string {
	return s.activeName
}

func (s State) Origin() Origin {
	return s.origin
}

func (s State) DecryptedPayload() (string, bool) {
	if s.decryptedPayload == nil {
		return "", false
	}
	return *s.decryptedPayload, true
}

func (s State) CanEncrypt() bool {
	return s.selectedFile != nil
}

func (s State) CanSave() bool {
	return s.activeCiphertext != nil
}

func (s State) CanDecrypt() bool {
	return s.activeCiphertext != nil
}

// RenderKind decides how a decrypted payload is shown: inline for images,
// as a download otherwise, and as raw bytes when the media type is unknown.
func (s State) RenderKind() models.MediaKind {
	return s.ActiveMediaType().Kind
}
