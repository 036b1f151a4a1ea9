package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-doc-vault/internal/codec"
	"github.com/MKhiriev/go-doc-vault/internal/crypto"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/service"
	"github.com/MKhiriev/go-doc-vault/models"
)

// defaultOriginalName is sent with ciphertexts whose source file name is
// unknown, e.g. a fallback ciphertext saved again.
const defaultOriginalName = "untitled"

// Controller runs user actions against a single [State]. At most one action
// runs at a time; a second trigger fails with [ErrActionPending].
type Controller struct {
	codec  codec.FileCodec
	cipher crypto.CipherEngine
	vault  service.VaultService

	logger *logger.Logger

	mu      sync.Mutex
	pending bool
	state   State
	entries []models.VaultEntry
	offline bool
}

func NewController(fileCodec codec.FileCodec, cipher crypto.CipherEngine, vault service.VaultService, logger *logger.Logger) *Controller {
	return &Controller{
		codec:   fileCodec,
		cipher:  cipher,
		vault:   vault,
		logger:  logger,
		entries: []models.VaultEntry{},
	}
}

// State returns the current snapshot.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Pending reports whether an action is running.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// Entries returns the listing of the last Refresh and whether the vault was
// offline at that time.
func (c *Controller) Entries() ([]models.VaultEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]models.VaultEntry(nil), c.entries...), c.offline
}

// SelectFile reads and encodes the file at path and makes it the selection.
func (c *Controller) SelectFile(ctx context.Context, path string) error {
	st, err := c.begin()
	if err != nil {
		return err
	}

	file, err := c.codec.EncodeFile(ctx, path)
	if err != nil {
		c.end(nil)
		return fmt.Errorf("select %s: %w", filepath.Base(path), err)
	}

	return c.commit(st.SelectFile(file))
}

// SelectData encodes in-memory bytes and makes them the selection.
func (c *Controller) SelectData(name string, data []byte, mediaType string) error {
	st, err := c.begin()
	if err != nil {
		return err
	}

	file, err := c.codec.Encode(name, data, mediaType)
	if err != nil {
		c.end(nil)
		return fmt.Errorf("select %s: %w", name, err)
	}

	return c.commit(st.SelectFile(file))
}

// Encrypt encrypts the selected file under password.
func (c *Controller) Encrypt(password string) error {
	st, err := c.begin()
	if err != nil {
		return err
	}

	file, ok := st.SelectedFile()
	if !ok {
		c.end(nil)
		return ErrNoFileSelected
	}

	ct, err := c.cipher.Encrypt(file.EncodedPayload, password)
	if err != nil {
		c.end(nil)
		return fmt.Errorf("encrypt %s: %w", file.Name, err)
	}

	return c.commit(st.OnEncrypted(ct))
}

// Save persists the active ciphertext with its media type. The state does
// not change.
func (c *Controller) Save(ctx context.Context) (models.SaveResult, error) {
	st, err := c.begin()
	if err != nil {
		return models.SaveResult{}, err
	}
	defer c.end(nil)

	ct, ok := st.ActiveCiphertext()
	if !ok {
		return models.SaveResult{}, ErrNoActiveCiphertext
	}

	name := st.ActiveName()
	if name == "" {
		name = defaultOriginalName
	}

	res, err := c.vault.Save(ctx, ct, st.ActiveMediaType().Raw, name)
	if err != nil {
		return models.SaveResult{}, fmt.Errorf("save: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("outcome", res.Outcome.String()).
		Str("storage_name", res.StorageName).
		Msg("ciphertext saved")

	return res, nil
}

// LoadEntry fetches the ciphertext of a vault entry and makes it active.
// The vault keeps no media type, so it becomes unknown.
func (c *Controller) LoadEntry(ctx context.Context, id int64) error {
	st, err := c.begin()
	if err != nil {
		return err
	}

	ct, err := c.vault.FetchContent(ctx, id)
	if err != nil {
		c.end(nil)
		return fmt.Errorf("load entry %d: %w", id, err)
	}

	next, err := st.OnVaultLoaded(ct, nil)
	if err != nil {
		c.end(nil)
		return fmt.Errorf("load entry %d: %w", id, err)
	}

	return c.commit(next.withOrigin(OriginVault, c.entryName(id)), nil)
}

// LoadFallback makes the local fallback ciphertext active, with the media
// type saved next to it.
func (c *Controller) LoadFallback(ctx context.Context) error {
	st, err := c.begin()
	if err != nil {
		return err
	}

	rec, err := c.vault.LoadFallback(ctx)
	if err != nil {
		c.end(nil)
		return err
	}

	var mediaType *string
	if rec.MediaType != "" {
		mediaType = &rec.MediaType
	}

	next, err := st.OnVaultLoaded(rec.Ciphertext, mediaType)
	if err != nil {
		c.end(nil)
		return fmt.Errorf("load fallback: %w", err)
	}

	return c.commit(next.withOrigin(OriginFallback, ""), nil)
}

// Decrypt decrypts the active ciphertext. A plaintext that is not a data URL
// is treated like a wrong password.
func (c *Controller) Decrypt(password string) error {
	st, err := c.begin()
	if err != nil {
		return err
	}

	ct, ok := st.ActiveCiphertext()
	if !ok {
		c.end(nil)
		return ErrNoActiveCiphertext
	}

	plaintext, err := c.cipher.Decrypt(ct, password)
	if err == nil {
		if _, _, decodeErr := c.codec.Decode(plaintext); decodeErr != nil {
			err = fmt.Errorf("%w: %w", crypto.ErrWrongPasswordOrCorruptData, decodeErr)
		}
	}
	if err != nil {
		if errors.Is(err, crypto.ErrConfig) {
			c.end(nil)
		} else {
			failed := st.OnDecryptFailed()
			c.end(&failed)
		}
		return fmt.Errorf("decrypt: %w", err)
	}

	return c.commit(st.OnDecrypted(plaintext))
}

// Delete removes a vault entry. The cached listing is left as it is; call
// Refresh afterwards.
func (c *Controller) Delete(ctx context.Context, id int64) error {
	if _, err := c.begin(); err != nil {
		return err
	}
	defer c.end(nil)

	if err := c.vault.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	return nil
}

// Refresh reloads the vault listing.
func (c *Controller) Refresh(ctx context.Context) (models.ListResult, error) {
	if _, err := c.begin(); err != nil {
		return models.ListResult{}, err
	}
	defer c.end(nil)

	res, err := c.vault.List(ctx)
	if err != nil {
		return models.ListResult{}, fmt.Errorf("refresh: %w", err)
	}

	c.mu.Lock()
	c.entries = res.Entries
	c.offline = res.Offline
	c.mu.Unlock()

	return res, nil
}

// ExportDecrypted writes the decrypted file bytes to a new file at path. An
// existing file is never overwritten.
func (c *Controller) ExportDecrypted(path string) error {
	st, err := c.begin()
	if err != nil {
		return err
	}
	defer c.end(nil)

	payload, ok := st.DecryptedPayload()
	if !ok {
		return ErrNothingDecrypted
	}

	data, _, err := c.codec.Decode(payload)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("export: %w: %s", ErrExportTargetExists, path)
		}
		return fmt.Errorf("export: %w", err)
	}

	_, err = f.Write(data)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// the file was created by this call, so a partial one is removed
		_ = os.Remove(path)
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func (c *Controller) entryName(id int64) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.entries {
		if e.ID == id {
			return e.OriginalFilename
		}
	}
	return ""
}

// begin marks an action as pending and returns the state it starts from.
func (c *Controller) begin() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending {
		return State{}, ErrActionPending
	}
	c.pending = true
	return c.state, nil
}

// end clears the pending flag, storing next if it is not nil.
func (c *Controller) end(next *State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if next != nil {
		c.state = *next
	}
	c.pending = false
}

// commit stores next unless err is set.
func (c *Controller) commit(next State, err error) error {
	if err != nil {
		c.end(nil)
		return err
	}
	c.end(&next)
	return nil
}
