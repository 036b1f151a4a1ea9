package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// vaultTimeLayouts lists the timestamp formats produced by vault services:
// RFC 3339 and the SQLite CURRENT_TIMESTAMP format.
var vaultTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
}

// VaultTime is a time.Time that accepts every timestamp layout a vault
// service is known to emit.
type VaultTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *VaultTime) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("vault time must be a string: %w", err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range vaultTimeLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}

	return fmt.Errorf("unsupported vault time %q", raw)
}

// MarshalJSON implements json.Marshaler.
func (t VaultTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}
