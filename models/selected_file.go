// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SelectedFile is a file picked by the user, already converted into its
// transportable form. A new selection replaces the previous one wholesale.
type SelectedFile struct {
	// Name is the original file name (base name, no directories).
	Name string

	// MediaType is the resolved media type of the file contents.
	MediaType MediaType

	// Size is the number of raw bytes that were encoded.
	Size int64

	// EncodedPayload is a self-describing data URL
	// ("data:<media type>;base64,<data>") embedding both the media type and
	// the raw bytes.
	EncodedPayload string
}

// IsEmpty reports whether no file content has been encoded.
func (f SelectedFile) IsEmpty() bool {
	return f.EncodedPayload == ""
}
