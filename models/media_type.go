// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"mime"
	"strings"
)

// MediaKind classifies a media type for rendering purposes. It is resolved
// once, when a file is encoded or a ciphertext is loaded, so presentation
// code switches on the kind instead of inspecting MIME strings.
type MediaKind int

const (
	// MediaKindUnknown means the media type of the active ciphertext is not
	// known (e.g. a vault entry loaded without an accompanying media type).
	MediaKindUnknown MediaKind = iota

	// MediaKindImage is any "image/*" media type; decrypted payloads of this
	// kind can be rendered inline.
	MediaKindImage

	// MediaKindDocument is every other known media type; decrypted payloads
	// are offered as a download.
	MediaKindDocument
)

// String implements fmt.Stringer.
func (k MediaKind) String() string {
	switch k {
	case MediaKindImage:
		return "image"
	case MediaKindDocument:
		return "document"
	default:
		return "unknown"
	}
}

// MediaType is the MIME classification of the original file together with
// its resolved [MediaKind].
type MediaType struct {
	// Raw is the normalised MIME type without parameters (e.g. "image/png").
	// Empty when Kind is MediaKindUnknown.
	Raw string

	// Kind is the rendering class derived from Raw.
	Kind MediaKind
}

// UnknownMediaType is the zero MediaType.
var UnknownMediaType = MediaType{}

// ParseMediaType normalises raw and resolves its kind. Empty or unparsable
// input yields [UnknownMediaType].
func ParseMediaType(raw string) MediaType {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownMediaType
	}

	mt, _, err := mime.ParseMediaType(raw)
	if err != nil || !strings.Contains(mt, "/") {
		return UnknownMediaType
	}

	kind := MediaKindDocument
	if strings.HasPrefix(mt, "image/") {
		kind = MediaKindImage
	}

	return MediaType{Raw: mt, Kind: kind}
}

// IsKnown reports whether the media type carries a usable MIME string.
func (m MediaType) IsKnown() bool {
	return m.Kind != MediaKindUnknown
}

// String returns the raw MIME type or "unknown".
func (m MediaType) String() string {
	if !m.IsKnown() {
		return "unknown"
	}
	return m.Raw
}
