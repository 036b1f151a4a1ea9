package codec

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-doc-vault/models"
)

// FileCodec converts between raw file bytes and the self-describing data URL
// that is fed to the cipher engine.
//
// Encoding embeds the media type into the payload, so decoding a decrypted
// payload always recovers both the bytes and how to render them.
type FileCodec interface {
	// Encode turns data into a [models.SelectedFile]. An empty mediaType is
	// resolved from the file name extension and then by content sniffing.
	// Returns [ErrFileTooLarge] when data exceeds the configured cap.
	Encode(name string, data []byte, mediaType string) (models.SelectedFile, error)

	// EncodeReader reads r up to the configured cap and encodes the result.
	// Reading stops with ctx.Err() once ctx is done.
	EncodeReader(ctx context.Context, name string, r io.Reader, mediaType string) (models.SelectedFile, error)

	// EncodeFile opens path and encodes its contents under its base name.
	EncodeFile(ctx context.Context, path string) (models.SelectedFile, error)

	// Decode is the inverse of Encode. Returns [ErrMalformedPayload] when
	// encoded is not a data URL.
	Decode(encoded string) ([]byte, models.MediaType, error)
}
