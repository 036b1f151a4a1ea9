package codec

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-doc-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}

func TestEncode_RoundTrip(t *testing.T) {
	c := New(0)

	tests := []struct {
		name      string
		fileName  string
		data      []byte
		mediaType string
		wantRaw   string
		wantKind  models.MediaKind
	}{
		{
			name:     "png by extension",
			fileName: "scan.png",
			data:     pngHeader,
			wantRaw:  "image/png",
			wantKind: models.MediaKindImage,
		},
		{
			name:      "declared type wins",
			fileName:  "scan.bin",
			data:      []byte("%PDF-1.7"),
			mediaType: "application/pdf",
			wantRaw:   "application/pdf",
			wantKind:  models.MediaKindDocument,
		},
		{
			name:     "sniffed png without extension",
			fileName: "scan",
			data:     pngHeader,
			wantRaw:  "image/png",
			wantKind: models.MediaKindImage,
		},
		{
			name:     "unknown binary",
			fileName: "blob",
			data:     []byte{0x00, 0x01, 0x02, 0xff},
			wantRaw:  "application/octet-stream",
			wantKind: models.MediaKindDocument,
		},
		{
			name:     "zero bytes",
			fileName: "empty",
			data:     []byte{},
			wantRaw:  "application/octet-stream",
			wantKind: models.MediaKindDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := c.Encode(tt.fileName, tt.data, tt.mediaType)
			require.NoError(t, err)

			assert.Equal(t, tt.wantRaw, file.MediaType.Raw)
			assert.Equal(t, tt.wantKind, file.MediaType.Kind)
			assert.Equal(t, int64(len(tt.data)), file.Size)
			assert.True(t, strings.HasPrefix(file.EncodedPayload, "data:"+tt.wantRaw+";base64,"))

			data, mt, err := c.Decode(file.EncodedPayload)
			require.NoError(t, err)
			assert.True(t, bytes.Equal(tt.data, data))
			assert.Equal(t, file.MediaType, mt)
		})
	}
}

func TestEncode_TooLarge(t *testing.T) {
	c := New(4)

	_, err := c.Encode("a.txt", []byte("12345"), "")
	require.ErrorIs(t, err, ErrFileTooLarge)

	_, err = c.Encode("a.txt", []byte("1234"), "")
	require.NoError(t, err)
}

func TestEncodeReader_EnforcesCapWhileReading(t *testing.T) {
	c := New(8)

	_, err := c.EncodeReader(context.Background(), "a.txt", strings.NewReader(strings.Repeat("x", 1024)), "")
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestEncodeReader_CancelledContext(t *testing.T) {
	c := New(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.EncodeReader(ctx, "a.txt", strings.NewReader("data"), "")
	require.ErrorIs(t, err, context.Canceled)
}

func TestEncodeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello vault"), 0o600))

	c := New(0)
	file, err := c.EncodeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, "note.txt", file.Name)
	assert.Equal(t, "text/plain", file.MediaType.Raw)

	data, _, err := Decode(file.EncodedPayload)
	require.NoError(t, err)
	assert.Equal(t, "hello vault", string(data))
}

func TestEncodeFile_Errors(t *testing.T) {
	dir := t.TempDir()
	c := New(2)

	_, err := c.EncodeFile(context.Background(), filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, ErrReadingFile)

	_, err = c.EncodeFile(context.Background(), dir)
	require.ErrorIs(t, err, ErrReadingFile)

	path := filepath.Join(dir, "big.txt")
	require.NoError(t, os.WriteFile(path, []byte("too big"), 0o600))
	_, err = c.EncodeFile(context.Background(), path)
	require.ErrorIs(t, err, ErrFileTooLarge)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantData string
		wantRaw  string
		wantErr  bool
	}{
		{name: "base64", input: "data:text/plain;base64,aGVsbG8=", wantData: "hello", wantRaw: "text/plain"},
		{name: "percent encoded", input: "data:text/plain,hello%20world", wantData: "hello world", wantRaw: "text/plain"},
		{name: "default media type", input: "data:,hi", wantData: "hi", wantRaw: "text/plain"},
		{name: "params kept out of raw", input: "data:text/plain;charset=utf-8;base64,aGk=", wantData: "hi", wantRaw: "text/plain"},
		{name: "not a data url", input: "hello", wantErr: true},
		{name: "no separator", input: "data:text/plain;base64", wantErr: true},
		{name: "bad base64", input: "data:image/png;base64,@@@", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, mt, err := Decode(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrMalformedPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantData, string(data))
			assert.Equal(t, tt.wantRaw, mt.Raw)
		})
	}
}
