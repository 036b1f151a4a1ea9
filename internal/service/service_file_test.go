package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/mock"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/models"
)

func newTestFileSvc(t *testing.T) (FileService, *mock.MockFileRepository, *mock.MockBlobStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileRepository(ctrl)
	blobs := mock.NewMockBlobStorage(ctrl)

	return NewFileService(files, blobs, logger.Nop()), files, blobs
}

func testUploadRequest() models.UploadRequest {
	return models.UploadRequest{
		StorageName:      "encrypted_1.txt",
		OriginalFilename: "a.png",
		Content:          strings.NewReader("U2FsdGVkX18="),
	}
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestFileService_Upload_Success(t *testing.T) {
	svc, files, blobs := newTestFileSvc(t)
	ctx := context.Background()
	req := testUploadRequest()
	now := time.Now()

	gomock.InOrder(
		blobs.EXPECT().Save(ctx, "encrypted_1.txt", req.Content).Return("dir/encrypted_1.txt", nil),
		files.EXPECT().CreateFile(ctx, models.FileRecord{
			OriginalFilename: "a.png",
			StoredFilename:   "encrypted_1.txt",
			FilePath:         "dir/encrypted_1.txt",
			UploadStatus:     models.UploadStatusUploaded,
		}).Return(models.FileRecord{ID: 4, OriginalFilename: "a.png", CreatedAt: now}, nil),
	)

	rec, err := svc.Upload(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(4), rec.ID)
}

func TestFileService_Upload_BlobExists(t *testing.T) {
	svc, _, blobs := newTestFileSvc(t)

	blobs.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("", store.ErrFileAlreadyExists)

	_, err := svc.Upload(context.Background(), testUploadRequest())
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestFileService_Upload_RecordFailureRemovesBlob(t *testing.T) {
	svc, files, blobs := newTestFileSvc(t)

	blobs.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any()).Return("dir/encrypted_1.txt", nil)
	files.EXPECT().CreateFile(gomock.Any(), gomock.Any()).Return(models.FileRecord{}, store.ErrFileAlreadyExists)
	blobs.EXPECT().Remove(gomock.Any(), "dir/encrypted_1.txt").Return(nil)

	_, err := svc.Upload(context.Background(), testUploadRequest())
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.ErrorIs(t, err, store.ErrFileAlreadyExists)
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestFileService_List(t *testing.T) {
	svc, files, _ := newTestFileSvc(t)
	now := time.Now()

	files.EXPECT().ListFiles(gomock.Any()).Return([]models.FileRecord{
		{ID: 2, OriginalFilename: "b.pdf", CreatedAt: now},
		{ID: 1, OriginalFilename: "a.png", CreatedAt: now},
	}, nil)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.VaultEntry{ID: 2, OriginalFilename: "b.pdf", CreatedAt: models.VaultTime{Time: now}}, entries[0])
}

func TestFileService_List_EmptyIsNotNil(t *testing.T) {
	svc, files, _ := newTestFileSvc(t)
	files.EXPECT().ListFiles(gomock.Any()).Return([]models.FileRecord{}, nil)

	entries, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestFileService_List_Error(t *testing.T) {
	svc, files, _ := newTestFileSvc(t)
	files.EXPECT().ListFiles(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── Content ──────────────────────────────────────────────────────────────────

func TestFileService_Content(t *testing.T) {
	svc, files, blobs := newTestFileSvc(t)

	files.EXPECT().GetFile(gomock.Any(), int64(1)).Return(models.FileRecord{ID: 1, FilePath: "dir/x"}, nil)
	blobs.EXPECT().Open(gomock.Any(), "dir/x").Return(io.NopCloser(strings.NewReader("U2FsdGVkX18=")), nil)

	ct, err := svc.Content(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.Ciphertext("U2FsdGVkX18="), ct)
}

func TestFileService_Content_MissingRowOrBlob(t *testing.T) {
	t.Run("row", func(t *testing.T) {
		svc, files, _ := newTestFileSvc(t)
		files.EXPECT().GetFile(gomock.Any(), int64(1)).Return(models.FileRecord{}, store.ErrFileNotFound)

		_, err := svc.Content(context.Background(), 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("blob", func(t *testing.T) {
		svc, files, blobs := newTestFileSvc(t)
		files.EXPECT().GetFile(gomock.Any(), int64(1)).Return(models.FileRecord{ID: 1, FilePath: "dir/x"}, nil)
		blobs.EXPECT().Open(gomock.Any(), "dir/x").Return(nil, store.ErrFileNotFound)

		_, err := svc.Content(context.Background(), 1)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestFileService_Delete(t *testing.T) {
	svc, files, blobs := newTestFileSvc(t)

	gomock.InOrder(
		files.EXPECT().GetFile(gomock.Any(), int64(3)).Return(models.FileRecord{ID: 3, FilePath: "dir/z"}, nil),
		files.EXPECT().DeleteFile(gomock.Any(), int64(3)).Return(nil),
		blobs.EXPECT().Remove(gomock.Any(), "dir/z").Return(nil),
	)

	require.NoError(t, svc.Delete(context.Background(), 3))
}

func TestFileService_Delete_BlobRemovalFailureIsNotFatal(t *testing.T) {
	svc, files, blobs := newTestFileSvc(t)

	files.EXPECT().GetFile(gomock.Any(), int64(3)).Return(models.FileRecord{ID: 3, FilePath: "dir/z"}, nil)
	files.EXPECT().DeleteFile(gomock.Any(), int64(3)).Return(nil)
	blobs.EXPECT().Remove(gomock.Any(), "dir/z").Return(errors.New("permission denied"))

	assert.NoError(t, svc.Delete(context.Background(), 3))
}

func TestFileService_Delete_NotFound(t *testing.T) {
	svc, files, _ := newTestFileSvc(t)
	files.EXPECT().GetFile(gomock.Any(), int64(9)).Return(models.FileRecord{}, store.ErrFileNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), 9), ErrNotFound)
}

// ── Validation wrapper ───────────────────────────────────────────────────────

func TestFileValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockFileService(ctrl)
	svc := NewFileValidationService().Wrap(inner)
	ctx := context.Background()

	bad := testUploadRequest()
	bad.StorageName = "../../etc/passwd"
	_, err := svc.Upload(ctx, bad)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Content(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, svc.Delete(ctx, -1), ErrInvalidDataProvided)

	good := testUploadRequest()
	inner.EXPECT().Upload(ctx, good).Return(models.FileRecord{ID: 1}, nil)
	inner.EXPECT().List(ctx).Return([]models.VaultEntry{}, nil)
	inner.EXPECT().Content(ctx, int64(1)).Return(models.Ciphertext("ct"), nil)
	inner.EXPECT().Delete(ctx, int64(1)).Return(nil)

	rec, err := svc.Upload(ctx, good)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rec.ID)
	_, err = svc.List(ctx)
	require.NoError(t, err)
	_, err = svc.Content(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, 1))
}
