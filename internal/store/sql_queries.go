package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-doc-vault/models"
)

const filesTable = "files"

var fileColumns = []string{
	"id",
	"original_filename",
	"stored_filename",
	"file_path",
	"created_at",
	"upload_status",
}

func buildInsertFileQuery(b sq.StatementBuilderType, rec models.FileRecord) (string, []any, error) {
	query, args, err := b.
		Insert(filesTable).
		Columns("original_filename", "stored_filename", "file_path", "upload_status").
		Values(rec.OriginalFilename, rec.StoredFilename, rec.FilePath, rec.UploadStatus).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListFilesQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(fileColumns...).
		From(filesTable).
		OrderBy("id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetFileQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Select(fileColumns...).
		From(filesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteFileQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	query, args, err := b.
		Delete(filesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
