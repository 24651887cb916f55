package postgres

import (
	"context"
	"errors"

	"go-profile-builder/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeFileRepository struct {
	db *pgxpool.Pool
}

func NewResumeFileRepository(db *pgxpool.Pool) domain.ResumeFileRepository {
	return &resumeFileRepository{db: db}
}

const resumeFileColumns = `
	id, profile_id, filename, original_name, file_size, mime_type,
	uploaded_at, parsed_data, parsing_accuracy`

func scanResumeFile(row pgx.Row) (*domain.ResumeFile, error) {
	var f domain.ResumeFile
	err := row.Scan(
		&f.ID, &f.ProfileID, &f.Filename, &f.OriginalName,
		&f.FileSize, &f.MimeType, &f.UploadedAt,
		&f.ParsedData, &f.ParsingAccuracy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *resumeFileRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.ResumeFile, error) {
	query := `SELECT ` + resumeFileColumns + ` FROM resume_files WHERE profile_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ResumeFile, 0)
	for rows.Next() {
		f, err := scanResumeFile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *f)
	}
	return out, rows.Err()
}

func (r *resumeFileRepository) Create(ctx context.Context, in domain.InsertResumeFile) (*domain.ResumeFile, error) {
	query := `
		INSERT INTO resume_files (profile_id, filename, original_name, file_size, mime_type, uploaded_at, parsed_data, parsing_accuracy)
		VALUES ($1, $2, $3, $4, $5, NOW(), $6, $7)
		RETURNING ` + resumeFileColumns

	return scanResumeFile(r.db.QueryRow(ctx, query,
		in.ProfileID, in.Filename, in.OriginalName, in.FileSize,
		in.MimeType, in.ParsedData, in.ParsingAccuracy,
	))
}

func (r *resumeFileRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM resume_files WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
