package postgres

import (
	"context"
	"errors"

	"go-profile-builder/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type externalLinkRepository struct {
	db *pgxpool.Pool
}

func NewExternalLinkRepository(db *pgxpool.Pool) domain.ExternalLinkRepository {
	return &externalLinkRepository{db: db}
}

const externalLinkColumns = `id, profile_id, platform, url, COALESCE(display_text, '')`

func scanExternalLink(row pgx.Row) (*domain.ExternalLink, error) {
	var l domain.ExternalLink
	err := row.Scan(&l.ID, &l.ProfileID, &l.Platform, &l.URL, &l.DisplayText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *externalLinkRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.ExternalLink, error) {
	query := `SELECT ` + externalLinkColumns + ` FROM external_links WHERE profile_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.ExternalLink, 0)
	for rows.Next() {
		l, err := scanExternalLink(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *l)
	}
	return out, rows.Err()
}

func (r *externalLinkRepository) Create(ctx context.Context, in domain.InsertExternalLink) (*domain.ExternalLink, error) {
	query := `
		INSERT INTO external_links (profile_id, platform, url, display_text)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + externalLinkColumns

	return scanExternalLink(r.db.QueryRow(ctx, query, in.ProfileID, in.Platform, in.URL, in.DisplayText))
}

func (r *externalLinkRepository) Update(ctx context.Context, id int64, in domain.UpdateExternalLink) (*domain.ExternalLink, error) {
	query := `
		UPDATE external_links SET
			platform     = COALESCE($2, platform),
			url          = COALESCE($3, url),
			display_text = COALESCE($4, display_text)
		WHERE id = $1
		RETURNING ` + externalLinkColumns

	return scanExternalLink(r.db.QueryRow(ctx, query, id, in.Platform, in.URL, in.DisplayText))
}

func (r *externalLinkRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM external_links WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
