package postgres

import (
	"context"
	"errors"

	"go-profile-builder/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type certificationRepository struct {
	db *pgxpool.Pool
}

func NewCertificationRepository(db *pgxpool.Pool) domain.CertificationRepository {
	return &certificationRepository{db: db}
}

const certificationColumns = `
	id, profile_id, name, issuer,
	COALESCE(issue_date, ''), COALESCE(expiry_date, ''),
	COALESCE(credential_id, ''), COALESCE(credential_url, ''),
	COALESCE(is_blockchain_verified, FALSE)`

func scanCertification(row pgx.Row) (*domain.Certification, error) {
	var c domain.Certification
	err := row.Scan(
		&c.ID, &c.ProfileID, &c.Name, &c.Issuer,
		&c.IssueDate, &c.ExpiryDate,
		&c.CredentialID, &c.CredentialURL,
		&c.IsBlockchainVerified,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *certificationRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE profile_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *certificationRepository) Create(ctx context.Context, in domain.InsertCertification) (*domain.Certification, error) {
	query := `
		INSERT INTO certifications (profile_id, name, issuer, issue_date, expiry_date, credential_id, credential_url, is_blockchain_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + certificationColumns

	return scanCertification(r.db.QueryRow(ctx, query,
		in.ProfileID, in.Name, in.Issuer, in.IssueDate,
		in.ExpiryDate, in.CredentialID, in.CredentialURL, in.IsBlockchainVerified,
	))
}

func (r *certificationRepository) Update(ctx context.Context, id int64, in domain.UpdateCertification) (*domain.Certification, error) {
	query := `
		UPDATE certifications SET
			name                   = COALESCE($2, name),
			issuer                 = COALESCE($3, issuer),
			issue_date             = COALESCE($4, issue_date),
			expiry_date            = COALESCE($5, expiry_date),
			credential_id          = COALESCE($6, credential_id),
			credential_url         = COALESCE($7, credential_url),
			is_blockchain_verified = COALESCE($8, is_blockchain_verified)
		WHERE id = $1
		RETURNING ` + certificationColumns

	return scanCertification(r.db.QueryRow(ctx, query, id,
		in.Name, in.Issuer, in.IssueDate, in.ExpiryDate,
		in.CredentialID, in.CredentialURL, in.IsBlockchainVerified,
	))
}

func (r *certificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
