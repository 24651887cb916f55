package postgres

import (
	"context"
	"errors"

	"go-profile-builder/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepository struct {
	db *pgxpool.Pool
}

func NewProfileRepository(db *pgxpool.Pool) domain.ProfileRepository {
	return &profileRepository{db: db}
}

const profileColumns = `
	id, full_name, email,
	COALESCE(phone, ''), COALESCE(location, ''), COALESCE(title, ''),
	COALESCE(summary, ''), COALESCE(profile_photo, ''), COALESCE(public_url, ''),
	created_at, updated_at`

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var p domain.Profile
	err := row.Scan(
		&p.ID, &p.FullName, &p.Email,
		&p.Phone, &p.Location, &p.Title,
		&p.Summary, &p.ProfilePhoto, &p.PublicURL,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *profileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	return scanProfile(r.db.QueryRow(ctx, query, id))
}

func (r *profileRepository) Create(ctx context.Context, in domain.InsertProfile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (full_name, email, phone, location, title, summary, profile_photo, public_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING ` + profileColumns

	return scanProfile(r.db.QueryRow(ctx, query,
		in.FullName, in.Email, in.Phone, in.Location,
		in.Title, in.Summary, in.ProfilePhoto, in.PublicURL,
	))
}

func (r *profileRepository) Update(ctx context.Context, id int64, in domain.UpdateProfile) (*domain.Profile, error) {
	// Nil inputs fall through COALESCE, so absent fields keep their value
	query := `
		UPDATE profiles SET
			full_name     = COALESCE($2, full_name),
			email         = COALESCE($3, email),
			phone         = COALESCE($4, phone),
			location      = COALESCE($5, location),
			title         = COALESCE($6, title),
			summary       = COALESCE($7, summary),
			profile_photo = COALESCE($8, profile_photo),
			public_url    = COALESCE($9, public_url),
			updated_at    = NOW()
		WHERE id = $1
		RETURNING ` + profileColumns

	return scanProfile(r.db.QueryRow(ctx, query, id,
		in.FullName, in.Email, in.Phone, in.Location,
		in.Title, in.Summary, in.ProfilePhoto, in.PublicURL,
	))
}
