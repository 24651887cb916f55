package postgres

import (
	"context"
	"errors"

	"go-profile-builder/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type experienceRepository struct {
	db *pgxpool.Pool
}

func NewExperienceRepository(db *pgxpool.Pool) domain.ExperienceRepository {
	return &experienceRepository{db: db}
}

const experienceColumns = `
	id, profile_id, job_title, company,
	COALESCE(location, ''), COALESCE(start_date, ''), COALESCE(end_date, ''),
	COALESCE(is_current_job, FALSE), COALESCE(description, '')`

func scanExperience(row pgx.Row) (*domain.Experience, error) {
	var e domain.Experience
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.JobTitle, &e.Company,
		&e.Location, &e.StartDate, &e.EndDate,
		&e.IsCurrentJob, &e.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *experienceRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experience WHERE profile_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *experienceRepository) Create(ctx context.Context, in domain.InsertExperience) (*domain.Experience, error) {
	query := `
		INSERT INTO experience (profile_id, job_title, company, location, start_date, end_date, is_current_job, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + experienceColumns

	return scanExperience(r.db.QueryRow(ctx, query,
		in.ProfileID, in.JobTitle, in.Company, in.Location,
		in.StartDate, in.EndDate, in.IsCurrentJob, in.Description,
	))
}

func (r *experienceRepository) Update(ctx context.Context, id int64, in domain.UpdateExperience) (*domain.Experience, error) {
	query := `
		UPDATE experience SET
			job_title      = COALESCE($2, job_title),
			company        = COALESCE($3, company),
			location       = COALESCE($4, location),
			start_date     = COALESCE($5, start_date),
			end_date       = COALESCE($6, end_date),
			is_current_job = COALESCE($7, is_current_job),
			description    = COALESCE($8, description)
		WHERE id = $1
		RETURNING ` + experienceColumns

	return scanExperience(r.db.QueryRow(ctx, query, id,
		in.JobTitle, in.Company, in.Location,
		in.StartDate, in.EndDate, in.IsCurrentJob, in.Description,
	))
}

func (r *experienceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM experience WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
