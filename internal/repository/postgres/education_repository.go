package postgres

import (
	"context"
	"errors"

	"go-profile-builder/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type educationRepository struct {
	db *pgxpool.Pool
}

func NewEducationRepository(db *pgxpool.Pool) domain.EducationRepository {
	return &educationRepository{db: db}
}

const educationColumns = `
	id, profile_id, institution, degree,
	COALESCE(field_of_study, ''), COALESCE(start_date, ''), COALESCE(end_date, ''),
	COALESCE(is_currently_studying, FALSE), COALESCE(description, '')`

func scanEducation(row pgx.Row) (*domain.Education, error) {
	var e domain.Education
	err := row.Scan(
		&e.ID, &e.ProfileID, &e.Institution, &e.Degree,
		&e.FieldOfStudy, &e.StartDate, &e.EndDate,
		&e.IsCurrentlyStudying, &e.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *educationRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education WHERE profile_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *educationRepository) Create(ctx context.Context, in domain.InsertEducation) (*domain.Education, error) {
	query := `
		INSERT INTO education (profile_id, institution, degree, field_of_study, start_date, end_date, is_currently_studying, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + educationColumns

	return scanEducation(r.db.QueryRow(ctx, query,
		in.ProfileID, in.Institution, in.Degree, in.FieldOfStudy,
		in.StartDate, in.EndDate, in.IsCurrentlyStudying, in.Description,
	))
}

func (r *educationRepository) Update(ctx context.Context, id int64, in domain.UpdateEducation) (*domain.Education, error) {
	query := `
		UPDATE education SET
			institution           = COALESCE($2, institution),
			degree                = COALESCE($3, degree),
			field_of_study        = COALESCE($4, field_of_study),
			start_date            = COALESCE($5, start_date),
			end_date              = COALESCE($6, end_date),
			is_currently_studying = COALESCE($7, is_currently_studying),
			description           = COALESCE($8, description)
		WHERE id = $1
		RETURNING ` + educationColumns

	return scanEducation(r.db.QueryRow(ctx, query, id,
		in.Institution, in.Degree, in.FieldOfStudy,
		in.StartDate, in.EndDate, in.IsCurrentlyStudying, in.Description,
	))
}

func (r *educationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
