package postgres

import (
	"context"
	"errors"

	"go-profile-builder/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type skillRepository struct {
	db *pgxpool.Pool
}

func NewSkillRepository(db *pgxpool.Pool) domain.SkillRepository {
	return &skillRepository{db: db}
}

const skillColumns = `id, profile_id, name, category, COALESCE(level, '')`

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var s domain.Skill
	err := row.Scan(&s.ID, &s.ProfileID, &s.Name, &s.Category, &s.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *skillRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE profile_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

func (r *skillRepository) Create(ctx context.Context, in domain.InsertSkill) (*domain.Skill, error) {
	query := `
		INSERT INTO skills (profile_id, name, category, level)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + skillColumns

	return scanSkill(r.db.QueryRow(ctx, query, in.ProfileID, in.Name, in.Category, in.Level))
}

func (r *skillRepository) Update(ctx context.Context, id int64, in domain.UpdateSkill) (*domain.Skill, error) {
	query := `
		UPDATE skills SET
			name     = COALESCE($2, name),
			category = COALESCE($3, category),
			level    = COALESCE($4, level)
		WHERE id = $1
		RETURNING ` + skillColumns

	return scanSkill(r.db.QueryRow(ctx, query, id, in.Name, in.Category, in.Level))
}

func (r *skillRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
