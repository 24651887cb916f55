package postgres

import (
	"context"
	"errors"

	"go-profile-builder/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type projectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) domain.ProjectRepository {
	return &projectRepository{db: db}
}

const projectColumns = `
	id, profile_id, title, COALESCE(description, ''),
	COALESCE(technologies, '{}'), COALESCE(project_url, ''), COALESCE(repository_url, ''),
	COALESCE(start_date, ''), COALESCE(end_date, '')`

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	var technologies []string
	err := row.Scan(
		&p.ID, &p.ProfileID, &p.Title, &p.Description,
		pq.Array(&technologies), &p.ProjectURL, &p.RepositoryURL,
		&p.StartDate, &p.EndDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	p.Technologies = technologies
	return &p, nil
}

func (r *projectRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE profile_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *projectRepository) Create(ctx context.Context, in domain.InsertProject) (*domain.Project, error) {
	query := `
		INSERT INTO projects (profile_id, title, description, technologies, project_url, repository_url, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + projectColumns

	return scanProject(r.db.QueryRow(ctx, query,
		in.ProfileID, in.Title, in.Description, pq.Array(in.Technologies),
		in.ProjectURL, in.RepositoryURL, in.StartDate, in.EndDate,
	))
}

func (r *projectRepository) Update(ctx context.Context, id int64, in domain.UpdateProject) (*domain.Project, error) {
	// Technologies replaces the whole array when present; there is no
	// element-level merge for ordered sequences
	var technologies interface{}
	if in.Technologies != nil {
		technologies = pq.Array(in.Technologies)
	}

	query := `
		UPDATE projects SET
			title          = COALESCE($2, title),
			description    = COALESCE($3, description),
			technologies   = COALESCE($4, technologies),
			project_url    = COALESCE($5, project_url),
			repository_url = COALESCE($6, repository_url),
			start_date     = COALESCE($7, start_date),
			end_date       = COALESCE($8, end_date)
		WHERE id = $1
		RETURNING ` + projectColumns

	return scanProject(r.db.QueryRow(ctx, query, id,
		in.Title, in.Description, technologies,
		in.ProjectURL, in.RepositoryURL, in.StartDate, in.EndDate,
	))
}

func (r *projectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
