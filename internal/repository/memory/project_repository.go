package memory

import (
	"context"
	"sort"

	"go-profile-builder/internal/domain"
)

type projectRepository struct {
	projects *collection[domain.Project]
}

func NewProjectRepository() domain.ProjectRepository {
	return &projectRepository{projects: newCollection[domain.Project]()}
}

func (r *projectRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Project, error) {
	out := r.projects.filter(func(p domain.Project) bool { return p.ProfileID == profileID })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *projectRepository) Create(ctx context.Context, in domain.InsertProject) (*domain.Project, error) {
	p := r.projects.insert(func(id int64) domain.Project {
		return domain.Project{
			ID:            id,
			ProfileID:     in.ProfileID,
			Title:         in.Title,
			Description:   in.Description,
			Technologies:  in.Technologies,
			ProjectURL:    in.ProjectURL,
			RepositoryURL: in.RepositoryURL,
			StartDate:     in.StartDate,
			EndDate:       in.EndDate,
		}
	})
	return &p, nil
}

func (r *projectRepository) Update(ctx context.Context, id int64, in domain.UpdateProject) (*domain.Project, error) {
	p, ok := r.projects.update(id, func(p domain.Project) domain.Project {
		if in.Title != nil {
			p.Title = *in.Title
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Technologies != nil {
			p.Technologies = in.Technologies
		}
		if in.ProjectURL != nil {
			p.ProjectURL = *in.ProjectURL
		}
		if in.RepositoryURL != nil {
			p.RepositoryURL = *in.RepositoryURL
		}
		if in.StartDate != nil {
			p.StartDate = *in.StartDate
		}
		if in.EndDate != nil {
			p.EndDate = *in.EndDate
		}
		return p
	})
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *projectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.projects.delete(id), nil
}
