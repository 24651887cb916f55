package domain

import "context"

type Project struct {
	ID            int64    `json:"id"`
	ProfileID     int64    `json:"profileId"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Technologies  []string `json:"technologies"`
	ProjectURL    string   `json:"projectUrl"`
	RepositoryURL string   `json:"repositoryUrl"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
}

type InsertProject struct {
	ProfileID     int64    `json:"profileId" validate:"required"`
	Title         string   `json:"title" validate:"required"`
	Description   string   `json:"description"`
	Technologies  []string `json:"technologies"`
	ProjectURL    string   `json:"projectUrl" validate:"omitempty,url"`
	RepositoryURL string   `json:"repositoryUrl" validate:"omitempty,url"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
}

type UpdateProject struct {
	Title         *string  `json:"title"`
	Description   *string  `json:"description"`
	Technologies  []string `json:"technologies"`
	ProjectURL    *string  `json:"projectUrl" validate:"omitempty,url"`
	RepositoryURL *string  `json:"repositoryUrl" validate:"omitempty,url"`
	StartDate     *string  `json:"startDate"`
	EndDate       *string  `json:"endDate"`
}

type ProjectRepository interface {
	ListByProfileID(ctx context.Context, profileID int64) ([]Project, error)
	Create(ctx context.Context, in InsertProject) (*Project, error)
	Update(ctx context.Context, id int64, in UpdateProject) (*Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ProjectUsecase interface {
	ListByProfile(ctx context.Context, profileID int64) ([]Project, error)
	Create(ctx context.Context, in InsertProject) (*Project, error)
	Update(ctx context.Context, id int64, in UpdateProject) (*Project, error)
	Delete(ctx context.Context, id int64) error
}
