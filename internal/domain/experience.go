package domain

import "context"

type Experience struct {
	ID           int64  `json:"id"`
	ProfileID    int64  `json:"profileId"`
	JobTitle     string `json:"jobTitle"`
	Company      string `json:"company"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	IsCurrentJob bool   `json:"isCurrentJob"`
	Description  string `json:"description"`
}

type InsertExperience struct {
	ProfileID    int64  `json:"profileId" validate:"required"`
	JobTitle     string `json:"jobTitle" validate:"required"`
	Company      string `json:"company" validate:"required"`
	Location     string `json:"location"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
	IsCurrentJob bool   `json:"isCurrentJob"`
	Description  string `json:"description"`
}

type UpdateExperience struct {
	JobTitle     *string `json:"jobTitle"`
	Company      *string `json:"company"`
	Location     *string `json:"location"`
	StartDate    *string `json:"startDate"`
	EndDate      *string `json:"endDate"`
	IsCurrentJob *bool   `json:"isCurrentJob"`
	Description  *string `json:"description"`
}

type ExperienceRepository interface {
	ListByProfileID(ctx context.Context, profileID int64) ([]Experience, error)
	Create(ctx context.Context, in InsertExperience) (*Experience, error)
	Update(ctx context.Context, id int64, in UpdateExperience) (*Experience, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ExperienceUsecase interface {
	ListByProfile(ctx context.Context, profileID int64) ([]Experience, error)
	Create(ctx context.Context, in InsertExperience) (*Experience, error)
	Update(ctx context.Context, id int64, in UpdateExperience) (*Experience, error)
	Delete(ctx context.Context, id int64) error
}
