package domain

import "context"

// Education belongs to a profile via ProfileID (weak reference: deleting a
// profile does not cascade to its children). Dates are free-text strings,
// the UI lets the user write "2019" or "Sep 2019" as they please.
type Education struct {
	ID                  int64  `json:"id"`
	ProfileID           int64  `json:"profileId"`
	Institution         string `json:"institution"`
	Degree              string `json:"degree"`
	FieldOfStudy        string `json:"fieldOfStudy"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	IsCurrentlyStudying bool   `json:"isCurrentlyStudying"`
	Description         string `json:"description"`
}

type InsertEducation struct {
	ProfileID           int64  `json:"profileId" validate:"required"`
	Institution         string `json:"institution" validate:"required"`
	Degree              string `json:"degree" validate:"required"`
	FieldOfStudy        string `json:"fieldOfStudy"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	IsCurrentlyStudying bool   `json:"isCurrentlyStudying"`
	Description         string `json:"description"`
}

type UpdateEducation struct {
	Institution         *string `json:"institution"`
	Degree              *string `json:"degree"`
	FieldOfStudy        *string `json:"fieldOfStudy"`
	StartDate           *string `json:"startDate"`
	EndDate             *string `json:"endDate"`
	IsCurrentlyStudying *bool   `json:"isCurrentlyStudying"`
	Description         *string `json:"description"`
}

type EducationRepository interface {
	ListByProfileID(ctx context.Context, profileID int64) ([]Education, error)
	Create(ctx context.Context, in InsertEducation) (*Education, error)
	Update(ctx context.Context, id int64, in UpdateEducation) (*Education, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type EducationUsecase interface {
	ListByProfile(ctx context.Context, profileID int64) ([]Education, error)
	Create(ctx context.Context, in InsertEducation) (*Education, error)
	Update(ctx context.Context, id int64, in UpdateEducation) (*Education, error)
	Delete(ctx context.Context, id int64) error
}
