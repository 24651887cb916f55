package domain

import "context"

// ExternalLink points at a presence elsewhere (LinkedIn, GitHub, a portfolio
// site). Platform is an open string set; the URL must be well-formed.
type ExternalLink struct {
	ID          int64  `json:"id"`
	ProfileID   int64  `json:"profileId"`
	Platform    string `json:"platform"`
	URL         string `json:"url"`
	DisplayText string `json:"displayText"`
}

type InsertExternalLink struct {
	ProfileID   int64  `json:"profileId" validate:"required"`
	Platform    string `json:"platform" validate:"required"`
	URL         string `json:"url" validate:"required,url"`
	DisplayText string `json:"displayText"`
}

type UpdateExternalLink struct {
	Platform    *string `json:"platform"`
	URL         *string `json:"url" validate:"omitempty,url"`
	DisplayText *string `json:"displayText"`
}

type ExternalLinkRepository interface {
	ListByProfileID(ctx context.Context, profileID int64) ([]ExternalLink, error)
	Create(ctx context.Context, in InsertExternalLink) (*ExternalLink, error)
	Update(ctx context.Context, id int64, in UpdateExternalLink) (*ExternalLink, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type ExternalLinkUsecase interface {
	ListByProfile(ctx context.Context, profileID int64) ([]ExternalLink, error)
	Create(ctx context.Context, in InsertExternalLink) (*ExternalLink, error)
	Update(ctx context.Context, id int64, in UpdateExternalLink) (*ExternalLink, error)
	Delete(ctx context.Context, id int64) error
}
