package usecase

import (
	"context"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"
	"go-profile-builder/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type externalLinkUsecase struct {
	repo     domain.ExternalLinkRepository
	validate *validator.Validate
}

func NewExternalLinkUsecase(repo domain.ExternalLinkRepository, validate *validator.Validate) domain.ExternalLinkUsecase {
	return &externalLinkUsecase{repo: repo, validate: validate}
}

func (u *externalLinkUsecase) ListByProfile(ctx context.Context, profileID int64) ([]domain.ExternalLink, error) {
	return u.repo.ListByProfileID(ctx, profileID)
}

func (u *externalLinkUsecase) Create(ctx context.Context, in domain.InsertExternalLink) (*domain.ExternalLink, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}
	return u.repo.Create(ctx, in)
}

func (u *externalLinkUsecase) Update(ctx context.Context, id int64, in domain.UpdateExternalLink) (*domain.ExternalLink, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}

	l, err := u.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apperror.NotFound("External link not found")
	}
	return l, nil
}

func (u *externalLinkUsecase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("External link not found")
	}
	return nil
}
