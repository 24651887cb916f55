package usecase

import (
	"context"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"
	"go-profile-builder/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type experienceUsecase struct {
	repo     domain.ExperienceRepository
	validate *validator.Validate
}

func NewExperienceUsecase(repo domain.ExperienceRepository, validate *validator.Validate) domain.ExperienceUsecase {
	return &experienceUsecase{repo: repo, validate: validate}
}

func (u *experienceUsecase) ListByProfile(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	return u.repo.ListByProfileID(ctx, profileID)
}

func (u *experienceUsecase) Create(ctx context.Context, in domain.InsertExperience) (*domain.Experience, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}
	return u.repo.Create(ctx, in)
}

func (u *experienceUsecase) Update(ctx context.Context, id int64, in domain.UpdateExperience) (*domain.Experience, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}

	e, err := u.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperror.NotFound("Experience not found")
	}
	return e, nil
}

func (u *experienceUsecase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Experience not found")
	}
	return nil
}
