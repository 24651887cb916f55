package usecase

import (
	"context"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"
	"go-profile-builder/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type educationUsecase struct {
	repo     domain.EducationRepository
	validate *validator.Validate
}

func NewEducationUsecase(repo domain.EducationRepository, validate *validator.Validate) domain.EducationUsecase {
	return &educationUsecase{repo: repo, validate: validate}
}

func (u *educationUsecase) ListByProfile(ctx context.Context, profileID int64) ([]domain.Education, error) {
	return u.repo.ListByProfileID(ctx, profileID)
}

func (u *educationUsecase) Create(ctx context.Context, in domain.InsertEducation) (*domain.Education, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}
	return u.repo.Create(ctx, in)
}

func (u *educationUsecase) Update(ctx context.Context, id int64, in domain.UpdateEducation) (*domain.Education, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}

	e, err := u.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, apperror.NotFound("Education not found")
	}
	return e, nil
}

func (u *educationUsecase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Education not found")
	}
	return nil
}
