package usecase

import (
	"context"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"
	"go-profile-builder/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type certificationUsecase struct {
	repo     domain.CertificationRepository
	validate *validator.Validate
}

func NewCertificationUsecase(repo domain.CertificationRepository, validate *validator.Validate) domain.CertificationUsecase {
	return &certificationUsecase{repo: repo, validate: validate}
}

func (u *certificationUsecase) ListByProfile(ctx context.Context, profileID int64) ([]domain.Certification, error) {
	return u.repo.ListByProfileID(ctx, profileID)
}

func (u *certificationUsecase) Create(ctx context.Context, in domain.InsertCertification) (*domain.Certification, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}
	return u.repo.Create(ctx, in)
}

func (u *certificationUsecase) Update(ctx context.Context, id int64, in domain.UpdateCertification) (*domain.Certification, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}

	c, err := u.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperror.NotFound("Certification not found")
	}
	return c, nil
}

func (u *certificationUsecase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Certification not found")
	}
	return nil
}
