package usecase

import (
	"context"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"
	"go-profile-builder/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type projectUsecase struct {
	repo     domain.ProjectRepository
	validate *validator.Validate
}

func NewProjectUsecase(repo domain.ProjectRepository, validate *validator.Validate) domain.ProjectUsecase {
	return &projectUsecase{repo: repo, validate: validate}
}

func (u *projectUsecase) ListByProfile(ctx context.Context, profileID int64) ([]domain.Project, error) {
	return u.repo.ListByProfileID(ctx, profileID)
}

func (u *projectUsecase) Create(ctx context.Context, in domain.InsertProject) (*domain.Project, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}
	return u.repo.Create(ctx, in)
}

func (u *projectUsecase) Update(ctx context.Context, id int64, in domain.UpdateProject) (*domain.Project, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}

	p, err := u.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Project not found")
	}
	return p, nil
}

func (u *projectUsecase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Project not found")
	}
	return nil
}
