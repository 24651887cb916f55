package usecase

import (
	"context"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"
	"go-profile-builder/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type skillUsecase struct {
	repo     domain.SkillRepository
	validate *validator.Validate
}

func NewSkillUsecase(repo domain.SkillRepository, validate *validator.Validate) domain.SkillUsecase {
	return &skillUsecase{repo: repo, validate: validate}
}

func (u *skillUsecase) ListByProfile(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	return u.repo.ListByProfileID(ctx, profileID)
}

func (u *skillUsecase) Create(ctx context.Context, in domain.InsertSkill) (*domain.Skill, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}
	return u.repo.Create(ctx, in)
}

func (u *skillUsecase) Update(ctx context.Context, id int64, in domain.UpdateSkill) (*domain.Skill, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}

	s, err := u.repo.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, apperror.NotFound("Skill not found")
	}
	return s, nil
}

func (u *skillUsecase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Skill not found")
	}
	return nil
}
