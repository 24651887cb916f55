package usecase

import (
	"context"
	"errors"
	"net/http"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"
	"go-profile-builder/pkg/validation"

	"github.com/go-playground/validator/v10"
	"golang.org/x/sync/errgroup"
)

type profileUsecase struct {
	profiles       domain.ProfileRepository
	education      domain.EducationRepository
	skills         domain.SkillRepository
	experience     domain.ExperienceRepository
	projects       domain.ProjectRepository
	certifications domain.CertificationRepository
	externalLinks  domain.ExternalLinkRepository
	resumeFiles    domain.ResumeFileRepository
	validate       *validator.Validate
}

// ProfileDeps bundles the repositories the aggregate view reads from.
type ProfileDeps struct {
	Profiles       domain.ProfileRepository
	Education      domain.EducationRepository
	Skills         domain.SkillRepository
	Experience     domain.ExperienceRepository
	Projects       domain.ProjectRepository
	Certifications domain.CertificationRepository
	ExternalLinks  domain.ExternalLinkRepository
	ResumeFiles    domain.ResumeFileRepository
}

func NewProfileUsecase(deps ProfileDeps, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		profiles:       deps.Profiles,
		education:      deps.Education,
		skills:         deps.Skills,
		experience:     deps.Experience,
		projects:       deps.Projects,
		certifications: deps.Certifications,
		externalLinks:  deps.ExternalLinks,
		resumeFiles:    deps.ResumeFiles,
		validate:       validate,
	}
}

func (u *profileUsecase) GetProfile(ctx context.Context, id int64) (*domain.Profile, error) {
	p, err := u.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return p, nil
}

func (u *profileUsecase) CreateProfile(ctx context.Context, in domain.InsertProfile) (*domain.Profile, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}
	return u.profiles.Create(ctx, in)
}

func (u *profileUsecase) UpdateProfile(ctx context.Context, id int64, in domain.UpdateProfile) (*domain.Profile, error) {
	if err := u.validate.Struct(in); err != nil {
		return nil, apperror.Validation("Invalid data", validation.FormatFieldErrors(err))
	}

	p, err := u.profiles.Update(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Profile not found")
	}
	return p, nil
}

// GetCompleteProfile assembles the profile with all seven child collections.
// The child fetches touch disjoint stores, so they run concurrently. They
// are not a snapshot: a write landing between two fetches can show up in
// one collection and not another.
func (u *profileUsecase) GetCompleteProfile(ctx context.Context, id int64) (*domain.CompleteProfile, error) {
	p, err := u.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, apperror.NotFound("Profile not found")
	}

	cp := &domain.CompleteProfile{Profile: *p}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		cp.Education, err = u.education.ListByProfileID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		cp.Skills, err = u.skills.ListByProfileID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		cp.Experience, err = u.experience.ListByProfileID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		cp.Projects, err = u.projects.ListByProfileID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		cp.Certifications, err = u.certifications.ListByProfileID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		cp.ExternalLinks, err = u.externalLinks.ListByProfileID(gctx, id)
		return err
	})
	g.Go(func() (err error) {
		cp.ResumeFiles, err = u.resumeFiles.ListByProfileID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cp, nil
}

// GetCompletion degrades to 0 of 8 for an absent profile instead of
// failing; the dashboard renders the zero state either way.
func (u *profileUsecase) GetCompletion(ctx context.Context, id int64) (*domain.ProfileCompletion, error) {
	cp, err := u.GetCompleteProfile(ctx, id)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == http.StatusNotFound {
			completion := domain.CalculateCompletion(nil)
			return &completion, nil
		}
		return nil, err
	}
	completion := domain.CalculateCompletion(cp)
	return &completion, nil
}
