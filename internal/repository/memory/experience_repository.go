package memory

import (
	"context"
	"sort"

	"go-profile-builder/internal/domain"
)

type experienceRepository struct {
	experience *collection[domain.Experience]
}

func NewExperienceRepository() domain.ExperienceRepository {
	return &experienceRepository{experience: newCollection[domain.Experience]()}
}

func (r *experienceRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Experience, error) {
	out := r.experience.filter(func(e domain.Experience) bool { return e.ProfileID == profileID })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *experienceRepository) Create(ctx context.Context, in domain.InsertExperience) (*domain.Experience, error) {
	e := r.experience.insert(func(id int64) domain.Experience {
		return domain.Experience{
			ID:           id,
			ProfileID:    in.ProfileID,
			JobTitle:     in.JobTitle,
			Company:      in.Company,
			Location:     in.Location,
			StartDate:    in.StartDate,
			EndDate:      in.EndDate,
			IsCurrentJob: in.IsCurrentJob,
			Description:  in.Description,
		}
	})
	return &e, nil
}

func (r *experienceRepository) Update(ctx context.Context, id int64, in domain.UpdateExperience) (*domain.Experience, error) {
	e, ok := r.experience.update(id, func(e domain.Experience) domain.Experience {
		if in.JobTitle != nil {
			e.JobTitle = *in.JobTitle
		}
		if in.Company != nil {
			e.Company = *in.Company
		}
		if in.Location != nil {
			e.Location = *in.Location
		}
		if in.StartDate != nil {
			e.StartDate = *in.StartDate
		}
		if in.EndDate != nil {
			e.EndDate = *in.EndDate
		}
		if in.IsCurrentJob != nil {
			e.IsCurrentJob = *in.IsCurrentJob
		}
		if in.Description != nil {
			e.Description = *in.Description
		}
		return e
	})
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *experienceRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.experience.delete(id), nil
}
