package memory

import (
	"context"
	"sort"

	"go-profile-builder/internal/domain"
)

type educationRepository struct {
	education *collection[domain.Education]
}

func NewEducationRepository() domain.EducationRepository {
	return &educationRepository{education: newCollection[domain.Education]()}
}

func (r *educationRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Education, error) {
	out := r.education.filter(func(e domain.Education) bool { return e.ProfileID == profileID })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *educationRepository) Create(ctx context.Context, in domain.InsertEducation) (*domain.Education, error) {
	e := r.education.insert(func(id int64) domain.Education {
		return domain.Education{
			ID:                  id,
			ProfileID:           in.ProfileID,
			Institution:         in.Institution,
			Degree:              in.Degree,
			FieldOfStudy:        in.FieldOfStudy,
			StartDate:           in.StartDate,
			EndDate:             in.EndDate,
			IsCurrentlyStudying: in.IsCurrentlyStudying,
			Description:         in.Description,
		}
	})
	return &e, nil
}

func (r *educationRepository) Update(ctx context.Context, id int64, in domain.UpdateEducation) (*domain.Education, error) {
	e, ok := r.education.update(id, func(e domain.Education) domain.Education {
		if in.Institution != nil {
			e.Institution = *in.Institution
		}
		if in.Degree != nil {
			e.Degree = *in.Degree
		}
		if in.FieldOfStudy != nil {
			e.FieldOfStudy = *in.FieldOfStudy
		}
		if in.StartDate != nil {
			e.StartDate = *in.StartDate
		}
		if in.EndDate != nil {
			e.EndDate = *in.EndDate
		}
		if in.IsCurrentlyStudying != nil {
			e.IsCurrentlyStudying = *in.IsCurrentlyStudying
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

func (r *educationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.education.delete(id), nil
}
