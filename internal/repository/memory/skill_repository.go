package memory

import (
	"context"
	"sort"

	"go-profile-builder/internal/domain"
)

type skillRepository struct {
	skills *collection[domain.Skill]
}

func NewSkillRepository() domain.SkillRepository {
	return &skillRepository{skills: newCollection[domain.Skill]()}
}

func (r *skillRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Skill, error) {
	out := r.skills.filter(func(s domain.Skill) bool { return s.ProfileID == profileID })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *skillRepository) Create(ctx context.Context, in domain.InsertSkill) (*domain.Skill, error) {
	s := r.skills.insert(func(id int64) domain.Skill {
		return domain.Skill{
			ID:        id,
			ProfileID: in.ProfileID,
			Name:      in.Name,
			Category:  in.Category,
			Level:     in.Level,
		}
	})
	return &s, nil
}

func (r *skillRepository) Update(ctx context.Context, id int64, in domain.UpdateSkill) (*domain.Skill, error) {
	s, ok := r.skills.update(id, func(s domain.Skill) domain.Skill {
		if in.Name != nil {
			s.Name = *in.Name
		}
		if in.Category != nil {
			s.Category = *in.Category
		}
		if in.Level != nil {
			s.Level = *in.Level
		}
		return s
	})
	if !ok {
		return nil, nil
	}
	return &s, nil
}

func (r *skillRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.skills.delete(id), nil
}
