package domain

import "context"

// Skill category and level are open string sets at the data layer; the UI
// offers "Technical" / "Soft Skills" and "Beginner".."Expert" but the store
// accepts whatever is given.
type Skill struct {
	ID        int64  `json:"id"`
	ProfileID int64  `json:"profileId"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Level     string `json:"level"`
}

type InsertSkill struct {
	ProfileID int64  `json:"profileId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Category  string `json:"category" validate:"required"`
	Level     string `json:"level"`
}

type UpdateSkill struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Level    *string `json:"level"`
}

type SkillRepository interface {
	ListByProfileID(ctx context.Context, profileID int64) ([]Skill, error)
	Create(ctx context.Context, in InsertSkill) (*Skill, error)
	Update(ctx context.Context, id int64, in UpdateSkill) (*Skill, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type SkillUsecase interface {
	ListByProfile(ctx context.Context, profileID int64) ([]Skill, error)
	Create(ctx context.Context, in InsertSkill) (*Skill, error)
	Update(ctx context.Context, id int64, in UpdateSkill) (*Skill, error)
	Delete(ctx context.Context, id int64) error
}
