package domain

import (
	"context"
	"time"
)

// Profile is the root identity record the user builds. The system serves a
// single user, so in practice exactly one profile (id 1) exists.
type Profile struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Title        string    `json:"title"`
	Summary      string    `json:"summary"`
	ProfilePhoto string    `json:"profilePhoto"`
	PublicURL    string    `json:"publicUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// InsertProfile is the creation payload. Full name and email are the only
// required fields; everything else can be filled in later.
type InsertProfile struct {
	FullName     string `json:"fullName" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone"`
	Location     string `json:"location"`
	Title        string `json:"title"`
	Summary      string `json:"summary"`
	ProfilePhoto string `json:"profilePhoto"`
	PublicURL    string `json:"publicUrl"`
}

// UpdateProfile is a partial update: nil fields are left untouched by the
// merge, the rest overwrite the stored value.
type UpdateProfile struct {
	FullName     *string `json:"fullName" validate:"omitempty"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone"`
	Location     *string `json:"location"`
	Title        *string `json:"title"`
	Summary      *string `json:"summary"`
	ProfilePhoto *string `json:"profilePhoto"`
	PublicURL    *string `json:"publicUrl"`
}

// ProfileRepository returns (nil, nil) when the id does not exist; the
// usecase layer maps that to a not-found error. Stores never enforce
// business rules, validation happens before they are called.
type ProfileRepository interface {
	GetByID(ctx context.Context, id int64) (*Profile, error)
	Create(ctx context.Context, in InsertProfile) (*Profile, error)
	Update(ctx context.Context, id int64, in UpdateProfile) (*Profile, error)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context, id int64) (*Profile, error)
	CreateProfile(ctx context.Context, in InsertProfile) (*Profile, error)
	UpdateProfile(ctx context.Context, id int64, in UpdateProfile) (*Profile, error)
	GetCompleteProfile(ctx context.Context, id int64) (*CompleteProfile, error)
	GetCompletion(ctx context.Context, id int64) (*ProfileCompletion, error)
}
