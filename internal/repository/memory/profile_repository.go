package memory

import (
	"context"
	"time"

	"go-profile-builder/internal/domain"
)

type profileRepository struct {
	profiles *collection[domain.Profile]
}

func NewProfileRepository() domain.ProfileRepository {
	return &profileRepository{profiles: newCollection[domain.Profile]()}
}

func (r *profileRepository) GetByID(ctx context.Context, id int64) (*domain.Profile, error) {
	p, ok := r.profiles.get(id)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *profileRepository) Create(ctx context.Context, in domain.InsertProfile) (*domain.Profile, error) {
	now := time.Now()
	p := r.profiles.insert(func(id int64) domain.Profile {
		return domain.Profile{
			ID:           id,
			FullName:     in.FullName,
			Email:        in.Email,
			Phone:        in.Phone,
			Location:     in.Location,
			Title:        in.Title,
			Summary:      in.Summary,
			ProfilePhoto: in.ProfilePhoto,
			PublicURL:    in.PublicURL,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	})
	return &p, nil
}

func (r *profileRepository) Update(ctx context.Context, id int64, in domain.UpdateProfile) (*domain.Profile, error) {
	p, ok := r.profiles.update(id, func(p domain.Profile) domain.Profile {
		if in.FullName != nil {
			p.FullName = *in.FullName
		}
		if in.Email != nil {
			p.Email = *in.Email
		}
		if in.Phone != nil {
			p.Phone = *in.Phone
		}
		if in.Location != nil {
			p.Location = *in.Location
		}
		if in.Title != nil {
			p.Title = *in.Title
		}
		if in.Summary != nil {
			p.Summary = *in.Summary
		}
		if in.ProfilePhoto != nil {
			p.ProfilePhoto = *in.ProfilePhoto
		}
		if in.PublicURL != nil {
			p.PublicURL = *in.PublicURL
		}
		p.UpdatedAt = time.Now()
		return p
	})
	if !ok {
		return nil, nil
	}
	return &p, nil
}
