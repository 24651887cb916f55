package memory

import (
	"context"
	"sort"

	"go-profile-builder/internal/domain"
)

type externalLinkRepository struct {
	links *collection[domain.ExternalLink]
}

func NewExternalLinkRepository() domain.ExternalLinkRepository {
	return &externalLinkRepository{links: newCollection[domain.ExternalLink]()}
}

func (r *externalLinkRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.ExternalLink, error) {
	out := r.links.filter(func(l domain.ExternalLink) bool { return l.ProfileID == profileID })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *externalLinkRepository) Create(ctx context.Context, in domain.InsertExternalLink) (*domain.ExternalLink, error) {
	l := r.links.insert(func(id int64) domain.ExternalLink {
		return domain.ExternalLink{
			ID:          id,
			ProfileID:   in.ProfileID,
			Platform:    in.Platform,
			URL:         in.URL,
			DisplayText: in.DisplayText,
		}
	})
	return &l, nil
}

func (r *externalLinkRepository) Update(ctx context.Context, id int64, in domain.UpdateExternalLink) (*domain.ExternalLink, error) {
	l, ok := r.links.update(id, func(l domain.ExternalLink) domain.ExternalLink {
		if in.Platform != nil {
			l.Platform = *in.Platform
		}
		if in.URL != nil {
			l.URL = *in.URL
		}
		if in.DisplayText != nil {
			l.DisplayText = *in.DisplayText
		}
		return l
	})
	if !ok {
		return nil, nil
	}
	return &l, nil
}

func (r *externalLinkRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.links.delete(id), nil
}
