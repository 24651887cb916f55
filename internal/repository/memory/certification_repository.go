package memory

import (
	"context"
	"sort"

	"go-profile-builder/internal/domain"
)

type certificationRepository struct {
	certifications *collection[domain.Certification]
}

func NewCertificationRepository() domain.CertificationRepository {
	return &certificationRepository{certifications: newCollection[domain.Certification]()}
}

func (r *certificationRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Certification, error) {
	out := r.certifications.filter(func(c domain.Certification) bool { return c.ProfileID == profileID })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *certificationRepository) Create(ctx context.Context, in domain.InsertCertification) (*domain.Certification, error) {
	c := r.certifications.insert(func(id int64) domain.Certification {
		return domain.Certification{
			ID:                   id,
			ProfileID:            in.ProfileID,
			Name:                 in.Name,
			Issuer:               in.Issuer,
			IssueDate:            in.IssueDate,
			ExpiryDate:           in.ExpiryDate,
			CredentialID:         in.CredentialID,
			CredentialURL:        in.CredentialURL,
			IsBlockchainVerified: in.IsBlockchainVerified,
		}
	})
	return &c, nil
}

func (r *certificationRepository) Update(ctx context.Context, id int64, in domain.UpdateCertification) (*domain.Certification, error) {
	c, ok := r.certifications.update(id, func(c domain.Certification) domain.Certification {
		if in.Name != nil {
			c.Name = *in.Name
		}
		if in.Issuer != nil {
			c.Issuer = *in.Issuer
		}
		if in.IssueDate != nil {
			c.IssueDate = *in.IssueDate
		}
		if in.ExpiryDate != nil {
			c.ExpiryDate = *in.ExpiryDate
		}
		if in.CredentialID != nil {
			c.CredentialID = *in.CredentialID
		}
		if in.CredentialURL != nil {
			c.CredentialURL = *in.CredentialURL
		}
		if in.IsBlockchainVerified != nil {
			c.IsBlockchainVerified = *in.IsBlockchainVerified
		}
		return c
	})
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *certificationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.certifications.delete(id), nil
}
