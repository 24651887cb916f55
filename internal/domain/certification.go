package domain

import "context"

type Certification struct {
	ID                   int64  `json:"id"`
	ProfileID            int64  `json:"profileId"`
	Name                 string `json:"name"`
	Issuer               string `json:"issuer"`
	IssueDate            string `json:"issueDate"`
	ExpiryDate           string `json:"expiryDate"`
	CredentialID         string `json:"credentialId"`
	CredentialURL        string `json:"credentialUrl"`
	IsBlockchainVerified bool   `json:"isBlockchainVerified"`
}

type InsertCertification struct {
	ProfileID            int64  `json:"profileId" validate:"required"`
	Name                 string `json:"name" validate:"required"`
	Issuer               string `json:"issuer" validate:"required"`
	IssueDate            string `json:"issueDate"`
	ExpiryDate           string `json:"expiryDate"`
	CredentialID         string `json:"credentialId"`
	CredentialURL        string `json:"credentialUrl" validate:"omitempty,url"`
	IsBlockchainVerified bool   `json:"isBlockchainVerified"`
}

type UpdateCertification struct {
	Name                 *string `json:"name"`
	Issuer               *string `json:"issuer"`
	IssueDate            *string `json:"issueDate"`
	ExpiryDate           *string `json:"expiryDate"`
	CredentialID         *string `json:"credentialId"`
	CredentialURL        *string `json:"credentialUrl" validate:"omitempty,url"`
	IsBlockchainVerified *bool   `json:"isBlockchainVerified"`
}

type CertificationRepository interface {
	ListByProfileID(ctx context.Context, profileID int64) ([]Certification, error)
	Create(ctx context.Context, in InsertCertification) (*Certification, error)
	Update(ctx context.Context, id int64, in UpdateCertification) (*Certification, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type CertificationUsecase interface {
	ListByProfile(ctx context.Context, profileID int64) ([]Certification, error)
	Create(ctx context.Context, in InsertCertification) (*Certification, error)
	Update(ctx context.Context, id int64, in UpdateCertification) (*Certification, error)
	Delete(ctx context.Context, id int64) error
}
