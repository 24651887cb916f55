package domain

import (
	"context"
	"mime/multipart"
	"time"
)

// ResumeFile is the stored metadata of an uploaded resume. ParsedData and
// ParsingAccuracy stay null until resume parsing is implemented.
type ResumeFile struct {
	ID              int64     `json:"id"`
	ProfileID       int64     `json:"profileId"`
	Filename        string    `json:"filename"`
	OriginalName    string    `json:"originalName"`
	FileSize        int64     `json:"fileSize"`
	MimeType        string    `json:"mimeType"`
	UploadedAt      time.Time `json:"uploadedAt"`
	ParsedData      *string   `json:"parsedData"`
	ParsingAccuracy *int      `json:"parsingAccuracy"`
}

type InsertResumeFile struct {
	ProfileID       int64   `json:"profileId" validate:"required"`
	Filename        string  `json:"filename" validate:"required"`
	OriginalName    string  `json:"originalName" validate:"required"`
	FileSize        int64   `json:"fileSize"`
	MimeType        string  `json:"mimeType"`
	ParsedData      *string `json:"parsedData"`
	ParsingAccuracy *int    `json:"parsingAccuracy"`
}

type ResumeFileRepository interface {
	ListByProfileID(ctx context.Context, profileID int64) ([]ResumeFile, error)
	Create(ctx context.Context, in InsertResumeFile) (*ResumeFile, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ResumeFileStore persists the raw upload bytes and returns the generated
// filename. Metadata is stored separately by the repository; a failure after
// the bytes are written leaves an orphaned file, which is tolerated.
type ResumeFileStore interface {
	Save(fh *multipart.FileHeader) (string, error)
}

type ResumeFileUsecase interface {
	ListByProfile(ctx context.Context, profileID int64) ([]ResumeFile, error)
	Upload(ctx context.Context, profileID int64, fh *multipart.FileHeader) (*ResumeFile, error)
	Delete(ctx context.Context, id int64) error
}
