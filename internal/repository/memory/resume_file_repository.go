package memory

import (
	"context"
	"sort"
	"time"

	"go-profile-builder/internal/domain"
)

type resumeFileRepository struct {
	files *collection[domain.ResumeFile]
}

func NewResumeFileRepository() domain.ResumeFileRepository {
	return &resumeFileRepository{files: newCollection[domain.ResumeFile]()}
}

func (r *resumeFileRepository) ListByProfileID(ctx context.Context, profileID int64) ([]domain.ResumeFile, error) {
	out := r.files.filter(func(f domain.ResumeFile) bool { return f.ProfileID == profileID })
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *resumeFileRepository) Create(ctx context.Context, in domain.InsertResumeFile) (*domain.ResumeFile, error) {
	f := r.files.insert(func(id int64) domain.ResumeFile {
		return domain.ResumeFile{
			ID:              id,
			ProfileID:       in.ProfileID,
			Filename:        in.Filename,
			OriginalName:    in.OriginalName,
			FileSize:        in.FileSize,
			MimeType:        in.MimeType,
			UploadedAt:      time.Now(),
			ParsedData:      in.ParsedData,
			ParsingAccuracy: in.ParsingAccuracy,
		}
	})
	return &f, nil
}

func (r *resumeFileRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return r.files.delete(id), nil
}
