package usecase

import (
	"context"
	"mime/multipart"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"
	"go-profile-builder/pkg/upload"
)

type resumeFileUsecase struct {
	repo     domain.ResumeFileRepository
	files    domain.ResumeFileStore
	maxBytes int64
}

func NewResumeFileUsecase(repo domain.ResumeFileRepository, files domain.ResumeFileStore, maxBytes int64) domain.ResumeFileUsecase {
	return &resumeFileUsecase{repo: repo, files: files, maxBytes: maxBytes}
}

func (u *resumeFileUsecase) ListByProfile(ctx context.Context, profileID int64) ([]domain.ResumeFile, error) {
	return u.repo.ListByProfileID(ctx, profileID)
}

// Upload validates the file fully before touching disk or the store, so a
// rejected upload leaves no trace. If the metadata insert fails after the
// bytes are written the file is orphaned; the random stored name makes
// that harmless.
func (u *resumeFileUsecase) Upload(ctx context.Context, profileID int64, fh *multipart.FileHeader) (*domain.ResumeFile, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, apperror.BadRequest("Unreadable upload")
	}
	head := make([]byte, 512)
	n, _ := src.Read(head)
	src.Close()

	if err := upload.ValidateResume(fh.Filename, fh.Size, u.maxBytes, head[:n]); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	stored, err := u.files.Save(fh)
	if err != nil {
		return nil, err
	}

	return u.repo.Create(ctx, domain.InsertResumeFile{
		ProfileID:    profileID,
		Filename:     stored,
		OriginalName: fh.Filename,
		FileSize:     fh.Size,
		MimeType:     fh.Header.Get("Content-Type"),
	})
}

func (u *resumeFileUsecase) Delete(ctx context.Context, id int64) error {
	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.NotFound("Resume file not found")
	}
	return nil
}
