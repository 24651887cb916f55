package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"go-profile-builder/internal/domain"
	"go-profile-builder/internal/repository/memory"
	"go-profile-builder/internal/usecase"
	"go-profile-builder/pkg/apperror"
	"go-profile-builder/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Repositories
type MockEducationRepo struct {
	mock.Mock
}

func (m *MockEducationRepo) ListByProfileID(ctx context.Context, profileID int64) ([]domain.Education, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Education), args.Error(1)
}

func (m *MockEducationRepo) Create(ctx context.Context, in domain.InsertEducation) (*domain.Education, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}

func (m *MockEducationRepo) Update(ctx context.Context, id int64, in domain.UpdateEducation) (*domain.Education, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Education), args.Error(1)
}

func (m *MockEducationRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockResumeFileRepo struct {
	mock.Mock
}

func (m *MockResumeFileRepo) ListByProfileID(ctx context.Context, profileID int64) ([]domain.ResumeFile, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResumeFile), args.Error(1)
}

func (m *MockResumeFileRepo) Create(ctx context.Context, in domain.InsertResumeFile) (*domain.ResumeFile, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeFile), args.Error(1)
}

func (m *MockResumeFileRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockResumeFileStore struct {
	mock.Mock
}

func (m *MockResumeFileStore) Save(fh *multipart.FileHeader) (string, error) {
	args := m.Called(fh)
	return args.String(0), args.Error(1)
}

// fileHeader builds a real multipart.FileHeader so fh.Open works in tests.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("resume", name)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	assert.NoError(t, err)
	return form.File["resume"][0]
}

func TestEducationCreateValidation(t *testing.T) {
	mockRepo := new(MockEducationRepo)
	uc := usecase.NewEducationUsecase(mockRepo, validation.New())

	t.Run("Should reject missing required fields with field details", func(t *testing.T) {
		_, err := uc.Create(context.Background(), domain.InsertEducation{ProfileID: 1})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)

		fields, ok := appErr.Fields.([]validation.FieldError)
		assert.True(t, ok)
		names := make([]string, 0, len(fields))
		for _, f := range fields {
			names = append(names, f.Field)
		}
		assert.Contains(t, names, "institution")
		assert.Contains(t, names, "degree")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should pass valid input through to the repository", func(t *testing.T) {
		in := domain.InsertEducation{ProfileID: 1, Institution: "MIT", Degree: "BSc"}
		mockRepo.On("Create", mock.Anything, in).Return(&domain.Education{ID: 1, ProfileID: 1, Institution: "MIT", Degree: "BSc"}, nil)

		out, err := uc.Create(context.Background(), in)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), out.ID)
		mockRepo.AssertExpectations(t)
	})
}

func TestEducationNotFoundMapping(t *testing.T) {
	t.Run("Should map a missing update target to 404", func(t *testing.T) {
		mockRepo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(mockRepo, validation.New())
		mockRepo.On("Update", mock.Anything, int64(42), mock.Anything).Return(nil, nil)

		_, err := uc.Update(context.Background(), 42, domain.UpdateEducation{})
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})

	t.Run("Should map a missing delete target to 404", func(t *testing.T) {
		mockRepo := new(MockEducationRepo)
		uc := usecase.NewEducationUsecase(mockRepo, validation.New())
		mockRepo.On("Delete", mock.Anything, int64(42)).Return(false, nil)

		err := uc.Delete(context.Background(), 42)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}

func TestResumeUploadRejections(t *testing.T) {
	pdfContent := append([]byte("%PDF-1.4"), bytes.Repeat([]byte("a"), 64)...)

	t.Run("Should reject files above the size ceiling", func(t *testing.T) {
		mockRepo := new(MockResumeFileRepo)
		mockStore := new(MockResumeFileStore)
		uc := usecase.NewResumeFileUsecase(mockRepo, mockStore, 16)

		fh := fileHeader(t, "resume.pdf", pdfContent)
		_, err := uc.Upload(context.Background(), 1, fh)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		assert.Contains(t, appErr.Message, "byte limit")
		mockStore.AssertNotCalled(t, "Save")
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Should reject disallowed extensions", func(t *testing.T) {
		mockRepo := new(MockResumeFileRepo)
		mockStore := new(MockResumeFileStore)
		uc := usecase.NewResumeFileUsecase(mockRepo, mockStore, 1<<20)

		fh := fileHeader(t, "resume.exe", pdfContent)
		_, err := uc.Upload(context.Background(), 1, fh)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only PDF, DOC, and DOCX")
		mockStore.AssertNotCalled(t, "Save")
	})

	t.Run("Should reject content that does not match its extension", func(t *testing.T) {
		mockRepo := new(MockResumeFileRepo)
		mockStore := new(MockResumeFileStore)
		uc := usecase.NewResumeFileUsecase(mockRepo, mockStore, 1<<20)

		fh := fileHeader(t, "resume.pdf", []byte("plain text pretending to be a pdf"))
		_, err := uc.Upload(context.Background(), 1, fh)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
		mockStore.AssertNotCalled(t, "Save")
	})
}

func TestResumeUploadStoresMetadata(t *testing.T) {
	mockRepo := new(MockResumeFileRepo)
	mockStore := new(MockResumeFileStore)
	uc := usecase.NewResumeFileUsecase(mockRepo, mockStore, 1<<20)

	fh := fileHeader(t, "cv.pdf", []byte("%PDF-1.7 hello"))
	mockStore.On("Save", fh).Return("generated-name.pdf", nil)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("domain.InsertResumeFile")).Return(&domain.ResumeFile{ID: 1, ProfileID: 1}, nil).Run(func(args mock.Arguments) {
		in := args.Get(1).(domain.InsertResumeFile)
		assert.Equal(t, int64(1), in.ProfileID)
		assert.Equal(t, "generated-name.pdf", in.Filename)
		assert.Equal(t, "cv.pdf", in.OriginalName)
		assert.Equal(t, fh.Size, in.FileSize)
	})

	out, err := uc.Upload(context.Background(), 1, fh)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)
	mockStore.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestProfileCompletionThroughAggregate(t *testing.T) {
	validate := validation.New()
	deps := usecase.ProfileDeps{
		Profiles:       memory.NewProfileRepository(),
		Education:      memory.NewEducationRepository(),
		Skills:         memory.NewSkillRepository(),
		Experience:     memory.NewExperienceRepository(),
		Projects:       memory.NewProjectRepository(),
		Certifications: memory.NewCertificationRepository(),
		ExternalLinks:  memory.NewExternalLinkRepository(),
		ResumeFiles:    memory.NewResumeFileRepository(),
	}
	uc := usecase.NewProfileUsecase(deps, validate)
	ctx := context.Background()

	t.Run("Should degrade to zero when the profile does not exist", func(t *testing.T) {
		completion, err := uc.GetCompletion(ctx, 999)
		assert.NoError(t, err)
		assert.Equal(t, 0, completion.CompletedSections)
		assert.Equal(t, 8, completion.TotalSections)
		assert.Equal(t, 0, completion.CompletionPercentage)
	})

	t.Run("Should count filled sections", func(t *testing.T) {
		profile, err := uc.CreateProfile(ctx, domain.InsertProfile{FullName: "Ada Lovelace", Email: "ada@example.com"})
		assert.NoError(t, err)

		_, err = deps.Skills.Create(ctx, domain.InsertSkill{ProfileID: profile.ID, Name: "Go", Category: "technical"})
		assert.NoError(t, err)

		completion, err := uc.GetCompletion(ctx, profile.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, completion.CompletedSections)
		assert.Equal(t, 25, completion.CompletionPercentage)
	})

	t.Run("Should assemble the full aggregate", func(t *testing.T) {
		cp, err := uc.GetCompleteProfile(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, "Ada Lovelace", cp.Profile.FullName)
		assert.Len(t, cp.Skills, 1)
		assert.Empty(t, cp.Education)
	})

	t.Run("Should 404 the aggregate for a missing profile", func(t *testing.T) {
		_, err := uc.GetCompleteProfile(ctx, 999)
		assert.Error(t, err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusNotFound, appErr.Code)
	})
}
