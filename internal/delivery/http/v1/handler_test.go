package v1_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-profile-builder/config"
	v1 "go-profile-builder/internal/delivery/http/v1"
	"go-profile-builder/internal/repository/memory"
	"go-profile-builder/internal/usecase"
	"go-profile-builder/pkg/logger"
	"go-profile-builder/pkg/upload"
	"go-profile-builder/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newTestRouter wires the full stack against in-memory repositories.
func newTestRouter(t *testing.T, maxUploadBytes int64) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.Init()

	store, err := upload.NewLocalStore(t.TempDir())
	assert.NoError(t, err)

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

	return v1.NewRouter(v1.RouterDeps{
		ProfileUC:       usecase.NewProfileUsecase(deps, validate),
		EducationUC:     usecase.NewEducationUsecase(deps.Education, validate),
		SkillUC:         usecase.NewSkillUsecase(deps.Skills, validate),
		ExperienceUC:    usecase.NewExperienceUsecase(deps.Experience, validate),
		ProjectUC:       usecase.NewProjectUsecase(deps.Projects, validate),
		CertificationUC: usecase.NewCertificationUsecase(deps.Certifications, validate),
		ExternalLinkUC:  usecase.NewExternalLinkUsecase(deps.ExternalLinks, validate),
		ResumeFileUC:    usecase.NewResumeFileUsecase(deps.ResumeFiles, store, maxUploadBytes),
		Config:          &config.Config{Port: "8080", FrontendURL: "http://localhost:3000"},
	})
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestEducationLifecycle(t *testing.T) {
	r := newTestRouter(t, 5<<20)

	w := doJSON(r, http.MethodPost, "/api/education", `{"profileId":1,"institution":"MIT","degree":"BSc"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	decodeBody(t, w, &created)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "MIT", created["institution"])

	w = doJSON(r, http.MethodGet, "/api/profile/1/education", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var list []map[string]interface{}
	decodeBody(t, w, &list)
	assert.Len(t, list, 1)

	w = doJSON(r, http.MethodPut, "/api/education/1", `{"degree":"MEng"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	var updated map[string]interface{}
	decodeBody(t, w, &updated)
	assert.Equal(t, "MEng", updated["degree"])
	assert.Equal(t, "MIT", updated["institution"])

	w = doJSON(r, http.MethodDelete, "/api/education/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(r, http.MethodDelete, "/api/education/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEducationCreateRejectsMissingFields(t *testing.T) {
	r := newTestRouter(t, 5<<20)

	w := doJSON(r, http.MethodPost, "/api/education", `{"profileId":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	decodeBody(t, w, &body)
	assert.Equal(t, "Invalid data", body.Message)

	fields := make([]string, 0, len(body.Errors))
	for _, e := range body.Errors {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "institution")
	assert.Contains(t, fields, "degree")
}

func TestExternalLinkURLValidation(t *testing.T) {
	r := newTestRouter(t, 5<<20)

	w := doJSON(r, http.MethodPost, "/api/external-links", `{"profileId":1,"platform":"github","url":"not-a-url"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Message string `json:"message"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	decodeBody(t, w, &body)
	assert.NotEmpty(t, body.Errors)
	assert.Equal(t, "url", body.Errors[0].Field)

	w = doJSON(r, http.MethodPost, "/api/external-links", `{"profileId":1,"platform":"github","url":"https://github.com/ada"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestProfileEndpoints(t *testing.T) {
	r := newTestRouter(t, 5<<20)

	w := doJSON(r, http.MethodGet, "/api/profile/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	var errBody map[string]interface{}
	decodeBody(t, w, &errBody)
	assert.Equal(t, "Profile not found", errBody["message"])

	w = doJSON(r, http.MethodGet, "/api/profile/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/api/profile", `{"fullName":"Ada Lovelace","email":"ada@example.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	var profile map[string]interface{}
	decodeBody(t, w, &profile)
	assert.Equal(t, float64(1), profile["id"])

	w = doJSON(r, http.MethodPost, "/api/profile", `{"fullName":"Ada","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPut, "/api/profile/1", `{"location":"London"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &profile)
	assert.Equal(t, "London", profile["location"])
	assert.Equal(t, "Ada Lovelace", profile["fullName"])
}

func TestCompleteProfileAggregate(t *testing.T) {
	r := newTestRouter(t, 5<<20)

	w := doJSON(r, http.MethodGet, "/api/profile/999/complete", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	doJSON(r, http.MethodPost, "/api/profile", `{"fullName":"Ada Lovelace","email":"ada@example.com"}`)
	doJSON(r, http.MethodPost, "/api/skills", `{"profileId":1,"name":"Go","category":"technical"}`)

	w = doJSON(r, http.MethodGet, "/api/profile/1/complete", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var cp struct {
		Profile struct {
			FullName string `json:"fullName"`
		} `json:"profile"`
		Skills    []map[string]interface{} `json:"skills"`
		Education []map[string]interface{} `json:"education"`
	}
	decodeBody(t, w, &cp)
	assert.Equal(t, "Ada Lovelace", cp.Profile.FullName)
	assert.Len(t, cp.Skills, 1)
	assert.Empty(t, cp.Education)
}

func TestCompletionEndpoint(t *testing.T) {
	r := newTestRouter(t, 5<<20)

	// Missing profile degrades instead of erroring
	w := doJSON(r, http.MethodGet, "/api/profile/999/completion", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var completion struct {
		CompletedSections    int `json:"completedSections"`
		TotalSections        int `json:"totalSections"`
		CompletionPercentage int `json:"completionPercentage"`
	}
	decodeBody(t, w, &completion)
	assert.Equal(t, 0, completion.CompletedSections)
	assert.Equal(t, 8, completion.TotalSections)

	doJSON(r, http.MethodPost, "/api/profile", `{"fullName":"Ada Lovelace","email":"ada@example.com"}`)

	w = doJSON(r, http.MethodGet, "/api/profile/1/completion", "")
	assert.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &completion)
	assert.Equal(t, 1, completion.CompletedSections)
	assert.Equal(t, 13, completion.CompletionPercentage)
}

func uploadRequest(t *testing.T, path, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("resume", filename)
	assert.NoError(t, err)
	_, err = fw.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestResumeUploadFlow(t *testing.T) {
	r := newTestRouter(t, 1024)

	t.Run("Should reject a request without a file", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/api/profile/1/resume", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		var body map[string]interface{}
		decodeBody(t, w, &body)
		assert.Equal(t, "No file uploaded", body["message"])
	})

	t.Run("Should reject an oversized file and store nothing", func(t *testing.T) {
		big := append([]byte("%PDF-1.4"), bytes.Repeat([]byte("x"), 2048)...)
		req := uploadRequest(t, "/api/profile/1/resume", "resume.pdf", big)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		lw := doJSON(r, http.MethodGet, "/api/profile/1/resume", "")
		assert.Equal(t, http.StatusOK, lw.Code)
		var list []map[string]interface{}
		decodeBody(t, lw, &list)
		assert.Empty(t, list)
	})

	t.Run("Should accept a valid PDF and record its metadata", func(t *testing.T) {
		req := uploadRequest(t, "/api/profile/1/resume", "cv.pdf", []byte("%PDF-1.7 tiny"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusCreated, w.Code)

		var file map[string]interface{}
		decodeBody(t, w, &file)
		assert.Equal(t, "cv.pdf", file["originalName"])
		assert.True(t, strings.HasSuffix(file["filename"].(string), ".pdf"))
		assert.NotEqual(t, "cv.pdf", file["filename"])

		lw := doJSON(r, http.MethodGet, "/api/profile/1/resume", "")
		var list []map[string]interface{}
		decodeBody(t, lw, &list)
		assert.Len(t, list, 1)
	})

	t.Run("Should delete the record", func(t *testing.T) {
		w := doJSON(r, http.MethodDelete, "/api/resume/1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(r, http.MethodDelete, "/api/resume/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t, 5<<20)

	w := doJSON(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
