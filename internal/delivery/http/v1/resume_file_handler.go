package v1

import (
	"net/http"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeFileHandler struct {
	resumeUC domain.ResumeFileUsecase
}

func NewResumeFileHandler(r *gin.RouterGroup, resumeUC domain.ResumeFileUsecase) {
	handler := &ResumeFileHandler{resumeUC: resumeUC}

	r.GET("/profile/:id/resume", handler.ListByProfile)
	r.POST("/profile/:id/resume", handler.Upload)
	r.DELETE("/resume/:id", handler.Delete)
}

// ListByProfile godoc
// @Summary      List uploaded resume files for a profile
// @Tags         resume
// @Produce      json
// @Param        id   path  int  true  "Profile ID"
// @Success      200  {array}  domain.ResumeFile
// @Router       /profile/{id}/resume [get]
func (h *ResumeFileHandler) ListByProfile(c *gin.Context) {
	profileID, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	files, err := h.resumeUC.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, files)
}

// Upload godoc
// @Summary      Upload a resume file
// @Description  Accepts a multipart form with a "resume" file field. PDF, DOC and DOCX up to 5 MiB.
// @Tags         resume
// @Accept       multipart/form-data
// @Produce      json
// @Param        id      path      int   true  "Profile ID"
// @Param        resume  formData  file  true  "Resume file"
// @Success      201  {object}  domain.ResumeFile
// @Failure      400  {object}  response.ErrorBody
// @Router       /profile/{id}/resume [post]
func (h *ResumeFileHandler) Upload(c *gin.Context) {
	profileID, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	fh, err := c.FormFile("resume")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}

	file, err := h.resumeUC.Upload(c.Request.Context(), profileID, fh)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, file)
}

// Delete godoc
// @Summary      Delete a resume file record
// @Tags         resume
// @Param        id   path  int  true  "Resume file ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /resume/{id} [delete]
func (h *ResumeFileHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.resumeUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
