package v1

import (
	"net/http"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExperienceHandler struct {
	experienceUC domain.ExperienceUsecase
}

func NewExperienceHandler(r *gin.RouterGroup, experienceUC domain.ExperienceUsecase) {
	handler := &ExperienceHandler{experienceUC: experienceUC}

	r.GET("/profile/:id/experience", handler.ListByProfile)
	experience := r.Group("/experience")
	{
		experience.POST("", handler.Create)
		experience.PUT("/:id", handler.Update)
		experience.DELETE("/:id", handler.Delete)
	}
}

// ListByProfile godoc
// @Summary      List experience entries for a profile
// @Tags         experience
// @Produce      json
// @Param        id   path  int  true  "Profile ID"
// @Success      200  {array}  domain.Experience
// @Router       /profile/{id}/experience [get]
func (h *ExperienceHandler) ListByProfile(c *gin.Context) {
	profileID, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	experience, err := h.experienceUC.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

// Create godoc
// @Summary      Create an experience entry
// @Tags         experience
// @Accept       json
// @Produce      json
// @Param        experience  body  domain.InsertExperience  true  "Experience fields"
// @Success      201  {object}  domain.Experience
// @Failure      400  {object}  response.ErrorBody
// @Router       /experience [post]
func (h *ExperienceHandler) Create(c *gin.Context) {
	var in domain.InsertExperience
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	experience, err := h.experienceUC.Create(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, experience)
}

// Update godoc
// @Summary      Update an experience entry (partial)
// @Tags         experience
// @Accept       json
// @Produce      json
// @Param        id          path  int                      true  "Experience ID"
// @Param        experience  body  domain.UpdateExperience  true  "Fields to change"
// @Success      200  {object}  domain.Experience
// @Failure      404  {object}  response.ErrorBody
// @Router       /experience/{id} [put]
func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.UpdateExperience
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	experience, err := h.experienceUC.Update(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, experience)
}

// Delete godoc
// @Summary      Delete an experience entry
// @Tags         experience
// @Param        id   path  int  true  "Experience ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /experience/{id} [delete]
func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.experienceUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
