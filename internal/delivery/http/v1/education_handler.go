package v1

import (
	"net/http"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EducationHandler struct {
	educationUC domain.EducationUsecase
}

func NewEducationHandler(r *gin.RouterGroup, educationUC domain.EducationUsecase) {
	handler := &EducationHandler{educationUC: educationUC}

	r.GET("/profile/:id/education", handler.ListByProfile)
	education := r.Group("/education")
	{
		education.POST("", handler.Create)
		education.PUT("/:id", handler.Update)
		education.DELETE("/:id", handler.Delete)
	}
}

// ListByProfile godoc
// @Summary      List education entries for a profile
// @Tags         education
// @Produce      json
// @Param        id   path  int  true  "Profile ID"
// @Success      200  {array}  domain.Education
// @Router       /profile/{id}/education [get]
func (h *EducationHandler) ListByProfile(c *gin.Context) {
	profileID, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	education, err := h.educationUC.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, education)
}

// Create godoc
// @Summary      Create an education entry
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        education  body  domain.InsertEducation  true  "Education fields"
// @Success      201  {object}  domain.Education
// @Failure      400  {object}  response.ErrorBody
// @Router       /education [post]
func (h *EducationHandler) Create(c *gin.Context) {
	var in domain.InsertEducation
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	education, err := h.educationUC.Create(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, education)
}

// Update godoc
// @Summary      Update an education entry (partial)
// @Tags         education
// @Accept       json
// @Produce      json
// @Param        id         path  int                     true  "Education ID"
// @Param        education  body  domain.UpdateEducation  true  "Fields to change"
// @Success      200  {object}  domain.Education
// @Failure      404  {object}  response.ErrorBody
// @Router       /education/{id} [put]
func (h *EducationHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.UpdateEducation
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	education, err := h.educationUC.Update(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, education)
}

// Delete godoc
// @Summary      Delete an education entry
// @Tags         education
// @Param        id   path  int  true  "Education ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /education/{id} [delete]
func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.educationUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
