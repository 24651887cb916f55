package v1

import (
	"net/http"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CertificationHandler struct {
	certificationUC domain.CertificationUsecase
}

func NewCertificationHandler(r *gin.RouterGroup, certificationUC domain.CertificationUsecase) {
	handler := &CertificationHandler{certificationUC: certificationUC}

	r.GET("/profile/:id/certifications", handler.ListByProfile)
	certifications := r.Group("/certifications")
	{
		certifications.POST("", handler.Create)
		certifications.PUT("/:id", handler.Update)
		certifications.DELETE("/:id", handler.Delete)
	}
}

// ListByProfile godoc
// @Summary      List certifications for a profile
// @Tags         certifications
// @Produce      json
// @Param        id   path  int  true  "Profile ID"
// @Success      200  {array}  domain.Certification
// @Router       /profile/{id}/certifications [get]
func (h *CertificationHandler) ListByProfile(c *gin.Context) {
	profileID, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	certifications, err := h.certificationUC.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, certifications)
}

// Create godoc
// @Summary      Create a certification
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        certification  body  domain.InsertCertification  true  "Certification fields"
// @Success      201  {object}  domain.Certification
// @Failure      400  {object}  response.ErrorBody
// @Router       /certifications [post]
func (h *CertificationHandler) Create(c *gin.Context) {
	var in domain.InsertCertification
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	certification, err := h.certificationUC.Create(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, certification)
}

// Update godoc
// @Summary      Update a certification (partial)
// @Tags         certifications
// @Accept       json
// @Produce      json
// @Param        id             path  int                         true  "Certification ID"
// @Param        certification  body  domain.UpdateCertification  true  "Fields to change"
// @Success      200  {object}  domain.Certification
// @Failure      404  {object}  response.ErrorBody
// @Router       /certifications/{id} [put]
func (h *CertificationHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.UpdateCertification
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	certification, err := h.certificationUC.Update(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, certification)
}

// Delete godoc
// @Summary      Delete a certification
// @Tags         certifications
// @Param        id   path  int  true  "Certification ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /certifications/{id} [delete]
func (h *CertificationHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.certificationUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
