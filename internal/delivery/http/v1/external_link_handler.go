package v1

import (
	"net/http"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ExternalLinkHandler struct {
	linkUC domain.ExternalLinkUsecase
}

func NewExternalLinkHandler(r *gin.RouterGroup, linkUC domain.ExternalLinkUsecase) {
	handler := &ExternalLinkHandler{linkUC: linkUC}

	r.GET("/profile/:id/external-links", handler.ListByProfile)
	links := r.Group("/external-links")
	{
		links.POST("", handler.Create)
		links.PUT("/:id", handler.Update)
		links.DELETE("/:id", handler.Delete)
	}
}

// ListByProfile godoc
// @Summary      List external links for a profile
// @Tags         external-links
// @Produce      json
// @Param        id   path  int  true  "Profile ID"
// @Success      200  {array}  domain.ExternalLink
// @Router       /profile/{id}/external-links [get]
func (h *ExternalLinkHandler) ListByProfile(c *gin.Context) {
	profileID, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	links, err := h.linkUC.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, links)
}

// Create godoc
// @Summary      Create an external link
// @Tags         external-links
// @Accept       json
// @Produce      json
// @Param        link  body  domain.InsertExternalLink  true  "Link fields"
// @Success      201  {object}  domain.ExternalLink
// @Failure      400  {object}  response.ErrorBody
// @Router       /external-links [post]
func (h *ExternalLinkHandler) Create(c *gin.Context) {
	var in domain.InsertExternalLink
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	link, err := h.linkUC.Create(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, link)
}

// Update godoc
// @Summary      Update an external link (partial)
// @Tags         external-links
// @Accept       json
// @Produce      json
// @Param        id    path  int                        true  "Link ID"
// @Param        link  body  domain.UpdateExternalLink  true  "Fields to change"
// @Success      200  {object}  domain.ExternalLink
// @Failure      404  {object}  response.ErrorBody
// @Router       /external-links/{id} [put]
func (h *ExternalLinkHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.UpdateExternalLink
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	link, err := h.linkUC.Update(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, link)
}

// Delete godoc
// @Summary      Delete an external link
// @Tags         external-links
// @Param        id   path  int  true  "Link ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /external-links/{id} [delete]
func (h *ExternalLinkHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.linkUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
