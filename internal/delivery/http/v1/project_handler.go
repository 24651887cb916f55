package v1

import (
	"net/http"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(r *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	r.GET("/profile/:id/projects", handler.ListByProfile)
	projects := r.Group("/projects")
	{
		projects.POST("", handler.Create)
		projects.PUT("/:id", handler.Update)
		projects.DELETE("/:id", handler.Delete)
	}
}

// ListByProfile godoc
// @Summary      List projects for a profile
// @Tags         projects
// @Produce      json
// @Param        id   path  int  true  "Profile ID"
// @Success      200  {array}  domain.Project
// @Router       /profile/{id}/projects [get]
func (h *ProjectHandler) ListByProfile(c *gin.Context) {
	profileID, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	projects, err := h.projectUC.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

// Create godoc
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        project  body  domain.InsertProject  true  "Project fields"
// @Success      201  {object}  domain.Project
// @Failure      400  {object}  response.ErrorBody
// @Router       /projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	var in domain.InsertProject
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	project, err := h.projectUC.Create(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, project)
}

// Update godoc
// @Summary      Update a project (partial)
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id       path  int                   true  "Project ID"
// @Param        project  body  domain.UpdateProject  true  "Fields to change"
// @Success      200  {object}  domain.Project
// @Failure      404  {object}  response.ErrorBody
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.UpdateProject
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	project, err := h.projectUC.Update(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// Delete godoc
// @Summary      Delete a project
// @Tags         projects
// @Param        id   path  int  true  "Project ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.projectUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
