package v1

import (
	"net/http"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillHandler struct {
	skillUC domain.SkillUsecase
}

func NewSkillHandler(r *gin.RouterGroup, skillUC domain.SkillUsecase) {
	handler := &SkillHandler{skillUC: skillUC}

	r.GET("/profile/:id/skills", handler.ListByProfile)
	skills := r.Group("/skills")
	{
		skills.POST("", handler.Create)
		skills.PUT("/:id", handler.Update)
		skills.DELETE("/:id", handler.Delete)
	}
}

// ListByProfile godoc
// @Summary      List skills for a profile
// @Tags         skills
// @Produce      json
// @Param        id   path  int  true  "Profile ID"
// @Success      200  {array}  domain.Skill
// @Router       /profile/{id}/skills [get]
func (h *SkillHandler) ListByProfile(c *gin.Context) {
	profileID, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	skills, err := h.skillUC.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// Create godoc
// @Summary      Create a skill
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        skill  body  domain.InsertSkill  true  "Skill fields"
// @Success      201  {object}  domain.Skill
// @Failure      400  {object}  response.ErrorBody
// @Router       /skills [post]
func (h *SkillHandler) Create(c *gin.Context) {
	var in domain.InsertSkill
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	skill, err := h.skillUC.Create(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, skill)
}

// Update godoc
// @Summary      Update a skill (partial)
// @Tags         skills
// @Accept       json
// @Produce      json
// @Param        id     path  int                 true  "Skill ID"
// @Param        skill  body  domain.UpdateSkill  true  "Fields to change"
// @Success      200  {object}  domain.Skill
// @Failure      404  {object}  response.ErrorBody
// @Router       /skills/{id} [put]
func (h *SkillHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.UpdateSkill
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	skill, err := h.skillUC.Update(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

// Delete godoc
// @Summary      Delete a skill
// @Tags         skills
// @Param        id   path  int  true  "Skill ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /skills/{id} [delete]
func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.skillUC.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
