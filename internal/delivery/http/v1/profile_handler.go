package v1

import (
	"net/http"

	"go-profile-builder/internal/domain"
	"go-profile-builder/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(r *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}

	r.GET("/profile/:id", handler.Get)
	r.POST("/profile", handler.Create)
	r.PUT("/profile/:id", handler.Update)
	r.GET("/profile/:id/complete", handler.GetComplete)
	r.GET("/profile/:id/completion", handler.GetCompletion)
}

// Get godoc
// @Summary      Get a profile
// @Tags         profile
// @Produce      json
// @Param        id   path  int  true  "Profile ID"
// @Success      200  {object}  domain.Profile
// @Failure      404  {object}  response.ErrorBody
// @Router       /profile/{id} [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	profile, err := h.profileUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Create godoc
// @Summary      Create the profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body  domain.InsertProfile  true  "Profile fields"
// @Success      201  {object}  domain.Profile
// @Failure      400  {object}  response.ErrorBody
// @Router       /profile [post]
func (h *ProfileHandler) Create(c *gin.Context) {
	var in domain.InsertProfile
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.CreateProfile(c.Request.Context(), in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// Update godoc
// @Summary      Update the profile (partial)
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        id       path  int                   true  "Profile ID"
// @Param        profile  body  domain.UpdateProfile  true  "Fields to change"
// @Success      200  {object}  domain.Profile
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /profile/{id} [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var in domain.UpdateProfile
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	profile, err := h.profileUC.UpdateProfile(c.Request.Context(), id, in)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetComplete godoc
// @Summary      Get the profile with all child collections
// @Tags         profile
// @Produce      json
// @Param        id   path  int  true  "Profile ID"
// @Success      200  {object}  domain.CompleteProfile
// @Failure      404  {object}  response.ErrorBody
// @Router       /profile/{id}/complete [get]
func (h *ProfileHandler) GetComplete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	complete, err := h.profileUC.GetCompleteProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, complete)
}

// GetCompletion godoc
// @Summary      Get the completion score over the 8 profile sections
// @Tags         profile
// @Produce      json
// @Param        id   path  int  true  "Profile ID"
// @Success      200  {object}  domain.ProfileCompletion
// @Router       /profile/{id}/completion [get]
func (h *ProfileHandler) GetCompletion(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	completion, err := h.profileUC.GetCompletion(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, completion)
}
