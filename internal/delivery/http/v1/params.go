package v1

import (
	"strconv"

	"go-profile-builder/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// idParam parses the :id path segment. A non-numeric id is a 400, not a
// 404: the route matched, the value is malformed.
func idParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid id parameter")
	}
	return id, nil
}
