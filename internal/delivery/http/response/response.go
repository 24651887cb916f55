package response

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the error shape every endpoint returns: a message plus an
// optional list of field-level errors.
type ErrorBody struct {
	Message string      `json:"message"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, errs interface{}) {
	c.JSON(code, ErrorBody{
		Message: message,
		Errors:  errs,
	})
}
