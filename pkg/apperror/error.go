package apperror

import "net/http"

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Fields carries structured per-field validation errors, if any
	Fields interface{} `json:"fields,omitempty"`
	Err    error       `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation builds a 400 error carrying field-level details
func Validation(message string, fields interface{}) *AppError {
	e := New(http.StatusBadRequest, message, nil)
	e.Fields = fields
	return e
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
