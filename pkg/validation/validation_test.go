package validation_test

import (
	"testing"

	"go-profile-builder/pkg/validation"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Website  string `json:"website" validate:"omitempty,url"`
}

func TestFormatFieldErrorsUsesJSONNames(t *testing.T) {
	validate := validation.New()

	err := validate.Struct(sample{Website: "not-a-url"})
	assert.Error(t, err)

	fields := validation.FormatFieldErrors(err)
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	assert.Contains(t, names, "fullName")
	assert.Contains(t, names, "email")
	assert.Contains(t, names, "website")
}

func TestFormatFieldErrorsMessages(t *testing.T) {
	validate := validation.New()

	err := validate.Struct(sample{FullName: "Ada", Email: "bad"})
	assert.Error(t, err)

	fields := validation.FormatFieldErrors(err)
	assert.Len(t, fields, 1)
	assert.Equal(t, "email", fields[0].Field)
	assert.NotEmpty(t, fields[0].Message)
}
