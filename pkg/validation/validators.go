package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New builds the validator instance shared by all usecases. Field names in
// error reports use the json tag so clients see the wire-level field name
// (e.g. "fullName", not "FullName").
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
