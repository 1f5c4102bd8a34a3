package utils

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	Validate *validator.Validate
	once     sync.Once

	usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)
	slugRegex     = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

func InitValidator() {
	once.Do(func() {
		Validate = validator.New()
		Validate.RegisterTagNameFunc(jsonFieldName)
		_ = Validate.RegisterValidation("username", validateUsername)
		_ = Validate.RegisterValidation("slug", validateSlug)
	})
}

// "me" is reserved for the /users/me route.
func validateUsername(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value != "me" && usernameRegex.MatchString(value)
}

func validateSlug(fl validator.FieldLevel) bool {
	return slugRegex.MatchString(fl.Field().String())
}

// jsonFieldName reports validation errors under the request's JSON names.
func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
