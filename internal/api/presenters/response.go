package presenters

import (
	"errors"
	"fmt"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	Response struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    any    `json:"data,omitempty"`
	}

	ErrorBody struct {
		Status  bool              `json:"status"`
		Message string            `json:"message"`
		Error   string            `json:"error"`
		Errors  map[string]string `json:"errors,omitempty"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	if statusCode == fiber.StatusNoContent {
		return c.SendStatus(fiber.StatusNoContent)
	}
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	body := ErrorBody{
		Status:  false,
		Message: message,
		Errors:  FieldErrors(err),
	}

	if statusCode >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.OriginalURL(), message, err)
		body.Error = domain.MessageInternalError
	} else if err != nil {
		body.Error = err.Error()
	}

	return c.Status(statusCode).JSON(body)
}

// ServiceErrorResponse writes err with the status its category maps to.
func ServiceErrorResponse(c *fiber.Ctx, message string, err error) error {
	return ErrorResponse(c, StatusFromError(err), message, err)
}

func StatusFromError(err error) int {
	var validationErrors validator.ValidationErrors

	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &validationErrors), errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrAuthenticationRequired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrPermissionDenied):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// FieldErrors returns a field -> message map for validation failures, nil
// for every other error.
func FieldErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fieldPath(fe)] = fieldMessage(fe)
		}
		return fields
	}

	var domainErr *domain.Error
	if errors.As(err, &domainErr) && domainErr.Field != "" {
		return map[string]string{domainErr.Field: domainErr.Message}
	}
	return nil
}

// fieldPath drops the request struct name from the namespace, so
// "CreateRecipeRequest.ingredients[0].amount" becomes "ingredients[0].amount".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		return fmt.Sprintf("ensure this field has at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("ensure this field has no more than %s characters", fe.Param())
	case "uuid":
		return "must be a valid UUID"
	case "hexcolor":
		return "must be a hex color like #49B64E"
	case "username":
		return "letters, digits and @/./+/-/_ only; \"me\" is reserved"
	case "slug":
		return "letters, digits, hyphens and underscores only"
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}
