package middleware

import (
	"strings"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/internal/api/presenters"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

const (
	localsUserID = "user_id"
	localsRole   = "role"
)

// bearerToken extracts the token from "Token <jwt>" or "Bearer <jwt>".
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found {
		return "", false
	}
	if !strings.EqualFold(scheme, "Token") && !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func authenticate(c *fiber.Ctx, jwtService jwt.JWTService, required bool) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		if required {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}
		return c.Next()
	}

	token, ok := bearerToken(header)
	if !ok {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
	}

	viewer, err := jwtService.ParseAuthToken(token)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
	}

	c.Locals(localsUserID, viewer.UserID)
	c.Locals(localsRole, viewer.Role)
	return c.Next()
}

// AuthMiddleware rejects requests without a valid token.
func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authenticate(c, jwtService, true)
	}
}

// OptionalAuthMiddleware lets anonymous requests through but still rejects a
// malformed or expired token.
func (m *middleware) OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return authenticate(c, jwtService, false)
	}
}

// AdminMiddleware must run after AuthMiddleware.
func (m *middleware) AdminMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !GetViewer(c).IsAdmin() {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageUserNotAllowed, domain.ErrNotAdmin)
		}
		return c.Next()
	}
}

// GetViewer returns the authenticated identity of the request, nil when the
// request is anonymous.
func GetViewer(c *fiber.Ctx) *domain.Viewer {
	userID, _ := c.Locals(localsUserID).(string)
	if userID == "" {
		return nil
	}
	role, _ := c.Locals(localsRole).(string)
	return &domain.Viewer{UserID: userID, Role: role}
}
