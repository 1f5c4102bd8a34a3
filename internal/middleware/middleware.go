package middleware

import (
	"github.com/bogdanpracticum/foodgram-project-react/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		OptionalAuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		AdminMiddleware() fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}
