package handlers

import (
	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/gofiber/fiber/v2"
)

func paginationFromQuery(c *fiber.Ctx) domain.PaginationRequest {
	return domain.PaginationRequest{
		Page:  c.QueryInt("page", domain.DefaultPage),
		Limit: c.QueryInt("limit", domain.DefaultLimit),
	}.Normalize()
}

// queryFlag treats "1" and "true" as set.
func queryFlag(c *fiber.Ctx, key string) bool {
	switch c.Query(key) {
	case "1", "true", "True":
		return true
	default:
		return false
	}
}
