package handlers

import (
	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/internal/api/presenters"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/ingredient"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		GetIngredients(c *fiber.Ctx) error
		GetIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService) IngredientHandler {
	return &ingredientHandler{ingredientService: ingredientService}
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	res, err := h.ingredientService.SearchIngredients(c.Context(), c.Query("name"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetIngredients, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) GetIngredient(c *fiber.Ctx) error {
	res, err := h.ingredientService.GetIngredient(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetIngredient, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredient)
}
