package handlers

import (
	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/internal/api/presenters"
	"github.com/bogdanpracticum/foodgram-project-react/internal/middleware"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/recipe"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const shoppingListFileName = "shopping_list.txt"

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		AddFavorite(c *fiber.Ctx) error
		RemoveFavorite(c *fiber.Ctx) error
		AddToShoppingCart(c *fiber.Ctx) error
		RemoveFromShoppingCart(c *fiber.Ctx) error
		DownloadShoppingCart(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	filter := domain.RecipeFilter{
		AuthorID:         c.Query("author"),
		IsFavorited:      queryFlag(c, "is_favorited"),
		IsInShoppingCart: queryFlag(c, "is_in_shopping_cart"),
	}
	for _, slug := range c.Context().QueryArgs().PeekMulti("tags") {
		filter.Tags = append(filter.Tags, string(slug))
	}
	page := paginationFromQuery(c)

	res, count, err := h.recipeService.GetRecipes(c.Context(), filter, page, middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetRecipes, err)
	}
	return presenters.SuccessResponse(c, domain.NewPaginationResponse(page, count, res), fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	res, err := h.recipeService.GetRecipeDetail(c.Context(), c.Params("id"), middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedGetRecipeDetail, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req, middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedCreateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), c.Params("id"), *req, middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedUpdateRecipe, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	if err := h.recipeService.DeleteRecipe(c.Context(), c.Params("id"), middleware.GetViewer(c)); err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedDeleteRecipe, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) addRelation(c *fiber.Ctx, kind domain.RelationKind, failed, success string) error {
	res, err := h.recipeService.AddRelation(c.Context(), kind, c.Params("id"), middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, failed, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, success)
}

func (h *recipeHandler) removeRelation(c *fiber.Ctx, kind domain.RelationKind, failed, success string) error {
	if err := h.recipeService.RemoveRelation(c.Context(), kind, c.Params("id"), middleware.GetViewer(c)); err != nil {
		return presenters.ServiceErrorResponse(c, failed, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusNoContent, success)
}

func (h *recipeHandler) AddFavorite(c *fiber.Ctx) error {
	return h.addRelation(c, domain.RelationFavorite, domain.MessageFailedAddFavorite, domain.MessageSuccessAddFavorite)
}

func (h *recipeHandler) RemoveFavorite(c *fiber.Ctx) error {
	return h.removeRelation(c, domain.RelationFavorite, domain.MessageFailedRemoveFavorite, domain.MessageSuccessRemoveFavorite)
}

func (h *recipeHandler) AddToShoppingCart(c *fiber.Ctx) error {
	return h.addRelation(c, domain.RelationShoppingCart, domain.MessageFailedAddShoppingCart, domain.MessageSuccessAddShoppingCart)
}

func (h *recipeHandler) RemoveFromShoppingCart(c *fiber.Ctx) error {
	return h.removeRelation(c, domain.RelationShoppingCart, domain.MessageFailedRemoveShoppingCart, domain.MessageSuccessRemoveShoppingCart)
}

func (h *recipeHandler) DownloadShoppingCart(c *fiber.Ctx) error {
	items, err := h.recipeService.BuildShoppingList(c.Context(), middleware.GetViewer(c))
	if err != nil {
		return presenters.ServiceErrorResponse(c, domain.MessageFailedDownloadShoppingCart, err)
	}

	c.Attachment(shoppingListFileName)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(fiber.StatusOK).SendString(recipe.RenderShoppingList(items))
}
