package domain

import (
	"fmt"
)

var (
	MessageSuccessGetRecipes         = "success get recipes"
	MessageSuccessGetRecipeDetail    = "success get recipe detail"
	MessageSuccessCreateRecipe       = "recipe created successfully"
	MessageSuccessUpdateRecipe       = "recipe updated successfully"
	MessageSuccessDeleteRecipe       = "recipe deleted successfully"
	MessageSuccessAddFavorite        = "recipe added to favorites"
	MessageSuccessRemoveFavorite     = "recipe removed from favorites"
	MessageSuccessAddShoppingCart    = "recipe added to shopping cart"
	MessageSuccessRemoveShoppingCart = "recipe removed from shopping cart"

	MessageFailedGetRecipes           = "failed to get recipes"
	MessageFailedGetRecipeDetail      = "failed to get recipe detail"
	MessageFailedCreateRecipe         = "failed to create recipe"
	MessageFailedUpdateRecipe         = "failed to update recipe"
	MessageFailedDeleteRecipe         = "failed to delete recipe"
	MessageFailedAddFavorite          = "failed to add recipe to favorites"
	MessageFailedRemoveFavorite       = "failed to remove recipe from favorites"
	MessageFailedAddShoppingCart      = "failed to add recipe to shopping cart"
	MessageFailedRemoveShoppingCart   = "failed to remove recipe from shopping cart"
	MessageFailedDownloadShoppingCart = "failed to download shopping cart"

	ErrRecipeNotFound        = NewNotFoundError("recipe not found")
	ErrNotRecipeAuthor       = &Error{Kind: ErrPermissionDenied, Message: "only the author or an administrator may change this recipe"}
	ErrNameRequired          = NewValidationError("name", "name required")
	ErrTextRequired          = NewValidationError("text", "text required")
	ErrImageRequired         = NewValidationError("image", "image required")
	ErrInvalidImage          = NewValidationError("image", "image must be a base64 encoded data:image URI")
	ErrCookingTimeOutOfRange = NewValidationError("cooking_time", "cooking time out of range")
	ErrTagsRequired          = NewValidationError("tags", "tags required/unique")
	ErrTagNotExist           = NewValidationError("tags", "tag does not exist")
	ErrIngredientsRequired   = NewValidationError("ingredients", "ingredients required")
	ErrAmountOutOfRange      = NewValidationError("ingredients", "amount out of range")
	ErrDuplicateIngredient   = NewValidationError("ingredients", "duplicate ingredient")
	ErrIngredientNotExist    = NewValidationError("ingredients", "ingredient does not exist")
)

type (
	IngredientAmountRequest struct {
		ID     string `json:"id" validate:"required,uuid"`
		Amount int    `json:"amount"`
	}

	CreateRecipeRequest struct {
		Ingredients []IngredientAmountRequest `json:"ingredients" validate:"dive"`
		Tags        []string                  `json:"tags" validate:"dive,uuid"`
		Image       string                    `json:"image"`
		Name        string                    `json:"name" validate:"max=200"`
		Text        string                    `json:"text"`
		CookingTime int                       `json:"cooking_time"`
	}

	// UpdateRecipeRequest carries a partial update; nil fields keep their
	// stored value. Non-nil Tags or Ingredients replace the whole set.
	UpdateRecipeRequest struct {
		Ingredients *[]IngredientAmountRequest `json:"ingredients" validate:"omitempty,dive"`
		Tags        *[]string                  `json:"tags" validate:"omitempty,dive,uuid"`
		Image       *string                    `json:"image"`
		Name        *string                    `json:"name" validate:"omitempty,max=200"`
		Text        *string                    `json:"text"`
		CookingTime *int                       `json:"cooking_time"`
	}

	RecipeFilter struct {
		AuthorID         string
		Tags             []string
		IsFavorited      bool
		IsInShoppingCart bool
	}

	RecipeIngredientResponse struct {
		ID              string `json:"id"`
		Name            string `json:"name"`
		MeasurementUnit string `json:"measurement_unit"`
		Amount          int    `json:"amount"`
	}

	RecipeResponse struct {
		ID               string                     `json:"id"`
		Tags             []TagResponse              `json:"tags"`
		Author           UserProfile                `json:"author"`
		Ingredients      []RecipeIngredientResponse `json:"ingredients"`
		IsFavorited      bool                       `json:"is_favorited"`
		IsInShoppingCart bool                       `json:"is_in_shopping_cart"`
		Name             string                     `json:"name"`
		Image            string                     `json:"image"`
		Text             string                     `json:"text"`
		CookingTime      int                        `json:"cooking_time"`
	}

	RecipeSummary struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Image       string `json:"image"`
		CookingTime int    `json:"cooking_time"`
	}

	ShoppingListItem struct {
		Name            string `json:"name"`
		TotalAmount     int64  `json:"total_amount"`
		MeasurementUnit string `json:"measurement_unit"`
	}
)

func (i ShoppingListItem) String() string {
	return fmt.Sprintf("%s - %d %s", i.Name, i.TotalAmount, i.MeasurementUnit)
}
