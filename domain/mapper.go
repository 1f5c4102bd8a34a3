package domain

import "github.com/bogdanpracticum/foodgram-project-react/entities"

func NewUserProfile(user *entities.User, isSubscribed bool) UserProfile {
	if user == nil {
		return UserProfile{}
	}
	return UserProfile{
		Email:        user.Email,
		ID:           user.ID.String(),
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		IsSubscribed: isSubscribed,
	}
}

func NewTagResponse(tag *entities.Tag) TagResponse {
	return TagResponse{
		ID:    tag.ID.String(),
		Name:  tag.Name,
		Color: tag.Color,
		Slug:  tag.Slug,
	}
}

func NewIngredientResponse(ingredient *entities.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:              ingredient.ID.String(),
		Name:            ingredient.Name,
		MeasurementUnit: ingredient.MeasurementUnit,
	}
}

func NewRecipeSummary(recipe *entities.Recipe) RecipeSummary {
	return RecipeSummary{
		ID:          recipe.ID.String(),
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}
}
