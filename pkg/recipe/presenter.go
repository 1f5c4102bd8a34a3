package recipe

import (
	"context"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/relation"
)

type (
	// Presenter maps recipes to responses. Viewer-relative flags are computed
	// for the viewer passed in; a nil viewer gets every flag false.
	Presenter interface {
		Recipe(ctx context.Context, recipe *entities.Recipe, viewer *domain.Viewer) (domain.RecipeResponse, error)
		Recipes(ctx context.Context, recipes []*entities.Recipe, viewer *domain.Viewer) ([]domain.RecipeResponse, error)
	}

	presenter struct {
		relationRepository relation.RelationRepository
	}

	viewerFlags struct {
		favorited  map[string]bool
		inCart     map[string]bool
		subscribed map[string]bool
	}
)

func NewPresenter(relationRepository relation.RelationRepository) Presenter {
	return &presenter{relationRepository: relationRepository}
}

func (p *presenter) Recipe(ctx context.Context, recipe *entities.Recipe, viewer *domain.Viewer) (domain.RecipeResponse, error) {
	responses, err := p.Recipes(ctx, []*entities.Recipe{recipe}, viewer)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return responses[0], nil
}

func (p *presenter) Recipes(ctx context.Context, recipes []*entities.Recipe, viewer *domain.Viewer) ([]domain.RecipeResponse, error) {
	flags, err := p.loadFlags(ctx, recipes, viewer)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		id := recipe.ID.String()
		responses = append(responses, newRecipeResponse(
			recipe,
			flags.favorited[id],
			flags.inCart[id],
			flags.subscribed[recipe.AuthorID.String()],
		))
	}
	return responses, nil
}

func (p *presenter) loadFlags(ctx context.Context, recipes []*entities.Recipe, viewer *domain.Viewer) (viewerFlags, error) {
	flags := viewerFlags{}
	if !viewer.IsAuthenticated() || len(recipes) == 0 {
		return flags, nil
	}

	recipeIDs := make([]string, 0, len(recipes))
	authorIDs := make([]string, 0, len(recipes))
	for _, recipe := range recipes {
		recipeIDs = append(recipeIDs, recipe.ID.String())
		authorIDs = append(authorIDs, recipe.AuthorID.String())
	}

	var err error
	if flags.favorited, err = p.relationRepository.RelatedObjectIDs(ctx, domain.RelationFavorite, viewer.UserID, recipeIDs); err != nil {
		return flags, err
	}
	if flags.inCart, err = p.relationRepository.RelatedObjectIDs(ctx, domain.RelationShoppingCart, viewer.UserID, recipeIDs); err != nil {
		return flags, err
	}
	if flags.subscribed, err = p.relationRepository.RelatedObjectIDs(ctx, domain.RelationSubscription, viewer.UserID, authorIDs); err != nil {
		return flags, err
	}
	return flags, nil
}

func newRecipeResponse(recipe *entities.Recipe, isFavorited, isInShoppingCart, isSubscribed bool) domain.RecipeResponse {
	tags := make([]domain.TagResponse, 0, len(recipe.Tags))
	for _, tag := range recipe.Tags {
		tags = append(tags, domain.NewTagResponse(tag))
	}

	ingredients := make([]domain.RecipeIngredientResponse, 0, len(recipe.Ingredients))
	for _, item := range recipe.Ingredients {
		response := domain.RecipeIngredientResponse{
			ID:     item.IngredientID.String(),
			Amount: item.Amount,
		}
		if item.Ingredient != nil {
			response.Name = item.Ingredient.Name
			response.MeasurementUnit = item.Ingredient.MeasurementUnit
		}
		ingredients = append(ingredients, response)
	}

	return domain.RecipeResponse{
		ID:               recipe.ID.String(),
		Tags:             tags,
		Author:           domain.NewUserProfile(recipe.Author, isSubscribed),
		Ingredients:      ingredients,
		IsFavorited:      isFavorited,
		IsInShoppingCart: isInShoppingCart,
		Name:             recipe.Name,
		Image:            recipe.Image,
		Text:             recipe.Text,
		CookingTime:      recipe.CookingTime,
	}
}
