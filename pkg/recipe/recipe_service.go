package recipe

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"github.com/bogdanpracticum/foodgram-project-react/internal/utils/storage"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/relation"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const imageFolder = "recipes"

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, viewer *domain.Viewer) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, viewer *domain.Viewer) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, recipeID string, viewer *domain.Viewer) error
		GetRecipeDetail(ctx context.Context, recipeID string, viewer *domain.Viewer) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, page domain.PaginationRequest, viewer *domain.Viewer) ([]domain.RecipeResponse, int64, error)
		AddRelation(ctx context.Context, kind domain.RelationKind, recipeID string, viewer *domain.Viewer) (domain.RecipeSummary, error)
		RemoveRelation(ctx context.Context, kind domain.RelationKind, recipeID string, viewer *domain.Viewer) error
		BuildShoppingList(ctx context.Context, viewer *domain.Viewer) ([]domain.ShoppingListItem, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		relationService  relation.RelationService
		presenter        Presenter
		s3               storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	relationService relation.RelationService,
	presenter Presenter,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		relationService:  relationService,
		presenter:        presenter,
		s3:               s3,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, viewer *domain.Viewer) (domain.RecipeResponse, error) {
	if !viewer.IsAuthenticated() {
		return domain.RecipeResponse{}, domain.ErrTokenNotFound
	}
	authorID, err := uuid.Parse(viewer.UserID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrTokenInvalid
	}

	if strings.TrimSpace(req.Name) == "" {
		return domain.RecipeResponse{}, domain.ErrNameRequired
	}
	if strings.TrimSpace(req.Text) == "" {
		return domain.RecipeResponse{}, domain.ErrTextRequired
	}
	if req.Image == "" {
		return domain.RecipeResponse{}, domain.ErrImageRequired
	}
	if err := validateCookingTime(req.CookingTime); err != nil {
		return domain.RecipeResponse{}, err
	}

	tags, err := s.resolveTags(ctx, req.Tags)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	ingredients, err := s.resolveIngredients(ctx, req.Ingredients)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	imageURL, objectKey, err := s.uploadImage(ctx, req.Image)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	recipe := &entities.Recipe{
		ID:          uuid.New(),
		AuthorID:    authorID,
		Name:        req.Name,
		Text:        req.Text,
		Image:       imageURL,
		CookingTime: req.CookingTime,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe, tags, ingredients); err != nil {
		s.deleteImage(ctx, objectKey)
		return domain.RecipeResponse{}, translateStoreError(err)
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String(), viewer)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID string, req domain.UpdateRecipeRequest, viewer *domain.Viewer) (domain.RecipeResponse, error) {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, viewer)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return domain.RecipeResponse{}, domain.ErrNameRequired
		}
		recipe.Name = *req.Name
	}
	if req.Text != nil {
		if strings.TrimSpace(*req.Text) == "" {
			return domain.RecipeResponse{}, domain.ErrTextRequired
		}
		recipe.Text = *req.Text
	}
	if req.CookingTime != nil {
		if err := validateCookingTime(*req.CookingTime); err != nil {
			return domain.RecipeResponse{}, err
		}
		recipe.CookingTime = *req.CookingTime
	}

	var tags []*entities.Tag
	if req.Tags != nil {
		if tags, err = s.resolveTags(ctx, *req.Tags); err != nil {
			return domain.RecipeResponse{}, err
		}
	}
	var ingredients []*entities.IngredientInRecipe
	if req.Ingredients != nil {
		if ingredients, err = s.resolveIngredients(ctx, *req.Ingredients); err != nil {
			return domain.RecipeResponse{}, err
		}
	}

	var newObjectKey, oldImage string
	if req.Image != nil {
		imageURL, objectKey, err := s.uploadImage(ctx, *req.Image)
		if err != nil {
			return domain.RecipeResponse{}, err
		}
		newObjectKey, oldImage = objectKey, recipe.Image
		recipe.Image = imageURL
	}

	// the preloaded associations must not be written back by the update
	recipe.Author, recipe.Tags, recipe.Ingredients = nil, nil, nil

	if err := s.recipeRepository.UpdateRecipe(ctx, recipe, tags, ingredients); err != nil {
		s.deleteImage(ctx, newObjectKey)
		return domain.RecipeResponse{}, translateStoreError(err)
	}
	if oldImage != "" {
		s.deleteImage(ctx, s.s3.GetObjectKeyFromLink(oldImage))
	}

	return s.GetRecipeDetail(ctx, recipe.ID.String(), viewer)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID string, viewer *domain.Viewer) error {
	recipe, err := s.getOwnedRecipe(ctx, recipeID, viewer)
	if err != nil {
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe); err != nil {
		return err
	}
	s.deleteImage(ctx, s.s3.GetObjectKeyFromLink(recipe.Image))
	return nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID string, viewer *domain.Viewer) (domain.RecipeResponse, error) {
	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return s.presenter.Recipe(ctx, recipe, viewer)
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter, page domain.PaginationRequest, viewer *domain.Viewer) ([]domain.RecipeResponse, int64, error) {
	page = page.Normalize()
	if filter.AuthorID != "" {
		if parsed, err := uuid.Parse(filter.AuthorID); err == nil {
			filter.AuthorID = parsed.String()
		}
	}

	viewerID := ""
	if viewer.IsAuthenticated() {
		viewerID = viewer.UserID
	}

	recipes, count, err := s.recipeRepository.GetRecipes(ctx, filter, viewerID, page)
	if err != nil {
		return nil, 0, err
	}

	responses, err := s.presenter.Recipes(ctx, recipes, viewer)
	if err != nil {
		return nil, 0, err
	}
	return responses, count, nil
}

// AddRelation puts the recipe into the viewer's favorites or shopping cart.
func (s *recipeService) AddRelation(ctx context.Context, kind domain.RelationKind, recipeID string, viewer *domain.Viewer) (domain.RecipeSummary, error) {
	if !kind.IsRecipeRelation() {
		return domain.RecipeSummary{}, domain.ErrUnknownRelation
	}
	if !viewer.IsAuthenticated() {
		return domain.RecipeSummary{}, domain.ErrTokenNotFound
	}

	if err := s.relationService.AddRelation(ctx, kind, viewer.UserID, recipeID); err != nil {
		return domain.RecipeSummary{}, err
	}

	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return domain.RecipeSummary{}, err
	}
	return domain.NewRecipeSummary(recipe), nil
}

func (s *recipeService) RemoveRelation(ctx context.Context, kind domain.RelationKind, recipeID string, viewer *domain.Viewer) error {
	if !kind.IsRecipeRelation() {
		return domain.ErrUnknownRelation
	}
	if !viewer.IsAuthenticated() {
		return domain.ErrTokenNotFound
	}
	return s.relationService.RemoveRelation(ctx, kind, viewer.UserID, recipeID)
}

// BuildShoppingList returns the viewer's cart summed per (name, unit), ordered
// by name then unit with plain byte comparison so the order does not depend
// on the database collation.
func (s *recipeService) BuildShoppingList(ctx context.Context, viewer *domain.Viewer) ([]domain.ShoppingListItem, error) {
	if !viewer.IsAuthenticated() {
		return nil, domain.ErrTokenNotFound
	}

	items, err := s.recipeRepository.GetShoppingList(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.ShoppingListItem{}
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Name != items[j].Name {
			return items[i].Name < items[j].Name
		}
		return items[i].MeasurementUnit < items[j].MeasurementUnit
	})
	return items, nil
}

// RenderShoppingList formats items as "{name} - {total} {unit}" lines.
func RenderShoppingList(items []domain.ShoppingListItem) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, item.String())
	}
	return strings.Join(lines, "\n")
}

func (s *recipeService) getRecipe(ctx context.Context, recipeID string) (*entities.Recipe, error) {
	parsed, err := uuid.Parse(recipeID)
	if err != nil {
		return nil, domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, parsed.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) getOwnedRecipe(ctx context.Context, recipeID string, viewer *domain.Viewer) (*entities.Recipe, error) {
	if !viewer.IsAuthenticated() {
		return nil, domain.ErrTokenNotFound
	}

	recipe, err := s.getRecipe(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if !viewer.CanModify(recipe.AuthorID.String()) {
		return nil, domain.ErrNotRecipeAuthor
	}
	return recipe, nil
}

func validateCookingTime(minutes int) error {
	if minutes < entities.MinCookingTime || minutes > entities.MaxCookingTime {
		return domain.ErrCookingTimeOutOfRange
	}
	return nil
}

// resolveTags checks the id list is non-empty and duplicate free and loads
// the tags.
func (s *recipeService) resolveTags(ctx context.Context, ids []string) ([]*entities.Tag, error) {
	if len(ids) == 0 {
		return nil, domain.ErrTagsRequired
	}

	seen := make(map[uuid.UUID]struct{}, len(ids))
	normalized := make([]string, 0, len(ids))
	for _, id := range ids {
		tagID, err := uuid.Parse(id)
		if err != nil {
			return nil, domain.ErrTagNotExist
		}
		if _, ok := seen[tagID]; ok {
			return nil, domain.ErrTagsRequired
		}
		seen[tagID] = struct{}{}
		normalized = append(normalized, tagID.String())
	}

	tags, err := s.recipeRepository.GetTagsByIDs(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(normalized) {
		return nil, domain.ErrTagNotExist
	}
	return tags, nil
}

// resolveIngredients validates amounts and uniqueness and builds the
// association rows in request order.
func (s *recipeService) resolveIngredients(ctx context.Context, items []domain.IngredientAmountRequest) ([]*entities.IngredientInRecipe, error) {
	if len(items) == 0 {
		return nil, domain.ErrIngredientsRequired
	}

	seen := make(map[uuid.UUID]struct{}, len(items))
	ids := make([]string, 0, len(items))
	rows := make([]*entities.IngredientInRecipe, 0, len(items))
	for _, item := range items {
		ingredientID, err := uuid.Parse(item.ID)
		if err != nil {
			return nil, domain.ErrIngredientNotExist
		}
		if _, ok := seen[ingredientID]; ok {
			return nil, domain.ErrDuplicateIngredient
		}
		if item.Amount < entities.MinAmount || item.Amount > entities.MaxAmount {
			return nil, domain.ErrAmountOutOfRange
		}
		seen[ingredientID] = struct{}{}
		ids = append(ids, ingredientID.String())
		rows = append(rows, &entities.IngredientInRecipe{
			IngredientID: ingredientID,
			Amount:       item.Amount,
		})
	}

	found, err := s.recipeRepository.GetIngredientsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(found) != len(ids) {
		return nil, domain.ErrIngredientNotExist
	}
	return rows, nil
}

func (s *recipeService) uploadImage(ctx context.Context, dataURI string) (string, string, error) {
	data, _, err := storage.DecodeDataURI(dataURI)
	if err != nil {
		return "", "", domain.ErrInvalidImage
	}

	objectKey, err := s.s3.UploadFile(ctx, uuid.NewString(), data, imageFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) || errors.Is(err, storage.ErrEmptyFile) {
			return "", "", domain.ErrInvalidImage
		}
		return "", "", err
	}
	return s.s3.GetPublicLinkKey(objectKey), objectKey, nil
}

// deleteImage is best effort: a leftover object is logged, not returned.
func (s *recipeService) deleteImage(ctx context.Context, objectKey string) {
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		log.Errorf("failed to delete image %s: %v", objectKey, err)
	}
}

func translateStoreError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateIngredient
	}
	return err
}
