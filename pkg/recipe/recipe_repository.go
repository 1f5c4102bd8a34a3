package recipe

import (
	"context"

	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error
		DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID string, page domain.PaginationRequest) ([]*entities.Recipe, int64, error)
		GetRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]*entities.Recipe, error)
		CountRecipesByAuthor(ctx context.Context, authorID string) (int64, error)
		RecipeExists(ctx context.Context, id string) (bool, error)
		GetTagsByIDs(ctx context.Context, ids []string) ([]*entities.Tag, error)
		GetIngredientsByIDs(ctx context.Context, ids []string) ([]*entities.Ingredient, error)
		GetShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItem, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) preload(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Author").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") }).
		Preload("Ingredients", func(db *gorm.DB) *gorm.DB { return db.Order("ingredient_in_recipes.position ASC") }).
		Preload("Ingredients.Ingredient")
}

// CreateRecipe stores the recipe, its tag links and ingredient amounts in one
// transaction.
func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Author", "Tags", "Ingredients").Create(recipe).Error; err != nil {
			return err
		}
		if err := tx.Model(recipe).Association("Tags").Append(tags); err != nil {
			return err
		}
		return insertIngredients(tx, recipe, ingredients)
	})
}

// UpdateRecipe saves scalar fields and, for every non-nil set, replaces the
// stored associations wholesale. Concurrent updates of one recipe are last
// writer wins per set.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe, tags []*entities.Tag, ingredients []*entities.IngredientInRecipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).
			Select("name", "text", "image", "cooking_time", "updated_at").
			Updates(recipe).Error; err != nil {
			return err
		}

		if tags != nil {
			if err := tx.Model(recipe).Association("Tags").Replace(tags); err != nil {
				return err
			}
		}

		if ingredients != nil {
			if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.IngredientInRecipe{}).Error; err != nil {
				return err
			}
			if err := insertIngredients(tx, recipe, ingredients); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertIngredients(tx *gorm.DB, recipe *entities.Recipe, ingredients []*entities.IngredientInRecipe) error {
	if len(ingredients) == 0 {
		return nil
	}
	for i, item := range ingredients {
		item.RecipeID = recipe.ID
		item.Position = i
	}
	return tx.Omit("Ingredient").Create(&ingredients).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(recipe).Association("Tags").Clear(); err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.IngredientInRecipe{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&entities.RecipeRelation{}).Error; err != nil {
			return err
		}
		return tx.Delete(recipe).Error
	})
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.preload(r.db.WithContext(ctx)).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) filtered(ctx context.Context, filter domain.RecipeFilter, viewerID string) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if filter.AuthorID != "" {
		query = query.Where("recipes.author_id = ?", filter.AuthorID)
	}
	if len(filter.Tags) > 0 {
		query = query.Where("recipes.id IN (?)", r.db.
			Table("recipe_tags").
			Select("recipe_tags.recipe_id").
			Joins("JOIN tags ON tags.id = recipe_tags.tag_id").
			Where("tags.slug IN ?", filter.Tags))
	}
	// relation filters only make sense for a known viewer
	if viewerID != "" {
		if filter.IsFavorited {
			query = query.Where("recipes.id IN (?)", r.relatedRecipeIDs(viewerID, entities.RelationFavorite))
		}
		if filter.IsInShoppingCart {
			query = query.Where("recipes.id IN (?)", r.relatedRecipeIDs(viewerID, entities.RelationShoppingCart))
		}
	}
	return query
}

func (r *recipeRepository) relatedRecipeIDs(userID, kind string) *gorm.DB {
	return r.db.
		Model(&entities.RecipeRelation{}).
		Select("recipe_id").
		Where("user_id = ? AND kind = ?", userID, kind)
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter, viewerID string, page domain.PaginationRequest) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	if err := r.filtered(ctx, filter, viewerID).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.preload(r.filtered(ctx, filter, viewerID)).
		Order("recipes.created_at desc").
		Order("recipes.id").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipesByAuthor(ctx context.Context, authorID string, limit int) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	query := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Order("id")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) CountRecipesByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("author_id = ?", authorID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *recipeRepository) RecipeExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) GetTagsByIDs(ctx context.Context, ids []string) ([]*entities.Tag, error) {
	var tags []*entities.Tag
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *recipeRepository) GetIngredientsByIDs(ctx context.Context, ids []string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// GetShoppingList sums ingredient amounts over every recipe in the user's
// cart, one row per (name, unit). Rows come back unordered.
func (r *recipeRepository) GetShoppingList(ctx context.Context, userID string) ([]domain.ShoppingListItem, error) {
	var items []domain.ShoppingListItem
	if err := r.db.WithContext(ctx).
		Model(&entities.IngredientInRecipe{}).
		Select("ingredients.name AS name, ingredients.measurement_unit AS measurement_unit, SUM(ingredient_in_recipes.amount) AS total_amount").
		Joins("JOIN ingredients ON ingredients.id = ingredient_in_recipes.ingredient_id").
		Joins("JOIN recipe_relations ON recipe_relations.recipe_id = ingredient_in_recipes.recipe_id").
		Where("recipe_relations.user_id = ? AND recipe_relations.kind = ?", userID, entities.RelationShoppingCart).
		Group("ingredients.name, ingredients.measurement_unit").
		Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
