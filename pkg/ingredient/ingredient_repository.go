package ingredient

import (
	"context"
	"strings"

	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const importBatchSize = 500

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type (
	IngredientRepository interface {
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		SearchIngredients(ctx context.Context, namePrefix string) ([]*entities.Ingredient, error)
		CreateIngredientsIgnoreExisting(ctx context.Context, ingredients []*entities.Ingredient) (int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// SearchIngredients returns ingredients whose name starts with namePrefix,
// ignoring case. An empty prefix matches everything.
func (r *ingredientRepository) SearchIngredients(ctx context.Context, namePrefix string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient

	query := r.db.WithContext(ctx)
	if namePrefix != "" {
		pattern := likeEscaper.Replace(strings.ToLower(namePrefix)) + "%"
		query = query.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}

	if err := query.Order("name asc").Order("measurement_unit asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

// CreateIngredientsIgnoreExisting inserts the ingredients, skipping every
// (name, measurement_unit) pair that is already stored, and reports how many
// rows were created.
func (r *ingredientRepository) CreateIngredientsIgnoreExisting(ctx context.Context, ingredients []*entities.Ingredient) (int64, error) {
	if len(ingredients) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}, {Name: "measurement_unit"}},
			DoNothing: true,
		}).
		CreateInBatches(ingredients, importBatchSize)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
