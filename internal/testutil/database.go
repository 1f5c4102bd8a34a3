// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"testing"

	migration "github.com/bogdanpracticum/foodgram-project-react/cmd/database/migrate"
	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB returns a migrated in-memory sqlite database private to the test.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func CreateUser(t testing.TB, db *gorm.DB, username string) *entities.User {
	t.Helper()

	user := &entities.User{
		Email:     username + "@foodgram.test",
		Username:  username,
		FirstName: "First " + username,
		LastName:  "Last " + username,
		Password:  "not-a-hash",
		Role:      entities.RoleUser,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateTag(t testing.TB, db *gorm.DB, name, color string) *entities.Tag {
	t.Helper()

	tag := &entities.Tag{Name: name, Color: color, Slug: name}
	require.NoError(t, db.Create(tag).Error)
	return tag
}

func CreateIngredient(t testing.TB, db *gorm.DB, name, unit string) *entities.Ingredient {
	t.Helper()

	ingredient := &entities.Ingredient{Name: name, MeasurementUnit: unit}
	require.NoError(t, db.Create(ingredient).Error)
	return ingredient
}

// CreateRecipe inserts a recipe with the given ingredient amounts, bypassing
// the service layer.
func CreateRecipe(t testing.TB, db *gorm.DB, author *entities.User, name string, tags []*entities.Tag, amounts map[*entities.Ingredient]int) *entities.Recipe {
	t.Helper()

	recipe := &entities.Recipe{
		AuthorID:    author.ID,
		Name:        name,
		Text:        name + " text",
		Image:       "https://foodgram.test/media/" + name + ".png",
		CookingTime: 10,
		Tags:        tags,
	}
	require.NoError(t, db.Create(recipe).Error)

	for ingredient, amount := range amounts {
		require.NoError(t, db.Create(&entities.IngredientInRecipe{
			RecipeID:     recipe.ID,
			IngredientID: ingredient.ID,
			Amount:       amount,
		}).Error)
	}
	return recipe
}
