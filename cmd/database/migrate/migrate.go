package migration

import (
	"fmt"

	"github.com/bogdanpracticum/foodgram-project-react/entities"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	models := []any{
		&entities.User{},
		&entities.Tag{},
		&entities.Ingredient{},
		&entities.Recipe{},
		&entities.IngredientInRecipe{},
		&entities.RecipeRelation{},
		&entities.Subscription{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("error migrating %T: %w", model, err)
		}
	}

	log.Info("Database migration complete")
	return nil
}
