// Command importer loads the ingredient catalog into the database. Pairs of
// (name, measurement_unit) that already exist are skipped, so it is safe to
// run on every deploy.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"

	"github.com/bogdanpracticum/foodgram-project-react/cmd/config"
	migration "github.com/bogdanpracticum/foodgram-project-react/cmd/database/migrate"
	"github.com/bogdanpracticum/foodgram-project-react/domain"
	"github.com/bogdanpracticum/foodgram-project-react/internal/utils"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/ingredient"
	"github.com/gofiber/fiber/v2/log"
)

func main() {
	file := flag.String("file", "data/ingredients.json", "path to the ingredient catalog")
	flag.Parse()

	utils.LoadConfig()

	items, err := readCatalog(*file)
	if err != nil {
		log.Fatalf("failed to read %s: %v", *file, err)
	}

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	service := ingredient.NewIngredientService(ingredient.NewIngredientRepository(db))
	res, err := service.ImportIngredients(context.Background(), items)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Infof("ingredients imported: %d created, %d skipped", res.Created, res.Skipped)
}

func readCatalog(path string) ([]domain.IngredientImportItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var items []domain.IngredientImportItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}
