package config

import (
	"fmt"

	"github.com/bogdanpracticum/foodgram-project-react/internal/utils"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens postgres by default; DB_DRIVER=sqlite with DB_PATH gives a
// single-file database for local development.
func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch utils.GetConfig("DB_DRIVER") {
	case "", "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	case "sqlite":
		path := utils.GetConfig("DB_PATH")
		if path == "" {
			path = "foodgram.db"
		}
		dialector = sqlite.Open(path + "?_pragma=foreign_keys(1)")
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", utils.GetConfig("DB_DRIVER"))
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
