package config

import (
	"io"
	"os"
	"time"

	"github.com/bogdanpracticum/foodgram-project-react/internal/api/handlers"
	"github.com/bogdanpracticum/foodgram-project-react/internal/api/routes"
	"github.com/bogdanpracticum/foodgram-project-react/internal/middleware"
	"github.com/bogdanpracticum/foodgram-project-react/internal/utils"
	"github.com/bogdanpracticum/foodgram-project-react/internal/utils/mailing"
	"github.com/bogdanpracticum/foodgram-project-react/internal/utils/storage"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/ingredient"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/jwt"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/recipe"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/relation"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/tag"
	"github.com/bogdanpracticum/foodgram-project-react/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

const requestsPerSecond = 20

type Dependencies struct {
	S3         storage.AwsS3
	Mailer     mailing.Mailer
	JWTService jwt.JWTService

	// LogOutput receives the access log; nil means ./logs/app.log.
	LogOutput io.Writer
	// RequestsPerSecond limits each client; 0 disables the limiter.
	RequestsPerSecond int
}

func NewApp(db *gorm.DB) (*fiber.App, error) {
	return NewAppWithDependencies(db, Dependencies{
		S3:                storage.NewAwsS3(),
		Mailer:            mailing.NewMailer(),
		JWTService:        jwt.NewJWTService(),
		RequestsPerSecond: requestsPerSecond,
	})
}

func openLogFile() (io.Writer, error) {
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Errorf("error creating logs directory: %v", err)
		return nil, err
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Errorf("error opening file: %v", err)
		return nil, err
	}
	return file, nil
}

// NewAppWithDependencies builds the application around externally provided
// clients.
func NewAppWithDependencies(db *gorm.DB, deps Dependencies) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	output := deps.LogOutput
	if output == nil {
		file, err := openLogFile()
		if err != nil {
			return nil, err
		}
		output = file
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		Output:     output,
	}))

	if deps.RequestsPerSecond > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        deps.RequestsPerSecond,
			Expiration: 1 * time.Second,
		}))
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	tagRepository := tag.NewTagRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	relationRepository := relation.NewRelationRepository(db)

	// Service
	relationService := relation.NewRelationService(relationRepository, recipeRepository, userRepository)
	userService := user.NewUserService(
		userRepository,
		recipeRepository,
		relationRepository,
		relationService,
		deps.JWTService,
		deps.Mailer,
		utils.GetConfig("APP_URL"),
	)
	tagService := tag.NewTagService(tagRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	recipeService := recipe.NewRecipeService(
		recipeRepository,
		relationService,
		recipe.NewPresenter(relationRepository),
		deps.S3,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	tagHandler := handlers.NewTagHandler(tagService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		TagHandler:        tagHandler,
		IngredientHandler: ingredientHandler,
		RecipeHandler:     recipeHandler,
		Middleware:        middlewares,
		JWTService:        deps.JWTService,
	}
	routesConfig.Setup()
	return app, nil
}
