package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bogdanpracticum/foodgram-project-react/cmd/config"
	migration "github.com/bogdanpracticum/foodgram-project-react/cmd/database/migrate"
	"github.com/bogdanpracticum/foodgram-project-react/internal/utils"
	"github.com/gofiber/fiber/v2/log"
)

const shutdownTimeout = 10 * time.Second

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to build app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8000"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Errorf("server stopped: %v", err)
		os.Exit(1)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
