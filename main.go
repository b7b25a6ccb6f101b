package main

import (
	"log/slog"
	"os"
	"time"

	"coachsport-app/config"
	"coachsport-app/database"
	routes "coachsport-app/internal/app/http"
	"coachsport-app/internal/infra/logger"
	"coachsport-app/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	cfg := config.Current
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	database.InitDB(cfg.DBDriver, config.DB_URL)
	if cfg.SeedFixtures {
		n, err := database.Seed(database.DB, time.Now())
		if err != nil {
			slog.Error("seed fixtures", logger.Err(err))
			os.Exit(1)
		}
		slog.Info("fixtures seeded", slog.Int("created", n))
	}

	store := session.NewStore(database.DB, config.JWT_SECRET, cfg.SessionTTL)
	store.MarkReady()

	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, database.DB, store)

	slog.Info("listening", slog.String("port", config.PORT))
	if err := r.Run(":" + config.PORT); err != nil {
		slog.Error("server stopped", logger.Err(err))
		os.Exit(1)
	}
}
