package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"roamio/cmd/fx/ai_fx"
	"roamio/cmd/fx/export_fx"
	"roamio/cmd/fx/logger_fx"
	"roamio/cmd/fx/planner_fx"
	"roamio/internal/api/controllers"
	"roamio/pkg/middleware"
)

func main() {
	// .env is optional; production sets env vars directly.
	_ = godotenv.Load()

	app := fx.New(
		logger_fx.Module,
		ai_fx.Module,
		planner_fx.Module,
		export_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, logger *zap.Logger) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", port))
				if err := engine.Run(":" + port); err != nil {
					logger.Fatal("failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	logger *zap.Logger,
	plannerController *controllers.PlannerController,
	exportController *controllers.ExportController,
) *gin.Engine {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLoggerMiddleware(logger))
	r.Use(cors.New(corsConfig()))

	RegisterRoutes(r, plannerController, exportController)

	return r
}

func RegisterRoutes(
	r *gin.Engine,
	plannerController *controllers.PlannerController,
	exportController *controllers.ExportController,
) {
	api := r.Group("/api/v1")

	api.GET("/health", plannerController.HealthHandler)
	api.POST("/plan", plannerController.PlanTripHandler)
	api.POST("/packing-list", plannerController.PackingListHandler)

	export := api.Group("/plan/export")
	export.POST("/csv", exportController.ExportCSVHandler)
	export.POST("/pdf", exportController.ExportPDFHandler)
}

func corsConfig() cors.Config {
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if urls := os.Getenv("FRONTEND_URL"); urls != "" {
		for _, u := range strings.Split(urls, ",") {
			if u = strings.TrimSpace(u); u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Trace-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", "X-Trace-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}
