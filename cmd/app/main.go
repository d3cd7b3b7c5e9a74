package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"voyago/cmd/fx/chat_fx"
	"voyago/cmd/fx/db_fx"
	"voyago/cmd/fx/planner_fx"
	"voyago/cmd/fx/trips_fx"
	"voyago/internal/api/controllers"
	"voyago/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		planner_fx.Module,
		trips_fx.Module,
		chat_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	plannerController *controllers.PlannerController,
	tripsController *controllers.TripsController,
	chatController *controllers.ChatController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, plannerController, tripsController, chatController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	plannerController *controllers.PlannerController,
	tripsController *controllers.TripsController,
	chatController *controllers.ChatController) {

	plans := r.Group("/plans")
	plans.POST("/generate", plannerController.GeneratePlanHandler)

	r.POST("/chat", chatController.AskHandler)

	trips := r.Group("/trips")
	trips.Use(middleware.JWTAuthMiddleware())
	trips.POST("", tripsController.SaveTripHandler)
	trips.GET("", tripsController.ListTripsHandler)
	trips.GET("/:id", tripsController.GetTripHandler)
	trips.DELETE("/:id", tripsController.DeleteTripHandler)
	trips.GET("/:id/pdf", tripsController.ExportTripPDFHandler)
}
