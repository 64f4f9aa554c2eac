package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"gompa/cmd/fx/admin_fx"
	"gompa/cmd/fx/assistant_fx"
	"gompa/cmd/fx/catalog_fx"
	"gompa/cmd/fx/controllers_fx"
	"gompa/cmd/fx/events_fx"
	"gompa/cmd/fx/itinerary_fx"
	"gompa/cmd/fx/routing_fx"
	"gompa/internal/api/controllers"
	"gompa/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	app := fx.New(
		catalog_fx.Module,
		events_fx.Module,
		itinerary_fx.Module,
		routing_fx.Module,
		assistant_fx.Module,
		admin_fx.Module,
		controllers_fx.Module,

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
	monasteryController *controllers.MonasteryController,
	eventController *controllers.EventController,
	itineraryController *controllers.ItineraryController,
	assistantController *controllers.AssistantController,
	adminController *controllers.AdminController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, monasteryController, eventController, itineraryController, assistantController, adminController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	monasteryController *controllers.MonasteryController,
	eventController *controllers.EventController,
	itineraryController *controllers.ItineraryController,
	assistantController *controllers.AssistantController,
	adminController *controllers.AdminController) {

	monasteries := r.Group("/monasteries")
	monasteries.GET("", monasteryController.ListMonasteries)
	monasteries.GET("/:id", monasteryController.GetMonasteryByID)

	events := r.Group("/events")
	events.GET("", eventController.ListEvents)
	events.GET("/:id", eventController.GetEventByID)

	itineraries := r.Group("/itineraries")
	itineraries.POST("", itineraryController.CreateItinerary)
	itineraries.GET("/:id", itineraryController.GetItinerary)
	itineraries.POST("/:id/monasteries", itineraryController.AddMonastery)
	itineraries.DELETE("/:id/monasteries/:monasteryId", itineraryController.RemoveMonastery)
	itineraries.POST("/:id/events", itineraryController.AddEvent)
	itineraries.DELETE("/:id/events/:eventId", itineraryController.RemoveEvent)
	itineraries.POST("/:id/reorder", itineraryController.Reorder)
	itineraries.GET("/:id/day-plan", itineraryController.GetDayPlan)
	itineraries.GET("/:id/summary", itineraryController.GetSummary)
	itineraries.GET("/:id/route", itineraryController.GetRoute)
	itineraries.GET("/:id/export/pdf", itineraryController.ExportPDF)

	// Every AI call hits an external provider; keep per-IP buckets on it.
	aiLimiter := middleware.NewRateLimiter(10, 3)
	ai := r.Group("/ai", aiLimiter.Limit())
	ai.POST("/text", assistantController.TextChat)
	ai.POST("/audio", assistantController.AudioChat)
	ai.POST("/image", assistantController.ImageChat)

	admin := r.Group("/admin")
	admin.POST("/login", adminController.Login)
	protected := admin.Group("", middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	protected.POST("/monasteries", adminController.UpsertMonastery)
	protected.PUT("/monasteries/:id", adminController.UpsertMonastery)
	protected.DELETE("/monasteries/:id", adminController.DeleteMonastery)
	protected.POST("/events", adminController.CreateEvent)
	protected.DELETE("/events/:id", adminController.DeleteEvent)
}
