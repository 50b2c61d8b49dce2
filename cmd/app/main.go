package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/cmd/fx/ai_fx"
	"globetrotter/cmd/fx/community_fx"
	"globetrotter/cmd/fx/controllers_fx"
	"globetrotter/cmd/fx/db_fx"
	"globetrotter/cmd/fx/destination_fx"
	"globetrotter/cmd/fx/profile_fx"
	"globetrotter/cmd/fx/trip_fx"
	"globetrotter/internal/api/controllers"
	"globetrotter/internal/infra"
	"globetrotter/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		trip_fx.Module,
		community_fx.Module,
		destination_fx.Module,
		profile_fx.Module,
		ai_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, db *gorm.DB) {
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
			infra.ClosePostgresql(db)
			return nil
		},
	})
}

func ProvideRouter(
	tripsController *controllers.TripsController,
	itineraryController *controllers.ItineraryController,
	communityController *controllers.CommunityController,
	destinationsController *controllers.DestinationsController,
	aiController *controllers.AIController,
	profileController *controllers.ProfileController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		tripsController,
		itineraryController,
		communityController,
		destinationsController,
		aiController,
		profileController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	itineraryController *controllers.ItineraryController,
	communityController *controllers.CommunityController,
	destinationsController *controllers.DestinationsController,
	aiController *controllers.AIController,
	profileController *controllers.ProfileController) {

	auth := middleware.JWTAuthMiddleware()

	tripsGroup := r.Group("/trips")
	tripsGroup.GET("", auth, tripsController.ListMyTrips)
	tripsGroup.POST("", auth, tripsController.CreateTrip)
	tripsGroup.POST("/copy", auth, tripsController.CopyTrip)
	tripsGroup.GET("/:tripId", middleware.OptionalJWTMiddleware(), tripsController.GetTripDetail)
	tripsGroup.PUT("/:tripId", auth, tripsController.UpdateTrip)
	tripsGroup.DELETE("/:tripId", auth, tripsController.DeleteTrip)
	tripsGroup.POST("/:tripId/visibility", auth, tripsController.SetVisibility)
	tripsGroup.POST("/:tripId/stops", auth, itineraryController.AddStop)
	tripsGroup.POST("/:tripId/stops/reorder", auth, itineraryController.ReorderStops)
	tripsGroup.POST("/:tripId/activities", auth, itineraryController.AddActivity)
	tripsGroup.POST("/:tripId/activities/estimate-costs", auth, itineraryController.FillMissingCosts)

	r.DELETE("/stops/:stopId", auth, itineraryController.RemoveStop)
	r.DELETE("/activities/:activityId", auth, itineraryController.RemoveActivity)

	communityGroup := r.Group("/community")
	communityGroup.GET("/trips", communityController.ListPublicTrips)
	communityGroup.POST("/trips/:tripId/like", auth, communityController.ToggleLike)
	communityGroup.GET("/trips/:tripId/like", communityController.LikeStatus)
	communityGroup.POST("/trips/:tripId/comments", auth, communityController.AddComment)
	communityGroup.GET("/trips/:tripId/comments", communityController.ListComments)

	destinationsGroup := r.Group("/destinations")
	destinationsGroup.GET("", destinationsController.ListDestinations)
	destinationsGroup.GET("/suggest", destinationsController.SuggestDestinations)
	destinationsGroup.POST("/:destinationId/index", auth, destinationsController.IndexDestination)

	aiGroup := r.Group("/ai")
	aiGroup.POST("/overview", aiController.TripOverview)
	aiGroup.POST("/generate-itinerary", aiController.GenerateItinerary)
	aiGroup.POST("/create-trip", auth, aiController.CreateTripFromDraft)

	r.GET("/profile", auth, profileController.GetProfile)
	r.PUT("/profile", auth, profileController.UpdateProfile)
	r.GET("/settings", auth, profileController.GetSettings)
	r.PUT("/settings", auth, profileController.UpdateSettings)
}
