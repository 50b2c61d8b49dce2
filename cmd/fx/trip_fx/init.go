package trip_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(
	provideTripRepo,
	provideStopRepo,
	provideActivityRepo,
	provideTripService,
	provideItineraryService)

func provideTripRepo(db *gorm.DB) repositories.TripRepository {
	return repositories.NewTripRepository(db)
}

func provideStopRepo(db *gorm.DB) repositories.StopRepository {
	return repositories.NewStopRepository(db)
}

func provideActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

func provideTripService(tripRepo repositories.TripRepository) services.TripServiceInterface {
	return services.NewTripService(tripRepo)
}

func provideItineraryService(
	tripRepo repositories.TripRepository,
	stopRepo repositories.StopRepository,
	activityRepo repositories.ActivityRepository,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(tripRepo, stopRepo, activityRepo)
}
