package controllers_fx

import (
	"go.uber.org/fx"

	"globetrotter/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewTripsController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewCommunityController),
	fx.Provide(controllers.NewDestinationsController),
	fx.Provide(controllers.NewAIController),
	fx.Provide(controllers.NewProfileController))
