package community_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"globetrotter/internal/repositories"
	"globetrotter/internal/services"
)

var Module = fx.Provide(
	provideCommunityRepo,
	provideCommunityService)

func provideCommunityRepo(db *gorm.DB) repositories.CommunityRepository {
	return repositories.NewCommunityRepository(db)
}

func provideCommunityService(
	tripRepo repositories.TripRepository,
	communityRepo repositories.CommunityRepository,
) services.CommunityServiceInterface {
	return services.NewCommunityService(tripRepo, communityRepo)
}
