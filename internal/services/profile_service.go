package services

import (
	"context"

	"github.com/google/uuid"
	dbm "globetrotter/internal/models/db_models"
	req "globetrotter/internal/models/request_models"
	resp "globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type ProfileServiceInterface interface {
	GetProfile(ctx context.Context, userID string) (*resp.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, request req.UpdateProfileRequest) error
	GetSettings(ctx context.Context, userID string) (*resp.SettingsResponse, error)
	UpdateSettings(ctx context.Context, userID string, request req.UpdateSettingsRequest) error
}

type ProfileService struct {
	profileRepo repositories.ProfileRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository) ProfileServiceInterface {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile returns an empty profile rather than an error when the user
// has never filled one in.
func (s *ProfileService) GetProfile(ctx context.Context, userID string) (*resp.ProfileResponse, error) {
	user, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	profile, err := s.profileRepo.GetProfileByUserID(ctx, user)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if profile == nil {
		return &resp.ProfileResponse{UserID: userID}, nil
	}

	return &resp.ProfileResponse{
		UserID:      profile.UserID.String(),
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		AvatarURL:   profile.AvatarURL,
		Location:    profile.Location,
	}, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, request req.UpdateProfileRequest) error {
	user, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrUnauthenticated
	}

	profile := dbm.UserProfile{
		UserID:      user,
		DisplayName: request.DisplayName,
		Bio:         request.Bio,
		AvatarURL:   request.AvatarURL,
		Location:    request.Location,
	}
	if err := s.profileRepo.UpsertProfile(ctx, &profile); err != nil {
		return utils.ErrWriteFailed
	}
	return nil
}

// GetSettings falls back to the documented defaults when the user has
// never saved settings.
func (s *ProfileService) GetSettings(ctx context.Context, userID string) (*resp.SettingsResponse, error) {
	user, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrUnauthenticated
	}

	settings, err := s.profileRepo.GetSettingsByUserID(ctx, user)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if settings == nil {
		return &resp.SettingsResponse{
			EmailNotifications:   true,
			PushNotifications:    true,
			PrivacyPublicProfile: true,
			Language:             "en",
			Timezone:             "UTC",
		}, nil
	}

	return &resp.SettingsResponse{
		EmailNotifications:   settings.EmailNotifications,
		PushNotifications:    settings.PushNotifications,
		PrivacyPublicProfile: settings.PrivacyPublicProfile,
		Language:             settings.Language,
		Timezone:             settings.Timezone,
	}, nil
}

func (s *ProfileService) UpdateSettings(ctx context.Context, userID string, request req.UpdateSettingsRequest) error {
	user, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrUnauthenticated
	}

	current, err := s.GetSettings(ctx, userID)
	if err != nil {
		return err
	}

	settings := dbm.UserSettings{
		UserID:               user,
		EmailNotifications:   current.EmailNotifications,
		PushNotifications:    current.PushNotifications,
		PrivacyPublicProfile: current.PrivacyPublicProfile,
		Language:             current.Language,
		Timezone:             current.Timezone,
	}
	if request.EmailNotifications != nil {
		settings.EmailNotifications = *request.EmailNotifications
	}
	if request.PushNotifications != nil {
		settings.PushNotifications = *request.PushNotifications
	}
	if request.PrivacyPublicProfile != nil {
		settings.PrivacyPublicProfile = *request.PrivacyPublicProfile
	}
	if request.Language != nil {
		settings.Language = *request.Language
	}
	if request.Timezone != nil {
		settings.Timezone = *request.Timezone
	}

	if err := s.profileRepo.UpsertSettings(ctx, &settings); err != nil {
		return utils.ErrWriteFailed
	}
	return nil
}
