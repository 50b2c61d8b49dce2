package request_models

type UpdateProfileRequest struct {
	DisplayName string  `json:"display_name" binding:"required"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url"`
	Location    *string `json:"location"`
}

type UpdateSettingsRequest struct {
	EmailNotifications   *bool   `json:"email_notifications"`
	PushNotifications    *bool   `json:"push_notifications"`
	PrivacyPublicProfile *bool   `json:"privacy_public_profile"`
	Language             *string `json:"language"`
	Timezone             *string `json:"timezone"`
}
