package response_models

type ProfileResponse struct {
	UserID      string  `json:"user_id"`
	DisplayName string  `json:"display_name"`
	Bio         *string `json:"bio,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Location    *string `json:"location,omitempty"`
}

type SettingsResponse struct {
	EmailNotifications   bool   `json:"email_notifications"`
	PushNotifications    bool   `json:"push_notifications"`
	PrivacyPublicProfile bool   `json:"privacy_public_profile"`
	Language             string `json:"language"`
	Timezone             string `json:"timezone"`
}
