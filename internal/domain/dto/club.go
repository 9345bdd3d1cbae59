package dto

type CreateClub struct {
	Name         string `json:"name" binding:"required"`
	FoundedAt    string `json:"founded_at,omitempty"`
	WatermarkURL string `json:"watermark_url,omitempty"`
	Description  string `json:"description,omitempty"`
}

type UpdateClub struct {
	Name         string `json:"name,omitempty"`
	FoundedAt    string `json:"founded_at,omitempty"`
	WatermarkURL string `json:"watermark_url,omitempty"`
	Description  string `json:"description,omitempty"`
}

type UpdateOnboardingType struct {
	OnboardingType string `json:"onboarding_type" binding:"required"`
}
