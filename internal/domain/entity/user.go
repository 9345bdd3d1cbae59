package entity

import "time"

type OnboardingType string

const (
	OnboardingOwner  OnboardingType = "owner"
	OnboardingMember OnboardingType = "member"
)

func (t OnboardingType) Valid() bool {
	return t == OnboardingOwner || t == OnboardingMember
}

type User struct {
	ID             int64  `gorm:"primaryKey" json:"id"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"`
	Name           string `gorm:"not null" json:"name"`
	Age            int    `json:"age"`
	OnboardingType OnboardingType `gorm:"type:varchar(16);not null;default:member" json:"onboarding_type"`
	CreatedAt      time.Time      `json:"created_at"`
}
