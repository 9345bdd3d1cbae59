package entity

import "time"

type Club struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"uniqueIndex;not null" json:"name"`
	FoundedAt    *time.Time `json:"founded_at,omitempty"`
	WatermarkURL string     `json:"watermark_url,omitempty"`
	Description  string     `json:"description,omitempty"`
	// A user administers at most one club.
	AdminUserID int64     `gorm:"uniqueIndex;not null" json:"admin_user_id"`
	CreatedAt   time.Time `json:"created_at"`

	AdminUser *User `gorm:"foreignKey:AdminUserID" json:"admin_user,omitempty"`
}
