package entity

import "time"

type NotificationType string

const (
	NotificationJoinRequest  NotificationType = "join_request"
	NotificationJoinApproved NotificationType = "join_approved"
	NotificationJoinRejected NotificationType = "join_rejected"
	NotificationClubNotice   NotificationType = "club_notice"
	NotificationMatchCreated NotificationType = "match_created"
)

// NotificationOrigin tags who a row is for: recipient rows are the
// fan-out copies delivered to members, audit rows are the issuing
// admin's own record of a broadcast. is_read stays a genuine read flag
// for both kinds instead of doubling as the discriminator.
type NotificationOrigin string

const (
	OriginRecipient NotificationOrigin = "recipient"
	OriginAudit     NotificationOrigin = "audit"
)

type Notification struct {
	ID        int64              `gorm:"primaryKey" json:"id"`
	UserID    int64              `gorm:"not null;index:idx_notifications_user" json:"user_id"`
	Type      NotificationType   `gorm:"type:varchar(32);not null" json:"type"`
	Message   string             `gorm:"not null" json:"message"`
	Origin    NotificationOrigin `gorm:"type:varchar(16);not null;default:recipient" json:"origin"`
	IsRead    bool               `gorm:"not null;default:false" json:"is_read"`
	// BatchID groups all rows written by one broadcast.
	BatchID   string    `gorm:"type:varchar(36);index:idx_notifications_batch" json:"batch_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
