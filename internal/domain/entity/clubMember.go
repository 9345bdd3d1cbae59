package entity

import "time"

type ClubRole string

const (
	RoleAdmin  ClubRole = "admin"
	RoleMember ClubRole = "member"
)

type MemberStatus string

const (
	MemberActive MemberStatus = "active"
	MemberLeft   MemberStatus = "left"
)

// ClubMember is one membership of a user in a club. The unique
// (club_id, user_id) index is the sole guard against duplicate-join
// races: concurrent inserts for the same pair collide there and the
// loser is absorbed as an idempotent no-op.
type ClubMember struct {
	ID       int64        `gorm:"primaryKey" json:"id"`
	ClubID   int64        `gorm:"not null;uniqueIndex:idx_club_members_pair;index:idx_club_members_club" json:"club_id"`
	UserID   int64        `gorm:"not null;uniqueIndex:idx_club_members_pair;index:idx_club_members_user" json:"user_id"`
	Role     ClubRole     `gorm:"type:varchar(16);not null;default:member" json:"role"`
	Status   MemberStatus `gorm:"type:varchar(16);not null;default:active" json:"status"`
	JoinedAt time.Time    `json:"joined_at"`

	Club *Club `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE" json:"club,omitempty"`
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
