package entity

import "time"

type Match struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	ClubID      int64     `gorm:"not null;index:idx_matches_club" json:"club_id"`
	MatchDate   time.Time `gorm:"not null" json:"match_date"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedBy   *int64    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`

	Club       *Club             `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE" json:"club,omitempty"`
	Attendance []MatchAttendance `gorm:"foreignKey:MatchID" json:"attendance,omitempty"`
}

type AttendanceStatus string

const (
	AttendanceYes       AttendanceStatus = "yes"
	AttendanceNo        AttendanceStatus = "no"
	AttendanceUndecided AttendanceStatus = "undecided"
)

func (s AttendanceStatus) Valid() bool {
	return s == AttendanceYes || s == AttendanceNo || s == AttendanceUndecided
}

type MatchAttendance struct {
	ID        int64            `gorm:"primaryKey" json:"id"`
	MatchID   int64            `gorm:"not null;uniqueIndex:idx_match_attendance_pair" json:"match_id"`
	UserID    int64            `gorm:"not null;uniqueIndex:idx_match_attendance_pair;index:idx_match_attendance_user" json:"user_id"`
	Status    AttendanceStatus `gorm:"type:varchar(16);not null;default:undecided" json:"status"`
	UpdatedAt time.Time        `json:"updated_at"`

	Match *Match `gorm:"foreignKey:MatchID;constraint:OnDelete:CASCADE" json:"match,omitempty"`
	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}
