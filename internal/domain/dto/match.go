package dto

type CreateMatch struct {
	ClubID      int64  `json:"club_id" binding:"required"`
	MatchDate   string `json:"match_date" binding:"required"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

type SetAttendance struct {
	Status string `json:"status" binding:"required"`
}

type CreateJoinRequest struct {
	ClubID int64 `json:"club_id" binding:"required"`
}
