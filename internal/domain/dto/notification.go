package dto

type ClubNotice struct {
	ClubID  int64  `json:"club_id" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// BroadcastResult reports what one fan-out wrote.
type BroadcastResult struct {
	BatchID    string `json:"batch_id,omitempty"`
	Recipients int    `json:"recipients"`
}
