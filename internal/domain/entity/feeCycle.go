package entity

import "time"

// FeeCycle is one billing round for a club. Creating a cycle fans out
// one FeeRequest per member active at creation time.
type FeeCycle struct {
	ID           int64     `gorm:"primaryKey" json:"id"`
	ClubID       int64     `gorm:"not null;index:idx_fee_cycles_club" json:"club_id"`
	Title        string    `gorm:"not null" json:"title"`
	Message      string    `json:"message,omitempty"`
	Amount       float64   `gorm:"not null" json:"amount"`
	DueDate      time.Time `gorm:"not null" json:"due_date"`
	BankName     string    `gorm:"not null" json:"bank_name"`
	BankAccount  string    `gorm:"not null" json:"bank_account"`
	BankHolder   string    `gorm:"not null" json:"bank_holder"`
	BankMemoRule string    `json:"bank_memo_rule,omitempty"`
	CreatedBy    int64     `gorm:"not null" json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`

	Club        *Club        `gorm:"foreignKey:ClubID;constraint:OnDelete:CASCADE" json:"club,omitempty"`
	FeeRequests []FeeRequest `gorm:"foreignKey:FeeCycleID" json:"fee_requests,omitempty"`
}
