package dto

type CreateFeeCycle struct {
	ClubID       int64   `json:"club_id" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	Message      string  `json:"message,omitempty"`
	Amount       float64 `json:"amount" binding:"required"`
	DueDate      string  `json:"due_date" binding:"required"`
	BankName     string  `json:"bank_name" binding:"required"`
	BankAccount  string  `json:"bank_account" binding:"required"`
	BankHolder   string  `json:"bank_holder" binding:"required"`
	BankMemoRule string  `json:"bank_memo_rule,omitempty"`
}

type UpdateFeeCycle struct {
	Title        string  `json:"title" binding:"required"`
	Message      string  `json:"message,omitempty"`
	Amount       float64 `json:"amount" binding:"required"`
	DueDate      string  `json:"due_date" binding:"required"`
	BankName     string  `json:"bank_name" binding:"required"`
	BankAccount  string  `json:"bank_account" binding:"required"`
	BankHolder   string  `json:"bank_holder" binding:"required"`
	BankMemoRule string  `json:"bank_memo_rule,omitempty"`
}

type ConfirmFeeRequest struct {
	AdminNote string `json:"admin_note,omitempty"`
}
