package dto

import "time"

type TransactionResponseDTO struct {
	ID            string    `json:"id" example:"7a5bfa74-2a3c-4d52-9a1a-0a3e2d9c1f00"`
	Type          string    `json:"transaction_type" example:"click_reward"`
	BalanceField  string    `json:"balance_field" example:"game"`
	Amount        float64   `json:"amount" example:"0.5"`
	BalanceBefore float64   `json:"balance_before" example:"1000"`
	BalanceAfter  float64   `json:"balance_after" example:"1000.5"`
	Description   string    `json:"description" example:"Click reward for 5 clicks"`
	RelatedRigID  string    `json:"related_rig_id,omitempty"`
	CreatedAt     time.Time `json:"created_at" example:"2025-01-09T16:09:57+03:00"`
}

type TransactionListResponseDTO struct {
	Transactions []TransactionResponseDTO `json:"transactions"`
	Count        int                      `json:"count" example:"2"`
}

type ReplayResponseDTO struct {
	Main  float64 `json:"main" example:"1000"`
	Bonus float64 `json:"bonus" example:"8.5"`
	Game  float64 `json:"game" example:"1004.8"`
}
