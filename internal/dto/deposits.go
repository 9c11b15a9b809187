package dto

import "time"

type SubmitDepositRequestDTO struct {
	TransactionID string  `json:"transaction_id" example:"2043922915"`
	PaymentMethod string  `json:"payment_method" example:"payeer"`
	Currency      string  `json:"currency" example:"USD"`
	Amount        float64 `json:"amount" example:"50"`
}

type DepositResponseDTO struct {
	TransactionID string     `json:"transaction_id" example:"2043922915"`
	PaymentMethod string     `json:"payment_method" example:"payeer"`
	Currency      string     `json:"currency" example:"USD"`
	Amount        float64    `json:"amount" example:"50"`
	Status        string     `json:"status" example:"pending"`
	BonusAmount   float64    `json:"bonus_amount" example:"8.5"`
	CreatedAt     time.Time  `json:"created_at"`
	VerifiedAt    *time.Time `json:"verified_at,omitempty"`
}
