package dto

import "time"

type PurchaseRigRequestDTO struct {
	RigType string `json:"rig_type" example:"basic_cpu"`
	RigName string `json:"rig_name" example:"My First Miner"`
}

type MiningRigResponseDTO struct {
	ID               string    `json:"id" example:"7a5bfa74-2a3c-4d52-9a1a-0a3e2d9c1f00"`
	RigName          string    `json:"rig_name" example:"My First Miner"`
	RigType          string    `json:"rig_type" example:"basic_cpu"`
	MiningPower      float64   `json:"mining_power" example:"0.5"`
	EfficiencyRating float64   `json:"efficiency_rating" example:"1"`
	PowerConsumption int       `json:"power_consumption" example:"65"`
	UpgradeLevel     int       `json:"upgrade_level" example:"0"`
	IsActive         bool      `json:"is_active" example:"true"`
	Rarity           string    `json:"rarity" example:"common"`
	TotalCoinsMined  float64   `json:"total_coins_mined" example:"0"`
	PurchasePrice    float64   `json:"purchase_price" example:"100"`
	CreatedAt        time.Time `json:"created_at"`
}

type SetRigActiveRequestDTO struct {
	IsActive bool `json:"is_active" example:"false"`
}

type PurchaseUpgradeRequestDTO struct {
	UpgradeType string `json:"upgrade_type" example:"CLICK_POWER"`
}

type UpgradeResponseDTO struct {
	UpgradeType  string  `json:"upgrade_type" example:"CLICK_POWER"`
	CurrentLevel int     `json:"current_level" example:"1"`
	TotalCost    float64 `json:"total_cost" example:"100"`
	NextCost     float64 `json:"next_cost" example:"115"`
}
