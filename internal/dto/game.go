package dto

import "encoding/json"

type GameStateResponseDTO struct {
	CurrentLevel     int             `json:"current_level" example:"1"`
	ExperiencePoints int64           `json:"experience_points" example:"0"`
	CurrentCoins     float64         `json:"current_coins" example:"1000"`
	MainBalance      float64         `json:"main_balance" example:"1000"`
	BonusBalance     float64         `json:"bonus_balance" example:"8.5"`
	Energy           float64         `json:"energy" example:"100"`
	MaxEnergy        float64         `json:"max_energy" example:"100"`
	EnergyRegenRate  float64         `json:"energy_regen_rate" example:"1"`
	ClickPower       float64         `json:"click_power" example:"1"`
	AutoMiningRate   float64         `json:"auto_mining_rate" example:"0"`
	TotalClicks      int64           `json:"total_clicks" example:"42"`
	GameSettings     json.RawMessage `json:"game_settings,omitempty"`
}

type ClickRequestDTO struct {
	Count int `json:"count" example:"5"`
}

type ClickResponseDTO struct {
	Reward      float64 `json:"reward" example:"0.5"`
	Energy      float64 `json:"energy" example:"95"`
	TotalClicks int64   `json:"total_clicks" example:"47"`
	Balance     float64 `json:"balance" example:"1000.5"`
}

type OfflineRewardsResponseDTO struct {
	Amount   float64 `json:"amount" example:"4.8"`
	Hours    float64 `json:"hours" example:"24"`
	Hashrate float64 `json:"hashrate" example:"2"`
}

type UpdateSettingsRequestDTO struct {
	GameSettings json.RawMessage `json:"game_settings"`
}
