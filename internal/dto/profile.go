package dto

import "time"

type EnsureProfileRequestDTO struct {
	Username string `json:"username" example:"miner42"`
}

type ProfileResponseDTO struct {
	ID              string    `json:"id" example:"7a5bfa74-2a3c-4d52-9a1a-0a3e2d9c1f00"`
	Username        string    `json:"username" example:"miner42"`
	FullName        string    `json:"full_name" example:"Max L."`
	Bio             string    `json:"bio,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	ExperienceLevel int       `json:"experience_level" example:"1"`
	TotalCoinsMined float64   `json:"total_coins_mined" example:"123.4"`
	CreatedAt       time.Time `json:"created_at"`
}

type UpdateProfileRequestDTO struct {
	Username  string `json:"username,omitempty" example:"miner42"`
	FullName  string `json:"full_name,omitempty" example:"Max L."`
	Bio       string `json:"bio,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type InstallationResponseDTO struct {
	RackID         int     `json:"rack_id" example:"1"`
	RackType       string  `json:"rack_type" example:"compact"`
	Owned          bool    `json:"owned" example:"true"`
	TotalHashrate  float64 `json:"total_hashrate" example:"0"`
	TotalPowerDraw int     `json:"total_power_consumption" example:"0"`
}
