package domain

import (
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID              uuid.UUID `db:"id"`
	Username        string    `db:"username"`
	FullName        string    `db:"full_name"`
	Bio             string    `db:"bio"`
	AvatarURL       string    `db:"avatar_url"`
	ExperienceLevel int       `db:"experience_level"`
	TotalCoinsMined float64   `db:"total_coins_mined"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// BalanceField selects which of the three account balances a ledger
// operation mutates.
type BalanceField string

const (
	BalanceMain  BalanceField = "main"
	BalanceBonus BalanceField = "bonus"
	BalanceGame  BalanceField = "game"
)

type GameState struct {
	ID                   uuid.UUID  `db:"id"`
	UserID               uuid.UUID  `db:"user_id"`
	CurrentLevel         int        `db:"current_level"`
	ExperiencePoints     int64      `db:"experience_points"`
	CurrentCoins         float64    `db:"current_coins"`
	MainBalance          float64    `db:"main_balance"`
	BonusBalance         float64    `db:"bonus_balance"`
	Energy               float64    `db:"energy"`
	MaxEnergy            float64    `db:"max_energy"`
	EnergyRegenRate      float64    `db:"energy_regen_rate"`
	ClickPower           float64    `db:"click_power"`
	AutoMiningRate       float64    `db:"auto_mining_rate"`
	TotalClicks          int64      `db:"total_clicks"`
	GameSettings         []byte     `db:"game_settings"`
	LastEnergyUpdateAt   time.Time  `db:"last_energy_update_at"`
	MiningSessionStartAt *time.Time `db:"mining_session_start_at"`
	LastLoginRewardAt    *time.Time `db:"last_login_reward_at"`
}

// Balance returns the value of the selected balance field.
func (s *GameState) Balance(field BalanceField) float64 {
	switch field {
	case BalanceMain:
		return s.MainBalance
	case BalanceBonus:
		return s.BonusBalance
	default:
		return s.CurrentCoins
	}
}

// SetBalance overwrites the selected balance field.
func (s *GameState) SetBalance(field BalanceField, value float64) {
	switch field {
	case BalanceMain:
		s.MainBalance = value
	case BalanceBonus:
		s.BonusBalance = value
	default:
		s.CurrentCoins = value
	}
}

type MiningRig struct {
	ID               uuid.UUID `db:"id"`
	UserID           uuid.UUID `db:"user_id"`
	RigName          string    `db:"rig_name"`
	RigType          string    `db:"rig_type"`
	MiningPower      float64   `db:"mining_power"`
	EfficiencyRating float64   `db:"efficiency_rating"`
	PowerConsumption int       `db:"power_consumption"`
	UpgradeLevel     int       `db:"upgrade_level"`
	IsActive         bool      `db:"is_active"`
	Rarity           string    `db:"rarity"`
	TotalCoinsMined  float64   `db:"total_coins_mined"`
	PurchasePrice    float64   `db:"purchase_price"`
	CreatedAt        time.Time `db:"created_at"`
}

type Upgrade struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	UpgradeType  string    `db:"upgrade_type"`
	CurrentLevel int       `db:"current_level"`
	TotalCost    float64   `db:"total_cost"`
	UpdatedAt    time.Time `db:"updated_at"`
}

type Transaction struct {
	ID            uuid.UUID    `db:"id"`
	Seq           int64        `db:"seq"`
	UserID        uuid.UUID    `db:"user_id"`
	Type          string       `db:"transaction_type"`
	BalanceField  BalanceField `db:"balance_field"`
	Amount        float64      `db:"amount"`
	BalanceBefore float64      `db:"balance_before"`
	BalanceAfter  float64      `db:"balance_after"`
	Description   string       `db:"description"`
	RelatedRigID  *uuid.UUID   `db:"related_rig_id"`
	Status        string       `db:"status"`
	CreatedAt     time.Time    `db:"created_at"`
}

// Transaction types recorded by the ledger.
const (
	TxMiningReward  string = "mining_reward"
	TxClickReward   string = "click_reward"
	TxPurchase      string = "purchase"
	TxUpgrade       string = "upgrade"
	TxDeposit       string = "deposit"
	TxDepositBonus  string = "deposit_bonus"
	TxOfflineReward string = "offline_reward"
	TxWelcomeBonus  string = "welcome_bonus"
)

type DepositVerification struct {
	ID            uuid.UUID  `db:"id"`
	UserID        uuid.UUID  `db:"user_id"`
	TransactionID string     `db:"transaction_id"`
	Amount        float64    `db:"amount"`
	Currency      string     `db:"currency"`
	PaymentMethod string     `db:"payment_method"`
	Status        string     `db:"status"`
	BonusAmount   float64    `db:"bonus_amount"`
	BonusCredited bool       `db:"bonus_credited"`
	CreatedAt     time.Time  `db:"created_at"`
	VerifiedAt    *time.Time `db:"verified_at"`
}

// Deposit verification lifecycle: pending rows are picked up by the
// verifier; an approved row has credited its bonus exactly once.
const (
	VerificationPending  string = "pending"
	VerificationApproved string = "approved"
	VerificationRejected string = "rejected"
)

// Payment providers accepted for deposit verification.
const (
	MethodPayeer    string = "payeer"
	MethodFaucetPay string = "faucetpay"
)

type MiningInstallation struct {
	ID             uuid.UUID `db:"id"`
	UserID         uuid.UUID `db:"user_id"`
	RackID         int       `db:"rack_id"`
	RackType       string    `db:"rack_type"`
	Owned          bool      `db:"owned"`
	TotalHashrate  float64   `db:"total_hashrate"`
	TotalPowerDraw int       `db:"total_power_consumption"`
	CreatedAt      time.Time `db:"created_at"`
}
