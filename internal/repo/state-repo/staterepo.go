package staterepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

const stateColumns = `id, user_id, current_level, experience_points, current_coins, main_balance, bonus_balance,
	energy, max_energy, energy_regen_rate, click_power, auto_mining_rate, total_clicks, game_settings,
	last_energy_update_at, mining_session_start_at, last_login_reward_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanState(row pg.RowScanner) (*domain.GameState, error) {
	var state domain.GameState
	err := row.Scan(
		&state.ID, &state.UserID, &state.CurrentLevel, &state.ExperiencePoints,
		&state.CurrentCoins, &state.MainBalance, &state.BonusBalance,
		&state.Energy, &state.MaxEnergy, &state.EnergyRegenRate,
		&state.ClickPower, &state.AutoMiningRate, &state.TotalClicks,
		&state.GameSettings, &state.LastEnergyUpdateAt,
		&state.MiningSessionStartAt, &state.LastLoginRewardAt,
	)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (r *Repository) Get(ctx context.Context, userID uuid.UUID) (*domain.GameState, error) {
	query := `SELECT ` + stateColumns + ` FROM game_states WHERE user_id = $1`
	state, err := scanState(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get game state", zap.Error(err))
		return nil, err
	}
	return state, nil
}

// GetForUpdate locks the account's state row for the rest of the enclosing
// transaction. Per-account operations serialize on this lock.
func (r *Repository) GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.GameState, error) {
	query := `SELECT ` + stateColumns + ` FROM game_states WHERE user_id = $1 FOR UPDATE`
	state, err := scanState(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock game state", zap.Error(err))
		return nil, err
	}
	return state, nil
}

func (r *Repository) Create(ctx context.Context, userID uuid.UUID) (*domain.GameState, error) {
	query := `
		INSERT INTO game_states (user_id)
		VALUES ($1)
		RETURNING ` + stateColumns
	state, err := scanState(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("failed to create game state", zap.Error(err))
		return nil, err
	}
	return state, nil
}

// Update persists the gameplay fields. Balance columns are written only by
// UpdateBalance so that every balance mutation stays on the ledger path.
func (r *Repository) Update(ctx context.Context, state *domain.GameState) error {
	query := `
		UPDATE game_states
		SET current_level = $1, experience_points = $2, energy = $3, max_energy = $4,
			energy_regen_rate = $5, click_power = $6, auto_mining_rate = $7, total_clicks = $8,
			game_settings = $9, last_energy_update_at = $10, mining_session_start_at = $11,
			last_login_reward_at = $12
		WHERE user_id = $13
	`
	_, err := r.db.Exec(ctx, query,
		state.CurrentLevel, state.ExperiencePoints, state.Energy, state.MaxEnergy,
		state.EnergyRegenRate, state.ClickPower, state.AutoMiningRate, state.TotalClicks,
		state.GameSettings, state.LastEnergyUpdateAt, state.MiningSessionStartAt,
		state.LastLoginRewardAt, state.UserID,
	)
	if err != nil {
		zap.L().Error("failed to update game state", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateBalance(ctx context.Context, userID uuid.UUID, field domain.BalanceField, value float64) error {
	var column string
	switch field {
	case domain.BalanceMain:
		column = "main_balance"
	case domain.BalanceBonus:
		column = "bonus_balance"
	case domain.BalanceGame:
		column = "current_coins"
	default:
		return fmt.Errorf("unknown balance field: %s", field)
	}

	query := `UPDATE game_states SET ` + column + ` = $1 WHERE user_id = $2`
	_, err := r.db.Exec(ctx, query, value, userID)
	if err != nil {
		zap.L().Error("failed to update balance", zap.String("field", string(field)), zap.Error(err))
		return err
	}
	return nil
}
