package rigrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

const rigColumns = `id, user_id, rig_name, rig_type, mining_power, efficiency_rating, power_consumption,
	upgrade_level, is_active, rarity, total_coins_mined, purchase_price, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, rig *domain.MiningRig) (*domain.MiningRig, error) {
	query := `
		INSERT INTO mining_rigs (user_id, rig_name, rig_type, mining_power, efficiency_rating, power_consumption, rarity, purchase_price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, upgrade_level, total_coins_mined, created_at
	`
	err := r.db.QueryRow(ctx, query,
		rig.UserID, rig.RigName, rig.RigType, rig.MiningPower, rig.EfficiencyRating,
		rig.PowerConsumption, rig.Rarity, rig.PurchasePrice, rig.IsActive,
	).Scan(&rig.ID, &rig.UpgradeLevel, &rig.TotalCoinsMined, &rig.CreatedAt)
	if err != nil {
		zap.L().Error("failed to create mining rig", zap.Error(err))
		return nil, err
	}
	return rig, nil
}

func (r *Repository) FindByID(ctx context.Context, userID, rigID uuid.UUID) (*domain.MiningRig, error) {
	query := `SELECT ` + rigColumns + ` FROM mining_rigs WHERE id = $1 AND user_id = $2`
	var rig domain.MiningRig
	err := r.db.QueryRow(ctx, query, rigID, userID).Scan(
		&rig.ID, &rig.UserID, &rig.RigName, &rig.RigType, &rig.MiningPower,
		&rig.EfficiencyRating, &rig.PowerConsumption, &rig.UpgradeLevel, &rig.IsActive,
		&rig.Rarity, &rig.TotalCoinsMined, &rig.PurchasePrice, &rig.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get mining rig", zap.Error(err))
		return nil, err
	}
	return &rig, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.MiningRig, error) {
	query := `SELECT ` + rigColumns + ` FROM mining_rigs WHERE user_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch mining rigs", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var rigs []domain.MiningRig
	for rows.Next() {
		var rig domain.MiningRig
		err := rows.Scan(
			&rig.ID, &rig.UserID, &rig.RigName, &rig.RigType, &rig.MiningPower,
			&rig.EfficiencyRating, &rig.PowerConsumption, &rig.UpgradeLevel, &rig.IsActive,
			&rig.Rarity, &rig.TotalCoinsMined, &rig.PurchasePrice, &rig.CreatedAt,
		)
		if err != nil {
			zap.L().Error("failed to scan mining rig row", zap.Error(err))
			return nil, err
		}
		rigs = append(rigs, rig)
	}
	return rigs, nil
}

func (r *Repository) SetActive(ctx context.Context, userID, rigID uuid.UUID, active bool) (bool, error) {
	query := `UPDATE mining_rigs SET is_active = $1 WHERE id = $2 AND user_id = $3`
	tag, err := r.db.Exec(ctx, query, active, rigID, userID)
	if err != nil {
		zap.L().Error("failed to toggle mining rig", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SumActiveHashrate returns Σ(mining_power × efficiency_rating) over the
// account's active rigs, the aggregate used for offline accrual.
func (r *Repository) SumActiveHashrate(ctx context.Context, userID uuid.UUID) (float64, error) {
	query := `
		SELECT COALESCE(SUM(mining_power * efficiency_rating), 0)
		FROM mining_rigs
		WHERE user_id = $1 AND is_active = true
	`
	var hashrate float64
	if err := r.db.QueryRow(ctx, query, userID).Scan(&hashrate); err != nil {
		zap.L().Error("failed to sum active hashrate", zap.Error(err))
		return 0, err
	}
	return hashrate, nil
}
