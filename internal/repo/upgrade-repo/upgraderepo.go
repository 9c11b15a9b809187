package upgraderepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Upgrade, error) {
	query := `
		SELECT id, user_id, upgrade_type, current_level, total_cost, updated_at
		FROM upgrades
		WHERE user_id = $1
		ORDER BY upgrade_type ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch upgrades", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var upgrades []domain.Upgrade
	for rows.Next() {
		var u domain.Upgrade
		if err := rows.Scan(&u.ID, &u.UserID, &u.UpgradeType, &u.CurrentLevel, &u.TotalCost, &u.UpdatedAt); err != nil {
			zap.L().Error("failed to scan upgrade row", zap.Error(err))
			return nil, err
		}
		upgrades = append(upgrades, u)
	}
	return upgrades, nil
}

// FindForUpdate locks the (account, type) upgrade row; nil when the
// upgrade has never been purchased.
func (r *Repository) FindForUpdate(ctx context.Context, userID uuid.UUID, upgradeType string) (*domain.Upgrade, error) {
	query := `
		SELECT id, user_id, upgrade_type, current_level, total_cost, updated_at
		FROM upgrades
		WHERE user_id = $1 AND upgrade_type = $2
		FOR UPDATE
	`
	var u domain.Upgrade
	err := r.db.QueryRow(ctx, query, userID, upgradeType).Scan(
		&u.ID, &u.UserID, &u.UpgradeType, &u.CurrentLevel, &u.TotalCost, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock upgrade", zap.Error(err))
		return nil, err
	}
	return &u, nil
}

// Upsert records a purchased level. The unique (user_id, upgrade_type)
// constraint keeps one row per upgrade type.
func (r *Repository) Upsert(ctx context.Context, userID uuid.UUID, upgradeType string, level int, totalCost float64) error {
	query := `
		INSERT INTO upgrades (user_id, upgrade_type, current_level, total_cost)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, upgrade_type)
		DO UPDATE SET current_level = $3, total_cost = $4, updated_at = now()
	`
	_, err := r.db.Exec(ctx, query, userID, upgradeType, level, totalCost)
	if err != nil {
		zap.L().Error("failed to upsert upgrade", zap.Error(err))
		return err
	}
	return nil
}
