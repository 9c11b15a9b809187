package installationrepo

import (
	"context"

	"github.com/google/uuid"
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

// CreateDefaults seeds the four rack slots a fresh account starts with.
// The first rack is owned from the start, the rest are locked.
func (r *Repository) CreateDefaults(ctx context.Context, userID uuid.UUID) error {
	query := `
		INSERT INTO mining_installations (user_id, rack_id, rack_type, owned)
		VALUES
			($1, 1, 'compact', true),
			($1, 2, 'standard', false),
			($1, 3, 'pro', false),
			($1, 4, 'elite', false)
		ON CONFLICT (user_id, rack_id) DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to seed mining installations", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.MiningInstallation, error) {
	query := `
		SELECT id, user_id, rack_id, rack_type, owned, total_hashrate, total_power_consumption, created_at
		FROM mining_installations
		WHERE user_id = $1
		ORDER BY rack_id
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch mining installations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var installations []domain.MiningInstallation
	for rows.Next() {
		var in domain.MiningInstallation
		err := rows.Scan(&in.ID, &in.UserID, &in.RackID, &in.RackType, &in.Owned,
			&in.TotalHashrate, &in.TotalPowerDraw, &in.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan mining installation row", zap.Error(err))
			return nil, err
		}
		installations = append(installations, in)
	}
	return installations, nil
}
