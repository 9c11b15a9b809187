package profilerepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

const profileColumns = `id, username, full_name, bio, avatar_url, experience_level, total_coins_mined, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Username, &p.FullName, &p.Bio, &p.AvatarURL,
		&p.ExperienceLevel, &p.TotalCoinsMined, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get profile", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, username).Scan(
		&p.ID, &p.Username, &p.FullName, &p.Bio, &p.AvatarURL,
		&p.ExperienceLevel, &p.TotalCoinsMined, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get profile by username", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `
		INSERT INTO profiles (id, username, full_name)
		VALUES ($1, $2, $3)
		RETURNING ` + profileColumns
	var p domain.Profile
	err := r.db.QueryRow(ctx, query, profile.ID, profile.Username, profile.FullName).Scan(
		&p.ID, &p.Username, &p.FullName, &p.Bio, &p.AvatarURL,
		&p.ExperienceLevel, &p.TotalCoinsMined, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		zap.L().Error("failed to create profile", zap.Error(err))
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(ctx context.Context, profile *domain.Profile) error {
	query := `
		UPDATE profiles
		SET username = $1, full_name = $2, bio = $3, avatar_url = $4, updated_at = now()
		WHERE id = $5
	`
	_, err := r.db.Exec(ctx, query, profile.Username, profile.FullName, profile.Bio, profile.AvatarURL, profile.ID)
	if err != nil {
		zap.L().Error("failed to update profile", zap.Error(err))
		return err
	}
	return nil
}

// AddMined accumulates lifetime mining output and experience.
func (r *Repository) AddMined(ctx context.Context, id uuid.UUID, amount float64) error {
	query := `
		UPDATE profiles
		SET total_coins_mined = total_coins_mined + $1, updated_at = now()
		WHERE id = $2
	`
	_, err := r.db.Exec(ctx, query, amount, id)
	if err != nil {
		zap.L().Error("failed to add mined total", zap.Error(err))
		return err
	}
	return nil
}
