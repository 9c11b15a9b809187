package rigrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var rigColumnNames = []string{
	"id", "user_id", "rig_name", "rig_type", "mining_power", "efficiency_rating", "power_consumption",
	"upgrade_level", "is_active", "rarity", "total_coins_mined", "purchase_price", "created_at",
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	userID := uuid.New()

	query := regexp.QuoteMeta(`
		INSERT INTO mining_rigs (user_id, rig_name, rig_type, mining_power, efficiency_rating, power_consumption, rarity, purchase_price, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, upgrade_level, total_coins_mined, created_at
	`)

	t.Run("Rig persisted with generated fields", func(t *testing.T) {
		rig := &domain.MiningRig{
			UserID:           userID,
			RigName:          "My quad",
			RigType:          "quad_core",
			MiningPower:      2.0,
			EfficiencyRating: 1.1,
			PowerConsumption: 125,
			Rarity:           "uncommon",
			PurchasePrice:    500,
			IsActive:         true,
		}
		mock.ExpectQuery(query).
			WithArgs(userID, "My quad", "quad_core", 2.0, 1.1, 125, "uncommon", 500.0, true).
			WillReturnRows(pgxmock.NewRows([]string{"id", "upgrade_level", "total_coins_mined", "created_at"}).
				AddRow(id, 0, 0.0, time.Now()))

		created, err := repo.Create(context.Background(), rig)
		assert.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.True(t, created.IsActive)
	})

	t.Run("Database error", func(t *testing.T) {
		rig := &domain.MiningRig{UserID: userID, RigType: "quad_core"}
		mock.ExpectQuery(query).
			WithArgs(userID, "", "quad_core", 0.0, 0.0, 0, "", 0.0, false).
			WillReturnError(errors.New("database error"))

		created, err := repo.Create(context.Background(), rig)
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	rigID := uuid.New()
	userID := uuid.New()

	query := regexp.QuoteMeta(`SELECT ` + rigColumns + ` FROM mining_rigs WHERE id = $1 AND user_id = $2`)

	t.Run("Owned rig returned", func(t *testing.T) {
		rows := pgxmock.NewRows(rigColumnNames).
			AddRow(rigID, userID, "My quad", "quad_core", 2.0, 1.1, 125, 0, true, "uncommon", 0.0, 500.0, time.Now())
		mock.ExpectQuery(query).WithArgs(rigID, userID).WillReturnRows(rows)

		rig, err := repo.FindByID(context.Background(), userID, rigID)
		assert.NoError(t, err)
		assert.Equal(t, "quad_core", rig.RigType)
	})

	t.Run("Missing rig returns nil", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(rigID, userID).WillReturnError(pgx.ErrNoRows)

		rig, err := repo.FindByID(context.Background(), userID, rigID)
		assert.NoError(t, err)
		assert.Nil(t, rig)
	})
}

func TestRepository_SetActive(t *testing.T) {
	repo, mock := NewMock(t)
	rigID := uuid.New()
	userID := uuid.New()

	query := regexp.QuoteMeta(`UPDATE mining_rigs SET is_active = $1 WHERE id = $2 AND user_id = $3`)

	t.Run("Owned rig toggled", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(false, rigID, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.SetActive(context.Background(), userID, rigID, false)
		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("Unknown rig reports no rows", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(true, rigID, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.SetActive(context.Background(), userID, rigID, true)
		assert.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestRepository_SumActiveHashrate(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	query := regexp.QuoteMeta(`
		SELECT COALESCE(SUM(mining_power * efficiency_rating), 0)
		FROM mining_rigs
		WHERE user_id = $1 AND is_active = true
	`)

	t.Run("Active rigs aggregated", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(7.7))

		hashrate, err := repo.SumActiveHashrate(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, 7.7, hashrate)
	})

	t.Run("No active rigs", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(0.0))

		hashrate, err := repo.SumActiveHashrate(context.Background(), userID)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, hashrate)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("database error"))

		_, err := repo.SumActiveHashrate(context.Background(), userID)
		assert.Error(t, err)
	})
}
