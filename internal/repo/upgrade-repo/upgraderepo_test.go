package upgraderepo

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
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var upgradeColumnNames = []string{"id", "user_id", "upgrade_type", "current_level", "total_cost", "updated_at"}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	query := regexp.QuoteMeta(`
		SELECT id, user_id, upgrade_type, current_level, total_cost, updated_at
		FROM upgrades
		WHERE user_id = $1
		ORDER BY upgrade_type ASC
	`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Purchased upgrades returned",
			mockSetup: func() {
				rows := pgxmock.NewRows(upgradeColumnNames).
					AddRow(uuid.New(), userID, "click_power", 3, 347.25, now).
					AddRow(uuid.New(), userID, "max_energy", 1, 100.0, now)
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
			},
			expectLen: 2,
		},
		{
			name: "No upgrades yet",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(upgradeColumnNames))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			upgrades, err := repo.FindByUserID(context.Background(), userID)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, upgrades, tt.expectLen)
			if tt.expectLen > 0 {
				assert.Equal(t, "click_power", upgrades[0].UpgradeType)
				assert.Equal(t, 3, upgrades[0].CurrentLevel)
			}
		})
	}
}

func TestRepository_FindForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	query := regexp.QuoteMeta(`
		SELECT id, user_id, upgrade_type, current_level, total_cost, updated_at
		FROM upgrades
		WHERE user_id = $1 AND upgrade_type = $2
		FOR UPDATE
	`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Existing row locked",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID, "click_power").
					WillReturnRows(pgxmock.NewRows(upgradeColumnNames).
						AddRow(uuid.New(), userID, "click_power", 3, 347.25, now))
			},
		},
		{
			name: "Never purchased returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID, "click_power").WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID, "click_power").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			u, err := repo.FindForUpdate(context.Background(), userID, "click_power")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, u)
			} else {
				assert.NotNil(t, u)
				assert.Equal(t, 347.25, u.TotalCost)
			}
		})
	}
}

func TestRepository_Upsert(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()

	query := regexp.QuoteMeta(`
		INSERT INTO upgrades (user_id, upgrade_type, current_level, total_cost)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, upgrade_type)
		DO UPDATE SET current_level = $3, total_cost = $4, updated_at = now()
	`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Level recorded",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(userID, "click_power", 4, 499.3375).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(userID, "click_power", 4, 499.3375).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Upsert(context.Background(), userID, "click_power", 4, 499.3375)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
