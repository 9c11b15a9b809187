package profilerepo

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

var profileColumnNames = []string{
	"id", "username", "full_name", "bio", "avatar_url", "experience_level", "total_coins_mined", "created_at", "updated_at",
}

func profileRow(id uuid.UUID, username string, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(profileColumnNames).
		AddRow(id, username, "", "", "", 1, 0.0, now, now)
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	now := time.Now()

	query := regexp.QuoteMeta(`SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Existing profile returned",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnRows(profileRow(id, "miner42", now))
			},
		},
		{
			name: "Unknown account returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			p, err := repo.FindByID(context.Background(), id)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, p)
			} else {
				assert.NotNil(t, p)
				assert.Equal(t, "miner42", p.Username)
			}
		})
	}
}

func TestRepository_FindByUsername(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	now := time.Now()

	query := regexp.QuoteMeta(`SELECT ` + profileColumns + ` FROM profiles WHERE username = $1`)

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
	}{
		{
			name: "Taken username found",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("miner42").WillReturnRows(profileRow(id, "miner42", now))
			},
		},
		{
			name: "Free username returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs("miner42").WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			p, err := repo.FindByUsername(context.Background(), "miner42")

			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, p)
			} else {
				assert.NotNil(t, p)
				assert.Equal(t, id, p.ID)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	now := time.Now()

	query := regexp.QuoteMeta(`
		INSERT INTO profiles (id, username, full_name)
		VALUES ($1, $2, $3)
		RETURNING ` + profileColumns)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Profile created",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id, "miner42", "").
					WillReturnRows(profileRow(id, "miner42", now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id, "miner42", "").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			p, err := repo.Create(context.Background(), &domain.Profile{ID: id, Username: "miner42"})

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, p)
				assert.Equal(t, id, p.ID)
				assert.Equal(t, 1, p.ExperienceLevel)
			}
		})
	}
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	query := regexp.QuoteMeta(`
		UPDATE profiles
		SET username = $1, full_name = $2, bio = $3, avatar_url = $4, updated_at = now()
		WHERE id = $5
	`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Profile updated",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("miner42", "Max", "digging", "https://cdn/avatar.png", id).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs("miner42", "Max", "digging", "https://cdn/avatar.png", id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.Update(context.Background(), &domain.Profile{
				ID:        id,
				Username:  "miner42",
				FullName:  "Max",
				Bio:       "digging",
				AvatarURL: "https://cdn/avatar.png",
			})

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_AddMined(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	query := regexp.QuoteMeta(`
		UPDATE profiles
		SET total_coins_mined = total_coins_mined + $1, updated_at = now()
		WHERE id = $2
	`)

	mock.ExpectExec(query).WithArgs(4.8, id).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.AddMined(context.Background(), id, 4.8)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
