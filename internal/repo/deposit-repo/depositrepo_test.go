package depositrepo

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

var verificationColumnNames = []string{
	"id", "user_id", "transaction_id", "amount", "currency", "payment_method", "status",
	"bonus_amount", "bonus_credited", "created_at", "verified_at",
}

func verificationRow(id, userID uuid.UUID, txID, status string, now time.Time) *pgxmock.Rows {
	return pgxmock.NewRows(verificationColumnNames).
		AddRow(id, userID, txID, 25.5, "USD", "payeer", status,
			0.0, false, now, (*time.Time)(nil))
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	userID := uuid.New()
	now := time.Now()

	query := regexp.QuoteMeta(`
		INSERT INTO transaction_verifications (user_id, transaction_id, amount, currency, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + verificationColumns)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Pending claim recorded",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, "79927398713", 25.5, "USD", "payeer", domain.VerificationPending).
					WillReturnRows(verificationRow(id, userID, "79927398713", domain.VerificationPending, now))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(userID, "79927398713", 25.5, "USD", "payeer", domain.VerificationPending).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			created, err := repo.Create(context.Background(), &domain.DepositVerification{
				UserID:        userID,
				TransactionID: "79927398713",
				Amount:        25.5,
				Currency:      "USD",
				PaymentMethod: "payeer",
			})

			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, created)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, created)
				assert.Equal(t, id, created.ID)
				assert.Equal(t, domain.VerificationPending, created.Status)
			}
		})
	}
}

func TestRepository_FindByUserAndTxID(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	userID := uuid.New()
	now := time.Now()

	query := regexp.QuoteMeta(`SELECT ` + verificationColumns + ` FROM transaction_verifications WHERE user_id = $1 AND transaction_id = $2`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectNil bool
	}{
		{
			name: "Existing claim returned",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID, "79927398713").
					WillReturnRows(verificationRow(id, userID, "79927398713", domain.VerificationPending, now))
			},
		},
		{
			name: "Unknown claim returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID, "79927398713").WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID, "79927398713").WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			v, err := repo.FindByUserAndTxID(context.Background(), userID, "79927398713")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			if tt.expectNil {
				assert.Nil(t, v)
			} else {
				assert.NotNil(t, v)
				assert.Equal(t, "79927398713", v.TransactionID)
			}
		})
	}
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	query := regexp.QuoteMeta(`
		SELECT ` + verificationColumns + `
		FROM transaction_verifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Claims returned newest first",
			mockSetup: func() {
				rows := pgxmock.NewRows(verificationColumnNames).
					AddRow(uuid.New(), userID, "79927398713", 25.5, "USD", "payeer", domain.VerificationApproved,
						4.34, true, now, &now).
					AddRow(uuid.New(), userID, "2404815702", 10.0, "USD", "payeer", domain.VerificationPending,
						0.0, false, now.Add(-time.Hour), (*time.Time)(nil))
				mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
			},
			expectLen: 2,
		},
		{
			name: "No claims",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(verificationColumnNames))
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
			claims, err := repo.FindByUserID(context.Background(), userID)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, claims, tt.expectLen)
			if tt.expectLen > 0 {
				assert.Equal(t, domain.VerificationApproved, claims[0].Status)
			}
		})
	}
}

func TestRepository_FindPending(t *testing.T) {
	repo, mock := NewMock(t)
	userID := uuid.New()
	now := time.Now()

	query := regexp.QuoteMeta(`
		SELECT ` + verificationColumns + `
		FROM transaction_verifications
		WHERE status = 'pending'
		ORDER BY created_at ASC
		LIMIT $1
	`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		expectLen int
	}{
		{
			name: "Pending claims returned",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(50).
					WillReturnRows(verificationRow(uuid.New(), userID, "79927398713", domain.VerificationPending, now))
			},
			expectLen: 1,
		},
		{
			name: "Nothing pending",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(50).
					WillReturnRows(pgxmock.NewRows(verificationColumnNames))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(50).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			claims, err := repo.FindPending(context.Background(), 50)

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, claims, tt.expectLen)
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	userID := uuid.New()
	now := time.Now()

	query := regexp.QuoteMeta(`SELECT ` + verificationColumns + ` FROM transaction_verifications WHERE id = $1 FOR UPDATE`)

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
	}{
		{
			name: "Row locked",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).
					WillReturnRows(verificationRow(id, userID, "79927398713", domain.VerificationPending, now))
			},
		},
		{
			name: "Unknown id returns nil",
			mockSetup: func() {
				mock.ExpectQuery(query).WithArgs(id).WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			v, err := repo.GetForUpdate(context.Background(), id)

			assert.NoError(t, err)
			if tt.expectNil {
				assert.Nil(t, v)
			} else {
				assert.NotNil(t, v)
				assert.Equal(t, id, v.ID)
			}
		})
	}
}

func TestRepository_MarkApproved(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()
	verifiedAt := time.Now()

	query := regexp.QuoteMeta(`
		UPDATE transaction_verifications
		SET status = 'approved', amount = $1, bonus_amount = $2, bonus_credited = true, verified_at = $3
		WHERE id = $4
	`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Approval persisted",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(25.5, 4.34, verifiedAt, id).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).WithArgs(25.5, 4.34, verifiedAt, id).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.MarkApproved(context.Background(), id, 25.5, 4.34, verifiedAt)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_MarkRejected(t *testing.T) {
	repo, mock := NewMock(t)
	id := uuid.New()

	query := regexp.QuoteMeta(`
		UPDATE transaction_verifications
		SET status = 'rejected', verified_at = now()
		WHERE id = $1
	`)

	mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.MarkRejected(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
