package depositrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

const verificationColumns = `id, user_id, transaction_id, amount, currency, payment_method, status,
	bonus_amount, bonus_credited, created_at, verified_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func scanVerification(row pg.RowScanner) (*domain.DepositVerification, error) {
	var v domain.DepositVerification
	err := row.Scan(
		&v.ID, &v.UserID, &v.TransactionID, &v.Amount, &v.Currency, &v.PaymentMethod,
		&v.Status, &v.BonusAmount, &v.BonusCredited, &v.CreatedAt, &v.VerifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository) Create(ctx context.Context, v *domain.DepositVerification) (*domain.DepositVerification, error) {
	query := `
		INSERT INTO transaction_verifications (user_id, transaction_id, amount, currency, payment_method, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + verificationColumns
	created, err := scanVerification(r.db.QueryRow(ctx, query,
		v.UserID, v.TransactionID, v.Amount, v.Currency, v.PaymentMethod, domain.VerificationPending,
	))
	if err != nil {
		zap.L().Error("failed to create deposit verification", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *Repository) FindByUserAndTxID(ctx context.Context, userID uuid.UUID, transactionID string) (*domain.DepositVerification, error) {
	query := `SELECT ` + verificationColumns + ` FROM transaction_verifications WHERE user_id = $1 AND transaction_id = $2`
	v, err := scanVerification(r.db.QueryRow(ctx, query, userID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to find deposit verification", zap.Error(err))
		return nil, err
	}
	return v, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.DepositVerification, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM transaction_verifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch deposit verifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var verifications []domain.DepositVerification
	for rows.Next() {
		var v domain.DepositVerification
		err := rows.Scan(&v.ID, &v.UserID, &v.TransactionID, &v.Amount, &v.Currency,
			&v.PaymentMethod, &v.Status, &v.BonusAmount, &v.BonusCredited, &v.CreatedAt, &v.VerifiedAt)
		if err != nil {
			zap.L().Error("failed to scan deposit verification row", zap.Error(err))
			return nil, err
		}
		verifications = append(verifications, v)
	}
	return verifications, nil
}

// FindPending returns the oldest unresolved verifications for the poller.
func (r *Repository) FindPending(ctx context.Context, limit uint32) ([]domain.DepositVerification, error) {
	query := `
		SELECT ` + verificationColumns + `
		FROM transaction_verifications
		WHERE status = 'pending'
		ORDER BY created_at ASC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, int(limit))
	if err != nil {
		zap.L().Error("failed to fetch pending verifications", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var verifications []domain.DepositVerification
	for rows.Next() {
		var v domain.DepositVerification
		err := rows.Scan(&v.ID, &v.UserID, &v.TransactionID, &v.Amount, &v.Currency,
			&v.PaymentMethod, &v.Status, &v.BonusAmount, &v.BonusCredited, &v.CreatedAt, &v.VerifiedAt)
		if err != nil {
			zap.L().Error("failed to scan pending verification row", zap.Error(err))
			return nil, err
		}
		verifications = append(verifications, v)
	}
	return verifications, nil
}

// GetForUpdate locks a verification row so approval can be guarded
// against double crediting.
func (r *Repository) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.DepositVerification, error) {
	query := `SELECT ` + verificationColumns + ` FROM transaction_verifications WHERE id = $1 FOR UPDATE`
	v, err := scanVerification(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to lock deposit verification", zap.Error(err))
		return nil, err
	}
	return v, nil
}

func (r *Repository) MarkApproved(ctx context.Context, id uuid.UUID, amount, bonusAmount float64, verifiedAt time.Time) error {
	query := `
		UPDATE transaction_verifications
		SET status = 'approved', amount = $1, bonus_amount = $2, bonus_credited = true, verified_at = $3
		WHERE id = $4
	`
	_, err := r.db.Exec(ctx, query, amount, bonusAmount, verifiedAt, id)
	if err != nil {
		zap.L().Error("failed to mark verification approved", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkRejected(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE transaction_verifications
		SET status = 'rejected', verified_at = now()
		WHERE id = $1
	`
	_, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("failed to mark verification rejected", zap.Error(err))
		return err
	}
	return nil
}
