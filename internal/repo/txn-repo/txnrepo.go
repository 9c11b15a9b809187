package txnrepo

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

const txnColumns = `id, seq, user_id, transaction_type, balance_field, amount, balance_before, balance_after,
	description, related_rig_id, status, created_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create appends a ledger record. Rows are immutable once written.
func (r *Repository) Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, transaction_type, balance_field, amount, balance_before, balance_after, description, related_rig_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, seq, created_at
	`
	if txn.Status == "" {
		txn.Status = "completed"
	}
	err := r.db.QueryRow(ctx, query,
		txn.UserID, txn.Type, txn.BalanceField, txn.Amount, txn.BalanceBefore,
		txn.BalanceAfter, txn.Description, txn.RelatedRigID, txn.Status,
	).Scan(&txn.ID, &txn.Seq, &txn.CreatedAt)
	if err != nil {
		zap.L().Error("failed to append transaction", zap.Error(err))
		return nil, err
	}
	return txn, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	query := `
		SELECT ` + txnColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY seq DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		zap.L().Error("failed to fetch transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.Seq, &txn.UserID, &txn.Type, &txn.BalanceField, &txn.Amount,
			&txn.BalanceBefore, &txn.BalanceAfter, &txn.Description, &txn.RelatedRigID,
			&txn.Status, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// FindAllAscending returns the account's full ledger in creation order.
// The sequence column makes that order durable even for rows written in
// the same database transaction, which share created_at.
func (r *Repository) FindAllAscending(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	query := `
		SELECT ` + txnColumns + `
		FROM transactions
		WHERE user_id = $1
		ORDER BY seq ASC
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("failed to fetch ledger for replay", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var txn domain.Transaction
		err := rows.Scan(&txn.ID, &txn.Seq, &txn.UserID, &txn.Type, &txn.BalanceField, &txn.Amount,
			&txn.BalanceBefore, &txn.BalanceAfter, &txn.Description, &txn.RelatedRigID,
			&txn.Status, &txn.CreatedAt)
		if err != nil {
			zap.L().Error("failed to scan transaction row", zap.Error(err))
			return nil, err
		}
		txns = append(txns, txn)
	}
	return txns, nil
}
