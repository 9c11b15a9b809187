package ledgerservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

//go:generate mockgen -source=ledgerservice.go -destination=ledgerservice_mock.go -package=ledgerservice

type StateRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.GameState, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.GameState, error)
	Create(ctx context.Context, userID uuid.UUID) (*domain.GameState, error)
	Update(ctx context.Context, state *domain.GameState) error
	UpdateBalance(ctx context.Context, userID uuid.UUID, field domain.BalanceField, value float64) error
}

type TxnRepo interface {
	Create(ctx context.Context, txn *domain.Transaction) (*domain.Transaction, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
	FindAllAscending(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
}

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrLedgerMismatch    = errors.New("ledger does not reproduce recorded balances")
)

// Service is the single write path for account balances. Every credit
// and debit goes through ApplyDelta, which locks the account row,
// rejects overdrafts and appends a transaction with before/after
// snapshots in the same database transaction.
type Service struct {
	stateRepo StateRepo
	txnRepo   TxnRepo
	txManager pg.TXManager
}

func New(stateRepo StateRepo, txnRepo TxnRepo, txManager pg.TXManager) *Service {
	return &Service{
		stateRepo: stateRepo,
		txnRepo:   txnRepo,
		txManager: txManager,
	}
}

func (s *Service) ApplyDelta(
	ctx context.Context,
	userID uuid.UUID,
	field domain.BalanceField,
	delta float64,
	txType string,
	description string,
	relatedRigID *uuid.UUID,
) (*domain.Transaction, error) {
	var created *domain.Transaction

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := s.stateRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if state == nil {
			return ErrAccountNotFound
		}

		before := state.Balance(field)
		after := before + delta
		if after < 0 {
			return fmt.Errorf("%w: %s balance %.8f, delta %.8f", ErrInsufficientFunds, field, before, delta)
		}

		if err := s.stateRepo.UpdateBalance(ctx, userID, field, after); err != nil {
			return err
		}

		created, err = s.txnRepo.Create(ctx, &domain.Transaction{
			UserID:        userID,
			Type:          txType,
			BalanceField:  field,
			Amount:        delta,
			BalanceBefore: before,
			BalanceAfter:  after,
			Description:   description,
			RelatedRigID:  relatedRigID,
		})
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) && !errors.Is(err, ErrAccountNotFound) {
			zap.L().Error("failed to apply balance delta",
				zap.String("userID", userID.String()),
				zap.String("field", string(field)),
				zap.Float64("delta", delta),
				zap.Error(err))
		}
		return nil, err
	}
	return created, nil
}

func (s *Service) Transactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.txnRepo.FindByUserID(ctx, userID, limit, offset)
}

// Replay folds the full transaction history from zero and returns the
// resulting balances. It fails with ErrLedgerMismatch when a recorded
// before/after snapshot disagrees with the running totals, or when the
// final totals disagree with the stored state.
func (s *Service) Replay(ctx context.Context, userID uuid.UUID) (map[domain.BalanceField]float64, error) {
	state, err := s.stateRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, ErrAccountNotFound
	}

	txns, err := s.txnRepo.FindAllAscending(ctx, userID)
	if err != nil {
		return nil, err
	}

	balances := map[domain.BalanceField]float64{
		domain.BalanceMain:  0,
		domain.BalanceBonus: 0,
		domain.BalanceGame:  0,
	}
	for _, txn := range txns {
		running := balances[txn.BalanceField]
		if !near(running, txn.BalanceBefore) {
			return nil, fmt.Errorf("%w: transaction %s expected %s balance %.8f, ledger has %.8f",
				ErrLedgerMismatch, txn.ID, txn.BalanceField, txn.BalanceBefore, running)
		}
		balances[txn.BalanceField] = running + txn.Amount
	}

	for field, want := range map[domain.BalanceField]float64{
		domain.BalanceMain:  state.MainBalance,
		domain.BalanceBonus: state.BonusBalance,
		domain.BalanceGame:  state.CurrentCoins,
	} {
		if !near(balances[field], want) {
			return nil, fmt.Errorf("%w: replayed %s balance %.8f, stored %.8f",
				ErrLedgerMismatch, field, balances[field], want)
		}
	}
	return balances, nil
}

// near absorbs float64 accumulation noise when comparing coin amounts.
func near(a, b float64) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
