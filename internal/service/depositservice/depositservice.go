package depositservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/config"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/validate"
)

//go:generate mockgen -source=depositservice.go -destination=depositservice_mock.go -package=depositservice

type DepositRepo interface {
	Create(ctx context.Context, v *domain.DepositVerification) (*domain.DepositVerification, error)
	FindByUserAndTxID(ctx context.Context, userID uuid.UUID, transactionID string) (*domain.DepositVerification, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.DepositVerification, error)
	FindPending(ctx context.Context, limit uint32) ([]domain.DepositVerification, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.DepositVerification, error)
	MarkApproved(ctx context.Context, id uuid.UUID, amount, bonusAmount float64, verifiedAt time.Time) error
	MarkRejected(ctx context.Context, id uuid.UUID) error
}

type Ledger interface {
	ApplyDelta(ctx context.Context, userID uuid.UUID, field domain.BalanceField, delta float64, txType, description string, relatedRigID *uuid.UUID) (*domain.Transaction, error)
}

var (
	ErrInvalidTransactionID = errors.New("invalid transaction id")
	ErrUnknownMethod        = errors.New("unknown payment method")
	ErrVerificationNotFound = errors.New("deposit verification not found")
)

type Service struct {
	depositRepo DepositRepo
	ledger      Ledger
	txManager   pg.TXManager
	rules       config.Rules
}

func New(depositRepo DepositRepo, ledger Ledger, txManager pg.TXManager, rules config.Rules) *Service {
	return &Service{
		depositRepo: depositRepo,
		ledger:      ledger,
		txManager:   txManager,
		rules:       rules,
	}
}

// Submit records a deposit claim for asynchronous verification.
// Submitting an already known transaction id returns the existing
// record unchanged.
func (s *Service) Submit(ctx context.Context, userID uuid.UUID, transactionID, method, currency string, amount float64) (*domain.DepositVerification, error) {
	switch method {
	case domain.MethodPayeer:
		if !validate.IsPayeerID(transactionID) {
			return nil, ErrInvalidTransactionID
		}
	case domain.MethodFaucetPay:
		if !validate.IsFaucetPayHash(transactionID) {
			return nil, ErrInvalidTransactionID
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}

	existing, err := s.depositRepo.FindByUserAndTxID(ctx, userID, transactionID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return s.depositRepo.Create(ctx, &domain.DepositVerification{
		UserID:        userID,
		TransactionID: transactionID,
		Amount:        amount,
		Currency:      currency,
		PaymentMethod: method,
	})
}

// Approve credits a verified deposit: the confirmed amount lands on the
// main balance and the 17% bonus on the bonus balance, each as its own
// ledger entry. The row lock plus the bonus_credited guard make the
// credit happen at most once no matter how often the verifier reports
// the same transaction.
func (s *Service) Approve(ctx context.Context, verificationID uuid.UUID, confirmedAmount float64) error {
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		v, err := s.depositRepo.GetForUpdate(ctx, verificationID)
		if err != nil {
			return err
		}
		if v == nil {
			return ErrVerificationNotFound
		}
		if v.Status != domain.VerificationPending || v.BonusCredited {
			return nil
		}

		bonus := round2(confirmedAmount * s.rules.DepositBonusRate)
		if _, err := s.ledger.ApplyDelta(ctx, v.UserID, domain.BalanceMain, confirmedAmount,
			domain.TxDeposit, fmt.Sprintf("Verified deposit: %s", v.TransactionID), nil); err != nil {
			return err
		}
		if bonus > 0 {
			if _, err := s.ledger.ApplyDelta(ctx, v.UserID, domain.BalanceBonus, bonus,
				domain.TxDepositBonus, fmt.Sprintf("Deposit bonus for %s", v.TransactionID), nil); err != nil {
				return err
			}
		}
		return s.depositRepo.MarkApproved(ctx, verificationID, confirmedAmount, bonus, time.Now())
	})
	if err != nil {
		zap.L().Error("failed to approve deposit",
			zap.String("verificationID", verificationID.String()),
			zap.Error(err))
		return err
	}
	return nil
}

// Reject closes a claim the payment provider could not confirm.
func (s *Service) Reject(ctx context.Context, verificationID uuid.UUID) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		v, err := s.depositRepo.GetForUpdate(ctx, verificationID)
		if err != nil {
			return err
		}
		if v == nil {
			return ErrVerificationNotFound
		}
		if v.Status != domain.VerificationPending {
			return nil
		}
		return s.depositRepo.MarkRejected(ctx, verificationID)
	})
}

func (s *Service) History(ctx context.Context, userID uuid.UUID) ([]domain.DepositVerification, error) {
	return s.depositRepo.FindByUserID(ctx, userID)
}

// Pending lists claims awaiting provider confirmation, oldest first.
func (s *Service) Pending(ctx context.Context, limit uint32) ([]domain.DepositVerification, error) {
	return s.depositRepo.FindPending(ctx, limit)
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
