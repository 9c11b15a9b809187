package upgradeservice

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/config"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

//go:generate mockgen -source=upgradeservice.go -destination=upgradeservice_mock.go -package=upgradeservice

type UpgradeRepo interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Upgrade, error)
	FindForUpdate(ctx context.Context, userID uuid.UUID, upgradeType string) (*domain.Upgrade, error)
	Upsert(ctx context.Context, userID uuid.UUID, upgradeType string, level int, totalCost float64) error
}

type StateRepo interface {
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.GameState, error)
	Update(ctx context.Context, state *domain.GameState) error
}

type Ledger interface {
	ApplyDelta(ctx context.Context, userID uuid.UUID, field domain.BalanceField, delta float64, txType, description string, relatedRigID *uuid.UUID) (*domain.Transaction, error)
}

// Upgrade types purchasable on every account.
const (
	TypeClickPower  string = "CLICK_POWER"
	TypeMaxEnergy   string = "MAX_ENERGY"
	TypeEnergyRegen string = "ENERGY_REGEN"
	TypeAutoMining  string = "AUTO_MINING"
)

// Per-level stat gains.
const (
	clickPowerStep  = 1.0
	maxEnergyStep   = 25.0
	energyRegenStep = 0.5
	autoMiningStep  = 0.25
)

var (
	ErrUnknownUpgradeType = errors.New("unknown upgrade type")
	ErrMaxLevelReached    = errors.New("upgrade already at max level")
	ErrStateNotFound      = errors.New("game state not found")
)

type PurchaseResult struct {
	Upgrade  domain.Upgrade
	Price    float64
	NextCost float64
}

type Service struct {
	upgradeRepo UpgradeRepo
	stateRepo   StateRepo
	ledger      Ledger
	txManager   pg.TXManager
	rules       config.Rules
}

func New(upgradeRepo UpgradeRepo, stateRepo StateRepo, ledger Ledger, txManager pg.TXManager, rules config.Rules) *Service {
	return &Service{
		upgradeRepo: upgradeRepo,
		stateRepo:   stateRepo,
		ledger:      ledger,
		txManager:   txManager,
		rules:       rules,
	}
}

// PriceAt returns the cost of buying the next level when the upgrade is
// currently at the given level.
func (s *Service) PriceAt(level int) float64 {
	return s.rules.UpgradeBasePrice * math.Pow(s.rules.UpgradeGrowth, float64(level))
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.Upgrade, error) {
	return s.upgradeRepo.FindByUserID(ctx, userID)
}

// Purchase buys the next level of an upgrade: the geometric price is
// debited from the main balance, the level row is upserted and the stat
// gain lands on the game state, all in one transaction.
func (s *Service) Purchase(ctx context.Context, userID uuid.UUID, upgradeType string) (*PurchaseResult, error) {
	if !validType(upgradeType) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownUpgradeType, upgradeType)
	}

	var result *PurchaseResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.upgradeRepo.FindForUpdate(ctx, userID, upgradeType)
		if err != nil {
			return err
		}

		level := 0
		totalCost := 0.0
		if current != nil {
			level = current.CurrentLevel
			totalCost = current.TotalCost
		}
		if level >= s.rules.UpgradeMaxLevel {
			return ErrMaxLevelReached
		}

		price := s.PriceAt(level)
		if _, err := s.ledger.ApplyDelta(ctx, userID, domain.BalanceMain, -price,
			domain.TxUpgrade, fmt.Sprintf("Upgrade %s to level %d", upgradeType, level+1), nil); err != nil {
			return err
		}

		if err := s.upgradeRepo.Upsert(ctx, userID, upgradeType, level+1, totalCost+price); err != nil {
			return err
		}

		state, err := s.stateRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if state == nil {
			return ErrStateNotFound
		}
		applyEffect(state, upgradeType)
		if err := s.stateRepo.Update(ctx, state); err != nil {
			return err
		}

		result = &PurchaseResult{
			Upgrade: domain.Upgrade{
				UserID:       userID,
				UpgradeType:  upgradeType,
				CurrentLevel: level + 1,
				TotalCost:    totalCost + price,
			},
			Price:    price,
			NextCost: s.PriceAt(level + 1),
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrMaxLevelReached) {
			zap.L().Warn("upgrade purchase failed",
				zap.String("userID", userID.String()),
				zap.String("upgradeType", upgradeType),
				zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

func validType(upgradeType string) bool {
	switch upgradeType {
	case TypeClickPower, TypeMaxEnergy, TypeEnergyRegen, TypeAutoMining:
		return true
	}
	return false
}

func applyEffect(state *domain.GameState, upgradeType string) {
	switch upgradeType {
	case TypeClickPower:
		state.ClickPower += clickPowerStep
	case TypeMaxEnergy:
		state.MaxEnergy += maxEnergyStep
	case TypeEnergyRegen:
		state.EnergyRegenRate += energyRegenStep
	case TypeAutoMining:
		state.AutoMiningRate += autoMiningStep
	}
}
