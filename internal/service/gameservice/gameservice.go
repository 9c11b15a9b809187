package gameservice

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
)

//go:generate mockgen -source=gameservice.go -destination=gameservice_mock.go -package=gameservice

type StateRepo interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.GameState, error)
	GetForUpdate(ctx context.Context, userID uuid.UUID) (*domain.GameState, error)
	Update(ctx context.Context, state *domain.GameState) error
}

type RigRepo interface {
	SumActiveHashrate(ctx context.Context, userID uuid.UUID) (float64, error)
}

type ProfileRepo interface {
	AddMined(ctx context.Context, id uuid.UUID, amount float64) error
}

type Ledger interface {
	ApplyDelta(ctx context.Context, userID uuid.UUID, field domain.BalanceField, delta float64, txType, description string, relatedRigID *uuid.UUID) (*domain.Transaction, error)
}

var (
	ErrStateNotFound      = errors.New("game state not found")
	ErrInsufficientEnergy = errors.New("insufficient energy")
	ErrBadClickCount      = errors.New("click count must be positive")
)

type ClickResult struct {
	Reward      float64
	Energy      float64
	TotalClicks int64
	Balance     float64
}

type OfflineResult struct {
	Amount   float64
	Hours    float64
	Hashrate float64
}

type Service struct {
	stateRepo   StateRepo
	rigRepo     RigRepo
	profileRepo ProfileRepo
	ledger      Ledger
	txManager   pg.TXManager
	rules       config.Rules
}

func New(stateRepo StateRepo, rigRepo RigRepo, profileRepo ProfileRepo, ledger Ledger, txManager pg.TXManager, rules config.Rules) *Service {
	return &Service{
		stateRepo:   stateRepo,
		rigRepo:     rigRepo,
		profileRepo: profileRepo,
		ledger:      ledger,
		txManager:   txManager,
		rules:       rules,
	}
}

// regenerate moves the energy anchor to now, crediting the energy that
// accrued since the previous anchor at the account's regen rate.
func regenerate(state *domain.GameState, now time.Time) {
	elapsed := now.Sub(state.LastEnergyUpdateAt).Minutes()
	if elapsed > 0 {
		state.Energy += elapsed * state.EnergyRegenRate
		if state.Energy > state.MaxEnergy {
			state.Energy = state.MaxEnergy
		}
	}
	state.LastEnergyUpdateAt = now
}

// State returns the account's game state with energy regeneration
// settled up to now.
func (s *Service) State(ctx context.Context, userID uuid.UUID) (*domain.GameState, error) {
	var state *domain.GameState

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		state, err = s.stateRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if state == nil {
			return ErrStateNotFound
		}
		regenerate(state, time.Now())
		return s.stateRepo.Update(ctx, state)
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// Click settles a batch of clicks: one energy per click, reward scaled
// by the account's click power. The whole batch is rejected when energy
// does not cover it.
func (s *Service) Click(ctx context.Context, userID uuid.UUID, count int) (*ClickResult, error) {
	if count < 1 {
		return nil, ErrBadClickCount
	}

	var result *ClickResult
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := s.stateRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if state == nil {
			return ErrStateNotFound
		}

		regenerate(state, time.Now())
		cost := float64(count)
		if state.Energy < cost {
			return fmt.Errorf("%w: have %.2f, need %.2f", ErrInsufficientEnergy, state.Energy, cost)
		}

		state.Energy -= cost
		state.TotalClicks += int64(count)
		if err := s.stateRepo.Update(ctx, state); err != nil {
			return err
		}

		reward := float64(count) * state.ClickPower * s.rules.BaseClickRate
		txn, err := s.ledger.ApplyDelta(ctx, userID, domain.BalanceGame, reward,
			domain.TxClickReward, fmt.Sprintf("Click reward for %d clicks", count), nil)
		if err != nil {
			return err
		}
		if err := s.profileRepo.AddMined(ctx, userID, reward); err != nil {
			return err
		}

		result = &ClickResult{
			Reward:      reward,
			Energy:      state.Energy,
			TotalClicks: state.TotalClicks,
			Balance:     txn.BalanceAfter,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// SettleOfflineRewards credits mining earned since the session anchor
// and unconditionally moves the anchor to now, so a repeated call earns
// nothing extra. Accrual is capped at the configured hour window.
func (s *Service) SettleOfflineRewards(ctx context.Context, userID uuid.UUID) (*OfflineResult, error) {
	var result *OfflineResult

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := s.stateRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if state == nil {
			return ErrStateNotFound
		}

		now := time.Now()
		regenerate(state, now)

		result = &OfflineResult{}
		if state.MiningSessionStartAt != nil {
			hours := now.Sub(*state.MiningSessionStartAt).Hours()
			if hours > s.rules.OfflineCapHours {
				hours = s.rules.OfflineCapHours
			}
			if hours > 0 {
				hashrate, err := s.rigRepo.SumActiveHashrate(ctx, userID)
				if err != nil {
					return err
				}
				result.Hours = hours
				result.Hashrate = hashrate
				result.Amount = math.Round(hashrate*hours*s.rules.OfflineRate*10000) / 10000
			}
		}

		state.MiningSessionStartAt = &now
		if err := s.stateRepo.Update(ctx, state); err != nil {
			return err
		}

		if result.Amount > 0 {
			if _, err := s.ledger.ApplyDelta(ctx, userID, domain.BalanceMain, result.Amount,
				domain.TxOfflineReward, fmt.Sprintf("Offline mining for %.2f hours", result.Hours), nil); err != nil {
				return err
			}
			if err := s.profileRepo.AddMined(ctx, userID, result.Amount); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrStateNotFound) {
			zap.L().Error("failed to settle offline rewards", zap.String("userID", userID.String()), zap.Error(err))
		}
		return nil, err
	}
	return result, nil
}

// UpdateSettings stores the client's opaque settings blob.
func (s *Service) UpdateSettings(ctx context.Context, userID uuid.UUID, settings []byte) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		state, err := s.stateRepo.GetForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if state == nil {
			return ErrStateNotFound
		}
		state.GameSettings = settings
		return s.stateRepo.Update(ctx, state)
	})
}
