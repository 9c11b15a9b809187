package upgradeservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/config"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/ledgerservice"
)

var testRules = config.Rules{
	UpgradeBasePrice: 100,
	UpgradeGrowth:    1.15,
	UpgradeMaxLevel:  50,
}

func NewMock(t *testing.T) (*Service, *MockUpgradeRepo, *MockStateRepo, *MockLedger) {
	ctrl := gomock.NewController(t)
	upgradeRepo := NewMockUpgradeRepo(ctrl)
	stateRepo := NewMockStateRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) },
	).AnyTimes()
	service := New(upgradeRepo, stateRepo, ledger, txManager, testRules)
	return service, upgradeRepo, stateRepo, ledger
}

func TestPriceAt(t *testing.T) {
	service, _, _, _ := NewMock(t)

	assert.Equal(t, 100.0, service.PriceAt(0))
	assert.InDelta(t, 115.0, service.PriceAt(1), 1e-9)
	assert.InDelta(t, 152.0875, service.PriceAt(3), 1e-9)
}

func TestPurchase(t *testing.T) {
	userID := uuid.New()

	t.Run("First level bought at base price", func(t *testing.T) {
		service, upgradeRepo, stateRepo, ledger := NewMock(t)
		state := &domain.GameState{UserID: userID, ClickPower: 1}
		upgradeRepo.EXPECT().FindForUpdate(gomock.Any(), userID, TypeClickPower).Return(nil, nil)
		ledger.EXPECT().ApplyDelta(gomock.Any(), userID, domain.BalanceMain, -100.0, domain.TxUpgrade, gomock.Any(), nil).
			Return(&domain.Transaction{}, nil)
		upgradeRepo.EXPECT().Upsert(gomock.Any(), userID, TypeClickPower, 1, 100.0).Return(nil)
		stateRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(state, nil)
		stateRepo.EXPECT().Update(gomock.Any(), state).Return(nil)

		result, err := service.Purchase(context.Background(), userID, TypeClickPower)
		assert.NoError(t, err)
		assert.Equal(t, 100.0, result.Price)
		assert.Equal(t, 1, result.Upgrade.CurrentLevel)
		assert.InDelta(t, 115.0, result.NextCost, 1e-9)
		assert.Equal(t, 2.0, state.ClickPower)
	})

	t.Run("Price grows with the current level", func(t *testing.T) {
		service, upgradeRepo, stateRepo, ledger := NewMock(t)
		state := &domain.GameState{UserID: userID, MaxEnergy: 100}
		current := &domain.Upgrade{UserID: userID, UpgradeType: TypeMaxEnergy, CurrentLevel: 3, TotalCost: 367.25}
		price := service.PriceAt(3)
		upgradeRepo.EXPECT().FindForUpdate(gomock.Any(), userID, TypeMaxEnergy).Return(current, nil)
		ledger.EXPECT().ApplyDelta(gomock.Any(), userID, domain.BalanceMain, -price, domain.TxUpgrade, gomock.Any(), nil).
			Return(&domain.Transaction{}, nil)
		upgradeRepo.EXPECT().Upsert(gomock.Any(), userID, TypeMaxEnergy, 4, 367.25+price).Return(nil)
		stateRepo.EXPECT().GetForUpdate(gomock.Any(), userID).Return(state, nil)
		stateRepo.EXPECT().Update(gomock.Any(), state).Return(nil)

		result, err := service.Purchase(context.Background(), userID, TypeMaxEnergy)
		assert.NoError(t, err)
		assert.InDelta(t, 152.0875, result.Price, 1e-9)
		assert.Equal(t, 4, result.Upgrade.CurrentLevel)
		assert.Equal(t, 125.0, state.MaxEnergy)
	})

	t.Run("Max level blocks further purchases", func(t *testing.T) {
		service, upgradeRepo, _, _ := NewMock(t)
		current := &domain.Upgrade{UserID: userID, UpgradeType: TypeAutoMining, CurrentLevel: 50}
		upgradeRepo.EXPECT().FindForUpdate(gomock.Any(), userID, TypeAutoMining).Return(current, nil)

		_, err := service.Purchase(context.Background(), userID, TypeAutoMining)
		assert.ErrorIs(t, err, ErrMaxLevelReached)
	})

	t.Run("Insufficient funds surfaces the ledger error", func(t *testing.T) {
		service, upgradeRepo, _, ledger := NewMock(t)
		upgradeRepo.EXPECT().FindForUpdate(gomock.Any(), userID, TypeEnergyRegen).Return(nil, nil)
		ledger.EXPECT().ApplyDelta(gomock.Any(), userID, domain.BalanceMain, -100.0, domain.TxUpgrade, gomock.Any(), nil).
			Return(nil, ledgerservice.ErrInsufficientFunds)

		_, err := service.Purchase(context.Background(), userID, TypeEnergyRegen)
		assert.ErrorIs(t, err, ledgerservice.ErrInsufficientFunds)
	})

	t.Run("Unknown type rejected before touching storage", func(t *testing.T) {
		service, _, _, _ := NewMock(t)

		_, err := service.Purchase(context.Background(), userID, "WARP_DRIVE")
		assert.ErrorIs(t, err, ErrUnknownUpgradeType)
	})
}
