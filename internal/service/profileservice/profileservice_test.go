package profileservice

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/config"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

var testRules = config.Rules{
	WelcomeMainGrant: 1000,
	WelcomeGameGrant: 1000,
}

func NewMock(t *testing.T) (*Service, *MockProfileRepo, *MockStateRepo, *MockInstallationRepo, *MockLedger) {
	ctrl := gomock.NewController(t)
	profileRepo := NewMockProfileRepo(ctrl)
	stateRepo := NewMockStateRepo(ctrl)
	installationRepo := NewMockInstallationRepo(ctrl)
	ledger := NewMockLedger(ctrl)
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error { return fn(ctx) },
	).AnyTimes()
	service := New(profileRepo, stateRepo, installationRepo, ledger, txManager, testRules)
	return service, profileRepo, stateRepo, installationRepo, ledger
}

func TestEnsure(t *testing.T) {
	userID := uuid.New()

	t.Run("First contact onboards the account", func(t *testing.T) {
		service, profileRepo, stateRepo, installationRepo, ledger := NewMock(t)
		profileRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, nil)
		profileRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Profile) (*domain.Profile, error) {
				assert.Equal(t, userID, p.ID)
				assert.Equal(t, "miner42", p.Username)
				return p, nil
			})
		stateRepo.EXPECT().Create(gomock.Any(), userID).Return(&domain.GameState{UserID: userID}, nil)
		installationRepo.EXPECT().CreateDefaults(gomock.Any(), userID).Return(nil)
		ledger.EXPECT().ApplyDelta(gomock.Any(), userID, domain.BalanceMain, 1000.0, domain.TxWelcomeBonus, gomock.Any(), nil).
			Return(&domain.Transaction{}, nil)
		ledger.EXPECT().ApplyDelta(gomock.Any(), userID, domain.BalanceGame, 1000.0, domain.TxWelcomeBonus, gomock.Any(), nil).
			Return(&domain.Transaction{}, nil)

		profile, err := service.Ensure(context.Background(), userID, "miner42")
		assert.NoError(t, err)
		assert.Equal(t, userID, profile.ID)
	})

	t.Run("Known account returned as-is", func(t *testing.T) {
		service, profileRepo, _, _, _ := NewMock(t)
		existing := &domain.Profile{ID: userID, Username: "miner42"}
		profileRepo.EXPECT().FindByID(gomock.Any(), userID).Return(existing, nil)

		profile, err := service.Ensure(context.Background(), userID, "someone-else")
		assert.NoError(t, err)
		assert.Equal(t, "miner42", profile.Username)
	})
}

func TestGet(t *testing.T) {
	userID := uuid.New()

	t.Run("Unknown profile", func(t *testing.T) {
		service, profileRepo, _, _, _ := NewMock(t)
		profileRepo.EXPECT().FindByID(gomock.Any(), userID).Return(nil, nil)

		_, err := service.Get(context.Background(), userID)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestUpdate(t *testing.T) {
	userID := uuid.New()

	t.Run("Only provided fields change", func(t *testing.T) {
		service, profileRepo, _, _, _ := NewMock(t)
		current := &domain.Profile{ID: userID, Username: "miner42", Bio: "old"}
		profileRepo.EXPECT().FindByID(gomock.Any(), userID).Return(current, nil)
		profileRepo.EXPECT().Update(gomock.Any(), current).Return(nil)

		got, err := service.Update(context.Background(), &domain.Profile{ID: userID, Bio: "new bio"})
		assert.NoError(t, err)
		assert.Equal(t, "miner42", got.Username)
		assert.Equal(t, "new bio", got.Bio)
	})

	t.Run("Taken username rejected", func(t *testing.T) {
		service, profileRepo, _, _, _ := NewMock(t)
		current := &domain.Profile{ID: userID, Username: "miner42"}
		other := &domain.Profile{ID: uuid.New(), Username: "rival"}
		profileRepo.EXPECT().FindByID(gomock.Any(), userID).Return(current, nil)
		profileRepo.EXPECT().FindByUsername(gomock.Any(), "rival").Return(other, nil)

		_, err := service.Update(context.Background(), &domain.Profile{ID: userID, Username: "rival"})
		assert.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("Renaming to the same username is a no-op check", func(t *testing.T) {
		service, profileRepo, _, _, _ := NewMock(t)
		current := &domain.Profile{ID: userID, Username: "miner42"}
		profileRepo.EXPECT().FindByID(gomock.Any(), userID).Return(current, nil)
		profileRepo.EXPECT().Update(gomock.Any(), current).Return(nil)

		got, err := service.Update(context.Background(), &domain.Profile{ID: userID, Username: "miner42"})
		assert.NoError(t, err)
		assert.Equal(t, "miner42", got.Username)
	})
}
