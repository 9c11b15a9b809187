package profileservice

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/config"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

//go:generate mockgen -source=profileservice.go -destination=profileservice_mock.go -package=profileservice

type ProfileRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	FindByUsername(ctx context.Context, username string) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	AddMined(ctx context.Context, id uuid.UUID, amount float64) error
}

type StateRepo interface {
	Create(ctx context.Context, userID uuid.UUID) (*domain.GameState, error)
}

type InstallationRepo interface {
	CreateDefaults(ctx context.Context, userID uuid.UUID) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.MiningInstallation, error)
}

type Ledger interface {
	ApplyDelta(ctx context.Context, userID uuid.UUID, field domain.BalanceField, delta float64, txType, description string, relatedRigID *uuid.UUID) (*domain.Transaction, error)
}

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUsernameTaken   = errors.New("username already taken")
)

type Service struct {
	profileRepo      ProfileRepo
	stateRepo        StateRepo
	installationRepo InstallationRepo
	ledger           Ledger
	txManager        pg.TXManager
	rules            config.Rules
}

func New(profileRepo ProfileRepo, stateRepo StateRepo, installationRepo InstallationRepo, ledger Ledger, txManager pg.TXManager, rules config.Rules) *Service {
	return &Service{
		profileRepo:      profileRepo,
		stateRepo:        stateRepo,
		installationRepo: installationRepo,
		ledger:           ledger,
		txManager:        txManager,
		rules:            rules,
	}
}

// Ensure onboards the account on first contact: profile, game state,
// rack slots and the welcome grants are created in one transaction.
// The grants go through the ledger so a replay from zero still
// reproduces the starting balances. An already onboarded account is
// returned as-is.
func (s *Service) Ensure(ctx context.Context, userID uuid.UUID, username string) (*domain.Profile, error) {
	existing, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	var profile *domain.Profile
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		profile, err = s.profileRepo.Create(ctx, &domain.Profile{
			ID:       userID,
			Username: username,
		})
		if err != nil {
			return err
		}
		if _, err := s.stateRepo.Create(ctx, userID); err != nil {
			return err
		}
		if err := s.installationRepo.CreateDefaults(ctx, userID); err != nil {
			return err
		}

		if s.rules.WelcomeMainGrant > 0 {
			if _, err := s.ledger.ApplyDelta(ctx, userID, domain.BalanceMain, s.rules.WelcomeMainGrant,
				domain.TxWelcomeBonus, "Welcome grant", nil); err != nil {
				return err
			}
		}
		if s.rules.WelcomeGameGrant > 0 {
			if _, err := s.ledger.ApplyDelta(ctx, userID, domain.BalanceGame, s.rules.WelcomeGameGrant,
				domain.TxWelcomeBonus, "Welcome grant", nil); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		zap.L().Error("failed to onboard account", zap.String("userID", userID.String()), zap.Error(err))
		return nil, err
	}
	return profile, nil
}

func (s *Service) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *Service) Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	current, err := s.profileRepo.FindByID(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrProfileNotFound
	}

	if profile.Username != "" && profile.Username != current.Username {
		taken, err := s.profileRepo.FindByUsername(ctx, profile.Username)
		if err != nil {
			return nil, err
		}
		if taken != nil && taken.ID != profile.ID {
			return nil, ErrUsernameTaken
		}
		current.Username = profile.Username
	}
	if profile.FullName != "" {
		current.FullName = profile.FullName
	}
	if profile.Bio != "" {
		current.Bio = profile.Bio
	}
	if profile.AvatarURL != "" {
		current.AvatarURL = profile.AvatarURL
	}

	if err := s.profileRepo.Update(ctx, current); err != nil {
		return nil, err
	}
	return current, nil
}

// Installations lists the account's rack slots.
func (s *Service) Installations(ctx context.Context, userID uuid.UUID) ([]domain.MiningInstallation, error) {
	return s.installationRepo.FindByUserID(ctx, userID)
}
