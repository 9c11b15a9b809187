package rigservice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
)

//go:generate mockgen -source=rigservice.go -destination=rigservice_mock.go -package=rigservice

type RigRepo interface {
	Create(ctx context.Context, rig *domain.MiningRig) (*domain.MiningRig, error)
	FindByID(ctx context.Context, userID, rigID uuid.UUID) (*domain.MiningRig, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.MiningRig, error)
	SetActive(ctx context.Context, userID, rigID uuid.UUID, active bool) (bool, error)
	SumActiveHashrate(ctx context.Context, userID uuid.UUID) (float64, error)
}

type Ledger interface {
	ApplyDelta(ctx context.Context, userID uuid.UUID, field domain.BalanceField, delta float64, txType, description string, relatedRigID *uuid.UUID) (*domain.Transaction, error)
}

var (
	ErrUnknownRigType = errors.New("unknown rig type")
	ErrRigNotFound    = errors.New("mining rig not found")
)

// RigSpec is a catalog entry: the fixed stats a rig of this type is
// sold with.
type RigSpec struct {
	Type             string  `json:"rig_type"`
	MiningPower      float64 `json:"mining_power"`
	EfficiencyRating float64 `json:"efficiency_rating"`
	PowerConsumption int     `json:"power_consumption"`
	Cost             float64 `json:"cost"`
	Rarity           string  `json:"rarity"`
}

var catalog = []RigSpec{
	{"basic_cpu", 0.5, 1.0, 65, 100, "common"},
	{"entry_gpu", 0.8, 1.0, 120, 200, "common"},
	{"dual_core", 1.2, 1.05, 95, 300, "common"},
	{"quad_core", 2.0, 1.1, 125, 500, "uncommon"},
	{"gtx_miner", 2.5, 1.15, 180, 700, "uncommon"},
	{"asic_basic", 3.0, 1.2, 1300, 900, "uncommon"},
	{"rtx_3080", 4.2, 1.25, 320, 1500, "rare"},
	{"asic_s19", 5.0, 1.3, 3250, 2000, "rare"},
	{"custom_rig", 5.8, 1.2, 450, 2500, "rare"},
	{"rtx_4090", 8.5, 1.4, 450, 4000, "epic"},
	{"asic_s21", 10.0, 1.5, 3550, 5000, "epic"},
	{"quantum_chip", 12.0, 2.0, 200, 7500, "epic"},
	{"ai_processor", 18.0, 1.75, 700, 12000, "legendary"},
	{"fusion_reactor", 22.0, 2.0, 50, 20000, "legendary"},
	{"black_hole", 50.0, 2.0, 0, 50000, "mythic"},
	{"mainet_core", 100.0, 5.0, 10, 100000, "mythic"},
}

type Service struct {
	rigRepo   RigRepo
	ledger    Ledger
	txManager pg.TXManager
	specs     map[string]RigSpec
}

func New(rigRepo RigRepo, ledger Ledger, txManager pg.TXManager) *Service {
	specs := make(map[string]RigSpec, len(catalog))
	for _, spec := range catalog {
		specs[spec.Type] = spec
	}
	return &Service{
		rigRepo:   rigRepo,
		ledger:    ledger,
		txManager: txManager,
		specs:     specs,
	}
}

// Catalog lists every purchasable rig type with its stats.
func (s *Service) Catalog() []RigSpec {
	return catalog
}

// Purchase buys a rig of the requested type: the rig row is created
// active and the catalog price is debited from the game balance in the
// same transaction, so a failed debit leaves no rig behind.
func (s *Service) Purchase(ctx context.Context, userID uuid.UUID, rigType, rigName string) (*domain.MiningRig, error) {
	spec, ok := s.specs[rigType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRigType, rigType)
	}

	var rig *domain.MiningRig
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		rig, err = s.rigRepo.Create(ctx, &domain.MiningRig{
			UserID:           userID,
			RigName:          rigName,
			RigType:          spec.Type,
			MiningPower:      spec.MiningPower,
			EfficiencyRating: spec.EfficiencyRating,
			PowerConsumption: spec.PowerConsumption,
			Rarity:           spec.Rarity,
			PurchasePrice:    spec.Cost,
			IsActive:         true,
		})
		if err != nil {
			return err
		}

		_, err = s.ledger.ApplyDelta(ctx, userID, domain.BalanceGame, -spec.Cost,
			domain.TxPurchase, fmt.Sprintf("Purchased %s: %s", spec.Type, rigName), &rig.ID)
		return err
	})
	if err != nil {
		zap.L().Warn("rig purchase failed",
			zap.String("userID", userID.String()),
			zap.String("rigType", rigType),
			zap.Error(err))
		return nil, err
	}
	return rig, nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]domain.MiningRig, error) {
	return s.rigRepo.FindByUserID(ctx, userID)
}

func (s *Service) SetActive(ctx context.Context, userID, rigID uuid.UUID, active bool) error {
	ok, err := s.rigRepo.SetActive(ctx, userID, rigID, active)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRigNotFound
	}
	return nil
}
