package service

import (
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/config"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/handlers/game"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/handlers/profile"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/handlers/rigs"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/handlers/upgrades"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/repo"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/depositservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/gameservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/ledgerservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/profileservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/rigservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/upgradeservice"
)

type Services struct {
	ProfileService profile.Service
	GameService    game.Service
	LedgerService  game.LedgerService
	RigService     rigs.Service
	UpgradeService upgrades.Service
	DepositService *depositservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, rules config.Rules) *Services {
	ledgerService := ledgerservice.New(repo.StateRepo, repo.TxnRepo, txManager)
	gameService := gameservice.New(repo.StateRepo, repo.RigRepo, repo.ProfileRepo, ledgerService, txManager, rules)
	rigService := rigservice.New(repo.RigRepo, ledgerService, txManager)
	upgradeService := upgradeservice.New(repo.UpgradeRepo, repo.StateRepo, ledgerService, txManager, rules)
	depositService := depositservice.New(repo.DepositRepo, ledgerService, txManager, rules)
	profileService := profileservice.New(repo.ProfileRepo, repo.StateRepo, repo.InstallationRepo, ledgerService, txManager, rules)

	return &Services{
		ProfileService: profileService,
		GameService:    gameService,
		LedgerService:  ledgerService,
		RigService:     rigService,
		UpgradeService: upgradeService,
		DepositService: depositService,
	}
}
