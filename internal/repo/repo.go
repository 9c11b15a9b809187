package repo

import (
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/pg"
	depositrepo "github.com/maximlprive1990/mainnet-mini-mining-game/internal/repo/deposit-repo"
	installationrepo "github.com/maximlprive1990/mainnet-mini-mining-game/internal/repo/installation-repo"
	profilerepo "github.com/maximlprive1990/mainnet-mini-mining-game/internal/repo/profile-repo"
	rigrepo "github.com/maximlprive1990/mainnet-mini-mining-game/internal/repo/rig-repo"
	staterepo "github.com/maximlprive1990/mainnet-mini-mining-game/internal/repo/state-repo"
	txnrepo "github.com/maximlprive1990/mainnet-mini-mining-game/internal/repo/txn-repo"
	upgraderepo "github.com/maximlprive1990/mainnet-mini-mining-game/internal/repo/upgrade-repo"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/depositservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/ledgerservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/profileservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/rigservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/upgradeservice"
)

type Repositories struct {
	ProfileRepo      profileservice.ProfileRepo
	StateRepo        ledgerservice.StateRepo
	TxnRepo          ledgerservice.TxnRepo
	RigRepo          rigservice.RigRepo
	UpgradeRepo      upgradeservice.UpgradeRepo
	DepositRepo      depositservice.DepositRepo
	InstallationRepo profileservice.InstallationRepo
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		ProfileRepo:      profilerepo.New(conn),
		StateRepo:        staterepo.New(conn),
		TxnRepo:          txnrepo.New(conn),
		RigRepo:          rigrepo.New(conn),
		UpgradeRepo:      upgraderepo.New(conn),
		DepositRepo:      depositrepo.New(conn),
		InstallationRepo: installationrepo.New(conn),
	}
}
