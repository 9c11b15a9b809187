package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/maximlprive1990/mainnet-mini-mining-game/docs"
	depositshandlers "github.com/maximlprive1990/mainnet-mini-mining-game/internal/handlers/deposits"
	gamehandlers "github.com/maximlprive1990/mainnet-mini-mining-game/internal/handlers/game"
	profilehandlers "github.com/maximlprive1990/mainnet-mini-mining-game/internal/handlers/profile"
	rigshandlers "github.com/maximlprive1990/mainnet-mini-mining-game/internal/handlers/rigs"
	upgradeshandlers "github.com/maximlprive1990/mainnet-mini-mining-game/internal/handlers/upgrades"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/ws"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/auth"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/utils"
)

//go:generate mockgen -source=handlers.go -destination=handlers_mock.go -package=handlers

type ProfileHandler interface {
	EnsureProfile(w http.ResponseWriter, r *http.Request)
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	GetInstallations(w http.ResponseWriter, r *http.Request)
}

type GameHandler interface {
	GetState(w http.ResponseWriter, r *http.Request)
	Click(w http.ResponseWriter, r *http.Request)
	OfflineRewards(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
	GetTransactions(w http.ResponseWriter, r *http.Request)
	ReplayBalances(w http.ResponseWriter, r *http.Request)
}

type RigsHandler interface {
	GetCatalog(w http.ResponseWriter, r *http.Request)
	GetRigs(w http.ResponseWriter, r *http.Request)
	PurchaseRig(w http.ResponseWriter, r *http.Request)
	SetRigActive(w http.ResponseWriter, r *http.Request)
}

type UpgradesHandler interface {
	GetUpgrades(w http.ResponseWriter, r *http.Request)
	PurchaseUpgrade(w http.ResponseWriter, r *http.Request)
}

type DepositsHandler interface {
	SubmitDeposit(w http.ResponseWriter, r *http.Request)
	GetDeposits(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	ProfileHandler  ProfileHandler
	GameHandler     GameHandler
	RigsHandler     RigsHandler
	UpgradesHandler UpgradesHandler
	DepositsHandler DepositsHandler

	hub *ws.Hub
}

func New(s *service.Services, hub *ws.Hub) *Handlers {
	return &Handlers{
		ProfileHandler:  profilehandlers.New(s.ProfileService),
		GameHandler:     gamehandlers.New(s.GameService, s.LedgerService, hub),
		RigsHandler:     rigshandlers.New(s.RigService),
		UpgradesHandler: upgradeshandlers.New(s.UpgradeService),
		DepositsHandler: depositshandlers.New(s.DepositService),
		hub:             hub,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		MetricsMiddleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", ws.ServeWS(h.hub))

	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Route("/profile", func(r chi.Router) {
				r.Post("/", h.ProfileHandler.EnsureProfile)
				r.Get("/", h.ProfileHandler.GetProfile)
				r.Put("/", h.ProfileHandler.UpdateProfile)
			})
			r.Get("/installations", h.ProfileHandler.GetInstallations)
			r.Route("/game-state", func(r chi.Router) {
				r.Get("/", h.GameHandler.GetState)
				r.Post("/click", h.GameHandler.Click)
				r.Post("/offline-rewards", h.GameHandler.OfflineRewards)
				r.Put("/settings", h.GameHandler.UpdateSettings)
			})
			r.Route("/transactions", func(r chi.Router) {
				r.Get("/", h.GameHandler.GetTransactions)
				r.Get("/replay", h.GameHandler.ReplayBalances)
			})
			r.Route("/mining-rigs", func(r chi.Router) {
				r.Get("/catalog", h.RigsHandler.GetCatalog)
				r.Get("/", h.RigsHandler.GetRigs)
				r.Post("/", h.RigsHandler.PurchaseRig)
				r.Put("/{rigID}/active", h.RigsHandler.SetRigActive)
			})
			r.Route("/upgrades", func(r chi.Router) {
				r.Get("/", h.UpgradesHandler.GetUpgrades)
				r.Post("/", h.UpgradesHandler.PurchaseUpgrade)
			})
			r.Route("/deposits", func(r chi.Router) {
				r.Post("/", h.DepositsHandler.SubmitDeposit)
				r.Get("/", h.DepositsHandler.GetDeposits)
			})
		})
	})

	return r
}
