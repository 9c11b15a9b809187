package game

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/dto"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/gameservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/ledgerservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/auth"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/utils"
)

//go:generate mockgen -source=game.go -destination=game_mock.go -package=game

type Service interface {
	State(ctx context.Context, userID uuid.UUID) (*domain.GameState, error)
	Click(ctx context.Context, userID uuid.UUID, count int) (*gameservice.ClickResult, error)
	SettleOfflineRewards(ctx context.Context, userID uuid.UUID) (*gameservice.OfflineResult, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, settings []byte) error
}

type LedgerService interface {
	Transactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Transaction, error)
	Replay(ctx context.Context, userID uuid.UUID) (map[domain.BalanceField]float64, error)
}

// Notifier pushes events to the account's open websocket connections.
type Notifier interface {
	Send(userID uuid.UUID, event string, payload interface{})
}

type GameHandler struct {
	gameService   Service
	ledgerService LedgerService
	notifier      Notifier
}

func New(gameService Service, ledgerService LedgerService, notifier Notifier) *GameHandler {
	return &GameHandler{
		gameService:   gameService,
		ledgerService: ledgerService,
		notifier:      notifier,
	}
}

func stateToDTO(state *domain.GameState) dto.GameStateResponseDTO {
	return dto.GameStateResponseDTO{
		CurrentLevel:     state.CurrentLevel,
		ExperiencePoints: state.ExperiencePoints,
		CurrentCoins:     state.CurrentCoins,
		MainBalance:      state.MainBalance,
		BonusBalance:     state.BonusBalance,
		Energy:           state.Energy,
		MaxEnergy:        state.MaxEnergy,
		EnergyRegenRate:  state.EnergyRegenRate,
		ClickPower:       state.ClickPower,
		AutoMiningRate:   state.AutoMiningRate,
		TotalClicks:      state.TotalClicks,
		GameSettings:     state.GameSettings,
	}
}

// GetState godoc
//
//	@Summary		Get game state
//	@Description	Retrieve the account game state with energy regeneration settled up to now.
//	@Tags			Game
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GameStateResponseDTO	"Current game state"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		404	{object}	utils.Response				"Game state not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/game-state [get]
func (h *GameHandler) GetState(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	state, err := h.gameService.State(r.Context(), userID)
	if err != nil {
		if errors.Is(err, gameservice.ErrStateNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Game state not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, stateToDTO(state))
}

// Click godoc
//
//	@Summary		Settle a click batch
//	@Description	Spend one energy per click and credit the click reward to the game balance. The whole batch is rejected when energy does not cover it.
//	@Tags			Game
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ClickRequestDTO		true	"Click batch"
//	@Success		200		{object}	dto.ClickResponseDTO	"Click result"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Game state not found"
//	@Failure		409		{object}	utils.Response			"Insufficient energy"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/game-state/click [post]
func (h *GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	var req dto.ClickRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.gameService.Click(r.Context(), userID, req.Count)
	if err != nil {
		switch {
		case errors.Is(err, gameservice.ErrBadClickCount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, gameservice.ErrStateNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Game state not found")
		case errors.Is(err, gameservice.ErrInsufficientEnergy):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	response := dto.ClickResponseDTO{
		Reward:      result.Reward,
		Energy:      result.Energy,
		TotalClicks: result.TotalClicks,
		Balance:     result.Balance,
	}
	h.notifier.Send(userID, "click_settled", response)
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// OfflineRewards godoc
//
//	@Summary		Settle offline mining rewards
//	@Description	Credit mining earned since the session anchor and move the anchor to now. A repeated call earns nothing extra.
//	@Tags			Game
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.OfflineRewardsResponseDTO	"Settled offline rewards"
//	@Failure		401	{object}	utils.Response					"User not authorized"
//	@Failure		404	{object}	utils.Response					"Game state not found"
//	@Failure		500	{object}	utils.Response					"Internal server error"
//	@Router			/api/game-state/offline-rewards [post]
func (h *GameHandler) OfflineRewards(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	result, err := h.gameService.SettleOfflineRewards(r.Context(), userID)
	if err != nil {
		if errors.Is(err, gameservice.ErrStateNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Game state not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	response := dto.OfflineRewardsResponseDTO{
		Amount:   result.Amount,
		Hours:    result.Hours,
		Hashrate: result.Hashrate,
	}
	if result.Amount > 0 {
		h.notifier.Send(userID, "offline_rewards", response)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdateSettings godoc
//
//	@Summary		Update game settings
//	@Description	Store the client settings blob on the game state.
//	@Tags			Game
//	@Security		BearerAuth
//	@Accept			json
//	@Success		200	{object}	utils.Response	"Settings updated"
//	@Failure		400	{object}	utils.Response	"Invalid request body"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Game state not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/game-state/settings [put]
func (h *GameHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	var req dto.UpdateSettingsRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.gameService.UpdateSettings(r.Context(), userID, req.GameSettings); err != nil {
		if errors.Is(err, gameservice.ErrStateNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Game state not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "settings updated"})
}

// GetTransactions godoc
//
//	@Summary		Get transaction history
//	@Description	List ledger transactions for the authenticated account, newest first.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Param			limit	query		int								false	"Page size"
//	@Param			offset	query		int								false	"Page offset"
//	@Success		200		{object}	dto.TransactionListResponseDTO	"Transaction history"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/transactions [get]
func (h *GameHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	txns, err := h.ledgerService.Transactions(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch transactions")
		return
	}

	response := dto.TransactionListResponseDTO{
		Transactions: make([]dto.TransactionResponseDTO, len(txns)),
		Count:        len(txns),
	}
	for i, txn := range txns {
		item := dto.TransactionResponseDTO{
			ID:            txn.ID.String(),
			Type:          txn.Type,
			BalanceField:  string(txn.BalanceField),
			Amount:        txn.Amount,
			BalanceBefore: txn.BalanceBefore,
			BalanceAfter:  txn.BalanceAfter,
			Description:   txn.Description,
			CreatedAt:     txn.CreatedAt,
		}
		if txn.RelatedRigID != nil {
			item.RelatedRigID = txn.RelatedRigID.String()
		}
		response.Transactions[i] = item
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ReplayBalances godoc
//
//	@Summary		Replay the ledger
//	@Description	Fold the full transaction history from zero and return the resulting balances. Fails when the history does not reproduce the stored balances.
//	@Tags			Ledger
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ReplayResponseDTO	"Replayed balances"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Account not found"
//	@Failure		409	{object}	utils.Response			"Ledger mismatch"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/transactions/replay [get]
func (h *GameHandler) ReplayBalances(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	balances, err := h.ledgerService.Replay(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		case errors.Is(err, ledgerservice.ErrLedgerMismatch):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ReplayResponseDTO{
		Main:  balances[domain.BalanceMain],
		Bonus: balances[domain.BalanceBonus],
		Game:  balances[domain.BalanceGame],
	})
}
