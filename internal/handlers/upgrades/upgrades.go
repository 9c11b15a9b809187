package upgrades

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/dto"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/ledgerservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/upgradeservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/auth"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/utils"
)

//go:generate mockgen -source=upgrades.go -destination=upgrades_mock.go -package=upgrades

type Service interface {
	List(ctx context.Context, userID uuid.UUID) ([]domain.Upgrade, error)
	Purchase(ctx context.Context, userID uuid.UUID, upgradeType string) (*upgradeservice.PurchaseResult, error)
	PriceAt(level int) float64
}

type UpgradesHandler struct {
	upgradeService Service
}

func New(upgradeService Service) *UpgradesHandler {
	return &UpgradesHandler{
		upgradeService: upgradeService,
	}
}

// GetUpgrades godoc
//
//	@Summary		List purchased upgrades
//	@Description	List the account's upgrade levels with the price of the next level for each.
//	@Tags			Upgrades
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.UpgradeResponseDTO	"Upgrade levels"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/upgrades [get]
func (h *UpgradesHandler) GetUpgrades(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	upgrades, err := h.upgradeService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch upgrades")
		return
	}

	response := make([]dto.UpgradeResponseDTO, len(upgrades))
	for i, u := range upgrades {
		response[i] = dto.UpgradeResponseDTO{
			UpgradeType:  u.UpgradeType,
			CurrentLevel: u.CurrentLevel,
			TotalCost:    u.TotalCost,
			NextCost:     h.upgradeService.PriceAt(u.CurrentLevel),
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PurchaseUpgrade godoc
//
//	@Summary		Purchase an upgrade level
//	@Description	Buy the next level of an upgrade. The geometric price is debited from the main balance and the stat gain lands on the game state.
//	@Tags			Upgrades
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseUpgradeRequestDTO	true	"Purchase payload"
//	@Success		200		{object}	dto.UpgradeResponseDTO			"New upgrade level"
//	@Failure		400		{object}	utils.Response					"Unknown upgrade type"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		402		{object}	utils.Response					"Insufficient funds"
//	@Failure		409		{object}	utils.Response					"Max level reached"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/upgrades [post]
func (h *UpgradesHandler) PurchaseUpgrade(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	var req dto.PurchaseUpgradeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.upgradeService.Purchase(r.Context(), userID, req.UpgradeType)
	if err != nil {
		switch {
		case errors.Is(err, upgradeservice.ErrUnknownUpgradeType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, upgradeservice.ErrMaxLevelReached):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient funds")
		case errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.UpgradeResponseDTO{
		UpgradeType:  result.Upgrade.UpgradeType,
		CurrentLevel: result.Upgrade.CurrentLevel,
		TotalCost:    result.Upgrade.TotalCost,
		NextCost:     result.NextCost,
	})
}
