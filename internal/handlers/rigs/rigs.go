package rigs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/dto"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/ledgerservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/rigservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/auth"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/utils"
)

//go:generate mockgen -source=rigs.go -destination=rigs_mock.go -package=rigs

type Service interface {
	Catalog() []rigservice.RigSpec
	Purchase(ctx context.Context, userID uuid.UUID, rigType, rigName string) (*domain.MiningRig, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.MiningRig, error)
	SetActive(ctx context.Context, userID, rigID uuid.UUID, active bool) error
}

type RigsHandler struct {
	rigService Service
}

func New(rigService Service) *RigsHandler {
	return &RigsHandler{
		rigService: rigService,
	}
}

func rigToDTO(rig *domain.MiningRig) dto.MiningRigResponseDTO {
	return dto.MiningRigResponseDTO{
		ID:               rig.ID.String(),
		RigName:          rig.RigName,
		RigType:          rig.RigType,
		MiningPower:      rig.MiningPower,
		EfficiencyRating: rig.EfficiencyRating,
		PowerConsumption: rig.PowerConsumption,
		UpgradeLevel:     rig.UpgradeLevel,
		IsActive:         rig.IsActive,
		Rarity:           rig.Rarity,
		TotalCoinsMined:  rig.TotalCoinsMined,
		PurchasePrice:    rig.PurchasePrice,
		CreatedAt:        rig.CreatedAt,
	}
}

// GetCatalog godoc
//
//	@Summary		Get the rig catalog
//	@Description	List every purchasable rig type with its stats and price.
//	@Tags			Mining rigs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}	rigservice.RigSpec	"Rig catalog"
//	@Router			/api/mining-rigs/catalog [get]
func (h *RigsHandler) GetCatalog(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.rigService.Catalog())
}

// GetRigs godoc
//
//	@Summary		List owned rigs
//	@Description	List the mining rigs owned by the authenticated account.
//	@Tags			Mining rigs
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.MiningRigResponseDTO	"Owned rigs"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/mining-rigs [get]
func (h *RigsHandler) GetRigs(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	rigs, err := h.rigService.List(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch mining rigs")
		return
	}

	response := make([]dto.MiningRigResponseDTO, len(rigs))
	for i := range rigs {
		response[i] = rigToDTO(&rigs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PurchaseRig godoc
//
//	@Summary		Purchase a mining rig
//	@Description	Buy a rig of the requested type. The catalog price is debited from the game balance; the rig starts active.
//	@Tags			Mining rigs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurchaseRigRequestDTO	true	"Purchase payload"
//	@Success		201		{object}	dto.MiningRigResponseDTO	"Purchased rig"
//	@Failure		400		{object}	utils.Response				"Unknown rig type"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/mining-rigs [post]
func (h *RigsHandler) PurchaseRig(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	var req dto.PurchaseRigRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rig, err := h.rigService.Purchase(r.Context(), userID, req.RigType, req.RigName)
	if err != nil {
		switch {
		case errors.Is(err, rigservice.ErrUnknownRigType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient funds")
		case errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Account not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, rigToDTO(rig))
}

// SetRigActive godoc
//
//	@Summary		Toggle a rig
//	@Description	Activate or deactivate an owned rig. Only active rigs count toward offline mining.
//	@Tags			Mining rigs
//	@Security		BearerAuth
//	@Accept			json
//	@Success		200	{object}	utils.Response	"Rig updated"
//	@Failure		400	{object}	utils.Response	"Invalid request"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Rig not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/mining-rigs/{rigID}/active [put]
func (h *RigsHandler) SetRigActive(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	rigID, err := uuid.Parse(chi.URLParam(r, "rigID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid rig id")
		return
	}

	var req dto.SetRigActiveRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.rigService.SetActive(r.Context(), userID, rigID, req.IsActive); err != nil {
		if errors.Is(err, rigservice.ErrRigNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Mining rig not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "rig updated"})
}
