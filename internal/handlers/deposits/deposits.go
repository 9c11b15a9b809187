package deposits

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/dto"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/depositservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/auth"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/utils"
)

//go:generate mockgen -source=deposits.go -destination=deposits_mock.go -package=deposits

type Service interface {
	Submit(ctx context.Context, userID uuid.UUID, transactionID, method, currency string, amount float64) (*domain.DepositVerification, error)
	History(ctx context.Context, userID uuid.UUID) ([]domain.DepositVerification, error)
}

type DepositsHandler struct {
	depositService Service
}

func New(depositService Service) *DepositsHandler {
	return &DepositsHandler{
		depositService: depositService,
	}
}

func verificationToDTO(v *domain.DepositVerification) dto.DepositResponseDTO {
	return dto.DepositResponseDTO{
		TransactionID: v.TransactionID,
		PaymentMethod: v.PaymentMethod,
		Currency:      v.Currency,
		Amount:        v.Amount,
		Status:        v.Status,
		BonusAmount:   v.BonusAmount,
		CreatedAt:     v.CreatedAt,
		VerifiedAt:    v.VerifiedAt,
	}
}

// SubmitDeposit godoc
//
//	@Summary		Submit a deposit claim
//	@Description	Record a payment transaction id for asynchronous verification. Submitting a known id returns the existing record unchanged.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.SubmitDepositRequestDTO	true	"Deposit claim"
//	@Success		202		{object}	dto.DepositResponseDTO		"Claim accepted"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid transaction id"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/deposits [post]
func (h *DepositsHandler) SubmitDeposit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	var req dto.SubmitDepositRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	v, err := h.depositService.Submit(r.Context(), userID, req.TransactionID, req.PaymentMethod, req.Currency, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, depositservice.ErrInvalidTransactionID),
			errors.Is(err, depositservice.ErrUnknownMethod):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusAccepted, verificationToDTO(v))
}

// GetDeposits godoc
//
//	@Summary		Get deposit history
//	@Description	List the account's deposit claims, newest first.
//	@Tags			Deposits
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.DepositResponseDTO	"Deposit history"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/deposits [get]
func (h *DepositsHandler) GetDeposits(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	verifications, err := h.depositService.History(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch deposits")
		return
	}

	response := make([]dto.DepositResponseDTO, len(verifications))
	for i := range verifications {
		response[i] = verificationToDTO(&verifications[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
