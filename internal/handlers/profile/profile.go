package profile

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/dto"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/profileservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/auth"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/utils"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=profile

type Service interface {
	Ensure(ctx context.Context, userID uuid.UUID, username string) (*domain.Profile, error)
	Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	Installations(ctx context.Context, userID uuid.UUID) ([]domain.MiningInstallation, error)
}

type ProfileHandler struct {
	profileService Service
}

func New(profileService Service) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

func profileToDTO(p *domain.Profile) dto.ProfileResponseDTO {
	return dto.ProfileResponseDTO{
		ID:              p.ID.String(),
		Username:        p.Username,
		FullName:        p.FullName,
		Bio:             p.Bio,
		AvatarURL:       p.AvatarURL,
		ExperienceLevel: p.ExperienceLevel,
		TotalCoinsMined: p.TotalCoinsMined,
		CreatedAt:       p.CreatedAt,
	}
}

// EnsureProfile godoc
//
//	@Summary		Onboard the account
//	@Description	Create the profile, game state, rack slots and welcome grants on first contact. An already onboarded account is returned as-is.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.EnsureProfileRequestDTO	true	"Onboarding payload"
//	@Success		200		{object}	dto.ProfileResponseDTO		"Profile"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/profile [post]
func (h *ProfileHandler) EnsureProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	var req dto.EnsureProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "username is required")
		return
	}

	profile, err := h.profileService.Ensure(r.Context(), userID, req.Username)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profileToDTO(profile))
}

// GetProfile godoc
//
//	@Summary		Get profile
//	@Description	Retrieve the authenticated account's profile.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.ProfileResponseDTO	"Profile"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		404	{object}	utils.Response			"Profile not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/profile [get]
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	profile, err := h.profileService.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, profileservice.ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profileToDTO(profile))
}

// UpdateProfile godoc
//
//	@Summary		Update profile
//	@Description	Update the profile fields present in the request.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateProfileRequestDTO	true	"Profile fields"
//	@Success		200		{object}	dto.ProfileResponseDTO		"Updated profile"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		404		{object}	utils.Response				"Profile not found"
//	@Failure		409		{object}	utils.Response				"Username already taken"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/profile [put]
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	var req dto.UpdateProfileRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.profileService.Update(r.Context(), &domain.Profile{
		ID:        userID,
		Username:  req.Username,
		FullName:  req.FullName,
		Bio:       req.Bio,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, profileservice.ErrProfileNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
		case errors.Is(err, profileservice.ErrUsernameTaken):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profileToDTO(profile))
}

// GetInstallations godoc
//
//	@Summary		List rack slots
//	@Description	List the account's mining rack slots.
//	@Tags			Profile
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.InstallationResponseDTO	"Rack slots"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/installations [get]
func (h *ProfileHandler) GetInstallations(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.AccountIDKey).(uuid.UUID)

	installations, err := h.profileService.Installations(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch installations")
		return
	}

	response := make([]dto.InstallationResponseDTO, len(installations))
	for i, in := range installations {
		response[i] = dto.InstallationResponseDTO{
			RackID:         in.RackID,
			RackType:       in.RackType,
			Owned:          in.Owned,
			TotalHashrate:  in.TotalHashrate,
			TotalPowerDraw: in.TotalPowerDraw,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
