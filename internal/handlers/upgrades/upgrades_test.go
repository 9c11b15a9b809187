package upgrades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/dto"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/ledgerservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/upgradeservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/auth"
)

func NewMock(t *testing.T) (*UpgradesHandler, *MockService, uuid.UUID, context.Context) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	userID := uuid.New()
	ctx := context.WithValue(context.Background(), auth.AccountIDKey, userID)
	return handler, service, userID, ctx
}

func TestGetUpgradesHandler(t *testing.T) {
	handler, service, userID, ctx := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody []dto.UpgradeResponseDTO
	}{
		{
			name: "Levels listed with next price",
			prepareMock: func() {
				service.EXPECT().List(ctx, userID).Return([]domain.Upgrade{
					{UserID: userID, UpgradeType: upgradeservice.TypeClickPower, CurrentLevel: 2, TotalCost: 215},
				}, nil)
				service.EXPECT().PriceAt(2).Return(132.25)
			},
			expectedCode: http.StatusOK,
			expectedBody: []dto.UpgradeResponseDTO{
				{UpgradeType: upgradeservice.TypeClickPower, CurrentLevel: 2, TotalCost: 215, NextCost: 132.25},
			},
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().List(ctx, userID).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/upgrades", nil).WithContext(ctx)
			w := httptest.NewRecorder()
			handler.GetUpgrades(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.UpgradeResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestPurchaseUpgradeHandler(t *testing.T) {
	handler, service, userID, ctx := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful purchase",
			body: `{"upgrade_type":"CLICK_POWER"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(ctx, userID, "CLICK_POWER").Return(&upgradeservice.PurchaseResult{
					Upgrade: domain.Upgrade{
						UserID:       userID,
						UpgradeType:  "CLICK_POWER",
						CurrentLevel: 1,
						TotalCost:    100,
					},
					Price:    100,
					NextCost: 115,
				}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"upgrade_type":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Unknown upgrade type",
			body: `{"upgrade_type":"WARP_DRIVE"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(ctx, userID, "WARP_DRIVE").
					Return(nil, upgradeservice.ErrUnknownUpgradeType)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Max level reached",
			body: `{"upgrade_type":"AUTO_MINING"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(ctx, userID, "AUTO_MINING").
					Return(nil, upgradeservice.ErrMaxLevelReached)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Insufficient funds",
			body: `{"upgrade_type":"MAX_ENERGY"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(ctx, userID, "MAX_ENERGY").
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "Insufficient funds",
		},
		{
			name: "Internal server error",
			body: `{"upgrade_type":"ENERGY_REGEN"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(ctx, userID, "ENERGY_REGEN").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/upgrades", bytes.NewBufferString(tt.body)).WithContext(ctx)
			w := httptest.NewRecorder()
			handler.PurchaseUpgrade(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}
