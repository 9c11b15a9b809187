package rigs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/domain"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/dto"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/ledgerservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/rigservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/auth"
)

func NewMock(t *testing.T) (*RigsHandler, *MockService, uuid.UUID, context.Context) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	userID := uuid.New()
	ctx := context.WithValue(context.Background(), auth.AccountIDKey, userID)
	return handler, service, userID, ctx
}

func TestGetCatalogHandler(t *testing.T) {
	handler, service, _, ctx := NewMock(t)
	service.EXPECT().Catalog().Return([]rigservice.RigSpec{
		{Type: "basic_cpu", MiningPower: 0.5, EfficiencyRating: 1.0, Cost: 100, Rarity: "common"},
	})

	r := httptest.NewRequest(http.MethodGet, "/mining-rigs/catalog", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	handler.GetCatalog(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	var body []rigservice.RigSpec
	_ = json.NewDecoder(w.Body).Decode(&body)
	assert.Len(t, body, 1)
	assert.Equal(t, "basic_cpu", body[0].Type)
}

func TestGetRigsHandler(t *testing.T) {
	handler, service, userID, ctx := NewMock(t)
	rigID := uuid.New()

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Owned rigs listed",
			prepareMock: func() {
				service.EXPECT().List(ctx, userID).Return([]domain.MiningRig{
					{ID: rigID, UserID: userID, RigType: "quad_core", IsActive: true},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  1,
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
			r := httptest.NewRequest(http.MethodGet, "/mining-rigs", nil).WithContext(ctx)
			w := httptest.NewRecorder()
			handler.GetRigs(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.MiningRigResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
				assert.Equal(t, rigID.String(), body[0].ID)
			}
		})
	}
}

func TestPurchaseRigHandler(t *testing.T) {
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
			body: `{"rig_type":"quad_core","rig_name":"My quad"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(ctx, userID, "quad_core", "My quad").Return(&domain.MiningRig{
					ID:       uuid.New(),
					RigType:  "quad_core",
					RigName:  "My quad",
					IsActive: true,
				}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Invalid request body",
			body:          `{"rig_type":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name: "Unknown rig type",
			body: `{"rig_type":"toaster","rig_name":"Toast"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(ctx, userID, "toaster", "Toast").
					Return(nil, rigservice.ErrUnknownRigType)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Insufficient funds",
			body: `{"rig_type":"mainet_core","rig_name":"Dream"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(ctx, userID, "mainet_core", "Dream").
					Return(nil, ledgerservice.ErrInsufficientFunds)
			},
			expectedCode:  http.StatusPaymentRequired,
			expectedError: "Insufficient funds",
		},
		{
			name: "Account not found",
			body: `{"rig_type":"basic_cpu","rig_name":"First"}`,
			prepareMock: func() {
				service.EXPECT().Purchase(ctx, userID, "basic_cpu", "First").
					Return(nil, ledgerservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/mining-rigs", bytes.NewBufferString(tt.body)).WithContext(ctx)
			w := httptest.NewRecorder()
			handler.PurchaseRig(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestSetRigActiveHandler(t *testing.T) {
	handler, service, userID, ctx := NewMock(t)
	rigID := uuid.New()

	newRequest := func(rigIDParam, body string) *http.Request {
		r := httptest.NewRequest(http.MethodPut, "/mining-rigs/"+rigIDParam+"/active", bytes.NewBufferString(body))
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("rigID", rigIDParam)
		return r.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
	}

	tests := []struct {
		name         string
		rigIDParam   string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:       "Rig deactivated",
			rigIDParam: rigID.String(),
			body:       `{"is_active":false}`,
			prepareMock: func() {
				service.EXPECT().SetActive(gomock.Any(), userID, rigID, false).Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid rig id",
			rigIDParam:   "not-a-uuid",
			body:         `{"is_active":true}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:       "Rig not found",
			rigIDParam: rigID.String(),
			body:       `{"is_active":true}`,
			prepareMock: func() {
				service.EXPECT().SetActive(gomock.Any(), userID, rigID, true).
					Return(rigservice.ErrRigNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			w := httptest.NewRecorder()
			handler.SetRigActive(w, newRequest(tt.rigIDParam, tt.body))
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
