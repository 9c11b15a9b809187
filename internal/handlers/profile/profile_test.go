package profile

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
	"github.com/maximlprive1990/mainnet-mini-mining-game/internal/service/profileservice"
	"github.com/maximlprive1990/mainnet-mini-mining-game/pkg/auth"
)

func NewMock(t *testing.T) (*ProfileHandler, *MockService, uuid.UUID, context.Context) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	userID := uuid.New()
	ctx := context.WithValue(context.Background(), auth.AccountIDKey, userID)
	return handler, service, userID, ctx
}

func TestEnsureProfileHandler(t *testing.T) {
	handler, service, userID, ctx := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Account onboarded",
			body: `{"username":"miner42"}`,
			prepareMock: func() {
				service.EXPECT().Ensure(ctx, userID, "miner42").
					Return(&domain.Profile{ID: userID, Username: "miner42"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request body",
			body:          `{"username":}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "invalid request body",
		},
		{
			name:          "Empty username",
			body:          `{"username":""}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "username is required",
		},
		{
			name: "Internal server error",
			body: `{"username":"miner42"}`,
			prepareMock: func() {
				service.EXPECT().Ensure(ctx, userID, "miner42").Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPost, "/profile", bytes.NewBufferString(tt.body)).WithContext(ctx)
			w := httptest.NewRecorder()
			handler.EnsureProfile(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	handler, service, userID, ctx := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedBody dto.ProfileResponseDTO
	}{
		{
			name: "Profile returned",
			prepareMock: func() {
				service.EXPECT().Get(ctx, userID).Return(&domain.Profile{
					ID:              userID,
					Username:        "miner42",
					TotalCoinsMined: 12.5,
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: dto.ProfileResponseDTO{
				ID:              userID.String(),
				Username:        "miner42",
				TotalCoinsMined: 12.5,
			},
		},
		{
			name: "Profile not found",
			prepareMock: func() {
				service.EXPECT().Get(ctx, userID).Return(nil, profileservice.ErrProfileNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/profile", nil).WithContext(ctx)
			w := httptest.NewRecorder()
			handler.GetProfile(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body dto.ProfileResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, tt.expectedBody, body)
			}
		})
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	handler, service, userID, ctx := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Profile updated",
			body: `{"bio":"hello"}`,
			prepareMock: func() {
				service.EXPECT().Update(ctx, &domain.Profile{ID: userID, Bio: "hello"}).
					Return(&domain.Profile{ID: userID, Username: "miner42", Bio: "hello"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Username taken",
			body: `{"username":"rival"}`,
			prepareMock: func() {
				service.EXPECT().Update(ctx, &domain.Profile{ID: userID, Username: "rival"}).
					Return(nil, profileservice.ErrUsernameTaken)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name: "Profile not found",
			body: `{"bio":"hello"}`,
			prepareMock: func() {
				service.EXPECT().Update(ctx, &domain.Profile{ID: userID, Bio: "hello"}).
					Return(nil, profileservice.ErrProfileNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewBufferString(tt.body)).WithContext(ctx)
			w := httptest.NewRecorder()
			handler.UpdateProfile(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestGetInstallationsHandler(t *testing.T) {
	handler, service, userID, ctx := NewMock(t)

	tests := []struct {
		name         string
		prepareMock  func()
		expectedCode int
		expectedLen  int
	}{
		{
			name: "Rack slots listed",
			prepareMock: func() {
				service.EXPECT().Installations(ctx, userID).Return([]domain.MiningInstallation{
					{RackID: 1, RackType: "compact", Owned: true},
					{RackID: 2, RackType: "standard"},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().Installations(ctx, userID).Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			r := httptest.NewRequest(http.MethodGet, "/installations", nil).WithContext(ctx)
			w := httptest.NewRecorder()
			handler.GetInstallations(w, r)
			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				var body []dto.InstallationResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
