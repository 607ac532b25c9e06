package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	appContext "github.com/adergachev/smmstore/internal/app/context"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) CreateProfile(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID) error {
	args := m.Called(ctx, tx, userUID)
	return args.Error(0)
}

func (m *MockProfileService) GetProfile(ctx context.Context, userUID *uuid.UUID) (*models.Profile, error) {
	args := m.Called(ctx, userUID)
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) Credit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount float64) (*models.Profile, error) {
	args := m.Called(ctx, tx, userUID, amount)
	return args.Get(0).(*models.Profile), args.Error(1)
}

func (m *MockProfileService) Debit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount float64) (*models.Profile, error) {
	args := m.Called(ctx, tx, userUID, amount)
	return args.Get(0).(*models.Profile), args.Error(1)
}

func TestBalanceHandler_GetBalance(t *testing.T) {
	userUID := uuid.New()

	profileService := &MockProfileService{}
	profileService.On("GetProfile", mock.Anything, &userUID).
		Return(&models.Profile{UserUUID: userUID, Balance: 42.5, Role: models.RoleUser}, nil)
	bh := &BalanceHandler{profileService: profileService, contextTimeout: 5 * time.Second}

	req := httptest.NewRequest("GET", "/api/balance", nil)
	req = req.WithContext(appContext.WithUserUID(req.Context(), &userUID))
	w := httptest.NewRecorder()
	bh.GetBalance(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"balance":42.5}`, w.Body.String())
}

func TestBalanceHandler_GetTransactions(t *testing.T) {
	userUID := uuid.New()
	method := "paystack"
	reference := "4929609179994841"

	t.Run("History Found", func(t *testing.T) {
		transactions := []models.Transaction{
			{
				UUID:             uuid.New(),
				UserUUID:         userUID,
				Type:             models.TxDeposit,
				Amount:           50.0,
				Status:           models.TxApproved,
				DepositMethod:    &method,
				GatewayReference: &reference,
				CreatedAt:        time.Now(),
			},
			{
				UUID:      uuid.New(),
				UserUUID:  userUID,
				Type:      models.TxOrder,
				Amount:    1.0,
				Status:    models.TxApproved,
				CreatedAt: time.Now(),
			},
		}
		depositService := &MockDepositService{}
		depositService.On("GetTransactions", mock.Anything, &userUID).Return(&transactions, nil)
		bh := &BalanceHandler{depositService: depositService, contextTimeout: 5 * time.Second}

		req := httptest.NewRequest("GET", "/api/transactions", nil)
		req = req.WithContext(appContext.WithUserUID(req.Context(), &userUID))
		w := httptest.NewRecorder()
		bh.GetTransactions(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"reference":"4929609179994841"`)
		// The order debit row carries no gateway fields at all.
		assert.Contains(t, w.Body.String(), `"type":"order"`)
	})

	t.Run("Empty History", func(t *testing.T) {
		transactions := []models.Transaction{}
		depositService := &MockDepositService{}
		depositService.On("GetTransactions", mock.Anything, &userUID).Return(&transactions, nil)
		bh := &BalanceHandler{depositService: depositService, contextTimeout: 5 * time.Second}

		req := httptest.NewRequest("GET", "/api/transactions", nil)
		req = req.WithContext(appContext.WithUserUID(req.Context(), &userUID))
		w := httptest.NewRecorder()
		bh.GetTransactions(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
