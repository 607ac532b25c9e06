package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	appContext "github.com/adergachev/smmstore/internal/app/context"
	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/ShiraazMoollatjie/goluhn"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockDepositService struct {
	mock.Mock
}

func (m *MockDepositService) InitiateDeposit(ctx context.Context, userUID *uuid.UUID, amount float64, method string) (*models.Transaction, error) {
	args := m.Called(ctx, userUID, amount, method)
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockDepositService) ConfirmDeposit(ctx context.Context, callerUID *uuid.UUID, gateway, reference string) (*models.Transaction, error) {
	args := m.Called(ctx, callerUID, gateway, reference)
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockDepositService) ApproveManually(ctx context.Context, txUUID *uuid.UUID) (*models.Transaction, error) {
	args := m.Called(ctx, txUUID)
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockDepositService) RejectManually(ctx context.Context, txUUID *uuid.UUID) (*models.Transaction, error) {
	args := m.Called(ctx, txUUID)
	return args.Get(0).(*models.Transaction), args.Error(1)
}

func (m *MockDepositService) GetTransactions(ctx context.Context, userUID *uuid.UUID) (*[]models.Transaction, error) {
	args := m.Called(ctx, userUID)
	return args.Get(0).(*[]models.Transaction), args.Error(1)
}

func TestDepositsHandler_CreateDeposit(t *testing.T) {
	userUID := uuid.New()
	method := "paystack"
	reference := goluhn.Generate(16)
	pending := &models.Transaction{
		UUID:             uuid.New(),
		UserUUID:         userUID,
		Type:             models.TxDeposit,
		Amount:           50.0,
		Status:           models.TxPending,
		DepositMethod:    &method,
		GatewayReference: &reference,
	}

	tests := []struct {
		name               string
		body               string
		mockDepositService func() *MockDepositService
		wantStatusCode     int
		wantBodyPart       string
	}{
		{
			name: "Successful Deposit Initiation",
			body: `{"amount":50,"method":"paystack"}`,
			mockDepositService: func() *MockDepositService {
				m := &MockDepositService{}
				m.On("InitiateDeposit", mock.Anything, &userUID, 50.0, "paystack").Return(pending, nil)
				return m
			},
			wantStatusCode: http.StatusCreated,
			wantBodyPart:   `"status":"pending"`,
		},
		{
			name: "Below Minimum Amount",
			body: `{"amount":1,"method":"paystack"}`,
			mockDepositService: func() *MockDepositService {
				m := &MockDepositService{}
				err := appErrors.NewWithCode(assert.AnError, "minimum deposit amount is 10.00", http.StatusBadRequest)
				m.On("InitiateDeposit", mock.Anything, &userUID, 1.0, "paystack").Return((*models.Transaction)(nil), err)
				return m
			},
			wantStatusCode: http.StatusBadRequest,
			wantBodyPart:   "minimum deposit amount",
		},
		{
			name:               "Malformed Body",
			body:               `{"amount":`,
			mockDepositService: func() *MockDepositService { return &MockDepositService{} },
			wantStatusCode:     http.StatusBadRequest,
			wantBodyPart:       "Unable to parse body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dh := &DepositsHandler{
				depositService: tt.mockDepositService(),
				contextTimeout: 5 * time.Second,
			}

			req := httptest.NewRequest("POST", "/api/deposits", strings.NewReader(tt.body))
			req = req.WithContext(appContext.WithUserUID(req.Context(), &userUID))
			w := httptest.NewRecorder()
			dh.CreateDeposit(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBodyPart)
		})
	}
}

func TestDepositsHandler_ConfirmDeposit(t *testing.T) {
	userUID := uuid.New()
	method := "paystack"
	reference := goluhn.Generate(16)
	approved := &models.Transaction{
		UUID:             uuid.New(),
		UserUUID:         userUID,
		Type:             models.TxDeposit,
		Amount:           50.0,
		Status:           models.TxApproved,
		DepositMethod:    &method,
		GatewayReference: &reference,
	}

	t.Run("Successful Confirmation", func(t *testing.T) {
		depositService := &MockDepositService{}
		depositService.On("ConfirmDeposit", mock.Anything, &userUID, "paystack", reference).Return(approved, nil)
		dh := &DepositsHandler{depositService: depositService, contextTimeout: 5 * time.Second}

		req := httptest.NewRequest("POST", "/api/deposits/confirm",
			strings.NewReader(`{"reference":"`+reference+`","gateway":"paystack"}`))
		req = req.WithContext(appContext.WithUserUID(req.Context(), &userUID))
		w := httptest.NewRecorder()
		dh.ConfirmDeposit(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"approved"`)
	})

	t.Run("Malformed Reference Never Reaches the Service", func(t *testing.T) {
		depositService := &MockDepositService{}
		dh := &DepositsHandler{depositService: depositService, contextTimeout: 5 * time.Second}

		req := httptest.NewRequest("POST", "/api/deposits/confirm",
			strings.NewReader(`{"reference":"not-a-reference","gateway":"paystack"}`))
		req = req.WithContext(appContext.WithUserUID(req.Context(), &userUID))
		w := httptest.NewRecorder()
		dh.ConfirmDeposit(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		depositService.AssertNotCalled(t, "ConfirmDeposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Cross User Reference Conflict", func(t *testing.T) {
		depositService := &MockDepositService{}
		err := appErrors.NewWithCode(assert.AnError, "payment reference belongs to another account", http.StatusConflict)
		depositService.On("ConfirmDeposit", mock.Anything, &userUID, "paystack", reference).
			Return((*models.Transaction)(nil), err)
		dh := &DepositsHandler{depositService: depositService, contextTimeout: 5 * time.Second}

		req := httptest.NewRequest("POST", "/api/deposits/confirm",
			strings.NewReader(`{"reference":"`+reference+`","gateway":"paystack"}`))
		req = req.WithContext(appContext.WithUserUID(req.Context(), &userUID))
		w := httptest.NewRecorder()
		dh.ConfirmDeposit(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
