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
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, userUID *uuid.UUID, serviceID int64, link string, quantity int64) (*[]models.Order, error) {
	args := m.Called(ctx, userUID, serviceID, link, quantity)
	return args.Get(0).(*[]models.Order), args.Error(1)
}

func (m *MockOrderService) GetOrders(ctx context.Context, userUID *uuid.UUID) (*[]models.Order, error) {
	args := m.Called(ctx, userUID)
	return args.Get(0).(*[]models.Order), args.Error(1)
}

func (m *MockOrderService) Resubmit(ctx context.Context, orderUUID *uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, orderUUID)
	return args.Get(0).(*models.Order), args.Error(1)
}

func TestOrdersHandler_CreateOrder(t *testing.T) {
	userUID := uuid.New()
	placed := []models.Order{
		{
			UUID:       uuid.New(),
			UserUUID:   userUID,
			ServiceID:  7,
			Link:       "https://instagram.com/p/abc",
			Quantity:   500,
			TotalCost:  1.0,
			Status:     models.OrderInProgress,
			ExternalID: "ext-991",
			CreatedAt:  time.Now(),
		},
	}

	tests := []struct {
		name             string
		body             string
		mockOrderService func() *MockOrderService
		wantStatusCode   int
		wantBodyPart     string
	}{
		{
			name: "Successful Order",
			body: `{"service_id":7,"link":"https://instagram.com/p/abc","quantity":500}`,
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				m.On("CreateOrder", mock.Anything, &userUID, int64(7), "https://instagram.com/p/abc", int64(500)).
					Return(&placed, nil)
				return m
			},
			wantStatusCode: http.StatusCreated,
			wantBodyPart:   `"external_id":"ext-991"`,
		},
		{
			name: "Insufficient Funds",
			body: `{"service_id":7,"link":"https://instagram.com/p/abc","quantity":500}`,
			mockOrderService: func() *MockOrderService {
				m := &MockOrderService{}
				err := appErrors.NewWithCode(assert.AnError, "Insufficient funds", http.StatusPaymentRequired)
				m.On("CreateOrder", mock.Anything, &userUID, int64(7), "https://instagram.com/p/abc", int64(500)).
					Return((*[]models.Order)(nil), err)
				return m
			},
			wantStatusCode: http.StatusPaymentRequired,
			wantBodyPart:   "Insufficient funds",
		},
		{
			name:             "Malformed Body",
			body:             `{"service_id":`,
			mockOrderService: func() *MockOrderService { return &MockOrderService{} },
			wantStatusCode:   http.StatusBadRequest,
			wantBodyPart:     "Unable to parse body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oh := &OrdersHandler{
				orderService:   tt.mockOrderService(),
				contextTimeout: 5 * time.Second,
			}

			req := httptest.NewRequest("POST", "/api/orders", strings.NewReader(tt.body))
			req = req.WithContext(appContext.WithUserUID(req.Context(), &userUID))
			w := httptest.NewRecorder()
			oh.CreateOrder(w, req)

			assert.Equal(t, tt.wantStatusCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBodyPart)
		})
	}
}

func TestOrdersHandler_GetOrders(t *testing.T) {
	userUID := uuid.New()

	t.Run("Orders Found", func(t *testing.T) {
		orders := []models.Order{
			{UUID: uuid.New(), UserUUID: userUID, ServiceID: 7, Quantity: 500, Status: models.OrderCompleted},
		}
		orderService := &MockOrderService{}
		orderService.On("GetOrders", mock.Anything, &userUID).Return(&orders, nil)
		oh := &OrdersHandler{orderService: orderService, contextTimeout: 5 * time.Second}

		req := httptest.NewRequest("GET", "/api/orders", nil)
		req = req.WithContext(appContext.WithUserUID(req.Context(), &userUID))
		w := httptest.NewRecorder()
		oh.GetOrders(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"completed"`)
	})

	t.Run("No Orders To Display", func(t *testing.T) {
		orders := []models.Order{}
		orderService := &MockOrderService{}
		orderService.On("GetOrders", mock.Anything, &userUID).Return(&orders, nil)
		oh := &OrdersHandler{orderService: orderService, contextTimeout: 5 * time.Second}

		req := httptest.NewRequest("GET", "/api/orders", nil)
		req = req.WithContext(appContext.WithUserUID(req.Context(), &userUID))
		w := httptest.NewRecorder()
		oh.GetOrders(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})
}
