package service

import (
	"context"
	"net/http"
	"testing"

	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/repository"
	"github.com/adergachev/smmstore/internal/app/service/clients"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, tx *sqlx.Tx, order *models.Order) error {
	args := m.Called(ctx, tx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) GetOrderByUUID(ctx context.Context, orderUUID *uuid.UUID) (*models.Order, error) {
	args := m.Called(ctx, orderUUID)
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetOrdersByUserUID(ctx context.Context, userUID *uuid.UUID) (*[]models.Order, error) {
	args := m.Called(ctx, userUID)
	return args.Get(0).(*[]models.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, orderUUID *uuid.UUID, status models.OrderStatus) error {
	args := m.Called(ctx, orderUUID, status)
	return args.Error(0)
}

func (m *MockOrderRepository) SetExternalID(ctx context.Context, orderUUID *uuid.UUID, externalID string) error {
	args := m.Called(ctx, orderUUID, externalID)
	return args.Error(0)
}

func (m *MockOrderRepository) MarkRefunded(ctx context.Context, tx *sqlx.Tx, orderUUID *uuid.UUID) (bool, error) {
	args := m.Called(ctx, tx, orderUUID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) CountUnfinishedOrders() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) GetUnfinishedOrders(limit int, offset int) (*[]models.Order, error) {
	args := m.Called(limit, offset)
	return args.Get(0).(*[]models.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context, filter repository.OrderFilter) (*[]models.Order, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(*[]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetDB() *sqlx.DB {
	args := m.Called()
	return args.Get(0).(*sqlx.DB)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, serviceID int64) (*models.Service, error) {
	args := m.Called(ctx, serviceID)
	return args.Get(0).(*models.Service), args.Error(1)
}

func (m *MockServiceRepository) ListActive(ctx context.Context) (*[]models.Service, error) {
	args := m.Called(ctx)
	return args.Get(0).(*[]models.Service), args.Error(1)
}

func (m *MockServiceRepository) GetComponents(ctx context.Context, comboServiceID int64) (*[]models.ServiceComponent, error) {
	args := m.Called(ctx, comboServiceID)
	return args.Get(0).(*[]models.ServiceComponent), args.Error(1)
}

type MockFulfillmentClient struct {
	mock.Mock
}

func (m *MockFulfillmentClient) PlaceOrder(serviceID int64, link string, quantity int64) (string, error) {
	args := m.Called(serviceID, link, quantity)
	return args.String(0), args.Error(1)
}

func (m *MockFulfillmentClient) GetOrderStatus(externalID string) (*clients.FulfillmentStatusDto, error) {
	args := m.Called(externalID)
	return args.Get(0).(*clients.FulfillmentStatusDto), args.Error(1)
}

func TestOrderServiceImpl_CreateOrder(t *testing.T) {
	userUID := uuid.New()
	ctx := context.Background()

	likesService := &models.Service{
		ID:          7,
		Name:        "Instagram Likes",
		Category:    "Instagram",
		Rate:        2.00,
		MinQuantity: 100,
		MaxQuantity: 10000,
		Kind:        models.KindDefault,
		Active:      true,
	}

	t.Run("Quantity Below Minimum", func(t *testing.T) {
		serviceRepo := &MockServiceRepository{}
		serviceRepo.On("GetByID", mock.Anything, int64(7)).Return(likesService, nil)
		orderRepo := &MockOrderRepository{}
		os := NewOrderService(orderRepo, serviceRepo, &MockTransactionRepository{}, &MockProfileService{},
			&MockFulfillmentClient{}, make(chan models.Order, 10))

		_, err := os.CreateOrder(ctx, &userUID, 7, "https://instagram.com/p/abc", 50)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, errCode(err))
		orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Inactive Service", func(t *testing.T) {
		inactive := *likesService
		inactive.Active = false
		serviceRepo := &MockServiceRepository{}
		serviceRepo.On("GetByID", mock.Anything, int64(7)).Return(&inactive, nil)
		os := NewOrderService(&MockOrderRepository{}, serviceRepo, &MockTransactionRepository{}, &MockProfileService{},
			&MockFulfillmentClient{}, make(chan models.Order, 10))

		_, err := os.CreateOrder(ctx, &userUID, 7, "https://instagram.com/p/abc", 500)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnprocessableEntity, errCode(err))
	})

	t.Run("Missing Link", func(t *testing.T) {
		serviceRepo := &MockServiceRepository{}
		serviceRepo.On("GetByID", mock.Anything, int64(7)).Return(likesService, nil)
		os := NewOrderService(&MockOrderRepository{}, serviceRepo, &MockTransactionRepository{}, &MockProfileService{},
			&MockFulfillmentClient{}, make(chan models.Order, 10))

		_, err := os.CreateOrder(ctx, &userUID, 7, "", 500)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, errCode(err))
	})

	t.Run("Successful Order Debits the Rate per Thousand", func(t *testing.T) {
		db := newServiceTestDB(t)
		defer db.Close()

		serviceRepo := &MockServiceRepository{}
		serviceRepo.On("GetByID", mock.Anything, int64(7)).Return(likesService, nil)
		orderRepo := &MockOrderRepository{}
		orderRepo.On("GetDB").Return(db)
		orderRepo.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		orderRepo.On("SetExternalID", mock.Anything, mock.Anything, "ext-991").Return(nil)
		txRepo := &MockTransactionRepository{}
		txRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		profileService := &MockProfileService{}
		// 500 units at 2.00 per 1000 costs exactly 1.00
		profileService.On("Debit", mock.Anything, mock.Anything, &userUID, 1.00).
			Return(&models.Profile{UserUUID: userUID, Balance: 9.00}, nil)
		fulfillmentClient := &MockFulfillmentClient{}
		fulfillmentClient.On("PlaceOrder", int64(7), "https://instagram.com/p/abc", int64(500)).Return("ext-991", nil)
		orderChan := make(chan models.Order, 10)
		os := NewOrderService(orderRepo, serviceRepo, txRepo, profileService, fulfillmentClient, orderChan)

		orders, err := os.CreateOrder(ctx, &userUID, 7, "https://instagram.com/p/abc", 500)
		require.NoError(t, err)
		require.Len(t, *orders, 1)
		assert.Equal(t, 1.00, (*orders)[0].TotalCost)
		assert.Equal(t, "ext-991", (*orders)[0].ExternalID)
		profileService.AssertNumberOfCalls(t, "Debit", 1)
		txRepo.AssertNumberOfCalls(t, "Create", 1)

		queued := <-orderChan
		assert.Equal(t, (*orders)[0].UUID, queued.UUID)
	})

	t.Run("Insufficient Funds", func(t *testing.T) {
		db := newServiceTestDB(t)
		defer db.Close()

		serviceRepo := &MockServiceRepository{}
		serviceRepo.On("GetByID", mock.Anything, int64(7)).Return(likesService, nil)
		orderRepo := &MockOrderRepository{}
		orderRepo.On("GetDB").Return(db)
		profileService := &MockProfileService{}
		insufficient := appErrors.NewWithCode(repository.ErrInsufficientFunds, "Insufficient funds", http.StatusPaymentRequired)
		profileService.On("Debit", mock.Anything, mock.Anything, &userUID, 1.00).
			Return((*models.Profile)(nil), insufficient)
		os := NewOrderService(orderRepo, serviceRepo, &MockTransactionRepository{}, profileService,
			&MockFulfillmentClient{}, make(chan models.Order, 10))

		_, err := os.CreateOrder(ctx, &userUID, 7, "https://instagram.com/p/abc", 500)
		require.Error(t, err)
		assert.Equal(t, http.StatusPaymentRequired, errCode(err))
		orderRepo.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Combo Fans Out Into Component Orders", func(t *testing.T) {
		db := newServiceTestDB(t)
		defer db.Close()

		combo := &models.Service{
			ID:          20,
			Name:        "Starter Pack",
			Category:    "Instagram",
			Rate:        0,
			MinQuantity: 100,
			MaxQuantity: 5000,
			Kind:        models.KindCombo,
			Active:      true,
		}
		followers := &models.Service{ID: 8, Rate: 4.00, MinQuantity: 10, MaxQuantity: 100000, Kind: models.KindDefault, Active: true}
		components := []models.ServiceComponent{
			{ComboServiceID: 20, ComponentServiceID: 7, Multiplier: 1.0},
			{ComboServiceID: 20, ComponentServiceID: 8, Multiplier: 0.5},
		}

		serviceRepo := &MockServiceRepository{}
		serviceRepo.On("GetByID", mock.Anything, int64(20)).Return(combo, nil)
		serviceRepo.On("GetByID", mock.Anything, int64(7)).Return(likesService, nil)
		serviceRepo.On("GetByID", mock.Anything, int64(8)).Return(followers, nil)
		serviceRepo.On("GetComponents", mock.Anything, int64(20)).Return(&components, nil)

		orderRepo := &MockOrderRepository{}
		orderRepo.On("GetDB").Return(db)
		orderRepo.On("CreateOrder", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		orderRepo.On("SetExternalID", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		txRepo := &MockTransactionRepository{}
		txRepo.On("Create", mock.Anything, mock.Anything, mock.Anything).Return(nil)
		profileService := &MockProfileService{}
		// 1000 likes at 2.00 = 2.00 plus 500 followers at 4.00 = 2.00
		profileService.On("Debit", mock.Anything, mock.Anything, &userUID, 4.00).
			Return(&models.Profile{UserUUID: userUID, Balance: 6.00}, nil)
		fulfillmentClient := &MockFulfillmentClient{}
		fulfillmentClient.On("PlaceOrder", int64(7), mock.Anything, int64(1000)).Return("ext-1", nil)
		fulfillmentClient.On("PlaceOrder", int64(8), mock.Anything, int64(500)).Return("ext-2", nil)
		os := NewOrderService(orderRepo, serviceRepo, txRepo, profileService, fulfillmentClient, make(chan models.Order, 10))

		orders, err := os.CreateOrder(ctx, &userUID, 20, "https://instagram.com/someone", 1000)
		require.NoError(t, err)
		require.Len(t, *orders, 2)
		assert.Equal(t, int64(1000), (*orders)[0].Quantity)
		assert.Equal(t, int64(500), (*orders)[1].Quantity)
		assert.Equal(t, 2.00, (*orders)[0].TotalCost)
		assert.Equal(t, 2.00, (*orders)[1].TotalCost)
		// one ledger transaction for the whole combo, not one per leg
		txRepo.AssertNumberOfCalls(t, "Create", 1)
	})
}

func TestOrderServiceImpl_Resubmit(t *testing.T) {
	ctx := context.Background()
	orderUUID := uuid.New()

	t.Run("Refunded Order Is a Conflict", func(t *testing.T) {
		order := &models.Order{UUID: orderUUID, RefundStatus: models.RefundIssued, ExternalID: models.ExternalUnsubmitted}
		orderRepo := &MockOrderRepository{}
		orderRepo.On("GetOrderByUUID", mock.Anything, &orderUUID).Return(order, nil)
		fulfillmentClient := &MockFulfillmentClient{}
		os := NewOrderService(orderRepo, &MockServiceRepository{}, &MockTransactionRepository{}, &MockProfileService{},
			fulfillmentClient, make(chan models.Order, 10))

		_, err := os.Resubmit(ctx, &orderUUID)
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, errCode(err))
		fulfillmentClient.AssertNotCalled(t, "PlaceOrder", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Vendor Rejection Is a Bad Gateway", func(t *testing.T) {
		order := &models.Order{
			UUID:         orderUUID,
			ServiceID:    7,
			Link:         "https://instagram.com/p/abc",
			Quantity:     500,
			RefundStatus: models.RefundNone,
			ExternalID:   models.ExternalUnsubmitted,
		}
		orderRepo := &MockOrderRepository{}
		orderRepo.On("GetOrderByUUID", mock.Anything, &orderUUID).Return(order, nil)
		fulfillmentClient := &MockFulfillmentClient{}
		fulfillmentClient.On("PlaceOrder", int64(7), "https://instagram.com/p/abc", int64(500)).
			Return("", assert.AnError)
		os := NewOrderService(orderRepo, &MockServiceRepository{}, &MockTransactionRepository{}, &MockProfileService{},
			fulfillmentClient, make(chan models.Order, 10))

		_, err := os.Resubmit(ctx, &orderUUID)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadGateway, errCode(err))
	})

	t.Run("Successful Resubmission", func(t *testing.T) {
		order := &models.Order{
			UUID:         orderUUID,
			ServiceID:    7,
			Link:         "https://instagram.com/p/abc",
			Quantity:     500,
			RefundStatus: models.RefundNone,
			ExternalID:   models.ExternalUnsubmitted,
		}
		orderRepo := &MockOrderRepository{}
		orderRepo.On("GetOrderByUUID", mock.Anything, &orderUUID).Return(order, nil)
		orderRepo.On("SetExternalID", mock.Anything, &orderUUID, "ext-55").Return(nil)
		fulfillmentClient := &MockFulfillmentClient{}
		fulfillmentClient.On("PlaceOrder", int64(7), "https://instagram.com/p/abc", int64(500)).Return("ext-55", nil)
		os := NewOrderService(orderRepo, &MockServiceRepository{}, &MockTransactionRepository{}, &MockProfileService{},
			fulfillmentClient, make(chan models.Order, 10))

		got, err := os.Resubmit(ctx, &orderUUID)
		require.NoError(t, err)
		assert.Equal(t, "ext-55", got.ExternalID)
	})
}
