package repository

import (
	"context"
	"testing"
	"time"

	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const initOrdersDB = `
CREATE TABLE IF NOT EXISTS orders
(
    uuid TEXT PRIMARY KEY,
    user_uuid TEXT NOT NULL,
    service_id INTEGER NOT NULL,
    link TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    total_cost NUMERIC NOT NULL,
    status TEXT NOT NULL,
    external_id TEXT NOT NULL,
    refund_status TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func setupInMemoryOrdersDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", "file:memdb_orders?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	_, err = db.Exec(`DROP TABLE IF EXISTS orders;`)
	if err != nil {
		t.Fatalf("could not reset orders table: %v", err)
	}
	_, err = db.Exec(initOrdersDB)
	if err != nil {
		t.Fatalf("could not create orders table: %v", err)
	}
	return db
}

func newOrder(userUID uuid.UUID, status models.OrderStatus, externalID string) *models.Order {
	now := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Order{
		UUID:         uuid.New(),
		UserUUID:     userUID,
		ServiceID:    7,
		Link:         "https://instagram.com/p/abc",
		Quantity:     500,
		TotalCost:    1.0,
		Status:       status,
		ExternalID:   externalID,
		RefundStatus: models.RefundNone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func insertOrder(t *testing.T, db *sqlx.DB, repo *OrderRepositoryImpl, order *models.Order) {
	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.CreateOrder(context.Background(), tx, order))
	require.NoError(t, tx.Commit())
}

func TestOrderRepositoryImpl_MarkRefunded_FlipsOnce(t *testing.T) {
	db := setupInMemoryOrdersDB(t)
	defer db.Close()

	repo := NewOrderRepository(db)
	userUID := uuid.New()
	order := newOrder(userUID, models.OrderCanceled, "ext-1")
	insertOrder(t, db, repo, order)

	tx, err := db.Beginx()
	require.NoError(t, err)
	flipped, err := repo.MarkRefunded(context.Background(), tx, &order.UUID)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.True(t, flipped)

	got, err := repo.GetOrderByUUID(context.Background(), &order.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.RefundIssued, got.RefundStatus)
	assert.Equal(t, models.OrderRefunded, got.Status)

	// second refund attempt matches no row
	tx, err = db.Beginx()
	require.NoError(t, err)
	flipped, err = repo.MarkRefunded(context.Background(), tx, &order.UUID)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.False(t, flipped)
}

func TestOrderRepositoryImpl_UpdateStatus_SkipsRefunded(t *testing.T) {
	db := setupInMemoryOrdersDB(t)
	defer db.Close()

	repo := NewOrderRepository(db)
	userUID := uuid.New()
	order := newOrder(userUID, models.OrderProcessing, "ext-2")
	insertOrder(t, db, repo, order)

	require.NoError(t, repo.UpdateStatus(context.Background(), &order.UUID, models.OrderCompleted))
	got, err := repo.GetOrderByUUID(context.Background(), &order.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderCompleted, got.Status)

	tx, err := db.Beginx()
	require.NoError(t, err)
	flipped, err := repo.MarkRefunded(context.Background(), tx, &order.UUID)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.True(t, flipped)

	// a stale vendor status must not resurrect a refunded order
	require.NoError(t, repo.UpdateStatus(context.Background(), &order.UUID, models.OrderCompleted))
	got, err = repo.GetOrderByUUID(context.Background(), &order.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderRefunded, got.Status)
}

func TestOrderRepositoryImpl_GetUnfinishedOrders(t *testing.T) {
	db := setupInMemoryOrdersDB(t)
	defer db.Close()

	repo := NewOrderRepository(db)
	userUID := uuid.New()
	insertOrder(t, db, repo, newOrder(userUID, models.OrderProcessing, "ext-10"))
	insertOrder(t, db, repo, newOrder(userUID, models.OrderInProgress, "ext-11"))
	insertOrder(t, db, repo, newOrder(userUID, models.OrderCompleted, "ext-12"))
	// never accepted by the vendor, nothing to poll
	insertOrder(t, db, repo, newOrder(userUID, models.OrderPending, models.ExternalUnsubmitted))

	count, err := repo.CountUnfinishedOrders()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	orders, err := repo.GetUnfinishedOrders(10, 0)
	require.NoError(t, err)
	require.Len(t, *orders, 2)
	for _, order := range *orders {
		assert.NotEqual(t, models.ExternalUnsubmitted, order.ExternalID)
		assert.NotEqual(t, models.OrderCompleted, order.Status)
	}
}

func TestOrderRepositoryImpl_List(t *testing.T) {
	db := setupInMemoryOrdersDB(t)
	defer db.Close()

	repo := NewOrderRepository(db)
	userUID := uuid.New()
	insertOrder(t, db, repo, newOrder(userUID, models.OrderProcessing, "ext-20"))
	completed := newOrder(userUID, models.OrderCompleted, "ext-21")
	completed.Link = "https://tiktok.com/@someone"
	insertOrder(t, db, repo, completed)

	byStatus, err := repo.List(context.Background(), OrderFilter{Status: "completed", Limit: 10})
	require.NoError(t, err)
	require.Len(t, *byStatus, 1)
	assert.Equal(t, completed.UUID, (*byStatus)[0].UUID)

	byLink, err := repo.List(context.Background(), OrderFilter{Link: "tiktok", Limit: 10})
	require.NoError(t, err)
	require.Len(t, *byLink, 1)
	assert.Equal(t, completed.UUID, (*byLink)[0].UUID)
}
