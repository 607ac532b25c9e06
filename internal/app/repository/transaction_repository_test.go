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

const initTransactionsDB = `
CREATE TABLE IF NOT EXISTS transactions
(
    uuid TEXT PRIMARY KEY,
    user_uuid TEXT NOT NULL,
    type TEXT NOT NULL,
    amount NUMERIC NOT NULL,
    status TEXT NOT NULL,
    deposit_method TEXT,
    gateway_reference TEXT UNIQUE,
    order_uuid TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

func setupInMemoryTransactionsDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", "file:memdb_transactions?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	_, err = db.Exec(`DROP TABLE IF EXISTS transactions;`)
	if err != nil {
		t.Fatalf("could not reset transactions table: %v", err)
	}
	_, err = db.Exec(initTransactionsDB)
	if err != nil {
		t.Fatalf("could not create transactions table: %v", err)
	}
	return db
}

func newDeposit(userUID uuid.UUID, reference string) *models.Transaction {
	method := "paystack"
	now := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	return &models.Transaction{
		UUID:             uuid.New(),
		UserUUID:         userUID,
		Type:             models.TxDeposit,
		Amount:           50.0,
		Status:           models.TxPending,
		DepositMethod:    &method,
		GatewayReference: &reference,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func insertTransaction(t *testing.T, db *sqlx.DB, repo *TransactionRepositoryImpl, transaction *models.Transaction) {
	tx, err := db.Beginx()
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), tx, transaction))
	require.NoError(t, tx.Commit())
}

func TestTransactionRepositoryImpl_Create_DuplicateReference(t *testing.T) {
	db := setupInMemoryTransactionsDB(t)
	defer db.Close()

	repo := NewTransactionRepository(db)
	userUID := uuid.New()
	insertTransaction(t, db, repo, newDeposit(userUID, "4929609179994841"))

	tx, err := db.Beginx()
	require.NoError(t, err)
	err = repo.Create(context.Background(), tx, newDeposit(userUID, "4929609179994841"))
	assert.ErrorIs(t, err, ErrDuplicateReference)
	assert.NoError(t, tx.Rollback())
}

func TestTransactionRepositoryImpl_GetByReference(t *testing.T) {
	db := setupInMemoryTransactionsDB(t)
	defer db.Close()

	repo := NewTransactionRepository(db)
	userUID := uuid.New()
	deposit := newDeposit(userUID, "6011000990139424")
	insertTransaction(t, db, repo, deposit)

	got, err := repo.GetByReference(context.Background(), "6011000990139424")
	require.NoError(t, err)
	assert.Equal(t, deposit.UUID, got.UUID)
	assert.Equal(t, userUID, got.UserUUID)

	_, err = repo.GetByReference(context.Background(), "0000000000000000")
	assert.Error(t, err)
}

func TestTransactionRepositoryImpl_MarkApproved_FlipsOnce(t *testing.T) {
	db := setupInMemoryTransactionsDB(t)
	defer db.Close()

	repo := NewTransactionRepository(db)
	userUID := uuid.New()
	deposit := newDeposit(userUID, "378282246310005")
	insertTransaction(t, db, repo, deposit)

	// first flip wins and pins the verified amount
	tx, err := db.Beginx()
	require.NoError(t, err)
	flipped, err := repo.MarkApproved(context.Background(), tx, &deposit.UUID, 75.0)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.True(t, flipped)

	got, err := repo.GetByUUID(context.Background(), &deposit.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.TxApproved, got.Status)
	assert.Equal(t, 75.0, got.Amount)

	// a replayed notification matches no pending row
	tx, err = db.Beginx()
	require.NoError(t, err)
	flipped, err = repo.MarkApproved(context.Background(), tx, &deposit.UUID, 75.0)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.False(t, flipped)
}

func TestTransactionRepositoryImpl_MarkRejected_SkipsTerminal(t *testing.T) {
	db := setupInMemoryTransactionsDB(t)
	defer db.Close()

	repo := NewTransactionRepository(db)
	userUID := uuid.New()
	deposit := newDeposit(userUID, "4000056655665556")
	insertTransaction(t, db, repo, deposit)

	tx, err := db.Beginx()
	require.NoError(t, err)
	flipped, err := repo.MarkApproved(context.Background(), tx, &deposit.UUID, 50.0)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.True(t, flipped)

	// rejection after approval must not change anything
	tx, err = db.Beginx()
	require.NoError(t, err)
	flipped, err = repo.MarkRejected(context.Background(), tx, &deposit.UUID)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.False(t, flipped)

	got, err := repo.GetByUUID(context.Background(), &deposit.UUID)
	require.NoError(t, err)
	assert.Equal(t, models.TxApproved, got.Status)
}

func TestTransactionRepositoryImpl_List(t *testing.T) {
	db := setupInMemoryTransactionsDB(t)
	defer db.Close()

	repo := NewTransactionRepository(db)
	userUID := uuid.New()
	insertTransaction(t, db, repo, newDeposit(userUID, "4929609179994841"))
	pending := newDeposit(userUID, "6011000990139424")
	insertTransaction(t, db, repo, pending)

	tx, err := db.Beginx()
	require.NoError(t, err)
	flipped, err := repo.MarkApproved(context.Background(), tx, &pending.UUID, 50.0)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	require.True(t, flipped)

	approved, err := repo.List(context.Background(), TxFilter{Status: "approved", Limit: 10})
	require.NoError(t, err)
	require.Len(t, *approved, 1)
	assert.Equal(t, pending.UUID, (*approved)[0].UUID)

	byReference, err := repo.List(context.Background(), TxFilter{Reference: "6011", Limit: 10})
	require.NoError(t, err)
	require.Len(t, *byReference, 1)
	assert.Equal(t, pending.UUID, (*byReference)[0].UUID)
}
