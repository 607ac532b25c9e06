package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicateReference signals that another writer already owns the gateway
// reference. The reconciler treats it as "lost the insert race": re-fetch the
// existing row and continue idempotently.
var ErrDuplicateReference = errors.New("gateway reference already recorded")

type TxFilter struct {
	Status    string
	Type      string
	Reference string
	Limit     int
	Offset    int
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *sqlx.Tx, transaction *models.Transaction) error
	GetByUUID(ctx context.Context, txUUID *uuid.UUID) (*models.Transaction, error)
	GetByReference(ctx context.Context, reference string) (*models.Transaction, error)
	GetByUserUID(ctx context.Context, userUID *uuid.UUID) (*[]models.Transaction, error)
	MarkApproved(ctx context.Context, tx *sqlx.Tx, txUUID *uuid.UUID, amount float64) (bool, error)
	MarkRejected(ctx context.Context, tx *sqlx.Tx, txUUID *uuid.UUID) (bool, error)
	List(ctx context.Context, filter TxFilter) (*[]models.Transaction, error)
	GetDB() *sqlx.DB
}

type TransactionRepositoryImpl struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) *TransactionRepositoryImpl {
	return &TransactionRepositoryImpl{db: db}
}

func (tr *TransactionRepositoryImpl) Create(ctx context.Context, tx *sqlx.Tx, transaction *models.Transaction) error {
	query := `INSERT INTO transactions (uuid, user_uuid, type, amount, status, deposit_method, gateway_reference, order_uuid, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, transaction.UUID, transaction.UserUUID, transaction.Type.String(),
		transaction.Amount, transaction.Status.String(), transaction.DepositMethod,
		transaction.GatewayReference, transaction.OrderUUID, transaction.CreatedAt, transaction.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateReference
		}
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (tr *TransactionRepositoryImpl) GetByUUID(ctx context.Context, txUUID *uuid.UUID) (*models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE uuid = $1;`
	transaction := &models.Transaction{}
	err := tr.db.GetContext(ctx, transaction, query, txUUID)
	if err != nil {
		return nil, appErrors.NewWithCode(err, "Transaction not found", http.StatusNotFound)
	}
	return transaction, nil
}

func (tr *TransactionRepositoryImpl) GetByReference(ctx context.Context, reference string) (*models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE gateway_reference = $1;`
	transaction := &models.Transaction{}
	err := tr.db.GetContext(ctx, transaction, query, reference)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NewWithCode(err, "Transaction not found", http.StatusNotFound)
		}
		return nil, fmt.Errorf("get transaction by reference: %w", err)
	}
	return transaction, nil
}

func (tr *TransactionRepositoryImpl) GetByUserUID(ctx context.Context, userUID *uuid.UUID) (*[]models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE user_uuid = $1 order by created_at desc;`
	transactions := make([]models.Transaction, 0)
	err := tr.db.SelectContext(ctx, &transactions, query, userUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &transactions, nil
		}
		return nil, fmt.Errorf("read user transactions: %w", err)
	}
	return &transactions, nil
}

// MarkApproved flips pending -> approved and pins the final amount in one
// conditional statement. False with nil error means the row was already
// terminal: the caller must not credit the balance.
func (tr *TransactionRepositoryImpl) MarkApproved(ctx context.Context, tx *sqlx.Tx, txUUID *uuid.UUID, amount float64) (bool, error) {
	query := `UPDATE transactions SET status = $1, amount = $2, updated_at = $3
			  WHERE uuid = $4 AND status = $5;`
	res, err := tx.ExecContext(ctx, query, models.TxApproved.String(), amount, time.Now(), txUUID, models.TxPending.String())
	if err != nil {
		return false, fmt.Errorf("approve transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("approve transaction rows affected: %w", err)
	}
	return affected == 1, nil
}

func (tr *TransactionRepositoryImpl) MarkRejected(ctx context.Context, tx *sqlx.Tx, txUUID *uuid.UUID) (bool, error) {
	query := `UPDATE transactions SET status = $1, updated_at = $2
			  WHERE uuid = $3 AND status = $4;`
	res, err := tx.ExecContext(ctx, query, models.TxRejected.String(), time.Now(), txUUID, models.TxPending.String())
	if err != nil {
		return false, fmt.Errorf("reject transaction: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("reject transaction rows affected: %w", err)
	}
	return affected == 1, nil
}

func (tr *TransactionRepositoryImpl) List(ctx context.Context, filter TxFilter) (*[]models.Transaction, error) {
	query := `SELECT * FROM transactions WHERE 1=1`
	args := make([]interface{}, 0, 5)
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Reference != "" {
		args = append(args, "%"+filter.Reference+"%")
		query += fmt.Sprintf(" AND gateway_reference LIKE $%d", len(args))
	}
	query += " order by created_at desc"
	args = append(args, filter.Limit)
	query += fmt.Sprintf(" limit $%d", len(args))
	args = append(args, filter.Offset)
	query += fmt.Sprintf(" offset $%d", len(args))

	transactions := make([]models.Transaction, 0)
	err := tr.db.SelectContext(ctx, &transactions, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &transactions, nil
		}
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return &transactions, nil
}

func (tr *TransactionRepositoryImpl) GetDB() *sqlx.DB {
	return tr.db
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return true
	}
	// sqlite wording, hit by the repository tests
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
