package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// ErrInsufficientFunds is returned by Debit when the conditional update
// matches no row, i.e. the balance is lower than the requested amount.
var ErrInsufficientFunds = errors.New("insufficient funds")

type ProfileRepository interface {
	CreateProfile(ctx context.Context, tx *sqlx.Tx, profile *models.Profile) error
	GetProfile(ctx context.Context, userUID *uuid.UUID) (*models.Profile, error)
	Credit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount float64) (*models.Profile, error)
	Debit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount float64) (*models.Profile, error)
	GetDB() *sqlx.DB
}

type ProfileRepositoryImpl struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) *ProfileRepositoryImpl {
	return &ProfileRepositoryImpl{db: db}
}

func (pr *ProfileRepositoryImpl) CreateProfile(ctx context.Context, tx *sqlx.Tx, profile *models.Profile) error {
	query := `INSERT INTO profiles (user_uuid, balance, role, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5) returning id;`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	err = stmt.QueryRowContext(ctx, profile.UserUUID, profile.Balance, profile.Role, profile.CreatedAt, profile.UpdatedAt).Scan(&profile.ID)
	if err != nil {
		return fmt.Errorf("exec statement: %w", err)
	}
	return nil
}

func (pr *ProfileRepositoryImpl) GetProfile(ctx context.Context, userUID *uuid.UUID) (*models.Profile, error) {
	query := `SELECT * FROM profiles WHERE user_uuid = $1;`
	profile := models.Profile{}
	err := pr.db.GetContext(ctx, &profile, query, userUID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &profile, nil
}

// Credit adds amount to the balance in a single statement. The exactly-once
// guarantee for deposits lives in the transaction status flip, not here.
func (pr *ProfileRepositoryImpl) Credit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount float64) (*models.Profile, error) {
	query := `UPDATE profiles SET balance = balance + $1, updated_at = $2 WHERE user_uuid = $3 returning *;`
	profile := models.Profile{}
	err := tx.GetContext(ctx, &profile, query, amount, time.Now(), userUID)
	if err != nil {
		return nil, fmt.Errorf("credit: %w", err)
	}
	return &profile, nil
}

// Debit subtracts amount only when the balance covers it; no row matched
// means insufficient funds. This keeps the balance >= 0 invariant without a
// separate read.
func (pr *ProfileRepositoryImpl) Debit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount float64) (*models.Profile, error) {
	query := `UPDATE profiles SET balance = balance - $1, updated_at = $2
			  WHERE user_uuid = $3 AND balance >= $1 returning *;`
	profile := models.Profile{}
	err := tx.GetContext(ctx, &profile, query, amount, time.Now(), userUID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInsufficientFunds
		}
		return nil, fmt.Errorf("debit: %w", err)
	}
	return &profile, nil
}

func (pr *ProfileRepositoryImpl) GetDB() *sqlx.DB {
	return pr.db
}
