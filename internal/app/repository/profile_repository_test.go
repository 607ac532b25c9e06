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

const initProfilesDB = `
CREATE TABLE IF NOT EXISTS profiles
(
    id INTEGER PRIMARY KEY,
    user_uuid TEXT UNIQUE NOT NULL,
    balance NUMERIC NOT NULL DEFAULT 0,
    role TEXT NOT NULL DEFAULT 'user',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (balance >= 0)
);
`

func setupInMemoryProfilesDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Open("sqlite3", "file:memdb_profiles?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("could not create in-memory db: %v", err)
	}
	_, err = db.Exec(`DROP TABLE IF EXISTS profiles;`)
	if err != nil {
		t.Fatalf("could not reset profiles table: %v", err)
	}
	_, err = db.Exec(initProfilesDB)
	if err != nil {
		t.Fatalf("could not create profiles table: %v", err)
	}
	return db
}

func createProfile(t *testing.T, db *sqlx.DB, repo *ProfileRepositoryImpl, userUID uuid.UUID, balance float64) {
	tx, err := db.Beginx()
	require.NoError(t, err)
	now := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	profile := &models.Profile{UserUUID: userUID, Balance: balance, Role: models.RoleUser, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.CreateProfile(context.Background(), tx, profile))
	require.NoError(t, tx.Commit())
	assert.NotZero(t, profile.ID, "profile id should be populated")
}

func TestProfileRepositoryImpl_CreateAndGetProfile(t *testing.T) {
	db := setupInMemoryProfilesDB(t)
	defer db.Close()

	repo := NewProfileRepository(db)
	userUID := uuid.New()
	createProfile(t, db, repo, userUID, 0)

	profile, err := repo.GetProfile(context.Background(), &userUID)
	require.NoError(t, err)
	assert.Equal(t, userUID, profile.UserUUID)
	assert.Equal(t, 0.0, profile.Balance)
	assert.Equal(t, models.RoleUser, profile.Role)
}

func TestProfileRepositoryImpl_Credit(t *testing.T) {
	db := setupInMemoryProfilesDB(t)
	defer db.Close()

	repo := NewProfileRepository(db)
	userUID := uuid.New()
	createProfile(t, db, repo, userUID, 10.0)

	tx, err := db.Beginx()
	require.NoError(t, err)
	profile, err := repo.Credit(context.Background(), tx, &userUID, 25.5)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())
	assert.Equal(t, 35.5, profile.Balance)
}

func TestProfileRepositoryImpl_Debit(t *testing.T) {
	db := setupInMemoryProfilesDB(t)
	defer db.Close()

	repo := NewProfileRepository(db)
	userUID := uuid.New()
	createProfile(t, db, repo, userUID, 20.0)

	tests := []struct {
		name        string
		amount      float64
		wantErr     error
		wantBalance float64
	}{
		{
			name:        "Successful Debit",
			amount:      15.0,
			wantBalance: 5.0,
		},
		{
			name:    "Insufficient Funds",
			amount:  100.0,
			wantErr: ErrInsufficientFunds,
		},
		{
			name:        "Exact Balance Debit",
			amount:      5.0,
			wantBalance: 0.0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := db.Beginx()
			require.NoError(t, err)

			profile, err := repo.Debit(context.Background(), tx, &userUID, tt.amount)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NoError(t, tx.Rollback())
				return
			}
			require.NoError(t, err)
			require.NoError(t, tx.Commit())
			assert.Equal(t, tt.wantBalance, profile.Balance)
		})
	}
}
