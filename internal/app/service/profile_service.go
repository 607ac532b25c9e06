package service

import (
	"context"
	"errors"
	"net/http"
	"time"

	appErrors "github.com/adergachev/smmstore/internal/app/errors"
	"github.com/adergachev/smmstore/internal/app/models"
	"github.com/adergachev/smmstore/internal/app/repository"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type (
	ProfileService interface {
		CreateProfile(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID) error
		GetProfile(ctx context.Context, userUID *uuid.UUID) (*models.Profile, error)
		Credit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount float64) (*models.Profile, error)
		Debit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount float64) (*models.Profile, error)
	}
	ProfileServiceImpl struct {
		profileRepo repository.ProfileRepository
	}
)

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileServiceImpl {
	return &ProfileServiceImpl{profileRepo: profileRepo}
}

func (ps *ProfileServiceImpl) CreateProfile(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID) error {
	now := time.Now()
	newProfile := models.Profile{
		UserUUID:  *userUID,
		Balance:   0,
		Role:      models.RoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := ps.profileRepo.CreateProfile(ctx, tx, &newProfile)
	if err != nil {
		return appErrors.New(err, "create profile")
	}
	return nil
}

func (ps *ProfileServiceImpl) GetProfile(ctx context.Context, userUID *uuid.UUID) (*models.Profile, error) {
	profile, err := ps.profileRepo.GetProfile(ctx, userUID)
	if err != nil {
		return nil, appErrors.New(err, "get profile")
	}
	return profile, nil
}

func (ps *ProfileServiceImpl) Credit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount float64) (*models.Profile, error) {
	return ps.profileRepo.Credit(ctx, tx, userUID, amount)
}

func (ps *ProfileServiceImpl) Debit(ctx context.Context, tx *sqlx.Tx, userUID *uuid.UUID, amount float64) (*models.Profile, error) {
	profile, err := ps.profileRepo.Debit(ctx, tx, userUID, amount)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientFunds) {
			return nil, appErrors.NewWithCode(err, "Insufficient funds", http.StatusPaymentRequired)
		}
		return nil, err
	}
	return profile, nil
}
