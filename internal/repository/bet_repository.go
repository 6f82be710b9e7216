package repository

import (
	"context"
	"errors"
	"time"

	"bet-tracker/internal/models"
	apperrors "bet-tracker/pkg/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type BetRepository struct {
	db *gorm.DB
}

func NewBetRepository(db *gorm.DB) *BetRepository {
	return &BetRepository{db: db}
}

// Create persists a new bet record
func (r *BetRepository) Create(ctx context.Context, bet *models.Bet) error {
	if err := r.db.WithContext(ctx).Create(bet).Error; err != nil {
		return &apperrors.StorageError{Op: "create bet", Err: err}
	}
	return nil
}

// GetByID retrieves a bet by ID
func (r *BetRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	var bet models.Bet
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&bet).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperrors.NotFoundError{Entity: "bet", ID: id.String()}
	}
	if err != nil {
		return nil, &apperrors.StorageError{Op: "get bet", Err: err}
	}
	return &bet, nil
}

// ListAll retrieves every recorded bet, no ordering guaranteed
func (r *BetRepository) ListAll(ctx context.Context) ([]models.Bet, error) {
	var bets []models.Bet
	if err := r.db.WithContext(ctx).Find(&bets).Error; err != nil {
		return nil, &apperrors.StorageError{Op: "list bets", Err: err}
	}
	return bets, nil
}

// ListRecent retrieves the most recently placed bets
func (r *BetRepository) ListRecent(ctx context.Context, limit int) ([]models.Bet, error) {
	var bets []models.Bet
	err := r.db.WithContext(ctx).
		Order("placed_at DESC").
		Limit(limit).
		Find(&bets).Error
	if err != nil {
		return nil, &apperrors.StorageError{Op: "list recent bets", Err: err}
	}
	return bets, nil
}

// Settle moves a pending bet to a terminal status and records its payout.
// The read-check-write runs inside one transaction so a concurrent settle
// of the same bet cannot slip past the pending check.
func (r *BetRepository) Settle(
	ctx context.Context,
	id uuid.UUID,
	status models.BetStatus,
	payout decimal.Decimal,
	settledAt time.Time,
) (*models.Bet, error) {
	var bet models.Bet

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).First(&bet).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &apperrors.NotFoundError{Entity: "bet", ID: id.String()}
		}
		if err != nil {
			return &apperrors.StorageError{Op: "get bet", Err: err}
		}

		if bet.Status != models.BetStatusPending {
			return &apperrors.InvalidTransitionError{
				From: string(bet.Status),
				To:   string(status),
			}
		}

		bet.Status = status
		bet.Payout = &payout
		bet.SettledAt = &settledAt

		if err := tx.Save(&bet).Error; err != nil {
			return &apperrors.StorageError{Op: "settle bet", Err: err}
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &bet, nil
}
