package services

import (
	"context"
	"log"
	"sort"
	"time"

	"bet-tracker/internal/models"
	"bet-tracker/internal/repository"
	apperrors "bet-tracker/pkg/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BetService handles the bet lifecycle: creation, settlement, reads.
type BetService struct {
	repo *repository.BetRepository
}

func NewBetService(repo *repository.BetRepository) *BetService {
	return &BetService{repo: repo}
}

// CreateBet validates and records a new bet. The bet always starts
// pending with no payout.
func (s *BetService) CreateBet(ctx context.Context, req *models.CreateBetRequest) (*models.Bet, error) {
	if !req.Stake.IsPositive() {
		return nil, &apperrors.ValidationError{Field: "stake", Message: "must be greater than 0"}
	}

	betType := models.BetType(req.BetType)
	if !betType.Valid() {
		return nil, &apperrors.ValidationError{Field: "bet_type", Message: "unknown bet type '" + req.BetType + "'"}
	}

	odds, err := ParseAmericanOdds(req.Odds)
	if err != nil {
		return nil, err
	}

	placedAt := time.Now()
	if req.PlacedAt != nil {
		placedAt = *req.PlacedAt
	}
	year, week := placedAt.ISOWeek()

	bet := &models.Bet{
		ID:              uuid.New(),
		PlacedAt:        placedAt,
		WeekNumber:      week,
		Year:            year,
		BetType:         betType,
		Sport:           req.Sport,
		GameDescription: req.GameDescription,
		Description:     req.Description,
		Odds:            req.Odds,
		Stake:           req.Stake,
		PotentialPayout: PotentialPayout(req.Stake, odds),
		Status:          models.BetStatusPending,
	}

	if err := s.repo.Create(ctx, bet); err != nil {
		log.Printf("Error creating bet: %v", err)
		return nil, err
	}

	log.Printf("Bet recorded: ID=%s, type=%s, stake=%s, odds=%s", bet.ID, bet.BetType, bet.Stake, bet.Odds)
	return bet, nil
}

// SettleBet moves a pending bet to a terminal status. The payout is
// derived from the status: 0 for lost/cancelled, the stake for push,
// the supplied (or potential) payout for won.
func (s *BetService) SettleBet(ctx context.Context, id uuid.UUID, req *models.SettleBetRequest) (*models.Bet, error) {
	status := models.BetStatus(req.Status)
	if !status.Terminal() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "must be won, lost, push or cancelled"}
	}

	if req.Payout != nil && req.Payout.IsNegative() {
		return nil, &apperrors.ValidationError{Field: "payout", Message: "must not be negative"}
	}

	bet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payout, err := settlementPayout(bet, status, req.Payout)
	if err != nil {
		return nil, err
	}

	settled, err := s.repo.Settle(ctx, id, status, payout, time.Now())
	if err != nil {
		log.Printf("Error settling bet %s: %v", id, err)
		return nil, err
	}

	log.Printf("Bet settled: ID=%s, status=%s, payout=%s", settled.ID, settled.Status, payout)
	return settled, nil
}

// settlementPayout resolves the payout for a terminal status and rejects
// inconsistent combinations.
func settlementPayout(bet *models.Bet, status models.BetStatus, supplied *decimal.Decimal) (decimal.Decimal, error) {
	switch status {
	case models.BetStatusLost, models.BetStatusCancelled:
		if supplied != nil && !supplied.IsZero() {
			return decimal.Zero, &apperrors.ValidationError{
				Field:   "payout",
				Message: "must be 0 for a " + string(status) + " bet",
			}
		}
		return decimal.Zero, nil

	case models.BetStatusPush:
		if supplied != nil && !supplied.Equal(bet.Stake) {
			return decimal.Zero, &apperrors.ValidationError{
				Field:   "payout",
				Message: "must equal the stake for a push",
			}
		}
		return bet.Stake, nil

	case models.BetStatusWon:
		if supplied == nil {
			// Fall back to the payout projected at creation.
			return bet.PotentialPayout, nil
		}
		if !supplied.IsPositive() {
			return decimal.Zero, &apperrors.ValidationError{
				Field:   "payout",
				Message: "must be greater than 0 for a won bet",
			}
		}
		return *supplied, nil
	}

	return decimal.Zero, &apperrors.ValidationError{Field: "status", Message: "unsupported status '" + string(status) + "'"}
}

// GetBet retrieves a single bet by ID.
func (s *BetService) GetBet(ctx context.Context, id uuid.UUID) (*models.Bet, error) {
	return s.repo.GetByID(ctx, id)
}

// ListBets retrieves every bet, newest first.
func (s *BetService) ListBets(ctx context.Context) ([]models.Bet, error) {
	bets, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("Error listing bets: %v", err)
		return nil, err
	}

	sort.Slice(bets, func(i, j int) bool {
		return bets[i].PlacedAt.After(bets[j].PlacedAt)
	})
	return bets, nil
}

// RecentBets retrieves the most recently placed bets.
func (s *BetService) RecentBets(ctx context.Context, limit int) ([]models.Bet, error) {
	return s.repo.ListRecent(ctx, limit)
}
