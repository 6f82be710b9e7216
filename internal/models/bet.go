package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BetStatus string

const (
	BetStatusPending   BetStatus = "pending"
	BetStatusWon       BetStatus = "won"
	BetStatusLost      BetStatus = "lost"
	BetStatusPush      BetStatus = "push"
	BetStatusCancelled BetStatus = "cancelled"
)

// Terminal reports whether the status is a settlement state.
func (s BetStatus) Terminal() bool {
	switch s {
	case BetStatusWon, BetStatusLost, BetStatusPush, BetStatusCancelled:
		return true
	}
	return false
}

type BetType string

const (
	BetTypeSpread    BetType = "spread"
	BetTypeMoneyline BetType = "moneyline"
	BetTypeOverUnder BetType = "over_under"
	BetTypeParlay    BetType = "parlay"
	BetTypeProp      BetType = "prop"
	BetTypeFutures   BetType = "futures"
	BetTypeLive      BetType = "live"
)

// AllBetTypes returns the closed set of bet types in display order.
func AllBetTypes() []BetType {
	return []BetType{
		BetTypeSpread,
		BetTypeMoneyline,
		BetTypeOverUnder,
		BetTypeParlay,
		BetTypeProp,
		BetTypeFutures,
		BetTypeLive,
	}
}

// Valid reports whether the bet type is in the closed enumeration.
func (t BetType) Valid() bool {
	switch t {
	case BetTypeSpread, BetTypeMoneyline, BetTypeOverUnder, BetTypeParlay,
		BetTypeProp, BetTypeFutures, BetTypeLive:
		return true
	}
	return false
}

// Bet represents a single recorded wager
type Bet struct {
	ID              uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	PlacedAt        time.Time        `gorm:"not null;index" json:"placed_at"`
	WeekNumber      int              `gorm:"not null;index" json:"week_number"`
	Year            int              `gorm:"not null;index" json:"year"`
	BetType         BetType          `gorm:"size:50;not null;index" json:"bet_type"`
	Sport           string           `gorm:"size:50" json:"sport"`
	GameDescription string           `gorm:"size:200" json:"game_description"`
	Description     string           `gorm:"size:200" json:"description"`
	Odds            string           `gorm:"size:20;not null" json:"odds"`
	Stake           decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"stake"`
	PotentialPayout decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"potential_payout"`
	Status          BetStatus        `gorm:"size:20;not null;default:pending;index" json:"status"`
	Payout          *decimal.Decimal `gorm:"type:decimal(12,2)" json:"payout,omitempty"`
	SettledAt       *time.Time       `json:"settled_at,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

// TableName specifies the table name for Bet model
func (Bet) TableName() string {
	return "bets"
}

// Settled reports whether the bet has left the pending state.
func (b *Bet) Settled() bool {
	return b.Status.Terminal()
}

// Profit returns payout minus stake for a settled bet. The second return
// value is false while the bet is pending, where profit is undefined.
func (b *Bet) Profit() (decimal.Decimal, bool) {
	if !b.Settled() || b.Payout == nil {
		return decimal.Zero, false
	}
	return b.Payout.Sub(b.Stake), true
}

// CreateBetRequest represents a request to record a new bet
type CreateBetRequest struct {
	PlacedAt        *time.Time      `json:"placed_at"`
	BetType         string          `json:"bet_type" binding:"required"`
	Sport           string          `json:"sport"`
	GameDescription string          `json:"game_description"`
	Description     string          `json:"description"`
	Odds            string          `json:"odds" binding:"required"`
	Stake           decimal.Decimal `json:"stake"`
}

// SettleBetRequest represents a request to settle a pending bet
type SettleBetRequest struct {
	Status string           `json:"status" binding:"required"`
	Payout *decimal.Decimal `json:"payout"`
}
