package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WeekSummaryView is the current-week block of the dashboard, with
// currency rounded to 2 decimals and percentages to 1.
type WeekSummaryView struct {
	Year       int             `json:"year"`
	WeekNumber int             `json:"week_number"`
	TotalBets  int             `json:"total_bets"`
	Wins       int             `json:"wins"`
	Losses     int             `json:"losses"`
	WinRatePct float64         `json:"win_rate_pct"`
	Profit     decimal.Decimal `json:"profit"`
	ROIPct     float64         `json:"roi_pct"`
}

// OverallSummaryView is the all-time block of the dashboard
type OverallSummaryView struct {
	TotalBets    int             `json:"total_bets"`
	TotalWagered decimal.Decimal `json:"total_wagered"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	ROIPct       float64         `json:"roi_pct"`
}

// BreakdownRow is one bet type's row in the dashboard breakdown table
type BreakdownRow struct {
	BetType    string          `json:"bet_type"`
	Count      int             `json:"count"`
	WinRatePct float64         `json:"win_rate_pct"`
	Profit     decimal.Decimal `json:"profit"`
}

// BetView is a single bet as rendered on the bet-list and dashboard pages
type BetView struct {
	ID              string           `json:"id"`
	PlacedAt        time.Time        `json:"placed_at"`
	BetType         string           `json:"bet_type"`
	Sport           string           `json:"sport,omitempty"`
	GameDescription string           `json:"game_description,omitempty"`
	Description     string           `json:"description,omitempty"`
	Odds            string           `json:"odds"`
	Stake           decimal.Decimal  `json:"stake"`
	PotentialPayout decimal.Decimal  `json:"potential_payout"`
	Status          string           `json:"status"`
	Payout          *decimal.Decimal `json:"payout,omitempty"`
	Profit          *decimal.Decimal `json:"profit,omitempty"`
}

// DashboardView is the full dashboard payload
type DashboardView struct {
	CurrentWeek WeekSummaryView    `json:"current_week"`
	Overall     OverallSummaryView `json:"overall"`
	Breakdown   []BreakdownRow     `json:"breakdown"`
	RecentBets  []BetView          `json:"recent_bets"`
}

// BetListView is the bet-management page payload
type BetListView struct {
	Bets  []BetView `json:"bets"`
	Total int       `json:"total"`
}

// WeekHistoryView is one row of the weekly-history page
type WeekHistoryView struct {
	Year       int             `json:"year"`
	WeekNumber int             `json:"week_number"`
	TotalBets  int             `json:"total_bets"`
	Wins       int             `json:"wins"`
	Losses     int             `json:"losses"`
	WinRatePct float64         `json:"win_rate_pct"`
	Profit     decimal.Decimal `json:"profit"`
	ROIPct     float64         `json:"roi_pct"`
}
