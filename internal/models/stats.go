package models

import "github.com/shopspring/decimal"

// WeekSummary represents aggregated statistics for a single ISO week
type WeekSummary struct {
	TotalBets  int             `json:"total_bets"`
	Wins       int             `json:"wins"`
	Losses     int             `json:"losses"`
	WinRatePct float64         `json:"win_rate_pct"`
	Profit     decimal.Decimal `json:"profit"`
	ROIPct     float64         `json:"roi_pct"`
}

// OverallSummary represents aggregated statistics over every recorded bet
type OverallSummary struct {
	TotalBets    int             `json:"total_bets"`
	TotalWagered decimal.Decimal `json:"total_wagered"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	ROIPct       float64         `json:"roi_pct"`
}

// TypeBreakdown represents per-bet-type statistics over settled bets
type TypeBreakdown struct {
	BetType    BetType         `json:"bet_type"`
	Count      int             `json:"count"`
	Wins       int             `json:"wins"`
	Losses     int             `json:"losses"`
	WinRatePct float64         `json:"win_rate_pct"`
	Profit     decimal.Decimal `json:"profit"`
}

// WeekHistoryEntry represents one week's summary in the all-time history
type WeekHistoryEntry struct {
	Year       int `json:"year"`
	WeekNumber int `json:"week_number"`
	WeekSummary
}
