package services

import (
	"math"
	"sort"
	"time"

	"bet-tracker/internal/models"
)

// RecentBetsLimit is how many bets the dashboard shows.
const RecentBetsLimit = 10

// ViewService maps aggregates and bet records into the view models the
// dashboard and bet-list pages render. Formatting only: currency is
// rounded to 2 decimals, percentages to 1.
type ViewService struct {
	stats *StatsService
}

func NewViewService(stats *StatsService) *ViewService {
	return &ViewService{stats: stats}
}

// Dashboard builds the dashboard payload from the full bet collection.
func (v *ViewService) Dashboard(bets []models.Bet, now time.Time) models.DashboardView {
	year, week := now.ISOWeek()

	weekSummary := v.stats.CurrentWeekSummary(bets, now)
	overall := v.stats.OverallSummary(bets)
	breakdown := v.stats.BreakdownByType(bets)

	rows := make([]models.BreakdownRow, 0, len(breakdown))
	for _, betType := range models.AllBetTypes() {
		entry := breakdown[betType]
		rows = append(rows, models.BreakdownRow{
			BetType:    string(entry.BetType),
			Count:      entry.Count,
			WinRatePct: round1(entry.WinRatePct),
			Profit:     entry.Profit.Round(2),
		})
	}

	recent := make([]models.Bet, len(bets))
	copy(recent, bets)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].PlacedAt.After(recent[j].PlacedAt)
	})
	if len(recent) > RecentBetsLimit {
		recent = recent[:RecentBetsLimit]
	}

	return models.DashboardView{
		CurrentWeek: models.WeekSummaryView{
			Year:       year,
			WeekNumber: week,
			TotalBets:  weekSummary.TotalBets,
			Wins:       weekSummary.Wins,
			Losses:     weekSummary.Losses,
			WinRatePct: round1(weekSummary.WinRatePct),
			Profit:     weekSummary.Profit.Round(2),
			ROIPct:     round1(weekSummary.ROIPct),
		},
		Overall: models.OverallSummaryView{
			TotalBets:    overall.TotalBets,
			TotalWagered: overall.TotalWagered.Round(2),
			TotalProfit:  overall.TotalProfit.Round(2),
			ROIPct:       round1(overall.ROIPct),
		},
		Breakdown:  rows,
		RecentBets: v.betViews(recent),
	}
}

// BetList builds the bet-management page payload.
func (v *ViewService) BetList(bets []models.Bet) models.BetListView {
	return models.BetListView{
		Bets:  v.betViews(bets),
		Total: len(bets),
	}
}

// WeeklyHistory builds the weekly-history page payload.
func (v *ViewService) WeeklyHistory(bets []models.Bet) []models.WeekHistoryView {
	entries := v.stats.WeeklyHistory(bets)

	views := make([]models.WeekHistoryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, models.WeekHistoryView{
			Year:       entry.Year,
			WeekNumber: entry.WeekNumber,
			TotalBets:  entry.TotalBets,
			Wins:       entry.Wins,
			Losses:     entry.Losses,
			WinRatePct: round1(entry.WinRatePct),
			Profit:     entry.Profit.Round(2),
			ROIPct:     round1(entry.ROIPct),
		})
	}
	return views
}

func (v *ViewService) betViews(bets []models.Bet) []models.BetView {
	views := make([]models.BetView, 0, len(bets))
	for i := range bets {
		views = append(views, v.betView(&bets[i]))
	}
	return views
}

func (v *ViewService) betView(bet *models.Bet) models.BetView {
	view := models.BetView{
		ID:              bet.ID.String(),
		PlacedAt:        bet.PlacedAt,
		BetType:         string(bet.BetType),
		Sport:           bet.Sport,
		GameDescription: bet.GameDescription,
		Description:     bet.Description,
		Odds:            bet.Odds,
		Stake:           bet.Stake.Round(2),
		PotentialPayout: bet.PotentialPayout.Round(2),
		Status:          string(bet.Status),
	}

	if bet.Payout != nil {
		payout := bet.Payout.Round(2)
		view.Payout = &payout
	}
	if profit, ok := bet.Profit(); ok {
		rounded := profit.Round(2)
		view.Profit = &rounded
	}

	return view
}

// round1 rounds a percentage to one decimal place.
func round1(pct float64) float64 {
	return math.Round(pct*10) / 10
}
