package services

import (
	"testing"
	"time"

	"bet-tracker/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// testBet builds a bet placed at the given time. payout < 0 means the bet
// is still pending.
func testBet(placedAt time.Time, betType models.BetType, status models.BetStatus, stake, payout float64) models.Bet {
	year, week := placedAt.ISOWeek()

	bet := models.Bet{
		ID:         uuid.New(),
		PlacedAt:   placedAt,
		WeekNumber: week,
		Year:       year,
		BetType:    betType,
		Odds:       "-110",
		Stake:      decimal.NewFromFloat(stake),
		Status:     status,
	}
	if status != models.BetStatusPending {
		p := decimal.NewFromFloat(payout)
		bet.Payout = &p
	}
	return bet
}

// Monday of a fixed reference week, far from any year boundary.
var weekStart = time.Date(2025, time.June, 9, 12, 0, 0, 0, time.UTC)

func TestCurrentWeekSummaryMixedWeek(t *testing.T) {
	stats := NewStatsService()

	bets := []models.Bet{
		testBet(weekStart, models.BetTypeSpread, models.BetStatusWon, 50, 90),
		testBet(weekStart.AddDate(0, 0, 2), models.BetTypeMoneyline, models.BetStatusLost, 50, 0),
		testBet(weekStart.AddDate(0, 0, 3), models.BetTypeProp, models.BetStatusPending, 20, 0),
		// Previous week, must not count
		testBet(weekStart.AddDate(0, 0, -3), models.BetTypeSpread, models.BetStatusWon, 100, 300),
	}

	summary := stats.CurrentWeekSummary(bets, weekStart.AddDate(0, 0, 4))

	if summary.TotalBets != 3 {
		t.Errorf("expected 3 bets this week, got %d", summary.TotalBets)
	}
	if summary.Wins != 1 || summary.Losses != 1 {
		t.Errorf("expected 1 win / 1 loss, got %d / %d", summary.Wins, summary.Losses)
	}
	if summary.WinRatePct != 50.0 {
		t.Errorf("expected win rate 50.0, got %v", summary.WinRatePct)
	}
	if !summary.Profit.Equal(decimal.NewFromInt(-10)) {
		t.Errorf("expected weekly profit -10, got %s", summary.Profit)
	}
	// Profit -10 over 100 staked on settled bets
	if summary.ROIPct != -10.0 {
		t.Errorf("expected ROI -10.0, got %v", summary.ROIPct)
	}
}

func TestCurrentWeekSummarySingleWin(t *testing.T) {
	stats := NewStatsService()

	bets := []models.Bet{
		testBet(weekStart, models.BetTypeMoneyline, models.BetStatusWon, 100, 180),
	}

	summary := stats.CurrentWeekSummary(bets, weekStart)

	if !summary.Profit.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected profit 80, got %s", summary.Profit)
	}
	if summary.ROIPct != 80.0 {
		t.Errorf("expected ROI 80.0, got %v", summary.ROIPct)
	}
	if summary.WinRatePct != 100.0 {
		t.Errorf("expected win rate 100.0, got %v", summary.WinRatePct)
	}
}

func TestSummaryZeroDenominators(t *testing.T) {
	stats := NewStatsService()

	// No decided bets anywhere, and no settled stake outside the
	// push-only case; a push yields zero profit over its stake, so every
	// rate and ROI here must come out 0 without error.
	cases := []struct {
		name string
		bets []models.Bet
	}{
		{"empty collection", nil},
		{"pending only", []models.Bet{
			testBet(weekStart, models.BetTypeSpread, models.BetStatusPending, 50, 0),
			testBet(weekStart, models.BetTypeParlay, models.BetStatusPending, 25, 0),
		}},
		{"pushes only", []models.Bet{
			testBet(weekStart, models.BetTypeSpread, models.BetStatusPush, 50, 50),
			testBet(weekStart, models.BetTypeFutures, models.BetStatusPush, 30, 30),
		}},
	}

	for _, tc := range cases {
		summary := stats.CurrentWeekSummary(tc.bets, weekStart)
		if summary.WinRatePct != 0 {
			t.Errorf("%s: expected win rate 0, got %v", tc.name, summary.WinRatePct)
		}
		if summary.ROIPct != 0 {
			t.Errorf("%s: expected ROI 0, got %v", tc.name, summary.ROIPct)
		}

		overall := stats.OverallSummary(tc.bets)
		if overall.ROIPct != 0 {
			t.Errorf("%s: expected overall ROI 0, got %v", tc.name, overall.ROIPct)
		}
	}
}

func TestCancelledBetForfeitsStake(t *testing.T) {
	stats := NewStatsService()

	// A cancelled bet pays out 0 and is settled, so it loses its stake
	// and counts in the ROI denominator. With a push alongside it:
	// profit = (50-50) + (0-30) = -30 over 80 settled stake.
	bets := []models.Bet{
		testBet(weekStart, models.BetTypeSpread, models.BetStatusPush, 50, 50),
		testBet(weekStart, models.BetTypeFutures, models.BetStatusCancelled, 30, 0),
	}

	summary := stats.CurrentWeekSummary(bets, weekStart)

	if !summary.Profit.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("expected weekly profit -30, got %s", summary.Profit)
	}
	if summary.ROIPct != -37.5 {
		t.Errorf("expected ROI -37.5, got %v", summary.ROIPct)
	}
	// Neither bet is a win or a loss, so the win rate stays 0.
	if summary.WinRatePct != 0 {
		t.Errorf("expected win rate 0, got %v", summary.WinRatePct)
	}

	overall := stats.OverallSummary(bets)
	if !overall.TotalProfit.Equal(decimal.NewFromInt(-30)) {
		t.Errorf("expected overall profit -30, got %s", overall.TotalProfit)
	}
	if overall.ROIPct != -37.5 {
		t.Errorf("expected overall ROI -37.5, got %v", overall.ROIPct)
	}
}

func TestWeeklyProfitPendingOnly(t *testing.T) {
	stats := NewStatsService()

	bets := []models.Bet{
		testBet(weekStart, models.BetTypeSpread, models.BetStatusPending, 50, 0),
		testBet(weekStart, models.BetTypeLive, models.BetStatusPending, 75, 0),
	}

	summary := stats.CurrentWeekSummary(bets, weekStart)
	if !summary.Profit.IsZero() {
		t.Errorf("expected profit 0 for pending-only week, got %s", summary.Profit)
	}
	if summary.TotalBets != 2 {
		t.Errorf("pending bets still count toward total, got %d", summary.TotalBets)
	}
}

func TestOverallSummaryIncludesPendingInWagered(t *testing.T) {
	stats := NewStatsService()

	bets := []models.Bet{
		testBet(weekStart, models.BetTypeSpread, models.BetStatusWon, 100, 180),
		testBet(weekStart.AddDate(0, 0, -7), models.BetTypeProp, models.BetStatusPending, 40, 0),
	}

	overall := stats.OverallSummary(bets)

	if overall.TotalBets != 2 {
		t.Errorf("expected 2 total bets, got %d", overall.TotalBets)
	}
	if !overall.TotalWagered.Equal(decimal.NewFromInt(140)) {
		t.Errorf("expected total wagered 140 including pending, got %s", overall.TotalWagered)
	}
	if !overall.TotalProfit.Equal(decimal.NewFromInt(80)) {
		t.Errorf("expected total profit 80, got %s", overall.TotalProfit)
	}
	// Profit 80 over 100 settled stake
	if overall.ROIPct != 80.0 {
		t.Errorf("expected ROI 80.0, got %v", overall.ROIPct)
	}
}

func TestBreakdownByTypeCoversAllTypes(t *testing.T) {
	stats := NewStatsService()

	bets := []models.Bet{
		testBet(weekStart, models.BetTypeSpread, models.BetStatusWon, 50, 95),
		testBet(weekStart, models.BetTypeSpread, models.BetStatusLost, 50, 0),
		// Moneyline bet exists but is not settled
		testBet(weekStart, models.BetTypeMoneyline, models.BetStatusPending, 30, 0),
	}

	breakdown := stats.BreakdownByType(bets)

	if len(breakdown) != len(models.AllBetTypes()) {
		t.Fatalf("expected an entry for every bet type, got %d", len(breakdown))
	}

	spread := breakdown[models.BetTypeSpread]
	if spread.Count != 2 {
		t.Errorf("expected 2 settled spread bets, got %d", spread.Count)
	}
	if spread.WinRatePct != 50.0 {
		t.Errorf("expected spread win rate 50.0, got %v", spread.WinRatePct)
	}
	if !spread.Profit.Equal(decimal.NewFromInt(-5)) {
		t.Errorf("expected spread profit -5, got %s", spread.Profit)
	}

	// The pending moneyline bet contributes nothing
	moneyline := breakdown[models.BetTypeMoneyline]
	if moneyline.Count != 0 {
		t.Errorf("expected 0 settled moneyline bets, got %d", moneyline.Count)
	}
	if moneyline.WinRatePct != 0 || !moneyline.Profit.IsZero() {
		t.Errorf("expected zero-valued moneyline entry, got rate %v profit %s", moneyline.WinRatePct, moneyline.Profit)
	}

	// A type with no bets at all is still present and zero-valued
	futures := breakdown[models.BetTypeFutures]
	if futures.Count != 0 || futures.WinRatePct != 0 || !futures.Profit.IsZero() {
		t.Errorf("expected zero-valued futures entry, got %+v", futures)
	}
}

func TestWeeklyHistoryNewestFirst(t *testing.T) {
	stats := NewStatsService()

	bets := []models.Bet{
		testBet(weekStart.AddDate(0, 0, -14), models.BetTypeSpread, models.BetStatusWon, 10, 25),
		testBet(weekStart, models.BetTypeSpread, models.BetStatusLost, 10, 0),
		testBet(weekStart.AddDate(0, 0, 1), models.BetTypeProp, models.BetStatusPending, 5, 0),
	}

	history := stats.WeeklyHistory(bets)

	if len(history) != 2 {
		t.Fatalf("expected 2 weeks of history, got %d", len(history))
	}

	newest, oldest := history[0], history[1]
	if newest.Year < oldest.Year || (newest.Year == oldest.Year && newest.WeekNumber <= oldest.WeekNumber) {
		t.Errorf("expected newest week first, got %d/W%d before %d/W%d",
			newest.Year, newest.WeekNumber, oldest.Year, oldest.WeekNumber)
	}
	if newest.TotalBets != 2 {
		t.Errorf("expected 2 bets in the newest week, got %d", newest.TotalBets)
	}
	if !oldest.Profit.Equal(decimal.NewFromInt(15)) {
		t.Errorf("expected oldest week profit 15, got %s", oldest.Profit)
	}
}
