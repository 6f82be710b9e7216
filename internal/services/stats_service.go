package services

import (
	"sort"
	"time"

	"bet-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// StatsService computes derived statistics over the full bet collection.
// Every method is a pure function of its inputs; the reference time for
// week bucketing is always passed in by the caller. Weeks follow ISO 8601
// (Monday start), so a bet belongs to the current week when its placement
// date has the same ISO year and week as the reference time.
//
// All division-by-zero cases in the rate and ROI formulas resolve to 0,
// never to an error or NaN.
type StatsService struct{}

func NewStatsService() *StatsService {
	return &StatsService{}
}

// CurrentWeekSummary aggregates the bets placed in the ISO week
// containing now.
func (s *StatsService) CurrentWeekSummary(bets []models.Bet, now time.Time) models.WeekSummary {
	year, week := now.ISOWeek()

	var filtered []models.Bet
	for _, bet := range bets {
		if bet.Year == year && bet.WeekNumber == week {
			filtered = append(filtered, bet)
		}
	}

	return s.summarizeWeek(filtered)
}

// summarizeWeek applies the summary formulas to an already-filtered slice.
// Pending bets count toward TotalBets only; win rate is computed over
// decided (won or lost) bets, and profit/ROI over settled bets.
func (s *StatsService) summarizeWeek(bets []models.Bet) models.WeekSummary {
	summary := models.WeekSummary{Profit: decimal.Zero}
	settledStake := decimal.Zero

	for _, bet := range bets {
		summary.TotalBets++

		switch bet.Status {
		case models.BetStatusWon:
			summary.Wins++
		case models.BetStatusLost:
			summary.Losses++
		}

		if profit, ok := bet.Profit(); ok {
			summary.Profit = summary.Profit.Add(profit)
			settledStake = settledStake.Add(bet.Stake)
		}
	}

	summary.WinRatePct = ratePct(summary.Wins, summary.Wins+summary.Losses)
	summary.ROIPct = roiPct(summary.Profit, settledStake)
	return summary
}

// OverallSummary aggregates the entire collection with no week filter.
// TotalWagered includes pending stakes; profit and ROI cover settled
// bets only.
func (s *StatsService) OverallSummary(bets []models.Bet) models.OverallSummary {
	summary := models.OverallSummary{
		TotalWagered: decimal.Zero,
		TotalProfit:  decimal.Zero,
	}
	settledStake := decimal.Zero

	for _, bet := range bets {
		summary.TotalBets++
		summary.TotalWagered = summary.TotalWagered.Add(bet.Stake)

		if profit, ok := bet.Profit(); ok {
			summary.TotalProfit = summary.TotalProfit.Add(profit)
			settledStake = settledStake.Add(bet.Stake)
		}
	}

	summary.ROIPct = roiPct(summary.TotalProfit, settledStake)
	return summary
}

// BreakdownByType groups settled bets by bet type. Every type in the
// enumeration is present in the result; types with no settled bets
// report zero counts, a 0 win rate and 0 profit.
func (s *StatsService) BreakdownByType(bets []models.Bet) map[models.BetType]models.TypeBreakdown {
	breakdown := make(map[models.BetType]models.TypeBreakdown, len(models.AllBetTypes()))
	for _, betType := range models.AllBetTypes() {
		breakdown[betType] = models.TypeBreakdown{BetType: betType, Profit: decimal.Zero}
	}

	for _, bet := range bets {
		profit, ok := bet.Profit()
		if !ok {
			continue
		}

		entry := breakdown[bet.BetType]
		entry.Count++
		switch bet.Status {
		case models.BetStatusWon:
			entry.Wins++
		case models.BetStatusLost:
			entry.Losses++
		}
		entry.Profit = entry.Profit.Add(profit)
		breakdown[bet.BetType] = entry
	}

	for betType, entry := range breakdown {
		entry.WinRatePct = ratePct(entry.Wins, entry.Wins+entry.Losses)
		breakdown[betType] = entry
	}

	return breakdown
}

// WeeklyHistory produces a per-week summary for every ISO week that has
// at least one bet, newest week first.
func (s *StatsService) WeeklyHistory(bets []models.Bet) []models.WeekHistoryEntry {
	type weekKey struct {
		year int
		week int
	}

	grouped := make(map[weekKey][]models.Bet)
	for _, bet := range bets {
		key := weekKey{year: bet.Year, week: bet.WeekNumber}
		grouped[key] = append(grouped[key], bet)
	}

	keys := make([]weekKey, 0, len(grouped))
	for key := range grouped {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year > keys[j].year
		}
		return keys[i].week > keys[j].week
	})

	history := make([]models.WeekHistoryEntry, 0, len(keys))
	for _, key := range keys {
		history = append(history, models.WeekHistoryEntry{
			Year:        key.year,
			WeekNumber:  key.week,
			WeekSummary: s.summarizeWeek(grouped[key]),
		})
	}
	return history
}

// ratePct returns numer/denom as a percentage, 0 when denom is 0.
func ratePct(numer, denom int) float64 {
	if denom == 0 {
		return 0
	}
	return float64(numer) / float64(denom) * 100
}

// roiPct returns profit/staked as a percentage, 0 when nothing was staked.
func roiPct(profit, staked decimal.Decimal) float64 {
	if staked.IsZero() {
		return 0
	}
	roi, _ := profit.Div(staked).Mul(decimal.NewFromInt(100)).Float64()
	return roi
}
