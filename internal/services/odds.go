package services

import (
	"regexp"
	"strconv"

	apperrors "bet-tracker/pkg/errors"

	"github.com/shopspring/decimal"
)

var americanOddsPattern = regexp.MustCompile(`^[+-]?\d+$`)

// ParseAmericanOdds validates an American odds string ("-110", "+150")
// and returns its numeric value. Absolute values below 100 are rejected.
func ParseAmericanOdds(odds string) (int, error) {
	if !americanOddsPattern.MatchString(odds) {
		return 0, &apperrors.ValidationError{Field: "odds", Message: "must be American odds, e.g. -110 or +150"}
	}

	value, err := strconv.Atoi(odds)
	if err != nil {
		return 0, &apperrors.ValidationError{Field: "odds", Message: "must be a whole number"}
	}

	if value > -100 && value < 100 {
		return 0, &apperrors.ValidationError{Field: "odds", Message: "absolute value must be at least 100"}
	}

	return value, nil
}

// PotentialPayout returns stake plus projected winnings at the given
// American odds: positive odds pay odds/100 per unit staked, negative
// odds pay 100/|odds| per unit staked.
func PotentialPayout(stake decimal.Decimal, odds int) decimal.Decimal {
	hundred := decimal.NewFromInt(100)

	var winnings decimal.Decimal
	if odds > 0 {
		winnings = stake.Mul(decimal.NewFromInt(int64(odds))).Div(hundred)
	} else {
		winnings = stake.Mul(hundred).Div(decimal.NewFromInt(int64(-odds)))
	}

	return stake.Add(winnings).Round(2)
}
