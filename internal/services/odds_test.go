package services

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmericanOdds(t *testing.T) {
	valid := map[string]int{
		"+150":  150,
		"-110":  -110,
		"100":   100,
		"-100":  -100,
		"+2500": 2500,
	}
	for odds, want := range valid {
		got, err := ParseAmericanOdds(odds)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", odds, err)
			continue
		}
		if got != want {
			t.Errorf("%s: expected %d, got %d", odds, want, got)
		}
	}

	invalid := []string{"", "EVEN", "+1.5", "-99", "+50", "0", "1/2", "+-110"}
	for _, odds := range invalid {
		if _, err := ParseAmericanOdds(odds); err == nil {
			t.Errorf("%s: expected error", odds)
		}
	}
}

func TestPotentialPayout(t *testing.T) {
	cases := []struct {
		stake float64
		odds  int
		want  float64
	}{
		{100, 150, 250},    // +150: wins 1.5x the stake
		{110, -110, 210},   // -110: wins 100 on 110
		{25, -110, 47.73},  // rounded to cents
		{50, 100, 100},     // even odds double the stake
		{10, -200, 15},
	}

	for _, tc := range cases {
		got := PotentialPayout(decimal.NewFromFloat(tc.stake), tc.odds)
		if !got.Equal(decimal.NewFromFloat(tc.want)) {
			t.Errorf("stake %v at %+d: expected %v, got %s", tc.stake, tc.odds, tc.want, got)
		}
	}
}
