package services

import (
	"regexp"
	"strings"

	"bet-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// ParsedBet holds the fields extracted from a sportsbook confirmation email.
type ParsedBet struct {
	Sportsbook      string
	Sport           string
	BetType         models.BetType
	GameDescription string
	Odds            string
	Stake           decimal.Decimal
}

type sportsbook struct {
	name    string
	subject *regexp.Regexp
}

// EmailParser extracts bet details from sportsbook confirmation emails.
type EmailParser struct {
	books        []sportsbook
	betTypeRe    *regexp.Regexp
	gameRe       *regexp.Regexp
	oddsRe       *regexp.Regexp
	anyOddsRe    *regexp.Regexp
	stakeRe      *regexp.Regexp
	anyAmountRe  *regexp.Regexp
	sportKeyword []sportKeywords
}

type sportKeywords struct {
	sport    string
	keywords []string
}

func NewEmailParser() *EmailParser {
	return &EmailParser{
		books: []sportsbook{
			{name: "fanduel", subject: regexp.MustCompile(`(?i)fanduel.*bet.*confirmation|your fanduel bet`)},
			{name: "draftkings", subject: regexp.MustCompile(`(?i)draftkings.*bet.*confirmation|your draftkings bet`)},
			{name: "caesars", subject: regexp.MustCompile(`(?i)caesars.*bet.*confirmation|your caesars bet`)},
		},
		betTypeRe:   regexp.MustCompile(`(?i)\b(spread|moneyline|over|under|total|parlay)\b`),
		gameRe:      regexp.MustCompile(`(?i)([A-Za-z][A-Za-z .]*(?:vs\.?|@)\s*[A-Za-z][A-Za-z .]*)`),
		oddsRe:      regexp.MustCompile(`(?i)odds:\s*([+-]\d+)`),
		anyOddsRe:   regexp.MustCompile(`[+-]\d{3,}\b`),
		stakeRe:     regexp.MustCompile(`(?i)(?:stake|risk|wager):\s*\$(\d+(?:\.\d+)?)`),
		anyAmountRe: regexp.MustCompile(`\$(\d+(?:\.\d+)?)`),
		sportKeyword: []sportKeywords{
			{sport: "NFL", keywords: []string{"nfl", "football", "patriots", "chiefs", "cowboys"}},
			{sport: "NBA", keywords: []string{"nba", "basketball", "lakers", "warriors", "celtics"}},
			{sport: "MLB", keywords: []string{"mlb", "baseball", "yankees", "dodgers", "red sox"}},
			{sport: "NHL", keywords: []string{"nhl", "hockey", "rangers", "bruins", "penguins"}},
			{sport: "Soccer", keywords: []string{"soccer", "mls", "premier league", "champions league"}},
			{sport: "Tennis", keywords: []string{"tennis", "atp", "wta", "wimbledon", "us open"}},
			{sport: "Golf", keywords: []string{"golf", "pga", "masters", "open championship"}},
		},
	}
}

// Parse extracts bet details from a confirmation email. It returns nil
// when the sportsbook cannot be identified or the essential fields
// (stake and odds) are missing.
func (p *EmailParser) Parse(content, subject string) *ParsedBet {
	book := p.identifySportsbook(subject, content)
	if book == "" {
		return nil
	}

	odds := p.extractOdds(content)
	stakeStr := p.extractStake(content)
	if odds == "" || stakeStr == "" {
		return nil
	}

	stake, err := decimal.NewFromString(stakeStr)
	if err != nil || !stake.IsPositive() {
		return nil
	}

	return &ParsedBet{
		Sportsbook:      book,
		Sport:           p.detectSport(content),
		BetType:         p.mapBetType(content),
		GameDescription: p.extractGame(content),
		Odds:            odds,
		Stake:           stake,
	}
}

func (p *EmailParser) identifySportsbook(subject, content string) string {
	text := subject + " " + content

	for _, book := range p.books {
		if book.subject.MatchString(text) {
			return book.name
		}
	}

	// Fallback: the sportsbook name anywhere in the text
	lower := strings.ToLower(text)
	for _, book := range p.books {
		if strings.Contains(lower, book.name) {
			return book.name
		}
	}
	return ""
}

// extractOdds prefers a labeled "Odds:" line; otherwise the first signed
// three-digit number, which skips spread lines like "-3.5".
func (p *EmailParser) extractOdds(content string) string {
	if m := p.oddsRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return p.anyOddsRe.FindString(content)
}

func (p *EmailParser) extractStake(content string) string {
	if m := p.stakeRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	// Fallback: the first dollar amount in the email
	if m := p.anyAmountRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return ""
}

func (p *EmailParser) extractGame(content string) string {
	match := p.gameRe.FindString(content)
	return strings.Join(strings.Fields(match), " ")
}

// mapBetType maps the bet-type keyword found in the email onto the closed
// enumeration. Unrecognized wagers fall back to prop.
func (p *EmailParser) mapBetType(content string) models.BetType {
	match := strings.ToLower(p.betTypeRe.FindString(content))
	switch match {
	case "spread":
		return models.BetTypeSpread
	case "moneyline":
		return models.BetTypeMoneyline
	case "over", "under", "total":
		return models.BetTypeOverUnder
	case "parlay":
		return models.BetTypeParlay
	}
	return models.BetTypeProp
}

func (p *EmailParser) detectSport(content string) string {
	lower := strings.ToLower(content)
	for _, entry := range p.sportKeyword {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.sport
			}
		}
	}
	return "Other"
}
