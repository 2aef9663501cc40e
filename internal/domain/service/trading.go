package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/scamdunk/risk-engine/internal/domain/valueobject"
)

// Symbols with a history of extreme volatility. Membership floors the score
// at 75: the base fingerprint can raise the score above the floor but never
// below it.
var highRiskSymbols = map[string]bool{
	"GME":  true,
	"AMC":  true,
	"BBBY": true,
	"DOGE": true,
	"SHIB": true,
}

// Symbols with elevated but not extreme volatility; score floor of 55.
var mediumRiskSymbols = map[string]bool{
	"TSLA": true,
	"COIN": true,
	"HOOD": true,
	"PLTR": true,
	"MSTR": true,
}

// Tickers of 4+ letters fall outside the classic exchange format and add a
// small boost.
var extendedTicker = regexp.MustCompile(`^[A-Z]{4,}$`)

const (
	highRiskFloor   = 75
	mediumRiskFloor = 55
)

// TradingReport is the result of a trading-symbol risk analysis.
type TradingReport struct {
	Symbol          string                `json:"symbol"`
	RiskScore       int                   `json:"risk_score"`
	RiskLevel       valueobject.RiskLevel `json:"risk_level"`
	Confidence      int                   `json:"confidence"`
	Summary         string                `json:"summary"`
	KeyFindings     []string              `json:"key_findings"`
	Recommendations []string              `json:"recommendations"`
}

// TradingAnalyzer is a domain service that scores ticker symbols for
// volatility risk.
type TradingAnalyzer struct{}

// NewTradingAnalyzer creates a new TradingAnalyzer instance.
func NewTradingAnalyzer() *TradingAnalyzer {
	return &TradingAnalyzer{}
}

// Analyze evaluates a ticker symbol.
func (a *TradingAnalyzer) Analyze(symbolRaw string) TradingReport {
	symbol := strings.ToUpper(symbolRaw)

	score := Fingerprint(symbol, 100)
	findings := make([]string, 0)

	switch {
	case highRiskSymbols[symbol]:
		if score < highRiskFloor {
			score = highRiskFloor
		}
		findings = append(findings, fmt.Sprintf("%s is on the high-volatility watchlist", symbol))
	case mediumRiskSymbols[symbol]:
		if score < mediumRiskFloor {
			score = mediumRiskFloor
		}
		findings = append(findings, fmt.Sprintf("%s is on the elevated-volatility watchlist", symbol))
	}

	if extendedTicker.MatchString(symbol) {
		score = addClamped(score, 10)
		findings = append(findings, "non-standard ticker format (4 or more letters)")
	}

	if len(findings) == 0 {
		findings = append(findings, "no abnormal indicators for this symbol")
	}

	level := valueobject.RiskLevelFromScore(score)
	confidence := 65 + Fingerprint(symbol+":confidence", 30)

	return TradingReport{
		Symbol:          symbol,
		RiskScore:       score,
		RiskLevel:       level,
		Confidence:      confidence,
		Summary:         tradingSummary(level),
		KeyFindings:     findings,
		Recommendations: tradingRecommendations(level),
	}
}

func tradingSummary(level valueobject.RiskLevel) string {
	switch level {
	case valueobject.RiskLevelHigh:
		return "This symbol carries high speculative risk."
	case valueobject.RiskLevelMedium:
		return "This symbol shows moderate risk characteristics."
	default:
		return "No unusual risk detected for this symbol."
	}
}

func tradingRecommendations(level valueobject.RiskLevel) []string {
	switch level {
	case valueobject.RiskLevelHigh:
		return []string{
			"Treat unsolicited tips about this symbol as likely pump-and-dump",
			"Only invest what you can afford to lose",
		}
	case valueobject.RiskLevelMedium:
		return []string{
			"Review recent volatility before trading this symbol",
			"Be skeptical of guaranteed-profit claims",
		}
	default:
		return []string{
			"Apply your usual due diligence before trading",
		}
	}
}
