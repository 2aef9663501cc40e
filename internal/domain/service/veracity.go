package service

import (
	"fmt"
	"strings"

	"github.com/scamdunk/risk-engine/internal/domain/valueobject"
)

// Substrings that suggest an entity is not a legitimately registered business.
var redFlagTerms = []string{"unregistered", "shell", "no-license", "offshore"}

// Substrings that reference regulators; informational only.
var regulatoryTerms = []string{"sec", "gov"}

// VeracityReport is the result of an entity legitimacy check.
//
// Unlike the other evaluators, risk here is derived from confidence in
// legitimacy, not from an accumulated risk score: low confidence means high
// risk. The breakpoints (45/65) are intentionally different from the shared
// classifier's (40/70) and this evaluator must not be routed through
// valueobject.RiskLevelFromScore.
type VeracityReport struct {
	Target             string                          `json:"target"`
	TargetType         string                          `json:"target_type"`
	IsVerified         bool                            `json:"is_verified"`
	VerificationStatus valueobject.VerificationStatus  `json:"verification_status"`
	OverallConfidence  int                             `json:"overall_confidence"`
	RiskLevel          valueobject.RiskLevel           `json:"risk_level"`
	Summary            string                          `json:"summary"`
	KeyFindings        []string                        `json:"key_findings"`
	Recommendations    []string                        `json:"recommendations"`
}

// VeracityChecker is a domain service that estimates whether an entity
// identifier describes a legitimately registered business.
type VeracityChecker struct{}

// NewVeracityChecker creates a new VeracityChecker instance.
func NewVeracityChecker() *VeracityChecker {
	return &VeracityChecker{}
}

// Check evaluates an entity identifier.
func (c *VeracityChecker) Check(targetIdentifier, targetType string) VeracityReport {
	normalized := strings.ToLower(targetIdentifier)

	confidence := 70 + Fingerprint(normalized, 30)
	isVerified := true
	findings := make([]string, 0)

	flagged := false
	for _, term := range redFlagTerms {
		if strings.Contains(normalized, term) {
			flagged = true
			findings = append(findings, fmt.Sprintf("identifier contains red-flag term %q", term))
		}
	}
	// One reduction regardless of how many terms matched; the rule is a
	// single "contains any" condition.
	if flagged {
		isVerified = false
		confidence -= 30
		if confidence < 20 {
			confidence = 20
		}
	}

	for _, term := range regulatoryTerms {
		if strings.Contains(normalized, term) {
			findings = append(findings, "identifier references a regulatory keyword (sec/gov)")
			break
		}
	}

	if len(findings) == 0 {
		findings = append(findings, "no registration red flags identified")
	}

	overall := confidence
	if overall > 100 {
		overall = 100
	}

	// Inverted scale: low confidence in legitimacy means high risk.
	var level valueobject.RiskLevel
	switch {
	case overall < 45:
		level = valueobject.RiskLevelHigh
	case overall < 65:
		level = valueobject.RiskLevelMedium
	default:
		level = valueobject.RiskLevelLow
	}

	return VeracityReport{
		Target:             normalized,
		TargetType:         targetType,
		IsVerified:         isVerified,
		VerificationStatus: valueobject.VerificationStatusFromBool(isVerified),
		OverallConfidence:  overall,
		RiskLevel:          level,
		Summary:            veracitySummary(level),
		KeyFindings:        findings,
		Recommendations:    veracityRecommendations(level),
	}
}

func veracitySummary(level valueobject.RiskLevel) string {
	switch level {
	case valueobject.RiskLevelHigh:
		return "Entity legitimacy could not be established; high risk of misrepresentation."
	case valueobject.RiskLevelMedium:
		return "Entity verification is inconclusive; treat claims with caution."
	default:
		return "Entity appears legitimate based on available heuristics."
	}
}

func veracityRecommendations(level valueobject.RiskLevel) []string {
	switch level {
	case valueobject.RiskLevelHigh:
		return []string{
			"Do not transfer funds to this entity",
			"Check the relevant regulator's public register directly",
		}
	case valueobject.RiskLevelMedium:
		return []string{
			"Request registration documents before proceeding",
			"Cross-check the entity on official registries",
		}
	default:
		return []string{
			"Standard counterparty checks are sufficient",
		}
	}
}
