package service

import (
	"fmt"
	"strings"

	"github.com/scamdunk/risk-engine/internal/domain/valueobject"
)

// Known-bad email domains. Membership adds a heavy boost and marks the
// contact as a scammer outright.
var scamDomains = map[string]bool{
	"fraudmail.com":      true,
	"scam-alerts.net":    true,
	"quickcash-now.com":  true,
	"lottery-winner.org": true,
	"crypto-doubler.io":  true,
}

// TLDs with elevated abuse rates. Suffix match adds a moderate boost but does
// not by itself set the scammer verdict.
var highRiskTLDs = []string{".ru", ".cn", ".tk"}

// International dialing-code prefixes with elevated scam-call rates.
var highRiskDialPrefixes = []string{"+234", "+375", "+63", "+92"}

// scammerScoreThreshold is the overall score at which the verdict is forced
// true even without an explicit denylist or prefix hit.
const scammerScoreThreshold = 65

// ContactInput contains the data required for a contact reputation check.
type ContactInput struct {
	ContactType  string // "email", "phone", or other
	ContactValue string
}

// ContactReport is the result of a contact reputation check.
type ContactReport struct {
	Contact         string                `json:"contact"`
	ContactType     string                `json:"contact_type"`
	IsScammer       bool                  `json:"is_scammer"`
	RiskScore       int                   `json:"risk_score"`
	RiskLevel       valueobject.RiskLevel `json:"risk_level"`
	Confidence      int                   `json:"confidence"`
	Summary         string                `json:"summary"`
	KeyFindings     []string              `json:"key_findings"`
	Recommendations []string              `json:"recommendations"`
}

// ContactAssessor is a domain service that scores email and phone contacts
// using rule-based heuristics.
type ContactAssessor struct{}

// NewContactAssessor creates a new ContactAssessor instance.
func NewContactAssessor() *ContactAssessor {
	return &ContactAssessor{}
}

// Assess evaluates the reputation of a contact. The function is total: any
// string, including malformed addresses, is normalized and scored. A missing
// "@" simply yields an empty domain that fails every domain rule.
func (a *ContactAssessor) Assess(input ContactInput) ContactReport {
	value := strings.ToLower(strings.TrimSpace(input.ContactValue))

	score := Fingerprint(value, 100)
	findings := make([]string, 0)
	isScammer := false

	switch input.ContactType {
	case "email":
		domain := ""
		if i := strings.Index(value, "@"); i >= 0 {
			domain = value[i+1:]
		}
		if scamDomains[domain] {
			score = addClamped(score, 30)
			isScammer = true
			findings = append(findings, fmt.Sprintf("email domain %q appears on a known scam domain list", domain))
		}
		for _, tld := range highRiskTLDs {
			if strings.HasSuffix(domain, tld) {
				score = addClamped(score, 15)
				findings = append(findings, fmt.Sprintf("email domain uses the higher-risk TLD %q", tld))
				break
			}
		}
	case "phone":
		for _, prefix := range highRiskDialPrefixes {
			if strings.HasPrefix(value, prefix) {
				score = addClamped(score, 20)
				isScammer = true
				findings = append(findings, fmt.Sprintf("phone number uses the high-risk dialing prefix %q", prefix))
				break
			}
		}
	}

	// A high overall score is itself damning, even without an explicit hit.
	if score >= scammerScoreThreshold {
		isScammer = true
	}

	level := valueobject.RiskLevelFromScore(score)
	confidence := 70 + Fingerprint(value+":confidence", 30)

	return ContactReport{
		Contact:         value,
		ContactType:     input.ContactType,
		IsScammer:       isScammer,
		RiskScore:       score,
		RiskLevel:       level,
		Confidence:      confidence,
		Summary:         contactSummary(level),
		KeyFindings:     findings,
		Recommendations: contactRecommendations(level),
	}
}

func contactSummary(level valueobject.RiskLevel) string {
	switch level {
	case valueobject.RiskLevelHigh:
		return "This contact shows strong indicators of fraudulent activity."
	case valueobject.RiskLevelMedium:
		return "This contact has elevated risk markers; proceed with caution."
	default:
		return "No significant risk indicators found for this contact."
	}
}

func contactRecommendations(level valueobject.RiskLevel) []string {
	switch level {
	case valueobject.RiskLevelHigh:
		return []string{
			"Do not engage further with this contact",
			"Block the contact and report it to your platform",
			"Never send money or share credentials",
		}
	case valueobject.RiskLevelMedium:
		return []string{
			"Request additional verification before continuing",
			"Avoid sharing personal or financial details",
		}
	default:
		return []string{
			"Follow routine security hygiene",
			"Re-check this contact if it starts asking for money or credentials",
		}
	}
}
