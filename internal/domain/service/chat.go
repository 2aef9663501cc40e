package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/scamdunk/risk-engine/internal/domain/valueobject"
)

// Phrases commonly used in scam conversations, scanned in this fixed order.
// Detected mentions are reported in list order, not occurrence order.
var scamKeywords = []string{
	"wire transfer",
	"guaranteed return",
	"seed phrase",
	"gift card",
	"crypto wallet",
	"double your money",
	"act now",
	"western union",
	"verify your account",
	"urgent",
}

// A run of 4+ consecutive uppercase letters is treated as an aggressive-tone
// signal when it appears in enough messages.
var uppercaseBurst = regexp.MustCompile(`[A-Z]{4,}`)

// ChatMessage is a single message in a conversation. A zero-value message is
// treated as empty text.
type ChatMessage struct {
	Text string `json:"text"`
}

// ChatInput contains the data required for a conversation risk analysis.
type ChatInput struct {
	Platform string
	Messages []ChatMessage
}

// ChatReport is the result of a conversation risk analysis.
type ChatReport struct {
	Platform           string                `json:"platform"`
	MessageCount       int                   `json:"message_count"`
	SuspiciousMentions []string              `json:"suspicious_mentions"`
	RiskScore          int                   `json:"risk_score"`
	RiskLevel          valueobject.RiskLevel `json:"risk_level"`
	Confidence         int                   `json:"confidence"`
	Summary            string                `json:"summary"`
	KeyFindings        []string              `json:"key_findings"`
	Recommendations    []string              `json:"recommendations"`
}

// ChatAnalyzer is a domain service that scores conversations for
// scam-language signals.
type ChatAnalyzer struct{}

// NewChatAnalyzer creates a new ChatAnalyzer instance.
func NewChatAnalyzer() *ChatAnalyzer {
	return &ChatAnalyzer{}
}

// Analyze evaluates a conversation. An empty message list is valid and
// produces a deterministic report with no mentions and no tone signal.
func (a *ChatAnalyzer) Analyze(input ChatInput) ChatReport {
	var sb strings.Builder
	uppercaseBursts := 0
	for _, msg := range input.Messages {
		sb.WriteString(strings.ToLower(msg.Text))
		if uppercaseBurst.MatchString(msg.Text) {
			uppercaseBursts++
		}
	}
	concatenated := sb.String()

	mentions := make([]string, 0)
	for _, keyword := range scamKeywords {
		if strings.Contains(concatenated, keyword) {
			mentions = append(mentions, keyword)
		}
	}

	messageCount := len(input.Messages)
	score := Fingerprint(input.Platform+":"+concatenated, 100)
	score = addClamped(score, 8*len(mentions))

	aggressiveTone := float64(uppercaseBursts) > max(2, 0.1*float64(messageCount))
	if aggressiveTone {
		score = addClamped(score, 10)
	}

	level := valueobject.RiskLevelFromScore(score)
	confidence := 60 + Fingerprint(input.Platform+":"+strconv.Itoa(messageCount), 35)

	findings := make([]string, 0, 3)
	findings = append(findings, fmt.Sprintf("%d messages analyzed", messageCount))
	if len(mentions) == 0 {
		findings = append(findings, "no suspicious phrases detected")
	} else {
		findings = append(findings, fmt.Sprintf("%d suspicious phrases detected: %s",
			len(mentions), strings.Join(mentions, ", ")))
	}
	if aggressiveTone {
		findings = append(findings, "aggressive tone detected: frequent uppercase bursts")
	} else {
		findings = append(findings, "conversation tone within normal range")
	}

	return ChatReport{
		Platform:           input.Platform,
		MessageCount:       messageCount,
		SuspiciousMentions: mentions,
		RiskScore:          score,
		RiskLevel:          level,
		Confidence:         confidence,
		Summary:            chatSummary(level),
		KeyFindings:        findings,
		Recommendations:    chatRecommendations(level),
	}
}

func chatSummary(level valueobject.RiskLevel) string {
	switch level {
	case valueobject.RiskLevelHigh:
		return "This conversation exhibits strong scam indicators."
	case valueobject.RiskLevelMedium:
		return "This conversation contains patterns often seen in scams."
	default:
		return "No significant scam indicators in this conversation."
	}
}

func chatRecommendations(level valueobject.RiskLevel) []string {
	switch level {
	case valueobject.RiskLevelHigh:
		return []string{
			"Stop responding to this conversation",
			"Do not send money or share account details",
			"Report the sender to the platform",
		}
	case valueobject.RiskLevelMedium:
		return []string{
			"Verify the sender's identity through a separate channel",
			"Be wary of urgency or payment requests",
		}
	default:
		return []string{
			"No immediate action required",
			"Stay alert for requests involving money or credentials",
		}
	}
}
