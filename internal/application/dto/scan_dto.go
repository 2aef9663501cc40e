package dto

import (
	"time"

	"github.com/scamdunk/risk-engine/internal/domain/service"
)

// ContactScanRequest is the input DTO for a contact reputation scan.
type ContactScanRequest struct {
	ContactType  string `json:"contactType"`
	ContactValue string `json:"contactValue"`
}

// ContactScanResponse is the output DTO for a contact reputation scan.
type ContactScanResponse struct {
	ScanID          string    `json:"scan_id"`
	Contact         string    `json:"contact"`
	ContactType     string    `json:"contact_type"`
	IsScammer       bool      `json:"is_scammer"`
	RiskScore       int       `json:"risk_score"`
	RiskLevel       string    `json:"risk_level"`
	Confidence      int       `json:"confidence"`
	Summary         string    `json:"summary"`
	KeyFindings     []string  `json:"key_findings"`
	Recommendations []string  `json:"recommendations"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
}

// ChatScanRequest is the input DTO for a conversation scan.
type ChatScanRequest struct {
	Platform string                `json:"platform"`
	Messages []service.ChatMessage `json:"messages"`
}

// ChatScanResponse is the output DTO for a conversation scan. The same shape
// is returned whether the judgment came from the external AI service or from
// the deterministic heuristic fallback; Source records which path produced it.
type ChatScanResponse struct {
	ScanID             string    `json:"scan_id"`
	Platform           string    `json:"platform"`
	MessageCount       int       `json:"message_count"`
	SuspiciousMentions []string  `json:"suspicious_mentions"`
	OverallRiskScore   int       `json:"overall_risk_score"`
	RiskLevel          string    `json:"risk_level"`
	Confidence         int       `json:"confidence"`
	Summary            string    `json:"summary"`
	KeyFindings        []string  `json:"key_findings"`
	Recommendations    []string  `json:"recommendations"`
	Source             string    `json:"source"` // "ai" or "heuristic"
	AnalyzedAt         time.Time `json:"analyzed_at"`
}

// TradingScanRequest is the input DTO for a trading-symbol scan.
type TradingScanRequest struct {
	Symbol string `json:"symbol"`
}

// TradingScanResponse is the output DTO for a trading-symbol scan.
type TradingScanResponse struct {
	ScanID          string    `json:"scan_id"`
	Symbol          string    `json:"symbol"`
	RiskScore       int       `json:"risk_score"`
	RiskLevel       string    `json:"risk_level"`
	Confidence      int       `json:"confidence"`
	Summary         string    `json:"summary"`
	KeyFindings     []string  `json:"key_findings"`
	Recommendations []string  `json:"recommendations"`
	AnalyzedAt      time.Time `json:"analyzed_at"`
}

// VeracityScanRequest is the input DTO for an entity veracity check.
type VeracityScanRequest struct {
	TargetIdentifier string `json:"targetIdentifier"`
	TargetType       string `json:"targetType"`
}

// VeracityScanResponse is the output DTO for an entity veracity check.
type VeracityScanResponse struct {
	ScanID             string    `json:"scan_id"`
	Target             string    `json:"target"`
	TargetType         string    `json:"target_type"`
	IsVerified         bool      `json:"is_verified"`
	VerificationStatus string    `json:"verification_status"`
	OverallConfidence  int       `json:"overall_confidence"`
	RiskLevel          string    `json:"risk_level"`
	Summary            string    `json:"summary"`
	KeyFindings        []string  `json:"key_findings"`
	Recommendations    []string  `json:"recommendations"`
	AnalyzedAt         time.Time `json:"analyzed_at"`
}

// FromContactReport maps a domain contact report to the response DTO.
func FromContactReport(scanID string, r service.ContactReport, analyzedAt time.Time) ContactScanResponse {
	return ContactScanResponse{
		ScanID:          scanID,
		Contact:         r.Contact,
		ContactType:     r.ContactType,
		IsScammer:       r.IsScammer,
		RiskScore:       r.RiskScore,
		RiskLevel:       r.RiskLevel.String(),
		Confidence:      r.Confidence,
		Summary:         r.Summary,
		KeyFindings:     r.KeyFindings,
		Recommendations: r.Recommendations,
		AnalyzedAt:      analyzedAt,
	}
}

// FromChatReport maps a domain chat report to the response DTO.
func FromChatReport(scanID string, r service.ChatReport, source string, analyzedAt time.Time) ChatScanResponse {
	return ChatScanResponse{
		ScanID:             scanID,
		Platform:           r.Platform,
		MessageCount:       r.MessageCount,
		SuspiciousMentions: r.SuspiciousMentions,
		OverallRiskScore:   r.RiskScore,
		RiskLevel:          r.RiskLevel.String(),
		Confidence:         r.Confidence,
		Summary:            r.Summary,
		KeyFindings:        r.KeyFindings,
		Recommendations:    r.Recommendations,
		Source:             source,
		AnalyzedAt:         analyzedAt,
	}
}

// FromTradingReport maps a domain trading report to the response DTO.
func FromTradingReport(scanID string, r service.TradingReport, analyzedAt time.Time) TradingScanResponse {
	return TradingScanResponse{
		ScanID:          scanID,
		Symbol:          r.Symbol,
		RiskScore:       r.RiskScore,
		RiskLevel:       r.RiskLevel.String(),
		Confidence:      r.Confidence,
		Summary:         r.Summary,
		KeyFindings:     r.KeyFindings,
		Recommendations: r.Recommendations,
		AnalyzedAt:      analyzedAt,
	}
}

// FromVeracityReport maps a domain veracity report to the response DTO.
func FromVeracityReport(scanID string, r service.VeracityReport, analyzedAt time.Time) VeracityScanResponse {
	return VeracityScanResponse{
		ScanID:             scanID,
		Target:             r.Target,
		TargetType:         r.TargetType,
		IsVerified:         r.IsVerified,
		VerificationStatus: r.VerificationStatus.String(),
		OverallConfidence:  r.OverallConfidence,
		RiskLevel:          r.RiskLevel.String(),
		Summary:            r.Summary,
		KeyFindings:        r.KeyFindings,
		Recommendations:    r.Recommendations,
		AnalyzedAt:         analyzedAt,
	}
}
