package event

import (
	"time"

	"github.com/google/uuid"
)

// EventTypeHighRiskDetected is emitted when a scan yields a HIGH risk level.
const EventTypeHighRiskDetected = "risk.high_risk.detected"

// HighRiskDetected is published when an evaluator classifies a subject as
// HIGH risk, so downstream consumers can alert or follow up.
type HighRiskDetected struct {
	ScanID  uuid.UUID `json:"scan_id"`
	Domain  string    `json:"domain"` // contact, chat, trading, veracity
	Subject string    `json:"subject"`
	// Score is the evaluator's primary numeric signal: the risk score for
	// contact/chat/trading scans, the overall confidence for veracity checks.
	Score      int       `json:"score"`
	RiskLevel  string    `json:"risk_level"`
	Findings   []string  `json:"findings"`
	DetectedAt time.Time `json:"detected_at"`
}

// NewHighRiskDetected creates a HighRiskDetected event.
func NewHighRiskDetected(scanID uuid.UUID, domain, subject string, score int, riskLevel string, findings []string, detectedAt time.Time) HighRiskDetected {
	return HighRiskDetected{
		ScanID:     scanID,
		Domain:     domain,
		Subject:    subject,
		Score:      score,
		RiskLevel:  riskLevel,
		Findings:   findings,
		DetectedAt: detectedAt,
	}
}

// EventType returns the event type identifier.
func (e HighRiskDetected) EventType() string {
	return EventTypeHighRiskDetected
}

// AggregateID returns the scan ID as the aggregate identifier.
func (e HighRiskDetected) AggregateID() uuid.UUID {
	return e.ScanID
}
