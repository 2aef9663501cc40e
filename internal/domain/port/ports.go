package port

import (
	"context"

	"github.com/scamdunk/risk-engine/internal/domain/event"
)

// QuickScanResult is the normalized response of the external AI detection
// service. Scores and confidence are in [0,1] as returned by the service.
type QuickScanResult struct {
	RiskScore          float64
	Confidence         float64
	ScamIndicators     int
	SuspiciousPatterns int
}

// AIDetectionClient defines the port for the external AI conversation
// analysis service. The heuristic engine is the fallback when this client
// reports the service unavailable.
type AIDetectionClient interface {
	// QuickScan sends a conversation to the AI service and returns its
	// risk judgment.
	QuickScan(ctx context.Context, platform string, texts []string) (QuickScanResult, error)
}

// AlertPublisher defines the port for publishing high-risk alert events.
type AlertPublisher interface {
	// Publish sends one or more alert events to the messaging infrastructure.
	Publish(ctx context.Context, events ...event.HighRiskDetected) error
}
