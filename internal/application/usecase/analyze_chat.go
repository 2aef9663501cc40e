package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/scamdunk/risk-engine/internal/application/dto"
	"github.com/scamdunk/risk-engine/internal/domain/event"
	"github.com/scamdunk/risk-engine/internal/domain/port"
	"github.com/scamdunk/risk-engine/internal/domain/service"
	"github.com/scamdunk/risk-engine/internal/domain/valueobject"
)

// Values for ChatScanResponse.Source.
const (
	SourceAI        = "ai"
	SourceHeuristic = "heuristic"
)

// AnalyzeChat is the use case for conversation risk analysis. It prefers the
// external AI detection service and falls back to the deterministic heuristic
// engine when the service is unreachable or returns a non-success status,
// preserving the same response shape.
type AnalyzeChat struct {
	ai        port.AIDetectionClient
	heuristic *service.ChatAnalyzer
	alerts    port.AlertPublisher
	logger    *slog.Logger
}

// NewAnalyzeChat creates a new AnalyzeChat use case. ai may be nil, in which
// case the heuristic engine is always used.
func NewAnalyzeChat(ai port.AIDetectionClient, heuristic *service.ChatAnalyzer, alerts port.AlertPublisher, logger *slog.Logger) *AnalyzeChat {
	return &AnalyzeChat{
		ai:        ai,
		heuristic: heuristic,
		alerts:    alerts,
		logger:    logger,
	}
}

// Execute analyzes a conversation.
func (uc *AnalyzeChat) Execute(ctx context.Context, req dto.ChatScanRequest) dto.ChatScanResponse {
	scanID := uuid.New()
	now := time.Now().UTC()

	resp, ok := uc.tryAI(ctx, scanID.String(), req, now)
	if !ok {
		report := uc.heuristic.Analyze(service.ChatInput{
			Platform: req.Platform,
			Messages: req.Messages,
		})
		resp = dto.FromChatReport(scanID.String(), report, SourceHeuristic, now)
	}

	if resp.RiskLevel == valueobject.RiskLevelHigh.String() {
		publishHighRiskAlert(ctx, uc.alerts, uc.logger, event.NewHighRiskDetected(
			scanID, "chat", fmt.Sprintf("%s conversation (%d messages)", req.Platform, len(req.Messages)),
			resp.OverallRiskScore, resp.RiskLevel, resp.KeyFindings, now,
		))
	}

	return resp
}

// tryAI attempts analysis through the external AI service. It returns false
// when the service is unavailable so the caller can fall back.
func (uc *AnalyzeChat) tryAI(ctx context.Context, scanID string, req dto.ChatScanRequest, now time.Time) (dto.ChatScanResponse, bool) {
	if uc.ai == nil {
		return dto.ChatScanResponse{}, false
	}

	texts := make([]string, len(req.Messages))
	for i, msg := range req.Messages {
		texts[i] = msg.Text
	}

	result, err := uc.ai.QuickScan(ctx, req.Platform, texts)
	if err != nil {
		uc.logger.Warn("AI detection service unavailable, using heuristic analysis",
			slog.String("platform", req.Platform),
			slog.String("error", err.Error()),
		)
		return dto.ChatScanResponse{}, false
	}

	score := clampScore(int(math.Round(result.RiskScore * 100)))
	confidence := clampScore(int(math.Round(result.Confidence * 100)))
	level := valueobject.RiskLevelFromScore(score)

	findings := []string{
		fmt.Sprintf("%d messages analyzed", len(req.Messages)),
		fmt.Sprintf("%d scam indicators reported by the AI ensemble", result.ScamIndicators),
		fmt.Sprintf("%d suspicious patterns reported by the AI ensemble", result.SuspiciousPatterns),
	}

	return dto.ChatScanResponse{
		ScanID:             scanID,
		Platform:           req.Platform,
		MessageCount:       len(req.Messages),
		SuspiciousMentions: make([]string, 0),
		OverallRiskScore:   score,
		RiskLevel:          level.String(),
		Confidence:         confidence,
		Summary:            aiChatSummary(level),
		KeyFindings:        findings,
		Recommendations:    aiChatRecommendations(level),
		Source:             SourceAI,
		AnalyzedAt:         now,
	}, true
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func aiChatSummary(level valueobject.RiskLevel) string {
	switch level {
	case valueobject.RiskLevelHigh:
		return "AI analysis found strong scam indicators in this conversation."
	case valueobject.RiskLevelMedium:
		return "AI analysis found patterns often associated with scams."
	default:
		return "AI analysis found no significant scam indicators."
	}
}

func aiChatRecommendations(level valueobject.RiskLevel) []string {
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
