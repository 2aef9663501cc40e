package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/scamdunk/risk-engine/internal/application/dto"
	"github.com/scamdunk/risk-engine/internal/domain/event"
	"github.com/scamdunk/risk-engine/internal/domain/port"
	"github.com/scamdunk/risk-engine/internal/domain/service"
	"github.com/scamdunk/risk-engine/internal/domain/valueobject"
)

// CheckVeracity is the use case for checking entity legitimacy.
type CheckVeracity struct {
	checker *service.VeracityChecker
	alerts  port.AlertPublisher
	logger  *slog.Logger
}

// NewCheckVeracity creates a new CheckVeracity use case.
func NewCheckVeracity(checker *service.VeracityChecker, alerts port.AlertPublisher, logger *slog.Logger) *CheckVeracity {
	return &CheckVeracity{
		checker: checker,
		alerts:  alerts,
		logger:  logger,
	}
}

// Execute runs the entity veracity heuristic.
func (uc *CheckVeracity) Execute(ctx context.Context, req dto.VeracityScanRequest) dto.VeracityScanResponse {
	report := uc.checker.Check(req.TargetIdentifier, req.TargetType)

	scanID := uuid.New()
	now := time.Now().UTC()

	if report.RiskLevel.Equal(valueobject.RiskLevelHigh) {
		publishHighRiskAlert(ctx, uc.alerts, uc.logger, event.NewHighRiskDetected(
			scanID, "veracity", report.Target,
			report.OverallConfidence, report.RiskLevel.String(), report.KeyFindings, now,
		))
	}

	return dto.FromVeracityReport(scanID.String(), report, now)
}
