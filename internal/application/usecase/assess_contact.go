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

// AssessContact is the use case for scoring an email or phone contact.
type AssessContact struct {
	assessor *service.ContactAssessor
	alerts   port.AlertPublisher
	logger   *slog.Logger
}

// NewAssessContact creates a new AssessContact use case.
func NewAssessContact(assessor *service.ContactAssessor, alerts port.AlertPublisher, logger *slog.Logger) *AssessContact {
	return &AssessContact{
		assessor: assessor,
		alerts:   alerts,
		logger:   logger,
	}
}

// Execute runs the contact reputation heuristic. The operation is total: any
// input produces a report.
func (uc *AssessContact) Execute(ctx context.Context, req dto.ContactScanRequest) dto.ContactScanResponse {
	report := uc.assessor.Assess(service.ContactInput{
		ContactType:  req.ContactType,
		ContactValue: req.ContactValue,
	})

	scanID := uuid.New()
	now := time.Now().UTC()

	if report.RiskLevel.Equal(valueobject.RiskLevelHigh) {
		publishHighRiskAlert(ctx, uc.alerts, uc.logger, event.NewHighRiskDetected(
			scanID, "contact", report.Contact,
			report.RiskScore, report.RiskLevel.String(), report.KeyFindings, now,
		))
	}

	return dto.FromContactReport(scanID.String(), report, now)
}
