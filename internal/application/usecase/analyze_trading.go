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

// AnalyzeTrading is the use case for scoring a trading symbol.
type AnalyzeTrading struct {
	analyzer *service.TradingAnalyzer
	alerts   port.AlertPublisher
	logger   *slog.Logger
}

// NewAnalyzeTrading creates a new AnalyzeTrading use case.
func NewAnalyzeTrading(analyzer *service.TradingAnalyzer, alerts port.AlertPublisher, logger *slog.Logger) *AnalyzeTrading {
	return &AnalyzeTrading{
		analyzer: analyzer,
		alerts:   alerts,
		logger:   logger,
	}
}

// Execute runs the trading-symbol risk heuristic.
func (uc *AnalyzeTrading) Execute(ctx context.Context, req dto.TradingScanRequest) dto.TradingScanResponse {
	report := uc.analyzer.Analyze(req.Symbol)

	scanID := uuid.New()
	now := time.Now().UTC()

	if report.RiskLevel.Equal(valueobject.RiskLevelHigh) {
		publishHighRiskAlert(ctx, uc.alerts, uc.logger, event.NewHighRiskDetected(
			scanID, "trading", report.Symbol,
			report.RiskScore, report.RiskLevel.String(), report.KeyFindings, now,
		))
	}

	return dto.FromTradingReport(scanID.String(), report, now)
}
