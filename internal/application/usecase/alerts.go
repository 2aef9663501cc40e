package usecase

import (
	"context"
	"log/slog"

	"github.com/scamdunk/risk-engine/internal/domain/event"
	"github.com/scamdunk/risk-engine/internal/domain/port"
)

// publishHighRiskAlert sends a high-risk alert event. Alerting is advisory:
// a publish failure is logged and the scan result is returned regardless.
func publishHighRiskAlert(ctx context.Context, publisher port.AlertPublisher, logger *slog.Logger, evt event.HighRiskDetected) {
	if publisher == nil {
		return
	}
	if err := publisher.Publish(ctx, evt); err != nil {
		logger.Warn("failed to publish high-risk alert",
			slog.String("scan_id", evt.ScanID.String()),
			slog.String("domain", evt.Domain),
			slog.String("error", err.Error()),
		)
	}
}
