// Package ai provides the HTTP client for the external AI detection service.
//
// The client implements port.AIDetectionClient. Any transport failure,
// timeout, non-success status, or malformed body is reported as
// ErrUnavailable so callers can substitute the deterministic heuristic
// engine.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/scamdunk/risk-engine/internal/domain/port"
)

// ErrUnavailable indicates the AI detection service could not produce a result.
var ErrUnavailable = errors.New("ai detection service unavailable")

// DetectionClient calls the AI service's quick-scan endpoint.
type DetectionClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewDetectionClient creates a client for the AI service at baseURL.
func NewDetectionClient(baseURL string, timeout time.Duration, logger *slog.Logger) *DetectionClient {
	return &DetectionClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type quickScanRequest struct {
	Platform string   `json:"platform"`
	Messages []string `json:"messages"`
}

type quickScanResponse struct {
	RiskScore  float64 `json:"risk_score"`
	RiskLevel  string  `json:"risk_level"`
	Confidence float64 `json:"confidence"`
	Analysis   struct {
		ScamIndicators     int `json:"scam_indicators"`
		SuspiciousPatterns int `json:"suspicious_patterns"`
	} `json:"analysis"`
}

// QuickScan sends a conversation to the AI service and returns its risk judgment.
func (c *DetectionClient) QuickScan(ctx context.Context, platform string, texts []string) (port.QuickScanResult, error) {
	body, err := json.Marshal(quickScanRequest{
		Platform: platform,
		Messages: texts,
	})
	if err != nil {
		return port.QuickScanResult{}, fmt.Errorf("marshal quick-scan request: %w", err)
	}

	url := c.baseURL + "/api/v1/scan/quick-scan"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return port.QuickScanResult{}, fmt.Errorf("build quick-scan request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return port.QuickScanResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return port.QuickScanResult{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed quickScanResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return port.QuickScanResult{}, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	c.logger.Debug("AI quick-scan completed",
		slog.String("platform", platform),
		slog.Int("messages", len(texts)),
		slog.Float64("risk_score", parsed.RiskScore),
	)

	return port.QuickScanResult{
		RiskScore:          parsed.RiskScore,
		Confidence:         parsed.Confidence,
		ScamIndicators:     parsed.Analysis.ScamIndicators,
		SuspiciousPatterns: parsed.Analysis.SuspiciousPatterns,
	}, nil
}
