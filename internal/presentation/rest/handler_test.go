package rest_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamdunk/risk-engine/internal/application/dto"
	"github.com/scamdunk/risk-engine/internal/application/usecase"
	"github.com/scamdunk/risk-engine/internal/domain/service"
	"github.com/scamdunk/risk-engine/internal/presentation/rest"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mux := http.NewServeMux()
	rest.NewScanHandler(
		usecase.NewAssessContact(service.NewContactAssessor(), nil, logger),
		usecase.NewAnalyzeChat(nil, service.NewChatAnalyzer(), nil, logger),
		usecase.NewAnalyzeTrading(service.NewTradingAnalyzer(), nil, logger),
		usecase.NewCheckVeracity(service.NewVeracityChecker(), nil, logger),
		logger,
	).RegisterRoutes(mux)
	rest.NewHealthHandler(logger).RegisterRoutes(mux)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, server *httptest.Server, path, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(server.URL+path, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestScanContact(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server, "/api/v1/scan/contact",
		`{"contactType":"email","contactValue":"user@fraudmail.com"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var body dto.ContactScanResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "user@fraudmail.com", body.Contact)
	assert.True(t, body.IsScammer)
	assert.Equal(t, 100, body.RiskScore)
	assert.Equal(t, "HIGH", body.RiskLevel)
	assert.NotEmpty(t, body.ScanID)
	assert.False(t, body.AnalyzedAt.IsZero())
}

func TestScanContact_BadJSON(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server, "/api/v1/scan/contact", `{"contactType":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["error"])
}

func TestScanChat(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server, "/api/v1/scan/chat",
		`{"platform":"whatsapp","messages":[{"text":"send a wire transfer now, this is urgent"}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ChatScanResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 1, body.MessageCount)
	assert.Equal(t, []string{"wire transfer", "urgent"}, body.SuspiciousMentions)
	assert.Equal(t, 83, body.OverallRiskScore)
	assert.Equal(t, "HIGH", body.RiskLevel)
	assert.Equal(t, "heuristic", body.Source)
}

func TestScanChat_EmptyMessages(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server, "/api/v1/scan/chat", `{"platform":"whatsapp","messages":[]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.ChatScanResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, 0, body.MessageCount)
	assert.Contains(t, body.KeyFindings, "0 messages analyzed")
	assert.Empty(t, body.SuspiciousMentions)
}

func TestScanTrading(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server, "/api/v1/scan/trading", `{"symbol":"gme"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.TradingScanResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "GME", body.Symbol)
	assert.Equal(t, 88, body.RiskScore)
	assert.Equal(t, "HIGH", body.RiskLevel)
}

func TestScanVeracity(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server, "/api/v1/scan/veracity",
		`{"targetIdentifier":"Offshore Holdings SA","targetType":"company"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.VeracityScanResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "offshore holdings sa", body.Target)
	assert.False(t, body.IsVerified)
	assert.Equal(t, "UNVERIFIED", body.VerificationStatus)
	assert.Equal(t, 42, body.OverallConfidence)
	assert.Equal(t, "HIGH", body.RiskLevel)
}

// Two identical requests must produce identical reports; only scan identity
// and timestamp may differ.
func TestScanTrading_DeterministicAcrossRequests(t *testing.T) {
	server := newTestServer(t)

	var first, second dto.TradingScanResponse

	resp := postJSON(t, server, "/api/v1/scan/trading", `{"symbol":"DOGE"}`)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))
	resp = postJSON(t, server, "/api/v1/scan/trading", `{"symbol":"DOGE"}`)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))

	assert.NotEqual(t, first.ScanID, second.ScanID)
	assert.Equal(t, first.RiskScore, second.RiskScore)
	assert.Equal(t, first.RiskLevel, second.RiskLevel)
	assert.Equal(t, first.Confidence, second.Confidence)
	assert.Equal(t, first.KeyFindings, second.KeyFindings)
}

func TestScanRoutes_MethodNotAllowed(t *testing.T) {
	server := newTestServer(t)

	resp, err := http.Get(server.URL + "/api/v1/scan/contact")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		resp, err := http.Get(server.URL + path)
		require.NoError(t, err)

		var body rest.HealthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "risk-engine", body.Service)
	}
}
