package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/scamdunk/risk-engine/internal/application/dto"
	"github.com/scamdunk/risk-engine/internal/application/usecase"
	"github.com/scamdunk/risk-engine/internal/observability"
)

// ScanHandler exposes the four risk evaluators over HTTP.
type ScanHandler struct {
	assessContact  *usecase.AssessContact
	analyzeChat    *usecase.AnalyzeChat
	analyzeTrading *usecase.AnalyzeTrading
	checkVeracity  *usecase.CheckVeracity
	logger         *slog.Logger
}

// NewScanHandler creates a new scan handler.
func NewScanHandler(
	assessContact *usecase.AssessContact,
	analyzeChat *usecase.AnalyzeChat,
	analyzeTrading *usecase.AnalyzeTrading,
	checkVeracity *usecase.CheckVeracity,
	logger *slog.Logger,
) *ScanHandler {
	return &ScanHandler{
		assessContact:  assessContact,
		analyzeChat:    analyzeChat,
		analyzeTrading: analyzeTrading,
		checkVeracity:  checkVeracity,
		logger:         logger,
	}
}

// RegisterRoutes registers scan endpoints on the provided ServeMux.
func (h *ScanHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/v1/scan/contact", h.ScanContact)
	mux.HandleFunc("POST /api/v1/scan/chat", h.ScanChat)
	mux.HandleFunc("POST /api/v1/scan/trading", h.ScanTrading)
	mux.HandleFunc("POST /api/v1/scan/veracity", h.ScanVeracity)
}

// ScanContact handles POST /api/v1/scan/contact.
func (h *ScanHandler) ScanContact(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactScanRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.assessContact.Execute(r.Context(), req)
	observability.ScansTotal.WithLabelValues("contact", resp.RiskLevel).Inc()
	writeJSON(w, http.StatusOK, resp)
}

// ScanChat handles POST /api/v1/scan/chat.
func (h *ScanHandler) ScanChat(w http.ResponseWriter, r *http.Request) {
	var req dto.ChatScanRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.analyzeChat.Execute(r.Context(), req)
	observability.ScansTotal.WithLabelValues("chat", resp.RiskLevel).Inc()
	if resp.Source == usecase.SourceHeuristic {
		observability.AIFallbacksTotal.Inc()
	}
	writeJSON(w, http.StatusOK, resp)
}

// ScanTrading handles POST /api/v1/scan/trading.
func (h *ScanHandler) ScanTrading(w http.ResponseWriter, r *http.Request) {
	var req dto.TradingScanRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.analyzeTrading.Execute(r.Context(), req)
	observability.ScansTotal.WithLabelValues("trading", resp.RiskLevel).Inc()
	writeJSON(w, http.StatusOK, resp)
}

// ScanVeracity handles POST /api/v1/scan/veracity.
func (h *ScanHandler) ScanVeracity(w http.ResponseWriter, r *http.Request) {
	var req dto.VeracityScanRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := h.checkVeracity.Execute(r.Context(), req)
	observability.ScansTotal.WithLabelValues("veracity", resp.RiskLevel).Inc()
	writeJSON(w, http.StatusOK, resp)
}

func readJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
