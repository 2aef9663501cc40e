package service_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scamdunk/risk-engine/internal/domain/service"
)

// Reports must survive a JSON round trip unchanged, so re-serializing a stored
// report yields the same document.
func TestReports_JSONRoundTrip(t *testing.T) {
	t.Run("contact", func(t *testing.T) {
		original := service.NewContactAssessor().Assess(service.ContactInput{
			ContactType:  "email",
			ContactValue: "user@fraudmail.com",
		})

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded service.ContactReport
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)

		again, err := json.Marshal(decoded)
		require.NoError(t, err)
		assert.JSONEq(t, string(data), string(again))
	})

	t.Run("chat", func(t *testing.T) {
		original := service.NewChatAnalyzer().Analyze(service.ChatInput{
			Platform: "whatsapp",
			Messages: []service.ChatMessage{{Text: "act now or lose everything"}},
		})

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded service.ChatReport
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	})

	t.Run("trading", func(t *testing.T) {
		original := service.NewTradingAnalyzer().Analyze("DOGE")

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded service.TradingReport
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	})

	t.Run("veracity", func(t *testing.T) {
		original := service.NewVeracityChecker().Check("Offshore Holdings SA", "company")

		data, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded service.VeracityReport
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, original, decoded)
	})
}
