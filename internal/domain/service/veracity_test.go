package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scamdunk/risk-engine/internal/domain/service"
	"github.com/scamdunk/risk-engine/internal/domain/valueobject"
)

func TestVeracityChecker_CleanEntity(t *testing.T) {
	checker := service.NewVeracityChecker()

	report := checker.Check("Acme Corporation", "company")

	assert.Equal(t, "acme corporation", report.Target)
	assert.Equal(t, "company", report.TargetType)
	assert.True(t, report.IsVerified)
	assert.True(t, report.VerificationStatus.Equal(valueobject.StatusVerified))
	assert.Equal(t, 99, report.OverallConfidence)
	assert.True(t, report.RiskLevel.Equal(valueobject.RiskLevelLow))
	assert.Equal(t, []string{"no registration red flags identified"}, report.KeyFindings)
}

func TestVeracityChecker_RedFlagTerm(t *testing.T) {
	checker := service.NewVeracityChecker()

	report := checker.Check("Offshore Holdings SA", "company")

	// Base confidence 72 - 30 = 42, below the 45 breakpoint.
	assert.False(t, report.IsVerified)
	assert.True(t, report.VerificationStatus.Equal(valueobject.StatusUnverified))
	assert.Equal(t, 42, report.OverallConfidence)
	assert.True(t, report.RiskLevel.Equal(valueobject.RiskLevelHigh))
	assert.Contains(t, report.KeyFindings[0], "offshore")
}

func TestVeracityChecker_MediumBand(t *testing.T) {
	checker := service.NewVeracityChecker()

	report := checker.Check("Shell Trading Group", "company")

	// 80 - 30 = 50, in the [45, 65) band.
	assert.Equal(t, 50, report.OverallConfidence)
	assert.True(t, report.RiskLevel.Equal(valueobject.RiskLevelMedium))
}

// The classifier used elsewhere maps 69 to MEDIUM; legitimacy confidence uses
// its own breakpoints, so 69 must stay LOW here.
func TestVeracityChecker_OwnBreakpoints(t *testing.T) {
	checker := service.NewVeracityChecker()

	report := checker.Check("Shell Holdings Ltd", "company")
	assert.Equal(t, 69, report.OverallConfidence)
	assert.False(t, report.IsVerified)
	assert.True(t, report.RiskLevel.Equal(valueobject.RiskLevelLow))

	// 65 exactly is the first LOW value.
	boundary := checker.Check("no-license capital", "company")
	assert.Equal(t, 65, boundary.OverallConfidence)
	assert.True(t, boundary.RiskLevel.Equal(valueobject.RiskLevelLow))
	assert.False(t, boundary.IsVerified)
}

func TestVeracityChecker_SingleReductionForMultipleTerms(t *testing.T) {
	checker := service.NewVeracityChecker()

	report := checker.Check("unregistered offshore shell ventures", "company")

	// Three terms match, each producing a finding, but the confidence drops
	// only once.
	flagFindings := 0
	for _, f := range report.KeyFindings {
		if f != "identifier references a regulatory keyword (sec/gov)" {
			flagFindings++
		}
	}
	assert.Equal(t, 3, flagFindings)
	assert.GreaterOrEqual(t, report.OverallConfidence, 40)
	assert.False(t, report.IsVerified)
}

func TestVeracityChecker_RegulatoryKeywordIsInformational(t *testing.T) {
	checker := service.NewVeracityChecker()

	report := checker.Check("SEC Registered Advisors", "company")

	assert.True(t, report.IsVerified)
	assert.Equal(t, 80, report.OverallConfidence)
	assert.True(t, report.RiskLevel.Equal(valueobject.RiskLevelLow))
	assert.Equal(t, []string{"identifier references a regulatory keyword (sec/gov)"}, report.KeyFindings)
}

func TestVeracityChecker_RedFlagAndRegulatory(t *testing.T) {
	checker := service.NewVeracityChecker()

	// "securities" also contains "sec", so both rule families report.
	report := checker.Check("unregistered securities ltd", "company")

	assert.Equal(t, 40, report.OverallConfidence)
	assert.True(t, report.RiskLevel.Equal(valueobject.RiskLevelHigh))
	assert.Len(t, report.KeyFindings, 2)
}

func TestVeracityChecker_Deterministic(t *testing.T) {
	checker := service.NewVeracityChecker()

	first := checker.Check("Offshore Holdings SA", "company")
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, checker.Check("Offshore Holdings SA", "company"))
	}
}
