package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerdictPolicy_Decide(t *testing.T) {
	policy := DefaultVerdictPolicy()

	tests := []struct {
		description string
		fake        float64
		ai          float64
		expected    Verdict
	}{
		{"Clean review", 0.1, 0.2, Verdict{}},
		{"Fake alone", 0.8, 0.1, Verdict{Blocked: true, Reason: ReasonFake}},
		{"AI alone", 0.1, 0.9, Verdict{Blocked: true, AIBadge: true, Reason: ReasonAI}},
		{"Both moderate", 0.55, 0.5, Verdict{Blocked: true, Reason: ReasonCombined}},
		{"Badge without block", 0.2, 0.65, Verdict{AIBadge: true}},
		{"Fake wins the reason", 0.9, 0.9, Verdict{Blocked: true, AIBadge: true, Reason: ReasonFake}},
		{"Just under every threshold", 0.49, 0.59, Verdict{}},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			got := policy.Decide(ScoreResult{FakeProbability: tt.fake, AIProbability: tt.ai})
			require.Equal(t, tt.expected, got)
		})
	}
}
