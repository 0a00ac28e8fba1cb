package domain

import (
	"math"
	"review-verify/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReviewText(t *testing.T) {
	_, err := NewReviewText("")
	require.ErrorIs(t, err, errors.ErrMissingReviewText)

	_, err = NewReviewText(" \t\n ")
	require.ErrorIs(t, err, errors.ErrMissingReviewText)

	text, err := NewReviewText("  Solid kettle.  ")
	require.NoError(t, err)
	require.Equal(t, "  Solid kettle.  ", text.String())
}

func TestNewSignal(t *testing.T) {
	tests := []struct {
		description string
		input       float64
		expected    Signal
	}{
		{"Below threshold", 0.2, Signal{Probability: 0.2}},
		{"At threshold is not flagged", 0.5, Signal{Probability: 0.5}},
		{"Above threshold", 0.51, Signal{Probability: 0.51, Flagged: true}},
		{"Clamped above one", 3, Signal{Probability: 1, Flagged: true}},
		{"Clamped below zero", -1, Signal{Probability: 0}},
		{"NaN", math.NaN(), Signal{Probability: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			require.Equal(t, tt.expected, NewSignal(tt.input))
		})
	}
}

func TestNewScoreResult_IgnoresReportedFlags(t *testing.T) {
	req := require.New(t)

	result := NewScoreResult("meh", Signal{Probability: 0.9}, Signal{Probability: 0.1, Flagged: true}, "en")

	req.Equal("meh", result.ReviewText)
	req.True(result.IsFake)
	req.InDelta(0.9, result.FakeProbability, 1e-12)
	req.False(result.IsAIWritten)
	req.Equal("en", result.Language)
}
