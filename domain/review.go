package domain

import (
	"math"
	"review-verify/errors"
	"strings"
)

// FlagThreshold is the probability above which a signal is reported as positive.
const FlagThreshold = 0.5

// ReviewText is the raw review submitted by a caller.
type ReviewText string

// NewReviewText rejects text that is empty once surrounding whitespace is removed.
// The original text is kept untouched so it can be echoed back.
func NewReviewText(raw string) (ReviewText, error) {
	if strings.TrimSpace(raw) == "" {
		return "", errors.ErrMissingReviewText
	}
	return ReviewText(raw), nil
}

func (r ReviewText) String() string {
	return string(r)
}

// Signal is what every scoring strategy produces for one review.
type Signal struct {
	Probability float64
	Flagged     bool
}

// NewSignal clamps p into [0,1] and derives the flag from it.
func NewSignal(p float64) Signal {
	p = Clamp(p)
	return Signal{Probability: p, Flagged: p > FlagThreshold}
}

// Clamp bounds p to [0,1]; NaN collapses to 0.
func Clamp(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	return math.Max(0, math.Min(1, p))
}

type ScoreResult struct {
	ReviewText      string  `json:"reviewText"`
	IsFake          bool    `json:"isFake"`
	FakeProbability float64 `json:"fakeProbability"`
	IsAIWritten     bool    `json:"isAIWritten"`
	AIProbability   float64 `json:"aiProbability"`
	// Language is an extension to the response body: ISO 639-1, omitted when unknown.
	Language        string  `json:"language,omitempty"`
}

// NewScoreResult assembles the response for one review.
// Both booleans are recomputed from their probabilities, whatever the strategies reported.
func NewScoreResult(text ReviewText, fake, ai Signal, language string) ScoreResult {
	fake = NewSignal(fake.Probability)
	ai = NewSignal(ai.Probability)
	return ScoreResult{
		ReviewText:      text.String(),
		IsFake:          fake.Flagged,
		FakeProbability: fake.Probability,
		IsAIWritten:     ai.Flagged,
		AIProbability:   ai.Probability,
		Language:        language,
	}
}
