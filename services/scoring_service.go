//go:generate go run go.uber.org/mock/mockgen -source=scoring_service.go -destination=../mocks/mock_scoring_service.go -package=mocks
package services

import (
	"context"
	"log/slog"
	"review-verify/domain"
	"review-verify/errors"

	"github.com/abadojack/whatlanggo"
)

// Scorer produces one signal for a review. Both the trained classifier and
// the heuristic estimator implement it.
type Scorer interface {
	Score(text string) (domain.Signal, error)
}

// LabelPredictor classifies a batch of reviews, keeping their order.
type LabelPredictor interface {
	PredictLabels(texts []string) ([]domain.Label, error)
}

type IScoringService interface {
	AnalyzeReview(ctx context.Context, text string) (domain.ScoreResult, error)
	Predict(ctx context.Context, reviews []string) ([]domain.Label, error)
}

type ScoringService struct {
	log       *slog.Logger
	fake      Scorer
	ai        Scorer
	predictor LabelPredictor
}

// NewScoringService wires the strategies chosen at startup.
// predictor may be nil when no model bundle is loaded.
func NewScoringService(log *slog.Logger, fake, ai Scorer, predictor LabelPredictor) *ScoringService {
	return &ScoringService{
		log:       log,
		fake:      fake,
		ai:        ai,
		predictor: predictor,
	}
}

// AnalyzeReview scores one review for both signals.
func (s *ScoringService) AnalyzeReview(ctx context.Context, text string) (domain.ScoreResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.ScoreResult{}, err
	}
	review, err := domain.NewReviewText(text)
	if err != nil {
		return domain.ScoreResult{}, err
	}

	fake, err := s.fake.Score(review.String())
	if err != nil {
		return domain.ScoreResult{}, err
	}
	ai, err := s.ai.Score(review.String())
	if err != nil {
		return domain.ScoreResult{}, err
	}

	result := domain.NewScoreResult(review, fake, ai, detectLanguage(review.String()))
	s.log.Debug("Review scored",
		"length", len(review),
		"fake_probability", result.FakeProbability,
		"ai_probability", result.AIProbability,
		"lang", result.Language)
	return result, nil
}

// Predict labels every review with the trained classifier.
func (s *ScoringService) Predict(ctx context.Context, reviews []string) ([]domain.Label, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, errors.ErrNoReviews
	}
	if s.predictor == nil {
		return nil, errors.ErrModelUnavailable
	}

	labels, err := s.predictor.PredictLabels(reviews)
	if err != nil {
		return nil, err
	}
	s.log.Debug("Reviews classified", "count", len(labels))
	return labels, nil
}

// detectLanguage returns the ISO 639-1 code of text, or "" when detection is unreliable.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return ""
	}
	return info.Lang.Iso6391()
}
