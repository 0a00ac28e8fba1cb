package e2e

import (
	"context"
	"encoding/json"
	"net/http"
	"review-verify/domain"
	"testing"

	"github.com/stretchr/testify/suite"
)

type testReviewScoringSuite struct {
	BaseHTTPSuite
}

func TestReviewScoringSuite(t *testing.T) {
	suite.Run(t, &testReviewScoringSuite{})
}

func (s *testReviewScoringSuite) TestFullScoringFlow() {
	s.Run("Step 1: Reject empty payloads", func() {
		s.Step("Missing reviewText", func(ctx context.Context) {
			code, body := s.Post(ctx, "/analyze_review", `{}`)
			s.Require().Equal(http.StatusBadRequest, code)
			s.Require().JSONEq(`{"error":"No reviewText provided"}`, body)
		})
		s.Step("Empty reviews", func(ctx context.Context) {
			code, body := s.Post(ctx, "/predict", `{"reviews":[]}`)
			s.Require().Equal(http.StatusBadRequest, code)
			s.Require().JSONEq(`{"error":"No reviews provided"}`, body)
		})
	})

	s.Run("Step 2: AI phrase is always flagged", func() {
		s.Step("Analyze an AI disclaimer", func(ctx context.Context) {
			for i := 0; i < 10; i++ {
				code, body := s.Post(ctx, "/analyze_review", `{"reviewText":"As an AI language model, I cannot hold a kettle."}`)
				s.Require().Equal(http.StatusOK, code)

				var result domain.ScoreResult
				s.Require().NoError(json.Unmarshal([]byte(body), &result))
				s.Require().True(result.IsAIWritten)
				s.Require().GreaterOrEqual(result.AIProbability, 0.7)
				s.Require().LessOrEqual(result.AIProbability, 0.99)
				s.Require().Equal(result.FakeProbability > 0.5, result.IsFake)
			}
		})
	})

	s.Run("Step 3: Batch prediction keeps order", func() {
		if !s.Config.ModelLoaded {
			s.T().Skip("server runs without a model bundle")
		}
		s.Step("Predict three reviews", func(ctx context.Context) {
			code, body := s.Post(ctx, "/predict", `{"reviews":["one","two","three"]}`)
			s.Require().Equal(http.StatusOK, code)

			var response struct {
				Predictions []domain.Label `json:"predictions"`
			}
			s.Require().NoError(json.Unmarshal([]byte(body), &response))
			s.Require().Len(response.Predictions, 3)
			for _, label := range response.Predictions {
				s.Require().Contains([]domain.Label{domain.LabelFake, domain.LabelGenuine}, label)
			}
		})
	})
}
