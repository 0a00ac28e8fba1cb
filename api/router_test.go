package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"review-verify/ai"
	"review-verify/domain"
	"review-verify/errors"
	"review-verify/heuristic"
	"review-verify/mocks"
	"review-verify/observability"
	"review-verify/services"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	_ "review-verify/docs"
)

type fixedStats struct{}

func (fixedStats) Snapshot() observability.ProcessStats {
	return observability.ProcessStats{PID: 42, RSSBytes: 1024, CPUPercent: 1.5}
}

type routerSuite struct {
	suite.Suite
	log     *slog.Logger
	ctrl    *gomock.Controller
	service *mocks.MockIScoringService
	router  *gin.Engine
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, &routerSuite{})
}

func (s *routerSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (s *routerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockIScoringService(s.ctrl)
	s.router = NewRouter(s.log, NewHandler(s.service, fixedStats{}, "heuristic", false), []string{"*"})
}

func (s *routerSuite) do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func (s *routerSuite) decode(rec *httptest.ResponseRecorder, v any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *routerSuite) TestAnalyzeReview_OK() {
	expected := domain.ScoreResult{ReviewText: "Nice", FakeProbability: 0.2, AIProbability: 0.8, IsAIWritten: true}
	s.service.EXPECT().AnalyzeReview(gomock.Any(), "Nice").Return(expected, nil)

	rec := s.do(s.router, http.MethodPost, "/analyze_review", `{"reviewText":"Nice"}`)

	s.Require().Equal(http.StatusOK, rec.Code)
	var got domain.ScoreResult
	s.decode(rec, &got)
	s.Require().Equal(expected, got)
	s.Require().NotEmpty(rec.Header().Get(requestIDHeader))
}

func (s *routerSuite) TestAnalyzeReview_MissingText() {
	s.service.EXPECT().AnalyzeReview(gomock.Any(), "").Return(domain.ScoreResult{}, errors.ErrMissingReviewText)

	for _, body := range []string{`{}`, `not json`, `{"reviewText": 3}`, ``} {
		rec := s.do(s.router, http.MethodPost, "/analyze_review", body)
		s.Require().Equal(http.StatusBadRequest, rec.Code, body)
		s.Require().JSONEq(`{"error":"No reviewText provided"}`, rec.Body.String())
	}
}

func (s *routerSuite) TestPredict_OK() {
	s.service.EXPECT().Predict(gomock.Any(), []string{"a", "b"}).
		Return([]domain.Label{domain.LabelGenuine, domain.LabelFake}, nil)

	rec := s.do(s.router, http.MethodPost, "/predict", `{"reviews":["a","b"]}`)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().JSONEq(`{"predictions":["Genuine","Fake"]}`, rec.Body.String())
}

func (s *routerSuite) TestPredict_NoReviews() {
	s.service.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(nil, errors.ErrNoReviews).Times(2)

	for _, body := range []string{`{"reviews":[]}`, `{}`, `{"reviews":"a"}`} {
		rec := s.do(s.router, http.MethodPost, "/predict", body)
		s.Require().Equal(http.StatusBadRequest, rec.Code, body)
		s.Require().JSONEq(`{"error":"No reviews provided"}`, rec.Body.String())
	}
}

func (s *routerSuite) TestPredict_InternalError() {
	s.service.EXPECT().Predict(gomock.Any(), gomock.Any()).Return(nil, errors.ErrModelUnavailable)

	rec := s.do(s.router, http.MethodPost, "/predict", `{"reviews":["a"]}`)

	s.Require().Equal(http.StatusInternalServerError, rec.Code)
	var body ErrorResponse
	s.decode(rec, &body)
	s.Require().Equal(errors.ErrModelUnavailable.Error(), body.Error)
}

func (s *routerSuite) TestPanicIsRecovered() {
	s.service.EXPECT().AnalyzeReview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) (domain.ScoreResult, error) { panic("scorer exploded") })

	rec := s.do(s.router, http.MethodPost, "/analyze_review", `{"reviewText":"x"}`)

	s.Require().Equal(http.StatusInternalServerError, rec.Code)
	s.Require().JSONEq(`{"error":"scorer exploded"}`, rec.Body.String())
}

func (s *routerSuite) TestHealth() {
	rec := s.do(s.router, http.MethodGet, "/health", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	var body HealthResponse
	s.decode(rec, &body)
	s.Require().Equal("OK", body.Status)
	s.Require().Equal(serviceName, body.Service)
	s.Require().False(body.ModelLoaded)
	s.Require().Equal("heuristic", body.FakeScorer)
	s.Require().Equal(int32(42), body.PID)
}

func (s *routerSuite) TestDocs() {
	rec := s.do(s.router, http.MethodGet, "/docs/doc.json", "")

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().Contains(rec.Body.String(), "/analyze_review")
	s.Require().Contains(rec.Body.String(), "Extension: ISO 639-1 code")
}

func (s *routerSuite) TestRequestIDIsKept() {
	s.service.EXPECT().Predict(gomock.Any(), gomock.Any()).Return([]domain.Label{domain.LabelFake}, nil)
	req := httptest.NewRequest(http.MethodPost, "/predict", bytes.NewBufferString(`{"reviews":["a"]}`))
	req.Header.Set(requestIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	s.router.ServeHTTP(rec, req)

	s.Require().Equal("abc-123", rec.Header().Get(requestIDHeader))
}

func (s *routerSuite) TestCors() {
	router := NewRouter(s.log, NewHandler(s.service, fixedStats{}, "heuristic", false), []string{"chrome-extension://abc"})
	req := httptest.NewRequest(http.MethodOptions, "/analyze_review", nil)
	req.Header.Set("Origin", "chrome-extension://abc")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	s.Require().Equal("chrome-extension://abc", rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestRealPipeline serves the fixture model through the real service.
func (s *routerSuite) TestRealPipeline() {
	bundle, err := ai.LoadBundle("../ai/testdata/bundle.json")
	s.Require().NoError(err)
	analysis, err := ai.NewAnalysis(bundle)
	s.Require().NoError(err)
	aiScorer, err := heuristic.NewScorer("ai", heuristic.DefaultAIPolicy(), heuristic.NewSeededSource(3), s.log)
	s.Require().NoError(err)
	service := services.NewScoringService(s.log, analysis, aiScorer, analysis)
	router := NewRouter(s.log, NewHandler(service, fixedStats{}, "classifier", true), nil)

	rec := s.do(router, http.MethodPost, "/predict",
		`{"reviews":["great scam terrible quality","works great","","terrible"]}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Require().JSONEq(`{"predictions":["Fake","Genuine","Genuine","Fake"]}`, rec.Body.String())

	rec = s.do(router, http.MethodPost, "/analyze_review", `{"reviewText":"AS AN AI LANGUAGE MODEL I love it"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	var result domain.ScoreResult
	s.decode(rec, &result)
	s.Require().True(result.IsAIWritten)
	s.Require().GreaterOrEqual(result.AIProbability, 0.7)
	s.Require().LessOrEqual(result.AIProbability, 0.99)
	s.Require().Equal(result.FakeProbability > 0.5, result.IsFake)

	rec = s.do(router, http.MethodPost, "/analyze_review", `{"reviewText":"   "}`)
	s.Require().Equal(http.StatusBadRequest, rec.Code)
	s.Require().JSONEq(`{"error":"No reviewText provided"}`, rec.Body.String())
}

func (s *routerSuite) TestDimensionMismatchIs500() {
	vectorizer, err := ai.NewVectorizer(map[string]int{"scam": 0, "great": 1}, []float64{1, 1}, ai.NormL2, false)
	s.Require().NoError(err)
	forest, err := ai.NewForest(3, []int{0, 1}, []ai.Tree{{Nodes: []ai.Node{{Left: -1, Right: -1, Value: []float64{1, 1}}}}})
	s.Require().NoError(err)
	bundle, err := ai.NewBundle("mismatch", vectorizer, forest)
	s.Require().NoError(err)
	analysis, err := ai.NewAnalysis(bundle)
	s.Require().NoError(err)
	service := services.NewScoringService(s.log, analysis, analysis, analysis)
	router := NewRouter(s.log, NewHandler(service, fixedStats{}, "classifier", true), nil)

	rec := s.do(router, http.MethodPost, "/predict", `{"reviews":["scam"]}`)

	s.Require().Equal(http.StatusInternalServerError, rec.Code)
	s.Require().Contains(rec.Body.String(), errors.ErrDimensionMismatch.Error())
}
