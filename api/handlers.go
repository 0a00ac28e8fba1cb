package api

import (
	"net/http"
	"review-verify/domain"
	"review-verify/errors"
	"review-verify/observability"
	"review-verify/services"

	"github.com/gin-gonic/gin"
)

const serviceName = "review-verify"

type AnalyzeRequest struct {
	ReviewText string `json:"reviewText" example:"Great blender, works perfectly."`
}

type PredictRequest struct {
	Reviews []string `json:"reviews"`
}

type PredictResponse struct {
	Predictions []domain.Label `json:"predictions" swaggertype:"array,string" example:"Fake,Genuine"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	ModelLoaded bool   `json:"model_loaded"`
	FakeScorer  string `json:"fake_scorer"`
	observability.ProcessStats
}

// StatsProvider samples the resource usage of the process.
type StatsProvider interface {
	Snapshot() observability.ProcessStats
}

type Handler struct {
	service     services.IScoringService
	stats       StatsProvider
	fakeScorer  string
	modelLoaded bool
}

func NewHandler(service services.IScoringService, stats StatsProvider, fakeScorer string, modelLoaded bool) *Handler {
	return &Handler{
		service:     service,
		stats:       stats,
		fakeScorer:  fakeScorer,
		modelLoaded: modelLoaded,
	}
}

// AnalyzeReview godoc
// @Summary      Score one review
// @Description  Estimates the probability that a review is fake and that it was written by an AI.
// @Description  Extension: the optional "language" field carries the ISO 639-1 code of the review when detection is reliable, and is omitted otherwise.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request body     AnalyzeRequest true "Review to score"
// @Success      200     {object} domain.ScoreResult
// @Failure      400     {object} ErrorResponse
// @Failure      500     {object} ErrorResponse
// @Router       /analyze_review [post]
func (h *Handler) AnalyzeReview(c *gin.Context) {
	var request AnalyzeRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.fail(c, errors.ErrMissingReviewText)
		return
	}

	result, err := h.service.AnalyzeReview(c.Request.Context(), request.ReviewText)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Predict godoc
// @Summary      Classify reviews
// @Description  Labels every review Fake or Genuine with the trained classifier, keeping input order.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        request body     PredictRequest true "Reviews to classify"
// @Success      200     {object} PredictResponse
// @Failure      400     {object} ErrorResponse
// @Failure      500     {object} ErrorResponse
// @Router       /predict [post]
func (h *Handler) Predict(c *gin.Context) {
	var request PredictRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.fail(c, errors.ErrNoReviews)
		return
	}

	labels, err := h.service.Predict(c.Request.Context(), request.Reviews)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, PredictResponse{Predictions: labels})
}

// Health godoc
// @Summary      Service health
// @Tags         ops
// @Produce      json
// @Success      200 {object} HealthResponse
// @Router       /health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:       "OK",
		Service:      serviceName,
		ModelLoaded:  h.modelLoaded,
		FakeScorer:   h.fakeScorer,
		ProcessStats: h.stats.Snapshot(),
	})
}

func (h *Handler) fail(c *gin.Context, err error) {
	status, body := statusFor(err)
	if !errors.IsInput(err) {
		_ = c.Error(err)
	}
	c.JSON(status, body)
}
