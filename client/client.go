package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"review-verify/domain"
	"strings"
	"time"
)

// Config is filled from reviewctl flags.
type Config struct {
	ServerURL string
	Timeout   time.Duration
}

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server answered %d: %s", e.Status, e.Message)
}

// Client talks to a review-verify server over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(cfg Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.ServerURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) AnalyzeReview(ctx context.Context, text string) (domain.ScoreResult, error) {
	var result domain.ScoreResult
	err := c.post(ctx, "/analyze_review", map[string]string{"reviewText": text}, &result)
	return result, err
}

func (c *Client) Predict(ctx context.Context, reviews []string) ([]domain.Label, error) {
	var response struct {
		Predictions []domain.Label `json:"predictions"`
	}
	if err := c.post(ctx, "/predict", map[string][]string{"reviews": reviews}, &response); err != nil {
		return nil, err
	}
	if len(response.Predictions) != len(reviews) {
		return nil, fmt.Errorf("server returned %d predictions for %d reviews", len(response.Predictions), len(reviews))
	}
	return response.Predictions, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		var failure struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(raw, &failure) != nil || failure.Error == "" {
			failure.Error = strings.TrimSpace(string(raw))
		}
		return &APIError{Status: resp.StatusCode, Message: failure.Error}
	}
	return json.Unmarshal(raw, out)
}
