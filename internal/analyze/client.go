// Package analyze talks to the remote food-image classification
// service. The core only consumes the response shape; classification
// itself is the service's problem, and any failure here must surface as
// an error without touching the ledger.
package analyze

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrService marks a transport failure or non-2xx response.
	ErrService = errors.New("analyze service error")

	// ErrBadResponse marks a response that decoded but fails the
	// contract (empty name, score out of range).
	ErrBadResponse = errors.New("analyze response malformed")
)

const defaultPrompt = "Analyze this food for a keto diet. Return valid JSON only " +
	`with fields: name, score (0-100), macros {carb, protein, fat}, feedback, foods.`

// Macros is the estimated macro split; the three fields sum to ~100.
type Macros struct {
	Carb    int `json:"carb"`
	Protein int `json:"protein"`
	Fat     int `json:"fat"`
}

// Result is the classification verdict for one food image.
type Result struct {
	Name     string   `json:"name"`
	Score    int      `json:"score"`
	Macros   Macros   `json:"macros"`
	Feedback string   `json:"feedback"`
	Foods    []string `json:"foods"`
}

type Client struct {
	url    string
	apiKey string
	http   *http.Client
}

// NewClient builds a client for the given endpoint. A zero timeout
// falls back to 30 seconds.
func NewClient(url, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
	}
}

type analyzeRequest struct {
	Image  string `json:"image"`
	Prompt string `json:"prompt"`
}

// Analyze posts a base64-encoded image and returns the parsed verdict.
func (c *Client) Analyze(ctx context.Context, imageB64, prompt string) (*Result, error) {
	if c.url == "" {
		return nil, fmt.Errorf("%w: no endpoint configured", ErrService)
	}
	if imageB64 == "" {
		return nil, fmt.Errorf("%w: no image provided", ErrBadResponse)
	}
	if prompt == "" {
		prompt = defaultPrompt
	}

	body, err := json.Marshal(analyzeRequest{Image: imageB64, Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrService, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrService, resp.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if err := result.Validate(); err != nil {
		return nil, err
	}
	return &result, nil
}

// Validate checks the contract the core depends on.
func (r *Result) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: missing name", ErrBadResponse)
	}
	if r.Score < 0 || r.Score > 100 {
		return fmt.Errorf("%w: score %d out of range", ErrBadResponse, r.Score)
	}
	return nil
}
