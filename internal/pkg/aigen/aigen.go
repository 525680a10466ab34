// Package aigen wraps the external interview-question generation API.
// It is a collaborator boundary only: quota and entitlement checks
// happen before a request ever reaches this client.
package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/yatinsh21/ipuGotPlaced-sub000/internal/pkg/env"
)

// ErrGenerationUnavailable wraps transport failures from the generation
// backend. Retryable.
var ErrGenerationUnavailable = errors.New("question generation service unavailable")

// Request describes the project a student wants interview questions for.
type Request struct {
	ProjectTitle        string   `json:"project_title" validate:"required"`
	TechStack           []string `json:"tech_stack" validate:"required,min=1"`
	ProjectDescription  string   `json:"project_description" validate:"required"`
	FeaturesImplemented string   `json:"features_implemented" validate:"required"`
	StudentRole         string   `json:"student_role" validate:"required"`
}

// Question is one generated interview question with a suggested answer.
type Question struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty string `json:"difficulty"`
}

// Result groups generated questions by difficulty.
type Result struct {
	Questions map[string][]Question `json:"questions"`
}

// Generator produces interview questions for a project description.
type Generator interface {
	Generate(ctx context.Context, req Request) (*Result, error)
}

// Client calls the external generation API.
type Client struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
}

// NewClientFromEnv builds a client from AIGEN_API_URL / AIGEN_API_KEY.
func NewClientFromEnv() *Client {
	return &Client{
		apiURL: env.GetEnv("AIGEN_API_URL", ""),
		apiKey: env.GetEnv("AIGEN_API_KEY", ""),
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Generate sends the project description to the generation backend.
func (c *Client) Generate(ctx context.Context, genReq Request) (*Result, error) {
	body, err := json.Marshal(genReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v1/generate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrGenerationUnavailable, resp.Status)
	}

	var result Result
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", ErrGenerationUnavailable, err)
	}
	return &result, nil
}
