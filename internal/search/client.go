// Package search provides the HTTP client for the semantic candidate search
// collaborator.
package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/swapnilsaysloud/hireai-outreach/internal/candidates"
)

// TopK is the number of candidates requested per search.
const TopK = 15

// Client calls the semantic search service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a search client for the service at baseURL. A nil
// httpClient uses a default with a 30-second timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

type searchQuery struct {
	JobDescription string `json:"job_description"`
	TopK           int    `json:"top_k"`
}

type searchResponse struct {
	Results []candidates.UpstreamCandidate `json:"results"`
}

// Find submits the free-text job description and returns the raw upstream
// records, ranked by the collaborator. A non-2xx response surfaces as an
// error carrying the upstream status.
func (c *Client) Find(ctx context.Context, jobDescription string) ([]candidates.UpstreamCandidate, error) {
	payload, err := json.Marshal(searchQuery{JobDescription: jobDescription, TopK: TopK})
	if err != nil {
		return nil, fmt.Errorf("failed to encode search query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/semantic-search", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("semantic search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("semantic search API error: %s", resp.Status)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	return body.Results, nil
}
