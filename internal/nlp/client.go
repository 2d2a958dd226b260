package nlp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/iliyamo/aura-journal/internal/model"
)

// Client calls the nlp service's /analyze endpoint.  The ingestor treats a
// failure as "no analysis" and still persists the entry, so the timeout is
// short.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 5 * time.Second},
	}
}

type analyzeReq struct {
	Text string `json:"text"`
}

// Analyze posts the text and decodes the analysis payload.
func (c *Client) Analyze(ctx context.Context, text string) (*model.AnalysisPayload, error) {
	body, err := json.Marshal(analyzeReq{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal analyze request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build analyze request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call nlp service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nlp service returned %d", resp.StatusCode)
	}
	var payload model.AnalysisPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode analysis: %w", err)
	}
	return &payload, nil
}
