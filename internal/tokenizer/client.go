package tokenizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Team-useMemo/Jugger-AI/pkg/domain"
)

const defaultTimeout = 10 * time.Second

// Client talks to a Kiwi-compatible part-of-speech tagging service over HTTP:
// POST {base}/tokenize {"text": ...} -> {"tokens": [{"form", "tag"}, ...]}.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type ClientDependencies struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(deps ClientDependencies) *Client {
	if deps.HTTPClient == nil {
		deps.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    deps.BaseURL,
		httpClient: deps.HTTPClient,
	}
}

type tokenizeRequest struct {
	Text string `json:"text"`
}

type tokenizeResponse struct {
	Tokens []domain.Token `json:"tokens"`
}

func (c *Client) Tokenize(ctx context.Context, text string) ([]domain.Token, error) {
	body, err := json.Marshal(tokenizeRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tokenize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/tokenize", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build tokenize request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tokenizer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokenizer returned status %d", resp.StatusCode)
	}

	var parsed tokenizeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode tokenizer response: %w", err)
	}
	return parsed.Tokens, nil
}
