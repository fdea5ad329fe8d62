package enhance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MinInputLength is the minimum text length accepted for enhancement.
// Shorter input is a local validation failure, not a network error.
const MinInputLength = 10

// Fixed rewrite instruction sent with every request. Conservative sampling
// keeps the rewrite close to the input.
const (
	rewriteInstruction = "Fix grammar and spelling, strengthen word choice, do not add, remove, or rearrange content, return plain text only."
	samplingTemp       = 0.2
)

var (
	ErrTextTooShort = errors.New("text too short for enhancement")
	ErrRemoteFailed = errors.New("enhancement service failed")
)

// Client calls the external text-rewriting endpoint.
// Request:  {"text": ..., "instruction": ..., "temperature": ...}
// Success:  {"result": "..."}    Error: {"error": "..."} with non-2xx.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{endpoint: endpoint, http: &http.Client{Timeout: timeout}}
}

type enhanceRequest struct {
	Text        string  `json:"text"`
	Instruction string  `json:"instruction"`
	Temperature float64 `json:"temperature"`
}

type enhanceResponse struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

// Enhance sends text to the remote endpoint and returns the trimmed
// rewritten text. Callers must enforce MinInputLength first; the client
// re-checks and returns ErrTextTooShort without touching the network.
func (c *Client) Enhance(ctx context.Context, text string) (string, error) {
	if len(text) < MinInputLength {
		return "", ErrTextTooShort
	}
	if c.endpoint == "" {
		return "", fmt.Errorf("%w: no endpoint configured", ErrRemoteFailed)
	}

	body, err := json.Marshal(enhanceRequest{
		Text:        text,
		Instruction: rewriteInstruction,
		Temperature: samplingTemp,
	})
	if err != nil {
		return "", err
	}

	resp, err := c.doWithRetry(ctx, body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRemoteFailed, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrRemoteFailed, err)
	}

	var out enhanceResponse
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = json.Unmarshal(respBytes, &out)
		if out.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrRemoteFailed, out.Error)
		}
		return "", fmt.Errorf("%w: status %d", ErrRemoteFailed, resp.StatusCode)
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrRemoteFailed, err)
	}
	result := strings.TrimSpace(out.Result)
	if result == "" {
		return "", fmt.Errorf("%w: empty result", ErrRemoteFailed)
	}
	return result, nil
}

// doWithRetry performs the POST with exponential backoff on transport
// errors. HTTP error statuses are not retried; the fallback covers them.
func (c *Client) doWithRetry(ctx context.Context, body []byte) (*http.Response, error) {
	const attempts = 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * 500 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}
