package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace-client/internal/logger"
	"marketplace-client/internal/transport"

	"go.uber.org/zap"
)

const defaultTimeout = 15 * time.Second

// Client talks to the marketplace REST backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client for baseURL. A nil httpClient gets a default one
// with a 15s timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// do sends in as JSON (when non-nil) and decodes a 2xx body into out (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	log := logger.FromCtx(ctx).With(
		zap.String("method", method),
		zap.String("path", path),
	)

	var body io.Reader
	if in != nil {
		jsonBody, err := json.Marshal(in)
		if err != nil {
			log.Error("Failed to marshal request", zap.Error(err))
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		log.Error("Failed creating request", zap.Error(err))
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Warn("Request aborted", zap.Error(ctxErr))
			return ctxErr
		}
		if errors.Is(err, transport.ErrRateLimited) {
			log.Warn("Request throttled", zap.Error(err))
			return err
		}
		log.Error("Request failed", zap.Error(err))
		return fmt.Errorf("%w: %v", ErrNetworkUnavailable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("Failed to read response body", zap.Error(err))
		return fmt.Errorf("%w: read response: %v", ErrNetworkUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("Backend returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return &Error{StatusCode: resp.StatusCode, Message: errorMessage(resp.StatusCode, bodyBytes)}
	}

	if out == nil || len(bytes.TrimSpace(bodyBytes)) == 0 {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		log.Error("Failed decoding response", zap.Int("status", resp.StatusCode), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrUndecodableResponse, err)
	}
	return nil
}

// errorMessage pulls {message} (or {error}) out of an error body. Plain-text
// bodies are returned as they are.
func errorMessage(status int, body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	err := json.Unmarshal(body, &payload)
	switch {
	case err == nil && payload.Message != "":
		return payload.Message
	case err == nil && payload.Error != "":
		return payload.Error
	case err != nil && len(bytes.TrimSpace(body)) > 0:
		return strings.TrimSpace(string(body))
	}
	return http.StatusText(status)
}

func pathID(prefix, id string) (string, error) {
	if id == "" {
		return "", ErrMissingID
	}
	return prefix + url.PathEscape(id), nil
}
