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
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/winter3671/TakeMeTrip/internal/domain"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"
)

const (
	maxResponseBytes = 1 << 20
	maxDetailLength  = 200
)

// Client talks to the TakeMeTrip backend. It implements the AuthAPI,
// PlannerAPI, CommunityAPI and TripAPI ports.
type Client struct {
	BaseURL string
	// HTTPClient carries every request that is not a catalog read.
	HTTPClient *http.Client
	// CatalogClient, when set, carries catalog reads (regions, categories)
	// and is expected to cache them.
	CatalogClient  *http.Client
	RequestTimeout time.Duration
	Limiter        *rate.Limiter
	UserAgent      string
	Logger         zerolog.Logger
}

type request struct {
	method  string
	path    string
	query   url.Values
	token   string
	body    any
	catalog bool
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	endpoint, err := buildAPIURL(c.BaseURL, req.path)
	if err != nil {
		return err
	}
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		encoded, err := json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", req.path, err)
		}
		body = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	if c.Limiter != nil {
		if err := c.Limiter.Wait(requestCtx); err != nil {
			return fmt.Errorf("wait for request slot: %w", err)
		}
	}

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, endpoint, body)
	if err != nil {
		return fmt.Errorf("create %s request: %w", req.path, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.UserAgent)
	}
	if req.token != "" {
		(&oauth2.Token{AccessToken: req.token, TokenType: "Bearer"}).SetAuthHeader(httpReq)
	}

	started := time.Now()
	resp, err := c.clientFor(req).Do(httpReq)
	if err != nil {
		c.Logger.Debug().Err(err).Str("method", req.method).Str("path", req.path).Msg("api request failed")
		return fmt.Errorf("%s %s: %w", req.method, req.path, &domain.APIError{Kind: domain.ErrNetwork, Detail: err.Error()})
	}
	defer func() { _ = resp.Body.Close() }()

	c.Logger.Debug().
		Str("method", req.method).
		Str("path", req.path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Msg("api request")

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.method, req.path, &domain.APIError{Kind: domain.ErrNetwork, StatusCode: resp.StatusCode, Detail: err.Error()})
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%s %s: %w", req.method, req.path, classifyResponse(resp.StatusCode, data))
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.path, &domain.APIError{Kind: domain.ErrServer, StatusCode: resp.StatusCode, Detail: err.Error()})
	}

	return nil
}

func (c *Client) clientFor(req request) *http.Client {
	if req.catalog && c.CatalogClient != nil {
		return c.CatalogClient
	}
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, requestTimeout)
}

// classifyResponse maps a non-2xx response onto the error taxonomy: 401 is an
// expired session, 5xx or a body that is not JSON is a server failure, and
// every other status is a validation failure carrying the server's detail.
func classifyResponse(status int, body []byte) *domain.APIError {
	detail, isJSON := errorDetail(body)

	switch {
	case status == http.StatusUnauthorized:
		return &domain.APIError{Kind: domain.ErrAuthExpired, StatusCode: status, Detail: detail}
	case status >= http.StatusInternalServerError || !isJSON:
		return &domain.APIError{Kind: domain.ErrServer, StatusCode: status, Detail: detail}
	default:
		return &domain.APIError{Kind: domain.ErrValidation, StatusCode: status, Detail: detail}
	}
}

func errorDetail(body []byte) (string, bool) {
	trimmed := bytes.TrimSpace(body)

	var payload any
	if len(trimmed) == 0 || json.Unmarshal(trimmed, &payload) != nil {
		return truncate(string(trimmed)), false
	}

	return truncate(describe(payload)), true
}

func describe(payload any) string {
	switch value := payload.(type) {
	case string:
		return value
	case []any:
		parts := make([]string, 0, len(value))
		for _, item := range value {
			if text := describe(item); text != "" {
				parts = append(parts, text)
			}
		}
		return strings.Join(parts, "; ")
	case map[string]any:
		for _, key := range []string{"detail", "message", "error"} {
			if text, ok := value[key].(string); ok && text != "" {
				return text
			}
		}
		if text := describe(value["non_field_errors"]); text != "" {
			return text
		}

		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			if text := describe(value[key]); text != "" {
				parts = append(parts, key+": "+text)
			}
		}
		return strings.Join(parts, "; ")
	case nil:
		return ""
	default:
		return fmt.Sprint(value)
	}
}

// truncate cuts text to at most maxDetailLength bytes without splitting a
// rune.
func truncate(text string) string {
	if len(text) <= maxDetailLength {
		return text
	}

	cut := maxDetailLength
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}

	return text[:cut] + "..."
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}
	if path == "" {
		return "", errors.New("api path is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	// JoinPath keeps a path prefix on the base, e.g. http://host/backend.
	return parsed.JoinPath(path).String(), nil
}
