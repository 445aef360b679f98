package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winter3671/TakeMeTrip/internal/domain"
	"golang.org/x/time/rate"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return &Client{BaseURL: server.URL, HTTPClient: server.Client()}
}

func TestClientClassifiesErrorResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   error
		wantDetail string
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"detail":"Invalid token."}`, wantKind: domain.ErrAuthExpired, wantDetail: "Invalid token."},
		{name: "forbidden is validation", status: http.StatusForbidden, body: `{"message":"not the owner"}`, wantKind: domain.ErrValidation, wantDetail: "not the owner"},
		{name: "field errors", status: http.StatusBadRequest, body: `{"username":["A user with that username already exists."],"password1":["This password is too short."]}`, wantKind: domain.ErrValidation, wantDetail: "password1: This password is too short.; username: A user with that username already exists."},
		{name: "non field errors", status: http.StatusBadRequest, body: `{"non_field_errors":["Unable to log in with provided credentials."]}`, wantKind: domain.ErrValidation, wantDetail: "Unable to log in with provided credentials."},
		{name: "server error", status: http.StatusBadGateway, body: `{"detail":"upstream"}`, wantKind: domain.ErrServer, wantDetail: "upstream"},
		{name: "html error page", status: http.StatusNotFound, body: `<html><body>Not Found</body></html>`, wantKind: domain.ErrServer, wantDetail: "<html><body>Not Found</body></html>"},
		{name: "empty body", status: http.StatusBadRequest, body: ``, wantKind: domain.ErrServer},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := client.Regions(context.Background())
			require.ErrorIs(t, err, tt.wantKind)

			var apiErr *domain.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantDetail, apiErr.Detail)
		})
	}
}

func TestClientTruncatesLongDetailOnRuneBoundary(t *testing.T) {
	t.Parallel()

	message := strings.Repeat("권한이 없습니다. ", 20)
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		jsonResponse(w, http.StatusBadRequest, fmt.Sprintf(`{"message":%q}`, message))
	})

	_, err := client.Regions(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)

	var apiErr *domain.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, utf8.ValidString(apiErr.Detail), "detail is not valid UTF-8: %q", apiErr.Detail)
	assert.True(t, strings.HasSuffix(apiErr.Detail, "..."))
	assert.LessOrEqual(t, len(apiErr.Detail), maxDetailLength+len("..."))
	assert.True(t, strings.HasPrefix(message, strings.TrimSuffix(apiErr.Detail, "...")))
}

func TestClientReportsTransportFailureAsNetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := &Client{BaseURL: baseURL}
	_, err := client.Regions(context.Background())
	require.ErrorIs(t, err, domain.ErrNetwork)
	assert.Contains(t, err.Error(), "GET /api/planner/locations/")
}

func TestClientTimesOutWithoutCallerDeadline(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(100 * time.Millisecond)
		_, _ = io.WriteString(w, `[]`)
	})
	client.RequestTimeout = 20 * time.Millisecond

	_, err := client.Regions(context.Background())
	require.ErrorIs(t, err, domain.ErrNetwork)
}

func TestClientAttachesBearerOnlyWithToken(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var headers []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		headers = append(headers, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `{"username":"alice"}`)
	})

	_, err := client.CurrentUser(context.Background(), "tok-123")
	require.NoError(t, err)
	_, err = client.CurrentUser(context.Background(), "")
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Bearer tok-123", ""}, headers)
}

func TestClientRejectsMalformedSuccessBody(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"plan": "not-a-list"}`)
	})

	_, err := client.Generate(context.Background(), "t", domain.PlanRequest{})
	require.ErrorIs(t, err, domain.ErrServer)
	assert.Contains(t, err.Error(), "decode /api/planner/generate/ response")
}

func TestClientWaitsOnLimiter(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		_, _ = io.WriteString(w, `[]`)
	})
	client.Limiter = rate.NewLimiter(rate.Every(50*time.Millisecond), 1)

	started := time.Now()
	for i := 0; i < 3; i++ {
		_, err := client.Categories(context.Background())
		require.NoError(t, err)
	}

	assert.Equal(t, int32(3), hits.Load())
	assert.GreaterOrEqual(t, time.Since(started), 90*time.Millisecond)
}

func TestCatalogReadsUseCachingClient(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		assert.Equal(t, regionsPath, r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Cache-Control", "max-age=300")
		_, _ = io.WriteString(w, `[{"id":39,"name":"Jeju","cities":[{"id":3,"name":"Seogwipo"}]}]`)
	}))
	t.Cleanup(server.Close)

	client := &Client{
		BaseURL:       server.URL,
		HTTPClient:    server.Client(),
		CatalogClient: NewCachingHTTPClient("", 5*time.Second),
	}

	for i := 0; i < 2; i++ {
		regions, err := client.Regions(context.Background())
		require.NoError(t, err)
		require.Len(t, regions, 1)
		assert.Equal(t, "Seogwipo", regions[0].Cities[0].Name)
	}

	assert.Equal(t, int32(1), hits.Load())
}

func TestBuildAPIURLValidatesBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		baseURL string
		wantErr string
	}{
		{name: "empty", baseURL: "", wantErr: "api base url is required"},
		{name: "scheme", baseURL: "ftp://example.com", wantErr: "must use http or https"},
		{name: "host", baseURL: "http://", wantErr: "host is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildAPIURL(tt.baseURL, regionsPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	endpoint, err := buildAPIURL("http://127.0.0.1:8000", articlesPath)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8000/api/community/articles/", endpoint)

	endpoint, err = buildAPIURL("http://host:8000/backend", articlesPath)
	require.NoError(t, err)
	assert.Equal(t, "http://host:8000/backend/api/community/articles/", endpoint)

	endpoint, err = buildAPIURL("http://host:8000/backend/", articlesPath)
	require.NoError(t, err)
	assert.Equal(t, "http://host:8000/backend/api/community/articles/", endpoint)
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
	return body
}

func jsonResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = fmt.Fprint(w, body)
}
