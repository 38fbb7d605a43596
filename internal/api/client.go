// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/veriscope/veriscope/internal/httputil"
	"github.com/veriscope/veriscope/internal/normalize"
	"github.com/veriscope/veriscope/pkg/types"
)

// DefaultBaseURL is the hosted backend used when no base URL is configured.
const DefaultBaseURL = "https://asv-8ghi.onrender.com"

// Per-operation policies. Health and status fail fast; analysis and review
// searches wait out the backend's slow paths and retry twice.
const (
	healthTimeout  = 5 * time.Second
	healthRetries  = 1
	analyzeTimeout = 30 * time.Second
	analyzeRetries = 2
	searchTimeout  = 100 * time.Second
	searchRetries  = 2
)

// minSearchLength mirrors the validator's lower bound; the client re-checks
// it so no request is issued for a name the backend would reject anyway.
const minSearchLength = 3

// Client talks to the verification backend. Operations are safe for
// concurrent use; each call carries its own timeout and retry budget and no
// state is shared beyond the immutable base URL and the optional search
// cache.
type Client struct {
	// BaseURL is the backend root without a trailing slash.
	BaseURL string

	// HTTPClient performs the requests. Per-attempt deadlines come from the
	// transport, so it carries no timeout of its own.
	HTTPClient *http.Client

	// UserAgent is sent with every request when non-empty.
	UserAgent string

	// Rand drives trust-score synthesis during normalization. Tests inject a
	// seeded source; nil means time-seeded.
	Rand *rand.Rand

	searchCache *gocache.Cache
}

// NewClient builds a client from configuration, applying defaults for the
// base URL and enabling the university search cache when a TTL is set.
func NewClient(cfg types.ClientConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{},
		UserAgent:  cfg.UserAgent,
	}
	if cfg.SearchCacheTTL > 0 {
		c.searchCache = gocache.New(cfg.SearchCacheTTL, 2*cfg.SearchCacheTTL)
	}
	return c
}

// HealthInfo is the GET / liveness payload.
type HealthInfo struct {
	Message string `json:"message"`
	Version string `json:"version,omitempty"`
}

// StatusInfo is the GET /status capability payload.
type StatusInfo struct {
	Status       string         `json:"status"`
	Message      string         `json:"message"`
	AnalysisMode string         `json:"analysis_mode,omitempty"`
	Services     map[string]any `json:"services,omitempty"`
	Endpoints    map[string]any `json:"endpoints,omitempty"`
}

// Health probes backend liveness. It fails fast: 5 s per attempt, one retry.
func (c *Client) Health(ctx context.Context) (*HealthInfo, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/", nil, healthTimeout, healthRetries)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &Error{Message: messageFromBody(status, body), Status: status, Body: string(body)}
	}
	var info HealthInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, malformed(body, err)
	}
	return &info, nil
}

// Status reports backend capability and analysis mode.
func (c *Client) Status(ctx context.Context) (*StatusInfo, error) {
	status, body, err := c.do(ctx, http.MethodGet, "/status", nil, healthTimeout, healthRetries)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &Error{Message: messageFromBody(status, body), Status: status, Body: string(body)}
	}
	var info StatusInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, malformed(body, err)
	}
	return &info, nil
}

// Document is one file submitted for analysis.
type Document struct {
	// Name is the filename reported to the backend.
	Name string

	// MIME is the declared media type. Only "application/pdf" selects the
	// pdf file type; everything else is sent as txt. Extension-based checks
	// belong to the validator, not here.
	MIME string

	// Data is the raw file content.
	Data []byte
}

// FileType returns the wire file_type tag for the document.
func (d Document) FileType() string {
	if d.MIME == "application/pdf" {
		return "pdf"
	}
	return "txt"
}

// analyzeRequest is the POST /analyze body.
type analyzeRequest struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
	FileType string `json:"file_type"`
}

// AnalyzeDocument submits a document and returns the normalized analysis
// result. The content travels base64-encoded. A 2xx response missing its
// summary or claims fields is reported as a malformed response (status 500).
func (c *Client) AnalyzeDocument(ctx context.Context, doc Document) (*types.AnalysisResult, error) {
	payload := analyzeRequest{
		Filename: doc.Name,
		Content:  base64.StdEncoding.EncodeToString(doc.Data),
		FileType: doc.FileType(),
	}

	status, body, err := c.do(ctx, http.MethodPost, "/analyze", payload, analyzeTimeout, analyzeRetries)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &Error{Message: messageFromBody(status, body), Status: status, Body: string(body)}
	}

	var raw normalize.RawAnalysis
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, malformed(body, err)
	}
	result, err := normalize.Analysis(&raw, c.Rand)
	if err != nil {
		return nil, malformed(body, err)
	}
	return result, nil
}

// searchRequest is the POST /api/university-reviews body.
type searchRequest struct {
	UniversityName string `json:"university_name"`
	IncludeDebug   bool   `json:"include_debug"`
}

// SearchUniversityReviews looks up reviews for a university. The name is
// trimmed and must be at least three characters, checked before any request
// is sent (status 400 otherwise).
//
// The backend signals soft failures (no data, partial results) in-band: a
// non-2xx response whose body still carries a search_status field is
// returned as a successful, degraded result. Only a non-2xx response
// without that field raises an error.
func (c *Client) SearchUniversityReviews(ctx context.Context, name string) (*types.UniversityResult, error) {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < minSearchLength {
		return nil, &Error{
			Message: fmt.Sprintf("university name must be at least %d characters", minSearchLength),
			Status:  http.StatusBadRequest,
		}
	}

	if c.searchCache != nil {
		if cached, ok := c.searchCache.Get(trimmed); ok {
			return cached.(*types.UniversityResult), nil
		}
	}

	payload := searchRequest{UniversityName: trimmed, IncludeDebug: false}
	status, body, err := c.do(ctx, http.MethodPost, "/api/university-reviews", payload, searchTimeout, searchRetries)
	if err != nil {
		return nil, err
	}

	var raw normalize.RawUniversity
	decodeErr := json.Unmarshal(body, &raw)

	if status < 200 || status >= 300 {
		if decodeErr != nil || !raw.HasSearchStatus() {
			return nil, &Error{Message: messageFromBody(status, body), Status: status, Body: string(body)}
		}
		// Soft failure: the status field makes this a degraded result.
	} else if decodeErr != nil {
		return nil, malformed(body, decodeErr)
	}

	result := normalize.University(&raw)
	if c.searchCache != nil {
		c.searchCache.SetDefault(trimmed, result)
	}
	return result, nil
}

// do performs one backend round-trip under the given policy and returns the
// status and drained body. Transport failures come back as *Error with
// status 0, timeouts as status 408.
func (c *Client) do(ctx context.Context, method, path string, payload any, timeout time.Duration, maxRetries int) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encoding request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("creating request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, timeout, maxRetries)
	if err != nil {
		if errors.Is(err, httputil.ErrTimeout) {
			return 0, nil, &Error{Message: "request timed out", Status: http.StatusRequestTimeout, cause: err}
		}
		return 0, nil, &Error{Message: err.Error(), Status: 0, cause: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, &Error{Message: fmt.Sprintf("reading response: %v", err), Status: 0, cause: err}
	}
	return resp.StatusCode, body, nil
}

// malformed wraps a structurally invalid 2xx response.
func malformed(body []byte, cause error) *Error {
	return &Error{
		Message: "malformed response from backend",
		Status:  http.StatusInternalServerError,
		Body:    string(body),
		cause:   cause,
	}
}
