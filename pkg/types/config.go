package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the per-attempt HTTP request deadline.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// MaxRetries is the number of additional attempts after the first failure.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "veriscope/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ClientConfig holds settings for the backend API client.
type ClientConfig struct {
	// BaseURL is the backend root (default "https://asv-8ghi.onrender.com").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// UserAgent is sent with every request.
	UserAgent string `json:"user_agent" yaml:"user_agent"`

	// SearchCacheTTL is how long a university search result is served from
	// cache. Zero disables the cache.
	SearchCacheTTL time.Duration `json:"search_cache_ttl" yaml:"search_cache_ttl"`
}

// SessionConfig holds settings for the local session store.
type SessionConfig struct {
	// Dir is the directory holding the session database (default ".veriscope").
	Dir string `json:"dir" yaml:"dir"`
}

// BatchConfig holds settings for multi-file analysis submission.
type BatchConfig struct {
	// Concurrency bounds how many files are in flight at once (default 3).
	Concurrency int `json:"concurrency" yaml:"concurrency"`

	// RatePerSecond limits submission starts per second. Zero means no limit.
	RatePerSecond float64 `json:"rate_per_second" yaml:"rate_per_second"`
}

// ReportFormat selects the report output format.
type ReportFormat string

const (
	ReportText ReportFormat = "text"
	ReportHTML ReportFormat = "html"
	ReportJSON ReportFormat = "json"
)

// ReportConfig holds settings for report generation.
type ReportConfig struct {
	// Format selects the output artifact: text, html, or json.
	Format ReportFormat `json:"format" yaml:"format"`

	// OutputDir is where report files are written (default "output/reports").
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}
