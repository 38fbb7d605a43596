// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// SearchStatus is the backend's in-band outcome tag for a university review
// search. Soft failures (no data, partial results) arrive through this field
// rather than HTTP error codes.
type SearchStatus string

const (
	SearchSuccess            SearchStatus = "success"
	SearchPartialSuccess     SearchStatus = "partial_success"
	SearchFailed             SearchStatus = "search_failed"
	SearchServiceUnavailable SearchStatus = "service_unavailable"
	SearchNoDataFound        SearchStatus = "no_data_found"
	SearchError              SearchStatus = "error"
)

// Review is one student review, positive or negative.
type Review struct {
	Text      string  `json:"text" yaml:"text"`
	Rating    float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	Source    string  `json:"source,omitempty" yaml:"source,omitempty"`
	Date      string  `json:"date,omitempty" yaml:"date,omitempty"`
	Author    string  `json:"author,omitempty" yaml:"author,omitempty"`
	Sentiment string  `json:"sentiment,omitempty" yaml:"sentiment,omitempty"`
	URL       string  `json:"url,omitempty" yaml:"url,omitempty"`
}

// Ranking holds the university's ranking record when the backend found one.
type Ranking struct {
	Rank   int    `json:"rank,omitempty" yaml:"rank,omitempty"`
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	Year   int    `json:"year,omitempty" yaml:"year,omitempty"`
	Scale  string `json:"scale,omitempty" yaml:"scale,omitempty"`
}

// ComplaintCategory aggregates a recurring complaint theme and its frequency.
type ComplaintCategory struct {
	Category  string `json:"category" yaml:"category"`
	Frequency int    `json:"frequency" yaml:"frequency"`
}

// ReviewSummary aggregates counts and themes across all collected reviews.
type ReviewSummary struct {
	TotalReviews     int                 `json:"total_reviews" yaml:"total_reviews"`
	NegativeCount    int                 `json:"negative_count" yaml:"negative_count"`
	PositiveCount    int                 `json:"positive_count" yaml:"positive_count"`
	AverageRating    float64             `json:"average_rating" yaml:"average_rating"`
	CommonComplaints []ComplaintCategory `json:"common_complaints" yaml:"common_complaints"`
	CommonPraises    []string            `json:"common_praises" yaml:"common_praises"`
}

// ReviewSource is one site the backend consulted.
type ReviewSource struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
	Count int    `json:"count,omitempty" yaml:"count,omitempty"`
}

// UniversityResult is the normalized outcome of a university review search.
// Every collection field is guaranteed non-nil so consumers never distinguish
// missing from empty.
type UniversityResult struct {
	UniversityName  string         `json:"university_name" yaml:"university_name"`
	Ranking         *Ranking       `json:"ranking,omitempty" yaml:"ranking,omitempty"`
	NegativeReviews []Review       `json:"negative_reviews" yaml:"negative_reviews"`
	PositiveReviews []Review       `json:"positive_reviews" yaml:"positive_reviews"`
	Summary         ReviewSummary  `json:"review_summary" yaml:"review_summary"`
	Sources         []ReviewSource `json:"sources" yaml:"sources"`
	SearchStatus    SearchStatus   `json:"search_status" yaml:"search_status"`
	Timestamp       time.Time      `json:"analysis_timestamp" yaml:"analysis_timestamp"`

	// Error and Message carry the backend's explanation on degraded results.
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`

	// Suggestions lists alternate spellings the backend proposed when the
	// name did not match.
	Suggestions []string `json:"suggestions" yaml:"suggestions"`
}

// Degraded reports whether the search completed without full results.
func (r *UniversityResult) Degraded() bool {
	return r.SearchStatus != SearchSuccess
}
