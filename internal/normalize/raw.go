// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package normalize converts the backend's loosely-typed payloads into the
// strict model in pkg/types. The raw shapes below mirror the wire format,
// optional and variant fields included; they never escape this package or
// internal/api.
package normalize

import "encoding/json"

// RawAnalysis mirrors the POST /analyze response body. Summary and Claims are
// pointers so an absent field is distinguishable from an empty one; a payload
// missing either is malformed.
type RawAnalysis struct {
	Summary *RawAnalysisSummary `json:"summary"`
	Claims  *[]RawClaim         `json:"claims"`
}

// RawAnalysisSummary is the backend's per-run summary record.
type RawAnalysisSummary struct {
	TotalClaims    int     `json:"total_claims"`
	ProcessingTime float64 `json:"processing_time"`
	DocumentName   string  `json:"document_name"`
	Timestamp      string  `json:"timestamp"`
	AnalysisMode   string  `json:"analysis_mode"`
}

// RawClaim is one claim record as the backend reports it.
type RawClaim struct {
	ClaimText        string           `json:"claim_text"`
	Category         string           `json:"category"`
	Verdict          string           `json:"verdict"`
	EvidenceSummary  string           `json:"evidence_summary"`
	VerdictReasoning string           `json:"verdict_reasoning"`
	SourceContext    string           `json:"source_context"`
	TrustScore       *float64         `json:"trust_score"`
	WebEvidence      []RawWebEvidence `json:"web_evidence"`
	Metadata         RawClaimMetadata `json:"metadata"`
}

// RawWebEvidence is one web-search evidence record.
type RawWebEvidence struct {
	Title          string   `json:"title"`
	URL            string   `json:"url"`
	Snippet        string   `json:"snippet"`
	SourceType     string   `json:"source_type"`
	RelevanceScore *float64 `json:"relevance_score"`
}

// RawClaimMetadata carries extraction provenance for a claim.
type RawClaimMetadata struct {
	Source         string  `json:"source"`
	SourceChunkID  int     `json:"source_chunk_id"`
	ClaimType      string  `json:"claim_type"`
	ExtractedValue string  `json:"extracted_value"`
	Confidence     float64 `json:"confidence"`
	Method         string  `json:"method"`
}

// RawUniversity mirrors the POST /api/university-reviews response body. The
// review and source collections stay as raw JSON because the backend has
// shipped non-array values there; decoding is deferred to normalization,
// which turns anything that is not a sequence into an empty one.
type RawUniversity struct {
	UniversityName    string            `json:"university_name"`
	Ranking           *RawRanking       `json:"ranking"`
	NegativeReviews   json.RawMessage   `json:"negative_reviews"`
	PositiveReviews   json.RawMessage   `json:"positive_reviews"`
	ReviewSummary     *RawReviewSummary `json:"review_summary"`
	Sources           json.RawMessage   `json:"sources"`
	SearchStatus      *string           `json:"search_status"`
	AnalysisTimestamp string            `json:"analysis_timestamp"`
	Error             string            `json:"error"`
	Message           string            `json:"message"`
	Suggestions       []string          `json:"suggestions"`
	DebugInfo         json.RawMessage   `json:"debug_info"`
}

// HasSearchStatus reports whether the payload carried a search_status field.
// Non-2xx responses with this field present are soft failures, not errors.
func (r *RawUniversity) HasSearchStatus() bool {
	return r.SearchStatus != nil
}

// RawRanking is the optional ranking record.
type RawRanking struct {
	Rank   int    `json:"rank"`
	Source string `json:"source"`
	Year   int    `json:"year"`
	Scale  string `json:"scale"`
}

// RawReview is one review record; every field beyond the text is optional.
type RawReview struct {
	Text      string   `json:"text"`
	Rating    *float64 `json:"rating"`
	Source    string   `json:"source"`
	Date      string   `json:"date"`
	Author    string   `json:"author"`
	Sentiment string   `json:"sentiment"`
	URL       string   `json:"url"`
}

// RawReviewSummary aggregates review counts and themes.
type RawReviewSummary struct {
	TotalReviews     int            `json:"total_reviews"`
	NegativeCount    int            `json:"negative_count"`
	PositiveCount    int            `json:"positive_count"`
	AverageRating    float64        `json:"average_rating"`
	CommonComplaints []RawComplaint `json:"common_complaints"`
	CommonPraises    []string       `json:"common_praises"`
}

// RawComplaint is one complaint theme with its frequency.
type RawComplaint struct {
	Category  string `json:"category"`
	Frequency int    `json:"frequency"`
}

// RawSource is one consulted review site.
type RawSource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Count *int   `json:"count"`
}
