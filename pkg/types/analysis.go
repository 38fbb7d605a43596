// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the stable data structures shared across veriscope
// stages: the normalized analysis result produced from backend payloads, the
// university review result, and per-stage configuration.
//
// Raw backend payloads never leave internal/normalize; everything downstream
// of the client (session store, reports, CLI output) consumes these types and
// can rely on every collection being present and every field resolved.
package types

import "time"

// Consistency classifies the outcome of verifying a claim against evidence.
type Consistency string

const (
	ConsistencySupported    Consistency = "Supported"
	ConsistencyContradicted Consistency = "Contradicted"
	ConsistencyUnverifiable Consistency = "Unverifiable"
	ConsistencyUnsupported  Consistency = "Unsupported"
)

// Category is the backend's fixed claim taxonomy.
type Category string

const (
	CategoryFinancial   Category = "Financial"
	CategoryOperational Category = "Operational"
	CategoryLegal       Category = "Legal & Compliance"
	CategoryESG         Category = "ESG"
)

// Evidence is one snippet of supporting or contradicting material attached
// to a claim. Element 0 of a claim's evidence list is always derived from
// the backend's evidence summary; later elements come from web evidence.
type Evidence struct {
	// Title is the evidence title, empty for the summary-derived element.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// URL is the evidence location. The summary-derived element uses the
	// placeholder "#".
	URL string `json:"url" yaml:"url"`

	// Snippet is the evidence text.
	Snippet string `json:"snippet" yaml:"snippet"`

	// Source names where the evidence came from (document id or site).
	Source string `json:"source" yaml:"source"`

	// SourceType tags web evidence ("news", "academic", ...); empty for the
	// summary-derived element.
	SourceType string `json:"source_type,omitempty" yaml:"source_type,omitempty"`

	// Relevance is a 0-100 relevance score.
	Relevance int `json:"relevance" yaml:"relevance"`
}

// Claim is a single verified assertion extracted from a document.
type Claim struct {
	// ID is an index-based token unique within one analysis result. It is
	// neither globally unique nor persisted across runs.
	ID string `json:"id" yaml:"id"`

	// Text is the claim statement.
	Text string `json:"text" yaml:"text"`

	// Category is the backend's claim taxonomy bucket.
	Category Category `json:"category" yaml:"category"`

	// Consistency is the verification outcome. The backend's "Confirmed"
	// verdict collapses into Supported; unrecognized verdicts become
	// Unverifiable.
	Consistency Consistency `json:"consistency" yaml:"consistency"`

	// TrustScore is an integer in [0,100]. Backend-supplied scores are used
	// verbatim; otherwise a placeholder score is synthesized per verdict.
	TrustScore int `json:"trust_score" yaml:"trust_score"`

	// Evidence is never empty: element 0 is the summary-derived entry,
	// followed by at most three web-evidence entries.
	Evidence []Evidence `json:"evidence" yaml:"evidence"`

	// Reasoning is the backend's verdict explanation.
	Reasoning string `json:"reasoning" yaml:"reasoning"`

	// SourceContext is the document passage the claim was extracted from.
	SourceContext string `json:"source_context" yaml:"source_context"`

	// PageNumber is 1-based, derived from the source chunk index.
	PageNumber int `json:"page_number" yaml:"page_number"`

	// ClaimType, ExtractedValue, Confidence, and Method carry optional
	// extraction metadata tags when the backend supplies them.
	ClaimType      string  `json:"claim_type,omitempty" yaml:"claim_type,omitempty"`
	ExtractedValue string  `json:"extracted_value,omitempty" yaml:"extracted_value,omitempty"`
	Confidence     float64 `json:"confidence,omitempty" yaml:"confidence,omitempty"`
	Method         string  `json:"method,omitempty" yaml:"method,omitempty"`
}

// AnalysisSummary describes one analysis run.
type AnalysisSummary struct {
	TotalClaims    int       `json:"total_claims" yaml:"total_claims"`
	ProcessingTime float64   `json:"processing_time" yaml:"processing_time"`
	DocumentName   string    `json:"document_name" yaml:"document_name"`
	Timestamp      time.Time `json:"timestamp" yaml:"timestamp"`

	// AnalysisMode is the backend's mode tag when reported ("full",
	// "fallback", ...), empty otherwise.
	AnalysisMode string `json:"analysis_mode,omitempty" yaml:"analysis_mode,omitempty"`
}

// AnalysisResult is the normalized outcome of one document analysis. Values
// are never mutated after construction; transformations produce new values.
type AnalysisResult struct {
	Summary AnalysisSummary `json:"summary" yaml:"summary"`
	Claims  []Claim         `json:"claims" yaml:"claims"`
}
