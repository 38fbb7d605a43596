// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/veriscope/veriscope/pkg/types"
)

// ErrMalformed marks a structurally invalid backend payload. The client maps
// it to a status-500 API error.
var ErrMalformed = errors.New("malformed analysis payload")

// maxWebEvidence caps how many web-evidence records are carried per claim,
// after the summary-derived element.
const maxWebEvidence = 3

const (
	summaryEvidenceRelevance = 85
	defaultWebRelevance      = 75
	summaryEvidenceURL       = "#"
)

// trustRanges are the inclusive synthesis ranges used when the backend omits
// a numeric trust score. This is a documented placeholder keyed on the
// verdict, not a confidence computation; the ranges are part of the client's
// compatibility contract and must not drift.
var trustRanges = map[string][2]int{
	"Confirmed":    {80, 95},
	"Supported":    {75, 90},
	"Contradicted": {10, 30},
	"Unverifiable": {40, 60},
	"Unsupported":  {25, 45},
}

// defaultTrustScore is used for verdicts outside the known set.
const defaultTrustScore = 50

// consistencyFor maps a backend verdict onto the internal consistency enum.
// "Confirmed" collapses into Supported; anything unrecognized is
// Unverifiable.
func consistencyFor(verdict string) types.Consistency {
	switch verdict {
	case "Confirmed", "Supported":
		return types.ConsistencySupported
	case "Contradicted":
		return types.ConsistencyContradicted
	case "Unverifiable":
		return types.ConsistencyUnverifiable
	case "Unsupported":
		return types.ConsistencyUnsupported
	default:
		return types.ConsistencyUnverifiable
	}
}

// Analysis converts a raw /analyze payload into the normalized result. It is
// pure apart from the injected randomness: rng drives trust-score synthesis
// for claims without a backend score, so tests inject a seeded source. A nil
// rng falls back to a time-seeded one.
//
// A payload missing its summary or claims field is rejected with ErrMalformed.
func Analysis(raw *RawAnalysis, rng *rand.Rand) (*types.AnalysisResult, error) {
	if raw == nil || raw.Summary == nil {
		return nil, fmt.Errorf("%w: missing summary", ErrMalformed)
	}
	if raw.Claims == nil {
		return nil, fmt.Errorf("%w: missing claims", ErrMalformed)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	rawClaims := *raw.Claims
	claims := make([]types.Claim, 0, len(rawClaims))
	for i, rc := range rawClaims {
		claims = append(claims, normalizeClaim(i, rc, rng))
	}

	totalClaims := raw.Summary.TotalClaims
	if totalClaims == 0 {
		totalClaims = len(claims)
	}

	return &types.AnalysisResult{
		Summary: types.AnalysisSummary{
			TotalClaims:    totalClaims,
			ProcessingTime: raw.Summary.ProcessingTime,
			DocumentName:   raw.Summary.DocumentName,
			Timestamp:      parseTimestamp(raw.Summary.Timestamp),
			AnalysisMode:   raw.Summary.AnalysisMode,
		},
		Claims: claims,
	}, nil
}

func normalizeClaim(index int, rc RawClaim, rng *rand.Rand) types.Claim {
	return types.Claim{
		ID:             fmt.Sprintf("claim-%d", index+1),
		Text:           rc.ClaimText,
		Category:       types.Category(rc.Category),
		Consistency:    consistencyFor(rc.Verdict),
		TrustScore:     trustScore(rc, rng),
		Evidence:       evidenceList(rc),
		Reasoning:      rc.VerdictReasoning,
		SourceContext:  rc.SourceContext,
		PageNumber:     rc.Metadata.SourceChunkID + 1,
		ClaimType:      rc.Metadata.ClaimType,
		ExtractedValue: rc.Metadata.ExtractedValue,
		Confidence:     rc.Metadata.Confidence,
		Method:         rc.Metadata.Method,
	}
}

// trustScore uses the backend's score verbatim when present, clamped into
// [0,100]; otherwise it synthesizes one from the verdict-keyed range.
func trustScore(rc RawClaim, rng *rand.Rand) int {
	if rc.TrustScore != nil {
		return clampScore(int(math.Round(*rc.TrustScore)))
	}
	r, ok := trustRanges[rc.Verdict]
	if !ok {
		return defaultTrustScore
	}
	return r[0] + rng.Intn(r[1]-r[0]+1)
}

func clampScore(s int) int {
	if s < 0 {
		return 0
	}
	if s > 100 {
		return 100
	}
	return s
}

// evidenceList is never empty: element 0 carries the backend's evidence
// summary, then at most maxWebEvidence web records follow.
func evidenceList(rc RawClaim) []types.Evidence {
	ev := make([]types.Evidence, 0, 1+maxWebEvidence)
	ev = append(ev, types.Evidence{
		URL:       summaryEvidenceURL,
		Snippet:   rc.EvidenceSummary,
		Source:    rc.Metadata.Source,
		Relevance: summaryEvidenceRelevance,
	})

	for i, we := range rc.WebEvidence {
		if i == maxWebEvidence {
			break
		}
		relevance := defaultWebRelevance
		if we.RelevanceScore != nil {
			relevance = clampScore(int(math.Round(*we.RelevanceScore)))
		}
		ev = append(ev, types.Evidence{
			Title:      we.Title,
			URL:        we.URL,
			Snippet:    we.Snippet,
			Source:     we.URL,
			SourceType: we.SourceType,
			Relevance:  relevance,
		})
	}
	return ev
}

// parseTimestamp accepts the backend's RFC 3339 timestamps and falls back to
// the current time for anything else.
func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Now().UTC()
}
