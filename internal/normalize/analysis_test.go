// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriscope/veriscope/pkg/types"
)

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func floatPtr(f float64) *float64 { return &f }

func rawClaim(verdict string) RawClaim {
	return RawClaim{
		ClaimText:        "Revenue grew 40% in 2024",
		Category:         "Financial",
		Verdict:          verdict,
		EvidenceSummary:  "Annual report page 12",
		VerdictReasoning: "Matches the audited statement",
		SourceContext:    "…revenue grew 40%…",
		Metadata:         RawClaimMetadata{Source: "doc", SourceChunkID: 0},
	}
}

func rawAnalysis(claims ...RawClaim) *RawAnalysis {
	return &RawAnalysis{
		Summary: &RawAnalysisSummary{
			TotalClaims:    len(claims),
			ProcessingTime: 1.25,
			DocumentName:   "report.txt",
			Timestamp:      "2026-02-01T10:30:00Z",
		},
		Claims: &claims,
	}
}

func TestAnalysisRejectsMissingFields(t *testing.T) {
	_, err := Analysis(&RawAnalysis{Claims: &[]RawClaim{}}, testRNG())
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Analysis(&RawAnalysis{Summary: &RawAnalysisSummary{}}, testRNG())
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Analysis(nil, testRNG())
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestAnalysisEmptyClaimsIsValid(t *testing.T) {
	res, err := Analysis(rawAnalysis(), testRNG())
	require.NoError(t, err)
	assert.Empty(t, res.Claims)
	assert.Equal(t, "report.txt", res.Summary.DocumentName)
}

func TestAnalysisClaimCountMatches(t *testing.T) {
	res, err := Analysis(rawAnalysis(rawClaim("Supported"), rawClaim("Contradicted"), rawClaim("Unverifiable")), testRNG())
	require.NoError(t, err)
	require.Len(t, res.Claims, 3)
	for _, c := range res.Claims {
		assert.NotEmpty(t, c.Evidence, "claim %s has empty evidence", c.ID)
	}
	assert.Equal(t, 3, res.Summary.TotalClaims)
}

func TestVerdictMapping(t *testing.T) {
	tests := []struct {
		verdict string
		want    types.Consistency
	}{
		{"Confirmed", types.ConsistencySupported},
		{"Supported", types.ConsistencySupported},
		{"Contradicted", types.ConsistencyContradicted},
		{"Unverifiable", types.ConsistencyUnverifiable},
		{"Unsupported", types.ConsistencyUnsupported},
		{"Probably", types.ConsistencyUnverifiable},
		{"", types.ConsistencyUnverifiable},
	}
	for _, tt := range tests {
		t.Run(tt.verdict, func(t *testing.T) {
			res, err := Analysis(rawAnalysis(rawClaim(tt.verdict)), testRNG())
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Claims[0].Consistency)
		})
	}
}

func TestTrustScoreVerbatimWhenSupplied(t *testing.T) {
	rc := rawClaim("Supported")
	rc.TrustScore = floatPtr(12)
	res, err := Analysis(rawAnalysis(rc), testRNG())
	require.NoError(t, err)
	assert.Equal(t, 12, res.Claims[0].TrustScore)
}

func TestTrustScoreSynthesisRanges(t *testing.T) {
	tests := []struct {
		verdict string
		lo, hi  int
	}{
		{"Confirmed", 80, 95},
		{"Supported", 75, 90},
		{"Contradicted", 10, 30},
		{"Unverifiable", 40, 60},
		{"Unsupported", 25, 45},
	}
	rng := testRNG()
	for _, tt := range tests {
		for i := 0; i < 50; i++ {
			res, err := Analysis(rawAnalysis(rawClaim(tt.verdict)), rng)
			require.NoError(t, err)
			got := res.Claims[0].TrustScore
			if got < tt.lo || got > tt.hi {
				t.Fatalf("verdict %s: score %d outside [%d,%d]", tt.verdict, got, tt.lo, tt.hi)
			}
		}
	}

	// Unknown verdicts always get the fixed default.
	res, err := Analysis(rawAnalysis(rawClaim("Mystery")), rng)
	require.NoError(t, err)
	assert.Equal(t, 50, res.Claims[0].TrustScore)
}

func TestAnalysisReproducibleWithSeededSource(t *testing.T) {
	raw := rawAnalysis(rawClaim("Supported"), rawClaim("Confirmed"))

	a, err := Analysis(raw, rand.New(rand.NewSource(7)))
	require.NoError(t, err)
	b, err := Analysis(raw, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestEvidenceShape(t *testing.T) {
	rc := rawClaim("Supported")
	rc.WebEvidence = []RawWebEvidence{
		{Title: "A", URL: "https://a.example", Snippet: "sa", SourceType: "news", RelevanceScore: floatPtr(91)},
		{Title: "B", URL: "https://b.example", Snippet: "sb", SourceType: "academic"},
		{Title: "C", URL: "https://c.example", Snippet: "sc"},
		{Title: "D", URL: "https://d.example", Snippet: "sd"},
	}

	res, err := Analysis(rawAnalysis(rc), testRNG())
	require.NoError(t, err)
	ev := res.Claims[0].Evidence

	// Summary element plus at most three web records.
	require.Len(t, ev, 4)
	assert.Equal(t, "#", ev[0].URL)
	assert.Equal(t, "doc", ev[0].Source)
	assert.Equal(t, 85, ev[0].Relevance)
	assert.Equal(t, "Annual report page 12", ev[0].Snippet)

	assert.Equal(t, 91, ev[1].Relevance)
	assert.Equal(t, 75, ev[2].Relevance)
	assert.Equal(t, "https://c.example", ev[3].URL)
}

func TestPageNumberAndIDs(t *testing.T) {
	a := rawClaim("Supported")
	a.Metadata.SourceChunkID = 0
	b := rawClaim("Supported")
	b.Metadata.SourceChunkID = 4

	res, err := Analysis(rawAnalysis(a, b), testRNG())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Claims[0].PageNumber)
	assert.Equal(t, 5, res.Claims[1].PageNumber)
	assert.Equal(t, "claim-1", res.Claims[0].ID)
	assert.Equal(t, "claim-2", res.Claims[1].ID)
}

func TestRawAnalysisDecodePresence(t *testing.T) {
	var missing RawAnalysis
	require.NoError(t, json.Unmarshal([]byte(`{"summary":{"total_claims":0}}`), &missing))
	assert.Nil(t, missing.Claims)

	var empty RawAnalysis
	require.NoError(t, json.Unmarshal([]byte(`{"summary":{},"claims":[]}`), &empty))
	require.NotNil(t, empty.Claims)
	assert.Empty(t, *empty.Claims)

	// A non-array claims field fails structural decoding outright.
	var bad RawAnalysis
	assert.Error(t, json.Unmarshal([]byte(`{"summary":{},"claims":"nope"}`), &bad))
}
