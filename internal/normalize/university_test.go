// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veriscope/veriscope/pkg/types"
)

func TestUniversityDefaultsEverything(t *testing.T) {
	res := University(&RawUniversity{UniversityName: "IIT"})

	assert.Equal(t, "IIT", res.UniversityName)
	assert.Equal(t, types.SearchSuccess, res.SearchStatus)
	assert.NotNil(t, res.NegativeReviews)
	assert.NotNil(t, res.PositiveReviews)
	assert.NotNil(t, res.Sources)
	assert.NotNil(t, res.Suggestions)
	assert.Empty(t, res.NegativeReviews)
	assert.Empty(t, res.Summary.CommonComplaints)
	assert.Empty(t, res.Summary.CommonPraises)
	assert.Zero(t, res.Summary.TotalReviews)
	assert.WithinDuration(t, time.Now(), res.Timestamp, 5*time.Second)

	// A nil payload still yields a complete result.
	assert.NotNil(t, University(nil).Sources)
}

func TestUniversityNonSequenceCollectionsBecomeEmpty(t *testing.T) {
	raw := &RawUniversity{
		NegativeReviews: json.RawMessage(`"unexpected"`),
		PositiveReviews: json.RawMessage(`{"not":"a list"}`),
		Sources:         json.RawMessage(`null`),
	}
	res := University(raw)
	assert.Empty(t, res.NegativeReviews)
	assert.Empty(t, res.PositiveReviews)
	assert.Empty(t, res.Sources)
}

func TestUniversityFullPayload(t *testing.T) {
	body := `{
		"university_name": "Example University",
		"ranking": {"rank": 42, "source": "QS", "year": 2026},
		"negative_reviews": [
			{"text": "Housing is overpriced", "rating": 2.5, "source": "forum", "sentiment": "negative"}
		],
		"positive_reviews": [
			{"text": "Great faculty", "rating": 4.5},
			{"text": "Strong alumni network"}
		],
		"review_summary": {
			"total_reviews": 3,
			"negative_count": 1,
			"positive_count": 2,
			"average_rating": 3.8,
			"common_complaints": [{"category": "housing", "frequency": 5}],
			"common_praises": ["faculty"]
		},
		"sources": [{"title": "Forum", "url": "https://f.example", "count": 3}],
		"search_status": "partial_success",
		"analysis_timestamp": "2026-03-01T08:00:00Z"
	}`

	var raw RawUniversity
	require.NoError(t, json.Unmarshal([]byte(body), &raw))
	res := University(&raw)

	assert.Equal(t, types.SearchPartialSuccess, res.SearchStatus)
	assert.True(t, res.Degraded())
	require.NotNil(t, res.Ranking)
	assert.Equal(t, 42, res.Ranking.Rank)

	require.Len(t, res.NegativeReviews, 1)
	assert.Equal(t, 2.5, res.NegativeReviews[0].Rating)
	require.Len(t, res.PositiveReviews, 2)
	assert.Zero(t, res.PositiveReviews[1].Rating)

	assert.Equal(t, 3, res.Summary.TotalReviews)
	require.Len(t, res.Summary.CommonComplaints, 1)
	assert.Equal(t, 5, res.Summary.CommonComplaints[0].Frequency)

	require.Len(t, res.Sources, 1)
	assert.Equal(t, 3, res.Sources[0].Count)
	assert.Equal(t, time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC), res.Timestamp)
}

func TestUniversitySearchStatusPresence(t *testing.T) {
	var with RawUniversity
	require.NoError(t, json.Unmarshal([]byte(`{"search_status":"no_data_found"}`), &with))
	assert.True(t, with.HasSearchStatus())
	assert.Equal(t, types.SearchNoDataFound, University(&with).SearchStatus)

	var without RawUniversity
	require.NoError(t, json.Unmarshal([]byte(`{"university_name":"X"}`), &without))
	assert.False(t, without.HasSearchStatus())
	assert.Equal(t, types.SearchSuccess, University(&without).SearchStatus)
}
