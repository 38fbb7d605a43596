// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"encoding/json"

	"github.com/veriscope/veriscope/pkg/types"
)

// University converts a raw university-review payload into the normalized
// result. It is total: every optional collection defaults to an empty
// sequence, counts default to zero, the search status defaults to "success",
// and a missing timestamp becomes the current time. Consumers never branch
// on missing-vs-empty.
func University(raw *RawUniversity) *types.UniversityResult {
	if raw == nil {
		raw = &RawUniversity{}
	}

	out := &types.UniversityResult{
		UniversityName:  raw.UniversityName,
		NegativeReviews: reviewSeq(raw.NegativeReviews),
		PositiveReviews: reviewSeq(raw.PositiveReviews),
		Sources:         sourceSeq(raw.Sources),
		SearchStatus:    types.SearchSuccess,
		Timestamp:       parseTimestamp(raw.AnalysisTimestamp),
		Error:           raw.Error,
		Message:         raw.Message,
		Suggestions:     raw.Suggestions,
	}
	if out.Suggestions == nil {
		out.Suggestions = []string{}
	}
	if raw.SearchStatus != nil && *raw.SearchStatus != "" {
		out.SearchStatus = types.SearchStatus(*raw.SearchStatus)
	}

	if raw.Ranking != nil {
		out.Ranking = &types.Ranking{
			Rank:   raw.Ranking.Rank,
			Source: raw.Ranking.Source,
			Year:   raw.Ranking.Year,
			Scale:  raw.Ranking.Scale,
		}
	}

	out.Summary = reviewSummary(raw.ReviewSummary)
	return out
}

// reviewSeq decodes a review collection, treating anything that is not a
// sequence (absent, null, or a scalar the backend has been known to ship) as
// empty.
func reviewSeq(raw json.RawMessage) []types.Review {
	var rs []RawReview
	if len(raw) == 0 || json.Unmarshal(raw, &rs) != nil {
		return []types.Review{}
	}
	out := make([]types.Review, 0, len(rs))
	for _, r := range rs {
		review := types.Review{
			Text:      r.Text,
			Source:    r.Source,
			Date:      r.Date,
			Author:    r.Author,
			Sentiment: r.Sentiment,
			URL:       r.URL,
		}
		if r.Rating != nil {
			review.Rating = *r.Rating
		}
		out = append(out, review)
	}
	return out
}

func sourceSeq(raw json.RawMessage) []types.ReviewSource {
	var rs []RawSource
	if len(raw) == 0 || json.Unmarshal(raw, &rs) != nil {
		return []types.ReviewSource{}
	}
	out := make([]types.ReviewSource, 0, len(rs))
	for _, s := range rs {
		src := types.ReviewSource{Title: s.Title, URL: s.URL}
		if s.Count != nil {
			src.Count = *s.Count
		}
		out = append(out, src)
	}
	return out
}

func reviewSummary(raw *RawReviewSummary) types.ReviewSummary {
	if raw == nil {
		return types.ReviewSummary{
			CommonComplaints: []types.ComplaintCategory{},
			CommonPraises:    []string{},
		}
	}
	complaints := make([]types.ComplaintCategory, 0, len(raw.CommonComplaints))
	for _, c := range raw.CommonComplaints {
		complaints = append(complaints, types.ComplaintCategory{
			Category:  c.Category,
			Frequency: c.Frequency,
		})
	}
	praises := raw.CommonPraises
	if praises == nil {
		praises = []string{}
	}
	return types.ReviewSummary{
		TotalReviews:     raw.TotalReviews,
		NegativeCount:    raw.NegativeCount,
		PositiveCount:    raw.PositiveCount,
		AverageRating:    raw.AverageRating,
		CommonComplaints: complaints,
		CommonPraises:    praises,
	}
}
