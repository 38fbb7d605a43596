// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/veriscope/veriscope/pkg/types"
)

// UniversityFile is the on-disk form of a university search: the query, its
// normalized result, and when it ran. A saved search can be reloaded and
// re-rendered later without re-querying the backend.
type UniversityFile struct {
	Query     string                  `yaml:"query"`
	Timestamp time.Time               `yaml:"timestamp"`
	Result    *types.UniversityResult `yaml:"result"`
}

// WriteUniversityFile saves a search result to a YAML file.
func WriteUniversityFile(path, query string, result *types.UniversityResult) error {
	uf := UniversityFile{
		Query:     query,
		Timestamp: time.Now().UTC(),
		Result:    result,
	}
	data, err := yaml.Marshal(&uf)
	if err != nil {
		return fmt.Errorf("encoding university file: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing university file: %w", err)
	}
	return nil
}

// ReadUniversityFile loads a saved search from a YAML file.
func ReadUniversityFile(path string) (*UniversityFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading university file: %w", err)
	}
	var uf UniversityFile
	if err := yaml.Unmarshal(data, &uf); err != nil {
		return nil, fmt.Errorf("parsing university file: %w", err)
	}
	return &uf, nil
}

// UniversityText writes a plain-text rendering of a university search result.
func UniversityText(w io.Writer, res *types.UniversityResult) {
	fmt.Fprintf(w, "University: %s\n", res.UniversityName)
	fmt.Fprintf(w, "Status: %s\n", res.SearchStatus)
	if res.Ranking != nil && res.Ranking.Rank > 0 {
		fmt.Fprintf(w, "Ranking: #%d (%s %d)\n", res.Ranking.Rank, res.Ranking.Source, res.Ranking.Year)
	}
	fmt.Fprintf(w, "Reviews: %d total, %d positive, %d negative, average rating %.1f\n",
		res.Summary.TotalReviews, res.Summary.PositiveCount, res.Summary.NegativeCount, res.Summary.AverageRating)

	if len(res.Summary.CommonComplaints) > 0 {
		fmt.Fprintln(w, "Common complaints:")
		for _, c := range res.Summary.CommonComplaints {
			fmt.Fprintf(w, "  - %s (%d)\n", c.Category, c.Frequency)
		}
	}
	if len(res.Summary.CommonPraises) > 0 {
		fmt.Fprintln(w, "Common praises:")
		for _, p := range res.Summary.CommonPraises {
			fmt.Fprintf(w, "  - %s\n", p)
		}
	}
	if len(res.Sources) > 0 {
		fmt.Fprintln(w, "Sources:")
		for _, s := range res.Sources {
			fmt.Fprintf(w, "  - %s (%s)\n", s.Title, s.URL)
		}
	}
	if res.Message != "" {
		fmt.Fprintf(w, "Note: %s\n", res.Message)
	}
	if len(res.Suggestions) > 0 {
		fmt.Fprintf(w, "Did you mean: %v\n", res.Suggestions)
	}
}
