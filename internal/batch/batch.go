// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch submits multiple files to the analysis operation. Files
// progress through their own independent request lifecycles: a semaphore
// bounds how many are in flight, a rate limiter paces submission starts, and
// completions are appended to the result list as they land. One file's
// failure never aborts the rest.
package batch

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/veriscope/veriscope/internal/api"
	"github.com/veriscope/veriscope/internal/validate"
	"github.com/veriscope/veriscope/pkg/types"
)

const defaultConcurrency = 3

// Analyzer is the single client operation batch needs. *api.Client
// implements it; tests substitute a stub.
type Analyzer interface {
	AnalyzeDocument(ctx context.Context, doc api.Document) (*types.AnalysisResult, error)
}

// Result is the outcome for one file.
type Result struct {
	Path     string
	Analysis *types.AnalysisResult
	Err      error
}

// Summary aggregates a batch run.
type Summary struct {
	Succeeded int
	Failed    int

	// Results is ordered by completion, not by input order.
	Results []Result
}

// Total returns the number of files processed.
func (s Summary) Total() int { return s.Succeeded + s.Failed }

// Run validates and submits each file. Validation failures count as failed
// results without issuing a request. Progress lines go to w.
func Run(ctx context.Context, client Analyzer, paths []string, cfg types.BatchConfig, w io.Writer) Summary {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1)
	}

	var (
		mu      sync.Mutex
		summary Summary
		wg      sync.WaitGroup
	)
	sem := make(chan struct{}, concurrency)

	record := func(r Result) {
		mu.Lock()
		defer mu.Unlock()
		summary.Results = append(summary.Results, r)
		if r.Err != nil {
			summary.Failed++
			fmt.Fprintf(w, "failed  %s: %v\n", r.Path, r.Err)
			return
		}
		summary.Succeeded++
		fmt.Fprintf(w, "done    %s: %d claims\n", r.Path, len(r.Analysis.Claims))
	}

	for _, path := range paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				record(Result{Path: path, Err: ctx.Err()})
				return
			}
			defer func() { <-sem }()

			if limiter != nil {
				if err := limiter.Wait(ctx); err != nil {
					record(Result{Path: path, Err: err})
					return
				}
			}

			record(analyzeOne(ctx, client, path))
		}(path)
	}
	wg.Wait()

	return summary
}

func analyzeOne(ctx context.Context, client Analyzer, path string) Result {
	doc, err := LoadDocument(path)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	res, err := client.AnalyzeDocument(ctx, doc)
	if err != nil {
		return Result{Path: path, Err: err}
	}
	return Result{Path: path, Analysis: res}
}

// LoadDocument reads a file and runs it through the validator. The MIME type
// is derived from the extension the way a browser would report it; anything
// that is not a PDF travels as plain text.
func LoadDocument(path string) (api.Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return api.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}

	name := filepath.Base(path)
	mimeType := mimeForFile(name)
	if err := validate.CheckFile(name, mimeType, info.Size()); err != nil {
		return api.Document{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return api.Document{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return api.Document{Name: name, MIME: mimeType, Data: data}, nil
}

func mimeForFile(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return "application/pdf"
	case ".txt":
		return "text/plain"
	default:
		return ""
	}
}
