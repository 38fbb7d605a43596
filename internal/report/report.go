// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders artifacts from normalized results. Everything here
// is presentation: it reads pkg/types values and never talks to the backend.
package report

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/veriscope/veriscope/pkg/types"
)

// Write renders res to w in the requested format.
func Write(w io.Writer, res *types.AnalysisResult, format types.ReportFormat) error {
	switch format {
	case types.ReportText, "":
		return Text(w, res)
	case types.ReportHTML:
		return HTML(w, res)
	case types.ReportJSON:
		return JSON(w, res)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

// Ext returns the file extension for a format, without the dot.
func Ext(format types.ReportFormat) string {
	switch format {
	case types.ReportHTML:
		return "html"
	case types.ReportJSON:
		return "json"
	default:
		return "txt"
	}
}

// Text writes a plain-text report: run summary, verdict tallies, then one
// block per claim.
func Text(w io.Writer, res *types.AnalysisResult) error {
	fmt.Fprintf(w, "Verification report: %s\n", res.Summary.DocumentName)
	fmt.Fprintf(w, "Analyzed %s", res.Summary.Timestamp.Format("2006-01-02 15:04 MST"))
	if res.Summary.AnalysisMode != "" {
		fmt.Fprintf(w, " (mode: %s)", res.Summary.AnalysisMode)
	}
	fmt.Fprintf(w, "\nClaims: %d, processing time %.1fs\n", res.Summary.TotalClaims, res.Summary.ProcessingTime)

	tally := make(map[types.Consistency]int)
	for _, c := range res.Claims {
		tally[c.Consistency]++
	}
	fmt.Fprintf(w, "Supported %d | Contradicted %d | Unverifiable %d | Unsupported %d\n",
		tally[types.ConsistencySupported], tally[types.ConsistencyContradicted],
		tally[types.ConsistencyUnverifiable], tally[types.ConsistencyUnsupported])
	fmt.Fprintln(w, strings.Repeat("-", 72))

	for _, c := range res.Claims {
		fmt.Fprintf(w, "[%s] %s\n", c.ID, c.Text)
		fmt.Fprintf(w, "  %s | %s | trust %d/100 | page %d\n", c.Category, c.Consistency, c.TrustScore, c.PageNumber)
		if c.Reasoning != "" {
			fmt.Fprintf(w, "  Reasoning: %s\n", c.Reasoning)
		}
		for _, ev := range c.Evidence {
			fmt.Fprintf(w, "  - evidence (%s, relevance %d): %s\n", ev.Source, ev.Relevance, ev.Snippet)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// JSON writes the normalized result as indented JSON.
func JSON(w io.Writer, res *types.AnalysisResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

var htmlTmpl = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Verification report: {{.Summary.DocumentName}}</title>
<style>
body { font-family: sans-serif; margin: 2rem auto; max-width: 60rem; }
.claim { border: 1px solid #ddd; border-radius: 6px; padding: 1rem; margin: 1rem 0; }
.Supported { border-left: 6px solid #2e7d32; }
.Contradicted { border-left: 6px solid #c62828; }
.Unverifiable { border-left: 6px solid #f9a825; }
.Unsupported { border-left: 6px solid #6d4c41; }
.meta { color: #666; font-size: 0.9rem; }
.evidence { margin: 0.25rem 0 0 1rem; font-size: 0.9rem; }
</style>
</head>
<body>
<h1>Verification report: {{.Summary.DocumentName}}</h1>
<p class="meta">{{.Summary.TotalClaims}} claims &middot; {{printf "%.1f" .Summary.ProcessingTime}}s &middot; {{.Summary.Timestamp.Format "2006-01-02 15:04 MST"}}</p>
{{range .Claims}}
<div class="claim {{.Consistency}}">
<h3>{{.Text}}</h3>
<p class="meta">{{.Category}} &middot; {{.Consistency}} &middot; trust {{.TrustScore}}/100 &middot; page {{.PageNumber}}</p>
{{if .Reasoning}}<p>{{.Reasoning}}</p>{{end}}
{{range .Evidence}}<p class="evidence">{{.Source}} (relevance {{.Relevance}}): {{.Snippet}}</p>{{end}}
</div>
{{end}}
</body>
</html>
`))

// HTML writes a standalone HTML page for the result.
func HTML(w io.Writer, res *types.AnalysisResult) error {
	return htmlTmpl.Execute(w, res)
}
