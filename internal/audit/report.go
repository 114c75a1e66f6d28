package audit

import (
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/tailcheck/tailcheck/internal/checker"
)

// FileSummary records per-file extraction counts for the report.
type FileSummary struct {
	Path        string `json:"path"`
	RegionCount int    `json:"regionCount"`
	PairCount   int    `json:"pairCount"`
}

// Report is the outcome of one audit run.
type Report struct {
	RunID     string    `json:"runId"`
	Root      string    `json:"root"`
	StartedAt time.Time `json:"startedAt"`
	Duration  float64   `json:"durationSeconds"`
	Level     string    `json:"level"`

	FilesScanned int           `json:"filesScanned"`
	FilesFailed  int           `json:"filesFailed"`
	TotalRegions int           `json:"totalRegions"`
	TotalPairs   int           `json:"totalPairs"`
	Files        []FileSummary `json:"files"`

	Result checker.CheckResult `json:"result"`
}

// newReport stamps a fresh report with a unique run ID.
func newReport(root string, level checker.Level) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		Root:      root,
		StartedAt: time.Now().UTC(),
		Level:     string(level),
		Files:     []FileSummary{},
	}
}

// HasViolations reports whether the run found unsuppressed failures.
func (r *Report) HasViolations() bool {
	return len(r.Result.Violations) > 0
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
