package audit

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tailcheck/tailcheck/internal/checker"
	"github.com/tailcheck/tailcheck/internal/color"
	"github.com/tailcheck/tailcheck/internal/config"
	"github.com/tailcheck/tailcheck/internal/extract"
)

// Runner wires discovery, extraction, and checking into one audit pass.
type Runner struct {
	rootDir  string
	cfg      *config.Config
	progress ProgressReporter
}

// NewRunner creates a runner for the given project root. A nil progress
// reporter is replaced with a no-op one.
func NewRunner(rootDir string, cfg *config.Config, progress ProgressReporter) *Runner {
	if progress == nil {
		progress = NoOpProgressReporter{}
	}
	return &Runner{
		rootDir:  rootDir,
		cfg:      cfg,
		progress: progress,
	}
}

// Run performs a full audit and returns the report. Unreadable files are
// logged and counted, never fatal; only discovery and configuration
// failures abort the run.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := time.Now()
	level := checker.Level(strings.ToUpper(r.cfg.Check.Level))
	report := newReport(r.rootDir, level)

	extracted, failed, err := r.extract(ctx)
	if err != nil {
		return nil, err
	}
	report.FilesFailed = failed
	report.FilesScanned = len(extracted)

	resolver, err := color.NewResolver(r.cfg.Theme.Tokens)
	if err != nil {
		return nil, fmt.Errorf("creating color resolver: %w", err)
	}

	var pairs []checker.ColorPair
	for _, file := range extracted {
		filePairs := checker.BuildPairs(file.Path, file.Regions, resolver)
		pairs = append(pairs, filePairs...)
		report.Files = append(report.Files, FileSummary{
			Path:        file.Path,
			RegionCount: len(file.Regions),
			PairCount:   len(filePairs),
		})
		report.TotalRegions += len(file.Regions)
	}
	report.TotalPairs = len(pairs)

	pageBG, ok := color.ToHex(r.cfg.Check.PageBG)
	if !ok {
		return nil, fmt.Errorf("cannot parse page background %q", r.cfg.Check.PageBG)
	}

	r.progress.OnCheckStart(len(pairs))
	report.Result = checker.CheckAllPairs(pairs, level, pageBG)

	report.Duration = time.Since(start).Seconds()
	r.progress.OnComplete(report)
	return report, nil
}

// Extract discovers and extracts regions without checking them. The
// extract CLI command uses this to dump regions as JSON.
func (r *Runner) Extract(ctx context.Context) ([]extract.FileRegions, error) {
	extracted, _, err := r.extract(ctx)
	return extracted, err
}

func (r *Runner) extract(ctx context.Context) ([]extract.FileRegions, int, error) {
	r.progress.OnDiscoveryStart()

	discovery, err := NewFileDiscovery(r.rootDir, r.cfg.Paths.Source, r.cfg.Paths.Ignore)
	if err != nil {
		return nil, 0, fmt.Errorf("compiling file patterns: %w", err)
	}
	paths, err := discovery.DiscoverFiles()
	if err != nil {
		return nil, 0, fmt.Errorf("discovering files: %w", err)
	}
	r.progress.OnDiscoveryComplete(len(paths))

	failed := 0
	inputs := make([]extract.FileInput, 0, len(paths))
	for _, path := range paths {
		select {
		case <-ctx.Done():
			return nil, failed, ctx.Err()
		default:
		}

		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", path, err)
			failed++
			continue
		}
		inputs = append(inputs, extract.FileInput{
			Path:    relativeTo(r.rootDir, path),
			Content: string(content),
		})
	}

	r.progress.OnExtractionStart(len(inputs))
	extracted := extract.ExtractFiles(inputs, r.cfg.Context.Containers, r.cfg.Context.DefaultBG, r.cfg.Extract.Workers)
	for _, file := range extracted {
		r.progress.OnFileExtracted(file.Path, len(file.Regions))
	}

	return extracted, failed, nil
}

// relativeTo reports path relative to root, falling back to the absolute
// path when it cannot be made relative.
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
