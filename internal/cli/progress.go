package cli

import (
	"fmt"
	"log"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/tailcheck/tailcheck/internal/audit"
)

// CLIProgressReporter implements audit progress reporting with a
// progress bar.
type CLIProgressReporter struct {
	quiet     bool
	fileBar   *progressbar.ProgressBar
	startTime time.Time
}

// NewCLIProgressReporter creates a new CLI progress reporter.
func NewCLIProgressReporter(quiet bool) *CLIProgressReporter {
	return &CLIProgressReporter{
		quiet:     quiet,
		startTime: time.Now(),
	}
}

func (c *CLIProgressReporter) OnDiscoveryStart() {
	if c.quiet {
		return
	}
	log.Println("Discovering source files...")
}

func (c *CLIProgressReporter) OnDiscoveryComplete(fileCount int) {
	if c.quiet {
		return
	}
	log.Printf("Scanning %d source files\n", fileCount)
}

func (c *CLIProgressReporter) OnExtractionStart(totalFiles int) {
	if c.quiet {
		return
	}
	c.fileBar = progressbar.NewOptions(totalFiles,
		progressbar.OptionSetDescription("Extracting regions"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
}

func (c *CLIProgressReporter) OnFileExtracted(path string, regionCount int) {
	if c.quiet {
		return
	}
	if c.fileBar != nil {
		c.fileBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnCheckStart(pairCount int) {
	if c.quiet {
		return
	}
	log.Printf("Checking %d color pairs...\n", pairCount)
}

func (c *CLIProgressReporter) OnComplete(report *audit.Report) {
	if c.quiet {
		return
	}

	result := report.Result
	fmt.Println()
	fmt.Printf("✓ Audit complete in %.1fs: %d files, %d regions, %d pairs\n",
		report.Duration, report.FilesScanned, report.TotalRegions, report.TotalPairs)
	fmt.Printf("  Passed:     %d\n", len(result.Passed))
	fmt.Printf("  Violations: %d\n", len(result.Violations))
	fmt.Printf("  Ignored:    %d\n", result.IgnoredCount)
	fmt.Printf("  Skipped:    %d\n", result.SkippedCount)
}
