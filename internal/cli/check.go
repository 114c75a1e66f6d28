package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tailcheck/tailcheck/internal/audit"
	"github.com/tailcheck/tailcheck/internal/checker"
	"github.com/tailcheck/tailcheck/internal/config"
	"github.com/tailcheck/tailcheck/internal/storage"
)

var (
	quietFlag  bool
	jsonFlag   bool
	levelFlag  string
	noBaseline bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit the project for contrast violations",
	Long: `Check scans the configured source globs, extracts class regions with
their background context, resolves utility classes to colors, and checks
every pair against the configured WCAG conformance level.

Violations already accepted into the baseline are reported separately
and do not fail the run.

Examples:
  # Audit the current directory at the configured level
  tailcheck check

  # Force AAA and emit the full report as JSON
  tailcheck check --level AAA --json

  # Ignore the baseline
  tailcheck check --no-baseline
`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress output")
	checkCmd.Flags().BoolVar(&jsonFlag, "json", false, "Write the full report as JSON to stdout")
	checkCmd.Flags().StringVar(&levelFlag, "level", "", "Conformance level override (AA or AAA)")
	checkCmd.Flags().BoolVar(&noBaseline, "no-baseline", false, "Do not filter baselined violations")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted! Cancelling audit...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if levelFlag != "" {
		cfg.Check.Level = strings.ToUpper(levelFlag)
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
	}

	progress := audit.ProgressReporter(NewCLIProgressReporter(quietFlag || jsonFlag))
	runner := audit.NewRunner(rootDir, cfg, progress)

	report, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	baselined := applyBaseline(rootDir, report)

	if jsonFlag {
		if err := report.WriteJSON(os.Stdout); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	} else {
		printViolations(report.Result.Violations)
		if baselined > 0 {
			fmt.Printf("  Baselined:  %d\n", baselined)
		}
	}

	if report.HasViolations() {
		return fmt.Errorf("found %d contrast violations", len(report.Result.Violations))
	}
	return nil
}

// applyBaseline filters accepted violations out of the report, returning
// how many were suppressed. A missing or unreadable baseline keeps the
// report unchanged.
func applyBaseline(rootDir string, report *audit.Report) int {
	if noBaseline {
		return 0
	}
	path := storage.DefaultPath(rootDir)
	if _, err := os.Stat(path); err != nil {
		return 0
	}

	store, err := storage.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open baseline: %v\n", err)
		return 0
	}
	defer store.Close()

	fresh, baselined, err := store.Filter(report.Result.Violations)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot read baseline: %v\n", err)
		return 0
	}
	report.Result.Violations = fresh
	return len(baselined)
}

func printViolations(violations []checker.ContrastResult) {
	for _, v := range violations {
		fmt.Printf("%s:%d\n", v.File, v.Line)
		fmt.Printf("  %s on %s", v.TextClass, v.BGClass)
		if v.InteractiveState != "" {
			fmt.Printf(" (%s)", v.InteractiveState)
		}
		fmt.Printf("\n  ratio %.2f:1, APCA Lc %.1f\n", v.Ratio, v.APCALc)
	}
}
