package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tailcheck/tailcheck/internal/audit"
	"github.com/tailcheck/tailcheck/internal/config"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-audit on source changes",
	Long: `Watch monitors the project tree for changes to source files and
re-runs the audit after each burst of edits. Violations are printed per
run; the command keeps running until interrupted.

Examples:
  tailcheck watch
`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nStopping watcher...")
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

	runAudit := func() {
		runner := audit.NewRunner(rootDir, cfg, nil)
		report, err := runner.Run(ctx)
		if err != nil {
			log.Printf("Audit failed: %v", err)
			return
		}
		applyBaseline(rootDir, report)
		if report.HasViolations() {
			printViolations(report.Result.Violations)
			log.Printf("%d violations, %d passed", len(report.Result.Violations), len(report.Result.Passed))
		} else {
			log.Printf("No violations (%d pairs checked)", report.TotalPairs)
		}
	}

	watcher, err := audit.NewWatcher(rootDir, cfg.SourceExtensions())
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(ctx, func(files []string) {
		log.Printf("%d files changed, re-auditing...", len(files))
		runAudit()
	}); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	log.Printf("Watching %s for changes...", rootDir)
	runAudit()

	<-ctx.Done()
	return nil
}
