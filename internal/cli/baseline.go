package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tailcheck/tailcheck/internal/audit"
	"github.com/tailcheck/tailcheck/internal/checker"
	"github.com/tailcheck/tailcheck/internal/config"
	"github.com/tailcheck/tailcheck/internal/storage"
)

// baselineCmd represents the baseline command group
var baselineCmd = &cobra.Command{
	Use:   "baseline",
	Short: "Manage accepted violations",
	Long: `Baseline parks current violations so they stop failing the audit
while new regressions still do. Accepted violations are keyed by file
and classes, not line numbers, so they survive unrelated edits.`,
}

var baselineAcceptCmd = &cobra.Command{
	Use:   "accept",
	Short: "Accept all current violations into the baseline",
	RunE:  runBaselineAccept,
}

var baselineStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the number of baselined violations",
	RunE:  runBaselineStatus,
}

var baselineClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every baselined violation",
	RunE:  runBaselineClear,
}

func init() {
	rootCmd.AddCommand(baselineCmd)
	baselineCmd.AddCommand(baselineAcceptCmd)
	baselineCmd.AddCommand(baselineStatusCmd)
	baselineCmd.AddCommand(baselineClearCmd)
}

func runBaselineAccept(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	runner := audit.NewRunner(rootDir, cfg, nil)
	report, err := runner.Run(context.Background())
	if err != nil {
		return err
	}

	if !report.HasViolations() {
		fmt.Println("No violations to accept.")
		return nil
	}

	store, err := storage.Open(storage.DefaultPath(rootDir))
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Accept(report.Result.Violations, checker.Level(report.Level))
	if err != nil {
		return err
	}
	fmt.Printf("Accepted %d violations into the baseline.\n", n)
	return nil
}

func runBaselineStatus(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	path := storage.DefaultPath(rootDir)
	if _, err := os.Stat(path); err != nil {
		fmt.Println("No baseline.")
		return nil
	}

	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	count, err := store.Count()
	if err != nil {
		return err
	}
	fmt.Printf("%d baselined violations.\n", count)
	return nil
}

func runBaselineClear(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	store, err := storage.Open(storage.DefaultPath(rootDir))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Baseline cleared.")
	return nil
}
