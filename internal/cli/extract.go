package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tailcheck/tailcheck/internal/audit"
	"github.com/tailcheck/tailcheck/internal/config"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Dump extracted class regions as JSON",
	Long: `Extract runs discovery and region extraction only, without color
resolution or contrast checking, and writes the per-file regions as JSON
to stdout. Useful for inspecting what context the tracker inferred.

Examples:
  tailcheck extract > regions.json
`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
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
	files, err := runner.Extract(context.Background())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(files); err != nil {
		return fmt.Errorf("failed to write regions: %w", err)
	}
	return nil
}
