package audit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailcheck/tailcheck/internal/config"
)

// Test Plan for the audit runner:
// - A full run discovers, extracts, checks, and reports with a run ID
// - Low-contrast markup lands in violations; suppressed markup in ignored
// - Per-file summaries carry region and pair counts
// - Extract alone returns regions without running the checker
// - Cancelled context aborts the run

func writeSource(t *testing.T, root, rel, content string) {
	t.Helper()
	full := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
}

func TestRunner_FullAudit(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "src/Good.tsx",
		`<div className="bg-white text-slate-900">fine</div>`)
	writeSource(t, root, "src/Bad.tsx",
		`<div className="bg-white text-slate-300">faint</div>`)

	runner := NewRunner(root, config.Default(), nil)
	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "AA", report.Level)
	assert.Equal(t, 2, report.FilesScanned)
	assert.Zero(t, report.FilesFailed)
	assert.Equal(t, 2, report.TotalRegions)
	require.Len(t, report.Files, 2)

	require.Len(t, report.Result.Violations, 1)
	assert.Equal(t, "src/Bad.tsx", report.Result.Violations[0].File)
	assert.Equal(t, "text-slate-300", report.Result.Violations[0].TextClass)
	assert.True(t, report.HasViolations())
	require.Len(t, report.Result.Passed, 1)
	assert.Equal(t, "src/Good.tsx", report.Result.Passed[0].File)
}

func TestRunner_SuppressionLandsInIgnored(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "App.tsx",
		"{/* a11y-ignore: brand gradient */}\n"+
			`<div className="bg-white text-slate-300">faint</div>`)

	runner := NewRunner(root, config.Default(), nil)
	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Result.Violations)
	assert.Equal(t, 1, report.Result.IgnoredCount)
	require.Len(t, report.Result.Ignored, 1)
	assert.Equal(t, "brand gradient", report.Result.Ignored[0].IgnoreReason)
}

func TestRunner_ContainerContext(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "Card.tsx",
		`<Card><span className="text-slate-300">on dark card</span></Card>`)

	cfg := config.Default()
	cfg.Context.Containers = map[string]string{"Card": "bg-slate-900"}
	cfg.Theme.Tokens = map[string]string{}

	runner := NewRunner(root, cfg, nil)
	report, err := runner.Run(context.Background())
	require.NoError(t, err)

	// light gray on slate-900 has plenty of contrast
	require.Len(t, report.Result.Passed, 1)
	assert.Equal(t, "bg-slate-900", report.Result.Passed[0].BGClass)
}

func TestRunner_ExtractOnly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "App.tsx", `<div className="bg-white text-black">x</div>`)

	runner := NewRunner(root, config.Default(), nil)
	files, err := runner.Extract(context.Background())
	require.NoError(t, err)

	require.Len(t, files, 1)
	require.Len(t, files[0].Regions, 1)
	assert.Equal(t, "bg-white text-black", files[0].Regions[0].Content)
}

func TestRunner_CancelledContext(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeSource(t, root, "App.tsx", `<div className="text-black">x</div>`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := NewRunner(root, config.Default(), nil)
	_, err := runner.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
