package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roach88/conformer/internal/manifest"
	"github.com/roach88/conformer/internal/renderer"
	"github.com/roach88/conformer/internal/rendersuite"
	"github.com/roach88/conformer/internal/store"
	"github.com/roach88/conformer/pkg/conformer"
	"github.com/roach88/conformer/pkg/conformer/view"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Impl     string // registered renderer implementation
	HTML     string // optional HTML report path
	Database string // optional run archive
	Filter   string // glob over case titles

	// IDGenerator overrides the archive's run ID generator (for testing).
	// If nil, the store default (UUIDv7) is used.
	IDGenerator store.IDGenerator
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [manifest]",
		Short: "Run a suite against a renderer implementation",
		Long: `Run a conformance suite against a registered renderer implementation.

The suite is loaded from a YAML or CUE manifest. Without a manifest the
built-in "Simple Renderer Test Suite" is used.

The report is printed in the --format chosen. --html additionally writes
a self-contained HTML page, --db archives the run.

Exit codes:
  0 - All cases passed
  1 - One or more cases failed
  2 - Command error (bad manifest, unknown implementation, etc.)

Examples:
  conformer run
  conformer run ./examples/renderer.yaml --impl faulty
  conformer run ./examples/renderer.cue --html report/index.html
  conformer run --filter "All *" --db runs.db --format json`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			manifestPath := ""
			if len(args) == 1 {
				manifestPath = args[0]
			}
			return runSuite(opts, manifestPath, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Impl, "impl", "reference",
		fmt.Sprintf("renderer implementation %v", renderer.Names()))
	cmd.Flags().StringVar(&opts.HTML, "html", "", "write an HTML report to this path")
	cmd.Flags().StringVar(&opts.Database, "db", os.Getenv(EnvDatabase),
		"archive the run to this SQLite database, defaults to $"+EnvDatabase)
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "only run cases whose title matches this glob")

	return cmd
}

func runSuite(opts *RunOptions, manifestPath string, cmd *cobra.Command) error {
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())

	ctor, err := renderer.Lookup(opts.Impl)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --impl", err)
	}

	suite, err := loadSuite(manifestPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load suite", err)
	}

	if opts.Filter != "" {
		suite, err = filterSuite(suite, opts.Filter)
		if err != nil {
			return WrapExitError(ExitCommandError, "invalid --filter", err)
		}
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rs, err := conformer.Run(ctx, rendersuite.Factory(ctor), suite, conformer.WithLogger(logger))
	if err != nil {
		return WrapExitError(ExitCommandError, "run aborted", err)
	}

	if opts.HTML != "" {
		if err := writeHTMLReport(opts.HTML, rs); err != nil {
			return WrapExitError(ExitCommandError, "failed to write HTML report", err)
		}
		logger.Info("HTML report written", "path", opts.HTML)
	}

	if opts.Database != "" {
		rec, err := archiveRun(ctx, opts, rs)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to archive run", err)
		}
		logger.Info("run archived", "db", opts.Database, "id", rec.ID, "seq", rec.Seq)
	}

	if err := printReport(cmd, opts.Format, rs); err != nil {
		return WrapExitError(ExitCommandError, "failed to render report", err)
	}

	if err := rs.Err(); err != nil {
		return WrapExitError(ExitFailure, "suite failed", err)
	}
	return nil
}

// loadSuite builds the suite from a manifest, or the default suite when
// path is empty.
func loadSuite(path string) (*conformer.Suite[renderer.SimpleRenderer], error) {
	if path == "" {
		return rendersuite.Default(), nil
	}
	m, err := manifest.Load(path)
	if err != nil {
		return nil, err
	}
	return rendersuite.FromManifest(m)
}

// filterSuite keeps the cases whose title matches pattern.
func filterSuite(suite *conformer.Suite[renderer.SimpleRenderer], pattern string) (*conformer.Suite[renderer.SimpleRenderer], error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
	}

	filtered, err := suite.Filter(func(_ int, tc rendersuite.Case) bool {
		d, ok := conformer.Capability[conformer.Describer](tc)
		if !ok {
			return false
		}
		matched, _ := path.Match(pattern, d.Title())
		return matched
	})
	if errors.Is(err, conformer.ErrEmptySuite) {
		return nil, fmt.Errorf("no cases match %q", pattern)
	}
	return filtered, err
}

func writeHTMLReport(path string, rs *conformer.ResultSet) error {
	page, err := view.HTML{}.Render(rs)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	return os.WriteFile(path, []byte(page), 0o644)
}

func archiveRun(ctx context.Context, opts *RunOptions, rs *conformer.ResultSet) (store.RunRecord, error) {
	var storeOpts []store.Option
	if opts.IDGenerator != nil {
		storeOpts = append(storeOpts, store.WithIDGenerator(opts.IDGenerator))
	}

	st, err := store.Open(opts.Database, storeOpts...)
	if err != nil {
		return store.RunRecord{}, err
	}
	defer st.Close()

	return st.SaveRun(ctx, opts.Impl, rs)
}

// printReport renders rs with the view registered under format.
func printReport(cmd *cobra.Command, format string, rs *conformer.ResultSet) error {
	v, err := view.ByName(format)
	if err != nil {
		return err
	}
	report, err := v.Render(rs)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), report)
	return err
}
