package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/conformer/internal/store"
)

// ArchiveOptions holds flags shared by the commands that read the run archive.
type ArchiveOptions struct {
	*RootOptions
	Database string
}

func (o *ArchiveOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Database, "db", os.Getenv(EnvDatabase),
		"path to the SQLite run archive, defaults to $"+EnvDatabase)
}

// open opens the archive. A missing path is a command error.
func (o *ArchiveOptions) open() (*store.Store, error) {
	if o.Database == "" {
		return nil, NewExitError(ExitCommandError, "no run archive: pass --db or set "+EnvDatabase)
	}
	if _, err := os.Stat(o.Database); os.IsNotExist(err) {
		return nil, NewExitError(ExitCommandError, fmt.Sprintf("run archive not found: %s", o.Database))
	}
	st, err := store.Open(o.Database)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open run archive", err)
	}
	return st, nil
}

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	ArchiveOptions
	Suite string
	Limit int
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{ArchiveOptions: ArchiveOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived runs",
		Long: `List runs stored in the archive, newest first.

With --suite, lists every run of that suite oldest first, which shows how
an implementation's conformance changed over time.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.Suite, "suite", "", "only list runs of the suite with this title")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 20, "maximum runs to list (0 for all)")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	st, err := opts.open()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmdContext(cmd)
	var runs []store.RunRecord
	if opts.Suite != "" {
		runs, err = st.SuiteHistory(ctx, opts.Suite)
	} else {
		runs, err = st.ListRuns(ctx, opts.Limit)
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
		return formatter.Success(runs)
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "No runs archived.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEQ\tID\tSTATUS\tPASSED\tIMPLEMENTATION\tSUITE")
	for _, r := range runs {
		status := "ok"
		if !r.DidPass() {
			status = "FAILED"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d/%d\t%s\t%s\n",
			r.Seq, r.ID, status, r.Passed, r.Passed+r.Failed, r.Implementation, r.SuiteTitle)
	}
	return tw.Flush()
}

// ShowOptions holds flags for the show command.
type ShowOptions struct {
	ArchiveOptions
	HTML string
}

// NewShowCommand creates the show command.
func NewShowCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShowOptions{ArchiveOptions: ArchiveOptions{RootOptions: rootOpts}}

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Re-render an archived run",
		Long: `Render an archived run in the --format chosen, exactly as it was reported
when it ran. The run ID may be abbreviated to any unique prefix.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(opts, args[0], cmd)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVar(&opts.HTML, "html", "", "also write an HTML report to this path")

	return cmd
}

func runShow(opts *ShowOptions, id string, cmd *cobra.Command) error {
	st, err := opts.open()
	if err != nil {
		return err
	}
	defer st.Close()

	rs, rec, err := st.LoadRun(cmdContext(cmd), id)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load run", err)
	}

	if opts.HTML != "" {
		if err := writeHTMLReport(opts.HTML, rs); err != nil {
			return WrapExitError(ExitCommandError, "failed to write HTML report", err)
		}
	}

	if opts.Format == "text" {
		fmt.Fprintf(cmd.OutOrStdout(), "Run %s (seq %d, implementation %q)\n\n", rec.ID, rec.Seq, rec.Implementation)
	}
	if err := printReport(cmd, opts.Format, rs); err != nil {
		return WrapExitError(ExitCommandError, "failed to render report", err)
	}
	return nil
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ArchiveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:           "delete <run-id>",
		Short:         "Remove a run from the archive",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(opts, args[0], cmd)
		},
	}

	opts.addFlags(cmd)

	return cmd
}

func runDelete(opts *ArchiveOptions, id string, cmd *cobra.Command) error {
	st, err := opts.open()
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := cmdContext(cmd)
	rec, err := st.GetRun(ctx, id)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to find run", err)
	}
	if err := st.DeleteRun(ctx, rec.ID); err != nil {
		return WrapExitError(ExitCommandError, "failed to delete run", err)
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if opts.Format == "json" {
		return formatter.Success(rec)
	}
	return formatter.Success(fmt.Sprintf("Deleted run %s (%s)", rec.ID, rec.SuiteTitle))
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
