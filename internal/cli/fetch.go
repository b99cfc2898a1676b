package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFetchCmd(app *App) *cobra.Command {
	var (
		format   string
		rendered bool
		width    int
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch all entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != FormatText && format != FormatJSON {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, FormatText, FormatJSON)
			}

			snap, err := app.load(cmd.Context())
			if err != nil {
				return err
			}
			if snap.Err != nil {
				writeLoadError(cmd.ErrOrStderr(), snap.Err)
				return &ExitError{Code: ExitLoadFailed, Err: snap.Err}
			}

			if format == FormatJSON {
				return writeJSON(cmd.OutOrStdout(), snap.Entries)
			}
			return writeText(cmd.OutOrStdout(), snap.Entries, rendered, width)
		},
	}

	cmd.Flags().StringVar(&format, "format", FormatText, "Output format (text|json)")
	cmd.Flags().BoolVar(&rendered, "markdown", false, "Render entry text as markdown instead of one-line previews")
	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered markdown")
	return cmd
}

func newShowCmd(app *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Fetch entries and render one as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := app.load(cmd.Context())
			if err != nil {
				return err
			}
			if snap.Err != nil {
				writeLoadError(cmd.ErrOrStderr(), snap.Err)
				return &ExitError{Code: ExitLoadFailed, Err: snap.Err}
			}

			entry, ok := snap.Entries.Find(args[0])
			if !ok {
				err := notFoundError{id: args[0]}
				fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render(err.Error()))
				return &ExitError{Code: ExitNotFound, Err: err}
			}
			return writeEntry(cmd.OutOrStdout(), entry, width)
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Wrap width for rendered markdown")
	return cmd
}
