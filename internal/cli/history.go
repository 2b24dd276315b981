package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/witbench/witbench/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB        string
	Component string
	Limit     int
}

// InvocationRecord is the JSON shape for one logged invocation.
type InvocationRecord struct {
	ID        string `json:"id"`
	Component string `json:"component"`
	Function  string `json:"function"`
	Args      string `json:"args"`
	Seq       int64  `json:"seq"`
	CreatedAt string `json:"created_at"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded invocation payloads",
		Long: `List the payloads recorded in an invocation log, oldest first.

Example:
  witbench history --db invocations.db --component shopping-cart`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", "", "invocation log database path")
	cmd.Flags().StringVar(&opts.Component, "component", "", "only show invocations of this component")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "show at most this many invocations (0 = all)")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	s, err := store.Open(opts.DB)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, err.Error(), err)
	}
	defer s.Close()

	invs, err := s.ListInvocations(cmd.Context(), opts.Component, opts.Limit)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, err.Error(), err)
	}

	if formatter.Format == "json" {
		records := make([]InvocationRecord, 0, len(invs))
		for _, inv := range invs {
			records = append(records, InvocationRecord{
				ID:        inv.ID,
				Component: inv.Component,
				Function:  inv.Function,
				Args:      inv.Args,
				Seq:       inv.Seq,
				CreatedAt: inv.CreatedAt.Format(time.RFC3339),
			})
		}
		return formatter.Success(records)
	}

	if len(invs) == 0 {
		fmt.Fprintln(formatter.Writer, "No invocations recorded.")
		return nil
	}
	for _, inv := range invs {
		fmt.Fprintf(formatter.Writer, "%4d  %s  %s.%s\n      %s\n",
			inv.Seq, inv.CreatedAt.Format(time.RFC3339), inv.Component, inv.Function, inv.Args)
	}
	return nil
}
