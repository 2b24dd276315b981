package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/witbench/witbench/internal/skeleton"
	"github.com/witbench/witbench/internal/value"
)

// SkeletonOptions holds flags for the skeleton command.
type SkeletonOptions struct {
	*RootOptions
}

// NewSkeletonCommand creates the skeleton command.
func NewSkeletonCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SkeletonOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "skeleton <component-file> <function>",
		Short: "Generate default argument values for a function",
		Long: `Generate the default argument values for a function's parameters.

The output is a JSON array with one entry per parameter, ready to edit
and feed back to "witbench encode --args".

Example:
  witbench skeleton cart.json add-item`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSkeleton(opts, args[0], args[1], cmd)
		},
	}

	return cmd
}

func runSkeleton(opts *SkeletonOptions, path, function string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	c, err := LoadComponent(path)
	if err != nil {
		return reportError(formatter, err)
	}

	fn, err := lookupExport(c, function)
	if err != nil {
		return reportError(formatter, err)
	}
	formatter.VerboseLog("Generating defaults for %d parameter(s)", len(fn.Params))

	data, err := value.Marshal(value.Sequence(skeleton.ForParams(fn)))
	if err != nil {
		return reportError(formatter, err)
	}

	if formatter.Format == "json" {
		return formatter.Success(json.RawMessage(data))
	}

	fmt.Fprintln(formatter.Writer, string(data))
	return nil
}
