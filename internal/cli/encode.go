package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/witbench/witbench/internal/payload"
	"github.com/witbench/witbench/internal/store"
	"github.com/witbench/witbench/internal/value"
)

// EncodeOptions holds flags for the encode command.
type EncodeOptions struct {
	*RootOptions
	Args string // edited argument values as a JSON array
	Log  string // invocation log database path (optional)
}

// NewEncodeCommand creates the encode command.
func NewEncodeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EncodeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "encode <component-file> <function>",
		Short: "Encode argument values into a typed wire payload",
		Long: `Encode edited argument values into the typed wire payload.

--args takes a JSON array with one entry per parameter, typically a
skeleton from "witbench skeleton" after editing. Each value is paired
with its parameter's type; list parameters accept a bare element and
wrap it. Functions whose parameters use option, result, variant, or an
unrecognized type cannot be encoded.

With --log, the encoded payload is appended to the invocation log.

Example:
  witbench encode cart.json add-item --args '[{"id":"w-1","qty":3}]'`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Args, "args", "[]", "argument values as a JSON array")
	cmd.Flags().StringVar(&opts.Log, "log", "", "record the payload to this invocation log database")

	return cmd
}

func runEncode(opts *EncodeOptions, path, function string, cmd *cobra.Command) error {
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

	values, err := parseArgValues(opts.Args)
	if err != nil {
		_ = formatter.Error(ErrCodeGeneric, err.Error(), nil)
		return WrapExitError(ExitCommandError, err.Error(), nil)
	}

	args, err := payload.EncodeParams(fn, values)
	if err != nil {
		_ = formatter.Error(ErrCodeEncodeFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, err.Error(), err)
	}

	wire, err := payload.MarshalWire(args)
	if err != nil {
		_ = formatter.Error(ErrCodeEncodeFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, err.Error(), err)
	}

	if opts.Log != "" {
		if err := recordPayload(cmd, opts.Log, c.Name, fn.Name, wire, formatter); err != nil {
			return err
		}
	}

	if formatter.Format == "json" {
		return formatter.Success(json.RawMessage(wire))
	}

	fmt.Fprintln(formatter.Writer, string(wire))
	return nil
}

// parseArgValues decodes the --args flag into one value per parameter.
func parseArgValues(raw string) ([]value.Value, error) {
	v, err := value.Unmarshal([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid --args JSON: %w", err)
	}
	seq, ok := v.(value.Sequence)
	if !ok {
		return nil, fmt.Errorf("invalid --args: expected a JSON array, got %T", v)
	}
	return seq, nil
}

func recordPayload(cmd *cobra.Command, dbPath, component, function string, wire []byte, formatter *OutputFormatter) error {
	s, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitCommandError, err.Error(), err)
	}
	defer s.Close()

	inv, err := s.RecordInvocation(cmd.Context(), component, function, wire)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, err.Error(), err)
	}
	formatter.VerboseLog("Recorded invocation %s (seq %d)", inv.ID, inv.Seq)
	return nil
}
