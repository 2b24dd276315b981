package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/witbench/witbench/internal/catalog"
	"github.com/witbench/witbench/internal/render"
)

// DescribeOptions holds flags for the describe command.
type DescribeOptions struct {
	*RootOptions
}

// FunctionDescription is the JSON shape for one described function.
type FunctionDescription struct {
	Name      string             `json:"name"`
	Signature string             `json:"signature"`
	Params    []ParamDescription `json:"params,omitempty"`
	Result    *TypeDescription   `json:"result,omitempty"`
}

// ParamDescription describes one parameter's renderings.
type ParamDescription struct {
	Name  string `json:"name"`
	Short string `json:"short"`
	Full  string `json:"full"`
}

// TypeDescription describes a result type's renderings.
type TypeDescription struct {
	Short string `json:"short"`
	Full  string `json:"full"`
}

// ComponentDescription is the JSON shape for a described component.
type ComponentDescription struct {
	Component string                `json:"component"`
	Version   string                `json:"version,omitempty"`
	Exports   []FunctionDescription `json:"exports"`
}

// NewDescribeCommand creates the describe command.
func NewDescribeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &DescribeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "describe <component-file> [function]",
		Short: "Render component export signatures",
		Long: `Render the exported functions of a component.

Without a function argument, lists one signature line per export. With a
function, expands every parameter and the result to the full declaration
form.

Example:
  witbench describe cart.json
  witbench describe cart.json add-item`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDescribe(opts, args, cmd)
		},
	}

	return cmd
}

func runDescribe(opts *DescribeOptions, args []string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	c, err := LoadComponent(args[0])
	if err != nil {
		return reportError(formatter, err)
	}
	formatter.VerboseLog("Loaded component %q with %d export(s)", c.Name, len(c.Exports))

	if len(args) == 2 {
		fn, err := lookupExport(c, args[1])
		if err != nil {
			return reportError(formatter, err)
		}
		return outputFunction(formatter, fn)
	}

	return outputComponent(formatter, c)
}

func outputComponent(formatter *OutputFormatter, c catalog.Component) error {
	if formatter.Format == "json" {
		desc := ComponentDescription{
			Component: c.Name,
			Version:   c.Version,
			Exports:   make([]FunctionDescription, 0, len(c.Exports)),
		}
		for _, fn := range c.Exports {
			desc.Exports = append(desc.Exports, describeFunction(fn))
		}
		return formatter.Success(desc)
	}

	if c.Version != "" {
		fmt.Fprintf(formatter.Writer, "%s %s\n\n", c.Name, c.Version)
	} else {
		fmt.Fprintf(formatter.Writer, "%s\n\n", c.Name)
	}
	for _, fn := range c.Exports {
		fmt.Fprintf(formatter.Writer, "  %s\n", catalog.Signature(fn))
	}
	return nil
}

func outputFunction(formatter *OutputFormatter, fn catalog.Function) error {
	if formatter.Format == "json" {
		return formatter.Success(describeFunction(fn))
	}

	fmt.Fprintln(formatter.Writer, catalog.Signature(fn))
	for _, p := range fn.Params {
		fmt.Fprintf(formatter.Writer, "\n%s: %s\n", p.Name, render.Full(p.Typ))
	}
	if ret := fn.ReturnTyp(); ret != nil {
		fmt.Fprintf(formatter.Writer, "\nreturns: %s\n", render.Full(ret))
	}
	return nil
}

func describeFunction(fn catalog.Function) FunctionDescription {
	desc := FunctionDescription{
		Name:      fn.Name,
		Signature: catalog.Signature(fn),
	}
	for _, p := range fn.Params {
		r := render.Render(p.Typ)
		desc.Params = append(desc.Params, ParamDescription{
			Name:  p.Name,
			Short: r.Short,
			Full:  r.Full,
		})
	}
	if ret := fn.ReturnTyp(); ret != nil {
		r := render.Render(ret)
		desc.Result = &TypeDescription{Short: r.Short, Full: r.Full}
	}
	return desc
}
