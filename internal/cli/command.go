package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/filefinder/internal/integration"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Options holds the parsed command-line flags.
type Options struct {
	// Path is the directory to scan.
	Path string
	// Extension is the file extension to match, without a dot.
	Extension string
	// MinSizeMB is the exclusive minimum file size in megabytes.
	MinSizeMB int64
	// Output represents output format (text or json).
	Output string
	// Summary selects the aggregated parallel mode.
	Summary bool
	// TopN is the number of largest matches shown in summary mode.
	TopN int
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Version indicates whether to show version and exit.
	Version bool
	// Integration indicates whether to output integration script.
	Integration bool
}

//nolint:gochecknoglobals // Config constant
var allowedOutputs = []string{"text", "json"}

// Command builds the root cobra command.
func (c CLI) Command() *cobra.Command {
	var options Options

	cmd := &cobra.Command{
		Use:   "filefinder [flags] [path]",
		Short: "Find files by extension that exceed a minimum size",
		Long: heredoc.Doc(`
			filefinder recursively scans a directory and lists every regular file
			with the given extension that is strictly larger than the minimum size.

			Each match is printed as it is found, in directory order:

			    /abs/path/to/file.jpg - 6.00MB

			Positional Arguments:
			  path    Directory to scan. Defaults to the current directory.

			Use --summary for a parallel scan that reports totals and the largest
			matches instead of streaming every file.

			The '-i' flag outputs a zsh widget that pipes the matches into 'fzf'.
		`),
		Args:          maximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Version {
				fmt.Fprintln(cmd.OutOrStdout(), c.version)

				return nil
			}

			if options.Integration {
				rendered, err := integration.Render()
				if err != nil {
					return fmt.Errorf("rendering integration script: %w", err)
				}

				fmt.Fprintln(cmd.OutOrStdout(), rendered)

				return nil
			}

			if !slices.Contains(allowedOutputs, options.Output) {
				return usageError(fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs))
			}

			if options.MinSizeMB < 0 {
				return usageError(errors.New("min-size cannot be negative"))
			}

			if options.TopN <= 0 {
				return usageError(errors.New("top must be positive"))
			}

			options.Path = "."
			if len(args) > 0 {
				options.Path = args[0]
			}

			return logic(cmd.Context(), options, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVarP(&options.Extension, "ext", "x", "jpg", "File extension to match, case-insensitive (e.g. jpg)")
	flags.Int64VarP(&options.MinSizeMB, "min-size", "m", 5, "Minimum file size in megabytes; matches must be larger")
	flags.StringVarP(&options.Output, "output", "o", "text", "Output format: text or json")
	flags.BoolVarP(&options.Summary, "summary", "s", false, "Print totals and the largest matches instead of every match")
	flags.IntVarP(&options.TopN, "top", "t", 10, "Number of largest matches shown with --summary")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")
	flags.BoolVarP(&options.Integration, "init", "i", false, "Output init script for shell usage")

	return cmd
}

// maximumNArgs is cobra.MaximumNArgs reporting its failure as a usage error.
func maximumNArgs(n int) cobra.PositionalArgs {
	check := cobra.MaximumNArgs(n)

	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return usageError(err)
		}

		return nil
	}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.Command().Execute()
}
