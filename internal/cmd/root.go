// Package cmd implements the doctestgen command line.
package cmd

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MasterOktagon/doctestgen/internal/doctest"
	"github.com/spf13/cobra"
)

const usage = "Usage: doctestgen [flags] [--] <output-path> <input-path>..."

//go:embed help/root.md
var rootLong string

var (
	errUsage       = errors.New("usage")
	errEmptyPrefix = errors.New("--prefix must not be empty")
)

type statusFunc func(format string, args ...interface{})

type options struct {
	fsys    fileSystem
	langs   []string
	prefix  string
	tag     string
	exclude []string
	exec    string
	quiet   bool

	status  statusFunc
	scanner *doctest.Scanner
	filter  filterFunc
}

func (opts *options) createStatus(out io.Writer) {
	if opts.quiet {
		opts.status = func(string, ...interface{}) {}

		return
	}

	opts.status = func(format string, args ...interface{}) {
		fmt.Fprintf(out, format, args...)
	}
}

func (opts *options) prepare(cmd *cobra.Command) error {
	opts.createStatus(cmd.ErrOrStderr())

	markers := doctest.DefaultMarkers()
	markers.Comment = strings.TrimSpace(opts.prefix)

	if len(markers.Comment) == 0 {
		return errEmptyPrefix
	}

	var err error

	if opts.scanner, err = doctest.NewScanner(markers, opts.langs); err != nil {
		return fmt.Errorf("invalid --lang pattern: %w", err)
	}

	if opts.filter, err = filter(opts.exclude); err != nil {
		return fmt.Errorf("invalid --exclude pattern: %w", err)
	}

	return nil
}

// Execute runs the command line in args and returns the process exit status.
func Execute(args []string, stdout, stderr io.Writer) int {
	return execute(&options{fsys: osFS{}}, args, stdout, stderr)
}

func execute(opts *options, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	root := rootCmd(opts)

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, "error:", err)
		}

		return 1
	}

	return 0
}

func rootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:   "doctestgen [flags] [--] <output-path> <input-path>...",
		Short: "Generate Catch2 tests from documentation code examples",
		Long:  rootLong,
		Args:  checkargs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return generateRun(opts, args[0], args[1:], cmd.OutOrStdout(), cmd.ErrOrStderr())
		},

		SilenceErrors:     true,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
	}

	cmd.CompletionOptions.DisableDefaultCmd = true

	flags := cmd.PersistentFlags()
	flags.StringSliceVarP(&opts.langs, "lang", "l", doctest.DefaultLangs, "fence language glob patterns")
	flags.StringVar(&opts.prefix, "prefix", doctest.DefaultMarkers().Comment, "documentation comment prefix")
	flags.StringSliceVarP(&opts.exclude, "exclude", "x", nil, "skip input files matching glob patterns")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "don't print status messages")

	cmd.Flags().StringVarP(&opts.tag, "tag", "t", doctest.DefaultTag, "Catch2 tag of generated test cases")
	cmd.Flags().StringVar(&opts.exec, "exec", "", "shell command to run after generation, {} is replaced with the output path")

	cmd.AddCommand(listCmd(opts))

	return cmd
}

func checkargs(cmd *cobra.Command, args []string) error {
	const minArgs = 2

	if len(args) < minArgs {
		fmt.Fprintln(cmd.OutOrStdout(), usage)

		return errUsage
	}

	return nil
}
