// locstostms maps the lines of source files to the statements that own them.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phobologic/locstostms/internal/config"
	"github.com/phobologic/locstostms/internal/lang"
	"github.com/phobologic/locstostms/internal/output"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// rootOptions holds flag values shared by every subcommand.
type rootOptions struct {
	quiet      bool
	verbose    bool
	noColor    bool
	configPath string
	srcDirs    []string
	language   string

	outputFile string
	format     string
	summary    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "locstostms [flags] <classes...>",
		Short: "Aggregate lines of code per statement",
		Long: `locstostms parses source files and aggregates their lines of code per statement.

Each class is given as a qualified name (e.g. org.foo.Bar) and looked up in the
--srcDirs directories in the order supplied; the first directory holding the
source file is used. For every line that belongs to a statement starting on a
different line, one pair is written to the output file:

  org/foo/Bar.java#<statement line>:org/foo/Bar.java#<line>`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMap(cmd, opts, args)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	pf := cmd.PersistentFlags()
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress progress output")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug diagnostics to stderr")
	pf.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	pf.StringVar(&opts.configPath, "config", "", "YAML file with srcDirs, outputFile, language and format")
	pf.StringArrayVar(&opts.srcDirs, "srcDirs", nil, "directory with source files (repeatable, consulted in order)")
	pf.StringVar(&opts.language, "lang", "", fmt.Sprintf("source language, one of %v (default %q)", lang.Names(), lang.Default))

	f := cmd.Flags()
	f.StringVar(&opts.outputFile, "outputFile", "", fmt.Sprintf("file to which the pairs are written (default %q)", config.DefaultOutputFile))
	f.StringVar(&opts.format, "format", "", fmt.Sprintf("output format, %q or %q (default %q)", output.Lines, output.TOON, output.Lines))
	f.BoolVar(&opts.summary, "summary", false, "print a table of statements and pairs per class")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newClassesCmd(opts))

	return cmd
}

// loadConfig merges the config file and the flags. Flags override the file;
// defaults fill whatever is left.
func loadConfig(opts *rootOptions) (config.Config, error) {
	var file config.Config
	if opts.configPath != "" {
		var err error
		file, err = config.Load(opts.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("loading config: %w", err)
		}
	}

	flags := config.Config{
		SrcDirs:    opts.srcDirs,
		OutputFile: opts.outputFile,
		Language:   opts.language,
		Format:     opts.format,
	}
	cfg := config.Merge(file, flags).WithDefaults(lang.Default, string(output.Lines))

	if len(cfg.SrcDirs) == 0 {
		return config.Config{}, errors.New("at least one --srcDirs directory is required")
	}
	return cfg, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func progressWriter(cmd *cobra.Command, opts *rootOptions) io.Writer {
	if opts.quiet {
		return io.Discard
	}
	return cmd.OutOrStdout()
}
